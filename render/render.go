// Package render turns a component into a complete, ready-to-serve HTML
// document carrying the script that re-attaches its event handlers.
package render

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/vcrobe/nojs-ssr/hydrate"
	"github.com/vcrobe/nojs-ssr/runtime"
	"github.com/vcrobe/nojs-ssr/vdom"
)

// Strategy selects how handler records are obtained.
type Strategy string

const (
	// StrategySource recovers handlers from the component's declaration
	// text and pairs them with rendered tags by position.
	StrategySource Strategy = "source"

	// StrategyDeclared reads the handlers bound on the rendered tree and
	// writes identifiers into the tree before serialization.
	StrategyDeclared Strategy = "declared"
)

// ParseStrategy parses a strategy name. The empty string selects StrategySource.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategySource:
		return StrategySource, nil
	case StrategyDeclared:
		return StrategyDeclared, nil
	}
	return "", fmt.Errorf("unknown strategy %q", s)
}

// Options control the document shell and the hydration pipeline.
type Options struct {
	Title      string   // Document title
	StylingURL string   // Styling script loaded from the head; omitted when empty
	RootID     string   // id of the container wrapping the component
	Lang       string   // Optional lang attribute of <html>
	Tag        string   // Element kind paired with records in StrategySource
	Strategy   Strategy // How handler records are obtained
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Title:      "Bunx",
		StylingURL: "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4",
		RootID:     "root",
		Tag:        hydrate.DefaultTag,
		Strategy:   StrategySource,
	}
}

// Result holds every intermediate product of one render.
type Result struct {
	Declaration string                  // Declaration text the records came from
	Records     []hydrate.HandlerRecord // Records in pairing order
	Script      string                  // Synthesized script, empty without records
	Document    string                  // Final document
}

// Renderer runs the render pipeline. It owns the identifier counter, so
// identifiers stay unique across every render it performs. A Renderer is
// safe for concurrent use.
type Renderer struct {
	opts   Options
	ids    *hydrate.IDCounter
	logger *slog.Logger
}

// New creates a Renderer. A nil counter gets a fresh one with the default
// prefix, a nil logger selects slog.Default().
func New(opts Options, ids *hydrate.IDCounter, logger *slog.Logger) *Renderer {
	defaults := DefaultOptions()
	if opts.RootID == "" {
		opts.RootID = defaults.RootID
	}
	if opts.Tag == "" {
		opts.Tag = defaults.Tag
	}
	if opts.Strategy == "" {
		opts.Strategy = defaults.Strategy
	}
	if ids == nil {
		ids = hydrate.NewIDCounter("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{opts: opts, ids: ids, logger: logger}
}

// Render returns the complete HTML document for c.
func (r *Renderer) Render(c runtime.Component) string {
	return r.RenderResult(c).Document
}

// RenderResult renders c and returns the document along with the records
// and script it was built from. Mismatches between records and tags never
// fail the render; they leave tags unidentified or bindings unmatched.
func (r *Renderer) RenderResult(c runtime.Component) Result {
	if c == nil {
		c = runtime.ComponentFunc(func(runtime.Renderer) *vdom.VNode { return nil })
	}

	var res Result
	switch r.opts.Strategy {
	case StrategyDeclared:
		body := runtime.NewPass(r.logger).RenderRoot(c)
		res.Declaration = vdom.Declare(body)
		res.Records = hydrate.Collect(body, r.ids)
		res.Document = vdom.RenderToString(Shell(r.opts, body))
	default:
		body := runtime.NewPass(r.logger).RenderRoot(c)
		res.Declaration = runtime.DeclarationOf(c, body)
		res.Records = hydrate.Extract(res.Declaration, r.ids)
		res.Document = hydrate.Annotate(vdom.RenderToString(Shell(r.opts, body)), res.Records, r.opts.Tag)
	}

	res.Script = hydrate.Script(res.Records)
	res.Document = spliceScript(res.Document, res.Script)

	r.logger.Debug("component rendered",
		"strategy", r.opts.Strategy,
		"handlers", len(res.Records),
		"bytes", len(res.Document),
	)
	return res
}

// spliceScript inserts the script just before the first closing body tag.
// An empty script leaves the document untouched.
func spliceScript(document, script string) string {
	if script == "" {
		return document
	}
	return strings.Replace(document, "</body>", "  <script>"+script+"</script>\n  </body>", 1)
}
