package runtime

import "github.com/vcrobe/nojs-ssr/vdom"

// Component interface defines the structure for all server-rendered components.
type Component interface {
	// Render generates the virtual DOM tree for this component.
	// The renderer parameter provides access to framework services like RenderChild.
	Render(r Renderer) *vdom.VNode
}

// Declarer is implemented by components that carry their own textual
// self-description, for example source text loaded from a file.
// Components that don't implement it are described by their rendered tree.
type Declarer interface {
	Declaration() string
}

// Initializer is implemented by components that need to prepare state once,
// before their first render in a pass.
type Initializer interface {
	OnInit()
}

// ComponentFunc adapts a plain function to the Component interface.
type ComponentFunc func(r Renderer) *vdom.VNode

// Render calls f(r).
func (f ComponentFunc) Render(r Renderer) *vdom.VNode {
	return f(r)
}

// Declaration returns the textual self-description of c: its own
// declaration if it is a Declarer, otherwise the declaration of a fresh
// render of it.
func Declaration(c Component) string {
	if d, ok := c.(Declarer); ok {
		return d.Declaration()
	}
	return vdom.Declare(NewPass(nil).RenderRoot(c))
}

// DeclarationOf is like Declaration but describes a non-Declarer by the
// tree it already rendered, so c is not rendered again.
func DeclarationOf(c Component, rendered *vdom.VNode) string {
	if d, ok := c.(Declarer); ok {
		return d.Declaration()
	}
	return vdom.Declare(rendered)
}
