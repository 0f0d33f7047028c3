package vdom

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdown     = goldmark.New()
	markupPolicy = bluemonday.UGCPolicy()
)

// Markdown renders src as CommonMark and returns a markup node holding the
// sanitized result. If conversion fails the source is kept as plain text.
func Markdown(src string) *VNode {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return Text(src)
	}
	return Markup(buf.String())
}

// Markup returns a node carrying raw HTML after sanitizing it with a
// user-generated-content policy. Interactive elements and inline event
// attributes do not survive sanitizing.
func Markup(raw string) *VNode {
	return &VNode{HTML: markupPolicy.Sanitize(raw)}
}
