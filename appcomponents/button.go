package appcomponents

import (
	"github.com/vcrobe/nojs-ssr/runtime"
	"github.com/vcrobe/nojs-ssr/vdom"
)

// buttonClass is the default styling of Button.
const buttonClass = "bg-blue-500 hover:bg-blue-700 text-white font-bold py-2 px-4 rounded"

// Button is a styled button with an optional inline click handler.
type Button struct {
	Label   string
	Class   string  // Overrides the default styling when set
	OnClick vdom.JS // Inline handler; no handler when empty
}

// Render implements the runtime.Component interface.
func (b *Button) Render(r runtime.Renderer) *vdom.VNode {
	class := b.Class
	if class == "" {
		class = buttonClass
	}

	attrs := map[string]any{"className": class}
	if b.OnClick != "" {
		attrs["onClick"] = b.OnClick
	}
	return vdom.Button(b.Label, attrs)
}
