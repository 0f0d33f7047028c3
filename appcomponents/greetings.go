package appcomponents

import (
	"github.com/vcrobe/nojs-ssr/runtime"
	"github.com/vcrobe/nojs-ssr/vdom"
)

// Greetings is a single button that greets on click.
//
// The button declares its own id, so in the source strategy the annotator
// leaves it alone and the generated binding finds no element. The declared
// strategy binds it under its own id.
type Greetings struct {
	Label string // Button text; "click me" when empty
}

// Render implements the runtime.Component interface.
func (g *Greetings) Render(r runtime.Renderer) *vdom.VNode {
	label := g.Label
	if label == "" {
		label = "click me"
	}
	return vdom.Button(label, map[string]any{
		"id":      "greetings",
		"onClick": vdom.JS(`() => alert("Hello world!")`),
	})
}
