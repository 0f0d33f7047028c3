package appcomponents

import (
	"fmt"

	"github.com/vcrobe/nojs-ssr/runtime"
	"github.com/vcrobe/nojs-ssr/vdom"
)

// Counter shows a count with decrement and increment buttons. Both buttons
// refer to their handlers by name, so no handler is recovered from its
// declaration and the page is served without a hydration script.
type Counter struct {
	Count int
}

// Render implements the runtime.Component interface.
func (c *Counter) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"className": "p-4 max-w-md mx-auto border rounded shadow"},
		vdom.Heading(1, fmt.Sprintf("Счётчик: %d", c.Count), map[string]any{"className": "text-2xl mb-4"}),
		vdom.Div(map[string]any{"className": "flex gap-2"},
			vdom.Button("–", map[string]any{
				"className": "bg-red-500 hover:bg-red-700 text-white font-bold py-2 px-4 rounded",
				"onClick":   vdom.Ref("decrement"),
			}),
			vdom.Button("+", map[string]any{
				"className": "bg-green-500 hover:bg-green-700 text-white font-bold py-2 px-4 rounded",
				"onClick":   vdom.Ref("increment"),
			}),
		),
	)
}
