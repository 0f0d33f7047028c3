package appcomponents

import (
	"strconv"

	"github.com/vcrobe/nojs-ssr/runtime"
	"github.com/vcrobe/nojs-ssr/vdom"
)

const clickerIntro = "Press **+** or **−** to change the count. " +
	"Both buttons are hydrated from their inline handlers."

// Clicker is a counter whose buttons carry inline handlers that update the
// count element in the browser.
type Clicker struct {
	Start int
}

// Render implements the runtime.Component interface.
func (c *Clicker) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(map[string]any{"className": "p-4 max-w-md mx-auto border rounded shadow"},
		vdom.Markdown(clickerIntro),
		vdom.Element("p", map[string]any{"className": "text-2xl mb-4"},
			vdom.Span(strconv.Itoa(c.Start), map[string]any{"id": "clicker-count"}),
		),
		vdom.Div(map[string]any{"className": "flex gap-2"},
			r.RenderChild("clicker-dec", &Button{
				Label:   "−",
				Class:   "bg-red-500 hover:bg-red-700 text-white font-bold py-2 px-4 rounded",
				OnClick: `() => document.getElementById("clicker-count").textContent--`,
			}),
			r.RenderChild("clicker-inc", &Button{
				Label:   "+",
				Class:   "bg-green-500 hover:bg-green-700 text-white font-bold py-2 px-4 rounded",
				OnClick: `() => document.getElementById("clicker-count").textContent++`,
			}),
		),
	)
}
