package runtime

import "github.com/vcrobe/nojs-ssr/vdom"

// Renderer defines the minimal set of runtime operations used by Render() code.
type Renderer interface {
	// RenderChild is used by components to render child components.
	// The key parameter uniquely identifies the component instance within a render pass.
	RenderChild(key string, childWithProps Component) *vdom.VNode
}
