package runtime

import (
	"log/slog"

	"github.com/vcrobe/nojs-ssr/vdom"
)

// Compile-time assertion to ensure Pass implements the Renderer interface.
var _ Renderer = (*Pass)(nil)

// rootKey identifies the root component of a pass.
const rootKey = "__root__"

// Pass renders one component tree, once. Child instances are tracked by key
// for the duration of the pass only; nothing is kept across passes.
type Pass struct {
	instances map[string]Component
	logger    *slog.Logger
}

// NewPass creates a render pass. A nil logger selects slog.Default().
func NewPass(logger *slog.Logger) *Pass {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pass{
		instances: make(map[string]Component),
		logger:    logger,
	}
}

// RenderRoot renders the root component of the pass.
func (p *Pass) RenderRoot(c Component) *vdom.VNode {
	return p.RenderChild(rootKey, c)
}

// RenderChild renders a child component. The first component seen under a
// key is kept and reused for later renders of the same key in this pass.
func (p *Pass) RenderChild(key string, childWithProps Component) *vdom.VNode {
	instance, exists := p.instances[key]
	if !exists {
		instance = childWithProps
		p.instances[key] = instance

		if initializer, ok := instance.(Initializer); ok {
			p.callOnInit(initializer, key)
		}
	}

	return instance.Render(p)
}

// callOnInit invokes OnInit, recovering and logging a panic so one faulty
// component does not take the request down.
func (p *Pass) callOnInit(initializer Initializer, key string) {
	defer func() {
		if rec := recover(); rec != nil {
			p.logger.Error("OnInit panic", "component", key, "panic", rec)
		}
	}()
	initializer.OnInit()
}
