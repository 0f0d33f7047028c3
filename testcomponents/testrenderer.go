// Package testcomponents provides test harnesses and fixtures for component tests.
package testcomponents

import (
	"github.com/vcrobe/nojs-ssr/runtime"
	"github.com/vcrobe/nojs-ssr/vdom"
)

// TestRenderer is a minimal test harness that implements runtime.Renderer
// for in-memory testing without a render pass or an HTTP server.
//
// It captures VDOM output from component renders and allows tests to:
// - Render a component and inspect the resulting VDOM tree
// - See which child keys were rendered, in order
type TestRenderer struct {
	currentVDOM *vdom.VNode
	component   runtime.Component
	childKeys   []string
}

// Compile-time assertion to ensure TestRenderer implements runtime.Renderer interface.
var _ runtime.Renderer = (*TestRenderer)(nil)

// NewTestRenderer creates a test renderer attached to the given component.
func NewTestRenderer(comp runtime.Component) *TestRenderer {
	return &TestRenderer{component: comp}
}

// RenderRoot renders the component and returns its VDOM.
func (r *TestRenderer) RenderRoot() *vdom.VNode {
	r.childKeys = nil
	r.currentVDOM = r.component.Render(r)
	return r.currentVDOM
}

// GetCurrentVDOM returns the most recently rendered VDOM tree.
func (r *TestRenderer) GetCurrentVDOM() *vdom.VNode {
	return r.currentVDOM
}

// ChildKeys returns the keys passed to RenderChild during the last render.
func (r *TestRenderer) ChildKeys() []string {
	return r.childKeys
}

// RenderChild records the key and renders the child directly.
func (r *TestRenderer) RenderChild(key string, child runtime.Component) *vdom.VNode {
	r.childKeys = append(r.childKeys, key)
	return child.Render(r)
}

// SourceComponent renders a tree built fresh on every render and describes
// itself with hand-written declaration text.
type SourceComponent struct {
	Text  string
	Build func() *vdom.VNode
}

// Render implements the runtime.Component interface.
func (s *SourceComponent) Render(r runtime.Renderer) *vdom.VNode {
	if s.Build == nil {
		return nil
	}
	return s.Build()
}

// Declaration implements runtime.Declarer.
func (s *SourceComponent) Declaration() string {
	return s.Text
}
