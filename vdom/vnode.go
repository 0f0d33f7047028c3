package vdom

import "strings"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name; empty for text and markup nodes
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	HTML       string         // Pre-sanitized markup, used when Tag is empty
	Handlers   []Handler      // Event handlers bound to the element, map-declared ones in key order
}

// Handler is an event binding declared on an element at construction time.
type Handler struct {
	Event  string // Attribute name as declared, e.g. "onClick"
	Source string // Browser-side handler expression, verbatim
}

// JS is an inline browser-side handler expression, e.g. `() => count++`.
type JS string

// Ref names a browser-side function by reference, e.g. `increment`.
type Ref string

// NewVNode creates a new VNode.
// Attributes whose key starts with "on" and whose value is a JS or Ref are
// moved into Handlers so they are never rendered as HTML attributes.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var handlers []Handler
	for _, key := range sortedKeys(attributes) {
		if !isEventKey(key) {
			continue
		}
		switch v := attributes[key].(type) {
		case JS:
			handlers = append(handlers, Handler{Event: key, Source: string(v)})
			delete(attributes, key)
		case Ref:
			handlers = append(handlers, Handler{Event: key, Source: string(v)})
			delete(attributes, key)
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		Handlers:   handlers,
	}
}

// On appends an event handler to the node and returns it, for chaining.
func (v *VNode) On(event string, source JS) *VNode {
	v.Handlers = append(v.Handlers, Handler{Event: event, Source: string(source)})
	return v
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// ID returns the node's id attribute, if it declares one.
func (v *VNode) ID() (string, bool) {
	if v.Attributes == nil {
		return "", false
	}
	id, ok := v.Attributes["id"].(string)
	return id, ok && id != ""
}

// SetAttribute sets an attribute, allocating the map if needed.
func (v *VNode) SetAttribute(key string, value any) {
	if v.Attributes == nil {
		v.Attributes = make(map[string]any)
	}
	v.Attributes[key] = value
}

// Walk visits n and its descendants in document order.
func Walk(n *VNode, visit func(*VNode)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range n.Children {
		Walk(child, visit)
	}
}

func isEventKey(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// Element creates a VNode for an arbitrary tag.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Text creates a bare text node.
func Text(text string) *VNode {
	return &VNode{Content: text}
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1..6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Span creates a <span> VNode with the given text.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// InputText returns a VNode representing an <input type="text"> element.
// Optionally accepts a map of attributes (e.g., {"placeholder": "Type here"}).
func InputText(attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = "text"
	return NewVNode("input", attrs, nil, "")
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
