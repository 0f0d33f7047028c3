package vdom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// attributeAliases maps JSX-style attribute names to their HTML spelling.
var attributeAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// Render serializes the VNode tree as HTML into w.
// A root <html> node is written as a full document with a doctype.
func Render(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}

	if n.Tag == "html" {
		doc := &html.Node{Type: html.DocumentNode}
		doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
		for _, node := range toHTMLNodes(n) {
			doc.AppendChild(node)
		}
		return html.Render(w, doc)
	}

	for _, node := range toHTMLNodes(n) {
		if err := html.Render(w, node); err != nil {
			return err
		}
	}
	return nil
}

// RenderToString renders the VNode tree to an HTML string.
func RenderToString(n *VNode) string {
	var sb strings.Builder
	// Writes into a strings.Builder cannot fail, and the trees built by
	// toHTMLNodes are always well formed.
	_ = Render(&sb, n)
	return sb.String()
}

// toHTMLNodes converts a VNode into html nodes. Markup nodes may expand to
// several siblings; every other kind yields exactly one node.
func toHTMLNodes(n *VNode) []*html.Node {
	if n.Tag == "" {
		if n.HTML != "" {
			return parseMarkup(n.HTML)
		}
		return []*html.Node{{Type: html.TextNode, Data: n.Content}}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     toHTMLAttributes(n.Attributes),
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		for _, node := range toHTMLNodes(child) {
			el.AppendChild(node)
		}
	}
	return []*html.Node{el}
}

func toHTMLAttributes(attrs map[string]any) []html.Attribute {
	var out []html.Attribute
	for _, key := range sortedKeys(attrs) {
		name := key
		if alias, ok := attributeAliases[key]; ok {
			name = alias
		}

		switch v := attrs[key].(type) {
		case nil:
			continue
		case bool:
			if v {
				out = append(out, html.Attribute{Key: name})
			}
		case string:
			out = append(out, html.Attribute{Key: name, Val: v})
		default:
			out = append(out, html.Attribute{Key: name, Val: fmt.Sprint(v)})
		}
	}
	return out
}

func parseMarkup(markup string) []*html.Node {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return []*html.Node{{Type: html.TextNode, Data: markup}}
	}
	return nodes
}
