package render

import "github.com/vcrobe/nojs-ssr/vdom"

// Shell wraps a rendered component in the document skeleton: a head with
// the charset, title and styling script, and a body holding the component
// inside the root container.
func Shell(opts Options, body *vdom.VNode) *vdom.VNode {
	head := vdom.Element("head", nil,
		vdom.Element("meta", map[string]any{"charset": "utf-8"}),
		vdom.NewVNode("title", nil, nil, opts.Title),
	)
	if opts.StylingURL != "" {
		head.Children = append(head.Children, vdom.Element("script", map[string]any{"src": opts.StylingURL}))
	}

	var root []*vdom.VNode
	if body != nil {
		root = append(root, body)
	}

	var htmlAttrs map[string]any
	if opts.Lang != "" {
		htmlAttrs = map[string]any{"lang": opts.Lang}
	}

	return vdom.Element("html", htmlAttrs,
		head,
		vdom.Element("body", nil,
			vdom.Div(map[string]any{"id": opts.RootID}, root...),
		),
	)
}
