package hydrate

import (
	"strings"

	"github.com/vcrobe/nojs-ssr/vdom"
)

// Collect builds records straight from the handlers declared on a VNode
// tree, without going through the declaration text. Elements are visited
// in document order. An element with at least one function-shaped handler
// keeps its own id attribute or is given the next identifier from ids,
// written into its attributes; it then gets one record per such handler.
//
// Collect mutates the tree, so it must run on a freshly rendered tree and
// before the tree is serialized.
func Collect(root *vdom.VNode, ids *IDCounter) []HandlerRecord {
	var records []HandlerRecord

	vdom.Walk(root, func(n *vdom.VNode) {
		if n.Tag == "" || len(n.Handlers) == 0 {
			return
		}

		var id string
		for _, h := range n.Handlers {
			source := strings.TrimSpace(h.Source)
			if !LooksLikeFunction(source) {
				continue
			}
			if id == "" {
				if existing, ok := n.ID(); ok {
					id = existing
				} else {
					id = ids.Next()
					n.SetAttribute("id", id)
				}
			}
			records = append(records, HandlerRecord{
				ElementID:     id,
				EventType:     EventType(h.Event),
				HandlerSource: source,
			})
		}
	})

	return records
}
