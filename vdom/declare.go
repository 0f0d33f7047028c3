package vdom

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Declare returns the textual self-description of a VNode tree, written in
// the h(tag, {props}, ...children) form. Handler sources are printed
// verbatim under their declared key, after the plain attributes:
//
//	h("button", {class: "btn", onClick: () => count++}, "+")
func Declare(n *VNode) string {
	var sb strings.Builder
	declareNode(&sb, n, 0)
	return sb.String()
}

func declareNode(sb *strings.Builder, n *VNode, depth int) {
	if n == nil {
		sb.WriteString("null")
		return
	}

	if n.Tag == "" {
		if n.HTML != "" {
			sb.WriteString("html(")
			sb.WriteString(strconv.Quote(n.HTML))
			sb.WriteString(")")
			return
		}
		sb.WriteString(strconv.Quote(n.Content))
		return
	}

	sb.WriteString("h(")
	sb.WriteString(strconv.Quote(n.Tag))
	sb.WriteString(", ")
	declareProps(sb, n)

	if n.Content != "" {
		sb.WriteString(", ")
		sb.WriteString(strconv.Quote(n.Content))
	}

	indent := strings.Repeat("  ", depth+1)
	for _, child := range n.Children {
		sb.WriteString(",\n")
		sb.WriteString(indent)
		declareNode(sb, child, depth+1)
	}
	sb.WriteString(")")
}

func declareProps(sb *strings.Builder, n *VNode) {
	if len(n.Attributes) == 0 && len(n.Handlers) == 0 {
		sb.WriteString("null")
		return
	}

	var parts []string
	for _, key := range sortedKeys(n.Attributes) {
		parts = append(parts, key+": "+declareValue(n.Attributes[key]))
	}
	for _, h := range n.Handlers {
		parts = append(parts, h.Event+": "+h.Source)
	}

	sb.WriteString("{")
	sb.WriteString(strings.Join(parts, ", "))
	sb.WriteString("}")
}

func declareValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(val)
	case bool:
		return strconv.FormatBool(val)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(val)
	default:
		return strconv.Quote(fmt.Sprint(val))
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
