package vdom

import "testing"

func TestDeclare(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{
			name: "element with attributes and handler",
			node: Button("+", map[string]any{"className": "btn", "onClick": JS("() => count++")}),
			want: `h("button", {className: "btn", onClick: () => count++}, "+")`,
		},
		{
			name: "named reference",
			node: Button("-", map[string]any{"onClick": Ref("decrement")}),
			want: `h("button", {onClick: decrement}, "-")`,
		},
		{
			name: "nested children",
			node: Div(nil, Paragraph("hi", nil), Text("tail")),
			want: "h(\"div\", null,\n  h(\"p\", null, \"hi\"),\n  \"tail\")",
		},
		{
			name: "attribute value kinds",
			node: Element("input", map[string]any{"disabled": true, "max": 3, "value": "a\"b"}),
			want: `h("input", {disabled: true, max: 3, value: "a\"b"})`,
		},
		{
			name: "markup node",
			node: &VNode{HTML: "<b>x</b>"},
			want: `html("<b>x</b>")`,
		},
		{
			name: "nil node",
			node: nil,
			want: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Declare(tt.node); got != tt.want {
				t.Errorf("Declare() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}
