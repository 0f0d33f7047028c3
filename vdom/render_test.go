package vdom

import (
	"strings"
	"testing"
)

func TestRenderToString(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{
			name: "attributes are sorted and handlers are not rendered",
			node: Div(map[string]any{"id": "a", "className": "x"},
				Button("+", map[string]any{"onClick": JS("() => 1")}),
			),
			want: `<div class="x" id="a"><button>+</button></div>`,
		},
		{
			name: "text is escaped",
			node: Paragraph("a < b & c", nil),
			want: `<p>a &lt; b &amp; c</p>`,
		},
		{
			name: "boolean and numeric attributes",
			node: InputText(map[string]any{"disabled": true, "hidden": false, "maxlength": 8}),
			want: `<input disabled="" maxlength="8" type="text"/>`,
		},
		{
			name: "content precedes children",
			node: Button("label", nil, Span("icon", nil)),
			want: `<button>label<span>icon</span></button>`,
		},
		{
			name: "nil node",
			node: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderToString(tt.node); got != tt.want {
				t.Errorf("RenderToString() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestRenderToString_Document(t *testing.T) {
	doc := Element("html", nil,
		Element("head", nil, NewVNode("title", nil, nil, "T")),
		Element("body", nil, Div(map[string]any{"id": "root"})),
	)

	got := RenderToString(doc)

	want := `<!DOCTYPE html><html><head><title>T</title></head><body><div id="root"></div></body></html>`
	if got != want {
		t.Errorf("RenderToString() =\n  %s\nwant\n  %s", got, want)
	}
}

func TestMarkdown(t *testing.T) {
	got := RenderToString(Div(nil, Markdown("Press **+** now")))

	if !strings.Contains(got, "<p>Press <strong>+</strong> now</p>") {
		t.Errorf("Expected rendered markdown paragraph, got %s", got)
	}
	if !strings.HasPrefix(got, "<div>") || !strings.HasSuffix(got, "</div>") {
		t.Errorf("Expected markdown inside the div, got %s", got)
	}
}

// TestMarkup_Sanitizes verifies that raw markup loses scripts, inline event
// attributes and interactive elements.
func TestMarkup_Sanitizes(t *testing.T) {
	raw := `<button onclick="steal()">b</button><script>alert(1)</script><b>ok</b>`

	got := RenderToString(Markup(raw))

	for _, banned := range []string{"onclick", "<script", "<button"} {
		if strings.Contains(got, banned) {
			t.Errorf("Expected %q to be removed, got %s", banned, got)
		}
	}
	if !strings.Contains(got, "<b>ok</b>") {
		t.Errorf("Expected safe markup to survive, got %s", got)
	}
}
