package hydrate

import (
	"fmt"
	"strings"
	"testing"
)

func makeRecords(n int) []HandlerRecord {
	ids := NewIDCounter("")
	out := make([]HandlerRecord, n)
	for i := range out {
		out[i] = HandlerRecord{ElementID: ids.Next(), EventType: "click", HandlerSource: "() => x()"}
	}
	return out
}

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		records int
		tag     string
		want    string
	}{
		{
			name:    "more buttons than records",
			markup:  `<div><button>a</button><button>b</button><button>c</button></div>`,
			records: 1,
			want:    `<div><button id="nano-el-1">a</button><button>b</button><button>c</button></div>`,
		},
		{
			name:    "more records than buttons",
			markup:  `<div><button class="x">a</button></div>`,
			records: 2,
			want:    `<div><button id="nano-el-1" class="x">a</button></div>`,
		},
		{
			name:    "existing id is skipped without consuming a record",
			markup:  `<button id="greetings">a</button><button class="b">b</button>`,
			records: 1,
			want:    `<button id="greetings">a</button><button id="nano-el-1" class="b">b</button>`,
		},
		{
			name:    "upper-case ID attribute is an id",
			markup:  `<button ID="x">a</button><button>b</button>`,
			records: 1,
			want:    `<button ID="x">a</button><button id="nano-el-1">b</button>`,
		},
		{
			name:    "data-id is not an id",
			markup:  `<button data-id="q">a</button>`,
			records: 1,
			want:    `<button id="nano-el-1" data-id="q">a</button>`,
		},
		{
			name:    "tag name case is preserved",
			markup:  `<BUTTON class=x>a</BUTTON>`,
			records: 1,
			want:    `<BUTTON id="nano-el-1" class=x>a</BUTTON>`,
		},
		{
			name:    "self-closing tag",
			markup:  `<p><button/></p>`,
			records: 1,
			want:    `<p><button id="nano-el-1"/></p>`,
		},
		{
			name:    "other elements are untouched",
			markup:  `<!DOCTYPE html><html><head><title>t</title></head><body><a href="#">x</a><button>b</button></body></html>`,
			records: 1,
			want:    `<!DOCTYPE html><html><head><title>t</title></head><body><a href="#">x</a><button id="nano-el-1">b</button></body></html>`,
		},
		{
			name:    "buttons inside script text are not tags",
			markup:  `<script>var s = "<button>";</script><button>b</button>`,
			records: 1,
			want:    `<script>var s = "<button>";</script><button id="nano-el-1">b</button>`,
		},
		{
			name:    "configured element kind",
			markup:  `<button>b</button><a href="#">x</a>`,
			records: 1,
			tag:     "a",
			want:    `<button>b</button><a id="nano-el-1" href="#">x</a>`,
		},
		{
			name:    "no records",
			markup:  `<button>b</button>`,
			records: 0,
			want:    `<button>b</button>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annotate(tt.markup, makeRecords(tt.records), tt.tag)
			if got != tt.want {
				t.Errorf("Annotate() =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

// TestAnnotate_InjectsMinOfTagsAndRecords checks that exactly min(m, k)
// identifiers are injected, into the first tags, for every pairing size.
func TestAnnotate_InjectsMinOfTagsAndRecords(t *testing.T) {
	for m := 0; m <= 4; m++ {
		for k := 0; k <= 4; k++ {
			markup := "<div>" + strings.Repeat("<button>b</button>", m) + "</div>"
			recs := makeRecords(k)

			got := Annotate(markup, recs, "")

			want := min(m, k)
			if n := strings.Count(got, ` id="`); n != want {
				t.Errorf("m=%d k=%d: expected %d ids, got %d in %s", m, k, want, n, got)
			}
			for i := 0; i < want; i++ {
				attr := fmt.Sprintf(`<button id="%s">`, recs[i].ElementID)
				if strings.Count(got, attr) != 1 {
					t.Errorf("m=%d k=%d: expected exactly one %s in %s", m, k, attr, got)
				}
			}
			if untouched := strings.Count(got, "<button>"); untouched != m-want {
				t.Errorf("m=%d k=%d: expected %d untouched buttons, got %d", m, k, m-want, untouched)
			}
		}
	}
}
