package hydrate

import (
	"html"
	"strings"

	xhtml "golang.org/x/net/html"
)

// DefaultTag is the element kind the annotator pairs with records.
const DefaultTag = "button"

// Annotate gives the start tags of the given element kind, in document
// order, the identifiers of records, in record order. Tags that already
// declare an id are left alone and do not consume a record; tags past the
// last record are left alone too. Every other byte of markup is copied
// unchanged.
//
// The pairing is purely positional: the i-th unlabeled tag receives the
// i-th record, whatever the record's handler was declared on.
func Annotate(markup string, records []HandlerRecord, tag string) string {
	if len(records) == 0 {
		return markup
	}
	if tag == "" {
		tag = DefaultTag
	}
	tag = strings.ToLower(tag)

	var sb strings.Builder
	sb.Grow(len(markup) + len(records)*(len(` id=""`)+len(records[0].ElementID)))

	z := xhtml.NewTokenizer(strings.NewReader(markup))
	next := 0
	for {
		tt := z.Next()
		// Raw must be copied before TagName, which lower-cases in place.
		raw := string(z.Raw())
		if tt == xhtml.ErrorToken {
			sb.WriteString(raw)
			break
		}

		if (tt == xhtml.StartTagToken || tt == xhtml.SelfClosingTagToken) && next < len(records) {
			name, hasAttr := z.TagName()
			if string(name) == tag && !declaresID(z, hasAttr) {
				sb.WriteString(injectID(raw, len(tag), records[next].ElementID))
				next++
				continue
			}
		}
		sb.WriteString(raw)
	}

	return sb.String()
}

func declaresID(z *xhtml.Tokenizer, more bool) bool {
	for more {
		var key []byte
		key, _, more = z.TagAttr()
		if string(key) == "id" {
			return true
		}
	}
	return false
}

// injectID inserts an id attribute right after the tag name of raw.
func injectID(raw string, nameLen int, id string) string {
	cut := 1 + nameLen
	return raw[:cut] + ` id="` + html.EscapeString(id) + `"` + raw[cut:]
}
