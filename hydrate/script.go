package hydrate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var scriptBreakRegex = regexp.MustCompile(`(?i)</script|<!--`)

// Script returns a standalone browser script that, once the document has
// been parsed, turns every record's source into a function and attaches it
// to the element carrying the record's identifier. Missing elements are
// skipped silently. An empty record list yields an empty script.
func Script(records []HandlerRecord) string {
	if len(records) == 0 {
		return ""
	}

	lines := []string{
		`document.addEventListener("DOMContentLoaded", function() {`,
		"  // Handler registry",
	}

	for i, rec := range records {
		lines = append(lines, "  const "+handlerName(i)+" = "+embeddable(rec.HandlerSource)+";")
	}

	lines = append(lines, " ")

	for i, rec := range records {
		el := "el_" + strconv.Itoa(i)
		lines = append(lines,
			"  const "+el+" = document.getElementById("+jsString(rec.ElementID)+");",
			"  if ("+el+") {",
			"    "+el+".addEventListener("+jsString(rec.EventType)+", "+handlerName(i)+");",
			"  }",
		)
	}

	lines = append(lines, "});")

	return strings.Join(lines, "\n")
}

func handlerName(i int) string {
	return "handler_" + strconv.Itoa(i)
}

// embeddable keeps a handler source from closing the surrounding script
// element early or switching the parser into escaped script state.
func embeddable(source string) string {
	return scriptBreakRegex.ReplaceAllStringFunc(source, func(m string) string {
		if m == "<!--" {
			return `<\!--`
		}
		return `<\/` + m[2:]
	})
}

// jsString quotes s as a JavaScript string literal. JSON string syntax is a
// subset of it, and the encoder also escapes '<', '>' and '&'.
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}
