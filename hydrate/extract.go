package hydrate

import "strings"

// Extract scans a component declaration for inline handler definitions of
// the form `onX: <expression>` and returns one record per function-shaped
// expression, in left-to-right order. Identifiers come from ids.
//
// The accepted grammar, applied without overlap:
//
//	"on" word+ space* ":" space* expr
//
// where word is [A-Za-z0-9_] and expr is the longest non-empty run of
// characters other than ',' and '}'. Expressions with nested commas or
// braces are cut at the first one.
func Extract(declaration string, ids *IDCounter) []HandlerRecord {
	var records []HandlerRecord

	for i := 0; i < len(declaration); {
		m, ok := matchHandlerAt(declaration, i)
		if !ok {
			i++
			continue
		}
		i = m.end

		source := strings.TrimSpace(m.expr)
		if !LooksLikeFunction(source) {
			continue
		}
		records = append(records, HandlerRecord{
			ElementID:     ids.Next(),
			EventType:     EventType(m.name),
			HandlerSource: source,
		})
	}

	return records
}

type handlerMatch struct {
	name string // e.g. "onClick"
	expr string // untrimmed expression text
	end  int    // offset just past the match
}

// matchHandlerAt attempts to match one handler definition starting exactly
// at offset i.
func matchHandlerAt(s string, i int) (handlerMatch, bool) {
	if !strings.HasPrefix(s[i:], "on") {
		return handlerMatch{}, false
	}

	// Event name: "on" followed by at least one word character.
	j := i + 2
	for j < len(s) && isWordChar(s[j]) {
		j++
	}
	if j == i+2 {
		return handlerMatch{}, false
	}
	name := s[i:j]

	j = skipSpace(s, j)
	if j >= len(s) || s[j] != ':' {
		return handlerMatch{}, false
	}
	exprStart := skipSpace(s, j+1)

	exprEnd := exprStart
	for exprEnd < len(s) && s[exprEnd] != ',' && s[exprEnd] != '}' {
		exprEnd++
	}

	if exprEnd == exprStart {
		// The expression must hold at least one character. Give back one
		// character of the whitespace after the colon when there is some.
		if exprStart == j+1 {
			return handlerMatch{}, false
		}
		exprStart--
	}

	return handlerMatch{name: name, expr: s[exprStart:exprEnd], end: exprEnd}, true
}

// EventType normalizes a handler attribute name: lower-cased with the
// first "on" removed, defaulting to "click" when nothing is left.
func EventType(name string) string {
	event := strings.Replace(strings.ToLower(name), "on", "", 1)
	if event == "" {
		return "click"
	}
	return event
}

// LooksLikeFunction reports whether a trimmed handler expression has the
// shape of a function literal: an empty parameter list, the function
// keyword, or an arrow.
func LooksLikeFunction(source string) bool {
	return strings.HasPrefix(source, "()") ||
		strings.HasPrefix(source, "function") ||
		strings.Contains(source, "=>") ||
		(strings.HasPrefix(source, "(") && strings.Contains(source, "=>"))
}

func isWordChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func skipSpace(s string, i int) int {
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return i
}
