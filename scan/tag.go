package scan

import (
	"bytes"
	"strconv"
)

// CloseTag returns the index of the '>' that terminates the element at from.
// If text[from] is the element's '<' it is skipped. Unquoted '<' characters
// inside the element are counted so that a nested-looking '<...>' pair does
// not end the element early. Returns -1 if the element is never closed.
func CloseTag(text []byte, from int) int {
	if from < 0 || from >= len(text) {
		return -1
	}
	if text[from] == '<' {
		from++
	}
	var q quoteState
	open := 0
	for i := from; i < len(text); i++ {
		c := text[i]
		if q.step(c) || q.inQuotes {
			continue
		}
		switch c {
		case '<':
			open++
		case '>':
			if open == 0 {
				return i
			}
			open--
		}
	}
	return -1
}

// FindAttribute returns the index of the attribute name within the element
// starting at from, or -1. The match must not be the tail of a longer name
// ("color" does not match "bgcolor"): it has to be preceded by whitespace, a
// ';', the start of the search, or (when allowQuoted) a quote. allowQuoted
// also lets the name be found inside of a quoted value, which is how inline
// style properties are read.
func FindAttribute(text []byte, from int, name string, allowQuoted bool) int {
	if name == "" || from < 0 || from >= len(text) {
		return -1
	}
	elementEnd := CloseTag(text, from)
	if elementEnd < 0 {
		return -1
	}
	pos := from
	for pos < elementEnd {
		var idx int
		if allowQuoted {
			idx = IndexFold(text[pos:elementEnd], name)
		} else {
			idx = IndexUnquotedString(text[pos:elementEnd], name, true)
		}
		if idx < 0 {
			return -1
		}
		at := pos + idx
		if at == from {
			return at
		}
		prev := text[at-1]
		if allowQuoted && (prev == '\'' || prev == '"') {
			return at
		}
		if IsSpace(prev) || prev == ';' {
			return at
		}
		pos = at + len(name)
	}
	return -1
}

// ReadAttribute returns the value of the attribute name of the element that
// starts at from.
//
// After the name, spaces, an optional ':' or '=' and an optional opening
// quote are skipped. The value then runs to the first stop character; which
// characters stop it depends on allowQuoted (adds ';', for style
// properties) and allowSpacesInValue (removes ' '). A value that runs into
// the element's '>' has any trailing spaces and '/' trimmed.
func ReadAttribute(text []byte, from int, name string, allowQuoted, allowSpacesInValue bool) (Span, bool) {
	at := FindAttribute(text, from, name, allowQuoted)
	elementEnd := CloseTag(text, from)
	if at < 0 || elementEnd < 0 || at >= elementEnd {
		return Span{}, false
	}
	p := at + len(name)
	for p < elementEnd && text[p] == ' ' {
		p++
	}
	if p < elementEnd && (text[p] == ':' || text[p] == '=') {
		p++
	}
	for p < elementEnd && text[p] == ' ' {
		p++
	}
	if p < elementEnd && (text[p] == '\'' || text[p] == '"') {
		p++
	}
	if p >= elementEnd {
		return Span{}, false
	}

	var stops string
	switch {
	case allowQuoted && allowSpacesInValue:
		stops = "\"'>;"
	case allowQuoted:
		stops = " \"'>;"
	case allowSpacesInValue:
		stops = "\"'>"
	default:
		stops = " \"'>"
	}
	end := IndexAnyFrom(text[:elementEnd+1], p, stops)
	if end < 0 {
		return Span{}, false
	}
	// '/' is not a stop character because it is legal inside of values
	// such as paths, so only strip it when it closes the element.
	if text[end] == '>' {
		for end-1 > p && (text[end-1] == '/' || text[end-1] == ' ') {
			end--
		}
	}
	if end == p {
		return Span{}, false
	}
	return Span{Start: p, Len: end - p}, true
}

// ReadAttributeString is ReadAttribute returning a copy of the value, or ""
// when the attribute is missing.
func ReadAttributeString(text []byte, from int, name string, allowQuoted, allowSpacesInValue bool) string {
	s, ok := ReadAttribute(text, from, name, allowQuoted, allowSpacesInValue)
	if !ok {
		return ""
	}
	return s.String(text)
}

// ReadAttributeInt reads the leading decimal integer of an attribute value.
// It returns 0 when the attribute is missing or does not start with a number.
func ReadAttributeInt(text []byte, from int, name string, allowQuoted bool) int {
	s, ok := ReadAttribute(text, from, name, allowQuoted, false)
	if !ok {
		return 0
	}
	v := bytes.TrimSpace(s.Bytes(text))
	n := 0
	if n < len(v) && (v[n] == '-' || v[n] == '+') {
		n++
	}
	for n < len(v) && v[n] >= '0' && v[n] <= '9' {
		n++
	}
	i, err := strconv.Atoi(string(v[:n]))
	if err != nil {
		return 0
	}
	return i
}
