package scan

import "bytes"

// ElementName returns the element name that starts at at (the byte after
// '<'). The name ends at whitespace, '>', the end of text or, if
// acceptSelfTerminating is set, at "/>". Closing elements keep their leading
// '/' ("/p").
func ElementName(text []byte, at int, acceptSelfTerminating bool) []byte {
	if at < 0 || at >= len(text) {
		return nil
	}
	i := at
	for i < len(text) {
		c := text[i]
		if IsSpace(c) || c == '>' {
			break
		}
		if acceptSelfTerminating && c == '/' && i+1 < len(text) && text[i+1] == '>' {
			break
		}
		i++
	}
	return text[at:i]
}

// CompareElement reports whether the element name at at (the byte after
// '<') is tag, ignoring case. The name must be followed by '>' or by
// whitespace and attributes; "bgcolor" does not match "color". Self-closed
// elements ("<br/>", "<br />") only match when acceptSelfTerminating is set.
func CompareElement(text []byte, at int, tag string, acceptSelfTerminating bool) bool {
	if tag == "" || at < 0 || at+len(tag) > len(text) {
		return false
	}
	if !HasPrefixFold(text[at:], tag) {
		return false
	}
	p := at + len(tag)
	if p >= len(text) {
		return false
	}
	c := text[p]
	switch {
	case c == '>':
		return true
	case acceptSelfTerminating:
		return c == '/' || IsSpace(c)
	case IsSpace(c):
		closeTag := CloseTag(text, p)
		if closeTag < 0 {
			return false
		}
		q := closeTag - 1
		for q > p && IsSpace(text[q]) {
			q--
		}
		return text[q] != '/'
	}
	return false
}

// FindElement returns the index of the '<' of the first tag element in
// text[from:end], or -1.
func FindElement(text []byte, from, end int, tag string, acceptSelfTerminating bool) int {
	if tag == "" || from < 0 {
		return -1
	}
	if end > len(text) {
		end = len(text)
	}
	text = text[:end]
	for from+len(tag) < end {
		lt := IndexByteFrom(text, from, '<')
		if lt < 0 || lt+len(tag) > end {
			return -1
		}
		if CompareElement(text, lt+1, tag, acceptSelfTerminating) {
			return lt
		}
		from = lt + 1
	}
	return -1
}

// FindClosingElement returns the index of the '<' of the closing tag element
// that matches the element at (or enclosing) from, searching no further than
// end. Nested elements of the same name are counted so that their closing
// elements are skipped. Returns -1 if the element is never closed.
func FindClosingElement(text []byte, from, end int, tag string) int {
	if tag == "" || from < 0 {
		return -1
	}
	if end > len(text) {
		end = len(text)
	}
	text = text[:end]
	lt := IndexByteFrom(text, from, '<')
	if lt < 0 || lt+len(tag) > end {
		return -1
	}
	name := lt + 1
	if CompareElement(text, name, tag, true) {
		// step over the opening element so it is not counted twice
		from = name + len(tag)
	} else if name < end && text[name] == '/' && CompareElement(text, name+1, tag, true) {
		return lt
	}

	depth := 1
	p := IndexByteFrom(text, from, '<')
	for p >= 0 && p+len(tag)+1 < end {
		if text[p+1] == '/' && CompareElement(text, p+2, tag, true) {
			depth--
		} else if CompareElement(text, p+1, tag, true) {
			depth++
		}
		if depth == 0 {
			return p
		}
		p = IndexByteFrom(text, p+1, '<')
	}
	return -1
}

// ReadElement returns the trimmed content between the first tag element in
// text[from:end] and its closing element, or nil.
func ReadElement(text []byte, from, end int, tag string) []byte {
	start := FindElement(text, from, end, tag, true)
	if start < 0 {
		return nil
	}
	closing := FindClosingElement(text, start, end, tag)
	open := CloseTag(text[:min(end, len(text))], start)
	if closing < 0 || open < 0 || open+1 > closing {
		return nil
	}
	return bytes.TrimSpace(text[open+1 : closing])
}
