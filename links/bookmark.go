package links

import "github.com/tsawler/htmltext/scan"

// FindBookmark returns the position of the next <a name="..."> in
// text[from:end] and its name with any leading '#' removed. It returns -1
// and "" if there is none.
func FindBookmark(text []byte, from, end int) (int, string) {
	for {
		a := scan.FindElement(text, from, end, "a", true)
		if a < 0 {
			return -1, ""
		}
		if s, ok := scan.ReadAttribute(text, a, "name", false, false); ok {
			name := s.Bytes(text)
			if len(name) > 0 && name[0] == '#' {
				name = name[1:]
			}
			return a, string(name)
		}
		from = a + 1
	}
}

// StripHyperlinks returns a copy of text with every <a href> element
// replaced by its content. Bookmark anchors (<a name>) are left alone. If an
// anchor is malformed the rest of the text is copied unchanged.
func StripHyperlinks(text []byte) []byte {
	out := make([]byte, 0, len(text))
	pos, last := 0, 0
	for pos < len(text) {
		a := scan.FindElement(text, pos, len(text), "a", true)
		if a < 0 {
			break
		}
		if scan.FindAttribute(text, a, "name", false) >= 0 {
			pos = a + 2
			continue
		}

		openEnd := scan.CloseTag(text, a)
		if openEnd < 0 {
			break
		}
		closing := scan.FindClosingElement(text, a, len(text), "a")
		if closing < 0 {
			break
		}
		closeEnd := scan.CloseTag(text, closing)
		if closeEnd < 0 {
			break
		}
		out = append(out, text[last:a]...)
		out = append(out, text[openEnd+1:closing]...)
		last = closeEnd + 1
		pos = last
	}
	return append(out, text[last:]...)
}
