package scan

// quoteState tracks whether the scanner is inside a quoted run.
type quoteState struct {
	inQuotes bool
	inSingle bool
}

// step feeds c through the tracker and reports whether c was a quote that
// changed state.
func (q *quoteState) step(c byte) bool {
	switch {
	case c == '"':
		// a double quote may also close a single-quoted run
		q.inQuotes = !q.inQuotes
		q.inSingle = false
		return true
	case c == '\'' && (!q.inQuotes || q.inSingle):
		q.inQuotes = !q.inQuotes
		q.inSingle = true
		return true
	}
	return false
}

// IndexUnquoted returns the index of the first occurrence of ch in text that
// is not inside of quotes, or -1.
func IndexUnquoted(text []byte, ch byte) int {
	var q quoteState
	for i := 0; i < len(text); i++ {
		q.step(text[i])
		if !q.inQuotes && text[i] == ch {
			return i
		}
	}
	return -1
}

// IndexUnquotedString returns the index of the first occurrence of needle in
// text that does not start inside of quotes, or -1.
func IndexUnquotedString(text []byte, needle string, foldCase bool) int {
	if len(needle) == 0 || len(text) < len(needle) {
		return -1
	}
	var q quoteState
	for i := 0; i+len(needle) <= len(text); i++ {
		if !q.inQuotes {
			if foldCase {
				if HasPrefixFold(text[i:], needle) {
					return i
				}
			} else if string(text[i:i+len(needle)]) == needle {
				return i
			}
		}
		q.step(text[i])
	}
	return -1
}
