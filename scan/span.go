package scan

// Span is a reference into an input buffer: Len bytes starting at Start.
type Span struct {
	Start int
	Len   int
}

// End returns the offset just past the span.
func (s Span) End() int {
	return s.Start + s.Len
}

// Valid reports whether the span lies within a buffer of size n.
func (s Span) Valid(n int) bool {
	return s.Start >= 0 && s.Len >= 0 && s.Start+s.Len <= n
}

// Bytes returns the bytes the span refers to, or nil if the span does not
// fit inside text.
func (s Span) Bytes(text []byte) []byte {
	if !s.Valid(len(text)) {
		return nil
	}
	return text[s.Start:s.End()]
}

// String returns a copy of the referenced bytes as a string.
func (s Span) String(text []byte) string {
	return string(s.Bytes(text))
}
