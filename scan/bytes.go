package scan

// IsSpace reports whether c is ASCII whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// HasPrefixFold reports whether text begins with prefix, ignoring ASCII case.
func HasPrefixFold(text []byte, prefix string) bool {
	if len(text) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if lower(text[i]) != lower(prefix[i]) {
			return false
		}
	}
	return true
}

// EqualFold reports whether text equals s, ignoring ASCII case.
func EqualFold(text []byte, s string) bool {
	return len(text) == len(s) && HasPrefixFold(text, s)
}

// IndexFold returns the index of the first case-insensitive occurrence of
// needle in text, or -1.
func IndexFold(text []byte, needle string) int {
	if len(needle) == 0 {
		return 0
	}
	first := lower(needle[0])
	for i := 0; i+len(needle) <= len(text); i++ {
		if lower(text[i]) == first && HasPrefixFold(text[i:], needle) {
			return i
		}
	}
	return -1
}

// IndexByteFrom returns the absolute index of the first c in text at or
// after from, or -1.
func IndexByteFrom(text []byte, from int, c byte) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(text); i++ {
		if text[i] == c {
			return i
		}
	}
	return -1
}

// IndexAnyFrom returns the absolute index of the first byte at or after from
// that is one of chars, or -1. chars must be ASCII.
func IndexAnyFrom(text []byte, from int, chars string) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(text); i++ {
		for j := 0; j < len(chars); j++ {
			if text[i] == chars[j] {
				return i
			}
		}
	}
	return -1
}
