package entity

var superscripts = map[rune]rune{
	'0': 0x2070, '1': 0x00B9, '2': 0x00B2, '3': 0x00B3, '4': 0x2074,
	'5': 0x2075, '6': 0x2076, '7': 0x2077, '8': 0x2078, '9': 0x2079,
	'+': 0x207A, '-': 0x207B, '=': 0x207C, '(': 0x207D, ')': 0x207E,
	'n': 0x207F, 'i': 0x2071,
}

var subscripts = map[rune]rune{
	'0': 0x2080, '1': 0x2081, '2': 0x2082, '3': 0x2083, '4': 0x2084,
	'5': 0x2085, '6': 0x2086, '7': 0x2087, '8': 0x2088, '9': 0x2089,
	'+': 0x208A, '-': 0x208B, '=': 0x208C, '(': 0x208D, ')': 0x208E,
	'a': 0x2090, 'e': 0x2091, 'o': 0x2092, 'x': 0x2093, 'h': 0x2095,
	'k': 0x2096, 'l': 0x2097, 'm': 0x2098, 'n': 0x2099, 'p': 0x209A,
	's': 0x209B, 't': 0x209C,
}

// Superscript returns the superscript form of r, or r if Unicode has none.
func Superscript(r rune) rune {
	if s, ok := superscripts[r]; ok {
		return s
	}
	return r
}

// Subscript returns the subscript form of r, or r if Unicode has none.
func Subscript(r rune) rune {
	if s, ok := subscripts[r]; ok {
		return s
	}
	return r
}

// Ligature returns the letters a presentation-form ligature (U+FB00 to
// U+FB06) stands for, and whether r is one of them.
func Ligature(r rune) (string, bool) {
	switch r {
	case 0xFB00:
		return "ff", true
	case 0xFB01:
		return "fi", true
	case 0xFB02:
		return "fl", true
	case 0xFB03:
		return "ffi", true
	case 0xFB04:
		return "ffl", true
	case 0xFB05:
		return "ft", true
	case 0xFB06:
		return "st", true
	}
	return "", false
}
