// Package entity holds the static character tables used when decoding text
// runs: HTML named entities, the legacy Symbol font encoding, and the
// superscript and subscript glyph forms.
//
// The tables are built once when the package is initialised and are never
// modified afterwards, so every function in this package is safe for
// concurrent use.
//
// # Named Entities
//
//	r := entity.Lookup([]byte("eacute")) // 'é'
//	if r == entity.Unknown {
//		// not an entity name
//	}
//
// Lookup is case-sensitive first and falls back to a case-insensitive match,
// so "AMP" resolves to '&'.
//
// # Symbol Font
//
// Older documents render Greek letters and math symbols by writing plain
// Latin letters in a font face named "Symbol". Symbol maps such a letter back
// to the code point it was meant to display.
package entity
