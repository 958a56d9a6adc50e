// Package links finds hyperlinks in HTML markup.
//
// The parsers in this package never allocate copies of the markup: every link
// is reported as a [scan.Span] into the text that was passed in, along with a
// [Kind] describing how it was found.
//
// # Parsers
//
//   - [Parser] walks anchors, images, frames, scripts and meta refreshes
//   - [ImageParser] only reports the src of <img> elements
//   - [ScriptParser] picks file-like string literals out of a script body
//
// All of them are forward-only iterators:
//
//	p := links.NewParser(text, links.WithImages(true))
//	for l, ok := p.Next(); ok; l, ok = p.Next() {
//		fmt.Println(l.Kind, l.Span.String(text))
//	}
//
// # Base URL
//
// NewParser also looks for a <base href> in the document head. When present,
// [Parser.BaseURL] returns it and links should be resolved against it rather
// than against the document's own URL.
package links
