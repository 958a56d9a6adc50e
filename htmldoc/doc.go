// Package htmldoc converts HTML markup into plain text.
//
// The converter is a single forward scan over the raw bytes. It does not
// build a tree and accepts any input, however malformed: elements it does
// not recognise are skipped, and broken entities are recovered from and
// reported as [Warning] values rather than errors.
//
// # Extraction
//
// [Extractor] is the conversion engine:
//
//	e := htmldoc.NewExtractor()
//	text := e.Extract(markup, true, false)
//	for _, w := range e.Warnings() {
//	    log.Println(w)
//	}
//
// Paragraph-level elements (p, div, h1-h6, table, ...) become blank lines,
// <br> a line break, <li> a newline and tab, <td> a tab. Script, style,
// noscript and MathML annotation blocks are dropped, as are comments.
// <title>, <subject> and the author, description and keywords <meta>
// elements are collected into [Extractor.Metadata] instead of the text.
//
// # Entities
//
// Named and numeric entities are decoded. Recovery rules:
//
//   - "A &foo B": unrecognised name without ';' is copied as is
//   - "&copy 2024": a known name ended by whitespace or '<' is decoded
//   - "&zzz;": an unknown ';'-terminated name becomes '?'
//   - "&amp;lt;": a double-encoded entity decodes to the inner entity
//   - "&#0;": a zero numeric reference is copied as is
//
// Each of these produces a Warning carrying the byte offset of the '&'.
//
// # Reading Files
//
// [Reader] wraps an Extractor for whole documents. It decodes the declared
// charset to UTF-8, extracts once and can enumerate resolved links:
//
//	r, err := htmldoc.Open("page.html", htmldoc.WithBaseURL("http://a.com/"))
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	text, _ := r.Text()
//	links := r.Links()
package htmldoc
