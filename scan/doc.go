// Package scan provides the low-level markup scanning primitives used by the
// extractor and the hyperlink parsers.
//
// Every routine works on a byte slice and an explicit position, and never
// reads outside of the slice it is given. Positions returned are absolute
// offsets into that slice; -1 means "not found".
//
// # Quote Awareness
//
// Most searches ignore anything inside a single- or double-quoted run so that
// attribute values such as title="a > b" do not confuse tag matching. The
// quote tracker is lenient: a double quote always toggles the
// double-quote state and cancels single-quote state, which lets a stray
// apostrophe inside an element be closed by the next double quote.
//
// # Elements and Attributes
//
//	end := scan.CloseTag(text, lt)                        // '>' of the element at lt
//	val, ok := scan.ReadAttribute(text, lt, "href", false, false)
//	close := scan.FindClosingElement(text, lt, len(text), "span")
//
// FindClosingElement is stack based, so nested elements with the same name
// are skipped over and the matching closing element is returned.
package scan
