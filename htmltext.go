// Package htmltext provides a fluent API for extracting text, metadata and
// links from HTML documents.
//
// Basic usage:
//
//	text, warnings, err := htmltext.Open("page.html").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmltext.FormatWarnings(warnings))
//	}
//
// With options:
//
//	links, _, err := htmltext.Open("page.html").
//	    BaseURL("http://example.com/docs/").
//	    ExcludeImageLinks().
//	    NormalizeURLs().
//	    Links()
//
// Files compressed with gzip or zlib (for example "page.html.gz") are
// decompressed transparently.
//
// For lower-level access, the htmldoc, links and resolver packages are also
// available.
package htmltext

// Open returns an Extractor for the file filename. The file is read when a
// terminal operation like Text() is called.
//
// Example:
//
//	text, warnings, err := htmltext.Open("page.html").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes returns an Extractor for markup already in memory. The slice is
// not copied and must not be modified while the Extractor is in use.
//
// Example:
//
//	text, _, err := htmltext.FromBytes(body).ExcludeOuterText().Text()
func FromBytes(content []byte) *Extractor {
	return &Extractor{
		content: content,
		options: defaultOptions(),
	}
}

// FromString returns an Extractor for markup in a string.
func FromString(s string) *Extractor {
	return FromBytes([]byte(s))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	f := htmltext.Must(htmltext.Open("page.html").Format())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text(), Links() or any other
// terminal operation and panics if the error is non-nil. It discards warnings
// and returns just the value.
//
// Example:
//
//	text := htmltext.MustText(htmltext.Open("page.html").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
