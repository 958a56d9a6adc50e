package htmltext

import (
	"fmt"
	"os"

	"github.com/tsawler/htmltext/format"
	"github.com/tsawler/htmltext/htmldoc"
	"github.com/tsawler/htmltext/internal/filters"
	"github.com/tsawler/htmltext/model"
	"github.com/tsawler/htmltext/resolver"
)

// Extractor provides a fluent interface for extracting content from HTML.
// Each configuration method returns a new Extractor instance, making it
// safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	content  []byte

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		content:  e.content,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// load reads the input, undoes any gzip or zlib wrapper and detects the
// format of what is inside.
func (e *Extractor) load() ([]byte, format.Format, error) {
	if e.err != nil {
		return nil, format.Unknown, e.err
	}
	content := e.content
	if e.filename != "" {
		b, err := os.ReadFile(e.filename)
		if err != nil {
			return nil, format.Unknown, fmt.Errorf("opening file: %w", err)
		}
		content = b
	} else if content == nil {
		return nil, format.Unknown, ErrNoInput
	}
	decoded, enc, err := filters.Decode(content)
	if err != nil {
		return nil, format.Unknown, fmt.Errorf("decoding %s input: %w", enc, err)
	}
	return decoded, format.DetectContent(filters.TrimExtension(e.filename), decoded), nil
}

// open runs the extraction with the configured options.
func (e *Extractor) open() (*htmldoc.Reader, error) {
	content, f, err := e.load()
	if err != nil {
		return nil, err
	}

	preserve := e.options.preserveNewlines
	if !e.options.newlinesSet && f == format.Text {
		// plain text keeps its line structure unless told otherwise
		preserve = true
	}

	return htmldoc.FromBytes(content,
		htmldoc.WithOuterText(!e.options.excludeOuterText),
		htmldoc.WithPreserveNewlines(preserve),
		htmldoc.WithBaseURL(e.options.baseURL),
		htmldoc.WithImageLinks(!e.options.excludeImageLinks),
		htmldoc.WithNormalization(e.options.normalizeURLs),
		htmldoc.WithBodyOnly(e.options.bodyOnly),
	)
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// ExcludeOuterText drops text before the first element and after the last
// one, which is usually stray content around a fragment.
func (e *Extractor) ExcludeOuterText() *Extractor {
	newExt := e.clone()
	newExt.options.excludeOuterText = true
	return newExt
}

// PreserveNewlines treats the whole document as preformatted so that line
// breaks in the source are kept. This is the default for plain text files.
func (e *Extractor) PreserveNewlines() *Extractor {
	newExt := e.clone()
	newExt.options.preserveNewlines = true
	newExt.options.newlinesSet = true
	return newExt
}

// CollapseNewlines turns line breaks in the source into spaces, even for
// plain text files.
func (e *Extractor) CollapseNewlines() *Extractor {
	newExt := e.clone()
	newExt.options.preserveNewlines = false
	newExt.options.newlinesSet = true
	return newExt
}

// BodyOnly limits Text() to the content of the <body> element. Metadata is
// still read from the whole document.
func (e *Extractor) BodyOnly() *Extractor {
	newExt := e.clone()
	newExt.options.bodyOnly = true
	return newExt
}

// BaseURL sets the URL that relative links are resolved against. A <base
// href> in the document takes precedence. The URL must be absolute.
//
// Example:
//
//	links, _, err := htmltext.Open("page.html").BaseURL("http://a.com/dir/").Links()
func (e *Extractor) BaseURL(u string) *Extractor {
	newExt := e.clone()
	if !resolver.IsAbsolute(u) && newExt.err == nil {
		newExt.err = fmt.Errorf("base URL %q is not absolute", u)
	}
	newExt.options.baseURL = u
	return newExt
}

// ExcludeImageLinks leaves <img> sources out of Links().
func (e *Extractor) ExcludeImageLinks() *Extractor {
	newExt := e.clone()
	newExt.options.excludeImageLinks = true
	return newExt
}

// NormalizeURLs normalizes resolved links (lowercased scheme and host,
// default ports and dot segments removed).
func (e *Extractor) NormalizeURLs() *Extractor {
	newExt := e.clone()
	newExt.options.normalizeURLs = true
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Format reports the detected input format.
func (e *Extractor) Format() (format.Format, error) {
	_, f, err := e.load()
	return f, err
}

// Text extracts the plain text of the document.
//
// Example:
//
//	text, warnings, err := htmltext.Open("page.html").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", htmltext.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	r, err := e.open()
	if err != nil {
		return "", nil, err
	}
	defer r.Close()

	text, err := r.Text()
	if err != nil {
		return "", r.Warnings(), err
	}
	return text, r.Warnings(), nil
}

// Metadata returns the title, author, description, subject, keywords and
// declared charset of the document.
func (e *Extractor) Metadata() (model.Metadata, []Warning, error) {
	r, err := e.open()
	if err != nil {
		return model.Metadata{}, nil, err
	}
	defer r.Close()

	return r.Metadata(), r.Warnings(), nil
}

// Links returns the links of the document in document order, resolved
// against the base URL when one is known.
//
// Example:
//
//	links, _, err := htmltext.Open("page.html").BaseURL("http://a.com/").Links()
//	for _, l := range links {
//	    fmt.Println(l.Kind, l.URL)
//	}
func (e *Extractor) Links() ([]model.Link, []Warning, error) {
	r, err := e.open()
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	return r.Links(), r.Warnings(), nil
}

// Document returns the text, metadata and links of the document together.
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	r, err := e.open()
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		return nil, r.Warnings(), err
	}
	return doc, r.Warnings(), nil
}

// Bookmarks returns the named anchors (<a name="...">) in document order.
func (e *Extractor) Bookmarks() ([]model.Bookmark, []Warning, error) {
	r, err := e.open()
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()

	return r.Bookmarks(), r.Warnings(), nil
}

// Style returns the CSS of the first <style> element, or "" if there is
// none. No warnings are reported since the markup is not converted.
func (e *Extractor) Style() (string, []Warning, error) {
	r, err := e.open()
	if err != nil {
		return "", nil, err
	}
	defer r.Close()

	return r.Style(), nil, nil
}

// StripLinks returns the markup with hyperlinks removed and their content
// kept. The result is UTF-8 regardless of the input charset. No warnings are
// reported since the markup is not converted.
func (e *Extractor) StripLinks() (string, []Warning, error) {
	r, err := e.open()
	if err != nil {
		return "", nil, err
	}
	defer r.Close()

	return string(r.StripHyperlinks()), nil, nil
}
