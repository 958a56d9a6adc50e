package htmldoc

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/htmltext/links"
	"github.com/tsawler/htmltext/model"
	"github.com/tsawler/htmltext/resolver"
)

// Reader provides access to the text, metadata and links of an HTML
// document. The markup is decoded to UTF-8 and extracted once when the
// Reader is created.
type Reader struct {
	source   []byte
	charset  string
	text     string
	metadata model.Metadata
	warnings []Warning
	opts     options
}

type options struct {
	outerText        bool
	preserveNewlines bool
	baseURL          string
	imageLinks       bool
	normalize        bool
	bodyOnly         bool
}

// Option configures a Reader.
type Option func(*options)

// WithOuterText sets whether text outside of the first and last element is
// kept (default: true).
func WithOuterText(include bool) Option {
	return func(o *options) { o.outerText = include }
}

// WithPreserveNewlines treats the whole document as preformatted.
func WithPreserveNewlines(preserve bool) Option {
	return func(o *options) { o.preserveNewlines = preserve }
}

// WithBaseURL sets the URL that relative links are resolved against. A
// <base href> in the document takes precedence.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithImageLinks sets whether <img> sources are returned by Links (default:
// true).
func WithImageLinks(include bool) Option {
	return func(o *options) { o.imageLinks = include }
}

// WithNormalization normalizes resolved links.
func WithNormalization(normalize bool) Option {
	return func(o *options) { o.normalize = normalize }
}

// WithBodyOnly restricts the text to the content of the <body> element.
// Metadata is still read from the whole document.
func WithBodyOnly(bodyOnly bool) Option {
	return func(o *options) { o.bodyOnly = bodyOnly }
}

// Open opens an HTML file for reading.
func Open(filename string, opts ...Option) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f, opts...)
}

// OpenReader reads all of r and extracts it.
func OpenReader(r io.Reader, opts ...Option) (*Reader, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading HTML: %w", err)
	}
	return FromBytes(content, opts...)
}

// FromBytes extracts content, which the Reader keeps a reference to.
func FromBytes(content []byte, opts ...Option) (*Reader, error) {
	reader := &Reader{
		opts: options{outerText: true, imageLinks: true},
	}
	for _, opt := range opts {
		opt(&reader.opts)
	}

	reader.charset = ParseCharset(content)
	source, err := decodeCharset(content, reader.charset)
	if err != nil {
		return nil, err
	}
	reader.source = source

	e := NewExtractor()
	e.Extract(source, reader.opts.outerText, reader.opts.preserveNewlines)
	reader.text = e.Text()
	reader.warnings = e.Warnings()
	reader.metadata = e.Metadata()
	reader.metadata.Charset = reader.charset

	if reader.opts.bodyOnly {
		start, end := bodyRange(source)
		e.Extract(source[start:end], reader.opts.outerText, reader.opts.preserveNewlines)
		reader.text = e.Text()
		reader.warnings = e.Warnings()
		for i := range reader.warnings {
			reader.warnings[i].Offset += start
		}
	}

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Text returns the extracted text.
func (r *Reader) Text() (string, error) {
	return r.text, nil
}

// Metadata returns the title, author, description, subject, keywords and
// declared charset of the document.
func (r *Reader) Metadata() model.Metadata {
	return r.metadata
}

// Warnings returns the diagnostics produced while extracting the text.
func (r *Reader) Warnings() []Warning {
	return r.warnings
}

// Source returns the markup after charset decoding. Link offsets refer to
// this buffer.
func (r *Reader) Source() []byte {
	return r.source
}

// Charset returns the declared character set, or "" if none was declared.
func (r *Reader) Charset() string {
	return r.charset
}

// BaseURL returns the URL links are resolved against: the document's
// <base href> if present, otherwise the WithBaseURL value.
func (r *Reader) BaseURL() string {
	if base := links.NewParser(r.source).BaseURL(); base != "" {
		return base
	}
	return r.opts.baseURL
}

// Links returns the links of the document in document order. Links are
// resolved when a base URL is known; otherwise URL is the raw link text.
func (r *Reader) Links() []model.Link {
	p := links.NewParser(r.source, links.WithImages(r.opts.imageLinks))

	base := r.BaseURL()
	var res *resolver.URLResolver
	if base != "" {
		var ropts []resolver.Option
		if r.opts.normalize {
			ropts = append(ropts, resolver.WithNormalization())
		}
		res = resolver.NewResolver(base, ropts...)
	}

	var result []model.Link
	for l, ok := p.Next(); ok; l, ok = p.Next() {
		raw := l.Text(r.source)
		u := raw
		if res != nil {
			u = res.Resolve(raw, l.Kind == links.Image)
		}
		result = append(result, model.Link{
			URL:    u,
			Raw:    raw,
			Kind:   l.Kind,
			Offset: l.Span.Start,
		})
	}
	return result
}

// Style returns the content of the first <style> element, or "".
func (r *Reader) Style() string {
	return string(StyleSection(r.source))
}

// Bookmarks returns the named anchors of the document in document order.
func (r *Reader) Bookmarks() []model.Bookmark {
	var result []model.Bookmark
	for at, name := links.FindBookmark(r.source, 0, len(r.source)); at >= 0; at, name = links.FindBookmark(r.source, at+1, len(r.source)) {
		result = append(result, model.Bookmark{Name: name, Offset: at})
	}
	return result
}

// StripHyperlinks returns the markup with <a href> wrappers removed and
// their content kept.
func (r *Reader) StripHyperlinks() []byte {
	return links.StripHyperlinks(r.source)
}

// Document returns the text, metadata and links of the document.
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Metadata = r.metadata
	doc.Text = r.text
	for _, l := range r.Links() {
		doc.AddLink(l)
	}
	return doc, nil
}
