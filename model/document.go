package model

import (
	"strings"

	"github.com/tsawler/htmltext/links"
)

// Document is everything extracted from one HTML document.
type Document struct {
	Metadata Metadata
	Text     string
	Links    []Link
}

// Metadata contains document-level information
type Metadata struct {
	Title       string
	Author      string
	Description string
	Subject     string
	Keywords    string // as written, usually comma separated
	Charset     string // declared charset, empty if none
}

// Link is a hyperlink found in a document.
type Link struct {
	URL    string     // absolute URL
	Raw    string     // reference as written in the markup
	Kind   links.Kind // how the link was found
	Offset int        // byte offset of Raw in the source
}

// Bookmark is a named anchor (<a name="...">) in a document.
type Bookmark struct {
	Name   string // without a leading '#'
	Offset int    // byte offset of the anchor's '<' in the source
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Links: make([]Link, 0),
	}
}

// AddLink appends a link to the document.
func (d *Document) AddLink(l Link) {
	d.Links = append(d.Links, l)
}

// LinkCount returns the number of links in the document.
func (d *Document) LinkCount() int {
	return len(d.Links)
}

// LinksOfKind returns the links of the given kind, in document order.
func (d *Document) LinksOfKind(kind links.Kind) []Link {
	var result []Link
	for _, l := range d.Links {
		if l.Kind == kind {
			result = append(result, l)
		}
	}
	return result
}

// KeywordList splits Keywords on commas and semicolons, dropping empty
// entries.
func (m Metadata) KeywordList() []string {
	fields := strings.FieldsFunc(m.Keywords, func(r rune) bool {
		return r == ',' || r == ';'
	})
	result := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			result = append(result, f)
		}
	}
	return result
}

// IsEmpty reports whether no metadata field is set.
func (m Metadata) IsEmpty() bool {
	return m == Metadata{}
}
