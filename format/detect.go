// Package format provides input format detection for the htmltext library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML document.
	HTML
	// XHTML indicates an XHTML document.
	XHTML
	// XML indicates a generic XML document.
	XML
	// Text indicates plain text, possibly with a few tags in it.
	Text
)

// magicLen is how much of the content is inspected.
const magicLen = 512

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case XHTML:
		return "XHTML"
	case XML:
		return "XML"
	case Text:
		return "Text"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case XHTML:
		return ".xhtml"
	case XML:
		return ".xml"
	case Text:
		return ".txt"
	default:
		return ""
	}
}

// IsMarkup reports whether the format is tag based.
func (f Format) IsMarkup() bool {
	return f == HTML || f == XHTML || f == XML
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".shtml":
		return HTML
	case ".xhtml", ".xht":
		return XHTML
	case ".xml", ".rss", ".atom", ".svg":
		return XML
	case ".txt", ".text":
		return Text
	default:
		return Unknown
	}
}

// DetectFromMagic checks the start of the content to determine its format.
// Content that is valid UTF-8 and does not start with markup is Text.
// Returns Unknown for empty or binary content.
func DetectFromMagic(data []byte) Format {
	if len(data) > magicLen {
		data = data[:magicLen]
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 || hasControlBytes(data) {
		return Unknown
	}

	// Check for common signatures (case-insensitive)
	upper := bytes.ToUpper(data)
	switch {
	case bytes.HasPrefix(upper, []byte("<!DOCTYPE HTML")):
		if bytes.Contains(upper, []byte("XHTML")) {
			return XHTML
		}
		return HTML
	case bytes.HasPrefix(upper, []byte("<HTML")):
		if bytes.Contains(upper, []byte("HTTP://WWW.W3.ORG/1999/XHTML")) {
			return XHTML
		}
		return HTML
	case bytes.HasPrefix(upper, []byte("<?XML")):
		// XML declaration followed by html-like content is XHTML
		if bytes.Contains(upper, []byte("<HTML")) || bytes.Contains(upper, []byte("<!DOCTYPE HTML")) {
			return XHTML
		}
		return XML
	case data[0] == '<':
		return Unknown
	}

	// a truncated multi-byte rune at the cut is not binary
	for i := 0; i < utf8.UTFMax && len(data) > 0; i++ {
		if utf8.Valid(data) {
			return Text
		}
		data = data[:len(data)-1]
	}
	return Unknown
}

// hasControlBytes reports whether data contains control characters that
// don't occur in text files.
func hasControlBytes(data []byte) bool {
	for _, c := range data {
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' && c != '\f' {
			return true
		}
	}
	return false
}

// DetectFromReader inspects the beginning of the content to determine its
// format.
func DetectFromReader(r io.ReaderAt) (Format, error) {
	magic := make([]byte, magicLen)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectContent combines extension and content detection. The extension
// wins when it is recognized.
func DetectContent(filename string, data []byte) Format {
	if f := Detect(filename); f != Unknown {
		return f
	}
	return DetectFromMagic(data)
}
