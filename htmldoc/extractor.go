package htmldoc

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html/atom"

	"github.com/tsawler/htmltext/entity"
	"github.com/tsawler/htmltext/model"
	"github.com/tsawler/htmltext/scan"
)

// Extractor converts HTML markup into plain text.
//
// An Extractor keeps its output buffer between calls, so the slice returned
// by Extract is only valid until the next call. It is not safe for
// concurrent use; use one Extractor per goroutine.
type Extractor struct {
	out      []byte
	warnings []Warning

	title       string
	author      string
	description string
	subject     string
	keywords    string

	// nesting depths; only depth > 0 changes behaviour
	preDepth int
	supDepth int
	subDepth int
}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// reset clears all per-run state.
func (e *Extractor) reset(preserveNewlines bool) {
	e.out = e.out[:0]
	e.warnings = e.warnings[:0]
	e.title, e.author, e.description, e.subject, e.keywords = "", "", "", "", ""
	e.preDepth, e.supDepth, e.subDepth = 0, 0, 0
	if preserveNewlines {
		e.preDepth = 1
	}
}

// Extract converts text to plain text and returns it. The result is nil for
// empty input.
//
// includeOuterText controls whether text before the first element and after
// the last one is kept. preserveNewlines treats the whole document as
// preformatted, which suits plain text that has a few tags in it.
func (e *Extractor) Extract(text []byte, includeOuterText, preserveNewlines bool) []byte {
	e.reset(preserveNewlines)
	if len(text) == 0 {
		return nil
	}
	if want := len(text) + len(text)/8; cap(e.out) < want {
		e.out = make([]byte, 0, want)
	}

	start := bytes.IndexByte(text, '<')
	if start < 0 {
		if includeOuterText {
			e.parseRawText(text, 0, false)
		}
		return e.out
	}
	if start > 0 && includeOuterText {
		e.parseRawText(text[:start], 0, true)
	}

	// tail is where trailing text starts once no '<' remains
	tail := -1

loop:
	for start >= 0 && start < len(text) {
		el := classify(text, start)
		end := -1
		symbolFont := false

		switch el.kind {
		case kindComment:
			i := bytes.Index(text[start+4:], []byte("-->"))
			if i < 0 {
				// an unterminated comment swallows the rest of the document
				break loop
			}
			end = start + 4 + i + len("-->")

		case kindScript, kindStyle, kindNoscript, kindAnnotation, kindAnnotationXML:
			end = skipBlock(text, start, el.kind.closer())
			if end < 0 {
				break loop
			}

		case kindMeta:
			closeTag := scan.CloseTag(text, start)
			if closeTag < 0 {
				break loop
			}
			e.readMeta(text[:closeTag+1], start)
			end = closeTag + 1

		case kindTitle, kindSubject:
			end = e.readTextElement(text, start, el.kind)
			if end < 0 {
				break loop
			}

		case kindStrayAngle:
			next := scan.IndexByteFrom(text, start+1, '<')
			if next < 0 {
				e.parseRawText(text[start:], start, false)
				break loop
			}
			e.parseRawText(text[start:next], start, true)
			start = next
			continue

		case kindCDATA:
			content := start + len("<![CDATA[")
			i := bytes.Index(text[content:], []byte("]]>"))
			if i < 0 {
				e.preDepth++
				e.parseRawText(text[content:], content, false)
				e.preDepth--
				break loop
			}
			e.out = append(e.out, text[content:content+i]...)
			end = content + i + len("]]>")

		default:
			symbolFont = usesSymbolFont(text, start, el)
			start = e.formatElement(text, start, el)

			closeTag := scan.CloseTag(text, start)
			if closeTag < 0 {
				// not a real element: skip to the next one
				next := scan.IndexByteFrom(text, start+1, '<')
				if next < 0 {
					break loop
				}
				start = next
				continue
			}
			end = closeTag + 1
		}

		next := scan.IndexByteFrom(text, end, '<')
		if next < 0 {
			tail = end
			break
		}
		before := len(e.out)
		e.parseRawText(text[end:next], end, true)
		if symbolFont {
			e.convertSymbolFont(before, end)
		}

		switch {
		case scan.HasPrefixFold(text[next:], "</pre>"):
			if e.preDepth > 0 {
				e.preDepth--
			}
		case scan.HasPrefixFold(text[next:], "</sup>"):
			if e.supDepth > 0 {
				e.supDepth--
			}
		case scan.HasPrefixFold(text[next:], "</sub>"):
			if e.subDepth > 0 {
				e.subDepth--
			}
		}
		start = next
	}

	if tail >= 0 && tail < len(text) && includeOuterText {
		e.parseRawText(text[tail:], tail, false)
	}
	return e.out
}

// skipBlock returns the offset just past closer (matched case-insensitively)
// for the block element at lt. Without a closer, only the opening element is
// skipped and scanning resumes at the next '<'. Returns -1 if neither exists.
func skipBlock(text []byte, lt int, closer string) int {
	if i := scan.IndexFold(text[lt:], closer); i >= 0 {
		return lt + i + len(closer)
	}
	closeTag := scan.CloseTag(text, lt)
	if closeTag < 0 {
		return -1
	}
	return scan.IndexByteFrom(text, closeTag, '<')
}

// readMeta stores the content of <meta name="author|description|keywords">.
func (e *Extractor) readMeta(tag []byte, lt int) {
	name := scan.ReadAttributeString(tag, lt, "name", false, false)
	var field *string
	switch {
	case strings.EqualFold(name, "author"):
		field = &e.author
	case strings.EqualFold(name, "description"):
		field = &e.description
	case strings.EqualFold(name, "keywords"):
		field = &e.keywords
	default:
		return
	}
	content, ok := scan.ReadAttribute(tag, lt, "content", false, true)
	if !ok {
		return
	}
	*field = DecodeValue(content.Bytes(tag))
}

// readTextElement stores the decoded content of a <title> or <subject>
// element and returns the offset to continue from, or -1 if the document ends
// inside of the element.
func (e *Extractor) readTextElement(text []byte, lt int, kind elementKind) int {
	closeTag := scan.CloseTag(text, lt)
	if closeTag < 0 {
		return -1
	}
	inner := closeTag + 1
	field := &e.title
	if kind == kindSubject {
		field = &e.subject
	}

	closer := kind.closer()
	if i := scan.IndexFold(text[inner:], closer); i >= 0 {
		*field = DecodeValue(text[inner : inner+i])
		return inner + i + len(closer)
	}
	// unclosed: the value runs to the next element
	next := scan.IndexByteFrom(text, inner, '<')
	if next < 0 {
		*field = DecodeValue(text[inner:])
		return -1
	}
	*field = DecodeValue(text[inner:next])
	return next
}

// usesSymbolFont reports whether the element at lt sets its text in the
// Symbol font.
func usesSymbolFont(text []byte, lt int, el element) bool {
	if el.atom == atom.Font && !el.closing {
		if face, ok := scan.ReadAttribute(text, lt, "face", false, true); ok &&
			scan.HasPrefixFold(face.Bytes(text), "Symbol") {
			return true
		}
	}
	family, ok := scan.ReadAttribute(text, lt, "font-family", true, true)
	return ok && scan.HasPrefixFold(family.Bytes(text), "Symbol")
}

// formatElement emits the spacing an element implies and updates the nesting
// depths. It returns the position to continue from, which is past lt when the
// element's content is skipped.
func (e *Extractor) formatElement(text []byte, lt int, el element) int {
	if el.closing {
		if isParagraphElement(el.atom) && el.atom != atom.Tr && el.atom != atom.Dt && el.atom != atom.Option {
			e.out = append(e.out, '\n', '\n')
		}
		return lt
	}

	switch {
	case el.atom == atom.Pre:
		e.preDepth++
	case el.atom == atom.Sup:
		e.supDepth++
	case el.atom == atom.Sub:
		e.subDepth++
	case isParagraphElement(el.atom):
		e.out = append(e.out, '\n', '\n')
		if pageBreak(text, lt) {
			e.out = append(e.out, '\f')
		}
	case el.atom == atom.Br:
		e.out = append(e.out, '\n')
	case el.atom == atom.Li:
		e.out = append(e.out, '\n', '\t')
	case el.atom == atom.Td:
		e.out = append(e.out, '\t')
	case el.atom == atom.Dd:
		e.out = append(e.out, ':', '\t')
	case el.atom == atom.A:
		href := scan.ReadAttributeString(text, lt, "href", false, false)
		// contact links often have no space before them
		if len(href) >= 7 && strings.EqualFold(href[:7], "mailto:") ||
			len(href) >= 4 && strings.EqualFold(href[:4], "tel:") {
			e.out = append(e.out, ' ')
		}
		if strings.Contains(scan.ReadAttributeString(text, lt, "class", false, false), "FooterLink") {
			e.out = append(e.out, '\n', '\n')
		}
	case el.atom == atom.Span:
		return e.formatSpan(text, lt)
	}
	return lt
}

func (e *Extractor) formatSpan(text []byte, lt int) int {
	switch scan.ReadAttributeString(text, lt, "data-type", false, false) {
	case "newline":
		e.out = append(e.out, '\n')
	case "footnote-ref-content":
		e.out = append(e.out, '\t')
	}

	class := scan.ReadAttributeString(text, lt, "class", false, false)
	switch {
	case class == "":
	case strings.Contains(class, "BookBanner") || class == "os-caption":
		e.out = append(e.out, '\n', '\n')
	case class == "os-term-section":
		e.out = append(e.out, '\t')
	case strings.Contains(class, "hidden"):
		// hidden spans are dropped along with everything inside of them
		if closing := scan.FindClosingElement(text, lt, len(text), "span"); closing >= 0 {
			return closing
		}
	}
	return lt
}

// pageBreak reports whether the element at lt asks for a page break before
// itself.
func pageBreak(text []byte, lt int) bool {
	v, ok := scan.ReadAttribute(text, lt, "page-break-before", true, false)
	if !ok {
		return false
	}
	b := v.Bytes(text)
	return scan.HasPrefixFold(b, "always") || scan.HasPrefixFold(b, "auto") ||
		scan.HasPrefixFold(b, "left") || scan.HasPrefixFold(b, "right")
}

// convertSymbolFont rewrites the output written since before from Symbol font
// letters to the code points they display as.
func (e *Extractor) convertSymbolFont(before, offset int) {
	section := e.out[before:]
	if len(section) == 0 {
		return
	}
	converted := make([]byte, 0, len(section)+len(section)/2)
	for len(section) > 0 {
		r, size := utf8.DecodeRune(section)
		converted = utf8.AppendRune(converted, entity.Symbol(r))
		section = section[size:]
	}
	e.out = append(e.out[:before], converted...)
	e.warn(SymbolFontSubstitution, offset, `Symbol font used for the following: "`+string(converted)+`"`)
}

func (e *Extractor) warn(kind WarningKind, offset int, message string) {
	e.warnings = append(e.warnings, Warning{Kind: kind, Offset: offset, Message: message})
}

// Text returns a copy of the output of the last Extract call.
func (e *Extractor) Text() string {
	return string(e.out)
}

// Warnings returns the diagnostics from the last Extract call, in document
// order.
func (e *Extractor) Warnings() []Warning {
	if len(e.warnings) == 0 {
		return nil
	}
	return append([]Warning(nil), e.warnings...)
}

// Metadata returns the metadata found by the last Extract call.
func (e *Extractor) Metadata() model.Metadata {
	return model.Metadata{
		Title:       e.title,
		Author:      e.author,
		Description: e.description,
		Subject:     e.subject,
		Keywords:    e.keywords,
	}
}

// DecodeValue decodes an attribute value or element body that may contain
// entities and markup, then trims it and collapses runs of whitespace. A
// fresh Extractor is used so no state is shared with the caller.
func DecodeValue(value []byte) string {
	if len(value) == 0 {
		return ""
	}
	var sub Extractor
	return strings.Join(strings.Fields(string(sub.Extract(value, true, false))), " ")
}

// ExtractString is a convenience wrapper that runs a new Extractor over s.
func ExtractString(s string) (string, []Warning) {
	e := NewExtractor()
	e.Extract([]byte(s), true, false)
	return e.Text(), e.Warnings()
}
