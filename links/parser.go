package links

import (
	"strings"

	"github.com/tsawler/htmltext/scan"
)

// Kind classifies a link by the construct it was found in.
type Kind int

const (
	// Normal links come from anchors, <link>, <area>, frames and meta
	// refreshes.
	Normal Kind = iota
	// Image links are the src of an <img>.
	Image
	// ScriptEmbedded links are a <script src> or a file-like string literal
	// inside of a script.
	ScriptEmbedded
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Image:
		return "image"
	case ScriptEmbedded:
		return "script"
	default:
		return "unknown"
	}
}

// Link is a link occurrence in the parsed text.
type Link struct {
	Span scan.Span
	Kind Kind
}

// Text returns the raw link text from src, the buffer the parser was given.
func (l Link) Text(src []byte) string {
	return l.Span.String(src)
}

// Option configures a Parser.
type Option func(*Parser)

// WithImages sets whether <img> sources are reported (default: true).
func WithImages(include bool) Option {
	return func(p *Parser) {
		p.includeImages = include
	}
}

// Parser enumerates the links of an HTML document in document order.
type Parser struct {
	text          []byte
	pos           int
	includeImages bool
	base          string

	// set while the literals of a script body are being reported
	script    *ScriptParser
	scriptEnd int
}

// NewParser creates a Parser over text.
func NewParser(text []byte, opts ...Option) *Parser {
	p := &Parser{
		text:          text,
		includeImages: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.base = findBaseURL(text)
	return p
}

// BaseURL returns the <base href> declared in the document head, or "".
func (p *Parser) BaseURL() string {
	return p.base
}

// Next returns the next link, or false when the text is exhausted.
func (p *Parser) Next() (Link, bool) {
	if p.script != nil {
		if s, ok := p.script.Next(); ok {
			return Link{Span: s, Kind: ScriptEmbedded}, true
		}
		p.script = nil
		if p.scriptEnd > p.pos {
			p.pos = p.scriptEnd
		}
	}

	text := p.text
	for {
		lt := scan.IndexByteFrom(text, p.pos, '<')
		if lt < 0 || lt+1 >= len(text) {
			p.pos = len(text)
			return Link{}, false
		}
		p.pos = lt + 1
		if text[lt+1] == '/' {
			continue
		}
		name := lt + 1

		switch {
		case scan.CompareElement(text, name, "img", true):
			if !p.includeImages {
				continue
			}
			if s, ok := scan.ReadAttribute(text, lt, "src", false, true); ok {
				p.pos = s.End()
				return Link{Span: s, Kind: Image}, true
			}

		case scan.CompareElement(text, name, "script", true):
			if l, ok := p.enterScript(lt); ok {
				return l, true
			}

		case scan.CompareElement(text, name, "frame", true),
			scan.CompareElement(text, name, "iframe", true):
			if s, ok := scan.ReadAttribute(text, lt, "src", false, true); ok {
				p.pos = s.End()
				return Link{Span: s, Kind: Normal}, true
			}

		case scan.CompareElement(text, name, "a", true),
			scan.CompareElement(text, name, "link", true),
			scan.CompareElement(text, name, "area", true):
			if s, ok := scan.ReadAttribute(text, lt, "href", false, true); ok {
				p.pos = s.End()
				return Link{Span: s, Kind: Normal}, true
			}

		case scan.CompareElement(text, name, "meta", true):
			if s, ok := metaRefresh(text, lt); ok {
				p.pos = s.End()
				return Link{Span: s, Kind: Normal}, true
			}
		}
	}
}

// enterScript handles the <script> at lt: its src is reported first, then
// any file-like literals in its body.
func (p *Parser) enterScript(lt int) (Link, bool) {
	text := p.text
	closeTag := scan.CloseTag(text, lt)
	if closeTag < 0 {
		return Link{}, false
	}
	if end := scan.IndexFold(text[closeTag:], "</script>"); end >= 0 {
		p.scriptEnd = closeTag + end
		p.script = NewScriptParser(text, closeTag+1, p.scriptEnd)
	}

	if s, ok := scan.ReadAttribute(text, lt, "src", false, true); ok {
		p.pos = s.End()
		return Link{Span: s, Kind: ScriptEmbedded}, true
	}
	if p.script == nil {
		return Link{}, false
	}
	if s, ok := p.script.Next(); ok {
		return Link{Span: s, Kind: ScriptEmbedded}, true
	}
	p.script = nil
	p.pos = p.scriptEnd
	return Link{}, false
}

// metaRefresh reads the target of <meta http-equiv="refresh" content="0; url=...">.
func metaRefresh(text []byte, lt int) (scan.Span, bool) {
	closeTag := scan.CloseTag(text, lt)
	if closeTag < 0 {
		return scan.Span{}, false
	}
	tag := text[:closeTag+1]
	if v := scan.ReadAttributeString(tag, lt, "http-equiv", false, false); !strings.EqualFold(v, "refresh") {
		return scan.Span{}, false
	}
	at := scan.FindAttribute(tag, lt, "url=", true)
	if at < 0 {
		return scan.Span{}, false
	}
	start := at + len("url=")
	for start < closeTag && (scan.IsSpace(text[start]) || text[start] == '\'' || text[start] == '"') {
		start++
	}
	end := scan.IndexAnyFrom(tag, start, "'\">")
	if end <= start {
		return scan.Span{}, false
	}
	return scan.Span{Start: start, Len: end - start}, true
}

// findBaseURL returns the href of a <base> element inside of <head>.
func findBaseURL(text []byte) string {
	head := scan.FindElement(text, 0, len(text), "head", true)
	if head < 0 {
		return ""
	}
	end := len(text)
	if i := scan.IndexFold(text[head:], "</head>"); i >= 0 {
		end = head + i
	}
	base := scan.FindElement(text, head, end, "base", true)
	if base < 0 {
		return ""
	}
	return scan.ReadAttributeString(text, base, "href", false, false)
}

// All returns every remaining link.
func (p *Parser) All() []Link {
	var result []Link
	for l, ok := p.Next(); ok; l, ok = p.Next() {
		result = append(result, l)
	}
	return result
}
