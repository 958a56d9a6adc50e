package links

import "github.com/tsawler/htmltext/scan"

// minScriptLinkLen is the shortest literal that can be "x.ext" plus a path.
const minScriptLinkLen = 6

// ScriptParser enumerates string literals in a script body that look like
// links to files: at least six characters, a '.' starting a three or four
// letter extension, and no characters that are unsafe in a URI.
type ScriptParser struct {
	text []byte
	pos  int
	end  int
}

// NewScriptParser creates a ScriptParser over text[start:end].
func NewScriptParser(text []byte, start, end int) *ScriptParser {
	if end > len(text) {
		end = len(text)
	}
	if start < 0 {
		start = 0
	}
	return &ScriptParser{text: text, pos: start, end: end}
}

// Next returns the content of the next link-like literal (without quotes),
// or false when there are no more.
func (p *ScriptParser) Next() (scan.Span, bool) {
	body := p.text[:p.end]
	for p.pos < p.end {
		open := scan.IndexAnyFrom(body, p.pos, `"'`)
		if open < 0 {
			break
		}
		closing := scan.IndexByteFrom(body, open+1, body[open])
		if closing < 0 {
			break
		}
		p.pos = closing + 1
		if s := (scan.Span{Start: open + 1, Len: closing - open - 1}); looksLikeFile(s.Bytes(body)) {
			return s, true
		}
	}
	p.pos = p.end
	return scan.Span{}, false
}

func looksLikeFile(lit []byte) bool {
	n := len(lit)
	if n < minScriptLinkLen || (lit[n-4] != '.' && lit[n-5] != '.') {
		return false
	}
	for _, c := range lit {
		if isUnsafeURIChar(c) {
			return false
		}
	}
	return true
}

// isUnsafeURIChar reports whether c can't appear unescaped in a URI.
func isUnsafeURIChar(c byte) bool {
	if c <= 0x20 || c == 0x7F {
		return true
	}
	switch c {
	case '"', '<', '>', '\\', '{', '}', '|', '^', '`':
		return true
	}
	return false
}
