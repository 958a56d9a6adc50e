package links

import "github.com/tsawler/htmltext/scan"

// ImageParser enumerates the src of every <img> element. Images without a
// src are skipped.
type ImageParser struct {
	text []byte
	pos  int
}

// NewImageParser creates an ImageParser over text.
func NewImageParser(text []byte) *ImageParser {
	return &ImageParser{text: text}
}

// Next returns the next image source, or false when there are no more.
func (p *ImageParser) Next() (scan.Span, bool) {
	for p.pos < len(p.text) {
		img := scan.FindElement(p.text, p.pos, len(p.text), "img", true)
		if img < 0 {
			break
		}
		if s, ok := scan.ReadAttribute(p.text, img, "src", false, true); ok {
			p.pos = s.End()
			return s, true
		}
		p.pos = img + len("<img")
	}
	p.pos = len(p.text)
	return scan.Span{}, false
}
