package htmldoc

import (
	"bytes"

	"github.com/tsawler/htmltext/scan"
)

// Body returns the content between <body ...> and </body>. The whole text is
// returned if there is no complete body element.
func Body(text []byte) []byte {
	start, end := bodyRange(text)
	return text[start:end]
}

// bodyRange returns the bounds of the body content in text, or the whole of
// text when there is no complete body element.
func bodyRange(text []byte) (int, int) {
	start := scan.IndexFold(text, "<body")
	if start < 0 {
		return 0, len(text)
	}
	open := scan.IndexByteFrom(text, start, '>')
	if open < 0 {
		return 0, len(text)
	}
	end := scan.IndexFold(text[open+1:], "</body>")
	if end < 0 {
		return 0, len(text)
	}
	return open + 1, open + 1 + end
}

// StyleSection returns the trimmed content of the first <style> element with
// any "<!--" and "-->" wrapper removed, or nil if there is none.
func StyleSection(text []byte) []byte {
	start := scan.IndexFold(text, "<style")
	if start < 0 {
		return nil
	}
	open := scan.IndexByteFrom(text, start, '>')
	if open < 0 {
		return nil
	}
	end := scan.IndexFold(text[open+1:], "</style>")
	if end < 0 {
		return nil
	}
	style := bytes.TrimSpace(text[open+1 : open+1+end])
	style = bytes.TrimPrefix(style, []byte("<!--"))
	style = bytes.TrimSuffix(style, []byte("-->"))
	return bytes.TrimSpace(style)
}
