package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, "HTML"},
		{XHTML, "XHTML"},
		{XML, "XML"},
		{Text, "Text"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{HTML, ".html"},
		{XHTML, ".xhtml"},
		{XML, ".xml"},
		{Text, ".txt"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_IsMarkup(t *testing.T) {
	for _, f := range []Format{HTML, XHTML, XML} {
		if !f.IsMarkup() {
			t.Errorf("%v.IsMarkup() = false", f)
		}
	}
	for _, f := range []Format{Text, Unknown} {
		if f.IsMarkup() {
			t.Errorf("%v.IsMarkup() = true", f)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"page.html", HTML},
		{"page.HTML", HTML},
		{"page.Htm", HTML},
		{"page.shtml", HTML},
		{"page.xhtml", XHTML},
		{"page.xht", XHTML},
		{"feed.xml", XML},
		{"feed.rss", XML},
		{"notes.txt", Text},
		{"notes.TEXT", Text},
		{"document.pdf", Unknown},
		{"document", Unknown},
		{"", Unknown},
		{"/path/to/file.html", HTML},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{
			name: "HTML with DOCTYPE",
			data: []byte("<!DOCTYPE html>\n<html>"),
			want: HTML,
		},
		{
			name: "HTML with html tag",
			data: []byte("<html><head>"),
			want: HTML,
		},
		{
			name: "HTML with whitespace before DOCTYPE",
			data: []byte("  \n  <!DOCTYPE HTML PUBLIC"),
			want: HTML,
		},
		{
			name: "XHTML doctype",
			data: []byte(`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN">`),
			want: XHTML,
		},
		{
			name: "XHTML namespace",
			data: []byte(`<html xmlns="http://www.w3.org/1999/xhtml">`),
			want: XHTML,
		},
		{
			name: "XML prolog with html",
			data: []byte("<?xml version=\"1.0\"?>\n<html>"),
			want: XHTML,
		},
		{
			name: "XML",
			data: []byte(`<?xml version="1.0"?><rss version="2.0">`),
			want: XML,
		},
		{
			name: "BOM before HTML",
			data: []byte("\xEF\xBB\xBF<html>"),
			want: HTML,
		},
		{
			name: "text file",
			data: []byte("Hello, World!\nSecond line"),
			want: Text,
		},
		{
			name: "text starting with a fragment",
			data: []byte("<p>fragment</p>"),
			want: Unknown,
		},
		{
			name: "empty data",
			data: []byte{},
			want: Unknown,
		},
		{
			name: "binary data",
			data: []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			want: Unknown,
		},
		{
			name: "invalid UTF-8",
			data: []byte("caf\xe9 au lait"),
			want: Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromMagic_TruncatedRune(t *testing.T) {
	data := append(bytes.Repeat([]byte("a"), magicLen-1), "é"...)
	if got := DetectFromMagic(data); got != Text {
		t.Errorf("DetectFromMagic() = %v, want Text", got)
	}
}

func TestDetectFromReader_HTML(t *testing.T) {
	data := []byte("<!DOCTYPE html>\n<html><head><title>Test</title></head><body></body></html>")
	r := bytes.NewReader(data)

	format, err := DetectFromReader(r)
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != HTML {
		t.Errorf("DetectFromReader() = %v, want HTML", format)
	}
}

func TestDetectFromReader_Text(t *testing.T) {
	r := bytes.NewReader([]byte("Hello, World! This is plain text."))

	format, err := DetectFromReader(r)
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Text {
		t.Errorf("DetectFromReader() = %v, want Text", format)
	}
}

type errReaderAt struct{}

func (errReaderAt) ReadAt([]byte, int64) (int, error) { return 0, errors.New("read failed") }

func TestDetectFromReader_Error(t *testing.T) {
	if _, err := DetectFromReader(errReaderAt{}); err == nil {
		t.Error("DetectFromReader() expected error")
	}
}

func TestDetectContent(t *testing.T) {
	if got := DetectContent("notes.txt", []byte("<html>")); got != Text {
		t.Errorf("extension should win, got %v", got)
	}
	if got := DetectContent("page", []byte("<html>")); got != HTML {
		t.Errorf("content fallback = %v, want HTML", got)
	}
}
