package htmldoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/htmltext/links"
)

func TestParseCharset(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{"meta charset", `<head><meta charset="iso-8859-1"></head>`, "iso-8859-1"},
		{"content type", `<meta http-equiv="Content-Type" content="text/html; charset=windows-1252">`, "windows-1252"},
		{"second meta", `<meta name="author" content="x"><meta charset=utf-8>`, "utf-8"},
		{"xml prolog", `<?xml version="1.0" encoding="UTF-8"?><html/>`, "UTF-8"},
		{"bom and prolog", "\xEF\xBB\xBF<?xml version='1.0' encoding='koi8-r'?>", "koi8-r"},
		{"none", `<html><body>x</body></html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCharset([]byte(tt.html)); got != tt.want {
				t.Errorf("ParseCharset() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCharset(t *testing.T) {
	got, err := decodeCharset([]byte("caf\xe9"), "iso-8859-1")
	if err != nil {
		t.Fatalf("decodeCharset() error = %v", err)
	}
	if string(got) != "café" {
		t.Errorf("decodeCharset() = %q, want %q", got, "café")
	}

	got, err = decodeCharset([]byte("\xEF\xBB\xBFplain"), "no-such-charset")
	if err != nil {
		t.Fatalf("unknown charset error = %v", err)
	}
	if string(got) != "plain" {
		t.Errorf("unknown charset = %q, want %q", got, "plain")
	}
}

func TestBody(t *testing.T) {
	if got := string(Body([]byte(`<html><body class="c">Hi</body></html>`))); got != "Hi" {
		t.Errorf("Body() = %q, want %q", got, "Hi")
	}
	if got := string(Body([]byte(`no body`))); got != "no body" {
		t.Errorf("Body() without body = %q", got)
	}
}

func TestStyleSection(t *testing.T) {
	if got := string(StyleSection([]byte("<head><style>\n<!-- p { margin: 0 } -->\n</style></head>"))); got != "p { margin: 0 }" {
		t.Errorf("StyleSection() = %q", got)
	}
	if got := StyleSection([]byte(`<p>x</p>`)); got != nil {
		t.Errorf("StyleSection() without style = %q, want nil", got)
	}
}

const samplePage = `<html><head><meta charset="iso-8859-1"><title>Caf` + "\xe9" + `</title></head>
<body><p>Menu &amp; prices</p><a href="/x.html">x</a><img src="logo.png"></body></html>`

func TestFromBytes(t *testing.T) {
	r, err := FromBytes([]byte(samplePage), WithBaseURL("http://a.com/dir/"))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	defer r.Close()

	if r.Charset() != "iso-8859-1" {
		t.Errorf("Charset() = %q", r.Charset())
	}
	m := r.Metadata()
	if m.Title != "Café" || m.Charset != "iso-8859-1" {
		t.Errorf("Metadata() = %+v", m)
	}
	text, err := r.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	if !strings.Contains(text, "Menu & prices") {
		t.Errorf("Text() = %q, want it to contain %q", text, "Menu & prices")
	}
	if len(r.Warnings()) != 0 {
		t.Errorf("Warnings() = %v", r.Warnings())
	}

	got := r.Links()
	if len(got) != 2 {
		t.Fatalf("Links() = %v, want 2 links", got)
	}
	if got[0].URL != "http://a.com/x.html" || got[0].Raw != "/x.html" || got[0].Kind != links.Normal {
		t.Errorf("Links()[0] = %+v", got[0])
	}
	if got[1].URL != "http://a.com/dir/logo.png" || got[1].Kind != links.Image {
		t.Errorf("Links()[1] = %+v", got[1])
	}
	if src := string(r.Source()[got[0].Offset : got[0].Offset+len(got[0].Raw)]); src != "/x.html" {
		t.Errorf("Offset points at %q", src)
	}
}

func TestReaderOptions(t *testing.T) {
	r, err := FromBytes([]byte(samplePage), WithImageLinks(false), WithOuterText(false))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	got := r.Links()
	if len(got) != 1 {
		t.Fatalf("Links() = %v, want 1 link", got)
	}
	// no base URL: the raw reference is kept
	if got[0].URL != "/x.html" {
		t.Errorf("URL = %q, want %q", got[0].URL, "/x.html")
	}
}

func TestReaderBaseElement(t *testing.T) {
	page := `<head><base href="http://b.com/docs/"></head><a href="../up.html">u</a>`
	r, err := FromBytes([]byte(page), WithBaseURL("http://a.com/"))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if r.BaseURL() != "http://b.com/docs/" {
		t.Errorf("BaseURL() = %q", r.BaseURL())
	}
	got := r.Links()
	if len(got) != 1 || got[0].URL != "http://b.com/up.html" {
		t.Errorf("Links() = %+v", got)
	}
}

func TestReaderNormalization(t *testing.T) {
	page := `<a href="/a/./b/../c.html">c</a>`
	r, err := FromBytes([]byte(page), WithBaseURL("http://a.com/"), WithNormalization(true))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	if got := r.Links(); len(got) != 1 || got[0].URL != "http://a.com/a/c.html" {
		t.Errorf("Links() = %+v", got)
	}
}

func TestReaderDocument(t *testing.T) {
	r, err := FromBytes([]byte(samplePage), WithBaseURL("http://a.com/"))
	if err != nil {
		t.Fatalf("FromBytes() error = %v", err)
	}
	doc, err := r.Document()
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}
	if doc.Metadata.Title != "Café" {
		t.Errorf("Title = %q", doc.Metadata.Title)
	}
	if doc.LinkCount() != 2 || len(doc.LinksOfKind(links.Image)) != 1 {
		t.Errorf("Links = %+v", doc.Links)
	}
	if !strings.Contains(doc.Text, "Menu & prices") {
		t.Errorf("Text = %q", doc.Text)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<title>T</title><p>Body</p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()
	if r.Metadata().Title != "T" {
		t.Errorf("Title = %q", r.Metadata().Title)
	}
	if text, _ := r.Text(); text != "\n\nBody\n\n" {
		t.Errorf("Text() = %q", text)
	}
}

func TestOpenNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.html"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want it to wrap os.ErrNotExist", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestOpenReaderError(t *testing.T) {
	_, err := OpenReader(failingReader{})
	if err == nil || !strings.Contains(err.Error(), "reading HTML") {
		t.Errorf("OpenReader() error = %v", err)
	}
}
