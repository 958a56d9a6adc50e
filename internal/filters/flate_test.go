package filters

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"testing"
)

// zlibCompress compresses data for testing
func zlibCompress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}

// gzipCompress compresses data for testing
func gzipCompress(data []byte) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	w.Write(data)
	w.Close()
	return buf.Bytes()
}

func TestFlateDecodeBasic(t *testing.T) {
	original := []byte("<p>Hello, World! This is test data for FlateDecode.</p>")

	decoded, err := FlateDecode(zlibCompress(original))
	if err != nil {
		t.Fatalf("FlateDecode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded data doesn't match original\ngot:  %s\nwant: %s", decoded, original)
	}
}

func TestGzipDecodeBasic(t *testing.T) {
	original := []byte("<html><body>gzip</body></html>")

	decoded, err := GzipDecode(gzipCompress(original))
	if err != nil {
		t.Fatalf("GzipDecode failed: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Errorf("decoded = %q, want %q", decoded, original)
	}
}

func TestFlateDecodeInvalid(t *testing.T) {
	if _, err := FlateDecode([]byte("not compressed")); err == nil {
		t.Error("expected error for invalid zlib data")
	}
	if _, err := GzipDecode([]byte{0x1F, 0x8B, 0x00}); err == nil {
		t.Error("expected error for truncated gzip data")
	}
}

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Encoding
	}{
		{"gzip", gzipCompress([]byte("x")), Gzip},
		{"zlib", zlibCompress([]byte("x")), Zlib},
		{"html", []byte("<html>"), None},
		{"text", []byte("xy"), None},
		{"short", []byte{0x1F}, None},
		{"empty", nil, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectEncoding(tt.data); got != tt.want {
				t.Errorf("DetectEncoding() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	original := []byte("<p>page</p>")

	for _, data := range [][]byte{gzipCompress(original), zlibCompress(original), original} {
		decoded, _, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded, original) {
			t.Errorf("Decode() = %q, want %q", decoded, original)
		}
	}

	// "x^" is a valid zlib header but this is plain text
	text := []byte("x^2 + y^2")
	if decoded, enc, err := Decode(text); err != nil || enc != None || !bytes.Equal(decoded, text) {
		t.Errorf("Decode(%q) = %q, %v, %v", text, decoded, enc, err)
	}
	if _, _, err := Decode([]byte{0x1F, 0x8B, 0x00}); err == nil {
		t.Error("expected error for truncated gzip data")
	}

	if _, enc, _ := Decode(gzipCompress(original)); enc != Gzip {
		t.Errorf("encoding = %v, want gzip", enc)
	}
}

func TestEncodingString(t *testing.T) {
	if Gzip.String() != "gzip" || Zlib.String() != "zlib" || None.String() != "none" {
		t.Errorf("unexpected names: %s %s %s", Gzip, Zlib, None)
	}
}

func TestTrimExtension(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"page.html.gz", "page.html"},
		{"PAGE.HTM.GZ", "PAGE.HTM"},
		{"archive/page.xhtml.Z", "archive/page.xhtml"},
		{"page.html", "page.html"},
		{"page", "page"},
	}
	for _, tt := range tests {
		if got := TrimExtension(tt.in); got != tt.want {
			t.Errorf("TrimExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
