package filters

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// MaxDecodedSize bounds the size of a decompressed document.
const MaxDecodedSize = 256 << 20

// ErrTooLarge is returned when decompressed data exceeds MaxDecodedSize.
var ErrTooLarge = errors.New("decompressed data exceeds size limit")

// Encoding identifies a compression wrapper.
type Encoding int

const (
	// None is uncompressed data.
	None Encoding = iota
	// Gzip is RFC 1952 gzip data.
	Gzip
	// Zlib is RFC 1950 zlib (deflate) data.
	Zlib
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return "none"
	}
}

// DetectEncoding identifies the compression wrapper of data by its magic
// bytes.
func DetectEncoding(data []byte) Encoding {
	if len(data) < 2 {
		return None
	}
	if data[0] == 0x1F && data[1] == 0x8B {
		return Gzip
	}
	// zlib: CM=8 (deflate), window <= 32K, no preset dictionary, header
	// checksum divisible by 31
	if data[0]&0x0F == 8 && data[0]>>4 <= 7 && data[1]&0x20 == 0 &&
		(uint16(data[0])<<8|uint16(data[1]))%31 == 0 {
		return Zlib
	}
	return None
}

// Decode decompresses data if it is gzip or zlib compressed, and returns it
// unchanged otherwise. A zlib header is only two bytes and plain text can
// happen to match it, so data that fails to inflate as zlib is returned
// unchanged too.
func Decode(data []byte) ([]byte, Encoding, error) {
	enc := DetectEncoding(data)
	var (
		decoded []byte
		err     error
	)
	switch enc {
	case Gzip:
		decoded, err = GzipDecode(data)
	case Zlib:
		decoded, err = FlateDecode(data)
	default:
		return data, None, nil
	}
	if err != nil {
		if enc == Zlib && !errors.Is(err, ErrTooLarge) {
			return data, None, nil
		}
		return nil, enc, err
	}
	return decoded, enc, nil
}

// GzipDecode decompresses gzip data. Multi-member streams are concatenated.
func GzipDecode(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip decompression failed: %w", err)
	}
	defer reader.Close()

	return readLimited(reader)
}

// FlateDecode decompresses zlib data.
func FlateDecode(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression failed: %w", err)
	}
	defer reader.Close()

	return readLimited(reader)
}

// readLimited reads r to the end, failing once MaxDecodedSize is exceeded.
func readLimited(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	if n > MaxDecodedSize {
		return nil, ErrTooLarge
	}
	return buf.Bytes(), nil
}

// TrimExtension removes a compression extension (".gz", ".z") from
// filename, so "page.html.gz" becomes "page.html".
func TrimExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gz", ".z":
		return filename[:len(filename)-len(filepath.Ext(filename))]
	}
	return filename
}
