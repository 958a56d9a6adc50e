package htmldoc

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"

	"github.com/tsawler/htmltext/scan"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParseCharset returns the character set declared by a document, or "" if
// it declares none. It understands <meta charset=...>, the http-equiv
// Content-Type form, and the encoding of an <?xml ...?> prolog. Nothing is
// guessed from the bytes themselves.
func ParseCharset(content []byte) string {
	content = bytes.TrimPrefix(content, utf8BOM)
	if bytes.HasPrefix(content, []byte("<?xml")) {
		if enc := xmlEncoding(content); enc != "" {
			return enc
		}
	}

	meta := scan.IndexFold(content, "<meta")
	for meta >= 0 {
		closeTag := scan.CloseTag(content, meta)
		if closeTag < 0 {
			return ""
		}
		tag := content[meta : closeTag+1]
		if v := scan.ReadAttributeString(tag, 0, "charset", false, false); v != "" {
			return v
		}
		if scan.IndexFold(tag, "content-type") >= 0 {
			if v := charsetFromContentType(scan.ReadAttributeString(tag, 0, "content", false, true)); v != "" {
				return v
			}
		}
		next := scan.IndexFold(content[closeTag:], "<meta")
		if next < 0 {
			break
		}
		meta = closeTag + next
	}
	return ""
}

// xmlEncoding reads encoding="..." from an XML prolog.
func xmlEncoding(content []byte) string {
	end := bytes.Index(content, []byte("?>"))
	if end < 0 {
		return ""
	}
	prolog := content[:end]
	i := bytes.Index(prolog, []byte("encoding="))
	if i < 0 || i+len("encoding=") >= len(prolog) {
		return ""
	}
	v := prolog[i+len("encoding="):]
	quote := v[0]
	if quote != '"' && quote != '\'' {
		return ""
	}
	v = v[1:]
	j := bytes.IndexByte(v, quote)
	if j < 0 {
		return ""
	}
	return string(v[:j])
}

// charsetFromContentType extracts the charset from a value such as
// "text/html; charset=utf-8". Without "charset=", whatever follows the ';' is
// used.
func charsetFromContentType(v string) string {
	var rest string
	if i := strings.Index(strings.ToLower(v), "charset="); i >= 0 {
		rest = v[i+len("charset="):]
	} else if i := strings.IndexByte(v, ';'); i >= 0 {
		rest = v[i+1:]
	} else {
		return ""
	}
	rest = strings.TrimLeft(rest, " '\"")
	if end := strings.IndexAny(rest, " '\"/>;"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

// decodeCharset converts content from the named character set to UTF-8.
// Content in an unknown or UTF-8 character set is returned as is, minus any
// byte order mark.
func decodeCharset(content []byte, label string) ([]byte, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if label == "" {
		return content, nil
	}
	enc, name := charset.Lookup(label)
	if enc == nil || name == "utf-8" {
		return content, nil
	}
	decoded, _, err := transform.Bytes(enc.NewDecoder(), content)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return decoded, nil
}
