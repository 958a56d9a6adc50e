package htmldoc

import (
	"bytes"
	"unicode/utf8"

	"github.com/tsawler/htmltext/entity"
	"github.com/tsawler/htmltext/scan"
)

// maxCodePoint bounds numeric references so that overlong digit runs can't
// overflow.
const maxCodePoint = utf8.MaxRune

// parseRawText decodes a run of text between elements and appends it to the
// output. base is the offset of text within the input, used for warnings.
// closed reports that the run is followed by a '<', which ends an entity
// left open at the end of the run.
func (e *Extractor) parseRawText(text []byte, base int, closed bool) {
	stops := "\r\n&$"
	if e.preDepth > 0 {
		stops = "&$"
	}

	for len(text) > 0 {
		i := bytes.IndexAny(text, stops)
		if i < 0 {
			break
		}
		e.copyPlain(text[:i])

		var n int
		switch text[i] {
		case '&':
			n = e.decodeEntity(text[i:], base+i, closed)
		case '$':
			n = e.skipPlaceholder(text[i:])
		default:
			// line breaks outside of preformatted text become spaces
			e.out = append(e.out, ' ')
			n = 1
		}
		text = text[i+n:]
		base += i + n
	}
	e.copyPlain(text)
}

// copyPlain appends text that needs no decoding, converting it to
// superscript or subscript glyphs when inside of <sup> or <sub>.
func (e *Extractor) copyPlain(text []byte) {
	var conv func(rune) rune
	switch {
	case e.supDepth > 0:
		conv = entity.Superscript
	case e.subDepth > 0:
		conv = entity.Subscript
	default:
		e.out = append(e.out, text...)
		return
	}
	for len(text) > 0 {
		r, size := utf8.DecodeRune(text)
		if r == utf8.RuneError && size == 1 {
			e.out = append(e.out, text[0])
		} else {
			e.out = utf8.AppendRune(e.out, conv(r))
		}
		text = text[size:]
	}
}

// skipPlaceholder handles a '$' at text[0]. A "${...}" template placeholder
// is dropped; any other '$' is literal. It returns the bytes consumed.
func (e *Extractor) skipPlaceholder(text []byte) int {
	if len(text) > 1 && text[1] == '{' {
		if j := scan.IndexByteFrom(text, 2, '}'); j >= 0 {
			return j + 1
		}
	}
	e.out = append(e.out, '$')
	return 1
}

// decodeEntity decodes the entity starting with the '&' at text[0] and
// returns the number of bytes consumed. When closed is set the end of text
// stands for the '<' that follows it; that '<' is never consumed.
func (e *Extractor) decodeEntity(text []byte, offset int, closed bool) int {
	d := scan.IndexAnyFrom(text, 1, ";< \t\n\r")
	if d < 0 && closed && len(text) > 1 {
		d = len(text)
	}
	if d < 0 {
		// nothing terminates it, so this is just an ampersand
		e.out = append(e.out, '&')
		return 1
	}
	if d == 1 && scan.IsSpace(text[1]) {
		e.out = append(e.out, '&', ' ')
		return 2
	}
	if text[1] == '#' {
		return e.decodeNumeric(text, d, offset)
	}

	v := entity.Lookup(text[1:d])
	if v == entity.Unknown && delimiter(text, d) != ';' {
		e.warn(UnencodedAmpersand, offset, "Unencoded ampersand or unknown HTML entity: "+string(text[:d]))
		n := consumed(text, d)
		e.out = append(e.out, text[:n]...)
		return n
	}

	// "&amp;le;" is a double-encoded "&le;"
	if v == '&' && delimiter(text, d) == ';' {
		j := d + 1
		for j < len(text) && !scan.IsSpace(text[j]) && text[j] != ';' {
			j++
		}
		if j < len(text) && text[j] == ';' {
			if inner := entity.Lookup(text[d+1 : j]); inner != entity.Unknown {
				e.warn(DoubleEncodedAmpersand, offset, "Ampersand incorrectly encoded in HTML entity: "+string(text[:j+1]))
				e.appendCodePoint(inner)
				return j + 1
			}
		}
	}

	e.appendCodePoint(v)
	if v == entity.Unknown {
		e.warn(UnknownEntity, offset, "Unknown HTML entity: "+string(text[:d]))
	}
	e.finishEntity(text, d, offset)
	return consumed(text, d)
}

// delimiter returns the byte that ended the entity at text[d], which is the
// following '<' when d is the end of text.
func delimiter(text []byte, d int) byte {
	if d >= len(text) {
		return '<'
	}
	return text[d]
}

// consumed returns the length of an entity delimited at d, including the
// delimiter when it is part of text.
func consumed(text []byte, d int) int {
	return min(d+1, len(text))
}

// decodeNumeric decodes "&#NNN" or "&#xHH" whose delimiter is at text[d].
func (e *Extractor) decodeNumeric(text []byte, d, offset int) int {
	digits := text[2:d]
	hex := len(digits) > 0 && (digits[0] == 'x' || digits[0] == 'X')
	if hex {
		digits = digits[1:]
	}
	v := parseCodePoint(digits, hex)

	if v == 0 {
		n := consumed(text, d)
		e.warn(InvalidNumericEntity, offset, "Invalid numeric HTML entity: "+string(text[:n]))
		e.out = append(e.out, text[:n]...)
		return n
	}
	if s, ok := entity.Ligature(v); ok {
		e.out = append(e.out, s...)
	} else {
		e.appendCodePoint(v)
	}
	e.finishEntity(text, d, offset)
	return consumed(text, d)
}

// finishEntity handles an entity that ended on something other than ';':
// the delimiter is kept and the missing semicolon reported.
func (e *Extractor) finishEntity(text []byte, d, offset int) {
	if delimiter(text, d) == ';' {
		return
	}
	e.warn(MissingSemicolon, offset, "Missing semicolon on HTML entity: "+string(text[:d]))
	if d < len(text) {
		e.out = append(e.out, text[d])
	}
}

// appendCodePoint appends a decoded entity. Soft hyphens are dropped.
func (e *Extractor) appendCodePoint(r rune) {
	if r == entity.SoftHyphen {
		return
	}
	e.out = utf8.AppendRune(e.out, r)
}

// parseCodePoint reads the leading decimal or hex digits of b. It returns 0
// if there are none or the value is out of range.
func parseCodePoint(b []byte, hex bool) rune {
	var v rune
	for _, c := range b {
		var digit rune
		switch {
		case c >= '0' && c <= '9':
			digit = rune(c - '0')
		case hex && c >= 'a' && c <= 'f':
			digit = rune(c-'a') + 10
		case hex && c >= 'A' && c <= 'F':
			digit = rune(c-'A') + 10
		default:
			return v
		}
		if hex {
			v = v*16 + digit
		} else {
			v = v*10 + digit
		}
		if v > maxCodePoint {
			return 0
		}
	}
	return v
}
