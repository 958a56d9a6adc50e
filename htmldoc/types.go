package htmldoc

import "fmt"

// WarningKind identifies the kind of malformed markup a Warning reports.
type WarningKind int

const (
	// UnencodedAmpersand is a bare '&' followed by letters that don't form a
	// known entity name (e.g. "A &foo B"). The text is copied through as is.
	UnencodedAmpersand WarningKind = iota

	// MissingSemicolon is an entity that resolved but was terminated by
	// whitespace or '<' instead of ';'.
	MissingSemicolon

	// UnknownEntity is a ';'-terminated entity whose name is not in the table.
	// It decodes to '?'.
	UnknownEntity

	// DoubleEncodedAmpersand is an entity whose '&' was itself encoded, such
	// as "&amp;le;". The inner entity is decoded instead.
	DoubleEncodedAmpersand

	// InvalidNumericEntity is a numeric reference that evaluates to 0
	// ("&#x;", "&#abc;"). The raw text is copied through.
	InvalidNumericEntity

	// SymbolFontSubstitution is informational: a text run set in the Symbol
	// font was converted to Greek and math code points.
	SymbolFontSubstitution
)

// String returns the name of the warning kind.
func (k WarningKind) String() string {
	switch k {
	case UnencodedAmpersand:
		return "unencoded ampersand"
	case MissingSemicolon:
		return "missing semicolon"
	case UnknownEntity:
		return "unknown entity"
	case DoubleEncodedAmpersand:
		return "double-encoded ampersand"
	case InvalidNumericEntity:
		return "invalid numeric entity"
	case SymbolFontSubstitution:
		return "symbol font substitution"
	default:
		return "unknown"
	}
}

// MalformedEntity reports whether the kind describes a malformed entity that
// was recovered from.
func (k WarningKind) MalformedEntity() bool {
	return k >= UnencodedAmpersand && k <= InvalidNumericEntity
}

// Warning is a non-fatal diagnostic produced while extracting text.
type Warning struct {
	Kind    WarningKind
	Offset  int // byte offset in the input where the construct starts
	Message string
}

// String formats the warning as "offset: message".
func (w Warning) String() string {
	return fmt.Sprintf("%d: %s", w.Offset, w.Message)
}
