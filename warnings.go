package htmltext

import (
	"errors"
	"strings"

	"github.com/tsawler/htmltext/htmldoc"
)

// Warning is a non-fatal diagnostic produced during extraction, such as a
// malformed entity that was recovered from.
type Warning = htmldoc.Warning

// ErrNoInput is returned by terminal operations when the Extractor has
// neither a filename nor content.
var ErrNoInput = errors.New("htmltext: no input specified")

// FormatWarnings renders warnings one per line as "offset: message".
func FormatWarnings(warnings []Warning) string {
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(w.String())
	}
	return sb.String()
}
