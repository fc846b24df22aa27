package voices

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeName normalizes a raw engine-supplied name. Tracker metadata is
// frequently padded and stored in DOS code pages rather than UTF-8; names
// that fail UTF-8 validation are reinterpreted as CP437 so accented sample
// names survive sanitization instead of becoming replacement runes.
func DecodeName(raw string) string {
	name := strings.TrimRight(raw, " \x00")
	if name == "" || utf8.ValidString(name) {
		return name
	}
	decoded, err := charmap.CodePage437.NewDecoder().String(name)
	if err != nil {
		return name
	}
	return decoded
}
