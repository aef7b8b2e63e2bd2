package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize prepares an answer for comparison:
//   - converts to lowercase
//   - decomposes (NFD) and drops combining marks, so "está" becomes "esta"
//     and "año" becomes "ano"
//   - removes punctuation, including the inverted ¿ and ¡
//   - compresses runs of whitespace into one space and trims
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// transform.Chain keeps state between calls and must not be shared.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		stripped = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(stripped))
	pendingSpace := false
	for _, r := range stripped {
		switch {
		case unicode.IsPunct(r):
			continue
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
