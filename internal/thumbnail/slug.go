package thumbnail

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxSlugLen caps file name length; long topics get truncated, not rejected.
const maxSlugLen = 50

var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug converts a topic into a filesystem-safe file name stem: lowercase,
// diacritics folded to ASCII, punctuation dropped, whitespace collapsed to
// single hyphens, capped at maxSlugLen. Slug is idempotent: applying it to
// its own output returns the same string.
func Slug(topic string) string {
	folded, _, err := transform.String(asciiFold, topic)
	if err != nil {
		folded = topic
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	pendingHyphen := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_':
			pendingHyphen = true
		}
	}

	s := b.String()
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}
