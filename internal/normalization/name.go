// Package normalization canonicalizes raw file names and catalog product
// names into the comparable token form the matching pipeline works on.
package normalization

import (
	"path"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// variantSuffixes are trailing photo-variant labels that never distinguish
// one product from another. Fixed denylist, checked after uppercasing.
var variantSuffixes = map[string]bool{
	"MATT":   true,
	"GLOSSY": true,
	"DARK":   true,
	"LIGHT":  true,
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Name canonicalizes raw for matching: extension and photo-index suffixes
// stripped, accents folded, uppercased, punctuation collapsed to spaces.
// Pure and idempotent. Only whitespace-delimited trailing digit runs count
// as photo indexes, so "alvin2.jpg" keeps its 2 while "ATEN DARK GRAY 2.jpg"
// loses it.
func Name(raw string) string {
	return clean(raw, false)
}

// UniqueName is Name with trailing numeric tokens kept, for callers that
// need a distinct key per numbered file rather than a match key.
func UniqueName(raw string) string {
	return clean(raw, true)
}

// Slug derives a lowercase dash-separated identifier from UniqueName.
// Used as the unique key of seeded catalog rows.
func Slug(raw string) string {
	return strings.ToLower(strings.ReplaceAll(UniqueName(raw), " ", "-"))
}

func clean(raw string, keepNumbers bool) string {
	s := strings.TrimSpace(raw)
	if ext := strings.ToLower(path.Ext(s)); imageExtensions[ext] {
		s = s[:len(s)-len(ext)]
	}
	s = foldAccents(s)
	s = strings.ToUpper(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return ' '
	}, s)

	fields := strings.Fields(s)
	for len(fields) > 0 {
		last := fields[len(fields)-1]
		if !keepNumbers && isDigits(last) {
			fields = fields[:len(fields)-1]
			continue
		}
		if variantSuffixes[last] {
			fields = fields[:len(fields)-1]
			continue
		}
		break
	}
	return strings.Join(fields, " ")
}

func foldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
