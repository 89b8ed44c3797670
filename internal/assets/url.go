package assets

import (
	"net/url"
	"strings"
)

// URL builds the stored public URL for an asset of this library:
// /<prefix>/<raw folder segments>/<file>, every segment percent-encoded so a
// static-file server can serve it directly. Folder spellings stay raw; only
// matching uses the canonical forms.
func (l Library) URL(relativePath string) string {
	segments := strings.Split(relativePath, "/")
	escaped := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		escaped = append(escaped, url.PathEscape(seg))
	}
	prefix := "/" + strings.Trim(l.PublicPrefix, "/")
	return prefix + "/" + strings.Join(escaped, "/")
}

// FileName extracts the percent-decoded base name of a stored image URL.
// The cross-link pass derives its texture search key from this.
func FileName(storedURL string) string {
	base := storedURL
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	if decoded, err := url.PathUnescape(base); err == nil {
		return decoded
	}
	return base
}
