package storage

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ruteri/storage-url/interfaces"
)

const schemeDelimiter = "://"

// ParseStorageURL splits a storage URL into scheme, authority, path and query.
// The URL format is <scheme>://[<authority>][/<path>][?<query>][#<fragment>]
//
// Leading spaces and control characters are dropped, as are tabs and newlines
// anywhere in the URL. The scheme is everything before the first "://" and is
// kept verbatim. A well-known scheme (file, memory, s3) may also be written
// without "//", as in file:/tmp/files; it then has no authority.
// Authority and path are not decoded or normalized. The fragment is dropped.
// Returns ErrInvalidStorageURL if the delimiter is missing or the scheme is empty.
func ParseStorageURL(rawURL string) (interfaces.StorageURL, error) {
	cleaned := cleanURL(rawURL)

	var scheme, rest string
	hasAuthority := true
	if name, after, found := strings.Cut(cleaned, ":"); found && !strings.HasPrefix(after, "//") && KindForScheme(name) != interfaces.CustomBackend {
		scheme, rest, hasAuthority = name, after, false
	} else {
		scheme, rest, found = strings.Cut(cleaned, schemeDelimiter)
		if !found {
			return interfaces.StorageURL{}, fmt.Errorf("%w: missing %q in %q", interfaces.ErrInvalidStorageURL, schemeDelimiter, rawURL)
		}
	}
	if scheme == "" {
		return interfaces.StorageURL{}, fmt.Errorf("%w: empty scheme in %q", interfaces.ErrInvalidStorageURL, rawURL)
	}

	rest, _, _ = strings.Cut(rest, "#")
	rest, rawQuery, _ := strings.Cut(rest, "?")

	authority, path := "", rest
	if hasAuthority {
		authority, path = rest, ""
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			authority, path = rest[:i], rest[i:]
		}
	}

	return interfaces.StorageURL{
		Raw:       rawURL,
		Scheme:    scheme,
		Authority: authority,
		Path:      path,
		Query:     parseQuery(rawQuery),
	}, nil
}

// cleanURL strips leading C0 controls and spaces, then removes tabs and newlines.
func cleanURL(rawURL string) string {
	cleaned := strings.TrimLeftFunc(rawURL, func(r rune) bool { return r <= ' ' })
	if !strings.ContainsAny(cleaned, "\t\r\n") {
		return cleaned
	}
	return strings.NewReplacer("\t", "", "\r", "", "\n", "").Replace(cleaned)
}

// parseQuery decodes a query string without ever failing.
// Pairs without "=" or with an empty value are skipped, malformed escapes are kept as is.
func parseQuery(rawQuery string) url.Values {
	values := url.Values{}
	for _, pair := range strings.Split(rawQuery, "&") {
		name, value, found := strings.Cut(pair, "=")
		if !found || value == "" {
			continue
		}
		values.Add(unescapeQuery(name), unescapeQuery(value))
	}
	return values
}

// unescapeQuery decodes "+" and valid %XX escapes; invalid escapes are kept literally.
func unescapeQuery(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
