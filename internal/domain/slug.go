package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh unique identifier for a page, version, category,
// link, or session.
func NewID() string {
	return uuid.NewString()
}

// slugSuffixLen is the length of the random disambiguator appended to a slug
// that collides with an existing one.
const slugSuffixLen = 6

// Slugify derives a URL-safe slug from a human-readable name: lowercase,
// runs of anything outside [a-z0-9] collapse to a single dash, no leading or
// trailing dashes. An input with no usable characters yields "page".
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "page"
	}
	return b.String()
}

// Disambiguate appends a short random suffix to slug. Two calls with the
// same slug produce different results.
func Disambiguate(slug string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	return slug + "-" + token[:slugSuffixLen]
}
