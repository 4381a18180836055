package common

import (
	"errors"
	"regexp"
	"strings"
)

const maxSlugLength = 63

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
	validSlug    = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

func Slugify(input, fallback string) (string, error) {
	slug := slugify(input)
	if slug == "" {
		slug = slugify(fallback)
	}
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}

// IsValidSlug reports whether s is usable as a workspace slug: lowercase
// alphanumerics separated by single hyphens, at most 63 characters.
func IsValidSlug(s string) bool {
	return len(s) <= maxSlugLength && validSlug.MatchString(s)
}

func slugify(s string) string {
	lower := strings.ToLower(strings.TrimSpace(s))
	slug := nonSlugChars.ReplaceAllString(lower, "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugLength {
		slug = strings.Trim(slug[:maxSlugLength], "-")
	}
	return slug
}
