package common

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Share codes are lowercase and URL-safe. Event short codes drop ambiguous
// characters (0/O, 1/I/L) so guests can type them off a projected screen.
const (
	shareCodeAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	shareCodeLength   = 12
	shortCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	shortCodeLength   = 6
)

var (
	ErrInvalidShareCode = errors.New("invalid share code")
	shareCodePattern    = regexp.MustCompile(`^[a-z0-9]{12}$`)
	shortCodePattern    = regexp.MustCompile(`^[A-HJKMNP-Z2-9]{6}$`)
)

// NewShareCode returns a random code identifying a single guest capture on
// the public share page.
func NewShareCode() string {
	return randomString(shareCodeAlphabet, shareCodeLength)
}

// NewShortCode returns a random human-typable code identifying an event.
func NewShortCode() string {
	return randomString(shortCodeAlphabet, shortCodeLength)
}

// IsValidShortCode reports whether s is a well-formed event short code.
// Use NormalizeShortCode first when accepting guest input.
func IsValidShortCode(s string) bool {
	return shortCodePattern.MatchString(s)
}

// NormalizeShortCode uppercases and trims guest-typed event codes.
func NormalizeShortCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ShareURL builds the public share link for a capture.
func ShareURL(base, shareCode string) string {
	return fmt.Sprintf("%s/s/%s", strings.TrimRight(base, "/"), shareCode)
}

// EventURL builds the guest entry link for an event.
func EventURL(base, shortCode string) string {
	return fmt.Sprintf("%s/e/%s", strings.TrimRight(base, "/"), shortCode)
}

// ParseShareCode extracts and validates a share code from raw guest input,
// which may be a bare code or a full share URL.
func ParseShareCode(raw string) (string, error) {
	code := strings.TrimSpace(raw)

	if strings.Contains(code, "/") {
		u, err := url.Parse(code)
		if err != nil {
			return "", ErrInvalidShareCode
		}
		segments := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(segments) < 2 || segments[len(segments)-2] != "s" {
			return "", ErrInvalidShareCode
		}
		code = segments[len(segments)-1]
	}

	if !shareCodePattern.MatchString(code) {
		return "", ErrInvalidShareCode
	}
	return code, nil
}

// randomString draws length characters from alphabet using rejection
// sampling so every character is equally likely.
func randomString(alphabet string, length int) string {
	limit := 256 - (256 % len(alphabet))
	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, alphabet[int(b)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
