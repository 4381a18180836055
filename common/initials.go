package common

import (
	"strings"
	"unicode"
)

// Initials derives up to two uppercase initials from a display name:
// the first letter of the first word and the first letter of the last word.
// Single-word names yield one initial. Empty or symbol-only names yield "".
func Initials(name string) string {
	words := strings.Fields(name)
	letters := make([]rune, 0, 2)

	for _, word := range words {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsNumber(r) {
				letters = append(letters, unicode.ToUpper(r))
				break
			}
		}
	}

	switch len(letters) {
	case 0:
		return ""
	case 1:
		return string(letters[0])
	default:
		return string(letters[0]) + string(letters[len(letters)-1])
	}
}
