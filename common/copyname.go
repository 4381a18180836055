package common

import (
	"fmt"
	"regexp"
	"strconv"
)

var copySuffix = regexp.MustCompile(`^(.*) \(copy(?: (\d+))?\)$`)

// CopyName produces the display name for a duplicate of name. A first
// duplicate gets " (copy)" appended; duplicating a copy increments the
// counter instead of stacking suffixes:
//
//	"Launch Party"          -> "Launch Party (copy)"
//	"Launch Party (copy)"   -> "Launch Party (copy 2)"
//	"Launch Party (copy 2)" -> "Launch Party (copy 3)"
func CopyName(name string) string {
	m := copySuffix.FindStringSubmatch(name)
	if m == nil {
		return name + " (copy)"
	}

	n := 1
	if m[2] != "" {
		if parsed, err := strconv.Atoi(m[2]); err == nil {
			n = parsed
		}
	}

	return fmt.Sprintf("%s (copy %d)", m[1], n+1)
}
