package problemgen

import (
	"strconv"
	"strings"
)

// ParseAnswer parses a typed answer. Surrounding whitespace and a leading
// plus sign are accepted; anything else that is not an integer fails.
func ParseAnswer(input string) (int, bool) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckAnswer reports whether input equals expected. Non-numeric input is
// treated as an incorrect answer, not as an error.
func CheckAnswer(input string, expected int) bool {
	n, ok := ParseAnswer(input)
	return ok && n == expected
}
