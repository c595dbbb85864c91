package sanitizer

import (
	"regexp"
	"strings"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	scriptScheme  = regexp.MustCompile(`(?i)javascript:`)
	eventHandler  = regexp.MustCompile(`(?i)on\w+=`)
	spaces        = regexp.MustCompile(`\s+`)
)

// maxPasses bounds the fixpoint loop in Input; each pass strictly shrinks the string.
const maxPasses = 16

// Input trims s and strips angle brackets, javascript: schemes and inline
// on<event>= handlers. Removal repeats until nothing matches, so fragments
// reassembled by a previous removal are stripped as well.
func Input(s string) string {
	s = strings.TrimSpace(s)
	for range maxPasses {
		next := angleBrackets.ReplaceAllString(s, "")
		next = scriptScheme.ReplaceAllString(next, "")
		next = eventHandler.ReplaceAllString(next, "")
		if next == s {
			break
		}
		s = next
	}
	return s
}

// NormalizeEmail trims and lowercases an address, then strips markup.
func NormalizeEmail(s string) string {
	return Input(strings.ToLower(strings.TrimSpace(s)))
}

// SingleSpace collapses whitespace runs into one space and trims.
func SingleSpace(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}
