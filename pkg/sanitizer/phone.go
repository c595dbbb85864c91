package sanitizer

import "strings"

const moroccoPrefix = "+212"

// FormatPhoneNumber rewrites a Moroccan number to international form.
// Non-digits are dropped first; then 212… gains a "+", a leading 0 becomes
// +212 and a bare 9-digit number is prefixed with +212. Anything else is
// returned exactly as given.
func FormatPhoneNumber(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	switch {
	case strings.HasPrefix(digits, "212"):
		return "+" + digits
	case strings.HasPrefix(digits, "0"):
		return moroccoPrefix + digits[1:]
	case len(digits) == 9:
		return moroccoPrefix + digits
	default:
		return phone
	}
}
