package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex     = regexp.MustCompile(`^(\+212|0)[5-7][0-9]{8}$`)
	whitespaceRe   = regexp.MustCompile(`\s`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// Password rule messages, in reporting order.
const (
	MsgPasswordLength    = "Le mot de passe doit contenir au moins 8 caractères"
	MsgPasswordUppercase = "Le mot de passe doit contenir au moins une majuscule"
	MsgPasswordLowercase = "Le mot de passe doit contenir au moins une minuscule"
	MsgPasswordDigit     = "Le mot de passe doit contenir au moins un chiffre"

	MsgInvalidEmail = "Format d'email invalide"
	MsgInvalidPhone = "Format de téléphone invalide (ex: +212 6XX XXX XXX)"
)

const minPasswordLength = 8

// Required returns "<fieldName> est requis" when value is empty or blank, "" otherwise.
func Required(value, fieldName string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s est requis", fieldName)
	}
	return ""
}

// Length checks the trimmed length of value against [min, max].
func Length(value string, min, max int, fieldName string) string {
	n := utf8.RuneCountInString(strings.TrimSpace(value))
	if n < min {
		return fmt.Sprintf("%s doit contenir au moins %d caractères", fieldName, min)
	}
	if n > max {
		return fmt.Sprintf("%s ne peut pas dépasser %d caractères", fieldName, max)
	}
	return ""
}

// Email reports whether s looks like local@domain.tld. Surrounding spaces are ignored.
func Email(s string) bool {
	return emailRegex.MatchString(strings.TrimSpace(s))
}

// Phone reports whether s is a Moroccan mobile or landline number
// (+212 or 0, then 5/6/7, then eight digits). Whitespace is ignored.
func Phone(s string) bool {
	return phoneRegex.MatchString(whitespaceRe.ReplaceAllString(s, ""))
}

// PasswordResult lists every violated password rule.
type PasswordResult struct {
	IsValid bool
	Errors  []string
}

// Password checks length, uppercase, lowercase and digit, in that order.
func Password(s string) PasswordResult {
	errs := []string{}

	if utf8.RuneCountInString(s) < minPasswordLength {
		errs = append(errs, MsgPasswordLength)
	}
	if !uppercaseRegex.MatchString(s) {
		errs = append(errs, MsgPasswordUppercase)
	}
	if !lowercaseRegex.MatchString(s) {
		errs = append(errs, MsgPasswordLowercase)
	}
	if !digitRegex.MatchString(s) {
		errs = append(errs, MsgPasswordDigit)
	}

	return PasswordResult{IsValid: len(errs) == 0, Errors: errs}
}
