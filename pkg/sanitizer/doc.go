// Package sanitizer normalises user input before it is stored.
//
// All helpers are pure and total: they never fail and never touch anything
// outside their argument. Input removes markup and script-injection fragments
// from free text, FormatPhoneNumber rewrites Moroccan numbers to +212 form,
// NormalizeEmail lowercases addresses and Fold prepares strings for
// case- and accent-insensitive comparison.
//
// Helpers compose with Apply and Compose:
//
//	clean := sanitizer.Compose(sanitizer.Input, sanitizer.SingleSpace)
//	name := clean("  Pharmacie   <Atlas> ")
package sanitizer
