// Package account is the authentication provider behind the pharmacy
// directory. It signs users up and in with an email and password, hashes
// passwords with bcrypt, throttles repeated sign-in attempts and exposes
// HTTP middleware that authenticates requests and gates them by role.
//
// Failures are reported as coded errors (for example
// "auth/email-already-in-use") so callers can classify them with
// package apperror without knowing about this package.
package account
