// Package validation contains the pure client-side checks run before any
// network call. Validators never fail with an error; they only answer yes/no.
package validation

import (
	"regexp"
	"strings"
)

// MinPasswordLength is the minimum accepted password length at signup.
const MinPasswordLength = 6

var (
	// Basic shape check only, no RFC compliance: something@something.something
	// with no whitespace and no second '@'.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// A tip must read like a sentence: capital first letter, a body of
	// letters/digits/whitespace and light punctuation, terminal punctuation,
	// total length between 22 and 302 characters.
	tipPattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9\s,.'"-]{20,300}[.!?]$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword reports whether s is long enough to be accepted.
func IsValidPassword(s string) bool {
	return len(s) >= MinPasswordLength
}

// PasswordsMatch reports whether the password and its confirmation are equal.
func PasswordsMatch(a, b string) bool {
	return a == b
}

// IsValidTip reports whether the trimmed message is a well-formed tip
// sentence. Leading and trailing whitespace is ignored.
func IsValidTip(s string) bool {
	return tipPattern.MatchString(strings.TrimSpace(s))
}
