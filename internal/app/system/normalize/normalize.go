// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email normalizes an email address: trimmed and lowercased.
// All email comparisons in the system go through this, so the
// invite/user/OTP bindings are case-insensitive by construction.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace but preserves case.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Code normalizes an invite code: trimmed, case preserved.
// Organizer-issued codes are matched exactly as minted.
func Code(s string) string {
	return strings.TrimSpace(s)
}

// OTPDigits trims whitespace around a submitted one-time code.
func OTPDigits(s string) string {
	return strings.TrimSpace(s)
}
