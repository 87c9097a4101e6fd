// internal/app/system/inputval/inputval.go
//
// Package inputval holds syntactic validators for request input. These
// checks are about shape only; business rules (invite bindings, verified
// state) live in the flow package.
package inputval

import (
	"net/mail"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MinPasswordLength is the default minimum password length, matching the
// registration policy ("at least 6 characters").
const MinPasswordLength = 6

// IsValidEmail reports whether s is a plain RFC 5322 address.
// Display-name forms ("Name <a@b>") are rejected: the parsed address must
// round-trip to the input exactly.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s
}

// IsValidObjectID reports whether s (after trimming) is a 24-character hex
// Mongo ObjectID.
func IsValidObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	return err == nil
}

// IsValidPassword reports whether pw meets the minimum-length policy.
// A non-positive min falls back to MinPasswordLength.
func IsValidPassword(pw string, min int) bool {
	if min <= 0 {
		min = MinPasswordLength
	}
	return len(pw) >= min
}
