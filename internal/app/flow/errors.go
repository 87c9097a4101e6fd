// internal/app/flow/errors.go
package flow

import "errors"

// Sentinel errors for every terminal state of the registration,
// verification, and login flows. Handlers map these to HTTP statuses;
// anything else is an internal error.
var (
	// ErrInviteInvalid covers every "no such invite for this event" case.
	// The client gets one combined message so accounts and codes cannot
	// be probed separately.
	ErrInviteInvalid = errors.New("invite code is not valid for this event")

	// ErrInviteUsed means the invite exists but has been consumed.
	ErrInviteUsed = errors.New("invite code has already been used")

	// ErrEmailMismatch means the invite is bound to a different email.
	ErrEmailMismatch = errors.New("invite code is bound to a different email")

	// ErrIncorrectPassword is returned when a verified user re-registers
	// with the wrong password.
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidCredentials is the single login failure for unknown email
	// and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotVerified means the password checked out but the account has
	// not completed OTP verification.
	ErrNotVerified = errors.New("account is not verified")

	// ErrUserNotFound is returned when OTP verification finds no account
	// for the email.
	ErrUserNotFound = errors.New("user not found")

	// ErrOTPInvalid covers a wrong, expired, or already-consumed code.
	ErrOTPInvalid = errors.New("invalid or expired verification code")

	// ErrOTPAttempts means the code has had too many failed guesses.
	ErrOTPAttempts = errors.New("too many verification attempts")
)
