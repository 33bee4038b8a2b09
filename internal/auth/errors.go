package auth

import "errors"

var (
	// ErrMissingFields indicates a required field was empty.
	ErrMissingFields = errors.New("all required fields must be provided")
	// ErrInvalidEmail indicates the email does not look like local@domain.tld.
	ErrInvalidEmail = errors.New("invalid email address")
	// ErrPasswordTooShort indicates the password is under the minimum length.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidCredentials is returned when authentication fails. The same
	// error covers unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthRequired represents a missing bearer token.
	ErrAuthRequired = errors.New("authentication required")
	// ErrInvalidToken represents a malformed, tampered or expired token.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUserNotFound signals that the user could not be located.
	ErrUserNotFound = errors.New("user not found")
)
