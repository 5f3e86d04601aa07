package xsrftoken

import "errors"

var (
	// ErrInvalidToken is returned when an encoded token is structurally
	// malformed: wrong length, characters outside the base64url alphabet,
	// or a decoded byte count other than TokenLen. No detail beyond
	// "invalid" is exposed.
	ErrInvalidToken = errors.New("invalid xsrf token")

	// ErrTokenMismatch is returned when a well-formed RequestToken does not
	// recover the session secret it is verified against.
	ErrTokenMismatch = errors.New("xsrf token mismatch")
)
