package rules

import "errors"

var (
	// ErrInvalidEmail is returned when a value is not a usable email address.
	ErrInvalidEmail = errors.New("rules: invalid email address")
	// ErrInvalidUUID is returned when a value is not a parseable UUID.
	ErrInvalidUUID = errors.New("rules: invalid uuid")
	// ErrInvalidHostname is returned when a value is not an RFC 1123 hostname.
	ErrInvalidHostname = errors.New("rules: invalid hostname")
	// ErrInvalidEncoding is returned when a value is not valid UTF-8.
	ErrInvalidEncoding = errors.New("rules: invalid utf-8 encoding")
)
