package rules

import (
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/newstr"
)

// Regex-backed predicates, compiled on first use.
var (
	slugMatch      = newstr.Match(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	usernameMatch  = newstr.Match(`^[a-zA-Z0-9_-]+$`)
	handleMatch    = newstr.Match(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	hexMatch       = newstr.Match(`^[0-9A-Fa-f]+$`)
	base64Match    = newstr.Match(`^[A-Za-z0-9+/]+={0,2}$`)
	subdomainMatch = newstr.Match(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)
)

// NotEmpty accepts any non-empty string.
type NotEmpty struct{}

func (NotEmpty) Valid(raw string) bool { return raw != "" }

// Printable accepts non-empty strings with no control characters.
type Printable struct{}

func (Printable) Valid(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// ASCII accepts strings containing only ASCII bytes. The empty string is
// trivially ASCII.
type ASCII struct{}

func (ASCII) Valid(raw string) bool {
	for i := 0; i < len(raw); i++ {
		if raw[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// Identifier accepts non-empty ASCII letters, digits and underscores.
type Identifier struct{}

func (Identifier) Valid(raw string) bool {
	if raw == "" {
		return false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}

// Slug accepts URL-safe slugs: lowercase letters, digits and single interior
// hyphens, with no leading or trailing hyphen.
type Slug struct{}

func (Slug) Valid(raw string) bool { return slugMatch(raw) }

// Username accepts letters, digits, underscores and hyphens. Length bounds
// are the caller's concern.
type Username struct{}

func (Username) Valid(raw string) bool { return usernameMatch(raw) }

// Handle accepts usernames that start with a letter.
type Handle struct{}

func (Handle) Valid(raw string) bool { return handleMatch(raw) }

// Hex accepts non-empty hexadecimal strings of either case.
type Hex struct{}

func (Hex) Valid(raw string) bool { return hexMatch(raw) }

// Base64 accepts non-empty standard-alphabet base64 with optional padding.
type Base64 struct{}

func (Base64) Valid(raw string) bool { return base64Match(raw) }

// Subdomain accepts single DNS labels: lowercase alphanumeric with interior
// hyphens, at most 63 bytes.
type Subdomain struct{}

func (Subdomain) Valid(raw string) bool {
	return len(raw) <= 63 && subdomainMatch(raw)
}
