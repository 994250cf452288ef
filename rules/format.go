package rules

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Email accepts RFC 5322 addresses restricted to typical web use: a single
// @, a non-empty local part, and a dotted domain. The payload is normalized
// to the bare address, so a display-name form like "Jane <jane@example.com>"
// stores "jane@example.com".
type Email struct{}

func (Email) Parse(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrInvalidEmail
	}

	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}

	email := addr.Address
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return "", ErrInvalidEmail
	}

	// Domain must be dotted, with no empty labels.
	if !strings.Contains(domain, ".") {
		return "", ErrInvalidEmail
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return "", ErrInvalidEmail
		}
	}

	return email, nil
}

// UUID accepts any form uuid.Parse understands (hyphenated, raw hex, urn:,
// braced) and normalizes the payload to the canonical lowercase hyphenated
// form.
type UUID struct{}

func (UUID) Parse(raw string) (string, error) {
	u, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidUUID, err)
	}
	return u.String(), nil
}

// Hostname accepts RFC 1123 hostnames and lowercases the payload.
type Hostname struct{}

func (Hostname) Parse(raw string) (string, error) {
	host := strings.ToLower(strings.TrimSuffix(raw, "."))
	if host == "" || len(host) > 253 {
		return "", ErrInvalidHostname
	}
	for label := range strings.SplitSeq(host, ".") {
		if !validHostLabel(label) {
			return "", ErrInvalidHostname
		}
	}
	return host, nil
}

func validHostLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c == '-' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			continue
		}
		return false
	}
	return true
}
