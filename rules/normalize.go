package rules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/newstr"
)

// Lower accepts any non-empty string and stores its Unicode lowercase form.
type Lower struct{}

func (Lower) Parse(raw string) (string, error) {
	if raw == "" {
		return "", newstr.ErrInvalid
	}
	return cases.Lower(language.Und).String(raw), nil
}

// Upper accepts any non-empty string and stores its Unicode uppercase form.
type Upper struct{}

func (Upper) Parse(raw string) (string, error) {
	if raw == "" {
		return "", newstr.ErrInvalid
	}
	return cases.Upper(language.Und).String(raw), nil
}

// UpperOnly accepts input whose every rune is already an uppercase letter and
// stores it verbatim. It does not normalize; lowercase or non-letter input
// fails with the detail-free error.
type UpperOnly struct{}

func (UpperOnly) Parse(raw string) (string, error) {
	for _, r := range raw {
		if !unicode.IsUpper(r) {
			return "", newstr.ErrInvalid
		}
	}
	return raw, nil
}

// NFC rejects invalid UTF-8 and stores the NFC normal form, so visually
// identical strings compare equal as payloads.
type NFC struct{}

func (NFC) Parse(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", ErrInvalidEncoding
	}
	return norm.NFC.String(raw), nil
}

// Trimmed strips leading and trailing whitespace and rejects input that is
// empty after trimming.
type Trimmed struct{}

func (Trimmed) Parse(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", newstr.ErrInvalid
	}
	return trimmed, nil
}
