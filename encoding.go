package newstr

import (
	"database/sql/driver"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler. encoding/json and most
// third-party codecs pick this up, so a Str field serializes as a plain
// string scalar.
func (s Str[R]) MarshalText() ([]byte, error) {
	return []byte(s.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The incoming text goes
// through Parse, so decoding an invalid value fails with the rule's error.
// Trusted reconstruction that must skip validation should use Unchecked
// instead of the decoding path.
func (s *Str[R]) UnmarshalText(text []byte) error {
	v, err := Parse[R](string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalYAML implements yaml.v3 marshaling, which does not consult
// encoding.TextMarshaler on its own.
func (s Str[R]) MarshalYAML() (any, error) {
	return s.value, nil
}

// UnmarshalYAML implements yaml.v3 unmarshaling, validating through Parse.
func (s *Str[R]) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := Parse[R](raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Value implements driver.Valuer, storing the payload as a SQL text scalar.
func (s Str[R]) Value() (driver.Value, error) {
	return s.value, nil
}

// Scan implements sql.Scanner for string and []byte sources, validating
// through Parse. NULL is rejected; model optional columns as *Str or
// sql.Null[Str] at the call site.
func (s *Str[R]) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("newstr: cannot scan %T into a string newtype", src)
	}
	parsed, err := Parse[R](raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
