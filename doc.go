// Package newstr builds validated, immutable string types out of small
// validation rules.
//
// A newtype is declared by binding a rule type into the generic wrapper Str.
// One rule type produces one distinct Go type: two newtypes with different
// rules never mix, even though both wrap a plain string.
//
// # Architecture
//
// The package has three building blocks:
//
//   - Str[R]   – the wrapper itself: one unexported string payload, comparable,
//     usable as a map key, immutable after construction
//   - Rule     – the validation strategy: a fallible parse that may normalize
//     the input before it becomes the payload
//   - Checker  – a pure yes/no predicate, adapted into a Rule with Check
//
// Rules are stateless types; their zero value must be usable. The rule is
// fixed at declaration time and cannot change for the life of the type.
//
// # Usage
//
// Predicate style, for rules that accept or reject input as-is:
//
//	type identifier struct{}
//
//	func (identifier) Valid(raw string) bool {
//		if raw == "" {
//			return false
//		}
//		for i := 0; i < len(raw); i++ {
//			c := raw[i]
//			if !(c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
//				return false
//			}
//		}
//		return true
//	}
//
//	type Identifier = newstr.Str[newstr.Check[identifier]]
//
//	id, err := newstr.Parse[newstr.Check[identifier]]("hello_world")
//
// Parse style, for rules that normalize while validating:
//
//	type countryCode struct{}
//
//	func (countryCode) Parse(raw string) (string, error) {
//		raw = strings.ToUpper(strings.TrimSpace(raw))
//		if len(raw) != 2 {
//			return "", errors.New("country code must be two letters")
//		}
//		return raw, nil
//	}
//
//	type CountryCode = newstr.Str[countryCode]
//
// Regex-backed predicates compile their pattern once, on first use:
//
//	var isInteger = newstr.Match(`^[0-9]+$`)
//
// Ready-made rules for common formats live in the rules subpackage.
//
// # Error Handling
//
// Predicate-style rules fail with the detail-free sentinel ErrInvalid.
// Parse-style rules return their own errors, which Parse passes through
// untouched; use errors.Is and errors.As on the result as usual.
//
// # Encoding
//
// Str implements encoding.TextMarshaler/TextUnmarshaler (which encoding/json
// and most codecs consume), yaml.v3 marshal hooks, and database/sql scalar
// hooks. Decoding always goes through Parse; use Unchecked only for input
// that was validated elsewhere.
package newstr
