package newstr

import (
	"fmt"
	"strings"
)

// Str is a validated string newtype. The type parameter fixes the validation
// rule at declaration time, so Str instantiations with different rules are
// distinct, incompatible types.
//
// The zero value is the empty payload and reports IsZero; it is produced by
// declaration, not by Parse, and carries no validity guarantee.
//
// Str is comparable: == is byte-wise equality of payloads, and values can be
// used as map keys with hashing consistent with ==. Values are immutable once
// constructed and safe for concurrent use.
type Str[R Rule] struct {
	value string
}

// Parse validates raw against the type's rule and returns the constructed
// value. The stored payload is whatever the rule returns, which may be a
// normalized form of raw. The error is the rule's own: ErrInvalid for
// predicate-style rules, the rule's error for parse-style rules.
func Parse[R Rule](raw string) (Str[R], error) {
	var r R
	value, err := r.Parse(raw)
	if err != nil {
		return Str[R]{}, err
	}
	return Str[R]{value: value}, nil
}

// MustParse is Parse that panics on invalid input. Intended for literals and
// test fixtures where failure is a programming error.
func MustParse[R Rule](raw string) Str[R] {
	v, err := Parse[R](raw)
	if err != nil {
		panic(fmt.Sprintf("newstr: MustParse(%q): %v", raw, err))
	}
	return v
}

// IsValid reports whether raw would be accepted by the type's rule. It is
// defined as "Parse succeeds" and performs the full parse each call; the
// result of the parse is discarded, never cached.
func IsValid[R Rule](raw string) bool {
	_, err := Parse[R](raw)
	return err == nil
}

// Unchecked wraps raw as the payload without consulting the rule. It exists
// for callers that validated the input elsewhere or are reconstructing a
// value from a trusted source. Nothing re-validates later: an invalid payload
// smuggled in here stays invalid for the life of the value.
func Unchecked[R Rule](raw string) Str[R] {
	return Str[R]{value: raw}
}

// String returns the payload exactly as stored, with no quoting or escaping.
// It also serves as the conversion to a plain string; Go strings are
// immutable, so the returned value is a zero-copy view of the payload.
func (s Str[R]) String() string {
	return s.value
}

// IsZero reports whether s is the zero value.
func (s Str[R]) IsZero() bool {
	return s.value == ""
}

// Equal reports payload equality. Equivalent to s == other.
func (s Str[R]) Equal(other Str[R]) bool {
	return s.value == other.value
}

// Compare lexicographically compares payloads byte-wise, returning -1, 0 or +1.
func (s Str[R]) Compare(other Str[R]) int {
	return strings.Compare(s.value, other.value)
}

// Less reports whether s sorts before other. Usable directly with
// slices.SortFunc-style comparators or sort.Slice.
func (s Str[R]) Less(other Str[R]) bool {
	return s.value < other.value
}
