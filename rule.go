package newstr

// Rule is the validation strategy bound into a string newtype. Parse receives
// the raw input and returns the payload to store, which may differ from the
// input when the rule normalizes (trimming, case folding, canonical forms).
//
// Rules must be stateless: the package instantiates them by zero value, and a
// rule is shared by every value of its newtype.
type Rule interface {
	Parse(raw string) (string, error)
}

// Checker is the predicate form of a validation rule: a pure yes/no decision
// with no normalization and no failure detail.
type Checker interface {
	Valid(raw string) bool
}

// Check adapts a Checker into a Rule. Valid input is stored verbatim; invalid
// input fails with ErrInvalid.
type Check[C Checker] struct{}

// Parse implements Rule for the wrapped predicate.
func (Check[C]) Parse(raw string) (string, error) {
	var c C
	if !c.Valid(raw) {
		return "", ErrInvalid
	}
	return raw, nil
}
