package newstr

import "errors"

// ErrInvalid is the detail-free validation failure. Predicate-style rules
// always fail with it; parse-style rules may return it as their default error
// or substitute their own for richer diagnostics.
var ErrInvalid = errors.New("newstr: invalid value")
