// Package rules provides ready-made validation rules for common string
// formats, for use with the newstr wrapper.
//
// Predicate rules (NotEmpty, Identifier, Slug, ...) implement newstr.Checker
// and are bound through newstr.Check:
//
//	type Slug = newstr.Str[newstr.Check[rules.Slug]]
//
// Parse rules (Email, UUID, Lower, ...) implement newstr.Rule directly and
// may normalize the payload while validating:
//
//	type Email = newstr.Str[rules.Email]
//
//	e, err := newstr.Parse[rules.Email]("Jane Doe <Jane@Example.com>")
//	// e.String() == "Jane@Example.com"
//
// All rules are stateless and safe for concurrent use. Rules that need a
// length bound, a character whitelist or any other parameter belong in the
// caller's code: a rule is an ordinary type, and writing one is a few lines.
package rules
