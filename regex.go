package newstr

import (
	"regexp"
	"sync"
)

// Match returns a predicate backed by a regular expression. The pattern is
// compiled once, on the first call, and the compiled matcher is reused for
// every call after that; concurrent first use still compiles exactly once.
//
// A malformed pattern is a programming error and panics on first use, the
// same way a package-level regexp.MustCompile fails at startup.
//
// Matching is non-anchored containment: the predicate reports true if the
// pattern matches anywhere in the input. Anchor with ^ and $ for full-string
// matches.
//
//	var isInteger = newstr.Match(`[0-9]+`)
//
//	isInteger("abc123") // true
func Match(pattern string) func(string) bool {
	var (
		once sync.Once
		re   *regexp.Regexp
	)
	return func(s string) bool {
		once.Do(func() {
			re = regexp.MustCompile(pattern)
		})
		return re.MatchString(s)
	}
}
