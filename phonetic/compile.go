package phonetic

import (
	"github.com/coregx/coregex"

	"github.com/bnkb-dev/bnsuggest/dictfilter"
)

// CoregexMatcher compiles a synthesized search pattern with
// github.com/coregx/coregex, the production Matcher backing every
// Engine a host actually runs (tests substitute a stdlib-regexp-backed
// Matcher instead, since the two share the same MatchString contract).
func CoregexMatcher(pattern string) (dictfilter.Matcher, error) {
	return coregex.Compile(pattern)
}
