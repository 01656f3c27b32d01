// Package assert implements the engine's programmer-contract checks:
// API misuse (calling a list accessor on a lonely Suggestion, and
// similar shape violations) panics immediately instead of continuing
// with invalid state. Mirrors the teacher's defensive-bounds-checking
// style (morph/security_test.go's guard-constant assertions), adapted
// from "cap and degrade" input-size guards to "panic on contract
// violation" for this package's caller-misuse category — the two
// categories spec.md §7 keeps distinct.
package assert

import "fmt"

// True panics with a formatted message if cond is false.
func True(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
