// Package split divides a raw input buffer into its leading meta-character
// run, its phonetic/orthographic middle, and its trailing meta-character
// run, and offers a smart-quote post-transform over the two meta runs.
package split

import "strings"

// meta is the set of characters treated as punctuation/meta rather than
// phonetic content. Includes the Bengali daanri (।).
const meta = "-]~!@#%&*()_=+[{}'\";<>/?|.,।"

func isMeta(r rune) bool { return strings.ContainsRune(meta, r) }

// Split divides input into (preceding, middle, trailing).
//
// preceding is the longest leading run of meta characters. trailing is
// built by scanning right-to-left: a backtick is kept in trailing as an
// escape flag (without advancing the boundary itself), a colon joins
// trailing if includeColon is true or the immediately-following
// (rightward) character was an escaping backtick, any other meta
// character always joins trailing, and any other character ends the
// scan. If the entire input is meta, Split returns (input, "", "").
//
// Invariant: preceding + middle + trailing == input.
func Split(input string, includeColon bool) (preceding, middle, trailing string) {
	firstIdx := -1
	for i, r := range input {
		if !isMeta(r) {
			firstIdx = i
			break
		}
	}
	if firstIdx == -1 {
		return input, "", ""
	}

	pre := input[:firstIdx]
	rest := input[firstIdx:]

	runes := []rune(rest)
	// byteOffsets[i] is the byte offset of runes[i] within rest.
	byteOffsets := make([]int, len(runes)+1)
	off := 0
	for i, r := range runes {
		byteOffsets[i] = off
		off += len(string(r))
	}
	byteOffsets[len(runes)] = off

	escape := false
	lastIdx := len(runes) // rune index into runes where trailing begins
scan:
	for i := len(runes) - 1; i >= 0; i-- {
		c := runes[i]
		switch {
		case !escape && c == '`':
			escape = true
		case (includeColon || escape) && c == ':':
			escape = false
			lastIdx = i
		case isMeta(c):
			escape = false
			lastIdx = i
		default:
			break scan
		}
	}

	mid := rest[:byteOffsets[lastIdx]]
	trail := rest[byteOffsets[lastIdx]:]

	return pre, mid, trail
}

// SmartQuote converts straight quote characters in preceding and trailing
// into their curly open/close forms. If middle is empty, the pair is
// returned unchanged (there is nothing to quote around).
func SmartQuote(preceding, middle, trailing string) (newPreceding, newTrailing string) {
	if middle == "" {
		return preceding, trailing
	}

	var pb strings.Builder
	pb.Grow(len(preceding) + 3)
	for _, r := range preceding {
		switch r {
		case '\'':
			pb.WriteRune('‘') // ‘
		case '"':
			pb.WriteRune('“') // “
		default:
			pb.WriteRune(r)
		}
	}

	var tb strings.Builder
	tb.Grow(len(trailing) + 3)
	for _, r := range trailing {
		switch r {
		case '\'':
			tb.WriteRune('’') // ’
		case '"':
			tb.WriteRune('”') // ”
		default:
			tb.WriteRune(r)
		}
	}

	return pb.String(), tb.String()
}
