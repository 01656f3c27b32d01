// Package regexsyn synthesizes an anchored regular expression from a
// romanized phonetic chunk and a ranked pattern table: the core of the
// phonetic method's "type a romanization, match a family of Bengali
// spellings" behaviour. The synthesized string is handed to
// github.com/coregx/coregex to compile a matcher used by the dictfilter
// package; this package never compiles anything itself.
package regexsyn

import "strings"

// Match is one context predicate attached to a Rule. Scope selects what
// is being tested (the character immediately outside the chunk, or an
// exact substring); Type selects which side of the chunk is tested.
type Match struct {
	Value    string `json:"value"`
	Type     string `json:"type"`  // "prefix" or "suffix"
	Scope    string `json:"scope"` // "punctuation", "vowel", "consonant", "exact"
	Negative bool   `json:"negative"`
}

// Rule is one candidate replacement for a Pattern, gated by all of its
// Matches holding simultaneously. The first Rule whose Matches all hold
// wins; if none do, Pattern.Replace is used instead.
type Rule struct {
	Matches []Match `json:"matches"`
	Replace string  `json:"replace"`
}

// Pattern is one entry of the table: a romanized chunk to recognize
// (Find), context-sensitive Rules tried in order, and a Replace used
// when no Rule fires.
type Pattern struct {
	Find    string `json:"find"`
	Replace string `json:"replace"`
	Rules   []Rule `json:"rules"`
}

// suffixTail is appended after every emitted replacement, allowing an
// optional conjunct-forming hasanta, a bare hasanta, and a trailing
// chandrabindu/visarga to follow any matched chunk.
const suffixTail = "(্[যবম])?(্?)([ঃঁ]?)"

// Table is an immutable pattern table ready for Synthesize. Patterns
// must be sorted by descending Find length, then ascending
// lexicographic Find, matching the binary search Synthesize performs.
type Table struct {
	Patterns      []Pattern
	Vowel         string
	Consonant     string
	Ignore        string
	maxPatternLen int
}

// NewTable builds a Table from an already-sorted pattern slice and the
// vowel/consonant/ignore character classes used by rule evaluation.
// The caller is responsible for sort order; see SortPatterns.
func NewTable(patterns []Pattern, vowel, consonant, ignore string) *Table {
	max := 0
	if len(patterns) > 0 {
		max = len(patterns[0].Find)
	}
	return &Table{Patterns: patterns, Vowel: vowel, Consonant: consonant, Ignore: ignore, maxPatternLen: max}
}

// SortPatterns orders patterns by descending Find byte-length, then
// ascending lexicographic Find, the order Synthesize's binary search
// over chunk candidates requires.
func SortPatterns(patterns []Pattern) {
	for i := 1; i < len(patterns); i++ {
		for j := i; j > 0 && less(patterns[j], patterns[j-1]); j-- {
			patterns[j], patterns[j-1] = patterns[j-1], patterns[j]
		}
	}
}

func less(a, b Pattern) bool {
	if len(a.Find) != len(b.Find) {
		return len(a.Find) > len(b.Find)
	}
	return a.Find < b.Find
}

// Synthesize scans input left to right, matching the longest possible
// romanized chunk against t at each position, and returns an anchored
// regex string built from the matched (or literal, for unmatched bytes)
// segments. Chunk comparisons and all rule scopes operate byte-wise:
// the phonetic alphabet t is built from is always ASCII.
func Synthesize(t *Table, input string) string {
	var out strings.Builder
	out.WriteByte('^')
	t.scan(input, suffixTail, &out)
	out.WriteByte('$')
	return out.String()
}

// Convert scans input the same way as Synthesize but emits the literal
// matched text with no fixed suffix tail and no anchors — the live,
// keystroke-by-keystroke romanization-to-Bengali conversion used to
// render preceding/trailing punctuation and the raw-transliteration
// fallback candidate, as opposed to Synthesize's dictionary-search
// regex.
func Convert(t *Table, input string) string {
	var out strings.Builder
	t.scan(input, "", &out)
	return out.String()
}

func (t *Table) scan(input, tail string, out *strings.Builder) {
	fixed := cleanString(input, t.Ignore)
	n := len(fixed)
	out.Grow(out.Len() + n*40)

	cur := 0
	for cur < n {
		start := cur
		matched := false

		for chunkLen := t.maxPatternLen; chunkLen >= 1; chunkLen-- {
			end := start + chunkLen
			if end > n {
				continue
			}
			chunk := fixed[start:end]

			idx, ok := t.search(chunk)
			if !ok {
				continue
			}
			p := t.Patterns[idx]

			replace := p.Replace
			for _, rule := range p.Rules {
				if t.ruleMatches(rule, fixed, start, end) {
					replace = rule.Replace
					break
				}
			}

			out.WriteString(replace)
			out.WriteString(tail)
			cur = end - 1
			matched = true
			break
		}

		if !matched {
			out.WriteByte(fixed[cur])
		}
		cur++
	}
}

// search performs the binary search over t.Patterns described by
// SortPatterns's ordering, returning the index of the pattern whose
// Find equals chunk.
func (t *Table) search(chunk string) (int, bool) {
	lo, hi := 0, len(t.Patterns)-1
	for hi >= lo {
		mid := (lo + hi) / 2
		find := t.Patterns[mid].Find
		if find == chunk {
			return mid, true
		}
		if len(find) > len(chunk) || (len(find) == len(chunk) && find < chunk) {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return 0, false
}

func (t *Table) ruleMatches(rule Rule, fixed string, start, end int) bool {
	n := len(fixed)
	for _, m := range rule.Matches {
		var chk int
		if m.Type == "suffix" {
			chk = end
		} else {
			chk = start - 1
		}

		switch m.Scope {
		case "punctuation":
			cond := (chk < 0 && m.Type == "prefix") ||
				(chk >= n && m.Type == "suffix") ||
				t.isPunctuation(byteAt(fixed, chk, n))
			if cond == m.Negative {
				return false
			}

		case "vowel":
			cond := ((chk >= 0 && m.Type == "prefix") || (chk < n && m.Type == "suffix")) &&
				t.isVowel(byteAt(fixed, chk, n))
			if cond == m.Negative {
				return false
			}

		case "consonant":
			cond := ((chk >= 0 && m.Type == "prefix") || (chk < n && m.Type == "suffix")) &&
				t.isConsonant(byteAt(fixed, chk, n))
			if cond == m.Negative {
				return false
			}

		case "exact":
			var s, e int
			if m.Type == "suffix" {
				s, e = end, end+len(m.Value)
			} else {
				s, e = start-len(m.Value), start
			}
			if !isExact(m.Value, fixed, s, e, m.Negative) {
				return false
			}
		}
	}
	return true
}

// byteAt returns the byte at i if i is within [0,n), else 0 (never
// consulted by a caller whose boundary clauses already short-circuited).
func byteAt(s string, i, n int) byte {
	if i < 0 || i >= n {
		return 0
	}
	return s[i]
}

func isExact(needle, haystack string, start, end int, negative bool) bool {
	n := len(haystack)
	match := start >= 0 && end < n && haystack[start:end] == needle
	return match != negative
}

func (t *Table) isVowel(b byte) bool      { return strings.IndexByte(t.Vowel, b) >= 0 }
func (t *Table) isConsonant(b byte) bool  { return strings.IndexByte(t.Consonant, b) >= 0 }
func (t *Table) isPunctuation(b byte) bool {
	return !(t.isVowel(b) || t.isConsonant(b))
}

func cleanString(s, ignore string) string {
	var out strings.Builder
	out.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := lowerASCII(s[i])
		if strings.IndexByte(ignore, b) >= 0 {
			continue
		}
		out.WriteByte(b)
	}
	return out.String()
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
