// Package graph classifies Bengali Unicode codepoints into the grapheme
// categories the transliteration and orthographic engines need: vowels
// (independent and dependent), kars (dependent vowel signs), and pure
// consonants. Also folds fullwidth/compatibility digit variants that a
// numpad layout token lookup may receive from exotic input sources.
package graph

import "golang.org/x/text/width"

// vowels are independent vowels plus dependent vowel signs (kars); a kar
// is itself "a vowel" for transliteration purposes since it can complete
// a syllable.
const vowelSet = "অআইঈউঊঋএঐওঔ" +
	"ঌৡ" +
	"ািীুূৃৄেৈোৌ"

// karSet is the set of dependent vowel signs (kars).
const karSet = "ািীুূৃেৈোৌৄ"

// pureConsonantSet is the set of pure (non-conjunct) consonants, including
// khanda-ta and the three nukta-bearing consonants.
const pureConsonantSet = "কখগঘঙচছজঝঞ" +
	"টঠডঢণতথদধন" +
	"পফবভমযরলশষহস" +
	"ৎড়ঢ়য়"

// ligatureKarSet is the subset of kars whose joining with a preceding
// consonant produces a shape that, unless blocked with ZWNJ, looks like a
// ligature rather than a plain consonant+vowel-sign sequence.
const ligatureKarSet = "ুূৃেৈোৌ"

func contains(set string, r rune) bool {
	for _, c := range set {
		if c == r {
			return true
		}
	}
	return false
}

// IsVowel reports whether r is an independent vowel or a kar.
func IsVowel(r rune) bool { return contains(vowelSet, r) }

// IsKar reports whether r is a dependent vowel sign.
func IsKar(r rune) bool { return contains(karSet, r) }

// IsPureConsonant reports whether r is a pure consonant.
func IsPureConsonant(r rune) bool { return contains(pureConsonantSet, r) }

// IsLigatureKar reports whether r is a kar whose ligature with the
// preceding consonant should be blocked with ZWNJ under traditional-kar
// joining.
func IsLigatureKar(r rune) bool { return contains(ligatureKarSet, r) }

// FoldDigit returns the ASCII digit ('0'-'9') an ASCII or fullwidth
// digit rune folds to, and true if r is such a digit. Any other rune,
// including other scripts' decimal digits, is returned unchanged with
// ok=false. The layout package's numpad lookup does not call it.
func FoldDigit(r rune) (folded rune, ok bool) {
	p := width.Narrow.String(string(r))
	if p == "" {
		return r, false
	}
	folded = []rune(p)[0]
	if folded < '0' || folded > '9' {
		return r, false
	}
	return folded, true
}
