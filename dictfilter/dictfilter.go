// Package dictfilter implements the two dictionary-bucket search
// strategies shared by the phonetic and fixed methods: choosing which
// dictionary.json buckets to scan for a given romanized or Bengali
// prefix, and filtering each bucket's words against a compiled regex
// (built by regexsyn for phonetic, or assembled directly here for
// fixed). Matching itself is delegated to a Matcher — in production
// satisfied by a *coregex.Regexp from github.com/coregx/coregex.
package dictfilter

import (
	"strconv"
	"strings"

	"github.com/bnkb-dev/bnsuggest/internal/graph"
)

// Matcher is satisfied by *coregex.Regexp (and by *regexp.Regexp, for
// tests that don't want the coregex dependency).
type Matcher interface {
	MatchString(s string) bool
}

// PhoneticBuckets returns the dictionary.json bucket keys to search for
// word, chosen by word's first ASCII byte. Mirrors the literal 26-entry
// table in original_source's phonetic dictionary search.
func PhoneticBuckets(word string) []string {
	if word == "" {
		return nil
	}
	switch word[0] {
	case 'a':
		return []string{"a", "aa", "e", "oi", "o", "nya", "y"}
	case 'b':
		return []string{"b", "bh"}
	case 'c':
		return []string{"c", "ch", "k"}
	case 'd':
		return []string{"d", "dh", "dd", "ddh"}
	case 'e':
		return []string{"i", "ii", "e", "y"}
	case 'f':
		return []string{"ph"}
	case 'g':
		return []string{"g", "gh", "j"}
	case 'h':
		return []string{"h"}
	case 'i':
		return []string{"i", "ii", "y"}
	case 'j':
		return []string{"j", "jh", "z"}
	case 'k':
		return []string{"k", "kh"}
	case 'l':
		return []string{"l"}
	case 'm':
		return []string{"h", "m"}
	case 'n':
		return []string{"n", "nya", "nga", "nn"}
	case 'o':
		return []string{"a", "u", "uu", "oi", "o", "ou", "y"}
	case 'p':
		return []string{"p", "ph"}
	case 'q':
		return []string{"k"}
	case 'r':
		return []string{"rri", "h", "r", "rr", "rrh"}
	case 's':
		return []string{"s", "sh", "ss"}
	case 't':
		return []string{"t", "th", "tt", "tth", "khandatta"}
	case 'u':
		return []string{"u", "uu", "y"}
	case 'v':
		return []string{"bh"}
	case 'w':
		return []string{"o"}
	case 'x':
		return []string{"e", "k"}
	case 'y':
		return []string{"i", "y"}
	case 'z':
		return []string{"h", "j", "jh", "z"}
	default:
		return nil
	}
}

// SearchPhonetic scans table[bucket] for every bucket in buckets, in
// order, keeping words m matches. The result preserves bucket order
// then within-bucket order, matching the flat_map original_source
// performs over its bucket table.
func SearchPhonetic(m Matcher, buckets []string, table map[string][]string) []string {
	var out []string
	for _, bucket := range buckets {
		for _, w := range table[bucket] {
			if m.MatchString(w) {
				out = append(out, w)
			}
		}
	}
	return out
}

// fixedBuckets maps the first rune of a fixed-method grapheme buffer to
// the dictionary.json bucket it should be searched under. Mirrors the
// literal rune table in original_source's fixed dictionary search;
// runes with no entry have no searchable bucket.
var fixedBuckets = map[rune]string{
	'া': "aa", 'ি': "i", 'ী': "ii", 'ু': "u", 'ূ': "uu", 'ৃ': "rri",
	'ে': "e", 'ৈ': "oi", 'ো': "o", 'ৌ': "ou",
	'অ': "a", 'আ': "aa", 'ই': "i", 'ঈ': "ii", 'উ': "u", 'ঊ': "uu", 'ঋ': "rri",
	'এ': "e", 'ঐ': "oi", 'ও': "o", 'ঔ': "ou",
	'ক': "k", 'খ': "kh", 'গ': "g", 'ঘ': "gh", 'ঙ': "nga",
	'চ': "c", 'ছ': "ch", 'জ': "j", 'ঝ': "jh", 'ঞ': "nya",
	'ট': "tt", 'ঠ': "tth", 'ড': "dd", 'ঢ': "ddh", 'ণ': "nn",
	'ত': "t", 'থ': "th", 'দ': "d", 'ধ': "dh", 'ন': "n",
	'প': "p", 'ফ': "ph", 'ব': "b", 'ভ': "bh", 'ম': "m",
	'য': "z", 'র': "r", 'ল': "l", 'শ': "sh", 'ষ': "ss", 'স': "s", 'হ': "h",
	'ড়': "rr", 'ঢ়': "rrh", 'য়': "y", 'ৎ': "khandatta",
}

// FixedBucket returns the dictionary.json bucket for the first rune of
// word, and false if that rune has no searchable bucket at all.
func FixedBucket(word string) (bucket string, ok bool) {
	for _, r := range word {
		bucket, ok = fixedBuckets[r]
		return
	}
	return "", false
}

// bengaliGraphemeClass is the character class fixed-method dictionary
// search allows to follow an exact grapheme prefix match.
const bengaliGraphemeClass = "অআইঈউঊঋএঐওঔঌৡািীুূৃেৈোৌকখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহৎড়ঢ়য়ংঃঁ্"

// NeedCharsUpto returns the {0,N} repetition bound fixed-method
// dictionary search uses after an exact prefix match, based on the
// rune count of the cleaned grapheme buffer.
func NeedCharsUpto(runeCount int) int {
	switch {
	case runeCount == 1:
		return 0
	case runeCount <= 3:
		return 1
	default:
		return 5
	}
}

// FixedSearchPattern builds the anchored regex pattern fixed-method
// dictionary search compiles: an exact prefix followed by up to
// needCharsUpto further Bengali graphemes.
func FixedSearchPattern(word string, needCharsUpto int) string {
	var b strings.Builder
	b.WriteByte('^')
	b.WriteString(word)
	b.WriteByte('[')
	b.WriteString(bengaliGraphemeClass)
	b.WriteString("]{0,")
	b.WriteString(strconv.Itoa(needCharsUpto))
	b.WriteString("}$")
	return b.String()
}

// fixedMeta is the set of regex metacharacters and punctuation the
// fixed-method search strips from a raw grapheme buffer before
// building a search pattern from it.
const fixedMeta = "|()[]{}^$*+?.~!@#%&-_='\";<>/\\,:`।‌"

// CleanFixedSearchWord strips fixedMeta characters from word, matching
// original_source's clean_string for fixed dictionary search.
func CleanFixedSearchWord(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if strings.ContainsRune(fixedMeta, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SearchFixed filters table[bucket] against m, keeping matches. When
// traditionalKar is set, every match that contains a ligature-making
// kar has a ZWNJ inserted immediately before each such kar — the
// "traditional" joining fixed-method layouts opt into, versus the
// modern font-driven ligature rendering used otherwise.
func SearchFixed(m Matcher, bucket string, table map[string][]string, traditionalKar bool) []string {
	var out []string
	for _, w := range table[bucket] {
		if !m.MatchString(w) {
			continue
		}
		if traditionalKar {
			w = joinTraditionalKar(w)
		}
		out = append(out, w)
	}
	return out
}

const zwnj = '‌'

func joinTraditionalKar(word string) string {
	hasLigatureKar := false
	for _, r := range word {
		if graph.IsLigatureKar(r) {
			hasLigatureKar = true
			break
		}
	}
	if !hasLigatureKar {
		return word
	}

	var b strings.Builder
	b.Grow(len(word) + 3)
	for _, r := range word {
		if graph.IsLigatureKar(r) {
			b.WriteRune(zwnj)
		}
		b.WriteRune(r)
	}
	return b.String()
}
