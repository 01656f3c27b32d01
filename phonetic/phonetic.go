// Package phonetic implements the phonetic method's suggestion pipeline:
// romanization-to-Bengali conversion, dictionary search, suffix
// expansion, autocorrect (bundled plus a user overlay), emoji lookup,
// and the previously-selected-candidate cache a host consults so a
// repeated romanization re-offers the user's earlier pick first.
package phonetic

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/bnkb-dev/bnsuggest/data"
	"github.com/bnkb-dev/bnsuggest/dictfilter"
	"github.com/bnkb-dev/bnsuggest/internal/graph"
	"github.com/bnkb-dev/bnsuggest/internal/split"
	"github.com/bnkb-dev/bnsuggest/rank"
	"github.com/bnkb-dev/bnsuggest/regexsyn"
)

// Matcher compiles a regexsyn-synthesized pattern into something
// dictfilter.Matcher is satisfied by. In production this is
// CoregexMatcher (coregex.Compile); tests may supply a stdlib
// regexp-backed one.
type Matcher func(pattern string) (dictfilter.Matcher, error)

// Engine holds everything the phonetic suggestion pipeline needs across
// calls: the static tables, a cache of ranked candidate lists keyed by
// romanized middle text, and the user's autocorrect overlay.
type Engine struct {
	tables  *data.Tables
	compile Matcher

	cache map[string][]string
	user  map[string]string
}

// NewEngine builds an Engine over tables, compiling synthesized search
// patterns with compile.
func NewEngine(tables *data.Tables, compile Matcher) *Engine {
	return &Engine{
		tables:  tables,
		compile: compile,
		cache:   make(map[string][]string),
		user:    make(map[string]string),
	}
}

// LoadUserAutocorrect reads a user-specific autocorrect overlay from
// path, replacing whatever overlay was previously loaded. A missing
// file is not an error: it means the user has no overlay yet.
func (e *Engine) LoadUserAutocorrect(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			e.user = make(map[string]string)
			return nil
		}
		return fmt.Errorf("phonetic: reading user autocorrect: %w", err)
	}

	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("phonetic: parsing user autocorrect: %w", err)
	}
	for k, v := range m {
		m[k] = norm.NFC.String(v)
	}
	e.user = m
	return nil
}

// autocorrect looks term up in the user overlay first, then the bundled
// database, matching original_source's AutoCorrect.search.
func (e *Engine) autocorrect(term string) (string, bool) {
	if v, ok := e.user[term]; ok {
		return v, true
	}
	v, ok := e.tables.Autocorrect[term]
	return v, ok
}

// ConvertOnly renders term as plain phonetic transliteration with no
// dictionary lookup: the preceding and trailing meta runs and the
// middle are each run through regexsyn.Convert and concatenated.
func (e *Engine) ConvertOnly(term string) string {
	pre, mid, trail := split.Split(term, false)
	return e.convert(pre) + e.convert(mid) + e.convert(trail)
}

func (e *Engine) convert(s string) string {
	return regexsyn.Convert(e.tables.Patterns, s)
}

// graftSuffix appends suf onto the end of base, choosing among four
// terminal rules shared by forward suffix expansion and reverse
// selection reconstruction: a vowel immediately followed by a kar needs
// an inserted য় to stay pronounceable; a trailing khanda-ta (ৎ)
// resolves to ত before a suffix; a trailing anusvara (ং) resolves to ঙ;
// anything else is plain concatenation.
func graftSuffix(base, suf string) string {
	if base == "" {
		return suf
	}
	baseRunes := []rune(base)
	rmc := baseRunes[len(baseRunes)-1]
	sufRunes := []rune(suf)
	lmc := sufRunes[0]

	switch {
	case graph.IsVowel(rmc) && graph.IsKar(lmc):
		return base + "য়" + suf
	case rmc == 'ৎ':
		return string(baseRunes[:len(baseRunes)-1]) + "ত" + suf
	case rmc == 'ং':
		return string(baseRunes[:len(baseRunes)-1]) + "ঙ" + suf
	default:
		return base + suf
	}
}

// addSuffixToSuggestions returns the suggestion list for middle,
// combining whatever is already cached for middle with suffix-grafted
// extensions of shorter cached prefixes. Mirrors
// original_source's add_suffix_to_suggestions, including its
// adjacent-duplicate-only dedup (Vec::dedup, not a full-set dedup) and
// its exact byte-index suffix-shrinking loop.
func (e *Engine) addSuffixToSuggestions(middle string) []string {
	list := append([]string(nil), e.cache[middle]...)

	if len(middle) > 2 {
		for i := 1; i < len(middle); i++ {
			suffixKey := middle[i:]
			suffix, ok := e.tables.Suffix[suffixKey]
			if !ok {
				continue
			}
			key := middle[:len(middle)-len(suffixKey)]
			base, ok := e.cache[key]
			if !ok {
				continue
			}
			for _, b := range base {
				list = append(list, graftSuffix(b, suffix))
			}
		}
	}

	list = dedupAdjacent(list)
	e.cache[middle] = list
	return list
}

// dedupAdjacent removes only consecutive equal elements, matching Rust's
// Vec::dedup — a deliberately preserved quirk, not a full-set dedup: a
// value that reappears after something else intervenes is kept both
// times.
func dedupAdjacent(list []string) []string {
	if len(list) < 2 {
		return list
	}
	out := list[:1]
	for _, v := range list[1:] {
		if v == out[len(out)-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// searchDictionary resolves the dictionary.json buckets for middle and
// filters each against a regex synthesized from middle.
func (e *Engine) searchDictionary(middle string) ([]string, error) {
	if middle == "" {
		return nil, nil
	}
	pattern := regexsyn.Synthesize(e.tables.Patterns, middle)
	m, err := e.compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("phonetic: compiling search pattern for %q: %w", middle, err)
	}
	buckets := dictfilter.PhoneticBuckets(middle)
	return dictfilter.SearchPhonetic(m, buckets, e.tables.Dictionary), nil
}

// Suggest builds the full candidate list for buffer: dictionary matches
// sorted by ascending edit distance to the plain phonetic conversion,
// an autocorrect hit prepended when one exists, suffix-grafted
// extensions of shorter cached middles, the raw phonetic transliteration
// as a fallback, an emoticon passthrough, and (if includeEnglish) the
// untouched buffer itself. selections maps a previously-seen middle to
// the candidate the user picked for it last time; the returned index
// points at that candidate within the result, or 0 if none was found.
//
// Mirrors original_source's suggestion_with_dict plus get_prev_selection,
// folded into one call since both always run back to back in practice.
func (e *Engine) Suggest(buffer string, selections map[string]string, includeEnglish bool) ([]string, int, error) {
	pre, mid, trail := split.Split(buffer, false)
	convertedPre := e.convert(pre)
	convertedTrail := e.convert(trail)
	phonetic := e.convert(mid)

	if _, ok := e.cache[mid]; !ok {
		dictionary, err := e.searchDictionary(mid)
		if err != nil {
			return nil, 0, err
		}

		correction, hasCorrection := e.autocorrectConverted(mid)
		e.cache[mid] = rankDictionary(dictionary, phonetic, correction, hasCorrection)
	}

	suggestions := e.addSuffixToSuggestions(mid)

	if !contains(suggestions, phonetic) {
		suggestions = append(suggestions, phonetic)
	}

	for i, item := range suggestions {
		suggestions[i] = convertedPre + item + convertedTrail
	}

	if glyph, ok := e.GetEmojiByEmoticon(buffer); ok {
		suggestions = append([]string{glyph}, suggestions...)
	} else if emoticon, ok := e.autocorrect(buffer); ok && emoticon == buffer {
		suggestions = append([]string{emoticon}, suggestions...)
	}

	if includeEnglish && !contains(suggestions, buffer) {
		suggestions = append(suggestions, buffer)
	}

	selection := e.prevSelectionIndex(buffer, selections, suggestions)
	return suggestions, selection, nil
}

// prevSelectionIndex reconstructs, from selections, the candidate the
// user chose last time buffer's romanized middle (or one of its
// suffix-stripped prefixes) was suggested, and returns its position
// within suggestions. Mirrors get_prev_selection's exact growing-suffix
// probe: it tries every suffix length from shortest to longest and, if
// more than one known suffix matches, the longest (last) one tried
// wins — this is an original_source quirk preserved as-is.
func (e *Engine) prevSelectionIndex(buffer string, selections map[string]string, suggestions []string) int {
	pre, mid, trail := split.Split(buffer, false)
	var selected string

	if item, ok := selections[mid]; ok {
		selected = item
	} else if length := len(mid); length >= 2 {
		for i := 1; i < length; i++ {
			test := mid[length-i:]
			suffix, ok := e.tables.Suffix[test]
			if !ok {
				continue
			}
			key := mid[:length-len(test)]
			base, ok := selections[key]
			if !ok {
				continue
			}
			selected = graftSuffix(base, suffix)
			selections[mid] = selected
		}
	}

	selected = pre + selected + trail
	for i, item := range suggestions {
		if item == selected {
			return i
		}
	}
	return 0
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// rankDictionary fuses a correction (if any) with the raw dictionary hits
// into one tiered rank.Rank ordering and flattens it back to strings: the
// correction sorts as rank.First, ahead of every dictionary hit regardless
// of edit distance, and the dictionary hits themselves sort ascending by
// their rank.NewSuggestion key (edit distance to base). Mirrors
// original_source's suggestion_with_dict, which folds the same two
// sources together before returning the combined list.
func rankDictionary(dictionary []string, base string, correction string, hasCorrection bool) []string {
	ranked := make([]rank.Rank, 0, len(dictionary)+1)
	if hasCorrection {
		ranked = append(ranked, rank.First(correction))
	}
	for _, item := range dictionary {
		ranked = append(ranked, rank.NewSuggestion(item, base))
	}
	rank.Sort(ranked)

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.String()
	}
	return out
}

// autocorrectConverted resolves mid's autocorrect entry and converts it to
// Bengali, matching the conversion rankDictionary's correction tier expects.
func (e *Engine) autocorrectConverted(mid string) (string, bool) {
	corrected, ok := e.autocorrect(mid)
	if !ok {
		return "", false
	}
	return e.convert(corrected), true
}

// GetEmojiByEmoticon resolves the Bengali emoji glyph bound to a literal
// emoticon (e.g. ":)"), mirroring original_source's
// get_emoji_by_emoticon. Consulted by Suggest's emoticon step (step 8)
// ahead of the plain autocorrect-tautology check.
func (e *Engine) GetEmojiByEmoticon(term string) (string, bool) {
	v, ok := e.tables.Emoji.ByEmoticon[term]
	return v, ok
}

// GetEmojiByName resolves the Bengali emoji glyphs bound to an English
// emoji name (e.g. "smile"), mirroring get_emoji_by_name.
func (e *Engine) GetEmojiByName(term string) ([]string, bool) {
	v, ok := e.tables.Emoji.ByName[strings.ToLower(term)]
	return v, ok
}

// GetEmojiByBengali resolves the Bengali emoji glyphs bound to term's
// phonetic Bengali conversion, mirroring get_emoji_by_bengali.
func (e *Engine) GetEmojiByBengali(term string) ([]string, bool) {
	v, ok := e.tables.Emoji.ByBengali[e.convert(term)]
	return v, ok
}
