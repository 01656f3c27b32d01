package phonetic

import (
	"regexp"
	"testing"

	"github.com/bnkb-dev/bnsuggest/data"
	"github.com/bnkb-dev/bnsuggest/dictfilter"
)

// stdlibMatcher adapts the stdlib regexp package to dictfilter.Matcher,
// standing in for coregex in tests that don't need the real engine.
func stdlibMatcher(pattern string) (dictfilter.Matcher, error) {
	return regexp.Compile(pattern)
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	tables, err := data.Default()
	if err != nil {
		t.Fatalf("data.Default() error = %v", err)
	}
	return NewEngine(tables, stdlibMatcher)
}

// TestAddSuffixToSuggestions ports original_source's test_suffix: cache
// is pre-populated directly (no dictionary search involved), and the
// three terminal graftSuffix branches are each exercised once.
func TestAddSuffixToSuggestions(t *testing.T) {
	e := testEngine(t)
	e.cache["computer"] = []string{"কম্পিউটার"}
	e.cache["i"] = []string{"ই"}
	e.cache["hothat"] = []string{"হঠাৎ"}
	e.cache["ebong"] = []string{"এবং"}

	tests := []struct {
		middle string
		want   []string
	}{
		{"computer", []string{"কম্পিউটার"}},
		{"computere", []string{"কম্পিউটারে"}},
		{"computergulo", []string{"কম্পিউটারগুলো"}},
		{"iei", []string{"ইয়েই"}},        // vowel + kar -> insert য়
		{"hothate", []string{"হঠাতে"}},   // ৎ -> ত
		{"ebongmala", []string{"এবঙমালা"}}, // ং -> ঙ
	}

	for _, tt := range tests {
		t.Run(tt.middle, func(t *testing.T) {
			got := e.addSuffixToSuggestions(tt.middle)
			if !equalSlices(got, tt.want) {
				t.Errorf("addSuffixToSuggestions(%q) = %v, want %v", tt.middle, got, tt.want)
			}
		})
	}
}

// TestPrevSelectionIndex ports original_source's test_prev_selected.
func TestPrevSelectionIndex(t *testing.T) {
	e := testEngine(t)
	selections := map[string]string{
		"onno":   "অন্য",
		"i":      "ই",
		"hothat": "হঠাৎ",
		"ebong":  "এবং",
	}

	cases := []struct {
		buffer      string
		suggestions []string
		want        int
	}{
		{"*onno?!", []string{"*অন্ন?!", "*অন্য?!"}, 1},
		{"iei", []string{"ইএই", "ইয়েই"}, 1},
		{"hothate", []string{"হোথাতে", "হথাতে", "হঠাতে"}, 2},
		{"ebongmala", []string{"এবংমালা", "এবঙমালা"}, 1},
		{"*onnogulo?!", []string{"*অন্নগুলো?!", "*অন্যগুলো?!"}, 1},
	}

	for _, tc := range cases {
		t.Run(tc.buffer, func(t *testing.T) {
			got := e.prevSelectionIndex(tc.buffer, selections, tc.suggestions)
			if got != tc.want {
				t.Errorf("prevSelectionIndex(%q) = %d, want %d", tc.buffer, got, tc.want)
			}
		})
	}
}

func TestGraftSuffix(t *testing.T) {
	tests := []struct {
		base, suf, want string
	}{
		{"ই", "এই", "ইয়েই"},
		{"হঠাৎ", "ে", "হঠাতে"},
		{"এবং", "মালা", "এবঙমালা"},
		{"কম্পিউটার", "ে", "কম্পিউটারে"},
	}
	for _, tt := range tests {
		if got := graftSuffix(tt.base, tt.suf); got != tt.want {
			t.Errorf("graftSuffix(%q, %q) = %q, want %q", tt.base, tt.suf, got, tt.want)
		}
	}
}

// TestDedupAdjacentOnly confirms the Vec::dedup semantics are preserved
// exactly: only consecutive duplicates collapse.
func TestDedupAdjacentOnly(t *testing.T) {
	got := dedupAdjacent([]string{"a", "a", "b", "a", "b", "b"})
	want := []string{"a", "b", "a", "b"}
	if !equalSlices(got, want) {
		t.Errorf("dedupAdjacent(...) = %v, want %v", got, want)
	}
}

// TestSuggestDictionarySortAndAutocorrect exercises the full Suggest
// pipeline against the embedded default tables, adapted from
// original_source's test_suggestion to this repo's hand-authored
// representative dictionary rather than the original's production data.
func TestSuggestDictionarySortAndAutocorrect(t *testing.T) {
	e := testEngine(t)

	corrected, ok := e.autocorrect("atm")
	if !ok {
		t.Fatal("fixture autocorrect table has no entry for \"atm\"")
	}
	want := e.convert(corrected)

	got, _, err := e.Suggest("atm", nil, false)
	if err != nil {
		t.Fatalf("Suggest(%q) error = %v", "atm", err)
	}
	if len(got) == 0 {
		t.Fatal("Suggest(\"atm\") returned no candidates")
	}
	if got[0] != want {
		t.Errorf("Suggest(\"atm\")[0] = %q, want the autocorrect hit %q first", got[0], want)
	}
}

// TestSuggestEmoticonResolvesToEmoji confirms the emoji table takes
// precedence over the autocorrect-tautology passthrough ported from
// original_source's test_emoticon: ":)" has both an emoji.json entry
// and a self-mapping autocorrect.json entry, and the emoji glyph wins.
func TestSuggestEmoticonResolvesToEmoji(t *testing.T) {
	e := testEngine(t)

	glyph, ok := e.GetEmojiByEmoticon(":)")
	if !ok {
		t.Fatal("fixture emoji table has no entry for \":)\"")
	}

	got, _, err := e.Suggest(":)", nil, false)
	if err != nil {
		t.Fatalf("Suggest(\":)\") error = %v", err)
	}
	if len(got) == 0 || got[0] != glyph {
		t.Errorf("Suggest(\":)\") = %v, want the emoji glyph %q first", got, glyph)
	}
}

// TestSuggestEmoticonPassthroughWithoutEmojiEntry ports
// original_source's test_emoticon behavior for an autocorrect
// tautology that has no emoji table entry: the autocorrect hit is
// reinserted at the front of the candidate list unchanged, the Open
// Question decision recorded in SPEC_FULL.md (preserve the
// tautological check as-is).
func TestSuggestEmoticonPassthroughWithoutEmojiEntry(t *testing.T) {
	e := testEngine(t)

	if _, ok := e.GetEmojiByEmoticon(":P"); ok {
		t.Fatal("fixture emoji table unexpectedly has an entry for \":P\"")
	}
	if err := e.LoadUserAutocorrect("/nonexistent/path/autocorrect.json"); err != nil {
		t.Fatalf("LoadUserAutocorrect error = %v", err)
	}
	e.tables.Autocorrect[":P"] = ":P"

	got, _, err := e.Suggest(":P", nil, false)
	if err != nil {
		t.Fatalf("Suggest(\":P\") error = %v", err)
	}
	if len(got) == 0 || got[0] != ":P" {
		t.Errorf("Suggest(\":P\") = %v, want the emoticon itself first", got)
	}
}

func TestGetEmojiByNameAndByBengali(t *testing.T) {
	e := testEngine(t)

	if glyphs, ok := e.GetEmojiByName("smile"); !ok || len(glyphs) == 0 {
		t.Errorf("GetEmojiByName(\"smile\") = %v, %v, want a non-empty hit", glyphs, ok)
	}
	if glyphs, ok := e.GetEmojiByName("SMILE"); !ok || len(glyphs) == 0 {
		t.Errorf("GetEmojiByName(\"SMILE\") = %v, %v, want case-insensitive lookup to still hit", glyphs, ok)
	}
	if glyphs, ok := e.GetEmojiByBengali("agun"); !ok || len(glyphs) == 0 {
		t.Errorf("GetEmojiByBengali(\"agun\") = %v, %v, want the phonetic conversion to resolve to আগুন's glyphs", glyphs, ok)
	}
}

func TestSuggestIncludeEnglish(t *testing.T) {
	e := testEngine(t)

	got, _, err := e.Suggest("xyzzy", nil, true)
	if err != nil {
		t.Fatalf("Suggest error = %v", err)
	}
	if !contains(got, "xyzzy") {
		t.Errorf("Suggest(..., includeEnglish=true) = %v, want it to contain the raw buffer", got)
	}
}

func TestConvertOnly(t *testing.T) {
	e := testEngine(t)
	got := e.ConvertOnly("kotha")
	if got == "" {
		t.Error("ConvertOnly(\"kotha\") is empty")
	}
}

func TestConvertOnlyPreservesMetaRuns(t *testing.T) {
	e := testEngine(t)
	got := e.ConvertOnly("{kotha}")
	if len(got) < 2 || got[0] != '{' || got[len(got)-1] != '}' {
		t.Errorf("ConvertOnly(%q) = %q, want braces preserved", "{kotha}", got)
	}
}

func TestLoadUserAutocorrectMissingFileIsNotError(t *testing.T) {
	e := testEngine(t)
	if err := e.LoadUserAutocorrect("/nonexistent/path/autocorrect.json"); err != nil {
		t.Errorf("LoadUserAutocorrect with a missing file returned an error: %v", err)
	}
	if _, ok := e.autocorrect("academy"); !ok {
		t.Error("autocorrect(\"academy\") should still fall back to the bundled database")
	}
}

func TestSearchDictionaryEmptyMiddle(t *testing.T) {
	e := testEngine(t)
	got, err := e.searchDictionary("")
	if err != nil {
		t.Fatalf("searchDictionary(\"\") error = %v", err)
	}
	if got != nil {
		t.Errorf("searchDictionary(\"\") = %v, want nil", got)
	}
}

func equalSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
