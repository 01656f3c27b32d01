package split

import (
	"testing"
	"unicode/utf8"
)

// FuzzSplit checks the round-trip invariant Split documents (preceding +
// middle + trailing == input) and that every returned piece stays valid
// UTF-8, mirroring the teacher's chunker FuzzBySize invariant style.
func FuzzSplit(f *testing.F) {
	f.Add("[][][][]", false)
	f.Add("t*", false)
	f.Add("#\"percent%sign\"#", false)
	f.Add("*[মেটা]*", false)
	f.Add("kt:", true)
	f.Add("kt::`", false)
	f.Add("।ঃমেঃ।টাঃ।", false)
	f.Add("", true)

	f.Fuzz(func(t *testing.T, s string, includeColon bool) {
		if !utf8.ValidString(s) {
			return
		}
		pre, mid, trail := Split(s, includeColon)
		if pre+mid+trail != s {
			t.Fatalf("Split(%q, %v) does not round-trip: %q+%q+%q != %q",
				s, includeColon, pre, mid, trail, s)
		}
		if !utf8.ValidString(pre) || !utf8.ValidString(mid) || !utf8.ValidString(trail) {
			t.Fatalf("Split(%q, %v) produced invalid UTF-8: (%q, %q, %q)", s, includeColon, pre, mid, trail)
		}
	})
}

// FuzzSmartQuote checks that SmartQuote never panics and always returns
// a pair whose combined length in runes matches the input pair's.
func FuzzSmartQuote(f *testing.F) {
	f.Add("'", "Till", "")
	f.Add("", "Hey", "\"")
	f.Add("'\"", "Hey", "'\"")
	f.Add("", "", "")

	f.Fuzz(func(t *testing.T, pre, mid, trail string) {
		if !utf8.ValidString(pre) || !utf8.ValidString(mid) || !utf8.ValidString(trail) {
			return
		}
		newPre, newTrail := SmartQuote(pre, mid, trail)
		if mid == "" {
			if newPre != pre || newTrail != trail {
				t.Fatalf("SmartQuote(%q, \"\", %q) = (%q, %q), want unchanged", pre, trail, newPre, newTrail)
			}
			return
		}
		if len([]rune(newPre)) != len([]rune(pre)) || len([]rune(newTrail)) != len([]rune(trail)) {
			t.Fatalf("SmartQuote(%q, %q, %q) changed rune counts: got (%q, %q)", pre, mid, trail, newPre, newTrail)
		}
	})
}
