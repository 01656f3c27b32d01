package regexsyn

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzSynthesize checks that Synthesize never panics over arbitrary
// input and always anchors its output, mirroring the teacher's
// numtext FuzzConvert never-panics style.
func FuzzSynthesize(f *testing.F) {
	f.Add("l")
	f.Add("osthir")
	f.Add("OSTHIR")
	f.Add("l9l")
	f.Add("")
	f.Add("###")
	f.Add("আমি")

	tbl := testTable()

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		got := Synthesize(tbl, s)
		if s == "" {
			return
		}
		if !strings.HasPrefix(got, "^") || !strings.HasSuffix(got, "$") {
			t.Fatalf("Synthesize(%q) = %q, not anchored", s, got)
		}
	})
}

// FuzzConvert checks that Convert never panics over arbitrary input.
func FuzzConvert(f *testing.F) {
	f.Add("l")
	f.Add("osthir")
	f.Add("")
	f.Add("l9l")

	tbl := testTable()

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		_ = Convert(tbl, s)
	})
}
