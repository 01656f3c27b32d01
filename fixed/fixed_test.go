package fixed

import (
	"testing"

	"github.com/bnkb-dev/bnsuggest/keycodes"
	"github.com/bnkb-dev/bnsuggest/layout"
)

const probhatJSON = `{
  "info": {"name": "Probhat", "type": "fixed"},
  "layout": {
    "Key_a_Normal": "া",
    "Key_A_Normal": "া",
    "Key_k_Normal": "ক",
    "Key_K_Normal": "খ"
  }
}`

func testMethod(t *testing.T, opts Options) *Method {
	t.Helper()
	l, err := layout.Parse([]byte(probhatJSON))
	if err != nil {
		t.Fatalf("layout.Parse() error = %v", err)
	}
	return NewMethod(l, opts)
}

func TestGetSuggestionBackspace(t *testing.T) {
	m := testMethod(t, Options{})
	m.buffer = []rune("আমি")

	if s := m.GetSuggestion(keycodes.VC_BACKSPACE, 0); s.IsEmpty() {
		t.Fatal("backspace from আমি should not be empty (আম)")
	}
	if s := m.GetSuggestion(keycodes.VC_BACKSPACE, 0); s.IsEmpty() {
		t.Fatal("backspace from আম should not be empty (আ)")
	}
	if s := m.GetSuggestion(keycodes.VC_BACKSPACE, 0); !s.IsEmpty() {
		t.Fatal("backspace from আ should empty the buffer")
	}
}

func TestInsertReph(t *testing.T) {
	cases := []struct {
		before, after string
	}{
		{"অক", "অর্ক"},
		{"ক", "র্ক"},
		{"কত", "কর্ত"},
		{"অক্কা", "অর্ক্কা"},
		{"কক্ষ্ম", "কর্ক্ষ্ম"},
		{"কব্যা", "কর্ব্যা"},
	}

	for _, c := range cases {
		m := testMethod(t, Options{})
		m.buffer = []rune(c.before)
		m.insertReph()
		if got := string(m.buffer); got != c.after {
			t.Errorf("insertReph(%q) = %q, want %q", c.before, got, c.after)
		}
	}
}

func TestProcessKeyValueFeatures(t *testing.T) {
	opts := Options{AutomaticVowel: true, AutomaticChandra: true, TraditionalKar: true}

	// Automatic vowel forming.
	m := testMethod(t, opts)
	m.buffer = nil
	m.processKeyValue("া")
	if got := string(m.buffer); got != "আ" {
		t.Errorf("automatic vowel on empty buffer = %q, want আ", got)
	}

	m.buffer = []rune("আ")
	m.processKeyValue("ি")
	if got := string(m.buffer); got != "আই" {
		t.Errorf("automatic vowel after vowel = %q, want আই", got)
	}

	// Automatic chandra position.
	m.buffer = []rune("কঁ")
	m.processKeyValue("া")
	if got := string(m.buffer); got != "কাঁ" {
		t.Errorf("automatic chandra = %q, want কাঁ", got)
	}

	// Traditional kar joining.
	m.buffer = []rune("র")
	m.processKeyValue("ু")
	if got := string(m.buffer); got != "র‌ু" {
		t.Errorf("traditional kar joining = %q, want র‌ু", got)
	}

	// Without traditional kar joining.
	optsNoKar := opts
	optsNoKar.TraditionalKar = false
	m2 := testMethod(t, optsNoKar)
	m2.buffer = []rune("র")
	m2.processKeyValue("ু")
	if got := string(m2.buffer); got != "রু" {
		t.Errorf("without traditional kar joining = %q, want রু", got)
	}

	// Vowel making with hasanta.
	m.buffer = []rune("্")
	m.processKeyValue("ু")
	if got := string(m.buffer); got != "উ" {
		t.Errorf("hasanta+kar vowel making = %q, want উ", got)
	}

	// Double hasanta for hasanta+ZWNJ.
	m.buffer = []rune("্")
	m.processKeyValue("্")
	if got := string(m.buffer); got != "্‌" {
		t.Errorf("double hasanta = %q, want hasanta+ZWNJ", got)
	}

	// Plain append for an unrelated key.
	m.buffer = []rune("ক")
	m.processKeyValue("খ")
	if got := string(m.buffer); got != "কখ" {
		t.Errorf("plain append = %q, want কখ", got)
	}

	// Kar with no special-casing applicable falls through to plain append.
	optsBare := Options{}
	m3 := testMethod(t, optsBare)
	m3.buffer = []rune("ক")
	m3.processKeyValue("া")
	if got := string(m3.buffer); got != "কা" {
		t.Errorf("plain kar append = %q, want কা", got)
	}
}

func TestGetSuggestionLayoutLookup(t *testing.T) {
	m := testMethod(t, Options{})
	s := m.GetSuggestion(keycodes.VC_k, 0)
	if !m.KeyHandled() {
		t.Fatal("VC_k should be handled by the test layout")
	}
	if s.LonelySuggestion() != "ক" {
		t.Errorf("GetSuggestion(VC_k) = %q, want ক", s.LonelySuggestion())
	}

	s = m.GetSuggestion(keycodes.VC_K, 0)
	if s.LonelySuggestion() != "কখ" {
		t.Errorf("GetSuggestion(VC_K) = %q, want কখ", s.LonelySuggestion())
	}
}

func TestGetSuggestionUnmappedKeyUnhandled(t *testing.T) {
	m := testMethod(t, Options{})
	s := m.GetSuggestion(keycodes.VC_z, 0)
	if m.KeyHandled() {
		t.Error("an unmapped key should leave KeyHandled false")
	}
	if !s.IsEmpty() {
		t.Error("an unmapped key should return an empty Suggestion")
	}
}

func TestGetSuggestionModifierKeyWithBuffer(t *testing.T) {
	m := testMethod(t, Options{})
	m.buffer = []rune("ক")
	s := m.GetSuggestion(keycodes.VC_SHIFT, 0)
	if !m.KeyHandled() {
		t.Error("a modifier key with a non-empty buffer should be handled")
	}
	if s.LonelySuggestion() != "ক" {
		t.Errorf("modifier-key suggestion = %q, want ক", s.LonelySuggestion())
	}
}
