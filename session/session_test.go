package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnkb-dev/bnsuggest/config"
	"github.com/bnkb-dev/bnsuggest/keycodes"
)

const phoneticLayoutJSON = `{"info": {"name": "Avro Phonetic", "type": "phonetic"}, "layout": {}}`

const fixedLayoutJSON = `{
  "info": {"name": "Probhat", "type": "fixed"},
  "layout": {
    "Key_k_Normal": "ক",
    "Key_a_Normal": "া"
  }
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", p, err)
	}
	return p
}

func phoneticConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	layoutPath := writeFile(t, dir, "avro.json", phoneticLayoutJSON)
	return config.New(layoutPath, "", filepath.Join(dir, "user"),
		true, false,
		false, false, false, false, false, false, false)
}

func fixedConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	layoutPath := writeFile(t, dir, "probhat.json", fixedLayoutJSON)
	return config.New(layoutPath, "", filepath.Join(dir, "user"),
		false, false,
		false, false, true, true, true, true, false)
}

func TestNewWithConfigSelectsPhoneticMethod(t *testing.T) {
	s, err := NewWithConfig(phoneticConfig(t))
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	if _, ok := s.active.(*phoneticSession); !ok {
		t.Errorf("active method = %T, want *phoneticSession", s.active)
	}
}

func TestNewWithConfigSelectsFixedMethod(t *testing.T) {
	s, err := NewWithConfig(fixedConfig(t))
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	if _, ok := s.active.(*fixedSession); !ok {
		t.Errorf("active method = %T, want *fixedSession", s.active)
	}
}

func TestNewWithConfigUnknownLayoutType(t *testing.T) {
	dir := t.TempDir()
	layoutPath := writeFile(t, dir, "bad.json", `{"info":{"type":"bogus"},"layout":{}}`)
	cfg := config.New(layoutPath, "", dir, true, false, false, false, false, false, false, false, false)
	if _, err := NewWithConfig(cfg); err == nil {
		t.Error("NewWithConfig with an unknown layout type should error")
	}
}

func TestPhoneticOngoingSessionAndFinish(t *testing.T) {
	s, err := NewWithConfig(phoneticConfig(t))
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	if s.OngoingInputSession() {
		t.Error("a fresh session should have no ongoing input")
	}

	s.GetSuggestionForKey(keycodes.VC_a, 0)
	if !s.OngoingInputSession() {
		t.Error("after a key event the session should be ongoing")
	}

	s.FinishInputSession()
	if s.OngoingInputSession() {
		t.Error("FinishInputSession should clear the buffer")
	}
}

func TestPhoneticBackspaceEndsSessionWhenBufferEmpties(t *testing.T) {
	s, err := NewWithConfig(phoneticConfig(t))
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	s.GetSuggestionForKey(keycodes.VC_a, 0)
	if sugg := s.BackspaceEvent(); !sugg.IsEmpty() {
		t.Error("backspacing the only character should return an empty Suggestion")
	}
	if s.OngoingInputSession() {
		t.Error("backspace emptying the buffer should end the input session")
	}
}

func TestPhoneticCandidateCommittedPersistsSelection(t *testing.T) {
	cfg := phoneticConfig(t)
	s, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	// "atm" has a bundled autocorrect entry, so typing it through
	// guarantees at least two candidates: the autocorrect-corrected
	// spelling, plus the plain phonetic fallback.
	var sugg = s.GetSuggestionForKey(keycodes.VC_a, 0)
	sugg = s.GetSuggestionForKey(keycodes.VC_t, 0)
	sugg = s.GetSuggestionForKey(keycodes.VC_m, 0)
	if sugg.IsLonely() {
		t.Fatal("phonetic suggestion is expected to be a list, not lonely")
	}
	if sugg.Len() < 2 {
		t.Fatalf("expected at least two candidates for %q, got %d", "atm", sugg.Len())
	}

	lastIndex := sugg.Len() - 1
	s.CandidateCommitted(lastIndex)

	if s.OngoingInputSession() {
		t.Error("CandidateCommitted should end the input session")
	}

	data, err := os.ReadFile(cfg.UserPhoneticSelectionPath())
	if err != nil {
		t.Fatalf("reading persisted selections: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("parsing persisted selections: %v", err)
	}
	if len(m) == 0 {
		t.Error("expected a persisted selection after committing a non-default candidate")
	}
}

func TestFixedGetSuggestionForKey(t *testing.T) {
	s, err := NewWithConfig(fixedConfig(t))
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	sugg := s.GetSuggestionForKey(keycodes.VC_k, 0)
	if sugg.IsEmpty() {
		t.Fatal("VC_k should be handled by the fixed test layout")
	}
	if !s.OngoingInputSession() {
		t.Error("a handled fixed key should start an ongoing input session")
	}
}

func TestFixedUnmappedKeyUnhandled(t *testing.T) {
	s, err := NewWithConfig(fixedConfig(t))
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	sugg := s.GetSuggestionForKey(keycodes.VC_z, 0)
	if !sugg.IsEmpty() {
		t.Error("an unmapped fixed key should return an empty Suggestion")
	}
}

func TestFixedCandidateCommittedClearsBuffer(t *testing.T) {
	s, err := NewWithConfig(fixedConfig(t))
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}

	s.GetSuggestionForKey(keycodes.VC_k, 0)
	s.CandidateCommitted(0)
	if s.OngoingInputSession() {
		t.Error("CandidateCommitted should clear the fixed method's buffer")
	}
}
