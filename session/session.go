// Package session implements the engine's external surface: a Session
// owns exactly one active input method (phonetic or fixed, chosen by
// the configured layout file's declared type) and dispatches every host
// call — key events, backspace, candidate commits, engine updates — to
// it. Persistence failures on candidate commit are logged and
// swallowed, never surfaced to the host; per-keystroke failures
// degrade to an empty Suggestion rather than propagating an error.
package session

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bnkb-dev/bnsuggest/bnlog"
	"github.com/bnkb-dev/bnsuggest/config"
	"github.com/bnkb-dev/bnsuggest/data"
	"github.com/bnkb-dev/bnsuggest/fixed"
	"github.com/bnkb-dev/bnsuggest/internal/atomicfile"
	"github.com/bnkb-dev/bnsuggest/internal/split"
	"github.com/bnkb-dev/bnsuggest/keycodes"
	"github.com/bnkb-dev/bnsuggest/layout"
	"github.com/bnkb-dev/bnsuggest/phonetic"
	"github.com/bnkb-dev/bnsuggest/suggestion"
)

// method is the behavior every input method (phonetic, fixed) exposes
// to a Session, mirroring original_source's context::Method trait.
type method interface {
	getSuggestion(key keycodes.VC, modifier keycodes.Modifier) suggestion.Suggestion
	candidateCommitted(index int)
	updateEngine(cfg *config.Config) error
	ongoingInputSession() bool
	finishInputSession()
	backspaceEvent() suggestion.Suggestion
}

// Session is one typing session: the active method plus the config it
// was constructed with. Owned exclusively by its caller; never shared
// or accessed concurrently, matching the single-threaded-per-session
// resource model.
type Session struct {
	cfg    *config.Config
	active method
}

// NewWithConfig constructs a Session by loading every table cfg points
// at and selecting the active method from the layout file's declared
// type. Mirrors riti_context_new_with_config: a malformed table or
// unknown layout type fails construction outright, with no partial
// Session returned.
func NewWithConfig(cfg *config.Config) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("session: nil config")
	}

	raw, err := os.ReadFile(cfg.LayoutFilePath())
	if err != nil {
		return nil, fmt.Errorf("session: reading layout file: %w", err)
	}
	lt, err := layout.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("session: parsing layout file: %w", err)
	}

	tables, err := data.Load(cfg)
	if err != nil {
		return nil, fmt.Errorf("session: loading tables: %w", err)
	}

	var active method
	switch lt.Type() {
	case layout.TypePhonetic:
		active, err = newPhoneticSession(cfg, tables)
	case layout.TypeFixed:
		active, err = newFixedSession(cfg, lt, tables)
	default:
		return nil, fmt.Errorf("session: unknown layout type %q", lt.Type())
	}
	if err != nil {
		return nil, err
	}

	return &Session{cfg: cfg, active: active}, nil
}

// GetSuggestionForKey processes one key event through the active
// method.
func (s *Session) GetSuggestionForKey(key keycodes.VC, modifier keycodes.Modifier) suggestion.Suggestion {
	return s.active.getSuggestion(key, modifier)
}

// BackspaceEvent removes the last character from the active method's
// buffer, ending the input session if the buffer empties.
func (s *Session) BackspaceEvent() suggestion.Suggestion {
	return s.active.backspaceEvent()
}

// CandidateCommitted folds the choice at index into the active
// method's user-selection cache (when it differs from what would have
// been chosen automatically) and ends the input session.
func (s *Session) CandidateCommitted(index int) {
	s.active.candidateCommitted(index)
}

// OngoingInputSession reports whether the active method's buffer is
// non-empty.
func (s *Session) OngoingInputSession() bool {
	return s.active.ongoingInputSession()
}

// FinishInputSession clears the active method's buffer without
// recording a selection.
func (s *Session) FinishInputSession() {
	s.active.finishInputSession()
}

// UpdateEngine applies cfg to the active method, reloading on every
// call without comparing cfg's paths to the current configuration: the
// phonetic method reloads its tables and user autocorrect overlay, the
// fixed method re-reads the layout file and reloads its tables.
func (s *Session) UpdateEngine(cfg *config.Config) error {
	if err := s.active.updateEngine(cfg); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

// phoneticSession wraps a phonetic.Engine with the per-session buffer,
// selection cache, and previously-selected index, grounded on
// original_source's PhoneticMethod.
type phoneticSession struct {
	cfg            *config.Config
	engine         *phonetic.Engine
	buffer         string
	selections     map[string]string
	prevSelection  int
	lastCandidates []string
}

func newPhoneticSession(cfg *config.Config, tables *data.Tables) (*phoneticSession, error) {
	engine := phonetic.NewEngine(tables, phonetic.CoregexMatcher)
	if err := engine.LoadUserAutocorrect(cfg.UserPhoneticAutocorrectPath()); err != nil {
		return nil, fmt.Errorf("session: loading user autocorrect overlay: %w", err)
	}

	selections, err := loadSelections(cfg.UserPhoneticSelectionPath())
	if err != nil {
		bnlog.PersistenceFailure(cfg.Log(), cfg.UserPhoneticSelectionPath(), err)
		selections = make(map[string]string)
	}

	return &phoneticSession{cfg: cfg, engine: engine, selections: selections}, nil
}

func loadSelections(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func (p *phoneticSession) createSuggestion() suggestion.Suggestion {
	if !p.cfg.PhoneticSuggestion() {
		return suggestion.NewLonely(p.engine.ConvertOnly(p.buffer))
	}

	candidates, selection, err := p.engine.Suggest(p.buffer, p.selections, p.cfg.PhoneticIncludeEnglish())
	if err != nil {
		bnlog.SuggestionFailure(p.cfg.Log(), "phonetic.Suggest", err)
		return suggestion.Empty()
	}
	p.prevSelection = selection
	p.lastCandidates = candidates
	return suggestion.New(p.buffer, candidates, selection)
}

// maxBufferRunes caps how many runes a phonetic romanization buffer may
// accumulate before further key events are dropped rather than
// processed, generalizing the teacher's maxWordBytes=256 byte cap to a
// Bengali grapheme count; see fixed.maxBufferRunes for the layout-side
// counterpart.
const maxBufferRunes = 256

func (p *phoneticSession) getSuggestion(key keycodes.VC, _ keycodes.Modifier) suggestion.Suggestion {
	r, ok := keycodes.ToASCII(key)
	if !ok {
		return suggestion.Empty()
	}
	if len([]rune(p.buffer)) >= maxBufferRunes {
		return suggestion.Empty()
	}
	p.buffer += string(r)
	return p.createSuggestion()
}

func (p *phoneticSession) backspaceEvent() suggestion.Suggestion {
	if p.buffer == "" {
		return suggestion.Empty()
	}
	runes := []rune(p.buffer)
	p.buffer = string(runes[:len(runes)-1])
	if p.buffer == "" {
		return suggestion.Empty()
	}
	return p.createSuggestion()
}

func (p *phoneticSession) candidateCommitted(index int) {
	if p.prevSelection != index && p.cfg.PhoneticSuggestion() && index >= 0 && index < len(p.lastCandidates) {
		_, committedMiddle, _ := split.Split(p.lastCandidates[index], true)
		_, bufferMiddle, _ := split.Split(p.buffer, false)
		p.selections[bufferMiddle] = committedMiddle

		b, err := json.Marshal(p.selections)
		if err == nil {
			if err := atomicfile.Write(p.cfg.UserPhoneticSelectionPath(), b, 0o644); err != nil {
				bnlog.PersistenceFailure(p.cfg.Log(), p.cfg.UserPhoneticSelectionPath(), err)
			}
		}
	}
	p.buffer = ""
}

func (p *phoneticSession) updateEngine(cfg *config.Config) error {
	tables, err := data.Load(cfg)
	if err != nil {
		return fmt.Errorf("session: reloading tables: %w", err)
	}
	p.engine = phonetic.NewEngine(tables, phonetic.CoregexMatcher)
	if err := p.engine.LoadUserAutocorrect(cfg.UserPhoneticAutocorrectPath()); err != nil {
		return fmt.Errorf("session: reloading user autocorrect overlay: %w", err)
	}
	p.cfg = cfg
	return nil
}

func (p *phoneticSession) ongoingInputSession() bool { return p.buffer != "" }

func (p *phoneticSession) finishInputSession() { p.buffer = "" }

// fixedSession wraps a fixed.Method, adding fixed-method dictionary
// search and the same commit/persistence shape as phoneticSession,
// grounded on original_source's FixedMethod plus fixed/search.rs.
type fixedSession struct {
	cfg    *config.Config
	method *fixed.Method
	tables *data.Tables
}

func fixedOptions(cfg *config.Config) fixed.Options {
	return fixed.Options{
		AutomaticVowel:   cfg.FixedAutomaticVowel(),
		AutomaticChandra: cfg.FixedAutomaticChandra(),
		TraditionalKar:   cfg.FixedTraditionalKar(),
		Numpad:           cfg.FixedNumpad(),
	}
}

func newFixedSession(cfg *config.Config, lt *layout.Layout, tables *data.Tables) (*fixedSession, error) {
	return &fixedSession{
		cfg:    cfg,
		method: fixed.NewMethod(lt, fixedOptions(cfg)),
		tables: tables,
	}, nil
}

func (f *fixedSession) getSuggestion(key keycodes.VC, modifier keycodes.Modifier) suggestion.Suggestion {
	s := f.method.GetSuggestion(key, modifier)
	if !f.method.KeyHandled() || !f.cfg.FixedSuggestion() {
		return s
	}
	return f.withDictionarySuggestions(s)
}

func (f *fixedSession) backspaceEvent() suggestion.Suggestion {
	s := f.method.GetSuggestion(keycodes.VC_BACKSPACE, 0)
	if s.IsEmpty() || !f.cfg.FixedSuggestion() {
		return s
	}
	return f.withDictionarySuggestions(s)
}

// withDictionarySuggestions resolves dictionary candidates for the
// buffer lonely suggestion s carries, falling back to s itself (typed
// text passthrough) when nothing matches.
func (f *fixedSession) withDictionarySuggestions(s suggestion.Suggestion) suggestion.Suggestion {
	word := s.LonelySuggestion()
	candidates, err := fixed.SearchDictionary(phonetic.CoregexMatcher, f.tables.Dictionary, word, f.cfg.FixedTraditionalKar())
	if err != nil {
		bnlog.SuggestionFailure(f.cfg.Log(), "fixed.SearchDictionary", err)
		return s
	}
	if len(candidates) == 0 {
		if f.cfg.FixedIncludeEnglish() {
			return suggestion.New(word, []string{word}, 0)
		}
		return s
	}
	if f.cfg.FixedIncludeEnglish() && !containsString(candidates, word) {
		candidates = append(candidates, word)
	}
	return suggestion.New(word, candidates, 0)
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (f *fixedSession) candidateCommitted(int) {
	f.method.Reset()
}

func (f *fixedSession) updateEngine(cfg *config.Config) error {
	raw, err := os.ReadFile(cfg.LayoutFilePath())
	if err != nil {
		return fmt.Errorf("session: re-reading layout file: %w", err)
	}
	lt, err := layout.Parse(raw)
	if err != nil {
		return fmt.Errorf("session: re-parsing layout file: %w", err)
	}
	tables, err := data.Load(cfg)
	if err != nil {
		return fmt.Errorf("session: reloading tables: %w", err)
	}
	f.method.UpdateEngine(lt, fixedOptions(cfg))
	f.tables = tables
	f.cfg = cfg
	return nil
}

func (f *fixedSession) ongoingInputSession() bool { return f.method.Buffer() != "" }

func (f *fixedSession) finishInputSession() { f.method.Reset() }
