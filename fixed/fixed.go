// Package fixed implements the fixed (layout-driven, "Probhat"-style)
// input method: a state machine over a single buffer that maps raw key
// events straight to Bengali text via a layout keymap, plus the
// orthographic post-processing (reph insertion, traditional kar
// joining, automatic vowel forming) OpenBangla's fixed layouts apply on
// top of the raw keymap, and the dictionary search fixed-method
// suggestion lists use.
package fixed

import (
	"fmt"
	"strings"

	"github.com/bnkb-dev/bnsuggest/dictfilter"
	"github.com/bnkb-dev/bnsuggest/internal/graph"
	"github.com/bnkb-dev/bnsuggest/keycodes"
	"github.com/bnkb-dev/bnsuggest/layout"
	"github.com/bnkb-dev/bnsuggest/suggestion"
)

// marks is the set of ASCII punctuation that, like an empty buffer or a
// trailing vowel, licenses automatic-vowel kar substitution.
const marks = "`~!@#$%^+*-_=+\\|\"/;:,./?><()[]{}"

// maxBufferRunes caps how many runes a single fixed-layout buffer may
// accumulate before further key events are dropped rather than
// processed, generalizing the teacher's maxWordBytes=256 byte cap to a
// Bengali grapheme count. Guards against unbounded CPU cost building
// suggestions over a pathologically long, never-committed buffer; a
// real typing session never approaches it.
const maxBufferRunes = 256

const (
	reph       = "র্"      // U+09B0 U+09CD
	zoFola     = "্য"      // U+09CD U+09AF
	hasanta    = "্"       // U+09CD
	zwj        = '‍'
	zwnj       = '‌'
	chandrabindu = 'ঁ'
)

// karToVowel maps each dependent vowel sign to the independent vowel it
// substitutes for under automatic-vowel forming and hasanta+kar vowel
// making.
var karToVowel = map[rune]rune{
	'া': 'আ', 'ি': 'ই', 'ী': 'ঈ', 'ু': 'উ', 'ূ': 'ঊ',
	'ৃ': 'ঋ', 'ৄ': 'ৠ', 'ে': 'এ', 'ৈ': 'ঐ', 'ো': 'ও', 'ৌ': 'ঔ',
}

// Options toggles the orthographic post-processing features a fixed
// layout session runs with, each sourced from Config.
type Options struct {
	AutomaticVowel   bool
	AutomaticChandra bool
	TraditionalKar   bool
	Numpad           bool
}

// Method is one fixed-layout typing session: a layout keymap, its
// feature toggles, and the buffer being built up one key at a time.
type Method struct {
	layout  *layout.Layout
	opts    Options
	buffer  []rune
	handled bool
}

// NewMethod builds a Method over an already-parsed layout.
func NewMethod(l *layout.Layout, opts Options) *Method {
	return &Method{layout: l, opts: opts}
}

// KeyHandled reports whether the most recent GetSuggestion call
// consumed the key event.
func (m *Method) KeyHandled() bool { return m.handled }

// Buffer returns the current raw Bengali buffer text.
func (m *Method) Buffer() string { return string(m.buffer) }

// Reset clears the buffer without producing a Suggestion, ending the
// input session without learning anything from it.
func (m *Method) Reset() {
	m.buffer = nil
	m.handled = false
}

func (m *Method) rightmost() rune {
	if len(m.buffer) == 0 {
		return 0
	}
	return m.buffer[len(m.buffer)-1]
}

// GetSuggestion processes one key event and returns the resulting
// Suggestion. Mirrors original_source's FixedMethod::get_suggestion.
func (m *Method) GetSuggestion(key keycodes.VC, modifier keycodes.Modifier) suggestion.Suggestion {
	altGr := keycodes.HasAltGr(modifier)

	if key == keycodes.VC_SHIFT || key == keycodes.VC_CONTROL || key == keycodes.VC_ALT {
		if len(m.buffer) != 0 {
			m.handled = true
			return m.createSuggestion()
		}
		m.handled = false
		return suggestion.Empty()
	}

	if key == keycodes.VC_BACKSPACE {
		if len(m.buffer) != 0 {
			m.buffer = m.buffer[:len(m.buffer)-1]
			m.handled = true
			if len(m.buffer) != 0 {
				return m.createSuggestion()
			}
			return suggestion.Empty()
		}
		m.handled = false
		return suggestion.Empty()
	}

	mod := layout.Normal
	if altGr {
		mod = layout.AltGr
	}
	value, ok := m.layout.CharForKey(key, mod, m.opts.Numpad)
	if !ok {
		m.handled = false
		return suggestion.Empty()
	}

	if len(m.buffer) >= maxBufferRunes {
		m.handled = false
		return suggestion.Empty()
	}

	m.processKeyValue(value)
	m.handled = true
	return m.createSuggestion()
}

func (m *Method) createSuggestion() suggestion.Suggestion {
	return suggestion.NewLonely(string(m.buffer))
}

// processKeyValue appends value's contribution to the buffer, applying
// zo-fola insertion, reph insertion, kar insertion (with automatic
// vowel/chandra/traditional-kar handling), and double-hasanta-to-ZWNJ —
// mirrors FixedMethod::process_key_value exactly.
func (m *Method) processKeyValue(value string) {
	rmc := m.rightmost()

	if value == zoFola {
		if rmc == 'র' {
			m.buffer = append(m.buffer, zwj)
		}
		m.buffer = append(m.buffer, []rune(value)...)
		return
	}

	if value == reph {
		m.insertReph()
		return
	}

	valueRunes := []rune(value)
	if len(valueRunes) > 0 {
		character := valueRunes[0]

		if graph.IsKar(character) {
			switch {
			case m.opts.AutomaticVowel && (len(m.buffer) == 0 || graph.IsVowel(rmc) || strings.ContainsRune(marks, rmc)):
				m.buffer = append(m.buffer, karToVowel[character])
			case m.opts.AutomaticChandra && rmc == chandrabindu:
				m.buffer = m.buffer[:len(m.buffer)-1]
				m.buffer = append(m.buffer, character, chandrabindu)
			case rune(rmc) == []rune(hasanta)[0]:
				m.buffer = m.buffer[:len(m.buffer)-1]
				m.buffer = append(m.buffer, karToVowel[character])
			case m.opts.TraditionalKar && graph.IsPureConsonant(rmc):
				m.buffer = append(m.buffer, zwnj, character)
			default:
				m.buffer = append(m.buffer, character)
			}
			return
		}

		if character == []rune(hasanta)[0] && rmc == []rune(hasanta)[0] {
			m.buffer = append(m.buffer, zwnj)
			return
		}
	}

	m.buffer = append(m.buffer, valueRunes...)
}

// isRephMoveable reports whether the reph being inserted can migrate
// leftward over the consonant cluster rmc terminates, per
// FixedMethod::is_reph_moveable.
func (m *Method) isRephMoveable(rmc rune, length int) bool {
	at := func(i int) rune {
		if i < 0 || i >= len(m.buffer) {
			return 0
		}
		return m.buffer[i]
	}

	switch {
	case graph.IsPureConsonant(rmc):
		return true
	case graph.IsVowel(rmc) && graph.IsPureConsonant(at(length-2)):
		return true
	case rmc == chandrabindu:
		if graph.IsPureConsonant(at(length - 2)) {
			return true
		}
		if graph.IsVowel(at(length-2)) && graph.IsPureConsonant(at(length-3)) {
			return true
		}
	}
	return false
}

// insertReph inserts র্ (reph) into the buffer, migrating it leftward
// over a trailing consonant cluster when is_reph_moveable allows it.
// Mirrors FixedMethod::insert_reph exactly, including its four boolean
// scan flags.
func (m *Method) insertReph() {
	length := len(m.buffer)
	rmc := m.rightmost()

	if !m.isRephMoveable(rmc, length) {
		m.buffer = append(m.buffer, []rune(reph)...)
		return
	}

	var (
		step                  int
		encounteredConsonant  bool
		encounteredVowel      bool
		encounteredHasanta    bool
		encounteredChandra    bool
	)

	hasantaRune := []rune(hasanta)[0]

scan:
	for index := 0; index < length; index++ {
		character := m.buffer[length-1-index]

		switch {
		case graph.IsPureConsonant(character):
			if encounteredConsonant && !encounteredHasanta {
				break scan
			}
			encounteredConsonant = true
			encounteredHasanta = false
			step++
		case character == hasantaRune:
			encounteredHasanta = true
			step++
		case graph.IsVowel(character):
			if encounteredVowel {
				break scan
			}
			if index == 0 || encounteredChandra {
				encounteredVowel = true
				step++
			} else {
				break scan
			}
		case character == chandrabindu:
			if index == 0 {
				encounteredChandra = true
				step++
			} else {
				break scan
			}
		default:
			break scan
		}
	}

	tail := append([]rune(nil), m.buffer[length-step:]...)
	m.buffer = m.buffer[:length-step]
	m.buffer = append(m.buffer, 'র', hasantaRune)
	m.buffer = append(m.buffer, tail...)
}

// UpdateEngine swaps in a freshly-loaded layout, matching
// FixedMethod::update_engine's layout-path-changed reload; the caller
// is responsible for deciding whether the path actually changed.
func (m *Method) UpdateEngine(l *layout.Layout, opts Options) {
	m.layout = l
	m.opts = opts
}

// SearchDictionary resolves dictionary candidates for the buffer's
// current grapheme content, via the bucket-by-first-grapheme and
// exact-prefix-then-bounded-suffix strategy dictfilter.FixedBucket and
// dictfilter.SearchFixed implement. Not part of the buffer state
// machine itself — called by a host once it wants suggestions rather
// than raw passthrough text.
func SearchDictionary(compile func(pattern string) (dictfilter.Matcher, error), bucketTable map[string][]string, word string, traditionalKar bool) ([]string, error) {
	cleaned := dictfilter.CleanFixedSearchWord(word)
	bucket, ok := dictfilter.FixedBucket(cleaned)
	if !ok {
		return nil, nil
	}

	needUpto := dictfilter.NeedCharsUpto(len([]rune(cleaned)))
	pattern := dictfilter.FixedSearchPattern(cleaned, needUpto)
	m, err := compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("fixed: compiling search pattern for %q: %w", word, err)
	}

	return dictfilter.SearchFixed(m, bucket, bucketTable, traditionalKar), nil
}
