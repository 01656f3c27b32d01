// Package suggestion implements the Suggestion sum type returned to the
// host on every keystroke: an ordered candidate list with auxiliary text
// and a previously-selected index, a lonely single candidate, or empty.
package suggestion

import "github.com/bnkb-dev/bnsuggest/internal/assert"

// Suggestion is the value returned to the host after each keystroke. It is
// one of three shapes: a list of candidates with auxiliary text and a
// previously-selected index; a single ("lonely") candidate; or empty.
type Suggestion struct {
	auxiliary   string
	candidates  []string
	lonely      string
	isLonely    bool
	selection   int
}

// New builds a list Suggestion: auxiliary text, ordered candidates, and
// the index within candidates that was previously selected for this
// romanization (0 if none).
func New(auxiliary string, candidates []string, selection int) Suggestion {
	return Suggestion{auxiliary: auxiliary, candidates: candidates, selection: selection}
}

// NewLonely builds a lonely Suggestion: a single candidate with no
// auxiliary text and selection index 0.
func NewLonely(candidate string) Suggestion {
	return Suggestion{lonely: candidate, isLonely: true}
}

// Empty builds an empty Suggestion (host interprets this as "unhandled").
func Empty() Suggestion {
	return Suggestion{isLonely: true}
}

// IsLonely reports whether s carries a single candidate rather than a list.
func (s Suggestion) IsLonely() bool { return s.isLonely }

// IsEmpty reports whether s carries no candidates at all.
func (s Suggestion) IsEmpty() bool {
	if s.isLonely {
		return s.lonely == ""
	}
	return len(s.candidates) == 0
}

// Len returns the number of candidates in a list Suggestion. Panics if s
// is lonely — callers must check IsLonely first, matching the host
// contract that lonely and list suggestions are accessed through
// different API calls.
func (s Suggestion) Len() int {
	assert.True(!s.isLonely, "suggestion: Len called on a lonely Suggestion")
	return len(s.candidates)
}

// Get returns the i-th candidate of a list Suggestion.
func (s Suggestion) Get(i int) string {
	assert.True(!s.isLonely, "suggestion: Get called on a lonely Suggestion")
	return s.candidates[i]
}

// LonelySuggestion returns the single candidate of a lonely Suggestion.
func (s Suggestion) LonelySuggestion() string {
	assert.True(s.isLonely, "suggestion: LonelySuggestion called on a list Suggestion")
	return s.lonely
}

// AuxiliaryText returns the romanized buffer text shown alongside the
// candidate list for user feedback.
func (s Suggestion) AuxiliaryText() string { return s.auxiliary }

// PreviouslySelectedIndex returns the index of the suggestion the user
// chose last time this exact romanization was suggested, or 0 if none.
func (s Suggestion) PreviouslySelectedIndex() int { return s.selection }
