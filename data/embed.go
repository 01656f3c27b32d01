// Package data embeds and loads the static tables every method
// consults: the phonetic word-search dictionary, its suffix and
// autocorrect maps, the phonetic regex pattern table, and the emoji
// indices. A built-in copy is embedded in the binary; Load lets a host
// point at its own copy of the same five files instead.
package data

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/bnkb-dev/bnsuggest/config"
	"github.com/bnkb-dev/bnsuggest/regexsyn"
)

//go:embed dictionary.json
var defaultDictionaryJSON []byte

//go:embed suffix.json
var defaultSuffixJSON []byte

//go:embed autocorrect.json
var defaultAutocorrectJSON []byte

//go:embed emoji.json
var defaultEmojiJSON []byte

//go:embed avrophonetic.json
var defaultPatternJSON []byte

// EmojiTables indexes the emoticon/name/Bengali-glyph emoji lookups the
// phonetic method's emoji suggestion exposes.
type EmojiTables struct {
	ByEmoticon map[string]string   `json:"by_emoticon"`
	ByName     map[string][]string `json:"by_name"`
	ByBengali  map[string][]string `json:"by_bengali"`
}

// patternFile is the on-disk shape of the phonetic regex pattern table:
// a flat, unsorted array of patterns plus the character classes rule
// evaluation needs. regexsyn.SortPatterns is applied after parsing.
type patternFile struct {
	Patterns  []regexsyn.Pattern `json:"patterns"`
	Vowel     string             `json:"vowel"`
	Consonant string             `json:"consonant"`
	Ignore    string             `json:"ignore"`
}

// Tables bundles every static table the phonetic and fixed methods
// consult.
type Tables struct {
	Dictionary  map[string][]string
	Suffix      map[string]string
	Autocorrect map[string]string
	Patterns    *regexsyn.Table
	Emoji       EmojiTables
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the tables embedded in the binary, parsed once and
// shared across every caller.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = parse(
			defaultDictionaryJSON, defaultSuffixJSON, defaultAutocorrectJSON,
			defaultEmojiJSON, defaultPatternJSON,
		)
	})
	return defaultTables, defaultErr
}

// Load returns the tables cfg's database directory points at, falling
// back to Default when no database directory is configured — mirroring
// original_source's Data::new, which falls back to empty maps rather
// than erroring when the directory is unset. Unlike the original, a
// directory that is configured but unreadable is an error: a host that
// set a path meant it to be used, not silently ignored.
func Load(cfg *config.Config) (*Tables, error) {
	if cfg == nil || cfg.DatabaseDir() == "" {
		return Default()
	}

	dict, err := os.ReadFile(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("data: reading dictionary table: %w", err)
	}
	suffix, err := os.ReadFile(cfg.SuffixDataPath())
	if err != nil {
		return nil, fmt.Errorf("data: reading suffix table: %w", err)
	}
	autocorrect, err := os.ReadFile(cfg.AutocorrectDataPath())
	if err != nil {
		return nil, fmt.Errorf("data: reading autocorrect table: %w", err)
	}
	emoji, err := os.ReadFile(cfg.EmojiDataPath())
	if err != nil {
		return nil, fmt.Errorf("data: reading emoji table: %w", err)
	}
	patterns, err := os.ReadFile(cfg.PatternDataPath())
	if err != nil {
		return nil, fmt.Errorf("data: reading pattern table: %w", err)
	}
	return parse(dict, suffix, autocorrect, emoji, patterns)
}

func parse(dictJSON, suffixJSON, autocorrectJSON, emojiJSON, patternJSON []byte) (*Tables, error) {
	var dict map[string][]string
	if err := json.Unmarshal(dictJSON, &dict); err != nil {
		return nil, fmt.Errorf("data: parsing dictionary table: %w", err)
	}

	var suffix map[string]string
	if err := json.Unmarshal(suffixJSON, &suffix); err != nil {
		return nil, fmt.Errorf("data: parsing suffix table: %w", err)
	}

	var autocorrect map[string]string
	if err := json.Unmarshal(autocorrectJSON, &autocorrect); err != nil {
		return nil, fmt.Errorf("data: parsing autocorrect table: %w", err)
	}

	var emoji EmojiTables
	if err := json.Unmarshal(emojiJSON, &emoji); err != nil {
		return nil, fmt.Errorf("data: parsing emoji table: %w", err)
	}

	var pf patternFile
	if err := json.Unmarshal(patternJSON, &pf); err != nil {
		return nil, fmt.Errorf("data: parsing pattern table: %w", err)
	}
	regexsyn.SortPatterns(pf.Patterns)
	for i := range pf.Patterns {
		pf.Patterns[i].Replace = norm.NFC.String(pf.Patterns[i].Replace)
		for j := range pf.Patterns[i].Rules {
			pf.Patterns[i].Rules[j].Replace = norm.NFC.String(pf.Patterns[i].Rules[j].Replace)
		}
	}

	return &Tables{
		Dictionary:  normalizeSliceValues(dict),
		Suffix:      normalizeValues(suffix),
		Autocorrect: normalizeValues(autocorrect),
		Patterns:    regexsyn.NewTable(pf.Patterns, pf.Vowel, pf.Consonant, pf.Ignore),
		Emoji: EmojiTables{
			ByEmoticon: normalizeValues(emoji.ByEmoticon),
			ByName:     normalizeSliceValues(emoji.ByName),
			ByBengali:  normalizeKeyedSliceValues(emoji.ByBengali),
		},
	}, nil
}

// normalizeValues NFC-normalizes every map value in place, leaving
// (ASCII, romanized) keys untouched.
func normalizeValues(m map[string]string) map[string]string {
	for k, v := range m {
		m[k] = norm.NFC.String(v)
	}
	return m
}

func normalizeSliceValues(m map[string][]string) map[string][]string {
	for _, vs := range m {
		for i, v := range vs {
			vs[i] = norm.NFC.String(v)
		}
	}
	return m
}

// normalizeKeyedSliceValues NFC-normalizes both keys and values, for
// tables (like emoji-by-Bengali-name) keyed by Bengali text rather than
// romanized ASCII.
func normalizeKeyedSliceValues(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, vs := range m {
		nvs := make([]string, len(vs))
		for i, v := range vs {
			nvs[i] = norm.NFC.String(v)
		}
		out[norm.NFC.String(k)] = nvs
	}
	return out
}
