// Package config defines the immutable Config struct consumed by every
// component of the engine: active layout path, database directory,
// per-method feature toggles, and (as an ambient addition) an injected
// logger. A Config is constructed once by the host and passed by
// reference into a Session; the engine never mutates it. A host that
// changes a Config re-applies it with Session.UpdateEngine.
package config

import (
	"log/slog"
	"os"

	"github.com/bnkb-dev/bnsuggest/bnlog"
)

// Config is the immutable-within-a-session configuration consumed by
// every component. The host constructs one and passes it by reference
// into session.NewWithConfig; mutation thereafter only happens through the
// exported setters below, which a caller uses before re-applying the
// config via Session.UpdateEngine.
type Config struct {
	layoutPath  string
	databaseDir string
	userDir     string

	phoneticSuggestion      bool
	phoneticIncludeEnglish  bool

	fixedSuggestion       bool
	fixedIncludeEnglish   bool
	fixedAutomaticVowel   bool
	fixedAutomaticChandra bool
	fixedTraditionalKar   bool
	fixedOldReph          bool
	fixedNumpad           bool

	// Logger receives diagnostic events (persistence failures, and
	// suggestion build steps that fail during a keystroke). Defaults to
	// bnlog.New() if nil when read via Log().
	Logger *slog.Logger
}

// New constructs a Config from explicit values, mirroring
// original_source's Config::new_config constructor.
func New(layoutPath, databaseDir, userDir string,
	phoneticSuggestion, phoneticIncludeEnglish bool,
	fixedSuggestion, fixedIncludeEnglish, fixedAutomaticVowel,
	fixedAutomaticChandra, fixedTraditionalKar, fixedOldReph, fixedNumpad bool,
) *Config {
	return &Config{
		layoutPath:             layoutPath,
		databaseDir:            databaseDir,
		userDir:                userDir,
		phoneticSuggestion:     phoneticSuggestion,
		phoneticIncludeEnglish: phoneticIncludeEnglish,
		fixedSuggestion:        fixedSuggestion,
		fixedIncludeEnglish:    fixedIncludeEnglish,
		fixedAutomaticVowel:    fixedAutomaticVowel,
		fixedAutomaticChandra:  fixedAutomaticChandra,
		fixedTraditionalKar:    fixedTraditionalKar,
		fixedOldReph:           fixedOldReph,
		fixedNumpad:            fixedNumpad,
	}
}

// Log returns c.Logger, or bnlog.New() if c or c.Logger is nil.
func (c *Config) Log() *slog.Logger {
	if c == nil || c.Logger == nil {
		return bnlog.New()
	}
	return c.Logger
}

func (c *Config) SetLayoutFilePath(p string) { c.layoutPath = p }
func (c *Config) LayoutFilePath() string     { return c.layoutPath }

func (c *Config) SetDatabaseDir(p string) { c.databaseDir = p }
func (c *Config) DatabaseDir() string     { return c.databaseDir }
func (c *Config) DatabasePath() string    { return join(c.databaseDir, "dictionary.json") }
func (c *Config) SuffixDataPath() string  { return join(c.databaseDir, "suffix.json") }
func (c *Config) AutocorrectDataPath() string { return join(c.databaseDir, "autocorrect.json") }
func (c *Config) EmojiDataPath() string       { return join(c.databaseDir, "emoji.json") }
func (c *Config) PatternDataPath() string     { return join(c.databaseDir, "avrophonetic.json") }

func (c *Config) UserPhoneticAutocorrectPath() string {
	return join(c.userDir, "autocorrect.json")
}
func (c *Config) UserPhoneticSelectionPath() string {
	return join(c.userDir, "phonetic-candidate-selection.json")
}

func (c *Config) PhoneticSuggestion() bool         { return c.phoneticSuggestion }
func (c *Config) SetPhoneticSuggestion(v bool)     { c.phoneticSuggestion = v }
func (c *Config) PhoneticIncludeEnglish() bool     { return c.phoneticIncludeEnglish }
func (c *Config) SetPhoneticIncludeEnglish(v bool) { c.phoneticIncludeEnglish = v }

func (c *Config) FixedSuggestion() bool         { return c.fixedSuggestion }
func (c *Config) SetFixedSuggestion(v bool)     { c.fixedSuggestion = v }
func (c *Config) FixedIncludeEnglish() bool     { return c.fixedIncludeEnglish }
func (c *Config) SetFixedIncludeEnglish(v bool) { c.fixedIncludeEnglish = v }
func (c *Config) FixedAutomaticVowel() bool     { return c.fixedAutomaticVowel }
func (c *Config) SetFixedAutomaticVowel(v bool) { c.fixedAutomaticVowel = v }
func (c *Config) FixedAutomaticChandra() bool     { return c.fixedAutomaticChandra }
func (c *Config) SetFixedAutomaticChandra(v bool) { c.fixedAutomaticChandra = v }
func (c *Config) FixedTraditionalKar() bool     { return c.fixedTraditionalKar }
func (c *Config) SetFixedTraditionalKar(v bool) { c.fixedTraditionalKar = v }
func (c *Config) FixedOldReph() bool     { return c.fixedOldReph }
func (c *Config) SetFixedOldReph(v bool) { c.fixedOldReph = v }
func (c *Config) FixedNumpad() bool     { return c.fixedNumpad }
func (c *Config) SetFixedNumpad(v bool) { c.fixedNumpad = v }

func join(dir, file string) string {
	if dir == "" {
		return file
	}
	if dir[len(dir)-1] == '/' {
		return dir + file
	}
	return dir + "/" + file
}

// Environment variable names read by FromEnv, mirroring
// original_source's settings.rs RITI_* constants.
const (
	EnvLayoutFile                = "RITI_LAYOUT_FILE"
	EnvDatabaseDir                = "RITI_DATABASE_DIR"
	EnvPhoneticSuggestion         = "RITI_PHONETIC_DATABASE_ON"
	EnvPhoneticIncludeEnglish     = "RITI_PHONETIC_INCLUDE_ENGLISH"
	EnvFixedSuggestion            = "RITI_LAYOUT_FIXED_DATABASE_ON"
	EnvFixedIncludeEnglish        = "RITI_LAYOUT_FIXED_INCLUDE_ENGLISH"
	EnvFixedAutomaticVowel        = "RITI_LAYOUT_FIXED_VOWEL"
	EnvFixedAutomaticChandra      = "RITI_LAYOUT_FIXED_CHANDRA"
	EnvFixedTraditionalKar        = "RITI_LAYOUT_FIXED_KAR"
	EnvFixedOldReph               = "RITI_LAYOUT_FIXED_OLD_REPH"
	EnvFixedNumpad                = "RITI_LAYOUT_FIXED_NUMBERPAD"
)

// FromEnv builds a Config by reading the RITI_*-prefixed environment
// variables listed above, falling back to base for any variable that is
// unset. base may be nil, in which case library defaults (all booleans
// false, empty paths) are used. This does not replace the struct-based
// Config data model (Session always holds a *Config value); it is a
// convenience constructor layered on top of it.
func FromEnv(base *Config) *Config {
	c := &Config{}
	if base != nil {
		*c = *base
	}

	c.layoutPath = envOr(EnvLayoutFile, c.layoutPath)
	c.databaseDir = envOr(EnvDatabaseDir, c.databaseDir)
	c.phoneticSuggestion = envBoolOr(EnvPhoneticSuggestion, c.phoneticSuggestion)
	c.phoneticIncludeEnglish = envBoolOr(EnvPhoneticIncludeEnglish, c.phoneticIncludeEnglish)
	c.fixedSuggestion = envBoolOr(EnvFixedSuggestion, c.fixedSuggestion)
	c.fixedIncludeEnglish = envBoolOr(EnvFixedIncludeEnglish, c.fixedIncludeEnglish)
	c.fixedAutomaticVowel = envBoolOr(EnvFixedAutomaticVowel, c.fixedAutomaticVowel)
	c.fixedAutomaticChandra = envBoolOr(EnvFixedAutomaticChandra, c.fixedAutomaticChandra)
	c.fixedTraditionalKar = envBoolOr(EnvFixedTraditionalKar, c.fixedTraditionalKar)
	c.fixedOldReph = envBoolOr(EnvFixedOldReph, c.fixedOldReph)
	c.fixedNumpad = envBoolOr(EnvFixedNumpad, c.fixedNumpad)

	return c
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return v == "1" || v == "true" || v == "on"
}

// PhoneticDefaults returns a Config matching the phonetic method's
// reference defaults (dictionary.json etc. under dataDir, layoutPath the
// phonetic pattern file).
func PhoneticDefaults(dataDir, userDir string) *Config {
	return New(dataDir+"/avrophonetic.json", dataDir, userDir,
		true, false,
		false, false, false, false, false, false, false)
}

// FixedDefaults returns a Config matching the fixed method's reference
// defaults (Probhat-style layout, all orthographic post-processing on).
func FixedDefaults(dataDir, userDir string) *Config {
	return New(dataDir+"/Probhat.json", dataDir, userDir,
		false, false,
		true, false, true, true, true, true, true)
}
