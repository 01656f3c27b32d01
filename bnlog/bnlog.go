// Package bnlog is the engine's structured diagnostic logger: a thin
// wrapper over log/slog standing in for the teacher's plain
// fmt.Fprintf(os.Stderr, ...) status-reporting convention
// (cmd/smoketest's RECON_FAIL/SENTENCE_OUTLIER/TRANSLIT_RECON_FAIL
// tags), upgraded to structured key=value logging. Session lifecycle
// events (persistence) log through this package; on the per-keystroke
// path only a failed suggestion build step does (SuggestionFailure).
package bnlog

import (
	"log/slog"
	"os"
)

// New builds the package's default logger: slog's text handler to
// stderr, matching the teacher's stderr-only reporting.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// TableLoadFailure logs a static table (dictionary/suffix/autocorrect/
// emoji/pattern/layout) failing to load or parse.
func TableLoadFailure(log *slog.Logger, file string, err error) {
	log.Warn("table load failed", "event", "TABLE_LOAD_FAIL", "file", file, "error", err)
}

// PersistenceFailure logs a user-selection or user-autocorrect file
// failing to read or write. Always best-effort: learning degrades
// silently rather than failing the keystroke that triggered it.
func PersistenceFailure(log *slog.Logger, path string, err error) {
	log.Warn("persistence failed", "event", "PERSIST_FAIL", "path", path, "error", err)
}

// SuggestionFailure logs a per-keystroke suggestion build step
// degrading to an empty or partial result rather than propagating an
// error to the host.
func SuggestionFailure(log *slog.Logger, step string, err error) {
	log.Warn("suggestion step failed", "event", "SUGGEST_FAIL", "step", step, "error", err)
}
