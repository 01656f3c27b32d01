// Command tablegen validates a database directory: the five JSON
// tables data.Load expects (dictionary, suffix, autocorrect, emoji,
// pattern) plus an optional layout file, reporting per-file pass/fail
// and entry counts. Intended as a pre-flight check before pointing a
// Config at a directory of hand-edited or generated tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/bnkb-dev/bnsuggest/config"
	"github.com/bnkb-dev/bnsuggest/data"
	"github.com/bnkb-dev/bnsuggest/layout"
)

// checkResult is one file's validation outcome.
type checkResult struct {
	name    string
	entries int
	err     error
}

func main() {
	databaseDir := flag.String("database-dir", "", "database directory to validate (required)")
	layoutPath := flag.String("layout", "", "layout JSON file to validate in addition to the database tables")
	flag.Parse()

	if *databaseDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: tablegen -database-dir <dir> [-layout <file>]\n")
		os.Exit(1)
	}

	cfg := config.New(*databaseDir+"/avrophonetic.json", *databaseDir, "",
		true, false, false, false, false, false, false, false, false)

	results := checkTables(cfg)
	if *layoutPath != "" {
		results = append(results, checkLayout(*layoutPath))
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "FAIL %-12s %v\n", r.name, r.err)
			continue
		}
		fmt.Fprintf(os.Stderr, "OK   %-12s %d entries\n", r.name, r.entries)
	}

	fmt.Fprintf(os.Stderr, "\n%d checked, %d failed\n", len(results), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// checkTables checks that every table the database directory ought to
// contain exists (the five checks run concurrently since they're
// independent), then parses them all with one data.Load call so the
// same parsing and NFC normalization path a real session would take is
// exercised.
func checkTables(cfg *config.Config) []checkResult {
	checks := []struct {
		name string
		path string
	}{
		{"dictionary", cfg.DatabasePath()},
		{"suffix", cfg.SuffixDataPath()},
		{"autocorrect", cfg.AutocorrectDataPath()},
		{"emoji", cfg.EmojiDataPath()},
		{"pattern", cfg.PatternDataPath()},
	}

	results := make([]checkResult, len(checks))
	var wg sync.WaitGroup
	for i, c := range checks {
		wg.Add(1)
		go func(i int, name, path string) {
			defer wg.Done()
			if _, err := os.Stat(path); err != nil {
				results[i] = checkResult{name: name, err: err}
				return
			}
			results[i] = checkResult{name: name}
		}(i, c.name, c.path)
	}
	wg.Wait()

	tables, err := data.Load(cfg)
	if err != nil {
		for i := range results {
			if results[i].err == nil {
				results[i].err = err
			}
		}
		return results
	}

	counts := map[string]int{
		"dictionary":  len(tables.Dictionary),
		"suffix":      len(tables.Suffix),
		"autocorrect": len(tables.Autocorrect),
		"emoji":       len(tables.Emoji.ByEmoticon) + len(tables.Emoji.ByName) + len(tables.Emoji.ByBengali),
		"pattern":     len(tables.Patterns.Patterns),
	}
	for i := range results {
		if results[i].err == nil {
			results[i].entries = counts[results[i].name]
		}
	}
	return results
}

func checkLayout(path string) checkResult {
	raw, err := os.ReadFile(path)
	if err != nil {
		return checkResult{name: "layout", err: err}
	}
	if _, err := layout.Parse(raw); err != nil {
		return checkResult{name: "layout", err: err}
	}
	return checkResult{name: "layout", entries: 1}
}
