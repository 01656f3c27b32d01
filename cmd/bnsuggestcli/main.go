// Command bnsuggestcli is an interactive smoke-test harness for the
// suggestion engine: it reads lines of typed Latin text from stdin, one
// keystroke at a time, and prints the candidate list the engine
// returns after each line — a manual equivalent to the host a real IM
// framework would be.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bnkb-dev/bnsuggest/config"
	"github.com/bnkb-dev/bnsuggest/keycodes"
	"github.com/bnkb-dev/bnsuggest/session"
	"github.com/bnkb-dev/bnsuggest/suggestion"
)

func main() {
	layoutPath := flag.String("layout", "data/avrophonetic.json", "path to the layout JSON file")
	databaseDir := flag.String("database-dir", "", "database directory (empty uses the embedded defaults)")
	userDir := flag.String("user-dir", "", "directory for learned user selections")
	phoneticSuggestion := flag.Bool("phonetic-suggestion", true, "enable phonetic dictionary suggestions")
	fixedSuggestion := flag.Bool("fixed-suggestion", false, "enable fixed-method dictionary suggestions")
	flag.Parse()

	cfg := config.New(*layoutPath, *databaseDir, *userDir,
		*phoneticSuggestion, false,
		*fixedSuggestion, false, true, true, true, true, false)

	s, err := session.NewWithConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bnsuggestcli: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Type a line of Latin text per romanization attempt; Ctrl-D to quit.\n")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		runWord(s, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "bnsuggestcli: reading stdin: %v\n", err)
		os.Exit(1)
	}
}

func runWord(s *session.Session, word string) {
	defer s.FinishInputSession()

	var sugg suggestion.Suggestion
	var typed bool

	for _, r := range word {
		key, ok := keycodes.FromASCII(r)
		if !ok {
			fmt.Fprintf(os.Stderr, "  (no key for %q, skipping)\n", r)
			continue
		}
		sugg = s.GetSuggestionForKey(key, 0)
		typed = true
	}

	if !typed || sugg.IsEmpty() {
		fmt.Printf("%s -> (unhandled)\n", word)
		return
	}
	if sugg.IsLonely() {
		fmt.Printf("%s -> %s\n", word, sugg.LonelySuggestion())
		return
	}

	var candidates []string
	for i := 0; i < sugg.Len(); i++ {
		candidates = append(candidates, sugg.Get(i))
	}
	fmt.Printf("%s [%s] -> %s\n", word, sugg.AuxiliaryText(), strings.Join(candidates, " | "))
}
