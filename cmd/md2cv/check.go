package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize/english"

	"github.com/alnah/go-md2cv/internal/hints"
	"github.com/alnah/go-md2cv/internal/markup"
)

// ErrHintsFound is returned by check --strict when hints were reported.
var ErrHintsFound = errors.New("résumé hints found")

// runCheck prints résumé hints for each markdown file.
func runCheck(args []string, env *Environment) error {
	flags, files, err := parseCheckFlags(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoInput
	}

	total := 0
	for _, path := range files {
		if err := validateMarkdownExtension(path); err != nil {
			return err
		}
		content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		}

		found := hints.CheckResume(string(content))
		total += len(found)
		if len(found) == 0 {
			fmt.Fprintf(env.Stdout, "%s: no issues found\n", path)
		} else {
			fmt.Fprintf(env.Stdout, "%s:\n", path)
			for _, h := range found {
				fmt.Fprintf(env.Stdout, "  %s\n", h)
			}
		}
		fmt.Fprintf(env.Stdout, "  stats: %s\n", formatStats(markup.Parse(string(content)).Stats()))
	}

	if flags.strict && total > 0 {
		return fmt.Errorf("%w: %d", ErrHintsFound, total)
	}
	return nil
}

// formatStats renders document counts as "3 lines, 1 heading, ...".
func formatStats(s markup.Stats) string {
	return strings.Join([]string{
		english.Plural(s.Lines, "line", ""),
		english.Plural(s.Headings, "heading", ""),
		english.Plural(s.ListItems, "list item", ""),
		english.Plural(s.Words, "word", ""),
	}, ", ")
}
