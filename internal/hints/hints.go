// Package hints provides actionable advice for users.
//
// Error hints are formatted consistently as "\n  hint: <text>" for appending
// to error messages. Résumé hints (CheckResume) are non-blocking content
// suggestions printed alongside a successful export.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-md2cv/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-md2cv") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForEmptyMarkdown returns hints for empty input files.
func ForEmptyMarkdown() string {
	return format("run 'md2cv init' to write a sample résumé")
}

// ForExistingOutput returns hints for refusing to overwrite a file.
func ForExistingOutput() string {
	return format("use --force to overwrite")
}

// ForUnsupportedFormat lists the formats that are accepted.
func ForUnsupportedFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForInvalidCharacter returns hints for text a word processor cannot store.
func ForInvalidCharacter() string {
	return formatHints([]string{
		"remove control characters from the source",
		"save the file as UTF-8",
	})
}

// ForUnsupportedCharacter returns hints for text the built-in PDF font
// cannot encode.
func ForUnsupportedCharacter() string {
	return format("set fonts.regular in the config to a TrueType font that covers these characters")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
