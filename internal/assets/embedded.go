package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed templates/*.md
var templates embed.FS

// EmbeddedLoader loads templates from the embedded filesystem.
// Implements Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads a markdown template from embedded assets by name.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateTemplateName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + templateExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// Templates lists the embedded template names.
func (e *EmbeddedLoader) Templates() ([]string, error) {
	entries, err := fs.ReadDir(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return templateNames(entries), nil
}

// templateNames returns the sorted names of .md files in entries.
func templateNames(entries []fs.DirEntry) []string {
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), templateExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), templateExt))
	}
	slices.Sort(names)
	return names
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
