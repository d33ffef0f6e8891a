package assets

import (
	"fmt"
	"strings"
)

// DefaultTemplateName is the built-in template written by init.
const DefaultTemplateName = "en"

// templateExt is the file extension of template files.
const templateExt = ".md"

// Loader defines the contract for loading résumé templates.
type Loader interface {
	// LoadTemplate loads a markdown template by name (without .md extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)

	// Templates lists the available template names, sorted.
	Templates() ([]string, error)
}

// ValidateTemplateName rejects template names that could address a file
// other than <name>.md in the template directory: empty names and names
// holding a path separator or a dot.
func ValidateTemplateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty template name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: template %q", ErrInvalidAssetName, name)
	}
	return nil
}
