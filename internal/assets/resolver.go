package assets

import (
	"errors"
	"slices"
)

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the template is not found in the custom location.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver.
// If customBasePath is empty, only embedded templates are used.
// Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads a template, trying the custom loader first if available.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	if r.custom == nil {
		return r.embedded.LoadTemplate(name)
	}

	content, err := r.custom.LoadTemplate(name)
	if err == nil {
		return content, nil
	}

	// Validation and I/O errors are not masked by the fallback.
	if !errors.Is(err, ErrTemplateNotFound) {
		return "", err
	}

	return r.embedded.LoadTemplate(name)
}

// Templates returns the union of custom and embedded template names.
func (r *Resolver) Templates() ([]string, error) {
	names, err := r.embedded.Templates()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return names, nil
	}

	custom, err := r.custom.Templates()
	if err != nil {
		return nil, err
	}
	names = append(names, custom...)
	slices.Sort(names)
	return slices.Compact(names), nil
}

// HasCustomLoader returns true if a custom template loader is configured.
func (r *Resolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
