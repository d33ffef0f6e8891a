package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-md2cv/internal/fileutil"
	"github.com/alnah/go-md2cv/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidConfig   = errors.New("invalid config")
)

// Field length limits.
const (
	MaxTitleLength   = 200  // Document title
	MaxCreatorLength = 100  // Producing application or author
	MaxNameLength    = 100  // Output base name
	MaxPathLength    = 4096 // Directories and font files
)

// AppName is the directory used under the user config dir.
const AppName = "go-md2cv"

// Config holds all configuration for résumé exports.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Document DocumentConfig `yaml:"document"`
	Fonts    FontsConfig    `yaml:"fonts"`
	Hints    HintsConfig    `yaml:"hints"`
	Workers  int            `yaml:"workers" validate:"gte=0,lte=8"` // 0 = auto
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir  string   `yaml:"defaultDir"`                                 // Empty = same as source
	Formats     []string `yaml:"formats" validate:"dive,oneof=docx pdf html"` // Empty = docx and pdf
	Name        string   `yaml:"name"`                                       // Base name, empty = source name
	EmbedSource bool     `yaml:"embedSource"`                                // Attach the markdown to PDFs
}

// DocumentConfig defines document metadata.
type DocumentConfig struct {
	Title   string `yaml:"title"`   // Empty = first H1
	Creator string `yaml:"creator"` // Empty = "md2cv"
}

// FontsConfig points at an optional TrueType pair for PDF output.
type FontsConfig struct {
	Regular string `yaml:"regular" validate:"required_with=Bold"`
	Bold    string `yaml:"bold"`
}

// HintsConfig toggles résumé hints after conversion.
type HintsConfig struct {
	Enabled bool `yaml:"enabled"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report YAML key names rather than Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks field lengths and allowed values. Called automatically by
// LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"input.defaultDir", c.Input.DefaultDir, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"output.name", c.Output.Name, MaxNameLength},
		{"document.title", c.Document.Title, MaxTitleLength},
		{"document.creator", c.Document.Creator, MaxCreatorLength},
		{"fonts.regular", c.Fonts.Regular, MaxPathLength},
		{"fonts.bold", c.Fonts.Bold, MaxPathLength},
	}
	for _, l := range lengths {
		if err := validateFieldLength(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if strings.ContainsAny(c.Output.Name, `/\`) {
		return fmt.Errorf("%w: output.name: must be a base name, got %q", ErrInvalidConfig, c.Output.Name)
	}

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s: failed %q check (value %v)",
				ErrInvalidConfig, fieldPath(fe.Namespace()), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: DOCX and PDF next to the
// source, no hints, built-in fonts.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: ""},
		Output: OutputConfig{DefaultDir: "", Formats: nil},
		Hints:  HintsConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// current directory, then the user config directory, .yaml before .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, AppName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
