package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-md2cv/internal/config"
)

// envPrefix marks the variables read by loadEnvConfig.
const envPrefix = "MD2CV_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath  string   // MD2CV_CONFIG: config file name or path
	InputDir    string   // MD2CV_INPUT_DIR: default input directory
	OutputDir   string   // MD2CV_OUTPUT_DIR: default output directory
	Formats     []string // MD2CV_FORMATS: comma-separated formats
	Title       string   // MD2CV_TITLE: document title
	Creator     string   // MD2CV_CREATOR: producing application
	FontRegular string   // MD2CV_FONT_REGULAR: TrueType regular face
	FontBold    string   // MD2CV_FONT_BOLD: TrueType bold face
	Workers     int      // MD2CV_WORKERS: parallel workers
	Hints       bool     // MD2CV_HINTS: print résumé hints
	EmbedSource bool     // MD2CV_EMBED_SOURCE: attach markdown to PDFs
}

// knownEnvVars lists valid MD2CV_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2CV_CONFIG":       true,
	"MD2CV_INPUT_DIR":    true,
	"MD2CV_OUTPUT_DIR":   true,
	"MD2CV_FORMATS":      true,
	"MD2CV_TITLE":        true,
	"MD2CV_CREATOR":      true,
	"MD2CV_FONT_REGULAR": true,
	"MD2CV_FONT_BOLD":    true,
	"MD2CV_WORKERS":      true,
	"MD2CV_HINTS":        true,
	"MD2CV_EMBED_SOURCE": true,
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable numbers and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("MD2CV_CONFIG"),
		InputDir:    os.Getenv("MD2CV_INPUT_DIR"),
		OutputDir:   os.Getenv("MD2CV_OUTPUT_DIR"),
		Formats:     splitList(os.Getenv("MD2CV_FORMATS")),
		Title:       os.Getenv("MD2CV_TITLE"),
		Creator:     os.Getenv("MD2CV_CREATOR"),
		FontRegular: os.Getenv("MD2CV_FONT_REGULAR"),
		FontBold:    os.Getenv("MD2CV_FONT_BOLD"),
	}

	if w, err := strconv.Atoi(os.Getenv("MD2CV_WORKERS")); err == nil && w > 0 {
		cfg.Workers = w
	}
	if b, err := strconv.ParseBool(os.Getenv("MD2CV_HINTS")); err == nil {
		cfg.Hints = b
	}
	if b, err := strconv.ParseBool(os.Getenv("MD2CV_EMBED_SOURCE")); err == nil {
		cfg.EmbedSource = b
	}

	return cfg
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// warnUnknownEnvVars logs warnings for unrecognized MD2CV_* variables.
// Helps catch typos like MD2CV_FORMAT instead of MD2CV_FORMATS.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if len(env.Formats) > 0 && len(cfg.Output.Formats) == 0 {
		cfg.Output.Formats = env.Formats
	}
	if env.Title != "" && cfg.Document.Title == "" {
		cfg.Document.Title = env.Title
	}
	if env.Creator != "" && cfg.Document.Creator == "" {
		cfg.Document.Creator = env.Creator
	}
	if env.FontRegular != "" && cfg.Fonts.Regular == "" {
		cfg.Fonts.Regular = env.FontRegular
	}
	if env.FontBold != "" && cfg.Fonts.Bold == "" {
		cfg.Fonts.Bold = env.FontBold
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
	if env.Hints {
		cfg.Hints.Enabled = true
	}
	if env.EmbedSource {
		cfg.Output.EmbedSource = true
	}
}
