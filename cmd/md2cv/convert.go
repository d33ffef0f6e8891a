package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	md2cv "github.com/alnah/go-md2cv"
	"github.com/alnah/go-md2cv/internal/config"
	"github.com/alnah/go-md2cv/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrNoMarkdownFiles = errors.New("no markdown files found")
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrOutputFileUsage = errors.New("output file requires a single input file")
)

// batchError reports failed conversions. It unwraps to the first failure
// so the exit code follows its cause.
type batchError struct {
	failed int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() error { return e.first }

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	formats     []md2cv.Format
	embedSource bool
	hints       bool
	log         *zap.Logger
	now         func() time.Time // nil means time.Now
}

// elapsedSince measures from start using the injected clock.
func (p *conversionParams) elapsedSince(start time.Time) time.Duration {
	return p.clock()().Sub(start)
}

func (p *conversionParams) clock() func() time.Time {
	if p.now == nil {
		return time.Now
	}
	return p.now
}

// runConvertCmd parses flags and runs the convert command.
func runConvertCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		return err
	}
	return runConvert(ctx, positional, flags, env)
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config, flags.common.quiet, env.Stderr)
	if err != nil {
		return err
	}
	mergeFlags(flags, cfg)

	target := resolveOutputTarget(flags.output.path, cfg)
	if target.format != "" && len(flags.output.formats) == 0 {
		cfg.Output.Formats = []string{target.format.String()}
	}

	formats, err := resolveFormats(cfg.Output.Formats)
	if err != nil {
		return err
	}
	cfg.Output.Formats = formatNames(formats)
	if err := cfg.Validate(); err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	files, err := discoverFiles(inputPath, target)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}

	pool := env.NewPool(md2cv.ResolvePoolSize(cfg.Workers), converterOptions(cfg, env.Logger)...)
	defer func() { _ = pool.Close() }()

	env.Logger.Debug("starting conversion",
		zap.Int("files", len(files)),
		zap.Int("workers", pool.Size()),
		zap.Strings("formats", cfg.Output.Formats))

	results := convertBatch(ctx, pool, files, &conversionParams{
		formats:     formats,
		embedSource: cfg.Output.EmbedSource,
		hints:       cfg.Hints.Enabled,
		log:         env.Logger,
		now:         env.Now,
	})

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	if cfg.Hints.Enabled && !flags.common.quiet {
		printResumeHints(env.Stdout, results)
	}
	if failed > 0 {
		return &batchError{failed: failed, first: firstError(results)}
	}
	return nil
}

// loadConfig loads the named config, or the one named by MD2CV_CONFIG, and
// applies environment overrides. Without a name it starts from defaults.
func loadConfig(name string, quiet bool, stderr io.Writer) (*config.Config, error) {
	envCfg := loadEnvConfig()
	if !quiet {
		warnUnknownEnvVars(stderr)
	}
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		var err error
		cfg, err = config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if len(flags.output.formats) > 0 {
		cfg.Output.Formats = flags.output.formats
	}
	if flags.output.name != "" {
		cfg.Output.Name = flags.output.name
	}
	if flags.output.embedSource {
		cfg.Output.EmbedSource = true
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.hints {
		cfg.Hints.Enabled = true
	}
}

// resolveFormats parses format names, dropping duplicates. An empty list
// selects md2cv.DefaultFormats.
func resolveFormats(names []string) ([]md2cv.Format, error) {
	if len(names) == 0 {
		return md2cv.DefaultFormats, nil
	}

	formats := make([]md2cv.Format, 0, len(names))
	seen := make(map[md2cv.Format]bool, len(names))
	for _, n := range names {
		f, err := md2cv.ParseFormat(n)
		if err != nil {
			return nil, err
		}
		if !seen[f] {
			seen[f] = true
			formats = append(formats, f)
		}
	}
	return formats, nil
}

// formatNames returns the canonical names of formats.
func formatNames(formats []md2cv.Format) []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.String()
	}
	return names
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// converterOptions maps config to converter options.
func converterOptions(cfg *config.Config, log *zap.Logger) []md2cv.Option {
	opts := []md2cv.Option{md2cv.WithLogger(log)}
	if cfg.Document.Title != "" {
		opts = append(opts, md2cv.WithTitle(cfg.Document.Title))
	}
	if cfg.Document.Creator != "" {
		opts = append(opts, md2cv.WithCreator(cfg.Document.Creator))
	}
	if cfg.Fonts.Regular != "" {
		opts = append(opts, md2cv.WithFontFiles(cfg.Fonts.Regular, cfg.Fonts.Bold))
	}
	return opts
}

// firstError returns the first failure in results.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
