package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags wraps flag parsing failures.
var ErrInvalidFlags = errors.New("invalid flags")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds artifact selection and naming flags.
type outputFlags struct {
	formats     []string
	path        string
	name        string
	embedSource bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  outputFlags
	workers int
	hints   bool
}

// checkFlags holds flags for the check command.
type checkFlags struct {
	strict bool
}

// extractFlags holds flags for the extract command.
type extractFlags struct {
	output string
}

// initFlags holds flags for the init command.
type initFlags struct {
	template  string
	assetPath string
	force     bool
	list      bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show sizes, timing and debug logs")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringSliceVarP(&f.formats, "format", "f", nil, "output formats: docx, pdf, html (default docx,pdf)")
	fs.StringVarP(&f.path, "output", "o", "", "output directory, or file when converting one document")
	fs.StringVarP(&f.name, "name", "n", "", "output base name for a single document")
	fs.BoolVar(&f.embedSource, "embed-source", false, "attach the markdown source to PDF output")
}

// newConvertFlagSet registers convert flags. Shared by parsing and shell
// completion so both see the same flags.
func newConvertFlagSet() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.hints, "hints", false, "print résumé hints after conversion")
	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.output)
	return fs, f
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs, f := newConvertFlagSet()
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func newCheckFlagSet() (*flag.FlagSet, *checkFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	f := &checkFlags{}
	fs.BoolVar(&f.strict, "strict", false, "fail when any hint is reported")
	return fs, f
}

// parseCheckFlags parses check command flags and returns positional args.
func parseCheckFlags(args []string) (*checkFlags, []string, error) {
	fs, f := newCheckFlagSet()
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func newExtractFlagSet() (*flag.FlagSet, *extractFlags) {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	f := &extractFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "write the source to a file instead of stdout")
	return fs, f
}

// parseExtractFlags parses extract command flags and returns positional args.
func parseExtractFlags(args []string) (*extractFlags, []string, error) {
	fs, f := newExtractFlagSet()
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func newInitFlagSet() (*flag.FlagSet, *initFlags) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	f := &initFlags{}
	fs.StringVarP(&f.template, "template", "t", "", "starter template name (default en)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory with custom templates/{name}.md")
	fs.BoolVar(&f.force, "force", false, "overwrite an existing file")
	fs.BoolVar(&f.list, "list", false, "list available templates")
	return fs, f
}

// parseInitFlags parses init command flags and returns positional args.
func parseInitFlags(args []string) (*initFlags, []string, error) {
	fs, f := newInitFlagSet()
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func newConfigFlagSet() (*flag.FlagSet, *commonFlags) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	f := &commonFlags{}
	addCommonFlags(fs, f)
	return fs, f
}

// parseConfigFlags parses config command flags.
func parseConfigFlags(args []string) (*commonFlags, []string, error) {
	fs, f := newConfigFlagSet()
	if err := parseFlagSet(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseFlagSet parses args silently. Help requests surface as
// flag.ErrHelp so the caller prints the command's usage.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}
	return nil
}
