package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	md2cv "github.com/alnah/go-md2cv"
	"github.com/alnah/go-md2cv/internal/fileutil"
)

// ErrReadPDF wraps failures reading the extract input.
var ErrReadPDF = errors.New("failed to read PDF file")

// runExtract recovers the markdown attached by convert --embed-source.
func runExtract(args []string, env *Environment) error {
	flags, positional, err := parseExtractFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return ErrNoInput
	}

	data, err := os.ReadFile(positional[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadPDF, err)
	}

	source, err := md2cv.ExtractSource(data)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", positional[0], err)
	}

	if flags.output == "" {
		_, err := io.WriteString(env.Stdout, source)
		return err
	}

	if err := fileutil.WriteFileAtomic(flags.output, []byte(source), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
	return nil
}
