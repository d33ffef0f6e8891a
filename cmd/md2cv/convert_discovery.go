package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	md2cv "github.com/alnah/go-md2cv"
	"github.com/alnah/go-md2cv/internal/config"
	"github.com/alnah/go-md2cv/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process. Each exported format
// is written to OutputBase plus the format's extension.
type FileToConvert struct {
	InputPath  string
	OutputBase string
}

// outputTarget says where artifacts go.
type outputTarget struct {
	dir    string       // output directory, empty = next to the source
	file   string       // explicit output path without extension
	format md2cv.Format // format named by file's extension
	name   string       // base name override for a single document
}

// resolveOutputTarget interprets -o: a path ending in a format extension
// names the output file, anything else is a directory.
func resolveOutputTarget(flagOutput string, cfg *config.Config) outputTarget {
	t := outputTarget{dir: cfg.Output.DefaultDir, name: cfg.Output.Name}
	if flagOutput == "" {
		return t
	}

	if ext := filepath.Ext(flagOutput); ext != "" {
		if f, err := md2cv.ParseFormat(ext); err == nil {
			t.dir = ""
			t.file = strings.TrimSuffix(flagOutput, ext)
			t.format = f
			return t
		}
	}

	t.dir = flagOutput
	return t
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath string, t outputTarget) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputBase: resolveOutputBase(inputPath, t, "")}}, nil
	}

	if t.file != "" {
		return nil, fmt.Errorf("%w: %s is a directory", ErrOutputFileUsage, inputPath)
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		files = append(files, FileToConvert{InputPath: path, OutputBase: resolveOutputBase(path, t, inputPath)})
		return nil
	})

	return files, err
}

// resolveOutputBase determines the output path, without extension, for a
// markdown file. baseInputDir is set when the file was found by walking a
// directory; its relative layout is mirrored under the output directory.
func resolveOutputBase(inputPath string, t outputTarget, baseInputDir string) string {
	if t.file != "" {
		return t.file
	}

	base := fileutil.StripMarkdownExtension(filepath.Base(inputPath))
	if baseInputDir == "" && t.name != "" {
		base = fileutil.StripMarkdownExtension(t.name)
	}

	if t.dir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(t.dir, filepath.Dir(relPath), base)
		}
	}

	return filepath.Join(t.dir, base)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > md2cv.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, md2cv.MaxPoolSize)
	}
	return nil
}
