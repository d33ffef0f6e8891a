package main

import (
	"errors"
	"os"

	md2cv "github.com/alnah/go-md2cv"
	"github.com/alnah/go-md2cv/internal/assets"
	"github.com/alnah/go-md2cv/internal/config"
	"github.com/alnah/go-md2cv/internal/hints"
	"github.com/alnah/go-md2cv/internal/render/docx"
	"github.com/alnah/go-md2cv/internal/render/pdf"
)

// Exit codes for md2cv CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitExport  = 4 // A renderer failed to produce a document
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Export errors (exit 4)
	if errors.Is(err, md2cv.ErrDOCXGeneration) ||
		errors.Is(err, md2cv.ErrPDFGeneration) ||
		errors.Is(err, md2cv.ErrHTMLGeneration) {
		return ExitExport
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadPDF) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrCreateOutputDir) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) ||
		errors.Is(err, md2cv.ErrFontLoad) ||
		errors.Is(err, assets.ErrAssetRead) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputFileUsage) ||
		errors.Is(err, ErrOutputExists) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, md2cv.ErrEmptyMarkdown) ||
		errors.Is(err, md2cv.ErrUnsupportedFormat) ||
		errors.Is(err, md2cv.ErrInvalidFilename) ||
		errors.Is(err, md2cv.ErrInvalidPDF) ||
		errors.Is(err, md2cv.ErrNoEmbeddedSource) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, assets.ErrInvalidBasePath) ||
		errors.Is(err, assets.ErrPathTraversal) {
		return ExitUsage
	}

	return ExitGeneral
}

// errorHint returns advice to append to an error message, or "".
// Batch failures carry their hints on each FAILED line instead.
func errorHint(err error) string {
	var batch *batchError
	if errors.As(err, &batch) {
		return ""
	}

	switch {
	case errors.Is(err, md2cv.ErrEmptyMarkdown):
		return hints.ForEmptyMarkdown()
	case errors.Is(err, md2cv.ErrUnsupportedFormat):
		return hints.ForUnsupportedFormat(formatNames(md2cv.Formats))
	case errors.Is(err, docx.ErrInvalidCharacter):
		return hints.ForInvalidCharacter()
	case errors.Is(err, pdf.ErrUnsupportedCharacter):
		return hints.ForUnsupportedCharacter()
	case errors.Is(err, ErrCreateOutputDir):
		return hints.ForOutputDirectory()
	case errors.Is(err, ErrOutputExists):
		return hints.ForExistingOutput()
	}
	return ""
}
