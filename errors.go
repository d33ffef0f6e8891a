package md2cv

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown     = errors.New("markdown content cannot be empty")
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrInvalidFilename   = errors.New("invalid filename")
	ErrDOCXGeneration    = errors.New("DOCX generation failed")
	ErrPDFGeneration     = errors.New("PDF generation failed")
	ErrHTMLGeneration    = errors.New("HTML generation failed")

	// Font loading errors.
	ErrFontLoad = errors.New("failed to load font")

	// Source extraction errors.
	ErrNoEmbeddedSource = errors.New("no embedded markdown source")
	ErrInvalidPDF       = errors.New("invalid PDF")
)

// ExportError reports a failed export for one format. It wraps the
// format's generation sentinel and the underlying cause, so both match
// with errors.Is.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("exporting %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// generationError returns the sentinel for failures inside a renderer.
func generationError(f Format) error {
	switch f {
	case FormatDOCX:
		return ErrDOCXGeneration
	case FormatPDF:
		return ErrPDFGeneration
	case FormatHTML:
		return ErrHTMLGeneration
	}
	return ErrUnsupportedFormat
}
