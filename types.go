package md2cv

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-md2cv/internal/fileutil"
)

// Format identifies an output document format.
type Format string

// Supported formats.
const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
	FormatHTML Format = "html"
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatDOCX, FormatPDF, FormatHTML}

// DefaultFormats are exported when the caller does not choose.
var DefaultFormats = []Format{FormatDOCX, FormatPDF}

// ParseFormat resolves a format name (case-insensitive, leading dot allowed).
func ParseFormat(s string) (Format, error) {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// MIMEType returns the media type of documents in format f.
func (f Format) MIMEType() string {
	switch f {
	case FormatDOCX:
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

func (f Format) String() string {
	return string(f)
}

// DefaultFilename is the base name used when Input.Filename is empty.
const DefaultFilename = "curriculum"

// Input contains export parameters.
type Input struct {
	Markdown    string // Markdown content (required)
	Filename    string // Base name for the artifact (optional, default "curriculum")
	Format      Format // Target format (required)
	EmbedSource bool   // PDF only: attach the markdown source
}

// baseName returns the artifact base name: the caller's name without a
// markdown or output-format extension, or DefaultFilename.
func (in Input) baseName() (string, error) {
	name := strings.TrimSpace(in.Filename)
	if name == "" {
		return DefaultFilename, nil
	}
	if fileutil.IsFilePath(name) || strings.ContainsRune(name, 0) {
		return "", fmt.Errorf("%w: %q must be a base name", ErrInvalidFilename, in.Filename)
	}
	name = fileutil.StripMarkdownExtension(name)
	if ext := filepath.Ext(name); ext != "" {
		if _, err := ParseFormat(ext); err == nil {
			name = strings.TrimSuffix(name, ext)
		}
	}
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, in.Filename)
	}
	return name, nil
}

// Result is a finished export.
type Result struct {
	Data     []byte // Complete artifact
	Filename string // Base name plus format extension
	Format   Format
	Pages    int // PDF only
	Blocks   int // Parsed blocks rendered
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	logger      *zap.Logger
	title       string
	creator     string
	regularFont []byte
	boldFont    []byte
	regularPath string
	boldPath    string
}

// DefaultCreator is written into document metadata.
const DefaultCreator = "md2cv"

// WithLogger sets the logger for export diagnostics.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.cfg.logger = l
		}
	}
}

// WithTitle overrides the document title. By default the first level-one
// heading is used.
func WithTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}

// WithCreator sets the creator written into document metadata.
func WithCreator(creator string) Option {
	return func(c *Converter) {
		c.cfg.creator = creator
	}
}

// WithFonts replaces the built-in PDF font with a TrueType pair.
// Bold may be nil, in which case the regular face is used for bold text.
func WithFonts(regular, bold []byte) Option {
	return func(c *Converter) {
		c.cfg.regularFont = regular
		c.cfg.boldFont = bold
	}
}

// WithFontFiles is WithFonts reading the faces from disk when the
// converter is created.
func WithFontFiles(regular, bold string) Option {
	return func(c *Converter) {
		c.cfg.regularPath = regular
		c.cfg.boldPath = bold
	}
}
