package md2cv

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"go.uber.org/zap"

	"github.com/alnah/go-md2cv/internal/markup"
	"github.com/alnah/go-md2cv/internal/render"
	"github.com/alnah/go-md2cv/internal/render/docx"
	"github.com/alnah/go-md2cv/internal/render/pdf"
	"github.com/alnah/go-md2cv/internal/render/preview"
)

// Compile-time interface implementation checks.
var (
	_ render.Renderer = (*docx.Renderer)(nil)
	_ render.Renderer = (*pdf.Renderer)(nil)
	_ render.Renderer = (*preview.Renderer)(nil)
)

// Converter exports résumé markdown to documents.
// Create with NewConverter and call Export. A Converter only holds
// configuration, so one value may serve concurrent exports.
type Converter struct {
	cfg   converterConfig
	log   *zap.Logger
	fonts pdf.Fonts
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithLogger, WithFontFiles).
// Returns error if font files cannot be read.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			logger:  zap.NewNop(),
			creator: DefaultCreator,
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	c.log = c.cfg.logger.Named("md2cv")

	if err := c.loadFonts(); err != nil {
		return nil, err
	}
	return c, nil
}

// loadFonts resolves WithFontFiles paths. Bytes from WithFonts win over paths.
func (c *Converter) loadFonts() error {
	regular, bold := c.cfg.regularFont, c.cfg.boldFont
	if len(regular) == 0 && c.cfg.regularPath != "" {
		data, err := os.ReadFile(c.cfg.regularPath) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFontLoad, err)
		}
		regular = data
	}
	if len(bold) == 0 && c.cfg.boldPath != "" {
		data, err := os.ReadFile(c.cfg.boldPath) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFontLoad, err)
		}
		bold = data
	}
	if len(regular) == 0 && len(bold) > 0 {
		return fmt.Errorf("%w: bold face given without a regular face", ErrFontLoad)
	}
	c.fonts = pdf.Fonts{Regular: regular, Bold: bold}
	return nil
}

// Export parses input.Markdown and renders it in input.Format.
// It blocks until the artifact is complete. The context is consulted
// before work starts; a running export is not interrupted.
// Every failure is an *ExportError and comes with a nil Result.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Export(ctx context.Context, input Input) (result *Result, err error) {
	format := input.Format
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &ExportError{Format: format, Err: fmt.Errorf("%w: internal error: %v", generationError(format), r)}
		}
		if err != nil {
			c.log.Error("export failed", zap.Stringer("format", format), zap.Error(err))
		}
	}()

	if err := ctx.Err(); err != nil {
		return nil, &ExportError{Format: format, Err: err}
	}

	format, base, err := c.validateInput(input)
	if err != nil {
		return nil, &ExportError{Format: format, Err: err}
	}

	doc := markup.Parse(input.Markdown)
	c.log.Debug("parsed markdown",
		zap.String("filename", base),
		zap.Int("blocks", len(doc.Blocks)),
	)

	data, err := c.renderer(format, base, input.EmbedSource).Render(ctx, doc)
	if err != nil {
		return nil, &ExportError{Format: format, Err: fmt.Errorf("%w: %w", generationError(format), err)}
	}

	result = &Result{
		Data:     data,
		Filename: base + format.Extension(),
		Format:   format,
		Blocks:   len(doc.Blocks),
	}

	if format == FormatPDF {
		pages, err := countPages(data)
		if err != nil {
			return nil, &ExportError{Format: format, Err: fmt.Errorf("%w: %w", ErrPDFGeneration, err)}
		}
		result.Pages = pages
	}

	c.log.Debug("export complete",
		zap.Stringer("format", format),
		zap.String("mime", format.MIMEType()),
		zap.String("file", result.Filename),
		zap.Int("bytes", len(data)),
		zap.Int("pages", result.Pages),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result, nil
}

// validateInput normalizes the format and returns the artifact base name.
func (c *Converter) validateInput(input Input) (Format, string, error) {
	format, err := ParseFormat(string(input.Format))
	if err != nil {
		return input.Format, "", err
	}
	if strings.TrimSpace(input.Markdown) == "" {
		return format, "", ErrEmptyMarkdown
	}
	base, err := input.baseName()
	if err != nil {
		return format, "", err
	}
	return format, base, nil
}

// renderer builds the per-call renderer for format.
func (c *Converter) renderer(format Format, base string, embedSource bool) render.Renderer {
	switch format {
	case FormatDOCX:
		return docx.New(c.cfg.title, c.cfg.creator)
	case FormatPDF:
		r := &pdf.Renderer{
			Title:   c.cfg.title,
			Creator: c.cfg.creator,
			Fonts:   c.fonts,
		}
		if embedSource {
			r.SourceName = base + ".md"
		}
		return r
	default:
		return preview.New(c.cfg.title)
	}
}

// pdfConfig relaxes validation: fpdf output is read back, not audited.
func pdfConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func countPages(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), pdfConfig())
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// ExportDOCX exports markdown to DOCX with a default Converter.
func ExportDOCX(ctx context.Context, markdown, filename string) (*Result, error) {
	return exportWithDefaults(ctx, Input{Markdown: markdown, Filename: filename, Format: FormatDOCX})
}

// ExportPDF exports markdown to PDF with a default Converter.
func ExportPDF(ctx context.Context, markdown, filename string) (*Result, error) {
	return exportWithDefaults(ctx, Input{Markdown: markdown, Filename: filename, Format: FormatPDF})
}

func exportWithDefaults(ctx context.Context, input Input) (*Result, error) {
	conv, err := NewConverter()
	if err != nil {
		return nil, err
	}
	return conv.Export(ctx, input)
}
