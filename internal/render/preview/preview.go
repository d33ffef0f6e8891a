// Package preview renders the markdown source as a standalone HTML5 page.
//
// Unlike the DOCX and PDF renderers it does not walk the block model: the
// source goes straight through goldmark with GitHub-flavored extensions, so
// the preview shows what a generic Markdown viewer would.
package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/alnah/go-md2cv/internal/markup"
	"github.com/alnah/go-md2cv/internal/render"
)

// ErrConversion indicates goldmark failed to convert the source.
var ErrConversion = errors.New("HTML conversion failed")

// pageTemplate wraps goldmark's fragment output in a complete HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<style>
body { font-family: Calibri, Arial, Helvetica, sans-serif; font-size: 11pt; max-width: 8.5in; margin: 0.5in auto; }
h1 { font-size: 16pt; } h2 { font-size: 13pt; } h3 { font-size: 12pt; }
</style>
</head>
<body>
%s
</body>
</html>`

// defaultTitle is used when the document has no top-level heading.
const defaultTitle = "Curriculum"

// Renderer converts markdown to HTML using goldmark (pure Go).
type Renderer struct {
	md    goldmark.Markdown
	title string
}

// Compile-time interface check.
var _ render.Renderer = (*Renderer)(nil)

// New creates a Renderer with GFM extensions and syntax highlighting. An
// empty title falls back to the document's first H1.
func New(title string) *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			// Raw HTML in the source is not passed through.
		),
	)
	return &Renderer{md: md, title: title}
}

// Render returns the HTML page for doc.Source.
func (r *Renderer) Render(ctx context.Context, doc markup.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var body bytes.Buffer
	if err := r.md.Convert([]byte(doc.Source), &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConversion, err)
	}

	title := r.title
	if title == "" {
		title = doc.Title()
	}
	if title == "" {
		title = defaultTitle
	}
	return fmt.Appendf(nil, pageTemplate, html.EscapeString(title), body.String()), nil
}
