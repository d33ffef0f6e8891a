// Package pdf lays out a markup.Document on US Letter pages.
//
// The renderer owns the cursor: it measures text, wraps it to the column,
// draws list markers by hand and starts new pages when the next line would
// cross the bottom margin. Drawing goes through the Canvas interface; the
// production canvas is backed by fpdf.
package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alnah/go-md2cv/internal/markup"
	"github.com/alnah/go-md2cv/internal/render"
)

// SourceDescription labels the embedded markdown attachment.
const SourceDescription = "Markdown source"

// ErrUnsupportedCharacter reports text the built-in font cannot encode.
var ErrUnsupportedCharacter = errors.New("text contains characters the built-in font cannot encode")

// Renderer writes PDF documents.
type Renderer struct {
	Title   string
	Creator string
	Fonts   Fonts
	// SourceName, when set, embeds doc.Source as a file attachment
	// under that name.
	SourceName string
}

// Compile-time interface check.
var _ render.Renderer = (*Renderer)(nil)

// Render lays out doc and returns the encoded PDF.
func (r *Renderer) Render(ctx context.Context, doc markup.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title := r.Title
	if title == "" {
		title = doc.Title()
	}

	c := newFPDFCanvas(r.Fonts, title, r.Creator)
	if err := c.doc.Error(); err != nil {
		return nil, fmt.Errorf("loading fonts: %w", err)
	}
	if r.Fonts.IsZero() {
		if err := checkEncodable(doc, c.tr); err != nil {
			return nil, err
		}
	}

	NewLayout(c).Draw(doc)

	if r.SourceName != "" {
		c.doc.SetAttachments([]fpdf.Attachment{{
			Content:     []byte(doc.Source),
			Filename:    r.SourceName,
			Description: SourceDescription,
		}})
	}

	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// checkEncodable rejects drawn text that tr cannot map. The core font
// translator writes '.' for every rune outside its code page.
func checkEncodable(doc markup.Document, tr func(string) string) error {
	check := func(runs []markup.Run) error {
		for _, run := range runs {
			for _, r := range run.Text {
				if r < utf8.RuneSelf {
					continue
				}
				if tr(string(r)) == "." {
					return fmt.Errorf("%w: %q (%U)", ErrUnsupportedCharacter, r, r)
				}
			}
		}
		return nil
	}
	for _, b := range doc.Blocks {
		runs := b.Runs
		if b.Kind == markup.BlockHeading || b.Kind == markup.BlockListItem {
			runs = markup.ParseInline(b.Text)
		}
		if err := check(runs); err != nil {
			return err
		}
	}
	return nil
}
