// Package docx renders a markup.Document as an Office Open XML word-processing
// package.
//
// The package is written by hand: a zip container holding a fixed set of XML
// parts. Paragraph flow, wrapping and pagination are left to the word
// processor; this renderer only maps blocks to styled paragraphs.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-md2cv/internal/markup"
	"github.com/alnah/go-md2cv/internal/render"
)

// FontFamily is the only typeface used by the document.
const FontFamily = "Calibri"

// ErrInvalidCharacter reports text that cannot be stored in an XML part.
var ErrInvalidCharacter = errors.New("text contains characters not allowed in XML")

// Renderer writes DOCX packages.
type Renderer struct {
	// Title and Creator fill the package core properties.
	Title   string
	Creator string
}

// Compile-time interface check.
var _ render.Renderer = (*Renderer)(nil)

// New returns a Renderer with the given metadata.
func New(title, creator string) *Renderer {
	return &Renderer{Title: title, Creator: creator}
}

// Render builds the package in memory and returns its bytes.
func (r *Renderer) Render(ctx context.Context, doc markup.Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := validateText(doc); err != nil {
		return nil, err
	}

	title := r.Title
	if title == "" {
		title = doc.Title()
	}
	if err := checkXMLText(title); err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	if err := checkXMLText(r.Creator); err != nil {
		return nil, fmt.Errorf("creator: %w", err)
	}

	w := newDocumentWriter()
	for _, b := range doc.Blocks {
		w.block(b)
	}

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"docProps/core.xml", fmt.Sprintf(coreXMLTemplate, escapeXML(title), escapeXML(r.Creator))},
		{"word/_rels/document.xml.rels", w.relationshipsXML()},
		{"word/styles.xml", stylesXML},
		{"word/numbering.xml", w.numberingXML()},
		{"word/document.xml", w.documentXML()},
	}

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", p.name, err)
		}
		if _, err := fw.Write([]byte(p.content)); err != nil {
			return nil, fmt.Errorf("writing %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing package: %w", err)
	}
	return buf.Bytes(), nil
}

// documentWriter accumulates body XML, hyperlink relationships and
// numbering instances for one Render call.
type documentWriter struct {
	body      strings.Builder
	links     []string       // URLs in relationship order
	linkIDs   map[string]int // URL -> relationship id
	orderedNs []int          // numIds of ordered-list instances
	prevList  bool           // previous block was an ordered list item
}

func newDocumentWriter() *documentWriter {
	return &documentWriter{linkIDs: make(map[string]int)}
}

func (w *documentWriter) block(b markup.Block) {
	ordered := b.Kind == markup.BlockListItem && b.Ordered
	defer func() { w.prevList = ordered }()

	switch b.Kind {
	case markup.BlockBlank:
		w.body.WriteString("    <w:p/>\n")

	case markup.BlockHeading:
		w.body.WriteString(`    <w:p><w:pPr><w:pStyle w:val="Heading` + strconv.Itoa(b.Level) + `"/></w:pPr>`)
		w.runs(markup.ParseInline(b.Text))
		w.body.WriteString("</w:p>\n")

	case markup.BlockListItem:
		numID := bulletNumID
		if ordered {
			if !w.prevList {
				w.orderedNs = append(w.orderedNs, bulletNumID+1+len(w.orderedNs))
			}
			numID = w.orderedNs[len(w.orderedNs)-1]
		}
		fmt.Fprintf(&w.body,
			`    <w:p><w:pPr><w:pStyle w:val="ListParagraph"/><w:numPr><w:ilvl w:val="0"/><w:numId w:val="%d"/></w:numPr></w:pPr>`,
			numID)
		w.runs(markup.ParseInline(b.Text))
		w.body.WriteString("</w:p>\n")

	case markup.BlockParagraph:
		w.body.WriteString("    <w:p>")
		w.runs(b.Runs)
		w.body.WriteString("</w:p>\n")
	}
}

// runs writes each run in order. Overlapping runs from the inline parser are
// written as they come.
func (w *documentWriter) runs(runs []markup.Run) {
	for _, run := range runs {
		if run.Text == "" {
			continue
		}
		switch run.Kind {
		case markup.RunBold:
			w.body.WriteString(`<w:r><w:rPr><w:b/><w:bCs/></w:rPr>`)
			w.text(run.Text)
			w.body.WriteString(`</w:r>`)
		case markup.RunLink:
			fmt.Fprintf(&w.body, `<w:hyperlink r:id="rId%d" w:history="1"><w:r><w:rPr><w:rStyle w:val="Hyperlink"/></w:rPr>`, w.linkID(run.URL))
			w.text(run.Text)
			w.body.WriteString(`</w:r></w:hyperlink>`)
		default:
			w.body.WriteString(`<w:r>`)
			w.text(run.Text)
			w.body.WriteString(`</w:r>`)
		}
	}
}

func (w *documentWriter) text(s string) {
	w.body.WriteString(`<w:t xml:space="preserve">`)
	w.body.WriteString(escapeXML(s))
	w.body.WriteString(`</w:t>`)
}

// linkID returns the relationship id for url, allocating one on first use.
func (w *documentWriter) linkID(url string) int {
	if id, ok := w.linkIDs[url]; ok {
		return id
	}
	id := firstLinkRelID + len(w.links)
	w.links = append(w.links, url)
	w.linkIDs[url] = id
	return id
}

func (w *documentWriter) documentXML() string {
	return documentHeader + w.body.String() + documentFooter
}

func (w *documentWriter) relationshipsXML() string {
	var sb strings.Builder
	sb.WriteString(wordRelsHeader)
	for i, url := range w.links {
		fmt.Fprintf(&sb, `  <Relationship Id="rId%d" Type="%s" Target="%s" TargetMode="External"/>`+"\n",
			firstLinkRelID+i, hyperlinkRelType, escapeXML(url))
	}
	sb.WriteString(wordRelsFooter)
	return sb.String()
}

// numberingXML adds one instance per ordered list so each list restarts at 1.
func (w *documentWriter) numberingXML() string {
	var sb strings.Builder
	sb.WriteString(numberingHeader)
	for _, id := range w.orderedNs {
		fmt.Fprintf(&sb,
			`  <w:num w:numId="%d"><w:abstractNumId w:val="%d"/><w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride></w:num>`+"\n",
			id, decimalAbstractNumID)
	}
	sb.WriteString(numberingFooter)
	return sb.String()
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// checkXMLText rejects a string that cannot appear in an XML part.
func checkXMLText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: invalid UTF-8", ErrInvalidCharacter)
	}
	for i, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("%w: %U at byte %d", ErrInvalidCharacter, r, i)
		}
	}
	return nil
}

// validateText rejects input that would produce a malformed XML part.
func validateText(doc markup.Document) error {
	check := checkXMLText
	for _, b := range doc.Blocks {
		if err := check(b.Text); err != nil {
			return err
		}
		for _, run := range b.Runs {
			if err := check(run.Text); err != nil {
				return err
			}
			if err := check(run.URL); err != nil {
				return err
			}
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}
