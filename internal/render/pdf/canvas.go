package pdf

import (
	"time"

	"codeberg.org/go-pdf/fpdf"
)

// Canvas is the drawing surface the layout targets. Coordinates are in
// points from the top-left corner of the current page; y in Text is the
// baseline.
type Canvas interface {
	AddPage()
	SetFont(bold bool, size float64)
	// StringWidth measures s in the current font.
	StringWidth(s string) float64
	Text(x, y float64, s string)
	// Circle draws a filled circle centred on (x, y).
	Circle(x, y, r float64)
	// Link places a URI annotation over the given box.
	Link(x, y, w, h float64, url string)
}

// Fonts holds an optional TrueType pair replacing the built-in Helvetica.
// A missing Bold face falls back to Regular.
type Fonts struct {
	Regular []byte
	Bold    []byte
}

// IsZero reports whether no custom font was supplied.
func (f Fonts) IsZero() bool { return len(f.Regular) == 0 }

const (
	coreFamily   = "Helvetica"
	customFamily = "Body"
)

// creationDate is fixed so equal input yields identical bytes.
var creationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// fpdfCanvas draws on an fpdf document.
type fpdfCanvas struct {
	doc    *fpdf.Fpdf
	family string
	// tr maps UTF-8 text to the core font encoding; identity for TTF fonts.
	tr func(string) string
}

// Compile-time interface check.
var _ Canvas = (*fpdfCanvas)(nil)

func newFPDFCanvas(fonts Fonts, title, creator string) *fpdfCanvas {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(Margin, Margin, Margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreationDate(creationDate)
	doc.SetCatalogSort(true)
	doc.SetTitle(title, true)
	doc.SetCreator(creator, true)

	c := &fpdfCanvas{doc: doc, family: coreFamily}
	if fonts.IsZero() {
		c.tr = doc.UnicodeTranslatorFromDescriptor("")
		return c
	}

	bold := fonts.Bold
	if len(bold) == 0 {
		bold = fonts.Regular
	}
	doc.AddUTF8FontFromBytes(customFamily, "", fonts.Regular)
	doc.AddUTF8FontFromBytes(customFamily, "B", bold)
	c.family = customFamily
	c.tr = func(s string) string { return s }
	return c
}

func (c *fpdfCanvas) AddPage() { c.doc.AddPage() }

func (c *fpdfCanvas) SetFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}
	c.doc.SetFont(c.family, style, size)
}

func (c *fpdfCanvas) StringWidth(s string) float64 {
	return c.doc.GetStringWidth(c.tr(s))
}

func (c *fpdfCanvas) Text(x, y float64, s string) {
	c.doc.Text(x, y, c.tr(s))
}

func (c *fpdfCanvas) Circle(x, y, r float64) {
	c.doc.Circle(x, y, r, "F")
}

func (c *fpdfCanvas) Link(x, y, w, h float64, url string) {
	c.doc.LinkString(x, y, w, h, url)
}
