package pdf

import (
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-md2cv/internal/markup"
)

// Page geometry and typography, in points.
const (
	PageWidth   = 612.0 // US Letter
	PageHeight  = 792.0
	Margin      = 36.0 // half an inch on every side
	ColumnWidth = PageWidth - 2*Margin

	BodySize      = 11.0
	LineSpacing   = 1.15
	BaselineRatio = 0.8

	BlankAdvance  = 8.5
	ListIndent    = 17.0
	BulletOffset  = 5.67
	BulletRadius  = 2.83
	NumeralOffset = 2.83
)

// headingSizes and headingAfter are indexed by heading level.
var (
	headingSizes = [4]float64{1: 16, 2: 13, 3: 12}
	headingAfter = [4]float64{1: 11.34, 2: 5.67, 3: 4.25}
)

// LineHeight returns the vertical advance of one line at size.
func LineHeight(size float64) float64 { return size * LineSpacing }

// span is a piece of inline text with uniform styling.
type span struct {
	text string
	bold bool
	url  string
}

type fragment struct {
	span
	width float64
}

type line []fragment

// Layout places blocks on a Canvas, breaking pages itself.
type Layout struct {
	c     Canvas
	y     float64 // top of the next line
	pages int
}

// NewLayout returns a Layout drawing on c.
func NewLayout(c Canvas) *Layout {
	return &Layout{c: c}
}

// Draw lays out every block in order and returns the number of pages used.
func (l *Layout) Draw(doc markup.Document) int {
	l.newPage()
	for _, b := range doc.Blocks {
		switch b.Kind {
		case markup.BlockHeading:
			l.heading(b)
		case markup.BlockListItem:
			l.listItem(b)
		case markup.BlockParagraph:
			l.paragraph(b)
		case markup.BlockBlank:
			l.y += BlankAdvance
		}
	}
	return l.pages
}

func (l *Layout) newPage() {
	l.c.AddPage()
	l.pages++
	l.y = Margin
}

// reserve starts a new page when a line of height h would cross the bottom
// margin. A line taller than the page is drawn anyway.
func (l *Layout) reserve(h float64) {
	if l.y+h > PageHeight-Margin && l.y > Margin {
		l.newPage()
	}
}

func (l *Layout) heading(b markup.Block) {
	level := b.Level
	if level < 1 || level > 3 {
		level = 3
	}
	size := headingSizes[level]

	var spans []span
	for _, r := range markup.ParseInline(b.Text) {
		spans = append(spans, span{text: r.Text, bold: true, url: r.URL})
	}
	l.lines(spans, Margin, ColumnWidth, size, nil)
	l.y += headingAfter[level]
}

func (l *Layout) listItem(b markup.Block) {
	marker := func(baseline float64) {
		if b.Ordered {
			l.c.SetFont(false, BodySize)
			l.c.Text(Margin+NumeralOffset, baseline, b.Number+".")
			return
		}
		l.c.Circle(Margin+BulletOffset, baseline-BulletRadius, BulletRadius)
	}
	l.lines(runSpans(markup.ParseInline(b.Text)), Margin+ListIndent, ColumnWidth-ListIndent, BodySize, marker)
}

func (l *Layout) paragraph(b markup.Block) {
	l.lines(runSpans(b.Runs), Margin, ColumnWidth, BodySize, nil)
}

func runSpans(runs []markup.Run) []span {
	spans := make([]span, 0, len(runs))
	for _, r := range runs {
		spans = append(spans, span{text: r.Text, bold: r.Kind == markup.RunBold, url: r.URL})
	}
	return spans
}

// lines wraps spans into the column at x and draws them. first, if set, is
// called with the baseline of the first line. An empty block still takes
// one line.
func (l *Layout) lines(spans []span, x, width, size float64, first func(baseline float64)) {
	wrapped := l.wrap(spans, width, size)
	if len(wrapped) == 0 {
		wrapped = []line{nil}
	}
	lh := LineHeight(size)
	for i, ln := range wrapped {
		l.reserve(lh)
		baseline := l.y + BaselineRatio*size
		if i == 0 && first != nil {
			first(baseline)
		}
		l.drawLine(ln, x, baseline, size)
		l.y += lh
	}
}

func (l *Layout) drawLine(ln line, x, baseline, size float64) {
	lh := LineHeight(size)
	for _, f := range ln {
		if f.text == "" {
			x += f.width
			continue
		}
		l.c.SetFont(f.bold, size)
		l.c.Text(x, baseline, f.text)
		if f.url != "" {
			if w := l.c.StringWidth(strings.TrimRight(f.text, " ")); w > 0 {
				l.c.Link(x, baseline-BaselineRatio*size, w, lh, f.url)
			}
		}
		x += f.width
	}
}

func (l *Layout) measure(s string, bold bool, size float64) float64 {
	if s == "" {
		return 0
	}
	l.c.SetFont(bold, size)
	return l.c.StringWidth(s)
}

// wrap breaks spans into lines no wider than width, splitting at spaces.
// Words wider than the column are split between characters.
func (l *Layout) wrap(spans []span, width, size float64) []line {
	var (
		out  []line
		cur  line
		curW float64
	)
	push := func() {
		out = append(out, trimLine(cur))
		cur, curW = nil, 0
	}

	for _, sp := range spans {
		for _, tok := range strings.SplitAfter(sp.text, " ") {
			if len(cur) == 0 {
				tok = strings.TrimLeft(tok, " ")
			}
			if tok == "" {
				continue
			}
			word := strings.TrimRight(tok, " ")
			if len(cur) > 0 && curW+l.measure(word, sp.bold, size) > width {
				push()
				if tok = strings.TrimLeft(tok, " "); tok == "" {
					continue
				}
				word = strings.TrimRight(tok, " ")
			}
			if len(cur) == 0 && l.measure(word, sp.bold, size) > width {
				pieces := l.splitWord(word, sp.bold, size, width)
				for _, p := range pieces[:len(pieces)-1] {
					s := sp
					s.text = p
					out = append(out, line{{span: s, width: l.measure(p, sp.bold, size)}})
				}
				tok = pieces[len(pieces)-1] + tok[len(word):]
			}
			w := l.measure(tok, sp.bold, size)
			cur = appendFragment(cur, sp, tok, w)
			curW += w
		}
	}
	if len(cur) > 0 {
		push()
	}
	return out
}

// splitWord cuts word into pieces that each fit width, keeping at least one
// character per piece.
func (l *Layout) splitWord(word string, bold bool, size, width float64) []string {
	var pieces []string
	start := 0
	for i := 0; i < len(word); {
		_, n := utf8.DecodeRuneInString(word[i:])
		if i > start && l.measure(word[start:i+n], bold, size) > width {
			pieces = append(pieces, word[start:i])
			start = i
		}
		i += n
	}
	return append(pieces, word[start:])
}

// appendFragment merges text into the last fragment when styling matches.
func appendFragment(ln line, sp span, text string, w float64) line {
	if n := len(ln); n > 0 && ln[n-1].bold == sp.bold && ln[n-1].url == sp.url {
		ln[n-1].text += text
		ln[n-1].width += w
		return ln
	}
	sp.text = text
	return append(ln, fragment{span: sp, width: w})
}

// trimLine drops trailing spaces on the last fragment. Widths are left as
// measured; only text drawn after them would move.
func trimLine(ln line) line {
	if n := len(ln); n > 0 {
		ln[n-1].text = strings.TrimRight(ln[n-1].text, " ")
	}
	return ln
}
