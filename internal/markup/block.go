package markup

import "strings"

// BlockKind discriminates the Block variants.
type BlockKind int

// Block kinds.
const (
	BlockBlank BlockKind = iota
	BlockHeading
	BlockListItem
	BlockParagraph
)

// String returns a readable name for the kind.
func (k BlockKind) String() string {
	switch k {
	case BlockBlank:
		return "blank"
	case BlockHeading:
		return "heading"
	case BlockListItem:
		return "list-item"
	case BlockParagraph:
		return "paragraph"
	}
	return "unknown"
}

// Block is one semantic line of the document.
// Only the fields relevant to Kind are set.
type Block struct {
	Kind BlockKind

	// Level is 1, 2 or 3 for headings.
	Level int

	// Text holds heading and list item text with the marker removed.
	Text string

	// Ordered marks numbered list items. Number is the numeral exactly as
	// written in the source ("1", "07"), never a computed counter.
	Ordered bool
	Number  string

	// Runs holds paragraph content.
	Runs []Run
}

// Heading returns a heading block.
func Heading(level int, text string) Block {
	return Block{Kind: BlockHeading, Level: level, Text: text}
}

// Bullet returns an unordered list item block.
func Bullet(text string) Block {
	return Block{Kind: BlockListItem, Text: text}
}

// Numbered returns an ordered list item block carrying its source numeral.
func Numbered(number, text string) Block {
	return Block{Kind: BlockListItem, Ordered: true, Number: number, Text: text}
}

// Paragraph returns a paragraph block.
func Paragraph(runs ...Run) Block {
	return Block{Kind: BlockParagraph, Runs: runs}
}

// Blank returns a spacing block.
func Blank() Block {
	return Block{Kind: BlockBlank}
}

// RunKind discriminates the Run variants.
type RunKind int

// Run kinds.
const (
	RunText RunKind = iota
	RunBold
	RunLink
)

// Run is an inline span of a paragraph.
type Run struct {
	Kind RunKind
	Text string
	URL  string // links only, verbatim
}

// Text returns a plain run.
func Text(s string) Run { return Run{Kind: RunText, Text: s} }

// Bold returns a bold run.
func Bold(s string) Run { return Run{Kind: RunBold, Text: s} }

// Link returns a hyperlink run.
func Link(text, url string) Run { return Run{Kind: RunLink, Text: text, URL: url} }

// Document is the parsed form of one markdown source.
type Document struct {
	// Source is the normalized markdown the blocks were parsed from.
	Source string
	Blocks []Block
}

// Title returns the text of the first level-1 heading, or "".
func (d Document) Title() string {
	for _, b := range d.Blocks {
		if b.Kind == BlockHeading && b.Level == 1 {
			return PlainText(b.Text)
		}
	}
	return ""
}

// Stats summarizes a document.
type Stats struct {
	Lines     int // non-blank lines
	Headings  int
	ListItems int
	Words     int
}

// Stats counts blocks and words.
func (d Document) Stats() Stats {
	var s Stats
	for _, b := range d.Blocks {
		switch b.Kind {
		case BlockBlank:
			continue
		case BlockHeading:
			s.Headings++
		case BlockListItem:
			s.ListItems++
		}
		s.Lines++
	}
	s.Words = len(strings.Fields(d.Source))
	return s
}

// PlainText flattens the inline markup of s into its visible text.
// Overlapping matches are flattened in the same order ParseInline emits them.
func PlainText(s string) string {
	var sb strings.Builder
	for _, r := range ParseInline(s) {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
