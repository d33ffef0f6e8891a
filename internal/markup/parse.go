package markup

import (
	"regexp"
	"strings"
)

var (
	bulletPattern   = regexp.MustCompile(`^[-*] (.*)$`)
	numberedPattern = regexp.MustCompile(`^(\d+)\. (.*)$`)
)

// headingPrefixes maps each recognized marker to its level.
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"# ", 1},
	{"## ", 2},
	{"### ", 3},
}

// Parse converts markdown text into a Document.
// Blocks keep the input line order; every input line yields exactly one block.
func Parse(text string) Document {
	text = NormalizeLineEndings(text)
	p := &blockParser{}
	for _, line := range strings.Split(text, "\n") {
		p.line(line)
	}
	p.flush()
	return Document{Source: text, Blocks: p.blocks}
}

// blockParser accumulates consecutive list lines before emitting them.
type blockParser struct {
	blocks  []Block
	pending []Block
	inList  bool
}

func (p *blockParser) line(line string) {
	if strings.TrimSpace(line) == "" {
		p.flush()
		p.blocks = append(p.blocks, Blank())
		return
	}

	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			p.flush()
			p.blocks = append(p.blocks, Heading(h.level, strings.TrimSpace(line[len(h.prefix):])))
			return
		}
	}

	if m := bulletPattern.FindStringSubmatch(line); m != nil {
		p.pending = append(p.pending, Bullet(strings.TrimSpace(m[1])))
		p.inList = true
		return
	}
	if m := numberedPattern.FindStringSubmatch(line); m != nil {
		p.pending = append(p.pending, Numbered(m[1], strings.TrimSpace(m[2])))
		p.inList = true
		return
	}

	p.flush()
	p.blocks = append(p.blocks, Paragraph(ParseInline(line)...))
}

// flush emits pending list items in order.
func (p *blockParser) flush() {
	if !p.inList {
		return
	}
	p.blocks = append(p.blocks, p.pending...)
	p.pending = nil
	p.inList = false
}
