package markup

import (
	"regexp"
	"sort"
	"strings"
)

// Precompiled inline patterns. Both are non-greedy and scanned independently.
var (
	boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)
	linkPattern = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// inlineMatch is one bold or link hit, in byte offsets of the line.
type inlineMatch struct {
	start, end int
	run        Run
}

// ParseInline splits one line into runs.
//
// Bold and link spans are found by two independent scans. Hits are ordered
// by start offset, bold before link on ties, and are never merged: when a
// link sits inside a bold span both runs are emitted and the text after the
// last processed hit is kept as-is. For "**[a](u)**" that yields
// Bold("[a](u)"), Link("a", "u"), Text("**").
//
// The result always holds at least one run.
func ParseInline(line string) []Run {
	matches := collectMatches(line)
	if len(matches) == 0 {
		if strings.TrimSpace(line) == "" {
			return []Run{Text("")}
		}
		return []Run{Text(line)}
	}

	runs := make([]Run, 0, 2*len(matches)+1)
	pos := 0
	for _, m := range matches {
		if m.start > pos {
			runs = append(runs, Text(line[pos:m.start]))
		}
		runs = append(runs, m.run)
		pos = m.end
	}
	if pos < len(line) {
		runs = append(runs, Text(line[pos:]))
	}
	return runs
}

func collectMatches(line string) []inlineMatch {
	var matches []inlineMatch
	for _, loc := range boldPattern.FindAllStringSubmatchIndex(line, -1) {
		matches = append(matches, inlineMatch{
			start: loc[0],
			end:   loc[1],
			run:   Bold(line[loc[2]:loc[3]]),
		})
	}
	for _, loc := range linkPattern.FindAllStringSubmatchIndex(line, -1) {
		matches = append(matches, inlineMatch{
			start: loc[0],
			end:   loc[1],
			run:   Link(line[loc[2]:loc[3]], line[loc[4]:loc[5]]),
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})
	return matches
}
