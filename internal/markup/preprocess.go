package markup

import "regexp"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
