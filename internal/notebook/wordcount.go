package notebook

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	lineBreakTags = regexp.MustCompile(`(?i)<br\s*/?>|</p>`)
	anyTag        = regexp.MustCompile(`<[^>]+>`)
)

// PlainText turns markup into text: <br>, <br/> and </p> become newlines and
// every other tag is dropped. Entities, scripts and malformed markup get no
// special treatment.
func PlainText(markup string) string {
	return strings.TrimSpace(anyTag.ReplaceAllString(BreakLines(markup), ""))
}

// BreakLines replaces the line-break tags <br>, <br/> and </p> with "\n" and
// leaves all other markup in place.
func BreakLines(markup string) string {
	return lineBreakTags.ReplaceAllString(markup, "\n")
}

// WordCount counts whitespace-separated tokens in the plain text of markup.
func WordCount(markup string) int {
	return len(strings.Fields(PlainText(markup)))
}

// WordCountLabel renders a count for the footer, e.g. "1 word", "12 words".
func WordCountLabel(n int) string {
	if n == 1 {
		return "1 word"
	}
	return strconv.Itoa(n) + " words"
}
