package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern     = regexp.MustCompile(`https?://\S+|www\.\S+`)
	specialPattern = regexp.MustCompile(`[^\w\s.,!?;:]`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
)

// RemoveLinks strips markdown links (keeping the link text) and bare URLs.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// FlattenMarkdown renders markdown-ish article bodies to plain text so the
// lexicon scorers only ever see prose.
func FlattenMarkdown(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	stripped := tagPattern.ReplaceAllString(string(output), " ")

	return strings.Join(strings.Fields(stripped), " ")
}

// NormalizeText cleans raw article text for scoring: URLs removed, special
// characters other than .,!?;: stripped, whitespace collapsed and trimmed.
// Empty input yields empty output, which the scorer treats as "no signal".
func NormalizeText(input string) string {
	text := RemoveLinks(FlattenMarkdown(input))
	text = specialPattern.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
