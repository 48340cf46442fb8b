package aitext

import (
	"regexp"
	"strings"
)

// Pre-compiled markdown patterns. Strip order matters: emphasis markers
// first, then headings, then inline code, then blank-line collapsing.
var (
	boldPattern      = regexp.MustCompile(`\*\*([^*\n]*)\*\*|__([^_\n]*)__`)
	italicPattern    = regexp.MustCompile(`\*([^*\n]*)\*|_([^_\n]*)_`)
	headingPattern   = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	inlineCode       = regexp.MustCompile("`([^`]*)`")
	blankRunsPattern = regexp.MustCompile(`\n{3,}`)
)

// StripMarkdown removes the lightweight markdown artifacts models sprinkle
// into plain-text answers, leaving the labeled lines intact for extraction.
func StripMarkdown(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1$2")
	text = italicPattern.ReplaceAllString(text, "$1$2")
	text = headingPattern.ReplaceAllString(text, "")
	text = inlineCode.ReplaceAllString(text, "$1")
	text = blankRunsPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
