package summary

import (
	"regexp"
	"strings"
)

// Regular expressions for markdown cleanup, applied in order
var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	boldRegex       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRegex     = regexp.MustCompile(`\*(.+?)\*`)
	inlineCodeRegex = regexp.MustCompile("`(.+?)`")
	headingRegex    = regexp.MustCompile(`#{1,6}\s*`)
	linkRegex       = regexp.MustCompile(`\[(.+?)\]\((?:.+?)\)`)
)

// Clean normalizes free-form markdown text into a single plain-text line.
// Whitespace runs collapse to one space, then bold, italic, inline code,
// heading markers and link targets are stripped, keeping only the visible text.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	cleaned := whitespaceRegex.ReplaceAllString(strings.TrimSpace(text), " ")
	cleaned = boldRegex.ReplaceAllString(cleaned, "$1")
	cleaned = italicRegex.ReplaceAllString(cleaned, "$1")
	cleaned = inlineCodeRegex.ReplaceAllString(cleaned, "$1")
	cleaned = headingRegex.ReplaceAllString(cleaned, "")
	cleaned = linkRegex.ReplaceAllString(cleaned, "$1")

	return strings.TrimSpace(cleaned)
}
