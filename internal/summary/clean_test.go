package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "whitespace only",
			input:    "   \n\t  ",
			expected: "",
		},
		{
			name:     "collapses whitespace runs",
			input:    "multiple   spaces\nand\nnewlines\t\there",
			expected: "multiple spaces and newlines here",
		},
		{
			name:     "strips bold markers",
			input:    "this is **important** text",
			expected: "this is important text",
		},
		{
			name:     "strips italic markers",
			input:    "this is *emphasized* text",
			expected: "this is emphasized text",
		},
		{
			name:     "strips inline code markers",
			input:    "run `go test` before pushing",
			expected: "run go test before pushing",
		},
		{
			name:     "strips heading markers",
			input:    "## Summary of changes",
			expected: "Summary of changes",
		},
		{
			name:     "strips deep heading markers",
			input:    "###### Notes",
			expected: "Notes",
		},
		{
			name:     "replaces links with labels",
			input:    "see [the docs](https://example.com/docs) for details",
			expected: "see the docs for details",
		},
		{
			name:     "applies all rules together",
			input:    "# Fix\n\nThis **fixes** the `parser` bug, see [issue](https://example.com/1).",
			expected: "Fix This fixes the parser bug, see issue.",
		},
		{
			name:     "bold stripped before italic",
			input:    "**bold** and *italic*",
			expected: "bold and italic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}

func TestCleanLeavesNoMarkupOrSpaceRuns(t *testing.T) {
	inputs := []string{
		"# Title\n\n**Bold** statement with `code` and [link](http://x) all *around*.",
		"Plain text already.",
		"### Heading\nwith    runs of     spaces",
	}

	for _, input := range inputs {
		cleaned := Clean(input)
		assert.NotContains(t, cleaned, "**")
		assert.NotContains(t, cleaned, "`")
		assert.NotContains(t, cleaned, "](")
		assert.NotContains(t, cleaned, "#")
		assert.NotContains(t, cleaned, "  ", "no multi-space runs in %q", cleaned)
		assert.Equal(t, strings.TrimSpace(cleaned), cleaned)
	}
}
