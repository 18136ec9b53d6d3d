package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// These are guaranteed to not conflict with any standard characters
// and will pass through Goldmark unchanged (no WithUnsafe needed).
// Post-processing converts these to <mark> tags after HTML generation.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Highlight syntax ==text==
	highlightPattern = regexp.MustCompile(`==(.*?)==`)

	// Fenced code block delimiter (backticks or tildes)
	fencedCodeLine = regexp.MustCompile("^(```|~~~)")

	// Indented code block (4 spaces or tab)
	indentedCodeLine = regexp.MustCompile(`^(    |\t)`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for
// conversion. Line endings are normalized everywhere; highlight conversion
// and blank line compression skip fenced and indented code, so code blocks
// reach the parser byte for byte.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	return transformOutsideCode(normalizeLineEndings(content))
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// transformOutsideCode converts ==text== spans to placeholder markers and
// collapses runs of two or more blank lines to one, leaving lines inside
// fenced code blocks and indented code untouched.
func transformOutsideCode(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	inFence := false
	blankRun := 0

	for _, line := range lines {
		// Track fenced code blocks
		if fencedCodeLine.MatchString(line) {
			inFence = !inFence
			blankRun = 0
			result = append(result, line)
			continue
		}

		// Skip processing inside code blocks or indented code blocks
		if inFence || indentedCodeLine.MatchString(line) {
			blankRun = 0
			result = append(result, line)
			continue
		}

		if line == "" {
			blankRun++
			if blankRun == 1 {
				result = append(result, line)
			}
			continue
		}

		blankRun = 0
		result = append(result, convertHighlights(line))
	}

	return strings.Join(result, "\n")
}

// convertHighlights transforms ==text== to placeholder markers.
// The placeholders are converted to <mark> tags after Goldmark processing
// via ConvertMarkPlaceholders. This avoids needing html.WithUnsafe().
// The highlight pattern never spans lines, so per-line application is exact.
func convertHighlights(line string) string {
	return highlightPattern.ReplaceAllString(line, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// Called after Goldmark HTML conversion to finalize highlight markup.
// This is the second half of the ==highlight== feature, keeping Goldmark
// secure (no WithUnsafe) while still supporting inline HTML marks.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}
