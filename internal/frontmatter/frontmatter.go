// Package frontmatter extracts the optional leading YAML block of a
// markdown document.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdpage/internal/yamlutil"
)

// Sentinel errors for front matter operations.
var (
	ErrUnclosed = errors.New("front matter block not closed")
	ErrParse    = errors.New("front matter is not valid YAML")
)

// delimiter opens and closes a front matter block.
const delimiter = "---"

// Fields holds the recognized front matter keys. Unknown keys are ignored
// so documents can carry fields consumed by other tools.
type Fields struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
	Draft       bool     `yaml:"draft"`
}

// Split separates a document into its front matter fields and markdown body.
// A document has front matter only when its very first line is "---"; the
// block runs to the next "---" line. Documents without front matter are
// returned unchanged with zero-valued Fields.
func Split(content string) (Fields, string, error) {
	var fields Fields

	rest, ok := openingCut(content)
	if !ok {
		return fields, content, nil
	}

	block, body, ok := closingCut(rest)
	if !ok {
		return fields, content, ErrUnclosed
	}

	// An empty block ("---" immediately followed by "---") is valid.
	if strings.TrimSpace(block) != "" {
		if err := yamlutil.Unmarshal([]byte(block), &fields); err != nil {
			return Fields{}, content, fmt.Errorf("%w: %v", ErrParse, err)
		}
	}

	return fields, body, nil
}

// openingCut strips the opening delimiter line, reporting whether the
// document starts with one.
func openingCut(content string) (string, bool) {
	line, rest, found := strings.Cut(content, "\n")
	if !found {
		return "", false
	}
	if strings.TrimRight(line, "\r") != delimiter {
		return "", false
	}
	return rest, true
}

// closingCut splits the remainder at the closing delimiter line.
func closingCut(rest string) (block, body string, ok bool) {
	var b strings.Builder
	for rest != "" {
		line, remainder, found := strings.Cut(rest, "\n")
		if strings.TrimRight(line, "\r") == delimiter {
			return b.String(), remainder, true
		}
		if !found {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
		rest = remainder
	}
	return "", "", false
}
