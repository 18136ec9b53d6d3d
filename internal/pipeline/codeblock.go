package pipeline

import (
	"path"
	"regexp"
	"strings"
)

// FallbackLanguage is used for missing or empty language tags. Chroma's
// plain-text lexer handles it, so a block tagged this way always renders.
const FallbackLanguage = "text"

// fallbackFilename is the display filename for languages without a default.
const fallbackFilename = "code"

// languageAliases maps common fence tags to canonical lexer names.
// Unrecognized tags pass through unchanged.
var languageAliases = map[string]string{
	"js":    "javascript",
	"ts":    "typescript",
	"sh":    "bash",
	"shell": "bash",
	"zsh":   "bash",
	"yml":   "yaml",
	"md":    "markdown",
	"":      FallbackLanguage,
}

// defaultFilenames maps canonical language names to display filenames used
// when a code block carries no first-line filename hint.
var defaultFilenames = map[string]string{
	"typescript": "code.ts",
	"javascript": "code.js",
	"tsx":        "component.tsx",
	"jsx":        "component.jsx",
	"bash":       "terminal",
	"css":        "styles.css",
	"html":       "index.html",
	"json":       "data.json",
	"yaml":       "config.yaml",
	"toml":       "config.toml",
	"markdown":   "README.md",
	"go":         "main.go",
	"python":     "script.py",
	"rust":       "main.rs",
	"sql":        "query.sql",
}

// filenameHintPattern matches a comment-style filename hint on the first
// line of a code block: "// utils.ts", "# deploy.sh", "/* styles.css */".
var filenameHintPattern = regexp.MustCompile(`^(?://|#|/\*)\s*([\w@./~-]+\.[A-Za-z0-9]+)`)

// NormalizeLanguage resolves a fenced code block's declared language tag to
// a canonical name. The tag is trimmed and lowercased, then looked up in the
// extra aliases (renderer configuration) and the built-in table, in that
// order. A missing tag becomes FallbackLanguage; unrecognized tags pass
// through unchanged.
func NormalizeLanguage(tag string, extra map[string]string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if canonical, ok := extra[tag]; ok {
		return canonical
	}
	if canonical, ok := languageAliases[tag]; ok {
		return canonical
	}
	return tag
}

// DeriveFilename determines the display filename for a code block.
// A comment-style filename hint on the first line wins; its last path
// segment is used. Otherwise the per-language default applies (extra
// entries from renderer configuration first), falling back to a generic
// "code" for unmapped languages.
func DeriveFilename(rawCode, language string, extra map[string]string) string {
	firstLine := rawCode
	if i := strings.IndexByte(firstLine, '\n'); i >= 0 {
		firstLine = firstLine[:i]
	}
	if m := filenameHintPattern.FindStringSubmatch(strings.TrimSpace(firstLine)); m != nil {
		return path.Base(m[1])
	}

	if name, ok := extra[language]; ok {
		return name
	}
	if name, ok := defaultFilenames[language]; ok {
		return name
	}
	return fallbackFilename
}
