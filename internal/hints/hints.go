// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/mdpage/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/mdpage) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/mdpage") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownTheme returns hints for unknown highlight theme errors.
func ForUnknownTheme() string {
	return format("run 'mdpage themes' to list available themes")
}

// ForNoInput returns hints when no input files were specified or matched.
func ForNoInput() string {
	return format("pass markdown files, directories, or globs like 'docs/**/*.md'")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
