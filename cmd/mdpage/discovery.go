package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-mdpage/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrBadPattern         = errors.New("invalid glob pattern")
)

// MaxWorkers caps the --workers flag; beyond this the bottleneck is I/O.
const MaxWorkers = 64

// FileToRender represents a single file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands the input arguments (files, directories, or
// doublestar globs like docs/**/*.md) into the list of markdown files to
// render, in argument order, without duplicates.
func discoverFiles(inputs []string, outputDir string) ([]FileToRender, error) {
	var files []FileToRender
	seen := make(map[string]bool)

	add := func(inputPath, baseDir string) {
		if seen[inputPath] {
			return
		}
		seen[inputPath] = true
		files = append(files, FileToRender{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, baseDir),
		})
	}

	for _, input := range inputs {
		if fileutil.IsGlobPattern(input) {
			matches, err := doublestar.FilepathGlob(input)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrBadPattern, input, err)
			}
			for _, match := range matches {
				// Globs may match anything; silently skip non-markdown.
				if !isMarkdownFile(match) {
					continue
				}
				add(match, "")
			}
			continue
		}

		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if err := validateMarkdownExtension(input); err != nil {
				return nil, err
			}
			add(input, "")
			continue
		}

		err = filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return fmt.Errorf("scanning %s: %w", path, err)
			}
			if d.IsDir() || !isMarkdownFile(path) {
				return nil
			}
			add(path, input)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// resolveOutputPath determines the HTML output path for a markdown file.
// With no output directory, the page is written next to its source.
// When a base input directory is known (directory walk), the relative
// layout is preserved under the output directory.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".html")
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".html")
		}
	}

	return filepath.Join(outputDir, base+".html")
}

// outlinePath derives the outline JSON path from an HTML output path.
func outlinePath(htmlPath string) string {
	return strings.TrimSuffix(htmlPath, filepath.Ext(htmlPath)) + ".json"
}

// isMarkdownFile reports whether the path has a markdown extension.
func isMarkdownFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers rejects out-of-range worker counts early.
func validateWorkers(n int) error {
	if n < 0 || n > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d, 0 = auto)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
