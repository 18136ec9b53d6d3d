package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// makeTree creates a docs tree with markdown and non-markdown files.
func makeTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := []string{
		"index.md",
		"guide.markdown",
		"notes.txt",
		filepath.Join("api", "reference.md"),
		filepath.Join("api", "openapi.yaml"),
	}
	for _, f := range files {
		path := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("# x\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func inputPaths(files []FileToRender) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.InputPath
	}
	return paths
}

func TestDiscoverFiles_Directory(t *testing.T) {
	t.Parallel()

	dir := makeTree(t)
	files, err := discoverFiles([]string{dir}, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("got %d files, want 3: %v", len(files), inputPaths(files))
	}
	for _, f := range files {
		if !isMarkdownFile(f.InputPath) {
			t.Errorf("non-markdown file discovered: %s", f.InputPath)
		}
	}
}

func TestDiscoverFiles_DirectoryPreservesLayout(t *testing.T) {
	t.Parallel()

	dir := makeTree(t)
	outDir := filepath.Join(t.TempDir(), "site")

	files, err := discoverFiles([]string{dir}, outDir)
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}

	wantNested := filepath.Join(outDir, "api", "reference.html")
	found := false
	for _, f := range files {
		if f.OutputPath == wantNested {
			found = true
		}
	}
	if !found {
		t.Errorf("nested output %s not found in %v", wantNested, files)
	}
}

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := makeTree(t)
	input := filepath.Join(dir, "index.md")

	files, err := discoverFiles([]string{input}, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 || files[0].InputPath != input {
		t.Fatalf("got %v", files)
	}
	if want := filepath.Join(dir, "index.html"); files[0].OutputPath != want {
		t.Errorf("OutputPath = %s, want %s", files[0].OutputPath, want)
	}
}

func TestDiscoverFiles_WrongExtension(t *testing.T) {
	t.Parallel()

	dir := makeTree(t)
	_, err := discoverFiles([]string{filepath.Join(dir, "notes.txt")}, "")
	if !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("error = %v, want ErrInvalidExtension", err)
	}
}

func TestDiscoverFiles_Missing(t *testing.T) {
	t.Parallel()

	_, err := discoverFiles([]string{filepath.Join(t.TempDir(), "absent.md")}, "")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestDiscoverFiles_Glob(t *testing.T) {
	t.Parallel()

	dir := makeTree(t)
	pattern := filepath.Join(dir, "**", "*.md")

	files, err := discoverFiles([]string{pattern}, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), inputPaths(files))
	}
}

func TestDiscoverFiles_Dedupe(t *testing.T) {
	t.Parallel()

	dir := makeTree(t)
	input := filepath.Join(dir, "index.md")

	files, err := discoverFiles([]string{input, input}, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 after dedupe", len(files))
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		inputPath string
		outputDir string
		baseDir   string
		want      string
	}{
		{
			name:      "next to source",
			inputPath: filepath.Join("docs", "guide.md"),
			want:      filepath.Join("docs", "guide.html"),
		},
		{
			name:      "markdown extension replaced",
			inputPath: filepath.Join("docs", "guide.markdown"),
			want:      filepath.Join("docs", "guide.html"),
		},
		{
			name:      "flat into output dir",
			inputPath: filepath.Join("docs", "guide.md"),
			outputDir: "site",
			want:      filepath.Join("site", "guide.html"),
		},
		{
			name:      "relative layout preserved",
			inputPath: filepath.Join("docs", "api", "ref.md"),
			outputDir: "site",
			baseDir:   "docs",
			want:      filepath.Join("site", "api", "ref.html"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseDir)
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOutlinePath(t *testing.T) {
	t.Parallel()

	if got := outlinePath(filepath.Join("site", "guide.html")); got != filepath.Join("site", "guide.json") {
		t.Errorf("outlinePath() = %s", got)
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, MaxWorkers} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) error = %v", n, err)
		}
	}
	for _, n := range []int{-1, MaxWorkers + 1} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) error = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}
