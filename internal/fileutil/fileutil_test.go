package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.md")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(dir, "absent.md")) {
		t.Error("FileExists() = true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Error("DirExists() = false for existing directory")
	}
	if DirExists(file) {
		t.Error("DirExists() = true for file")
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists() = true for missing path")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"github", false},
		{"mdpage", false},
		{"./mdpage.yaml", true},
		{"/etc/mdpage/config.yaml", true},
		{`sub\dir`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsGlobPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"docs/**/*.md", true},
		{"page?.md", true},
		{"[ab].md", true},
		{"{a,b}.md", true},
		{"docs/readme.md", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsGlobPattern(tt.input); got != tt.want {
			t.Errorf("IsGlobPattern(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
