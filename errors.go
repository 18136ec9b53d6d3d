package mdpage

import (
	"errors"

	"github.com/alnah/go-mdpage/internal/highlight"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrHTMLConversion indicates the markdown to HTML conversion failed.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// ErrUnknownTheme indicates the configured highlight theme does not exist.
	// Surfaces from Render on the first document containing a code block.
	ErrUnknownTheme = highlight.ErrUnknownTheme

	// ErrInvalidDate indicates a front matter date value with invalid
	// "auto:FORMAT" syntax.
	ErrInvalidDate = errors.New("invalid front matter date")
)
