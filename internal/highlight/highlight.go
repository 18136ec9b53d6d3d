// Package highlight wraps chroma syntax highlighting behind a small,
// theme-fixed API with lazy, concurrency-safe initialization.
package highlight

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownTheme indicates the requested chroma style does not exist.
var ErrUnknownTheme = errors.New("unknown highlight theme")

// tabWidth used when expanding tabs in highlighted output.
const tabWidth = 4

// Highlighter renders source code as HTML with inline styles for a fixed
// theme. Read-only after construction and safe for concurrent use.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// New creates a Highlighter for the named chroma style.
// Returns ErrUnknownTheme rather than silently using chroma's fallback
// style, since a misspelled theme is a configuration mistake.
func New(theme string) (*Highlighter, error) {
	style := styles.Get(theme)
	if style == nil || (style == styles.Fallback && theme != styles.Fallback.Name) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}

	return &Highlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.TabWidth(tabWidth),
			chromahtml.WithClasses(false), // inline styles: output is self-contained
		),
	}, nil
}

// Highlight writes source highlighted as language to w.
// An unknown language falls back to chroma's plain-text lexer, so missing
// grammar support alone never fails; returned errors come from tokenizing
// or formatting.
func (h *Highlighter) Highlight(w io.Writer, source, language string) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenizing as %s: %w", language, err)
	}
	if err := h.formatter.Format(w, h.style, iterator); err != nil {
		return fmt.Errorf("formatting as %s: %w", language, err)
	}
	return nil
}

// Themes lists the available chroma style names, sorted.
func Themes() []string {
	return styles.Names()
}

// Lazy memoizes a single Highlighter, created on first use.
// Initialization is idempotent under concurrent first use: all callers
// observe the same instance and the same error, including a permanent
// failure (no retry after a failed initialization).
type Lazy struct {
	theme string
	once  sync.Once
	h     *Highlighter
	err   error
}

// NewLazy prepares a Lazy for the named theme without initializing it.
func NewLazy(theme string) *Lazy {
	return &Lazy{theme: theme}
}

// Get returns the shared Highlighter, initializing it on first call.
func (l *Lazy) Get() (*Highlighter, error) {
	l.once.Do(func() {
		l.h, l.err = New(l.theme)
	})
	return l.h, l.err
}
