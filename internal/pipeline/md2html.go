package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdpage/internal/highlight"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// pageRulePriority places the page renderer ahead of Goldmark's default
// HTML renderer (priority 1000), so the page rules win for the node kinds
// they register.
const pageRulePriority = 100

// ConverterConfig holds the page rendering configuration shared by all
// conversions of a GoldmarkConverter.
type ConverterConfig struct {
	// Highlighter is the shared lazy syntax highlighter. Required.
	Highlighter *highlight.Lazy

	// HardWraps treats single newlines as <br>.
	HardWraps bool

	// LanguageAliases extends the built-in fence tag alias table.
	LanguageAliases map[string]string

	// FilenameDefaults extends the built-in per-language display filenames.
	FilenameDefaults map[string]string
}

// HTMLConverter abstracts markdown to HTML conversion with outline
// accumulation.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, []Heading, error)
}

// GoldmarkConverter converts markdown to an HTML fragment using goldmark
// (pure Go), applying the page rendering rules and collecting the heading
// outline. Safe for concurrent use: each conversion builds its own renderer
// around the shared configuration.
type GoldmarkConverter struct {
	cfg ConverterConfig
}

// NewGoldmarkConverter creates a GoldmarkConverter.
func NewGoldmarkConverter(cfg ConverterConfig) *GoldmarkConverter {
	return &GoldmarkConverter{cfg: cfg}
}

// build assembles a goldmark instance for one conversion. The page renderer
// accumulates per-document outline state, so it cannot be shared across
// calls; goldmark construction is cheap enough to do per document.
func (c *GoldmarkConverter) build() (goldmark.Markdown, *PageHTMLRenderer) {
	page := NewPageHTMLRenderer(c.cfg)

	rendererOptions := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(page, pageRulePriority)),
		html.WithXHTML(), // Self-closing tags
		// Note: WithUnsafe() intentionally NOT used for security.
		// The ==highlight== feature uses placeholders converted after Goldmark.
	}
	if c.cfg.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
		),
		goldmark.WithRendererOptions(rendererOptions...),
	)
	return md, page
}

// ToHTML converts markdown content to an HTML fragment and returns it with
// the accumulated heading outline.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, []Heading, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	type result struct {
		html     string
		headings []Heading
		err      error
	}

	done := make(chan result, 1)

	go func() {
		md, page := c.build()
		var buf bytes.Buffer
		if err := md.Convert([]byte(content), &buf); err != nil {
			// Highlighter initialization failure keeps its identity so
			// callers can match it with errors.Is.
			if errors.Is(err, highlight.ErrUnknownTheme) {
				done <- result{err: err}
			} else {
				done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			}
			return
		}
		done <- result{html: buf.String(), headings: page.Headings()}
	}()

	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	case r := <-done:
		return r.html, r.headings, r.err
	}
}
