package mdpage

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-mdpage/internal/dateutil"
	"github.com/alnah/go-mdpage/internal/frontmatter"
	"github.com/alnah/go-mdpage/internal/highlight"
	"github.com/alnah/go-mdpage/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
)

// Renderer converts markdown documents into Pages.
// Create with NewRenderer and reuse across documents; it is safe for
// concurrent use.
type Renderer struct {
	cfg          rendererConfig
	preprocessor pipeline.MarkdownPreprocessor
	converter    pipeline.HTMLConverter
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithTheme, WithHardWraps).
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg: rendererConfig{
			theme:       DefaultTheme,
			frontMatter: true,
			now:         time.Now,
		},
		preprocessor: &pipeline.CommonMarkPreprocessor{},
	}

	for _, opt := range opts {
		opt(r)
	}

	// Converter created last so it sees the merged option state.
	// The highlighter is shared by all Render calls and initialized lazily
	// on the first code block; an unknown theme surfaces from Render.
	if r.converter == nil {
		r.converter = pipeline.NewGoldmarkConverter(pipeline.ConverterConfig{
			Highlighter:      highlight.NewLazy(r.cfg.theme),
			HardWraps:        r.cfg.hardWraps,
			LanguageAliases:  r.cfg.languageAliases,
			FilenameDefaults: r.cfg.filenameDefaults,
		})
	}

	return r
}

// Render converts one markdown document into a Page.
// The context is used for cancellation; rendering itself is a single
// synchronous pass with no I/O beyond one-time highlighter initialization.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, content string) (page *Page, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	// Extract front matter (if enabled). A leading --- block that does not
	// parse is not front matter; it renders as content so that no valid
	// text fails by default.
	meta := Meta{}
	body := content
	if r.cfg.frontMatter {
		if fm, rest, fmErr := frontmatter.Split(content); fmErr == nil {
			body = rest
			meta, err = r.resolveMeta(fm)
			if err != nil {
				return nil, err
			}
		}
	}

	// Preprocess markdown
	body = r.preprocessor.PreprocessMarkdown(ctx, body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Convert to HTML, accumulating the heading outline
	htmlContent, headings, err := r.converter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	// Convert highlight placeholders to <mark> tags.
	// This completes the ==text== feature started in preprocessing.
	// Done after Goldmark to avoid needing html.WithUnsafe().
	htmlContent = pipeline.ConvertMarkPlaceholders(htmlContent)

	return &Page{
		HTML:     htmlContent,
		Headings: toHeadings(headings),
		Meta:     meta,
	}, nil
}

// resolveMeta converts internal front matter fields to the public Meta,
// resolving "auto" date values against the configured clock.
func (r *Renderer) resolveMeta(fm frontmatter.Fields) (Meta, error) {
	date, err := dateutil.ResolveDate(fm.Date, r.cfg.now())
	if err != nil {
		return Meta{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return Meta{
		Title:       fm.Title,
		Description: fm.Description,
		Date:        date,
		Tags:        fm.Tags,
		Draft:       fm.Draft,
	}, nil
}

// toHeadings converts internal pipeline headings to the public type.
func toHeadings(headings []pipeline.Heading) []Heading {
	if len(headings) == 0 {
		return nil
	}
	out := make([]Heading, len(headings))
	for i, h := range headings {
		out[i] = Heading(h)
	}
	return out
}
