package pipeline

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/alnah/go-mdpage/internal/highlight"
)

// Outline collection bounds. Level-1 and level-4+ headings are rendered but
// never recorded: the page shell shows the title separately, and deep
// headings would clutter the sidebar.
const (
	outlineMinLevel = 2
	outlineMaxLevel = 3
)

// tocHeadingText is never recorded in the outline, regardless of level,
// to avoid a self-referential table-of-contents entry. Compared
// case-insensitively against the heading's plain text.
const tocHeadingText = "table of contents"

// Heading is one outline entry accumulated during rendering.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// PageHTMLRenderer overrides heading, fenced code block, and link rendering
// for documentation pages, and accumulates the heading outline as a side
// effect of the traversal. It holds per-document state: create one per
// conversion and read Headings after rendering.
type PageHTMLRenderer struct {
	highlighter      *highlight.Lazy
	languageAliases  map[string]string
	filenameDefaults map[string]string
	headings         []Heading
}

// NewPageHTMLRenderer creates a PageHTMLRenderer for a single document.
func NewPageHTMLRenderer(cfg ConverterConfig) *PageHTMLRenderer {
	return &PageHTMLRenderer{
		highlighter:      cfg.Highlighter,
		languageAliases:  cfg.LanguageAliases,
		filenameDefaults: cfg.FilenameDefaults,
	}
}

// Headings returns the outline accumulated during rendering, in document
// order.
func (r *PageHTMLRenderer) Headings() []Heading {
	return r.headings
}

// RegisterFuncs registers the page-specific rendering rules. Registered at
// a higher priority than Goldmark's default HTML renderer, so these four
// node kinds are handled here and everything else falls through.
func (r *PageHTMLRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
	reg.Register(ast.KindLink, r.renderLink)
	reg.Register(ast.KindAutoLink, r.renderAutoLink)
}

// renderHeading emits <h{level} id="{slug}">{text}</h{level}> using only the
// heading's literal text runs. Inline formatting inside headings is
// intentionally discarded to keep TOC anchors simple.
func (r *PageHTMLRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		_, _ = fmt.Fprintf(w, "</h%d>\n", n.Level)
		return ast.WalkContinue, nil
	}

	text := plainText(n, source)
	slug := Slugify(text)

	if n.Level >= outlineMinLevel && n.Level <= outlineMaxLevel &&
		!strings.EqualFold(strings.TrimSpace(text), tocHeadingText) {
		r.headings = append(r.headings, Heading{ID: slug, Text: text, Level: n.Level})
	}

	_, _ = fmt.Fprintf(w, `<h%d id="%s">`, n.Level, slug)
	_, _ = w.Write(util.EscapeHTML([]byte(text)))
	return ast.WalkSkipChildren, nil
}

// renderFencedCodeBlock highlights the block with the shared highlighter and
// wraps it in the page container. A highlighting failure for the declared
// language degrades that one block to plain text; only a failed highlighter
// initialization aborts rendering.
func (r *PageHTMLRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	var tag string
	if lang := n.Language(source); lang != nil {
		tag = string(lang)
	}
	language := NormalizeLanguage(tag, r.languageAliases)

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}
	rawCode := code.String()

	filename := DeriveFilename(rawCode, language, r.filenameDefaults)

	hl, err := r.highlighter.Get()
	if err != nil {
		return ast.WalkStop, err
	}

	var highlighted bytes.Buffer
	if err := hl.Highlight(&highlighted, rawCode, language); err != nil {
		// Local recovery: retry as plain text, keep the container.
		highlighted.Reset()
		if err := hl.Highlight(&highlighted, rawCode, FallbackLanguage); err != nil {
			return ast.WalkStop, err
		}
	}

	// data-raw carries the exact original source, URL-encoded, for the
	// client-side copy-to-clipboard collaborator.
	_, _ = w.WriteString(`<div class="code-block" data-language="`)
	_, _ = w.Write(util.EscapeHTML([]byte(language)))
	_, _ = w.WriteString(`" data-raw="`)
	_, _ = w.WriteString(rawAttrEscape(rawCode))
	_, _ = w.WriteString(`">`)
	_, _ = w.WriteString(`<div class="code-header"><span class="code-filename">`)
	_, _ = w.Write(util.EscapeHTML([]byte(filename)))
	_, _ = w.WriteString(`</span><button class="code-copy" type="button" aria-label="Copy code">Copy</button></div>`)
	_, _ = w.Write(highlighted.Bytes())
	_, _ = w.WriteString("</div>\n")
	return ast.WalkContinue, nil
}

// renderLink emits in-page anchors (#...) with a marker class and no target,
// and every other link with target="_blank" rel="noopener noreferrer".
func (r *PageHTMLRenderer) renderLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Link)
	if !entering {
		_, _ = w.WriteString("</a>")
		return ast.WalkContinue, nil
	}

	anchor := bytes.HasPrefix(n.Destination, []byte("#"))
	if anchor {
		_, _ = w.WriteString(`<a class="anchor-link" href="`)
	} else {
		_, _ = w.WriteString(`<a href="`)
	}
	if !html.IsDangerousURL(n.Destination) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(n.Destination, true)))
	}
	_ = w.WriteByte('"')
	if n.Title != nil {
		_, _ = w.WriteString(` title="`)
		_, _ = w.Write(util.EscapeHTML(n.Title))
		_ = w.WriteByte('"')
	}
	if !anchor {
		_, _ = w.WriteString(` target="_blank" rel="noopener noreferrer"`)
	}
	_ = w.WriteByte('>')
	return ast.WalkContinue, nil
}

// renderAutoLink treats autolinked URLs like any other external link, so the
// safe-link invariant holds for every non-anchor anchor in the output.
func (r *PageHTMLRenderer) renderAutoLink(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.AutoLink)
	if !entering {
		return ast.WalkContinue, nil
	}

	dest := n.URL(source)
	if n.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(bytes.ToLower(dest), []byte("mailto:")) {
		dest = append([]byte("mailto:"), dest...)
	}
	_, _ = w.WriteString(`<a href="`)
	if !html.IsDangerousURL(dest) {
		_, _ = w.Write(util.EscapeHTML(util.URLEscape(dest, false)))
	}
	_, _ = w.WriteString(`" target="_blank" rel="noopener noreferrer">`)
	_, _ = w.Write(util.EscapeHTML(n.Label(source)))
	_, _ = w.WriteString("</a>")
	return ast.WalkContinue, nil
}

// rawAttrEscape percent-encodes source for the data-raw attribute.
// url.QueryEscape alone would emit "+" for spaces, which the client-side
// decodeURIComponent leaves as "+"; forcing %20 keeps the round trip exact
// on both sides.
func rawAttrEscape(source string) string {
	return strings.ReplaceAll(url.QueryEscape(source), "+", "%20")
}

// plainText concatenates the literal text runs of a node's subtree,
// discarding inline markup. Highlight placeholders are dropped with the
// rest of the markup so the text matches what headings display.
func plainText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(source))
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	text := strings.ReplaceAll(buf.String(), MarkStartPlaceholder, "")
	return strings.ReplaceAll(text, MarkEndPlaceholder, "")
}
