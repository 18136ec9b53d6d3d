// Package mdpage renders markdown documentation pages into HTML fragments
// with syntax-highlighted code blocks and a heading outline.
//
// # Quick Start
//
// Create a renderer once and reuse it across pages:
//
//	r := mdpage.NewRenderer()
//
//	page, err := r.Render(ctx, "## Getting Started\n\nHello.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(page.HTML)
//	fmt.Println(page.Headings) // [{getting-started Getting Started 2}]
//
// The result contains the rendered HTML fragment (page.HTML), the heading
// outline for a table-of-contents sidebar (page.Headings), and front matter
// metadata (page.Meta). The HTML is a fragment, not a full document: the
// caller is expected to inject it into its own page shell. The markdown
// source is trusted; no sanitization is applied to the output.
//
// # Rendering Pipeline
//
// Rendering follows these stages:
//
//  1. Front matter extraction (leading --- YAML block, optional)
//  2. Markdown preprocessing (line normalization, ==highlight== syntax)
//  3. Markdown to HTML conversion via Goldmark (GFM, custom page rules)
//  4. Heading outline accumulation (levels 2-3, document order)
//
// Three node types get page-specific treatment during conversion:
//
//   - Headings are emitted as plain text with a slug id. Only levels 2 and 3
//     enter the outline, and a heading titled "Table of Contents" never does.
//   - Fenced code blocks are syntax-highlighted with chroma and wrapped in a
//     container carrying a derived display filename, a copy button, and the
//     raw source URL-encoded in a data-raw attribute for clipboard use.
//   - Links to in-page anchors (#...) get a marker class; all other links
//     open in a new tab with rel="noopener noreferrer".
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r := mdpage.NewRenderer(
//	    mdpage.WithTheme("monokai"),
//	    mdpage.WithHardWraps(),
//	    mdpage.WithLanguageAliases(map[string]string{"coffee": "javascript"}),
//	)
//
// The syntax highlighter is shared by all Render calls on a Renderer and is
// initialized lazily on the first code block encountered. An unknown theme
// therefore surfaces as an error from Render, not from NewRenderer.
//
// # Concurrency
//
// A Renderer is safe for concurrent use. Each Render call keeps its own
// traversal state; the shared highlighter is read-only after its one-time
// initialization, which is guarded against concurrent first use.
package mdpage
