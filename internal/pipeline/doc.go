// Package pipeline implements the markdown rendering stages: preprocessing,
// HTML conversion with page-specific node rules, and heading outline
// accumulation.
//
// The conversion stage parses with Goldmark and renders through a custom
// NodeRenderer that overrides three node types:
//
//   - headings: plain-text content with a slug id, recorded in the outline
//   - fenced code blocks: chroma-highlighted, wrapped in a container with a
//     display filename, copy button, and URL-encoded raw source
//   - links: in-page anchors get a marker class, everything else opens in a
//     new tab with safe-link attributes
//
// All other node types fall through to Goldmark's default HTML renderer.
package pipeline
