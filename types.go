package mdpage

import "time"

// DefaultTheme is the chroma style used when no theme is configured.
const DefaultTheme = "github"

// Page is the result of rendering one markdown document.
// It is owned by the caller; the renderer keeps no reference to it.
type Page struct {
	// HTML is the rendered fragment, ready to inject into a page shell.
	HTML string

	// Headings is the outline for a table-of-contents sidebar, in document
	// order. Only levels 2-3 are recorded.
	Headings []Heading

	// Meta holds front matter fields, zero-valued when the document has none.
	Meta Meta
}

// Heading is one outline entry derived from a rendered heading.
type Heading struct {
	ID    string `json:"id"`    // slug, used as the HTML anchor id
	Text  string `json:"text"`  // plain heading text, inline markup stripped
	Level int    `json:"level"` // heading depth: 2 for ##, 3 for ###
}

// Meta holds front matter metadata of a document.
type Meta struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Date        string   `json:"date,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Draft       bool     `json:"draft,omitempty"`
}

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	theme            string
	hardWraps        bool
	frontMatter      bool
	languageAliases  map[string]string
	filenameDefaults map[string]string
	now              func() time.Time
}

// WithTheme sets the chroma highlight theme.
// Panics if name is empty (programmer error, similar to time.NewTicker).
// An unknown theme name is reported by Render, when the highlighter is
// first initialized.
func WithTheme(name string) Option {
	if name == "" {
		panic("mdpage: WithTheme name must not be empty")
	}
	return func(r *Renderer) {
		r.cfg.theme = name
	}
}

// WithHardWraps treats single newlines as <br>.
func WithHardWraps() Option {
	return func(r *Renderer) {
		r.cfg.hardWraps = true
	}
}

// WithoutFrontMatter disables front matter extraction entirely. A leading
// --- block, valid front matter or not, is then rendered as markdown
// content and Meta stays zero-valued.
func WithoutFrontMatter() Option {
	return func(r *Renderer) {
		r.cfg.frontMatter = false
	}
}

// WithLanguageAliases adds code fence language aliases on top of the
// built-in table (js->javascript, sh->bash, ...). Entries with the same
// key override the built-ins.
func WithLanguageAliases(aliases map[string]string) Option {
	return func(r *Renderer) {
		if r.cfg.languageAliases == nil {
			r.cfg.languageAliases = make(map[string]string, len(aliases))
		}
		for k, v := range aliases {
			r.cfg.languageAliases[k] = v
		}
	}
}

// WithFilenameDefaults adds per-language display filenames used when a code
// block has no first-line filename hint, on top of the built-in table.
func WithFilenameDefaults(filenames map[string]string) Option {
	return func(r *Renderer) {
		if r.cfg.filenameDefaults == nil {
			r.cfg.filenameDefaults = make(map[string]string, len(filenames))
		}
		for k, v := range filenames {
			r.cfg.filenameDefaults[k] = v
		}
	}
}

// WithNow injects the clock used to resolve "auto" front matter dates.
// Intended for tests; defaults to time.Now.
func WithNow(now func() time.Time) Option {
	if now == nil {
		panic("mdpage: WithNow func must not be nil")
	}
	return func(r *Renderer) {
		r.cfg.now = now
	}
}
