package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	mdpage "github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/config"
	"github.com/alnah/go-mdpage/internal/hints"
)

// Sentinel errors for render operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWriteHTML    = errors.New("failed to write HTML file")
	ErrWriteOutline = errors.New("failed to write outline file")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PageRenderer is the interface for the rendering service.
type PageRenderer interface {
	Render(ctx context.Context, content string) (*mdpage.Page, error)
}

// Compile-time interface implementation check.
var _ PageRenderer = (*mdpage.Renderer)(nil)

// RenderResult holds the outcome of a single page render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Bytes      int
	Err        error
	Duration   time.Duration
}

// outlineDocument is the JSON contract consumed by the external
// table-of-contents collaborator.
type outlineDocument struct {
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Headings    []mdpage.Heading `json:"headings"`
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, inputs, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env)

	// Load configuration (flag wins over environment)
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Resolve inputs: positional args > config default directory
	if len(inputs) == 0 {
		if cfg.Input.DefaultDir == "" {
			return fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
		}
		inputs = []string{cfg.Input.DefaultDir}
	}

	// Resolve output directory: flag > environment > config
	outputDir := flags.output
	if outputDir == "" {
		outputDir = envCfg.OutputDir
	}
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputs, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files matched%s", ErrNoInput, hints.ForNoInput())
	}

	renderer := buildRenderer(flags, envCfg, cfg, env)
	writeOutline := flags.outline || cfg.Output.Outline

	workers := resolveWorkers(flags.workers, envCfg.Workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Rendering %d page(s) with %d worker(s)\n", len(files), workers)
	}

	results := renderBatch(ctx, renderer, files, workers, writeOutline)

	failed := printResults(results, flags.common, env)
	if failed > 0 {
		// Wrap the first failure so exit code classification sees it.
		for _, r := range results {
			if r.Err == nil {
				continue
			}
			if errors.Is(r.Err, mdpage.ErrUnknownTheme) {
				return fmt.Errorf("%d page(s) failed: %w%s", failed, r.Err, hints.ForUnknownTheme())
			}
			return fmt.Errorf("%d page(s) failed: %w", failed, r.Err)
		}
	}
	return nil
}

// buildRenderer assembles the renderer from config, environment, and flags
// (flags win).
func buildRenderer(flags *renderFlags, envCfg envConfig, cfg *config.Config, env *Environment) *mdpage.Renderer {
	theme := cfg.Render.Theme
	if envCfg.Theme != "" {
		theme = envCfg.Theme
	}
	if flags.theme != "" {
		theme = flags.theme
	}

	opts := []mdpage.Option{mdpage.WithNow(env.Now)}
	if theme != "" {
		opts = append(opts, mdpage.WithTheme(theme))
	}
	if flags.hardWraps || cfg.Render.HardWraps {
		opts = append(opts, mdpage.WithHardWraps())
	}
	if flags.noFrontMatter || !cfg.Render.FrontMatterEnabled() {
		opts = append(opts, mdpage.WithoutFrontMatter())
	}
	if len(cfg.Languages.Aliases) > 0 {
		opts = append(opts, mdpage.WithLanguageAliases(cfg.Languages.Aliases))
	}
	if len(cfg.Languages.Filenames) > 0 {
		opts = append(opts, mdpage.WithFilenameDefaults(cfg.Languages.Filenames))
	}

	return mdpage.NewRenderer(opts...)
}

// renderBatch processes files concurrently. The renderer is safe for
// concurrent use, so workers share a single instance.
func renderBatch(ctx context.Context, renderer PageRenderer, files []FileToRender, workers int, writeOutline bool) []RenderResult {
	if len(files) == 0 {
		return nil
	}
	if workers > len(files) {
		workers = len(files)
	}

	results := make([]RenderResult, len(files))
	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{InputPath: files[idx].InputPath, Err: ctx.Err()}
					continue
				}
				results[idx] = renderFile(ctx, renderer, files[idx], writeOutline)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// renderFile renders one markdown file and writes its outputs.
func renderFile(ctx context.Context, renderer PageRenderer, file FileToRender, writeOutline bool) RenderResult {
	start := time.Now()
	result := RenderResult{InputPath: file.InputPath, OutputPath: file.OutputPath}

	fail := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(file.InputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	page, err := renderer.Render(ctx, string(content))
	if err != nil {
		return fail(fmt.Errorf("rendering %s: %w", file.InputPath, err))
	}

	if err := os.MkdirAll(filepath.Dir(file.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("%w: %v%s", ErrWriteHTML, err, hints.ForOutputDirectory()))
	}
	if err := os.WriteFile(file.OutputPath, []byte(page.HTML), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %v", ErrWriteHTML, err))
	}
	result.Bytes = len(page.HTML)

	if writeOutline {
		doc := outlineDocument{
			Title:       page.Meta.Title,
			Description: page.Meta.Description,
			Headings:    page.Headings,
		}
		if doc.Headings == nil {
			doc.Headings = []mdpage.Heading{}
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutline, err))
		}
		data = append(data, '\n')
		if err := os.WriteFile(outlinePath(file.OutputPath), data, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v", ErrWriteOutline, err))
		}
	}

	result.Duration = time.Since(start)
	return result
}

// printResults reports per-file outcomes and returns the failure count.
func printResults(results []RenderResult, common commonFlags, env *Environment) int {
	failed := 0
	var total int64

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAIL %s: %v\n", r.InputPath, r.Err)
			continue
		}
		total += int64(r.Bytes)
		if common.verbose {
			fmt.Fprintf(env.Stderr, "  %s -> %s (%s, %s)\n",
				r.InputPath, r.OutputPath,
				humanize.Bytes(uint64(r.Bytes)), r.Duration.Round(time.Millisecond))
		}
	}

	if !common.quiet {
		fmt.Fprintf(env.Stderr, "Rendered %d page(s), %s\n",
			len(results)-failed, humanize.Bytes(uint64(total))) // #nosec G115 -- total is non-negative
	}
	return failed
}

// resolveWorkers determines the worker count.
// Priority: explicit flag > environment > GOMAXPROCS-based calculation.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if envWorkers > 0 {
		return envWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
