package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common        commonFlags
	output        string
	outline       bool
	theme         string
	hardWraps     bool
	noFrontMatter bool
	workers       int
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and sizes")
}

// parseRenderFlags parses flags for the render command.
// Returns the parsed flags and the remaining positional arguments.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	f := &renderFlags{}

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // usage is printed by the help command

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.BoolVar(&f.outline, "outline", false, "write a .json heading outline next to each page")
	fs.StringVarP(&f.theme, "theme", "t", "", "syntax highlight theme")
	fs.BoolVar(&f.hardWraps, "hard-wraps", false, "treat single newlines as <br>")
	fs.BoolVar(&f.noFrontMatter, "no-front-matter", false, "render a leading --- block as content")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
