package main

import (
	"fmt"
	"io"
)

// printUsage prints the top-level usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "mdpage - render markdown into documentation page HTML")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mdpage <command> [flags] [inputs...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render    Render markdown files to HTML pages")
	fmt.Fprintln(w, "  themes    List available syntax highlight themes")
	fmt.Fprintln(w, "  version   Print version")
	fmt.Fprintln(w, "  help      Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdpage help <command>' for command details.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Render markdown files, directories, or globs to HTML pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mdpage render [flags] <inputs...>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inputs may be .md/.markdown files, directories (walked recursively),")
	fmt.Fprintln(w, "or glob patterns like 'docs/**/*.md'.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>      output directory (default: next to source)")
	fmt.Fprintln(w, "      --outline           write a .json heading outline next to each page")
	fmt.Fprintln(w, "  -t, --theme <name>      syntax highlight theme (default: github)")
	fmt.Fprintln(w, "      --hard-wraps        treat single newlines as <br>")
	fmt.Fprintln(w, "      --no-front-matter   render a leading --- block as content")
	fmt.Fprintln(w, "  -w, --workers <n>       parallel workers, 0 = auto (default: 0)")
	fmt.Fprintln(w, "  -c, --config <name>     config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             only show errors")
	fmt.Fprintln(w, "  -v, --verbose           show per-file timing and sizes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDPAGE_CONFIG, MDPAGE_THEME, MDPAGE_OUTPUT_DIR, MDPAGE_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  mdpage render README.md")
	fmt.Fprintln(w, "  mdpage render -o site/ --outline docs/")
	fmt.Fprintln(w, "  mdpage render -t dracula 'docs/**/*.md'")
}

// printThemesUsage prints usage for the themes command.
func printThemesUsage(w io.Writer) {
	fmt.Fprintln(w, "List available syntax highlight themes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  mdpage themes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pick one with 'mdpage render --theme <name>' or MDPAGE_THEME.")
}

// runHelp shows help for a specific command, or general usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "themes":
		printThemesUsage(env.Stdout)
	case "version", "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stdout, "unknown command %q\n\n", args[0])
		printUsage(env.Stdout)
	}
}
