package main

import (
	"fmt"

	mdpage "github.com/alnah/go-mdpage"
	"github.com/alnah/go-mdpage/internal/highlight"
)

// runThemes lists the available syntax highlight themes, marking the default.
func runThemes(env *Environment) int {
	for _, name := range highlight.Themes() {
		if name == mdpage.DefaultTheme {
			fmt.Fprintf(env.Stdout, "%s (default)\n", name)
			continue
		}
		fmt.Fprintln(env.Stdout, name)
	}
	return ExitSuccess
}
