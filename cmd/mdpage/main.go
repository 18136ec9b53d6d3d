package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS silently.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	env := DefaultEnv()
	os.Exit(runMain(context.Background(), os.Args[1:], env))
}

// runMain dispatches the command line to a subcommand and returns the
// process exit code. Factored out of main for testability.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "render":
		if err := runRender(ctx, rest, env); err != nil {
			fmt.Fprintln(env.Stderr, "Error:", err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "themes":
		return runThemes(env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "mdpage %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(rest, env)
		return ExitSuccess
	case "-h", "--help":
		printUsage(env.Stdout)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}
