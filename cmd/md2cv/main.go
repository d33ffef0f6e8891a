package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-md2cv/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the subcommands runMain dispatches.
var commands = []string{"convert", "check", "extract", "init", "config", "completion", "version", "help"}

func main() {
	env := DefaultEnv()
	if hasVerboseFlag(os.Args[1:]) {
		env.Logger = newLogger(os.Stderr)
	}

	// Set only fails on an invalid GOMAXPROCS value; runtime defaults then apply.
	undo, _ := maxprocs.Set(maxprocs.Logger(env.Logger.Sugar().Infof))

	code := runMain(os.Args, env)

	undo()
	_ = env.Logger.Sync()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	// "md2cv cv.md" is shorthand for "md2cv convert cv.md".
	if looksLikeMarkdown(cmd) {
		cmd, rest = "convert", args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(ctx, rest, env)
	case "check":
		err = runCheck(rest, env)
	case "extract":
		err = runExtract(rest, env)
	case "init":
		err = runInit(rest, env)
	case "config":
		err = runConfig(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "md2cv %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		runHelp([]string{cmd}, env)
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, errorHint(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// isCommand reports whether s names a subcommand.
func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// looksLikeMarkdown reports whether arg is a markdown path rather than a
// command name.
func looksLikeMarkdown(arg string) bool {
	return !isCommand(arg) && fileutil.IsMarkdown(arg)
}

// hasVerboseFlag scans raw arguments for -v or --verbose before any
// command parses them, so the logger exists before the first log line.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" || a == "--verbose=true" {
			return true
		}
	}
	return false
}
