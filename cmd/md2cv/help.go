package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2cv <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Export markdown résumés to DOCX, PDF or HTML")
	fmt.Fprintln(w, "  check      Report résumé content hints")
	fmt.Fprintln(w, "  extract    Print the markdown embedded in a PDF")
	fmt.Fprintln(w, "  init       Write a starter résumé")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'md2cv help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2cv convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export markdown résumés. 'md2cv cv.md' is shorthand for 'md2cv convert cv.md'.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <list>       Formats: docx, pdf, html (default docx,pdf)")
	fmt.Fprintln(w, "  -o, --output <path>       Output directory, or file such as cv.pdf")
	fmt.Fprintln(w, "  -n, --name <s>            Output base name for a single document")
	fmt.Fprintln(w, "      --embed-source        Attach the markdown source to PDF output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Processing:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 8)")
	fmt.Fprintln(w, "      --hints               Print résumé hints after conversion")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show sizes, timing and debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MD2CV_CONFIG, MD2CV_INPUT_DIR, MD2CV_OUTPUT_DIR, MD2CV_FORMATS, MD2CV_TITLE,")
	fmt.Fprintln(w, "  MD2CV_CREATOR, MD2CV_FONT_REGULAR, MD2CV_FONT_BOLD, MD2CV_WORKERS,")
	fmt.Fprintln(w, "  MD2CV_HINTS, MD2CV_EMBED_SOURCE")
	fmt.Fprintln(w, "  Priority: flags > environment > config file > defaults")
}

// printCheckUsage prints usage for the check command.
func printCheckUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2cv check <file>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report missing sections, long summaries and experience without metrics.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --strict              Exit with status 1 when hints are found")
}

// printExtractUsage prints usage for the extract command.
func printExtractUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2cv extract <file.pdf> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the markdown attached by 'convert --embed-source'.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -o, --output <path>       Write to a file instead of stdout")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2cv init [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Write a starter résumé to path (default %s).\n", defaultInitPath)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -t, --template <name>     Template: en, es, or a custom name (default en)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/<name>.md")
	fmt.Fprintln(w, "      --force               Overwrite an existing file")
	fmt.Fprintln(w, "      --list                List available templates")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: md2cv config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration convert would use, as YAML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "check":
		printCheckUsage(env.Stdout)
	case "extract":
		printExtractUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: md2cv version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: md2cv help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
