package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: novelpub <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  parse      Parse a markdown manuscript into a structured document")
	fmt.Fprintln(w, "  clean      Clean manuscript text with a preset or per-rule flags")
	fmt.Fprintln(w, "  stats      Show text statistics for a manuscript")
	fmt.Fprintln(w, "  export     Export a manuscript as markdown or styled HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'novelpub help <command>' for details on a specific command.")
}

// printParseUsage prints usage for the parse command.
func printParseUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: novelpub parse <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parse a markdown manuscript into title, chapters, and counts.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or '-' for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file (default: stdout)")
	fmt.Fprintln(w, "      --format <s>           Output format: json, yaml, text")
	fmt.Fprintln(w, "      --fallback-title <s>   Title used when none is found")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show per-file details")
}

// printCleanUsage prints usage for the clean command.
func printCleanUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: novelpub clean <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Clean manuscript text. Input can be a markdown file, a directory,")
	fmt.Fprintln(w, "or '-' for stdin. Rule flags override the preset.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file or directory")
	fmt.Fprintln(w, "      --in-place             Rewrite sources after a timestamped backup")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel workers for directory input (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cleaning:")
	fmt.Fprintln(w, "  -p, --preset <s>           Preset: basic, clean, publish, smart")
	fmt.Fprintln(w, "      --strip-whitespace     Collapse whitespace, drop blank lines")
	fmt.Fprintln(w, "      --strip-html           Remove HTML tags")
	fmt.Fprintln(w, "      --strip-markdown       Unwrap markdown markup")
	fmt.Fprintln(w, "      --strip-punctuation    Remove Chinese and English punctuation")
	fmt.Fprintln(w, "      --strip-urls           Remove URLs")
	fmt.Fprintln(w, "      --strip-email          Remove e-mail addresses")
	fmt.Fprintln(w, "      --strip-emoji          Remove emoji")
	fmt.Fprintln(w, "      --normalize            Unify quotation marks")
	fmt.Fprintln(w, "      --strip-chapter-numbers  Remove chapter numbering prefixes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --stats                Print statistics alongside the cleaned text")
	fmt.Fprintln(w, "      --format <s>           Stats format: json, yaml, text")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show per-file timing")
}

// printStatsUsage prints usage for the stats command.
func printStatsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: novelpub stats <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show character, word, line, and paragraph statistics for a manuscript.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or '-' for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output file (default: stdout)")
	fmt.Fprintln(w, "      --format <s>       Output format: json, yaml, text")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show per-file details")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: novelpub export <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export a parsed manuscript as canonical markdown or styled HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or '-' for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (default: stdout)")
	fmt.Fprintln(w, "      --format <s>        Output format: html, markdown")
	fmt.Fprintln(w, "      --style <s>         HTML stylesheet name (novel, plain)")
	fmt.Fprintln(w, "      --style-dir <path>  Directory of custom stylesheets")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet             Only show errors")
	fmt.Fprintln(w, "  -v, --verbose           Show per-file details")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "parse":
		printParseUsage(deps.Stdout)
	case "clean":
		printCleanUsage(deps.Stdout)
	case "stats":
		printStatsUsage(deps.Stdout)
	case "export":
		printExportUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: novelpub version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: novelpub help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
