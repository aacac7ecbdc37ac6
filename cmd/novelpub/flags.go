package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// outputFlags holds output destination and format flags.
type outputFlags struct {
	output string
	format string
}

// ruleFlags holds per-rule toggles for the clean command. Setting any
// of them switches the command from preset mode to custom options.
type ruleFlags struct {
	whitespace     bool
	html           bool
	markdown       bool
	punctuation    bool
	urls           bool
	email          bool
	emoji          bool
	normalize      bool
	chapterNumbers bool
}

// parseFlags holds all flags for the parse command.
type parseFlags struct {
	common commonFlags
	out    outputFlags
	title  string
}

// cleanFlags holds all flags for the clean command.
type cleanFlags struct {
	common  commonFlags
	out     outputFlags
	preset  string
	rules   ruleFlags
	stats   bool
	inPlace bool
	workers int
}

// statsFlags holds all flags for the stats command.
type statsFlags struct {
	common commonFlags
	out    outputFlags
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common   commonFlags
	out      outputFlags
	style    string
	styleDir string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file details")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags, formats string) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.format, "format", "", "output format: "+formats)
}

// addRuleFlags adds per-rule toggles to a FlagSet.
func addRuleFlags(fs *flag.FlagSet, f *ruleFlags) {
	fs.BoolVar(&f.whitespace, "strip-whitespace", false, "collapse whitespace, drop blank lines")
	fs.BoolVar(&f.html, "strip-html", false, "remove HTML tags")
	fs.BoolVar(&f.markdown, "strip-markdown", false, "unwrap markdown markup")
	fs.BoolVar(&f.punctuation, "strip-punctuation", false, "remove Chinese and English punctuation")
	fs.BoolVar(&f.urls, "strip-urls", false, "remove URLs")
	fs.BoolVar(&f.email, "strip-email", false, "remove e-mail addresses")
	fs.BoolVar(&f.emoji, "strip-emoji", false, "remove emoji")
	fs.BoolVar(&f.normalize, "normalize", false, "unify quotation marks")
	fs.BoolVar(&f.chapterNumbers, "strip-chapter-numbers", false, "remove chapter numbering prefixes")
}

// parseParseFlags parses parse command flags and returns positional args.
func parseParseFlags(args []string, errOut io.Writer) (*parseFlags, []string, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	f := &parseFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.out, "json, yaml, text")
	fs.StringVar(&f.title, "fallback-title", "", "title used when none is found")

	fs.SetOutput(errOut)
	fs.Usage = func() { printParseUsage(errOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseCleanFlags parses clean command flags and returns positional args.
func parseCleanFlags(args []string, errOut io.Writer) (*cleanFlags, []string, error) {
	fs := flag.NewFlagSet("clean", flag.ContinueOnError)
	f := &cleanFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.out, "json, yaml, text (with --stats)")
	addRuleFlags(fs, &f.rules)
	fs.StringVarP(&f.preset, "preset", "p", "", "preset: basic, clean, publish, smart")
	fs.BoolVar(&f.stats, "stats", false, "print statistics alongside the cleaned text")
	fs.BoolVar(&f.inPlace, "in-place", false, "rewrite sources after a timestamped backup")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for directory input (0 = auto)")

	fs.SetOutput(errOut)
	fs.Usage = func() { printCleanUsage(errOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseStatsFlags parses stats command flags and returns positional args.
func parseStatsFlags(args []string, errOut io.Writer) (*statsFlags, []string, error) {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	f := &statsFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.out, "json, yaml, text")

	fs.SetOutput(errOut)
	fs.Usage = func() { printStatsUsage(errOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string, errOut io.Writer) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	addCommonFlags(fs, &f.common)
	addOutputFlags(fs, &f.out, "html, markdown")
	fs.StringVar(&f.style, "style", "", "HTML stylesheet name")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory of custom stylesheets")

	fs.SetOutput(errOut)
	fs.Usage = func() { printExportUsage(errOut) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
