package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	novelpub "github.com/CunxiangYin/novel-publication"
	"github.com/CunxiangYin/novel-publication/internal/config"
	"github.com/CunxiangYin/novel-publication/internal/fileutil"
)

// ErrCleanFailed reports that one or more files could not be cleaned.
var ErrCleanFailed = errors.New("some files failed to clean")

// cleanMode is the resolved cleaning behavior: either a named preset
// or an explicit option set.
type cleanMode struct {
	preset  novelpub.Preset
	options novelpub.CleanOptions
	custom  bool
}

// runClean cleans a manuscript file, a directory of manuscripts, or stdin.
func runClean(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseCleanFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printCleanUsage(deps.Stderr)
		return ErrNoInput
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	mode, err := resolveCleanMode(flags, cfg)
	if err != nil {
		return err
	}

	cleaner := newCleaner(flags.workers)
	input := positional[0]

	if input == stdinMarker {
		return cleanStream(ctx, cleaner, mode, flags, deps)
	}

	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return cleanSingle(ctx, cleaner, mode, input, flags, cfg, deps)
	}
	return cleanDirectory(ctx, cleaner, mode, input, flags, cfg, deps)
}

// newCleaner builds a Cleaner honoring an explicit worker count.
func newCleaner(workers int) *novelpub.Cleaner {
	if workers > 0 {
		return novelpub.NewCleaner(novelpub.WithWorkers(workers))
	}
	return novelpub.NewCleaner()
}

// resolveCleanMode picks the cleaning behavior. Rule flags override the
// preset flag, which overrides the config.
func resolveCleanMode(flags *cleanFlags, cfg *config.Config) (cleanMode, error) {
	if opts, set := ruleOptions(&flags.rules); set {
		return cleanMode{options: opts, custom: true}, nil
	}

	name := flags.preset
	if name == "" {
		name = cfg.Clean.Preset
	}
	if name == config.PresetCustom {
		return cleanMode{options: configOptions(&cfg.Clean.Options), custom: true}, nil
	}

	preset := novelpub.Preset(name)
	if err := preset.Validate(); err != nil {
		return cleanMode{}, err
	}
	return cleanMode{preset: preset}, nil
}

// ruleOptions converts rule flags to CleanOptions; set reports whether
// any flag was given.
func ruleOptions(f *ruleFlags) (opts novelpub.CleanOptions, set bool) {
	opts = novelpub.CleanOptions{
		StripWhitespace:     f.whitespace,
		StripHTML:           f.html,
		StripMarkdown:       f.markdown,
		StripPunctuation:    f.punctuation,
		StripURLs:           f.urls,
		StripEmoji:          f.emoji,
		Normalize:           f.normalize,
		StripEmail:          f.email,
		StripChapterNumbers: f.chapterNumbers,
	}
	set = opts != novelpub.CleanOptions{}
	return opts, set
}

// configOptions converts config rule options to CleanOptions.
func configOptions(o *config.RuleOptions) novelpub.CleanOptions {
	return novelpub.CleanOptions{
		StripWhitespace:     o.StripWhitespace,
		StripHTML:           o.StripHTML,
		StripMarkdown:       o.StripMarkdown,
		StripPunctuation:    o.StripPunctuation,
		StripURLs:           o.StripURLs,
		StripEmoji:          o.StripEmoji,
		Normalize:           o.Normalize,
		StripEmail:          o.StripEmail,
		StripChapterNumbers: o.StripChapterNumbers,
	}
}

// cleanText applies the resolved mode to one text.
func cleanText(ctx context.Context, cleaner *novelpub.Cleaner, mode cleanMode, text string) (string, error) {
	if mode.custom {
		return cleaner.Clean(ctx, text, mode.options)
	}
	return cleaner.CleanPreset(ctx, text, mode.preset)
}

// cleanStream cleans stdin and writes the result to stdout or --output.
func cleanStream(ctx context.Context, cleaner *novelpub.Cleaner, mode cleanMode, flags *cleanFlags, deps *Dependencies) error {
	text, err := readInput(stdinMarker, deps.Stdin)
	if err != nil {
		return err
	}

	cleaned, err := cleanText(ctx, cleaner, mode, text)
	if err != nil {
		return err
	}

	if err := writeOutput(flags.out.output, cleaned, deps.Stdout); err != nil {
		return err
	}
	return printStatsIfRequested(cleaner, text, flags, deps.Stderr)
}

// cleanSingle cleans one file.
func cleanSingle(ctx context.Context, cleaner *novelpub.Cleaner, mode cleanMode, input string, flags *cleanFlags, cfg *config.Config, deps *Dependencies) error {
	text, err := readInput(input, deps.Stdin)
	if err != nil {
		return err
	}

	cleaned, err := cleanText(ctx, cleaner, mode, text)
	if err != nil {
		return err
	}

	switch {
	case flags.inPlace:
		backupPath, err := writeInPlace(input, cleaned, cfg, deps.Now)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if !flags.common.quiet {
			if backupPath != "" {
				fmt.Fprintf(deps.Stdout, "Cleaned %s (backup: %s)\n", input, backupPath)
			} else {
				fmt.Fprintf(deps.Stdout, "Cleaned %s\n", input)
			}
		}
	case flags.out.output != "":
		if err := writeOutput(flags.out.output, cleaned, deps.Stdout); err != nil {
			return err
		}
		if !flags.common.quiet {
			fmt.Fprintf(deps.Stdout, "Wrote %s\n", flags.out.output)
		}
	default:
		if err := writeOutput("", cleaned, deps.Stdout); err != nil {
			return err
		}
	}

	return printStatsIfRequested(cleaner, text, flags, deps.Stderr)
}

// cleanDirectory fans out over all markdown files under input.
func cleanDirectory(ctx context.Context, cleaner *novelpub.Cleaner, mode cleanMode, input string, flags *cleanFlags, cfg *config.Config, deps *Dependencies) error {
	if !flags.inPlace && flags.out.output == "" {
		return ErrOutputRequired
	}

	files, err := discoverFiles(input, flags.out.output)
	if err != nil {
		return err
	}

	results := cleanBatch(ctx, cleaner, mode, files, flags, cfg, deps.Now)
	summary := printCleanResults(results, flags.common.quiet, flags.common.verbose, deps)
	if summary.Failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrCleanFailed, summary.Failed, len(results))
	}
	return nil
}

// writeInPlace rewrites path with cleaned content, backing up first
// when backups are enabled. Returns the backup path, if any.
func writeInPlace(path, cleaned string, cfg *config.Config, now func() time.Time) (string, error) {
	if !cfg.Backup.Enabled {
		// #nosec G306 -- cleaned manuscripts are meant to be readable
		return "", os.WriteFile(path, []byte(cleaned), filePermissions)
	}
	return fileutil.WriteFileBackup(path, []byte(cleaned), cfg.Backup.Dir, now)
}

// printStatsIfRequested renders statistics for the raw text to w when
// --stats was given. Stats go to stderr so cleaned output stays pipeable.
func printStatsIfRequested(cleaner *novelpub.Cleaner, text string, flags *cleanFlags, w io.Writer) error {
	if !flags.stats {
		return nil
	}
	stats := cleaner.Stats(text)
	format := resolveFormat(flags.out.format, "", "text")
	rendered, err := renderStats(&stats, format)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, rendered)
	return err
}
