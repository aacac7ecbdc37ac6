package main

import (
	"context"
	"fmt"

	novelpub "github.com/CunxiangYin/novel-publication"
)

// runStats prints text statistics for a manuscript.
func runStats(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseStatsFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printStatsUsage(deps.Stderr)
		return ErrNoInput
	}

	// Config is loaded for validation only; stats rendering defaults to
	// text below regardless of output.format.
	if _, err := loadConfig(flags.common.config); err != nil {
		return err
	}

	text, err := readInput(positional[0], deps.Stdin)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	stats := novelpub.NewCleaner().Stats(text)

	format := resolveFormat(flags.out.format, "", "text")
	rendered, err := renderStats(&stats, format)
	if err != nil {
		return err
	}

	if err := writeOutput(flags.out.output, rendered, deps.Stdout); err != nil {
		return err
	}
	if flags.out.output != "" && !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", flags.out.output)
	}
	return nil
}
