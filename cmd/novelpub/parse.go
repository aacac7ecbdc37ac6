package main

import (
	"context"
	"fmt"

	novelpub "github.com/CunxiangYin/novel-publication"
)

// runParse parses a manuscript and prints the structured document.
func runParse(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseParseFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printParseUsage(deps.Stderr)
		return ErrNoInput
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	text, err := readInput(positional[0], deps.Stdin)
	if err != nil {
		return err
	}

	fallback := flags.title
	if fallback == "" {
		fallback = cfg.Parse.FallbackTitle
	}

	var opts []novelpub.ParserOption
	if fallback != "" {
		opts = append(opts, novelpub.WithFallbackTitle(fallback))
	}

	doc, err := novelpub.NewParser(opts...).Parse(ctx, text)
	if err != nil {
		return err
	}

	format := resolveFormat(flags.out.format, cfg.Output.Format, "json")
	rendered, err := renderDocument(doc, format)
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
