package main

import (
	"context"
	"errors"
	"fmt"

	novelpub "github.com/CunxiangYin/novel-publication"
)

// ErrInvalidExportFormat reports an unsupported export format.
var ErrInvalidExportFormat = errors.New("invalid export format")

// runExport parses a manuscript and writes it back out as canonical
// markdown or a styled HTML page.
func runExport(ctx context.Context, args []string, deps *Dependencies) error {
	flags, positional, err := parseExportFlags(args, deps.Stderr)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		printExportUsage(deps.Stderr)
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

	doc, err := novelpub.NewParser().Parse(ctx, text)
	if err != nil {
		return err
	}

	style := flags.style
	if style == "" {
		style = cfg.Output.Style
	}
	var opts []novelpub.ExporterOption
	if style != "" {
		opts = append(opts, novelpub.WithStyle(style))
	}
	if flags.styleDir != "" {
		opts = append(opts, novelpub.WithStyleDir(flags.styleDir))
	}

	exporter, err := novelpub.NewExporter(opts...)
	if err != nil {
		return err
	}

	var rendered string
	switch format := resolveFormat(flags.out.format, "", "html"); format {
	case "html":
		rendered, err = exporter.HTML(ctx, doc)
		if err != nil {
			return err
		}
	case "markdown", "md":
		rendered = exporter.Markdown(doc)
	default:
		return fmt.Errorf("%w: %q (expected html or markdown)", ErrInvalidExportFormat, format)
	}

	if err := writeOutput(flags.out.output, rendered, deps.Stdout); err != nil {
		return err
	}
	if flags.out.output != "" && !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", flags.out.output)
	}
	return nil
}
