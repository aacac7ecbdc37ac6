package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/CunxiangYin/novel-publication/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand          = errors.New("no command specified")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrNoInput            = errors.New("no input specified")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputRequired     = errors.New("directory input requires --in-place or an output directory")
)

// run dispatches to the requested command.
func run(ctx context.Context, args []string, deps *Dependencies) error {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ErrNoCommand
	}

	switch args[1] {
	case "parse":
		return runParse(ctx, args[2:], deps)
	case "clean":
		return runClean(ctx, args[2:], deps)
	case "stats":
		return runStats(ctx, args[2:], deps)
	case "export":
		return runExport(ctx, args[2:], deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "novelpub %s\n", Version)
		return nil
	case "help":
		runHelp(args[2:], deps)
		return nil
	default:
		printUsage(deps.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[1])
	}
}

// loadConfig resolves the effective configuration: the named file when
// given, defaults otherwise.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
