package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	novelpub "github.com/CunxiangYin/novel-publication"
	"github.com/CunxiangYin/novel-publication/internal/config"
)

// CleanFileResult holds the outcome of cleaning a single file.
type CleanFileResult struct {
	InputPath  string
	OutputPath string
	BackupPath string
	Err        error
	Duration   time.Duration
}

// cleanBatch processes files concurrently with a bounded worker pool.
// Results are indexed like files regardless of completion order.
func cleanBatch(ctx context.Context, cleaner *novelpub.Cleaner, mode cleanMode, files []FileToClean, flags *cleanFlags, cfg *config.Config, now func() time.Time) []CleanFileResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := resolveConcurrency(flags.workers, len(files))
	results := make([]CleanFileResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = CleanFileResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = cleanFile(ctx, cleaner, mode, files[idx], flags, cfg, now)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// resolveConcurrency picks the worker count: explicit flag, else
// GOMAXPROCS, never more than the number of files.
func resolveConcurrency(flagWorkers, fileCount int) int {
	n := flagWorkers
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > novelpub.MaxWorkers {
		n = novelpub.MaxWorkers
	}
	if n > fileCount {
		n = fileCount
	}
	return n
}

// cleanFile processes a single file and returns the result.
func cleanFile(ctx context.Context, cleaner *novelpub.Cleaner, mode cleanMode, f FileToClean, flags *cleanFlags, cfg *config.Config, now func() time.Time) CleanFileResult {
	start := time.Now()
	result := CleanFileResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	cleaned, err := cleanText(ctx, cleaner, mode, string(content))
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if flags.inPlace {
		result.OutputPath = f.InputPath
		result.BackupPath, err = writeInPlace(f.InputPath, cleaned, cfg, now)
		if err != nil {
			result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		result.Duration = time.Since(start)
		return result
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
		result.Duration = time.Since(start)
		return result
	}
	// #nosec G306 -- cleaned manuscripts are meant to be readable
	if err := os.WriteFile(f.OutputPath, []byte(cleaned), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed files.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed files.
func countResults(results []CleanFileResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printCleanResults reports per-file outcomes and a summary line.
func printCleanResults(results []CleanFileResult, quiet, verbose bool, deps *Dependencies) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(deps.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(deps.Stdout, "Cleaned %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(deps.Stdout, "%d cleaned, %d failed\n", summary.Succeeded, summary.Failed)
	}
	return summary
}
