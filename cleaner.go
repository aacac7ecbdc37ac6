package novelpub

import (
	"context"
	"math"
	"runtime"
	"strings"
	"sync"

	"github.com/CunxiangYin/novel-publication/internal/textrules"
)

// MaxWorkers caps the CleanBatch worker pool.
const MaxWorkers = 64

// paragraphIndent is the full-width indentation prefixed to published
// paragraphs.
const paragraphIndent = "　　"

// Cleaner applies the text normalization pipeline. It holds no mutable
// state; one Cleaner serves any number of goroutines.
type Cleaner struct {
	cfg cleanerConfig
}

// cleanerConfig holds internal configuration for Cleaner.
type cleanerConfig struct {
	workers int
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithWorkers sets the CleanBatch concurrency.
// Panics if n is not in 1..MaxWorkers (programmer error).
func WithWorkers(n int) CleanerOption {
	if n < 1 || n > MaxWorkers {
		panic("novelpub: WithWorkers count must be between 1 and 64")
	}
	return func(c *Cleaner) {
		c.cfg.workers = n
	}
}

// NewCleaner creates a Cleaner with default configuration. The default
// batch concurrency is the CPU count, capped at MaxWorkers.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	workers := runtime.NumCPU()
	if workers > MaxWorkers {
		workers = MaxWorkers
	}
	c := &Cleaner{cfg: cleanerConfig{workers: workers}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Clean runs the pipeline over text with the given options. The rule
// groups run in a fixed order; each flag only decides whether its group
// participates. Punctuation stripping after markup stripping and blank
// line removal after whitespace collapsing are part of the contract:
// reordering them corrupts markup detection or blank-line detection.
// Invisible characters are removed unconditionally at the end.
//
// Cleaning never fails on any input; the only error is a context error.
func (c *Cleaner) Clean(ctx context.Context, text string, opts CleanOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	if opts.StripHTML {
		text = textrules.StripHTML(text)
	}
	if opts.StripMarkdown {
		text = textrules.StripMarkdown(text, true)
	}
	if opts.StripURLs {
		text = textrules.StripURLs(text)
	}
	if opts.StripEmail {
		text = textrules.StripEmail(text)
	}
	if opts.StripEmoji {
		text = textrules.StripEmoji(text)
	}
	if opts.StripChapterNumbers {
		text = textrules.StripChapterNumbers(text)
	}
	if opts.StripPunctuation {
		text = textrules.StripPunctuation(text)
	}
	if opts.Normalize {
		text = textrules.NormalizeQuotes(text)
	}
	if opts.StripWhitespace {
		text = textrules.CollapseWhitespace(text)
		text = textrules.RemoveBlankLines(text)
	}

	return textrules.StripInvisible(text), nil
}

// CleanPreset cleans text with a named preset.
func (c *Cleaner) CleanPreset(ctx context.Context, text string, preset Preset) (string, error) {
	if err := preset.Validate(); err != nil {
		return "", err
	}

	switch preset {
	case PresetBasic:
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return textrules.TrimEnds(text), nil
	case PresetClean:
		return c.ExtractCleanText(ctx, text)
	case PresetPublish:
		return c.PrepareForPublishing(ctx, text)
	default: // PresetSmart, the only name left after Validate
		return c.Clean(ctx, text, SmartDefaults())
	}
}

// ExtractCleanText produces plain reading text from marked-up or
// web-sourced input: every destructive rule enabled, markup unwrapped
// rather than deleted. Idempotent: cleaning its own output changes
// nothing.
func (c *Cleaner) ExtractCleanText(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text = textrules.StripHTML(text)
	text = textrules.StripMarkdown(text, true)
	text = textrules.StripURLs(text)
	text = textrules.StripEmail(text)
	text = textrules.StripEmoji(text)
	text = textrules.StripInvisible(text)
	text = textrules.CollapseWhitespace(text)
	text = textrules.RemoveBlankLines(text)

	return text, nil
}

// PrepareForPublishing lightly cleans text for publication while
// preserving paragraph structure: invisible characters removed, quotes
// unified, then each blank-line-separated paragraph is flattened,
// trimmed, and indented with two full-width spaces. Paragraphs already
// carrying the indent are not double-prefixed, so re-running the
// operation on its own output reproduces it exactly. Markup, URLs, and
// punctuation are deliberately untouched.
func (c *Cleaner) PrepareForPublishing(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text = textrules.StripInvisible(text)
	text = textrules.NormalizeQuotes(text)

	paragraphs := strings.Split(text, "\n\n")
	kept := paragraphs[:0]
	for _, para := range paragraphs {
		para = textrules.CollapseWhitespace(para)
		if para == "" {
			continue
		}
		if !strings.HasPrefix(para, paragraphIndent) {
			para = paragraphIndent + para
		}
		kept = append(kept, para)
	}

	return strings.Join(kept, "\n\n"), nil
}

// Normalize unifies quotes and converts full-width punctuation to its
// half-width form. Pure conversion: nothing is removed.
func (c *Cleaner) Normalize(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text = textrules.NormalizeQuotes(text)
	return textrules.NormalizePunctuation(text), nil
}

// Stats measures text. Totals, lines, and paragraphs are computed over
// the raw input; the character-class counts over the clean-preset
// output. The asymmetry is deliberate: together the two sides report
// how much of the input is real content versus noise.
func (c *Cleaner) Stats(text string) TextStats {
	// ExtractCleanText only errors on a cancelled context.
	clean, _ := c.ExtractCleanText(context.Background(), text)

	totalChars := textrules.CountRunes(text)
	cleanChars := textrules.CountRunes(clean)
	removable := totalChars - cleanChars

	var ratio float64
	if totalChars > 0 {
		ratio = math.Round(float64(removable)/float64(totalChars)*100*100) / 100
	}

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	return TextStats{
		TotalChars:     totalChars,
		CleanChars:     cleanChars,
		ChineseChars:   textrules.CountHan(clean),
		EnglishChars:   textrules.CountASCIILetters(clean),
		NumberChars:    textrules.CountDigits(clean),
		LineCount:      len(strings.Split(text, "\n")),
		ParagraphCount: paragraphs,
		WordCount:      len(strings.Fields(clean)),
		RemovableChars: removable,
		RemovableRatio: ratio,
	}
}

// CleanBatch cleans every text concurrently over a bounded worker pool
// and pairs each result with its statistics. Results are indexed like
// the inputs. A cancelled context stops the batch; the first error wins.
func (c *Cleaner) CleanBatch(ctx context.Context, texts []string, opts CleanOptions) ([]CleanResult, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	concurrency := c.cfg.workers
	if concurrency > len(texts) {
		concurrency = len(texts)
	}

	results := make([]CleanResult, len(texts))
	errs := make([]error, len(texts))
	var wg sync.WaitGroup
	jobs := make(chan int, len(texts))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					continue
				}
				cleaned, err := c.Clean(ctx, texts[idx], opts)
				if err != nil {
					errs[idx] = err
					continue
				}
				results[idx] = CleanResult{Cleaned: cleaned, Stats: c.Stats(texts[idx])}
			}
		}()
	}

	for i := range texts {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
