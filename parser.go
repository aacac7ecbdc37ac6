package novelpub

import (
	"context"

	"github.com/CunxiangYin/novel-publication/internal/segment"
)

// DefaultFallbackTitle is used when neither title tier yields a result.
// The corpus this system targets is Chinese manuscripts, so the
// placeholder is Chinese; override it with WithFallbackTitle.
const DefaultFallbackTitle = "未命名作品"

// Parser segments raw manuscript markdown into a Document. The zero
// cost of construction and absence of state make a single Parser safe
// to share across goroutines.
type Parser struct {
	cfg parserConfig
}

// parserConfig holds internal configuration for Parser.
type parserConfig struct {
	fallbackTitle string
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithFallbackTitle overrides the placeholder title used when the text
// has no recoverable title.
// Panics if title is empty (programmer error, similar to time.NewTicker).
func WithFallbackTitle(title string) ParserOption {
	if title == "" {
		panic("novelpub: WithFallbackTitle title must be non-empty")
	}
	return func(p *Parser) {
		p.cfg.fallbackTitle = title
	}
}

// NewParser creates a Parser with default configuration.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{cfg: parserConfig{fallbackTitle: DefaultFallbackTitle}}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse segments text into a titled, ordered chapter list with content
// statistics. Parsing is total over text: malformed markup yields a
// degenerate document, never an error. The only error is a context
// error, checked between phases since each phase is a bounded scan.
func (p *Parser) Parse(ctx context.Context, text string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	title, ok := segment.ExtractTitle(text)
	if !ok {
		title = p.cfg.fallbackTitle
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := segment.ExtractChapters(text)
	chapters := make([]Chapter, len(raw))
	for i, ch := range raw {
		chapters[i] = Chapter(ch)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Document{
		Title:        title,
		Chapters:     chapters,
		WordCount:    segment.ContentChars(text),
		ChapterCount: len(chapters),
	}, nil
}
