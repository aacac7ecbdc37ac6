package novelpub

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/CunxiangYin/novel-publication/internal/assets"
	"github.com/CunxiangYin/novel-publication/internal/render"
)

// Exporter turns a parsed Document back into canonical markdown or a
// styled standalone HTML page.
type Exporter struct {
	cfg       exporterConfig
	converter render.HTMLConverter
	css       string
}

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	style    string
	styleDir string
}

// ExporterOption configures an Exporter.
type ExporterOption func(*Exporter)

// WithStyle selects the stylesheet inlined into HTML exports. Styles
// are addressed by bare name; the default is assets.DefaultStyle.
func WithStyle(name string) ExporterOption {
	return func(e *Exporter) {
		e.cfg.style = name
	}
}

// WithStyleDir adds a directory of custom stylesheets. Names resolve
// against the directory first, then the embedded styles.
func WithStyleDir(dir string) ExporterOption {
	return func(e *Exporter) {
		e.cfg.styleDir = dir
	}
}

// NewExporter creates an Exporter and resolves its stylesheet eagerly,
// so a bad style name or directory fails at construction, not at the
// first export.
func NewExporter(opts ...ExporterOption) (*Exporter, error) {
	e := &Exporter{
		cfg:       exporterConfig{style: assets.DefaultStyle},
		converter: render.NewGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(e)
	}

	resolver, err := assets.NewResolver(e.cfg.styleDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyleDir, err)
	}

	css, err := resolver.LoadStyle(e.cfg.style)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, e.cfg.style)
		}
		return nil, fmt.Errorf("loading style %q: %w", e.cfg.style, err)
	}
	e.css = css

	return e, nil
}

// Markdown reconstructs canonical manuscript markdown: a level-1 title
// heading followed by one level-2 heading per chapter with its content.
// Chapters are emitted in Seq order. Re-parsing the output recovers the
// same titles, order, and trimmed contents. A nil document yields an
// empty string.
func (e *Exporter) Markdown(doc *Document) string {
	if doc == nil {
		return ""
	}
	return render.Markdown(toRenderData(doc))
}

// HTML renders the document as a standalone HTML page with the
// exporter's stylesheet inlined. Rendering honors ctx cancellation.
func (e *Exporter) HTML(ctx context.Context, doc *Document) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}

	page, err := e.converter.ToHTML(ctx, doc.Title, render.Markdown(toRenderData(doc)))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	return render.InjectCSS(page, e.css), nil
}

// toRenderData copies the document into render input, sorted by Seq so
// hand-built documents with shuffled chapters export in reading order.
func toRenderData(doc *Document) render.DocumentData {
	chapters := make([]render.ChapterData, len(doc.Chapters))
	order := make([]Chapter, len(doc.Chapters))
	copy(order, doc.Chapters)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Seq < order[j].Seq })

	for i, ch := range order {
		chapters[i] = render.ChapterData{Title: ch.Title, Content: ch.Content}
	}
	return render.DocumentData{Title: doc.Title, Chapters: chapters}
}
