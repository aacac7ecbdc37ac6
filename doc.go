// Package novelpub converts markdown novel manuscripts into structured
// documents and cleans free-form prose through an ordered normalization
// pipeline.
//
// # Quick Start
//
// Parse a manuscript into a title, chapters, and statistics:
//
//	parser := novelpub.NewParser()
//	doc, err := parser.Parse(ctx, rawText)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Title, doc.ChapterCount, doc.WordCount)
//
// Clean pasted or web-sourced prose:
//
//	cleaner := novelpub.NewCleaner()
//	text, err := cleaner.CleanPreset(ctx, rawText, novelpub.PresetSmart)
//
// # Segmentation
//
// A document's title comes from its first level-1 heading, falling back
// to the third line for legacy exports, then to a placeholder. Chapters
// open at level-2 headings; everything before the first heading is
// preamble and belongs to no chapter. Parsing is total: malformed
// markup never produces an error, only a degenerate document.
//
// # Cleaning
//
// Clean applies rule groups in a fixed order, each toggled by a flag in
// CleanOptions: HTML tags, markdown markup, URLs and e-mail addresses,
// emoji, chapter numbering, punctuation, quote unification, whitespace,
// and finally invisible characters, which are always removed. The order
// is part of the contract; flags select participation, never position.
//
// The named presets cover the common cases: PresetBasic trims,
// PresetClean produces plain reading text, PresetPublish indents
// paragraphs for publication, PresetSmart is the general-purpose
// default.
//
// # Export
//
// Exporter reconstructs canonical markdown from a parsed document, or
// renders a styled standalone HTML page:
//
//	exporter, err := novelpub.NewExporter(novelpub.WithStyle("plain"))
//	page, err := exporter.HTML(ctx, doc)
//
// All services are stateless and safe for concurrent use.
package novelpub
