package novelpub

import "fmt"

// Chapter is one segmented unit of a manuscript, immutable once the
// parser returns it.
type Chapter struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Seq     int    `json:"seq" yaml:"seq"` // 1-based encounter order
}

// Document is a fully segmented manuscript.
type Document struct {
	Title    string    `json:"title" yaml:"title"`
	Chapters []Chapter `json:"chapters" yaml:"chapters"`

	// WordCount counts content characters after markup-marker and
	// whitespace removal. The name is kept for continuity with the data
	// this system exchanges; it is a character count, not a token count.
	WordCount    int `json:"wordCount" yaml:"wordCount"`
	ChapterCount int `json:"chapterCount" yaml:"chapterCount"`
}

// CleanOptions toggles the rule groups Clean applies. Group order is
// fixed inside Clean; disabling a group skips it without reordering the
// rest.
type CleanOptions struct {
	StripWhitespace     bool
	StripHTML           bool
	StripMarkdown       bool
	StripPunctuation    bool
	StripURLs           bool
	StripEmoji          bool
	Normalize           bool // quote unification
	StripEmail          bool
	StripChapterNumbers bool
}

// SmartDefaults returns the options the smart preset uses: markup-safe
// cleanup that keeps markdown and punctuation intact.
func SmartDefaults() CleanOptions {
	return CleanOptions{
		StripWhitespace: true,
		StripHTML:       true,
		StripURLs:       true,
		StripEmoji:      true,
		Normalize:       true,
	}
}

// Preset names a fixed combination of cleaning rules.
type Preset string

// Cleaning presets.
const (
	// PresetBasic trims outer whitespace and nothing else.
	PresetBasic Preset = "basic"

	// PresetClean produces plain reading text: markup unwrapped, URLs,
	// e-mail addresses, and emoji removed, whitespace flattened.
	PresetClean Preset = "clean"

	// PresetPublish prepares prose for publication: invisible
	// characters removed, quotes unified, paragraphs re-indented with
	// full-width spaces.
	PresetPublish Preset = "publish"

	// PresetSmart applies SmartDefaults.
	PresetSmart Preset = "smart"
)

// Validate checks that the preset is one of the known names.
func (p Preset) Validate() error {
	switch p {
	case PresetBasic, PresetClean, PresetPublish, PresetSmart:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
}

// TextStats reports raw and cleaned measurements of a text. Totals,
// lines, and paragraphs describe the raw input; the character-class
// counts describe the text after the clean preset, so the two sides
// together say how much of the input is real content.
type TextStats struct {
	TotalChars     int     `json:"totalChars" yaml:"totalChars"`
	CleanChars     int     `json:"cleanChars" yaml:"cleanChars"`
	ChineseChars   int     `json:"chineseChars" yaml:"chineseChars"`
	EnglishChars   int     `json:"englishChars" yaml:"englishChars"`
	NumberChars    int     `json:"numberChars" yaml:"numberChars"`
	LineCount      int     `json:"lineCount" yaml:"lineCount"`
	ParagraphCount int     `json:"paragraphCount" yaml:"paragraphCount"`
	WordCount      int     `json:"wordCount" yaml:"wordCount"`
	RemovableChars int     `json:"removableChars" yaml:"removableChars"`
	RemovableRatio float64 `json:"removableRatio" yaml:"removableRatio"` // percentage, 2-decimal
}

// CleanResult pairs one batch item's cleaned text with its statistics.
type CleanResult struct {
	Cleaned string    `json:"cleaned" yaml:"cleaned"`
	Stats   TextStats `json:"stats" yaml:"stats"`
}
