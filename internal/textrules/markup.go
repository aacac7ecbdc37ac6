package textrules

import "regexp"

// Precompiled markup patterns.
var (
	// HTML tags, single line only; a '>' inside an attribute value ends
	// the match early, which is acceptable for manuscript cleanup.
	htmlTagPattern = regexp.MustCompile(`<.*?>`)

	// Markdown constructs, unwrapped in a fixed order. Images must be
	// handled before links or the link rule consumes the bracket part of
	// the image syntax and leaves a stray "!".
	headingPattern    = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	emphasisPattern   = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	underscorePattern = regexp.MustCompile(`_{1,3}([^_]+)_{1,3}`)
	imagePattern      = regexp.MustCompile(`!\[([^\]]*)\]\([^)]+\)`)
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	codeFencePattern  = regexp.MustCompile("```[^`]*```")
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	blockquotePattern = regexp.MustCompile(`(?m)^>\s+`)
	bulletPattern     = regexp.MustCompile(`(?m)^[*\-+]\s+`)
	numberedPattern   = regexp.MustCompile(`(?m)^\d+\.\s+`)
	rulerPattern      = regexp.MustCompile(`(?m)^[*\-_]{3,}$`)

	// Line-leading chapter numbering in the formats the corpus uses.
	chapterNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^第[零一二三四五六七八九十百千万\d]+章\s*`),
		regexp.MustCompile(`(?mi)^chapter\s+\d+\s*`),
		regexp.MustCompile(`(?m)^\d+\.\s*`),
		regexp.MustCompile(`(?m)^第\d+节\s*`),
		regexp.MustCompile(`(?m)^第[零一二三四五六七八九十百千万]+节\s*`),
	}
)

// StripHTML removes HTML tag spans. Entities and tag contents are left
// alone; this targets pasted web markup, not full HTML sanitizing.
func StripHTML(text string) string {
	return htmlTagPattern.ReplaceAllString(text, "")
}

// StripMarkdown removes markdown syntax. With keepText the wrapped text
// survives (headings keep their line, links keep their label, image alt
// text is dropped with the image); without it the whole input is
// discarded, for callers that want structure destroyed entirely.
// The result is whitespace-collapsed onto a single line.
func StripMarkdown(text string, keepText bool) string {
	if !keepText {
		return ""
	}

	text = headingPattern.ReplaceAllString(text, "")
	text = emphasisPattern.ReplaceAllString(text, "$1")
	text = underscorePattern.ReplaceAllString(text, "$1")
	text = imagePattern.ReplaceAllString(text, "")
	text = linkPattern.ReplaceAllString(text, "$1")
	text = codeFencePattern.ReplaceAllString(text, "")
	text = inlineCodePattern.ReplaceAllString(text, "$1")
	text = blockquotePattern.ReplaceAllString(text, "")
	text = bulletPattern.ReplaceAllString(text, "")
	text = numberedPattern.ReplaceAllString(text, "")
	text = rulerPattern.ReplaceAllString(text, "")

	return CollapseWhitespace(text)
}

// StripChapterNumbers removes line-leading chapter numbering (第N章,
// 第N节, "Chapter N", "N.") while keeping any title text that follows
// on the same line.
func StripChapterNumbers(text string) string {
	for _, p := range chapterNumberPatterns {
		text = p.ReplaceAllString(text, "")
	}
	return text
}
