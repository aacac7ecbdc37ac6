package render

import "strings"

// ChapterData carries one chapter for rendering.
type ChapterData struct {
	Title   string
	Content string
}

// DocumentData carries a full document for rendering.
type DocumentData struct {
	Title    string
	Chapters []ChapterData
}

// Markdown reconstructs canonical manuscript markdown: a level-1 title
// heading, then one level-2 heading per chapter followed by its content.
// Chapters appear in slice order. Re-segmenting the output recovers the
// same titles, order, and trimmed contents.
func Markdown(doc DocumentData) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(doc.Title)
	b.WriteString("\n")

	for _, ch := range doc.Chapters {
		b.WriteString("\n## ")
		b.WriteString(ch.Title)
		b.WriteString("\n")
		if ch.Content != "" {
			b.WriteString("\n")
			b.WriteString(ch.Content)
			b.WriteString("\n")
		}
	}
	return b.String()
}
