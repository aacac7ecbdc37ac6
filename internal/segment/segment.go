// Package segment turns loosely structured manuscript markdown into a
// title and an ordered chapter list. It never fails: any input yields
// some title and some, possibly empty, chapter sequence.
package segment

import (
	"strings"
	"unicode"

	"github.com/CunxiangYin/novel-publication/internal/textrules"
)

// Chapter is one segmented unit of a manuscript.
type Chapter struct {
	Title   string
	Content string
	Seq     int
}

// scanState tracks whether a chapter is currently accumulating.
type scanState int

const (
	stateNoChapter scanState = iota
	stateInChapter
)

// ExtractTitle recovers the work title. Preferred source is the first
// level-1 heading with content. Legacy exports carry the title on the
// third line instead, so that is the fallback: third line with markers
// and whitespace stripped. Returns ok=false when neither tier yields a
// non-empty title.
func ExtractTitle(text string) (string, bool) {
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "##") {
			continue
		}
		if title := strings.TrimSpace(strings.TrimLeft(trimmed, "#")); title != "" {
			return title, true
		}
	}

	if len(lines) >= 3 {
		if title := strings.TrimSpace(strings.ReplaceAll(lines[2], "#", "")); title != "" {
			return title, true
		}
	}

	return "", false
}

// ExtractChapters scans for level-2 headings and collects the lines
// between them. Lines before the first heading belong to no chapter and
// are discarded. Seq is assigned 1-based in encounter order.
func ExtractChapters(text string) []Chapter {
	var (
		chapters []Chapter
		state    = stateNoChapter
		title    string
		buf      []string
	)

	flush := func() {
		chapters = append(chapters, Chapter{
			Title:   title,
			Content: strings.TrimSpace(strings.Join(buf, "\n")),
			Seq:     len(chapters) + 1,
		})
	}

	for _, line := range strings.Split(text, "\n") {
		if heading, ok := chapterBoundary(line); ok {
			if state == stateInChapter {
				flush()
			}
			state = stateInChapter
			title = heading
			buf = buf[:0]
			continue
		}
		if state == stateInChapter {
			buf = append(buf, line)
		}
	}
	if state == stateInChapter {
		flush()
	}

	return chapters
}

// chapterBoundary reports whether line opens a chapter: after leading
// whitespace, exactly two heading markers, a separator, and a non-empty
// title. Three or more markers is a deeper heading and stays content.
func chapterBoundary(line string) (string, bool) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, "##") {
		return "", false
	}
	rest := trimmed[2:]
	if rest == "" || rest[0] == '#' {
		return "", false
	}
	if rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}
	title := strings.TrimSpace(rest)
	if title == "" {
		return "", false
	}
	return title, true
}

// ContentChars counts the characters of text that survive markup marker
// removal and whitespace removal. A character count, not a word count:
// no language-aware segmentation happens here.
func ContentChars(text string) int {
	stripped := textrules.StripMarkupChars(text)
	stripped = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, stripped)
	return textrules.CountRunes(stripped)
}
