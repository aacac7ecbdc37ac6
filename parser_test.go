package novelpub

import (
	"context"
	"reflect"
	"testing"
)

func TestParserParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		in            string
		wantTitle     string
		wantChapters  []Chapter
		wantWordCount int
	}{
		{
			name:      "two chapters",
			in:        "# My Novel\n\n## Chapter One\nHello world.\n\n## Chapter Two\nGoodbye.",
			wantTitle: "My Novel",
			wantChapters: []Chapter{
				{Title: "Chapter One", Content: "Hello world.", Seq: 1},
				{Title: "Chapter Two", Content: "Goodbye.", Seq: 2},
			},
			wantWordCount: 46,
		},
		{
			name:          "markup excluded from count",
			in:            "# Title\n**bold** text",
			wantTitle:     "Title",
			wantWordCount: 13,
		},
		{
			name:          "legacy third line title",
			in:            "某站导出\n作者：佚名\n### 挽春风\n正文开始",
			wantTitle:     "挽春风",
			wantWordCount: 16,
		},
		{
			name:          "empty input",
			in:            "",
			wantTitle:     DefaultFallbackTitle,
			wantWordCount: 0,
		},
		{
			name:          "no markers at all",
			in:            "just\ntwo",
			wantTitle:     DefaultFallbackTitle,
			wantWordCount: 7,
		},
		{
			// No level-1 heading, three lines: the legacy tier takes
			// the third line as the title.
			name:      "preamble counted but not a chapter",
			in:        "前言文字\n## 第一章 风起\n正文",
			wantTitle: "正文",
			wantChapters: []Chapter{
				{Title: "第一章 风起", Content: "正文", Seq: 1},
			},
			wantWordCount: 11,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := NewParser().Parse(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if doc.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", doc.Title, tt.wantTitle)
			}
			if len(tt.wantChapters) > 0 && !reflect.DeepEqual(doc.Chapters, tt.wantChapters) {
				t.Errorf("Chapters = %+v, want %+v", doc.Chapters, tt.wantChapters)
			}
			if doc.WordCount != tt.wantWordCount {
				t.Errorf("WordCount = %d, want %d", doc.WordCount, tt.wantWordCount)
			}
			if doc.ChapterCount != len(doc.Chapters) {
				t.Errorf("ChapterCount = %d, want %d", doc.ChapterCount, len(doc.Chapters))
			}
		})
	}
}

func TestParserSequenceDense(t *testing.T) {
	t.Parallel()

	in := "## a\nx\n### deeper\n## b\n## c\ny\n#### deepest\n## d"
	doc, err := NewParser().Parse(context.Background(), in)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Chapters) != 4 {
		t.Fatalf("len(Chapters) = %d, want 4", len(doc.Chapters))
	}
	for i, ch := range doc.Chapters {
		if ch.Seq != i+1 {
			t.Errorf("Chapters[%d].Seq = %d, want %d", i, ch.Seq, i+1)
		}
	}
}

func TestWithFallbackTitle(t *testing.T) {
	t.Parallel()

	parser := NewParser(WithFallbackTitle("untitled work"))
	doc, err := parser.Parse(context.Background(), "no headings here")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.Title != "untitled work" {
		t.Errorf("Title = %q, want custom fallback", doc.Title)
	}
}

func TestWithFallbackTitlePanicsOnEmpty(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithFallbackTitle(\"\") did not panic")
		}
	}()
	WithFallbackTitle("")
}

func TestParserContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewParser().Parse(ctx, "# T"); err == nil {
		t.Error("Parse() with cancelled context returned nil error")
	}
}
