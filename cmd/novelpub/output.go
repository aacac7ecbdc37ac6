package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	novelpub "github.com/CunxiangYin/novel-publication"
)

// ErrInvalidOutputFormat reports an unsupported --format value.
var ErrInvalidOutputFormat = errors.New("invalid output format")

// resolveFormat picks the effective output format: flag over config
// over the given default.
func resolveFormat(flagValue, configValue, fallback string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return fallback
}

// renderDocument serializes a parsed document in the given format.
func renderDocument(doc *novelpub.Document, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding document: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return "", fmt.Errorf("encoding document: %w", err)
		}
		return string(data), nil
	case "text":
		return renderDocumentText(doc), nil
	default:
		return "", fmt.Errorf("%w: %q (expected json, yaml, or text)", ErrInvalidOutputFormat, format)
	}
}

// renderDocumentText formats a document as a human-readable summary.
func renderDocumentText(doc *novelpub.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title:      %s\n", doc.Title)
	fmt.Fprintf(&b, "Chapters:   %d\n", doc.ChapterCount)
	fmt.Fprintf(&b, "Characters: %d\n", doc.WordCount)
	for _, ch := range doc.Chapters {
		fmt.Fprintf(&b, "  %3d. %s\n", ch.Seq, ch.Title)
	}
	return b.String()
}

// renderStats serializes text statistics in the given format.
func renderStats(stats *novelpub.TextStats, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding stats: %w", err)
		}
		return string(data) + "\n", nil
	case "yaml":
		data, err := yaml.Marshal(stats)
		if err != nil {
			return "", fmt.Errorf("encoding stats: %w", err)
		}
		return string(data), nil
	case "text":
		return renderStatsText(stats), nil
	default:
		return "", fmt.Errorf("%w: %q (expected json, yaml, or text)", ErrInvalidOutputFormat, format)
	}
}

// renderStatsText formats statistics as aligned label/value lines.
func renderStatsText(stats *novelpub.TextStats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total chars:      %d\n", stats.TotalChars)
	fmt.Fprintf(&b, "Clean chars:      %d\n", stats.CleanChars)
	fmt.Fprintf(&b, "Chinese chars:    %d\n", stats.ChineseChars)
	fmt.Fprintf(&b, "English chars:    %d\n", stats.EnglishChars)
	fmt.Fprintf(&b, "Number chars:     %d\n", stats.NumberChars)
	fmt.Fprintf(&b, "Lines:            %d\n", stats.LineCount)
	fmt.Fprintf(&b, "Paragraphs:       %d\n", stats.ParagraphCount)
	fmt.Fprintf(&b, "Words:            %d\n", stats.WordCount)
	fmt.Fprintf(&b, "Removable chars:  %d\n", stats.RemovableChars)
	fmt.Fprintf(&b, "Removable ratio:  %.2f%%\n", stats.RemovableRatio)
	return b.String()
}
