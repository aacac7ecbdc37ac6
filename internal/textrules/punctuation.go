package textrules

import (
	"regexp"
	"strings"
)

// Punctuation category names. Categories are disjoint and cumulative;
// stripping is order-independent across them.
const (
	PunctChinese = "chinese"
	PunctEnglish = "english"
	PunctSpecial = "special"
)

// punctClasses maps each category to its character class.
var punctClasses = map[string]*regexp.Regexp{
	PunctChinese: regexp.MustCompile(`[。，、；：？！“”‘’（）《》【】…—]`),
	PunctEnglish: regexp.MustCompile(`[.,;:?!'"()\[\]{}<>]`),
	PunctSpecial: regexp.MustCompile("[@#$%^&*+=|\\\\~`]"),
}

// DefaultPunctCategories are the categories stripped when the caller
// names none: native wide punctuation plus Latin punctuation, with the
// symbol class left alone.
var DefaultPunctCategories = []string{PunctChinese, PunctEnglish}

// quoteReplacer folds curly and corner quotation marks onto the straight
// ASCII pair. Angle 《》 marks are book-title punctuation, not quotes,
// and are not touched here.
var quoteReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"「", `"`, "」", `"`,
	"『", `"`, "』", `"`,
)

// widePunctReplacer maps wide punctuation to narrow equivalents.
// Only the doubled em-dash maps to "--"; a lone em-dash is left alone.
var widePunctReplacer = strings.NewReplacer(
	"，", ",",
	"。", ".",
	"！", "!",
	"？", "?",
	"；", ";",
	"：", ":",
	"（", "(",
	"）", ")",
	"【", "[",
	"】", "]",
	"、", ",",
	"…", "...",
	"——", "--",
)

// StripPunctuation removes the characters of the named categories.
// Unknown category names are ignored. With no categories it applies
// DefaultPunctCategories.
func StripPunctuation(text string, categories ...string) string {
	if len(categories) == 0 {
		categories = DefaultPunctCategories
	}
	for _, category := range categories {
		if class, ok := punctClasses[category]; ok {
			text = class.ReplaceAllString(text, "")
		}
	}
	return text
}

// NormalizeQuotes unifies quotation variants onto straight ASCII quotes.
func NormalizeQuotes(text string) string {
	return quoteReplacer.Replace(text)
}

// NormalizePunctuation converts wide punctuation to its narrow form
// using the fixed table above. It converts, never removes.
func NormalizePunctuation(text string) string {
	return widePunctReplacer.Replace(text)
}
