package textrules

import (
	"regexp"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Precompiled removal patterns.
var (
	urlPattern   = regexp.MustCompile(`https?://[^\s\p{Z}]+`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)

	// Pictographic blocks: emoticons, symbols and pictographs, transport,
	// regional indicators, dingbats, enclosed characters. Han ideographs
	// are never matched.
	emojiPattern = regexp.MustCompile(`[\x{1F600}-\x{1F64F}\x{1F300}-\x{1F5FF}\x{1F680}-\x{1F6FF}\x{1F1E0}-\x{1F1FF}\x{2702}-\x{27B0}\x{24C2}\x{1F170}-\x{1F251}]+`)

	digitRunPattern       = regexp.MustCompile(`\d+`)
	chineseNumeralPattern = regexp.MustCompile(`[零一二三四五六七八九十百千万亿壹贰叁肆伍陆柒捌玖拾佰仟萬億]`)

	// Everything outside Han ideographs, ASCII letters, and digits.
	// The dynamic variant with a keep set is compiled per call.
	specialCharPattern = regexp.MustCompile(`[^\x{4E00}-\x{9FA5}a-zA-Z0-9]`)
)

// invisibleRemover drops zero-width and other non-printable characters.
// Newlines, carriage returns, and tabs survive so line and paragraph
// structure is preserved for the rules that depend on it.
var invisibleRemover = runes.Remove(runes.Predicate(isInvisible))

func isInvisible(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return unicode.In(r, unicode.C)
}

// StripURLs removes http and https URLs up to the next whitespace.
func StripURLs(text string) string {
	return urlPattern.ReplaceAllString(text, "")
}

// StripEmail removes email addresses.
func StripEmail(text string) string {
	return emailPattern.ReplaceAllString(text, "")
}

// StripEmoji removes pictographic symbols. Prose in any script passes
// through untouched.
func StripEmoji(text string) string {
	return emojiPattern.ReplaceAllString(text, "")
}

// StripNumbers removes decimal digit runs, and Chinese numerals unless
// keepChinese is set.
func StripNumbers(text string, keepChinese bool) string {
	text = digitRunPattern.ReplaceAllString(text, "")
	if !keepChinese {
		text = chineseNumeralPattern.ReplaceAllString(text, "")
	}
	return text
}

// StripSpecialChars removes everything outside Han ideographs, ASCII
// letters, and digits. Whitespace counts as special here. Characters in
// keep are preserved.
func StripSpecialChars(text, keep string) string {
	if keep == "" {
		return specialCharPattern.ReplaceAllString(text, "")
	}
	pattern := regexp.MustCompile(`[^\x{4E00}-\x{9FA5}a-zA-Z0-9` + regexp.QuoteMeta(keep) + `]`)
	return pattern.ReplaceAllString(text, "")
}

// StripInvisible removes zero-width characters (ZWSP, ZWNJ, ZWJ, BOM)
// and all other non-printable control and format characters, keeping
// newline, carriage return, and tab.
func StripInvisible(text string) string {
	cleaned, _, err := transform.String(invisibleRemover, text)
	if err != nil {
		return text
	}
	return cleaned
}
