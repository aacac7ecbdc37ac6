package textrules

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// markupChars are the literal marker characters excluded from content
// counts: heading, emphasis, inline-code, and link/image brackets.
const markupChars = "#*`[]()"

// StripMarkupChars removes the literal markup marker characters without
// touching the text they wrap. Coarser than StripMarkdown: a '*' used
// as plain text is removed too.
func StripMarkupChars(text string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(markupChars, r) {
			return -1
		}
		return r
	}, text)
}

// CountRunes returns the number of Unicode code points in text.
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// CountHan counts characters in the unified CJK ideograph block
// (U+4E00..U+9FA5), the range the target corpus uses.
func CountHan(text string) int {
	n := 0
	for _, r := range text {
		if r >= 0x4E00 && r <= 0x9FA5 {
			n++
		}
	}
	return n
}

// CountASCIILetters counts a-z and A-Z.
func CountASCIILetters(text string) int {
	n := 0
	for _, r := range text {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			n++
		}
	}
	return n
}

// CountDigits counts decimal digits, full-width forms included.
func CountDigits(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
