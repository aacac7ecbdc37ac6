package textrules

import (
	"strings"
	"testing"
)

func TestStripURLs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "http url", in: "see http://example.com now", want: "see  now"},
		{name: "https url", in: "link https://x.com here", want: "link  here"},
		{name: "url at end", in: "读 https://a.b/c?d=1", want: "读 "},
		{name: "consumes until whitespace", in: "见https://x.com然后 停", want: "见 停"},
		{name: "no url", in: "nothing here", want: "nothing here"},
		{name: "bare domain kept", in: "example.com stays", want: "example.com stays"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripURLs(tt.in); got != tt.want {
				t.Errorf("StripURLs(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple address", in: "mail me at a@b.com please", want: "mail me at  please"},
		{name: "dotted address", in: "foo.bar+x@ex-ample.co.uk", want: ""},
		{name: "no address", in: "a@b is not email", want: "a@b is not email"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripEmail(tt.in); got != tt.want {
				t.Errorf("StripEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripEmoji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "emoticon", in: "hi😀there", want: "hithere"},
		{name: "chinese prose untouched", in: "她笑了😀，很开心", want: "她笑了，很开心"},
		{name: "transport symbol", in: "开🚗走", want: "开走"},
		{name: "flag pair", in: "去🇨🇳旅行", want: "去旅行"},
		{name: "dingbat", in: "剪✂纸", want: "剪纸"},
		{name: "enclosed ideograph", in: "x🈚y", want: "xy"},
		{name: "run of emoji", in: "哇😀😀😀！", want: "哇！"},
		{name: "plain ascii", in: "no emoji", want: "no emoji"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripEmoji(tt.in); got != tt.want {
				t.Errorf("StripEmoji(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		in          string
		keepChinese bool
		want        string
	}{
		{name: "arabic digits", in: "第1章共300页", keepChinese: true, want: "第章共页"},
		{name: "chinese numerals dropped", in: "一共三十人", keepChinese: false, want: "共人"},
		{name: "chinese numerals kept", in: "一共三十人", keepChinese: true, want: "一共三十人"},
		{name: "financial forms dropped", in: "壹佰元", keepChinese: false, want: "元"},
		{name: "mixed", in: "第12章 二十三", keepChinese: false, want: "第章 "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripNumbers(tt.in, tt.keepChinese); got != tt.want {
				t.Errorf("StripNumbers(%q, %v) = %q, want %q", tt.in, tt.keepChinese, got, tt.want)
			}
		})
	}
}

func TestStripSpecialChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		keep string
		want string
	}{
		{name: "symbols and whitespace removed", in: "你好, world! 123", keep: "", want: "你好world123"},
		{name: "keep set honored", in: "你好, world! 123", keep: "!", want: "你好world!123"},
		{name: "keep regex metachar", in: "a.b.c", keep: ".", want: "a.b.c"},
		{name: "pure content", in: "纯文本abc123", keep: "", want: "纯文本abc123"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripSpecialChars(tt.in, tt.keep); got != tt.want {
				t.Errorf("StripSpecialChars(%q, %q) = %q, want %q", tt.in, tt.keep, got, tt.want)
			}
		})
	}
}

func TestStripInvisible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "zero width space", in: "a\u200Bb", want: "ab"},
		{name: "zero width joiners", in: "a\u200C\u200Db", want: "ab"},
		{name: "byte order mark", in: "\uFEFF你好", want: "你好"},
		{name: "control chars", in: "a\x07b\x1bc", want: "abc"},
		{name: "newline survives", in: "第一段\n\n第二段", want: "第一段\n\n第二段"},
		{name: "tab and cr survive", in: "a\tb\r\nc", want: "a\tb\r\nc"},
		{name: "clean text untouched", in: "普通文本 plain", want: "普通文本 plain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripInvisible(tt.in); got != tt.want {
				t.Errorf("StripInvisible(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripInvisibleIdempotent(t *testing.T) {
	t.Parallel()

	in := "a\u200Bb\x07c\nd"
	once := StripInvisible(in)
	if twice := StripInvisible(once); twice != once {
		t.Errorf("StripInvisible not idempotent: %q then %q", once, twice)
	}
	if strings.ContainsRune(once, '\u200B') {
		t.Errorf("zero-width space survived: %q", once)
	}
}
