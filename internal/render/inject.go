package render

import "strings"

// InjectCSS inserts a <style> block into an HTML page, before </head>
// when present, otherwise right after <body>, otherwise prepended.
// The CSS is sanitized so it cannot close the style block early.
func InjectCSS(page, css string) string {
	if css == "" {
		return page
	}

	styleBlock := "<style>" + sanitizeCSS(css) + "</style>"
	lower := strings.ToLower(page)

	if idx := strings.Index(lower, "</head>"); idx != -1 {
		return page[:idx] + styleBlock + page[idx:]
	}

	if idx := strings.Index(lower, "<body"); idx != -1 {
		if closeIdx := strings.Index(page[idx:], ">"); closeIdx != -1 {
			pos := idx + closeIdx + 1
			return page[:pos] + styleBlock + page[pos:]
		}
	}

	return styleBlock + page
}

// sanitizeCSS escapes sequences that could terminate the style block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
