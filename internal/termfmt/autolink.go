package termfmt

import "regexp"

// urlPattern matches a bare URL as a maximal run of non-whitespace after
// the scheme. Deliberately simple: trailing punctuation ("see https://x.")
// is included in the link. Stopping at the first whitespace is the
// contract here, not an oversight.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// urlSpan is one bare-URL occurrence inside a plain-text fragment.
type urlSpan struct {
	url   string
	start int
	end   int
}

// findBareURLs locates http(s) URLs in text. The assembler only calls
// this on plain text outside resolved hyperlinks and icon tokens; link
// display text gets icon resolution but never nested autolinks.
func findBareURLs(text string) []urlSpan {
	matches := urlPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	spans := make([]urlSpan, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, urlSpan{url: text[m[0]:m[1]], start: m[0], end: m[1]})
	}
	return spans
}
