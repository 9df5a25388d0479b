package termfmt

import (
	"fmt"
	"regexp"
	"strconv"
)

// osc8Pattern matches a complete OSC-8 hyperlink triple:
// begin (ESC ] 8 ;; url ESC \), display text, end (ESC ] 8 ;; ESC \).
// A truncated sequence fails to match and is left for the SGR pass to
// treat as literal text.
var osc8Pattern = regexp.MustCompile(`\x1b\]8;;([^\x1b]*)\x1b\\(.*?)\x1b\]8;;\x1b\\`)

// placeholderPattern recognizes the tokens substituted for extracted
// hyperlinks. The token is word-characters only so it survives SGR slicing
// and cannot be picked up by the icon or URL scanners.
var placeholderPattern = regexp.MustCompile(`__HYPERLINK_(\d+)__`)

// hyperlink records one extracted OSC-8 link for a single line.
type hyperlink struct {
	url         string
	displayText string
	placeholder string
}

// extractHyperlinks replaces every OSC-8 sequence in line with an ordinal
// placeholder and returns the rewritten line plus the records, in
// left-to-right order. The ordinal is scoped to this call so repeated
// formatting of the same input is deterministic. Runs before SGR scanning
// so a color change inside link text cannot split a link in two.
func extractHyperlinks(line string) (string, []hyperlink) {
	matches := osc8Pattern.FindAllStringSubmatchIndex(line, -1)
	if len(matches) == 0 {
		return line, nil
	}
	links := make([]hyperlink, 0, len(matches))
	var out []byte
	cursor := 0
	for k, m := range matches {
		link := hyperlink{
			url:         line[m[2]:m[3]],
			displayText: line[m[4]:m[5]],
			placeholder: fmt.Sprintf("__HYPERLINK_%d__", k),
		}
		out = append(out, line[cursor:m[0]]...)
		out = append(out, link.placeholder...)
		cursor = m[1]
		links = append(links, link)
	}
	out = append(out, line[cursor:]...)
	return string(out), links
}

// lookupPlaceholder resolves a matched placeholder ordinal back to its
// record. A stray literal that happens to look like a placeholder but has
// no record is reported as not found and stays visible text.
func lookupPlaceholder(links []hyperlink, ordinal string) (hyperlink, bool) {
	k, err := strconv.Atoi(ordinal)
	if err != nil || k < 0 || k >= len(links) {
		return hyperlink{}, false
	}
	return links[k], true
}
