// Package termfmt converts terminal command output — plain text with
// embedded ANSI SGR styling, OSC-8 hyperlinks, bare URLs and
// [[icon:source/name|label]] tokens — into ordered lists of styled,
// renderer-agnostic fragments.
//
// Format is a pure function of its input and the (read-only) icon
// registry: no shared state, no I/O, safe for concurrent callers, safe to
// memoize on the raw input string. Malformed markup is never an error; it
// degrades to literal text.
package termfmt

import "strings"

const (
	// MaxInputRunes is the hard input cap, applied before any scanning so
	// every pass operates on a bounded string. Content beyond it is
	// dropped and replaced with a truncation marker.
	MaxInputRunes = 50000

	truncationNotice = "[output truncated]"
)

// truncationStyle marks the truncation notice as a warning.
var truncationStyle = Style{Bold: true, Foreground: "bright-yellow"}

// Format runs the whole pipeline over input: cap, split into lines, and
// per line extract hyperlinks, slice SGR style runs, resolve icon tokens
// and autolink bare URLs. The returned fragments carry deterministic keys.
func Format(input string, reg Registry) []Line {
	input, truncated := capInput(input)
	raw := strings.Split(input, "\n")
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = formatLine(l, i, reg)
	}
	if truncated {
		lines = append(lines, Line{{
			Kind:  KindText,
			Key:   "truncated",
			Style: truncationStyle,
			Text:  truncationNotice,
		}})
	}
	return lines
}

// capInput enforces MaxInputRunes. The byte-length check is a fast path:
// rune count never exceeds byte count.
func capInput(s string) (string, bool) {
	if len(s) <= MaxInputRunes {
		return s, false
	}
	r := []rune(s)
	if len(r) <= MaxInputRunes {
		return s, false
	}
	return string(r[:MaxInputRunes]), true
}

// formatLine processes one line. Hyperlinks must come out before SGR
// scanning so a color change inside link text cannot split the link;
// icons and URLs are resolved last, inside each style run. Reordering
// these passes would break icon tokens nested in link display text.
func formatLine(raw string, lineIdx int, reg Registry) Line {
	substituted, links := extractHyperlinks(raw)
	runs := scanStyles(substituted)
	frags := Line{}
	for ri, run := range runs {
		frags = append(frags, assembleRun(run, links, lineIdx, ri, reg)...)
	}
	return frags
}

// assembler hands out position+content derived keys while one run is
// being reassembled. Scoped to a single run of a single call; nothing
// here outlives Format.
type assembler struct {
	line int
	run  int
	ord  int
	reg  Registry
}

func (a *assembler) key(content string) string {
	k := fragmentKey(a.line, a.run, a.ord, content)
	a.ord++
	return k
}

// assembleRun splits a style run around hyperlink placeholders,
// reattaches each link's display text as nested children, and runs
// icon/URL processing over everything else. A placeholder-shaped literal
// with no matching record stays visible text.
func assembleRun(run styledRun, links []hyperlink, lineIdx, runIdx int, reg Registry) []Fragment {
	a := &assembler{line: lineIdx, run: runIdx, reg: reg}
	text := run.text
	var out []Fragment
	cursor := 0
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		link, ok := lookupPlaceholder(links, text[m[2]:m[3]])
		if !ok {
			continue
		}
		if m[0] > cursor {
			out = append(out, a.inline(text[cursor:m[0]], run.style, true)...)
		}
		children := a.inline(stripSGR(link.displayText), run.style, false)
		out = append(out, Fragment{
			Kind:     KindLink,
			Key:      a.key("link:" + link.url),
			Style:    run.style,
			URL:      link.url,
			Children: children,
		})
		cursor = m[1]
	}
	if cursor < len(text) {
		out = append(out, a.inline(text[cursor:], run.style, true)...)
	}
	return out
}

// inline turns run text into fragments: icon tokens always resolve, bare
// URLs only outside link display text (a link never nests another link).
func (a *assembler) inline(text string, style Style, allowLinks bool) []Fragment {
	var out []Fragment
	cursor := 0
	for _, tok := range findIconTokens(text, a.reg) {
		if tok.start > cursor {
			out = append(out, a.plain(text[cursor:tok.start], style, allowLinks)...)
		}
		if tok.resolved {
			out = append(out, Fragment{
				Kind:    KindIcon,
				Key:     a.key("icon:" + tok.key),
				Style:   style,
				IconKey: tok.key,
				Label:   tok.label,
			})
		} else {
			out = append(out, Fragment{
				Kind:  KindIconFallback,
				Key:   a.key("fallback:" + tok.label),
				Style: style,
				Label: tok.label,
			})
		}
		cursor = tok.end
	}
	if cursor < len(text) {
		out = append(out, a.plain(text[cursor:], style, allowLinks)...)
	}
	return out
}

// plain emits text fragments, wrapping bare URLs as links when allowed.
func (a *assembler) plain(text string, style Style, allowLinks bool) []Fragment {
	if text == "" {
		return nil
	}
	if !allowLinks {
		return []Fragment{a.textFragment(text, style)}
	}
	var out []Fragment
	cursor := 0
	for _, span := range findBareURLs(text) {
		if span.start > cursor {
			out = append(out, a.textFragment(text[cursor:span.start], style))
		}
		child := a.textFragment(span.url, style)
		out = append(out, Fragment{
			Kind:     KindLink,
			Key:      a.key("link:" + span.url),
			Style:    style,
			URL:      span.url,
			Children: []Fragment{child},
		})
		cursor = span.end
	}
	if cursor < len(text) {
		out = append(out, a.textFragment(text[cursor:], style))
	}
	return out
}

func (a *assembler) textFragment(text string, style Style) Fragment {
	return Fragment{Kind: KindText, Key: a.key("text:" + text), Style: style, Text: text}
}
