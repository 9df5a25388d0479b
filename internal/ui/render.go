package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"termfolio/internal/icons"
	"termfolio/internal/termfmt"
)

// colorTable maps the formatter's named colors to ANSI palette indices.
var colorTable = map[termfmt.Color]string{
	"black": "0", "red": "1", "green": "2", "yellow": "3",
	"blue": "4", "magenta": "5", "cyan": "6", "white": "7",
	"bright-black": "8", "bright-red": "9", "bright-green": "10",
	"bright-yellow": "11", "bright-blue": "12", "bright-magenta": "13",
	"bright-cyan": "14", "bright-white": "15",
}

// styleFor converts a fragment style into a lipgloss style. "Large" has
// no cell-grid analogue, so it renders as bold+underline to keep the
// emphasis visible.
func styleFor(s termfmt.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Large {
		st = st.Bold(true).Underline(true)
	}
	if c, ok := colorTable[s.Foreground]; ok {
		st = st.Foreground(lipgloss.Color(c))
	}
	if c, ok := colorTable[s.Background]; ok {
		st = st.Background(lipgloss.Color(c))
	}
	return st
}

// Renderer draws fragment lines as ANSI text. This is the injected
// renderer collaborator for the formatting engine: icon keys resolve to
// glyphs through the icons package, links re-emit OSC-8 sequences and,
// when MarkZones is set, get bubblezone marks so the TUI can hit-test
// mouse clicks. Zone ids are ZonePrefix + fragment key; Links records
// id → url for the click handler.
type Renderer struct {
	MarkZones  bool
	ZonePrefix string
	Links      map[string]string
}

func (r *Renderer) RenderLines(lines []termfmt.Line) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = r.renderLine(line)
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) renderLine(line termfmt.Line) string {
	var b strings.Builder
	for _, f := range line {
		b.WriteString(r.renderFragment(f))
	}
	return b.String()
}

func (r *Renderer) renderFragment(f termfmt.Fragment) string {
	st := styleFor(f.Style)
	switch f.Kind {
	case termfmt.KindText:
		return st.Render(f.Text)
	case termfmt.KindIcon:
		if g, ok := icons.Glyph(f.IconKey); ok {
			return st.Render(g)
		}
		// Registry and renderer disagree on the key; degrade like an
		// unknown icon rather than dropping the label.
		return st.Render("[icon] " + f.Label)
	case termfmt.KindIconFallback:
		return st.Render("[icon] " + f.Label)
	case termfmt.KindLink:
		var inner strings.Builder
		for _, c := range f.Children {
			inner.WriteString(r.renderFragment(c))
		}
		s := hyperlink(f.URL, inner.String())
		if r.MarkZones {
			id := r.ZonePrefix + f.Key
			if r.Links == nil {
				r.Links = map[string]string{}
			}
			r.Links[id] = f.URL
			s = zone.Mark(id, s)
		}
		return s
	}
	return ""
}

// hyperlink wraps text in an OSC-8 sequence for terminals that support
// clickable links; others ignore the envelope and show the text.
func hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
