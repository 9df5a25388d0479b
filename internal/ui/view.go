package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	runewidth "github.com/mattn/go-runewidth"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
)

// chromeHeight is the number of rows the non-viewport furniture uses:
// banner box, input line, help, status.
func chromeHeight(width int) int {
	return strings.Count(banner(), "\n") + 4
}

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}
	var b strings.Builder
	b.WriteString(banner())
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(zone.Mark("term.input", m.ti.View()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keymap))
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return zone.Scan(b.String())
}

// banner draws the welcome box. Widths are measured with
// xansi.StringWidth so styled lines still line up.
func banner() string {
	lines := []string{
		bannerStyle.Render("✻ riley@termfolio"),
		"",
		dimStyle.Render("type a command, or help to see what's here"),
	}
	max := 0
	for _, ln := range lines {
		if w := xansi.StringWidth(ln); w > max {
			max = w
		}
	}
	var sb strings.Builder
	sb.WriteString("╭" + strings.Repeat("─", max+2) + "╮\n")
	for _, ln := range lines {
		pad := max - xansi.StringWidth(ln)
		sb.WriteString("│ " + ln + strings.Repeat(" ", pad) + " │\n")
	}
	sb.WriteString("╰" + strings.Repeat("─", max+2) + "╯\n")
	return sb.String()
}

// statusBar renders a full-width status line: transient status on the
// left, scroll position on the right.
func (m model) statusBar() string {
	right := fmt.Sprintf(" %3.0f%% ", m.vp.ScrollPercent()*100)
	left := m.status
	inner := m.width
	if inner <= 0 {
		inner = 80
	}
	maxLeft := inner - xansi.StringWidth(right) - 1
	if maxLeft < 0 {
		maxLeft = 0
	}
	left = runewidth.Truncate(left, maxLeft, "…")
	pad := inner - xansi.StringWidth(left) - xansi.StringWidth(right)
	if pad < 0 {
		pad = 0
	}
	return statusStyle.Render(left + strings.Repeat(" ", pad) + right)
}
