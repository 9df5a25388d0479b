package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sahilm/fuzzy"

	"termfolio/internal/content"
	"termfolio/internal/icons"
	"termfolio/internal/system"
	"termfolio/internal/termfmt"
)

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			if zone.Get("term.input").InBounds(msg) {
				if !m.ti.Focused() {
					m.ti.Focus()
				}
				return m, nil
			}
			for id, url := range m.links {
				if zone.Get(id).InBounds(msg) {
					m.status = "opening " + url
					if err := openBrowser(url); err != nil {
						m.status = "open failed: " + err.Error()
					}
					return m, nil
				}
			}
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - chromeHeight(m.width)
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.vp = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = vpHeight
		}
		inner := m.width - 4
		if inner < 10 {
			inner = 10
		}
		m.ti.Width = inner
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.runCommand(strings.TrimSpace(m.ti.Value()))
		case "up":
			if len(m.recall) > 0 && m.recallN > 0 {
				m.recallN--
				m.ti.SetValue(m.recall[m.recallN])
				m.ti.CursorEnd()
			}
			return m, nil
		case "down":
			if m.recallN < len(m.recall) {
				m.recallN++
				if m.recallN == len(m.recall) {
					m.ti.SetValue("")
				} else {
					m.ti.SetValue(m.recall[m.recallN])
					m.ti.CursorEnd()
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

// runCommand executes a terminal command and appends its rendered output.
func (m model) runCommand(name string) (tea.Model, tea.Cmd) {
	if name == "" {
		return m, nil
	}
	m.ti.SetValue("")
	m.recall = append(m.recall, name)
	m.recallN = len(m.recall)
	m.status = ""

	if strings.EqualFold(name, "clear") {
		m.history = nil
		m.links = map[string]string{}
		m.refreshViewport()
		return m, nil
	}

	out, found := m.data.Respond(name)
	if !found {
		out = content.NotFound(name)
	}
	system.Logger.Debug("terminal command", "command", name, "found", found)

	r := &Renderer{MarkZones: true, ZonePrefix: fmt.Sprintf("e%d.", len(m.history))}
	rendered := r.RenderLines(termfmt.Format(out, icons.Default))
	for id, url := range r.Links {
		m.links[id] = url
	}
	m.history = append(m.history, entry{command: name, rendered: rendered})
	m.refreshViewport()
	return m, nil
}

// refreshSuggestions fuzzy-ranks command names against the current input.
func (m *model) refreshSuggestions() {
	input := strings.TrimSpace(m.ti.Value())
	if input == "" {
		m.ti.SetSuggestions(m.commands)
		return
	}
	matches := fuzzy.Find(input, m.commands)
	if len(matches) == 0 {
		m.ti.SetSuggestions(m.commands)
		return
	}
	ranked := make([]string, 0, len(matches))
	for _, match := range matches {
		ranked = append(ranked, m.commands[match.Index])
	}
	m.ti.SetSuggestions(ranked)
}

// refreshViewport rebuilds the scrollback from history and pins the view
// to the bottom, like a real terminal.
func (m *model) refreshViewport() {
	if !m.ready {
		return
	}
	var b strings.Builder
	for i, e := range m.history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(promptStyle.Render("❯ ") + e.command + "\n")
		b.WriteString(e.rendered + "\n")
	}
	m.vp.SetContent(b.String())
	m.vp.GotoBottom()
}
