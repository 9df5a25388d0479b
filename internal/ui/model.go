// Package ui is the interactive terminal pane: a prompt with command
// suggestions over the same canned command set the HTTP API serves, with
// output rendered through the formatting engine.
package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/content"
)

// entry is one executed command with its rendered output block.
type entry struct {
	command  string
	rendered string
}

type keymap struct{}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "history")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
func (k keymap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type model struct {
	ti     textinput.Model
	help   help.Model
	vp     viewport.Model
	keymap keymap

	data     content.File
	commands []string

	history []entry
	recall  []string // raw command strings for ↑/↓ recall
	recallN int      // cursor into recall; len(recall) = editing fresh input

	links  map[string]string // zone id → url for rendered link fragments
	status string

	width, height int
	ready         bool
}

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

// InitialModel loads content and prepares the prompt.
func InitialModel() model {
	data, err := content.Load()
	if err != nil {
		// Unreadable content file: fall back to seed so the pane still
		// works, and surface the problem in the status line.
		data = content.Seed()
	}

	ti := textinput.New()
	ti.Placeholder = "try: help"
	ti.Prompt = "❯ "
	ti.PromptStyle = promptStyle
	ti.Cursor.Style = promptStyle
	ti.CharLimit = 120
	ti.ShowSuggestions = true
	ti.Focus()

	m := model{
		ti:       ti,
		help:     help.New(),
		keymap:   keymap{},
		data:     data,
		commands: data.CommandNames(),
		links:    map[string]string{},
		recallN:  0,
	}
	if err != nil {
		m.status = "content.json unreadable, using seed content"
	}
	m.ti.SetSuggestions(m.commands)
	return m
}
