package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
)

// Init satisfies tea.Model; the browser has no initial commands.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update handles Bubbletea messages and updates browser state.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.help.Width = msg.Width
		return b, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keys.Quit):
			return b, tea.Quit
		case key.Matches(msg, b.keys.Prev):
			if len(b.configs) > 0 {
				b.index = (b.index - 1 + len(b.configs)) % len(b.configs)
			}
			return b, nil
		case key.Matches(msg, b.keys.Next):
			if len(b.configs) > 0 {
				b.index = (b.index + 1) % len(b.configs)
			}
			return b, nil
		case key.Matches(msg, b.keys.Mode):
			if b.mode == scheme.ModeDark {
				b.mode = scheme.ModeLight
			} else {
				b.mode = scheme.ModeDark
			}
			b.reload()
			return b, nil
		}
	}

	return b, nil
}
