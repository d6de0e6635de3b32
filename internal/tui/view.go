package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/chromatone/internal/scheme"
)

// View renders the configuration under the cursor as labelled swatch rows.
func (b Browser) View() string {
	var sections []string

	title := titleStyle.Render(fmt.Sprintf("chromatone • %s mode", b.mode))
	sections = append(sections, title)

	switch {
	case b.loadErr != nil:
		sections = append(sections, errorStyle.Render(b.loadErr.Error()))
	case len(b.configs) == 0:
		sections = append(sections, emptyStyle.Render(
			"no canonical scheme exists for this palette; try the other mode"))
	default:
		counter := counterStyle.Render(fmt.Sprintf("configuration %d of %d", b.index+1, len(b.configs)))
		sections = append(sections, counter)
		sections = append(sections, sectionStyle.Render("Tokens"), b.renderTokens())
	}

	sections = append(sections, "", b.help.View(b.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b Browser) renderTokens() string {
	cfg, ok := b.Current()
	if !ok {
		return ""
	}

	rows := make([]string, 0, len(scheme.TokenOrder)+1)
	for _, token := range scheme.TokenOrder {
		c := cfg.Tokens[token]
		rows = append(rows, renderRow(string(token), c.Name, c.Hex()))
	}
	rows = append(rows, renderRow(string(scheme.TokenDestructive), b.destructive.Name, b.destructive.Hex()))

	return strings.Join(rows, "\n")
}

func renderRow(token, name, hex string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		tokenStyle.Render(token),
		swatchStyle(hex).String(),
		hexStyle.Render(fmt.Sprintf("%s %s", hex, name)),
	)
}
