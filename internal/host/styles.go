package host

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	footer  lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	p := theme.Palette
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary.Base).MarginBottom(1),
		success: lipgloss.NewStyle().Foreground(p.Primary.Base).MarginTop(1),
		failure: lipgloss.NewStyle().Foreground(p.Danger.Base).Bold(true).MarginTop(1),
		footer:  lipgloss.NewStyle().MarginTop(1),
	}
}
