package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders a completion bar followed by a "done/total" count.
type Progress struct {
	BaseComponent
	total int
	done  int
	width int
	label string
}

// NewProgress creates a progress component for the given total.
func NewProgress(total int) *Progress {
	return &Progress{
		BaseComponent: NewBaseComponent(),
		total:         total,
		width:         20,
	}
}

// WithCompleted sets how many items are done.
func (p *Progress) WithCompleted(done int) *Progress {
	p.done = done
	return p
}

// WithWidth sets the bar width in cells.
func (p *Progress) WithWidth(width int) *Progress {
	p.width = width
	return p
}

// WithLabel appends a caption after the count.
func (p *Progress) WithLabel(label string) *Progress {
	p.label = label
	return p
}

// WithStyle sets the lipgloss style directly.
func (p *Progress) WithStyle(style lipgloss.Style) *Progress {
	p.SetStyle(style)
	return p
}

// Ratio returns the completed fraction in [0, 1].
func (p *Progress) Ratio() float64 {
	if p.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, float64(p.done)/float64(p.total)))
}

// View renders the progress bar with the default theme.
func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the progress bar using the theme's primary and
// muted neutral colours. An empty total renders nothing.
func (p *Progress) ViewWithContext(ctx RenderContext) string {
	if p.total <= 0 {
		return ""
	}

	bar := progress.New(
		progress.WithSolidFill(variant(ctx.Theme, ctx.Theme.Palette.Primary.Base)),
		progress.WithoutPercentage(),
		progress.WithWidth(p.width),
	)
	bar.EmptyColor = variant(ctx.Theme, ctx.Theme.Palette.Neutral.Muted)

	count := fmt.Sprintf("%d/%d", p.done, p.total)
	if p.label != "" {
		count += " " + p.label
	}
	caption := ctx.Theme.Typography.Caption.Render(count)

	return p.ComputeStyle(ctx.Theme).Render(lipgloss.JoinHorizontal(lipgloss.Center, bar.ViewAs(p.Ratio()), " ", caption))
}

// variant picks the side of an adaptive colour that matches the theme,
// for libraries that take a single hex string.
func variant(theme Theme, colour lipgloss.AdaptiveColor) string {
	if theme.Name == "dark" {
		return colour.Dark
	}
	return colour.Light
}
