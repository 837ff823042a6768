package components

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Blend interpolates between two adaptive colours. Both the light and the
// dark variant are blended independently in Lab space so the midpoint stays
// perceptually even. t is clamped to [0, 1].
func Blend(from, to lipgloss.AdaptiveColor, t float64) lipgloss.AdaptiveColor {
	switch {
	case t <= 0:
		return from
	case t >= 1:
		return to
	}
	return lipgloss.AdaptiveColor{
		Light: blendHex(from.Light, to.Light, t),
		Dark:  blendHex(from.Dark, to.Dark, t),
	}
}

// Over composites fg at the given opacity on top of bg, which is how a
// translucent fill is approximated on a terminal that has no alpha channel.
func Over(fg, bg lipgloss.AdaptiveColor, alpha float64) lipgloss.AdaptiveColor {
	switch {
	case alpha <= 0:
		return bg
	case alpha >= 1:
		return fg
	}
	return lipgloss.AdaptiveColor{
		Light: overHex(fg.Light, bg.Light, alpha),
		Dark:  overHex(fg.Dark, bg.Dark, alpha),
	}
}

func blendHex(from, to string, t float64) string {
	a, errA := colorful.Hex(from)
	b, errB := colorful.Hex(to)
	if errA != nil || errB != nil {
		// Non-hex (ANSI index) colours cannot be interpolated; snap halfway.
		if t < 0.5 {
			return from
		}
		return to
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

func overHex(fg, bg string, alpha float64) string {
	f, errF := colorful.Hex(fg)
	b, errB := colorful.Hex(bg)
	if errF != nil || errB != nil {
		return bg
	}
	return b.BlendRgb(f, alpha).Clamped().Hex()
}
