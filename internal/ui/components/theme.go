package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet represents a semantic color set with base, on-base and muted colors.
//
//   - Base: The primary background or brand color
//   - OnBase: Text/content color that contrasts well with Base
//   - Muted: A desaturated variant of Base for subtle accents
//
// All colors are adaptive, providing both light and dark mode variants.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Surface ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// TypographyScale contains the text presets used by form controls.
type TypographyScale struct {
	Body    lipgloss.Style
	Caption lipgloss.Style
}

// FieldMetrics holds the fixed geometry of text fields.
type FieldMetrics struct {
	// Border is drawn one cell wide around the input row.
	Border lipgloss.Border
	// PaddingX is the horizontal padding inside the border.
	PaddingX int
	// IconGap separates icons from the input text.
	IconGap int
	// RowGap is the vertical space between label, input and error rows.
	RowGap int
	// InputWidth is the default width of the editable area in cells.
	InputWidth int
}

// Theme represents an immutable styling theme for components.
// All modification helpers return new theme instances.
type Theme struct {
	Name       string
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Field      FieldMetrics
}

// DefaultTheme returns the default (light) theme for components
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Surface: ColourSet{
			Base:   ac("#f9fafb", "#111827"),
			OnBase: ac("#111827", "#f9fafb"),
			Muted:  ac("#e2e8f0", "#1f2937"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	return newTheme("light", palette)
}

// DarkTheme returns a dark theme variant
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Palette.Surface = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#111827", Dark: "#0b1120"},
		OnBase: lipgloss.AdaptiveColor{Light: "#f9fafb", Dark: "#e5e7eb"},
		Muted:  lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#111827"},
	}
	theme.Palette.Neutral = ColourSet{
		Base:   lipgloss.AdaptiveColor{Light: "#94a3b8", Dark: "#94a3b8"},
		OnBase: lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#cbd5f5"},
		Muted:  lipgloss.AdaptiveColor{Light: "#374151", Dark: "#1f2937"},
	}
	return newTheme("dark", theme.Palette)
}

// LightTheme returns a light theme variant
func LightTheme() Theme {
	return DefaultTheme()
}

// ThemeByName returns the named theme. Unknown names fall back to the default theme.
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "light", "default":
		return LightTheme(), true
	case "dark":
		return DarkTheme(), true
	default:
		return DefaultTheme(), false
	}
}

func newTheme(name string, palette Palette) Theme {
	borders := BorderSet{
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
	}

	body := lipgloss.NewStyle().Foreground(palette.Surface.OnBase)

	return Theme{
		Name:    name,
		Palette: palette,
		Borders: borders,
		Typography: TypographyScale{
			Body:    body,
			Caption: body.Faint(true),
		},
		Field: FieldMetrics{
			Border:     borders.Rounded,
			PaddingX:   1,
			IconGap:    1,
			RowGap:     0,
			InputWidth: 32,
		},
	}
}

// PaletteSlot provides access to a semantic colour slot from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined semantic palette slots for type-safe theme access.
var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Background applies a semantic background colour and matching foreground for optimal contrast.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour without changing the background.
//
// Example:
//
//	text := NewText("Error").WithAppliers(Foreground(PaletteDanger))
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// ForegroundColor applies an explicit colour, for values computed at render time.
func ForegroundColor(color lipgloss.TerminalColor) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Foreground(color)
	}
}

// BackgroundColor applies an explicit background colour.
func BackgroundColor(color lipgloss.TerminalColor) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Background(color)
	}
}

// Caption applies the caption typography preset.
func Caption() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.Typography.Caption)
	}
}
