package components

import (
	"github.com/charmbracelet/lipgloss"
)

// IconButton is a single-glyph button. Pressing it invokes the optional
// handler; a button without a handler is inert.
type IconButton struct {
	BaseComponent
	glyph   string
	onPress func()
}

// NewIconButton creates a button that renders glyph.
func NewIconButton(glyph string) *IconButton {
	return &IconButton{
		BaseComponent: NewBaseComponent(),
		glyph:         glyph,
	}
}

// View renders the button.
func (b *IconButton) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *IconButton) ViewWithContext(ctx RenderContext) string {
	return b.ComputeStyle(ctx.Theme).Render(b.glyph)
}

// OnPress sets the handler called by Press.
func (b *IconButton) OnPress(fn func()) *IconButton {
	b.onPress = fn
	return b
}

// Press invokes the handler if one is set and reports whether it ran.
func (b *IconButton) Press() bool {
	if b == nil || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

// Glyph returns the rendered glyph.
func (b *IconButton) Glyph() string {
	return b.glyph
}

// WithStyle sets the button style.
func (b *IconButton) WithStyle(style lipgloss.Style) *IconButton {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *IconButton) WithAppliers(appliers ...StyleFunc) *IconButton {
	b.AddAppliers(appliers...)
	return b
}
