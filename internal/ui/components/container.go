package components

import (
	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a stack of children with an optional border,
// padding and background fill. The fill also paints the gaps of the stack so
// the box reads as one solid surface.
type Container struct {
	BaseComponent
	children    []ui.Renderable
	layout      *Stack
	border      lipgloss.Border
	borderColor *lipgloss.AdaptiveColor
	background  *lipgloss.AdaptiveColor
	padding     Spacing
	margin      Spacing
}

// NewContainer creates a new container with a vertical layout.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	// Borders and padding still render around an empty container.
	var content string
	if len(c.children) > 0 {
		content = c.layout.ViewWithContext(ctx)
	}

	style := c.ComputeStyle(ctx.Theme)

	if c.background != nil {
		style = style.Background(*c.background)
	}

	if c.border.Top != "" {
		style = style.Border(c.border)
		if c.borderColor != nil {
			style = style.BorderForeground(*c.borderColor)
		}
	}

	if !c.padding.IsZero() {
		if c.padding.symmetric() {
			style = style.Padding(c.padding.Top, c.padding.Left)
		} else {
			style = style.Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
		}
	}

	if !c.margin.IsZero() {
		if c.margin.symmetric() {
			style = style.Margin(c.margin.Top, c.margin.Left)
		} else {
			style = style.Margin(c.margin.Top, c.margin.Right, c.margin.Bottom, c.margin.Left)
		}
	}

	return style.Render(content)
}

// WithBorder sets the border style.
func (c *Container) WithBorder(border lipgloss.Border) *Container {
	c.border = border
	return c
}

// WithBorderColor sets the border colour.
func (c *Container) WithBorderColor(color lipgloss.AdaptiveColor) *Container {
	c.borderColor = &color
	return c
}

// WithBackground fills the box, including the gaps between children.
func (c *Container) WithBackground(color lipgloss.AdaptiveColor) *Container {
	c.background = &color
	c.layout.WithGapStyle(lipgloss.NewStyle().Background(color))
	return c
}

// WithPadding sets the padding using a Spacing value object.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin using a Spacing value object.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.SetAppliers(appliers...)
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}
