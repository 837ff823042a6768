package components

import (
	"strings"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Alignment specifies how children are aligned along the cross axis.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Stack is a layout component that arranges children in a single direction.
// Children that render to an empty string take no space at all.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
	align     Alignment
	gapStyle  lipgloss.Style
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		gapStyle:      lipgloss.NewStyle(),
	}
}

// VStack creates a vertical stack (convenience constructor).
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack (convenience constructor).
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := render(child, ctx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return ""
	}

	if s.direction == DirectionHorizontal {
		return style.Render(s.joinHorizontal(views))
	}
	return style.Render(s.joinVertical(views))
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinVertical(s.align.position(), views...)
	}

	spacer := strings.Repeat("\n", s.gap-1)
	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinVertical(s.align.position(), result...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinHorizontal(s.align.position(), views...)
	}

	// Gap columns are painted with gapStyle so a background fill stays continuous.
	height := 1
	for _, view := range views {
		if h := lipgloss.Height(view); h > height {
			height = h
		}
	}
	column := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", s.gap)+"\n", height), "\n")
	spacer := s.gapStyle.Render(column)

	result := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			result = append(result, spacer)
		}
		result = append(result, view)
	}
	return lipgloss.JoinHorizontal(s.align.position(), result...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithGapStyle sets the style used to paint gap cells.
func (s *Stack) WithGapStyle(style lipgloss.Style) *Stack {
	s.gapStyle = style
	return s
}

// WithAlign sets the cross axis alignment.
func (s *Stack) WithAlign(align Alignment) *Stack {
	s.align = align
	return s
}

// WithStyle sets the container style.
func (s *Stack) WithStyle(style lipgloss.Style) *Stack {
	s.SetStyle(style)
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

func (a Alignment) position() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
