package field

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// TokenColor maps a semantic token to a concrete colour of the theme.
//
// Terminals cannot draw a transparent border without shifting the layout,
// so TokenTransparent resolves to the surface colour: the border cells stay
// in place and disappear against the background.
func TokenColor(theme components.Theme, token Token) lipgloss.AdaptiveColor {
	p := theme.Palette
	switch token {
	case TokenNeutralGray:
		return p.Neutral.Base
	case TokenAccentBlue:
		return p.Primary.Base
	case TokenDangerRed:
		return p.Danger.Base
	case TokenTranslucentGray:
		return components.Over(p.Neutral.Base, p.Surface.Base, TranslucentAlpha)
	default:
		return p.Surface.Base
	}
}

// InputPaint carries the resolved colours handed to a custom input view.
type InputPaint struct {
	Text        lipgloss.AdaptiveColor
	Placeholder lipgloss.AdaptiveColor
	Background  lipgloss.AdaptiveColor
	Width       int
}

// RenderOption customises Render.
type RenderOption func(*renderer)

// WithTransition blends every state-derived paint between t.From and t.To.
func WithTransition(t Transition) RenderOption {
	return func(r *renderer) {
		r.transition = t
	}
}

// WithInputView replaces the static input text, for callers that draw a
// live cursor.
func WithInputView(fn func(InputPaint) string) RenderOption {
	return func(r *renderer) {
		r.inputView = fn
	}
}

type renderer struct {
	theme      components.Theme
	transition Transition
	inputView  func(InputPaint) string
	fill       lipgloss.AdaptiveColor
}

// Render draws tree with lipgloss.
func Render(tree Tree, ctx components.RenderContext, opts ...RenderOption) string {
	r := renderer{theme: ctx.Theme}
	for _, opt := range opts {
		opt(&r)
	}
	root := r.node(tree.Root)
	if contextual, ok := root.(components.ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return root.View()
}

func (r renderer) colour(p Paint) lipgloss.AdaptiveColor {
	to := TokenColor(r.theme, p.Token)
	if !r.transition.Active() || p.Slot == SlotFixed {
		return to
	}
	prev, ok := r.transition.From.Token(p.Slot)
	if !ok {
		return to
	}
	return components.Blend(TokenColor(r.theme, prev), to, r.transition.Progress())
}

func (r renderer) node(n *Node) ui.Renderable {
	switch n.Kind {
	case KindField:
		return components.VStack(r.children(n, lipgloss.NewStyle())...).WithGap(r.theme.Field.RowGap)
	case KindLabel:
		return components.CaptionText(n.Text).WithAppliers(components.ForegroundColor(r.colour(n.Foreground)))
	case KindContainer:
		return r.container(n)
	case KindErrorRow:
		return components.HStack(r.children(n, lipgloss.NewStyle())...).WithGap(1)
	case KindErrorIcon, KindErrorText:
		return components.NewText(n.Text).WithAppliers(components.ForegroundColor(r.colour(n.Foreground)))
	default:
		return components.NewText(n.Text)
	}
}

func (r renderer) children(n *Node, fill lipgloss.Style) []ui.Renderable {
	out := make([]ui.Renderable, 0, len(n.Children))
	for _, child := range n.Children {
		switch child.Kind {
		case KindLeadingIcon, KindTrailingIcon:
			out = append(out, components.NewIconButton(child.Text).
				OnPress(child.OnPress).
				WithStyle(fill).
				WithAppliers(components.ForegroundColor(r.colour(child.Foreground))))
		case KindInput:
			out = append(out, r.input(child, fill))
		default:
			out = append(out, r.node(child))
		}
	}
	return out
}

func (r renderer) container(n *Node) ui.Renderable {
	fill := r.colour(n.Background)
	metrics := r.theme.Field

	r.fill = fill
	return components.NewContainer(r.children(n, lipgloss.NewStyle().Background(fill))...).
		WithDirection(components.DirectionHorizontal).
		WithGap(metrics.IconGap).
		WithBorder(metrics.Border).
		WithBorderColor(r.colour(n.Border)).
		WithBackground(fill).
		WithPadding(components.HorizontalSpacing(metrics.PaddingX))
}

func (r renderer) input(n *Node, fill lipgloss.Style) ui.Renderable {
	width := n.Width
	if width <= 0 {
		width = r.theme.Field.InputWidth
	}
	paint := InputPaint{
		Text:        r.colour(n.Foreground),
		Placeholder: TokenColor(r.theme, TokenNeutralGray),
		Background:  r.fill,
		Width:       width,
	}

	style := fill.Width(width).MaxWidth(width).MaxHeight(1)
	if r.inputView != nil {
		view := r.inputView(paint)
		return ui.RenderableFunc(func() string { return style.Render(view) })
	}

	text := n.Text
	if n.Masked {
		text = strings.Repeat("•", len([]rune(text)))
	}
	if text == "" {
		return ui.RenderableFunc(func() string {
			return style.Foreground(paint.Placeholder).Faint(true).Render(n.Placeholder)
		})
	}
	if !n.Interactive {
		style = style.Faint(true)
	}
	return ui.RenderableFunc(func() string {
		return style.Foreground(paint.Text).Render(text)
	})
}
