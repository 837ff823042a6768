package field

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

func TestRenderErrorField(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Placeholder: "Enter value",
		State:       StateError,
		ErrorText:   "Invalid input. Please try again.",
		Label:       "Error Label",
	}
	out := ansi.Strip(Render(Build(cfg, "Invalid input"), components.DefaultContext()))
	lines := strings.Split(out, "\n")

	assert.Equal(t, "Error Label", strings.TrimSpace(lines[0]))
	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, lines[len(lines)-1], ErrorGlyph+" Invalid input. Please try again.")
	assert.Contains(t, out, "╭")
}

func TestRenderPlaceholderWhenEmpty(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(Render(Build(Config{Placeholder: "Search"}, ""), components.DefaultContext()))
	assert.Contains(t, out, "Search")

	out = ansi.Strip(Render(Build(Config{Placeholder: "Search"}, "kittens"), components.DefaultContext()))
	assert.Contains(t, out, "kittens")
	assert.NotContains(t, out, "Search")
}

func TestRenderMasked(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(Render(Build(Config{Masked: true}, "secret"), components.DefaultContext()))
	assert.Contains(t, out, "••••••")
	assert.NotContains(t, out, "secret")
}

func TestRenderIcons(t *testing.T) {
	t.Parallel()

	out := ansi.Strip(Render(Build(Config{LeadingIcon: "☺", TrailingIcon: "×"}, "Ada"), components.DefaultContext()))
	first := strings.Index(out, "☺")
	value := strings.Index(out, "Ada")
	last := strings.Index(out, "×")

	assert.True(t, first >= 0 && value > first && last > value, out)
}

func TestRenderBorderKeepsLayoutAcrossStates(t *testing.T) {
	t.Parallel()

	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
	def := ansi.Strip(Render(Build(Config{}, "x"), ctx))
	focused := ansi.Strip(Render(Build(Config{State: StateFocused}, "x"), ctx))

	assert.Equal(t, def, focused)
}

func TestRenderWithInputView(t *testing.T) {
	t.Parallel()

	var got InputPaint
	out := Render(Build(Config{Width: 12}, "ignored"), components.DefaultContext(), WithInputView(func(p InputPaint) string {
		got = p
		return "custom"
	}))

	assert.Contains(t, ansi.Strip(out), "custom")
	assert.NotContains(t, ansi.Strip(out), "ignored")
	assert.Equal(t, 12, got.Width)
}

func TestTokenColor(t *testing.T) {
	t.Parallel()

	theme := components.LightTheme()
	assert.Equal(t, theme.Palette.Primary.Base, TokenColor(theme, TokenAccentBlue))
	assert.Equal(t, theme.Palette.Danger.Base, TokenColor(theme, TokenDangerRed))
	assert.Equal(t, theme.Palette.Neutral.Base, TokenColor(theme, TokenNeutralGray))
	assert.Equal(t, theme.Palette.Surface.Base, TokenColor(theme, TokenTransparent))
	assert.NotEqual(t, theme.Palette.Surface.Base, TokenColor(theme, TokenTranslucentGray))
}

func TestRenderBlendsColoursMidTransition(t *testing.T) {
	t.Parallel()

	theme := components.DefaultTheme()
	ctx := components.DefaultContext().WithTheme(theme)
	tree := Build(Config{State: StateError}, "x")

	transition := NewTransition(Resolve(StateDefault), Resolve(StateError))
	for range 3 {
		transition = transition.Step()
	}
	require.True(t, transition.Active())
	progress := transition.Progress()
	require.Greater(t, progress, 0.0)
	require.Less(t, progress, 1.0)

	paint := func(opts ...RenderOption) InputPaint {
		var got InputPaint
		opts = append(opts, WithInputView(func(p InputPaint) string {
			got = p
			return ""
		}))
		Render(tree, ctx, opts...)
		return got
	}

	blue := TokenColor(theme, TokenAccentBlue)
	red := TokenColor(theme, TokenDangerRed)
	mid := paint(WithTransition(transition))
	final := paint()

	assert.Equal(t, red, final.Text)
	assert.Equal(t, components.Blend(blue, red, progress), mid.Text)
	assert.NotEqual(t, blue, mid.Text)
	assert.NotEqual(t, red, mid.Text)
}
