package host

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

func TestGalleryDocumentIsValid(t *testing.T) {
	t.Parallel()

	doc := GalleryDocument()
	require.NoError(t, config.ValidateConfig(doc))
	require.Len(t, doc.Fields, len(field.States()))
	for i, state := range field.States() {
		assert.Equal(t, state, doc.Fields[i].State)
	}
}

func TestGalleryStatic(t *testing.T) {
	t.Parallel()

	g := NewGallery(GalleryDocument(), components.DefaultTheme(), nil)
	out := ansi.Strip(g.Static())

	labels := []string{"Default Label", "Disabled Label", "Error Label", "Focused Label", "Typing Label", "Filled Label"}
	last := -1
	for _, label := range labels {
		idx := strings.Index(out, label)
		require.Greater(t, idx, last, label)
		last = idx
	}
	assert.Contains(t, out, field.ErrorGlyph+" Invalid input. Please try again.")
	assert.Contains(t, out, "Typing...")
	assert.NotContains(t, out, "›")
}

func TestGalleryIconTaps(t *testing.T) {
	t.Parallel()

	var m tea.Model = NewGallery(GalleryDocument(), components.DefaultTheme(), nil)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Equal(t, "Leading icon tapped - default", m.(Gallery).Tapped())

	// Icons stay pressable on the disabled field.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, m.(Gallery).Selected())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, "Trailing icon tapped - disabled", m.(Gallery).Tapped())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 5, m.(Gallery).Selected())

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "›")
	assert.Contains(t, out, "Trailing icon tapped - disabled")
}

func TestGalleryQuit(t *testing.T) {
	t.Parallel()

	g := NewGallery(GalleryDocument(), components.DefaultTheme(), nil)
	_, cmd := g.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestGalleryIgnoresTyping(t *testing.T) {
	t.Parallel()

	g := NewGallery(GalleryDocument(), components.DefaultTheme(), nil)
	m, _ := g.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")})
	assert.NotContains(t, ansi.Strip(m.View()), "zz")
}
