package host

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// GalleryIcon is the placeholder glyph drawn on both sides of every
// gallery field.
const GalleryIcon = "■"

// GalleryDocument returns one field per state, as shown by the gallery.
func GalleryDocument() *config.Document {
	spec := func(state field.State, label, value string) config.FieldSpec {
		return config.FieldSpec{
			ID:           string(state),
			Label:        label,
			Placeholder:  "Enter value",
			State:        state,
			Value:        value,
			LeadingIcon:  GalleryIcon,
			TrailingIcon: GalleryIcon,
		}
	}

	errSpec := spec(field.StateError, "Error Label", "Invalid input")
	errSpec.ErrorText = "Invalid input. Please try again."

	return &config.Document{
		Version: "1.0.0",
		Title:   "Field states",
		Fields: []config.FieldSpec{
			spec(field.StateDefault, "Default Label", ""),
			spec(field.StateDisabled, "Disabled Label", ""),
			errSpec,
			spec(field.StateFocused, "Focused Label", "Focused input"),
			spec(field.StateTyping, "Typing Label", "Typing..."),
			spec(field.StateFilled, "Filled Label", "Filled input"),
		},
	}
}

type galleryKeys struct {
	Next  key.Binding
	Prev  key.Binding
	Quit  key.Binding
	Field field.KeyMap
}

func (k galleryKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Field.LeadingTap, k.Field.TrailingTap, k.Quit}
}

func (k galleryKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Gallery previews a fixed set of fields. Buffers are constant, so typing is
// dropped; icon presses report which button was tapped.
type Gallery struct {
	title    string
	fields   []field.Model
	selected int
	tapped   *string

	keys  galleryKeys
	help  help.Model
	theme components.Theme
	log   *logger.Logger
}

// NewGallery builds a gallery for doc. Every field is read-only.
func NewGallery(doc *config.Document, theme components.Theme, log *logger.Logger) Gallery {
	g := Gallery{
		title:  doc.Title,
		tapped: new(string),
		keys: galleryKeys{
			Next:  key.NewBinding(key.WithKeys("tab", "down", "j"), key.WithHelp("tab", "select next")),
			Prev:  key.NewBinding(key.WithKeys("shift+tab", "up", "k")),
			Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
			Field: field.DefaultKeyMap(),
		},
		help:  help.New(),
		theme: theme,
		log:   log,
	}

	for _, spec := range doc.Fields {
		cfg := spec.FieldConfig()
		name := spec.State.String()
		cfg.OnLeadingTap = g.tap("Leading", name)
		cfg.OnTrailingTap = g.tap("Trailing", name)

		f := field.New(field.Constant(spec.Value), cfg, field.WithTheme(theme), field.WithLogger(log))
		g.fields = append(g.fields, f)
	}
	return g
}

func (g Gallery) tap(side, state string) func() {
	tapped := g.tapped
	log := g.log
	return func() {
		*tapped = fmt.Sprintf("%s icon tapped - %s", side, state)
		log.WithFields(map[string]any{"state": state, "icon": side}).Info("icon tapped")
	}
}

// Tapped returns the message of the last icon press.
func (g Gallery) Tapped() string {
	return *g.tapped
}

// Selected returns the index of the field receiving icon keys.
func (g Gallery) Selected() int {
	return g.selected
}

// Init implements tea.Model.
func (g Gallery) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (g Gallery) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		g.help.Width = msg.Width
		return g, nil
	case tea.KeyMsg:
		n := len(g.fields)
		switch {
		case key.Matches(msg, g.keys.Quit):
			return g, tea.Quit
		case n == 0:
			return g, nil
		case key.Matches(msg, g.keys.Next):
			g.selected = (g.selected + 1) % n
			return g, nil
		case key.Matches(msg, g.keys.Prev):
			g.selected = (g.selected - 1 + n) % n
			return g, nil
		}
		var cmd tea.Cmd
		g.fields[g.selected], cmd = g.fields[g.selected].Update(msg)
		return g, cmd
	case field.PressMsg, field.FrameMsg:
		cmds := make([]tea.Cmd, 0, len(g.fields))
		for i := range g.fields {
			var cmd tea.Cmd
			g.fields[i], cmd = g.fields[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return g, tea.Batch(cmds...)
	}
	return g, nil
}

// View implements tea.Model.
func (g Gallery) View() string {
	return g.render(true)
}

// Static renders every field once, without selection or help. It is what
// the gallery prints when stdout is not a terminal.
func (g Gallery) Static() string {
	return g.render(false)
}

func (g Gallery) render(interactive bool) string {
	ctx := components.DefaultContext().WithTheme(g.theme)
	styles := newStyles(g.theme)
	marker := lipgloss.NewStyle().Foreground(g.theme.Palette.Primary.Base)

	rows := make([]ui.Renderable, 0, len(g.fields))
	for i, f := range g.fields {
		f := f
		view := ui.RenderableFunc(func() string { return f.ViewWithContext(ctx) })
		if !interactive {
			rows = append(rows, view)
			continue
		}
		gutter := " "
		if i == g.selected {
			gutter = "›"
		}
		rows = append(rows, components.HStack(
			components.NewText(gutter).WithStyle(marker),
			view,
		).WithGap(1).WithAlign(components.AlignCenter))
	}

	sections := []ui.Renderable{components.VStack(rows...).WithGap(1)}
	if interactive {
		sections = append([]ui.Renderable{components.NewText(g.title).WithStyle(styles.title)}, sections...)
		if tapped := g.Tapped(); tapped != "" {
			sections = append(sections, components.NewText(tapped).WithStyle(styles.success))
		}
		sections = append(sections, components.NewText(g.help.View(g.keys)).WithStyle(styles.footer))
	}
	return components.VStack(sections...).ViewWithContext(ctx)
}
