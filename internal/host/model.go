// Package host runs a form of text fields. It owns every buffer and every
// field state; fields only display what it hands them and propose edits.
package host

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// SubmittedMsg is emitted once every field passes its rules.
type SubmittedMsg struct {
	Values map[string]string
}

// entry is the host-side record for one field. Entries are shared by
// pointer so the field bindings stay valid across model copies.
type entry struct {
	spec    config.FieldSpec
	value   string
	state   field.State
	errText string
	masked  bool
	field   field.Model
}

func (e *entry) pinned() bool {
	return e.spec.State == field.StateDisabled
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the theme used to draw the form.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// WithKeyMap replaces the form bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// Model is the Bubbletea model of a form.
type Model struct {
	title   string
	entries []*entry
	focus   int

	keys   KeyMap
	help   help.Model
	theme  components.Theme
	styles styles
	log    *logger.Logger

	initCmd   tea.Cmd
	width     int
	failures  int
	submitted bool
	quitting  bool
}

// New builds a form from a validated document.
func New(doc *config.Document, opts ...Option) Model {
	m := Model{
		focus: -1,
		keys:  DefaultKeyMap(),
		help:  help.New(),
		theme: components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.styles = newStyles(m.theme)

	if doc == nil {
		return m
	}
	m.title = doc.Title

	for _, spec := range doc.Fields {
		e := &entry{
			spec:    spec,
			value:   spec.Value,
			state:   spec.State,
			errText: spec.ErrorText,
			masked:  spec.Masked,
		}
		if e.state == "" {
			e.state = restingState(e.value)
		}
		if e.state != field.StateError {
			e.errText = ""
		}
		e.field = field.New(field.Bind(&e.value), field.Config{},
			field.WithTheme(m.theme),
			field.WithLogger(m.log.WithFields(map[string]any{"field": spec.ID})),
			field.WithKeyMap(m.keys.Field),
		)
		m.entries = append(m.entries, e)
	}
	m.initCmd = m.focusFirst()

	return m
}

// Init starts the cursor of the first editable field, which New focused.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Values returns a copy of every buffer keyed by field ID.
func (m Model) Values() map[string]string {
	out := make(map[string]string, len(m.entries))
	for _, e := range m.entries {
		out[e.spec.ID] = e.value
	}
	return out
}

// Submitted reports whether the form was submitted successfully.
func (m Model) Submitted() bool {
	return m.submitted
}

// Quitting reports whether the user left the form.
func (m Model) Quitting() bool {
	return m.quitting
}

// Focused returns the ID of the focused field, or an empty string.
func (m Model) Focused() string {
	if m.focus < 0 || m.focus >= len(m.entries) {
		return ""
	}
	return m.entries[m.focus].spec.ID
}

// FieldConfig returns the configuration the host handed to field id on the
// last cycle.
func (m Model) FieldConfig(id string) (field.Config, bool) {
	e := m.lookup(id)
	if e == nil {
		return field.Config{}, false
	}
	return e.field.Config(), true
}

func (m Model) lookup(id string) *entry {
	for _, e := range m.entries {
		if e.spec.ID == id {
			return e
		}
	}
	return nil
}

// configFor builds the fresh render configuration of e for this cycle.
func (m Model) configFor(e *entry) field.Config {
	cfg := e.spec.FieldConfig()
	cfg.State = e.state
	cfg.ErrorText = e.errText
	cfg.Masked = e.masked

	switch e.spec.Action() {
	case config.ActionClear:
		cfg.OnTrailingTap = func() {
			e.value = ""
			e.errText = ""
			if !e.pinned() {
				e.state = field.StateTyping
			}
		}
	case config.ActionReveal:
		cfg.OnTrailingTap = func() {
			e.masked = !e.masked
		}
	}
	return cfg
}

// sync hands every field its configuration for this cycle and collects the
// transition commands that result.
func (m Model) sync() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.entries))
	for _, e := range m.entries {
		cmds = append(cmds, e.field.SetConfig(m.configFor(e)))
	}
	return tea.Batch(cmds...)
}

func restingState(value string) field.State {
	if value == "" {
		return field.StateDefault
	}
	return field.StateFilled
}
