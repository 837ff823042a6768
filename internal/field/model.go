package field

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Target names an icon button.
type Target int

const (
	TargetLeading Target = iota
	TargetTrailing
)

func (t Target) String() string {
	if t == TargetTrailing {
		return "trailing"
	}
	return "leading"
}

// PressMsg asks the field with the given ID to press one of its icons. An
// ID of zero addresses whichever field receives the message. Hosts send it
// when they route clicks themselves.
type PressMsg struct {
	ID     int
	Target Target
}

// EditedMsg reports that the user changed the text and the change was
// proposed to the binding.
type EditedMsg struct {
	ID    int
	Value string
}

// FrameMsg advances a running transition.
type FrameMsg struct {
	ID  int
	tag int
}

// Option configures a Model.
type Option func(*Model)

// WithTheme sets the theme used by View.
func WithTheme(theme components.Theme) Option {
	return func(m *Model) {
		m.theme = theme
	}
}

// WithKeyMap replaces the icon bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) {
		m.keys = keys
	}
}

// WithLogger attaches a logger for debug tracing.
func WithLogger(log *logger.Logger) Option {
	return func(m *Model) {
		m.log = log
	}
}

// Model is the interactive text field. The host owns the text (through
// Binding) and the state (through Config); the model only keeps ephemeral
// focus and animation state.
type Model struct {
	id      int
	cfg     Config
	binding Binding
	input   textinput.Model
	keys    KeyMap
	theme   components.Theme
	log     *logger.Logger

	focused    bool
	transition Transition
	tag        int
}

// New creates a field bound to binding.
func New(binding Binding, cfg Config, opts ...Option) Model {
	if binding == nil {
		binding = Constant("")
	}

	input := textinput.New()
	input.Prompt = ""

	m := Model{
		id:      nextID(),
		cfg:     cfg,
		binding: binding,
		input:   input,
		keys:    DefaultKeyMap(),
		theme:   components.DefaultTheme(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.applyWidth()
	return m
}

// ID returns the unique identifier of this field.
func (m Model) ID() int {
	return m.id
}

// Config returns the configuration of the last render.
func (m Model) Config() Config {
	return m.cfg
}

// Transition returns the current transition metadata.
func (m Model) Transition() Transition {
	return m.transition
}

// KeyMap returns the icon bindings, for help views.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// SetConfig installs the configuration for the next render. When the state
// changes a transition starts and the returned command drives its frames.
func (m *Model) SetConfig(cfg Config) tea.Cmd {
	prev := m.cfg.state()
	m.cfg = cfg
	m.applyWidth()
	next := cfg.state()

	if next == StateDisabled && m.focused {
		m.Blur()
	}
	if prev == next {
		return nil
	}

	m.log.WithFields(map[string]any{"from": prev.String(), "to": next.String()}).Debug("field state changed")

	m.transition = m.transition.Retarget(Resolve(prev), Resolve(next))
	if !m.transition.Active() {
		return nil
	}
	m.tag++
	return m.frame()
}

// Focus gives the input keyboard focus. A disabled field cannot be focused.
func (m *Model) Focus() tea.Cmd {
	if m.cfg.state() == StateDisabled {
		return nil
	}
	m.focused = true
	m.syncInput()
	m.input.CursorEnd()
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

// Reset drops the ephemeral state, as when the field is unmounted.
func (m *Model) Reset() {
	m.Blur()
	m.transition = Transition{}
	m.tag++
}

// Press presses an icon button. It reports whether a callback ran; pressing
// an absent icon or one without a callback does nothing.
func (m Model) Press(target Target) bool {
	tree := Build(m.cfg, m.binding.Get())
	kind := KindLeadingIcon
	if target == TargetTrailing {
		kind = KindTrailingIcon
	}
	ran := tree.Find(kind).Press()
	if m.log.Enabled("debug") {
		m.log.WithFields(map[string]any{"target": target.String(), "handled": ran}).Debug("icon pressed")
	}
	return ran
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages addressed to the field.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.ID != m.id || msg.tag != m.tag {
			return m, nil
		}
		m.transition = m.transition.Step()
		if m.transition.Active() {
			return m, m.frame()
		}
		return m, nil

	case PressMsg:
		if msg.ID != 0 && msg.ID != m.id {
			return m, nil
		}
		m.Press(msg.Target)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.LeadingTap):
			m.Press(TargetLeading)
			return m, nil
		case key.Matches(msg, m.keys.TrailingTap):
			m.Press(TargetTrailing)
			return m, nil
		}
	}

	if !m.focused {
		return m, nil
	}
	return m.propose(msg)
}

// propose runs msg through the text input and hands any resulting change to
// the binding. Keystrokes and clipboard pastes both arrive here.
func (m Model) propose(msg tea.Msg) (Model, tea.Cmd) {
	if m.cfg.state() == StateDisabled {
		if m.log.Enabled("debug") {
			m.log.WithFields(map[string]any{"input": describe(msg)}).Debug("input rejected by disabled field")
		}
		return m, nil
	}

	m.syncInput()
	before := m.input.Value()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	after := m.input.Value()
	if after == before {
		return m, cmd
	}

	m.binding.Set(after)
	id := m.id
	edited := func() tea.Msg { return EditedMsg{ID: id, Value: after} }
	return m, tea.Batch(cmd, edited)
}

func describe(msg tea.Msg) string {
	if k, ok := msg.(tea.KeyMsg); ok {
		return k.String()
	}
	return fmt.Sprintf("%T", msg)
}

// View renders the field with the live value of the binding.
func (m Model) View() string {
	return m.ViewWithContext(components.DefaultContext().WithTheme(m.theme))
}

// ViewWithContext renders the field with an explicit context.
func (m Model) ViewWithContext(ctx components.RenderContext) string {
	m.syncInput()
	tree := m.Tree()

	input := m.input
	inputView := func(p InputPaint) string {
		input.EchoMode = textinput.EchoNormal
		if m.cfg.Masked {
			input.EchoMode = textinput.EchoPassword
			input.EchoCharacter = '•'
		}
		text := lipgloss.NewStyle().Foreground(p.Text).Background(p.Background)
		if tree.State == StateDisabled {
			text = text.Faint(true)
		}
		input.TextStyle = text
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.Placeholder).Background(p.Background).Faint(true)
		input.Cursor.Style = lipgloss.NewStyle().Foreground(p.Text)
		input.Cursor.TextStyle = text
		input.Placeholder = m.cfg.placeholder()
		return input.View()
	}

	return Render(tree, ctx, WithTransition(m.transition), WithInputView(inputView))
}

// Tree builds the render tree for the current configuration and buffer.
func (m Model) Tree() Tree {
	return Build(m.cfg, m.binding.Get())
}

// applyWidth sizes the text input to the editable area, leaving a cell for
// the cursor.
func (m *Model) applyWidth() {
	width := m.cfg.Width
	if width <= 0 {
		width = m.theme.Field.InputWidth
	}
	m.input.Width = max(1, width-1)
}

// syncInput makes the text input show the binding's current value.
func (m *Model) syncInput() {
	live := m.binding.Get()
	if m.input.Value() != live {
		m.input.SetValue(live)
	}
}

func (m Model) frame() tea.Cmd {
	id, tag := m.id, m.tag
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id, tag: tag}
	})
}
