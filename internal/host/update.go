package host

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

// Update handles Bubbletea messages and applies the form's state policy:
// focus shows focused, an edit shows typing and leaving a field shows
// filled or default. An error stays until the value is edited.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case field.EditedMsg:
		for _, e := range m.entries {
			if e.field.ID() == msg.ID {
				m.edited(e)
			}
		}
		return m, m.sync()

	case field.PressMsg:
		cmds := make([]tea.Cmd, 0, len(m.entries)+1)
		for i, e := range m.entries {
			if msg.ID == 0 && i != m.focus {
				continue
			}
			var cmd tea.Cmd
			e.field, cmd = e.field.Update(msg)
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.sync())
		return m, tea.Batch(cmds...)

	case field.FrameMsg:
		cmds := make([]tea.Cmd, 0, len(m.entries))
		for _, e := range m.entries {
			var cmd tea.Cmd
			e.field, cmd = e.field.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	// Anything else, such as pasted clipboard text, belongs to the focused field.
	e := m.current()
	if e == nil {
		return m, nil
	}
	before := e.value
	var cmd tea.Cmd
	e.field, cmd = e.field.Update(msg)
	if e.value == before {
		return m, cmd
	}
	m.edited(e)
	return m, tea.Batch(cmd, m.sync())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.blurCurrent()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		return m, m.cycle(1)

	case key.Matches(msg, m.keys.Prev):
		return m, m.cycle(-1)

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	e := m.current()
	if e == nil {
		return m, nil
	}

	before := e.value
	var cmd tea.Cmd
	e.field, cmd = e.field.Update(msg)
	if e.value != before {
		m.edited(e)
	}
	return m, tea.Batch(cmd, m.sync())
}

func (m *Model) edited(e *entry) {
	if e.pinned() {
		return
	}
	e.state = field.StateTyping
	e.errText = ""
	m.submitted = false
}

func (m Model) current() *entry {
	if m.focus < 0 || m.focus >= len(m.entries) {
		return nil
	}
	return m.entries[m.focus]
}

// cycle moves focus by delta, skipping fields that cannot be focused.
func (m *Model) cycle(delta int) tea.Cmd {
	n := len(m.entries)
	if n == 0 {
		return nil
	}
	start := m.focus
	if start < 0 {
		start = -delta
		if delta < 0 {
			start = 0
		}
	}
	for step := 1; step <= n; step++ {
		i := ((start+delta*step)%n + n) % n
		if !m.entries[i].pinned() {
			return m.focusIndex(i)
		}
	}
	return nil
}

func (m *Model) focusFirst() tea.Cmd {
	for i, e := range m.entries {
		if !e.pinned() {
			return m.focusIndex(i)
		}
	}
	return m.sync()
}

func (m *Model) focusIndex(i int) tea.Cmd {
	if i == m.focus {
		return nil
	}
	m.blurCurrent()

	m.focus = i
	e := m.entries[i]
	if e.state != field.StateError {
		e.state = field.StateFocused
	}

	// The field refuses focus while its last config says disabled, so the
	// new state goes out before Focus.
	sync := m.sync()
	m.log.WithFields(map[string]any{"field": e.spec.ID}).Debug("focus moved")
	return tea.Batch(sync, e.field.Focus())
}

func (m *Model) blurCurrent() {
	e := m.current()
	if e == nil {
		return
	}
	e.field.Blur()
	if e.state != field.StateError && !e.pinned() {
		e.state = restingState(e.value)
	}
	m.focus = -1
}

// submit runs every field's rules. Failing fields switch to the error
// state; a clean form quits with SubmittedMsg.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.failures = 0
	for i, e := range m.entries {
		if e.pinned() {
			continue
		}
		msg, err := check(e)
		if err != nil {
			m.log.Error(err, "field rules could not run")
			continue
		}
		if msg == "" {
			if e.state == field.StateError {
				e.state = restingState(e.value)
				if i == m.focus {
					e.state = field.StateFocused
				}
				e.errText = ""
			}
			continue
		}
		e.state = field.StateError
		e.errText = msg
		m.failures++
	}

	m.log.WithFields(map[string]any{"failures": m.failures}).Info("form submitted")

	if m.failures > 0 {
		m.submitted = false
		return m, m.sync()
	}

	m.submitted = true
	m.blurCurrent()
	values := m.Values()
	return m, tea.Sequence(m.sync(), func() tea.Msg { return SubmittedMsg{Values: values} }, tea.Quit)
}
