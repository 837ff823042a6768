package host

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/fieldkit/internal/config"
	"github.com/alexisbeaulieu97/fieldkit/internal/field"
)

func signupDoc() *config.Document {
	return &config.Document{
		Version: "1.0.0",
		Title:   "Sign up",
		Fields: []config.FieldSpec{
			{
				ID:             "name",
				Label:          "Name",
				TrailingIcon:   "×",
				TrailingAction: config.ActionClear,
				Rules:          "required,min=2",
				ErrorText:      "Please tell us your name.",
			},
			{ID: "email", Label: "Email", Rules: "required,email"},
			{
				ID:             "password",
				Label:          "Password",
				TrailingIcon:   "◉",
				TrailingAction: config.ActionReveal,
				Masked:         true,
				Rules:          "required,min=8",
			},
			{ID: "invite", Label: "Invite", Value: "CODE", State: field.StateDisabled},
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func stateOf(t *testing.T, m Model, id string) field.State {
	t.Helper()
	cfg, ok := m.FieldConfig(id)
	require.True(t, ok, id)
	return cfg.State
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
	ctrlT    = tea.KeyMsg{Type: tea.KeyCtrlT}
)

func TestNewFocusesFirstEditableField(t *testing.T) {
	t.Parallel()

	m := New(signupDoc())
	assert.Equal(t, "name", m.Focused())
	assert.Equal(t, field.StateFocused, stateOf(t, m, "name"))
	assert.Equal(t, field.StateDefault, stateOf(t, m, "email"))
	assert.Equal(t, field.StateDisabled, stateOf(t, m, "invite"))
	assert.Equal(t, "CODE", m.Values()["invite"])
}

func TestNewFilledWhenValuePresent(t *testing.T) {
	t.Parallel()

	doc := signupDoc()
	doc.Fields[1].Value = "ada@example.com"
	m := New(doc)
	assert.Equal(t, field.StateFilled, stateOf(t, m, "email"))
}

func TestNewWithoutEditableFields(t *testing.T) {
	t.Parallel()

	m := New(&config.Document{Title: "Locked", Fields: []config.FieldSpec{{ID: "a", State: field.StateDisabled}}})
	assert.Empty(t, m.Focused())

	m, cmd := update(t, m, tab)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Focused())
}

func TestTypingUpdatesBufferAndState(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(signupDoc()), "Ada")
	assert.Equal(t, "Ada", m.Values()["name"])
	assert.Equal(t, field.StateTyping, stateOf(t, m, "name"))
}

func TestFocusCycle(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(signupDoc()), "Ada")

	m, _ = update(t, m, tab)
	assert.Equal(t, "email", m.Focused())
	assert.Equal(t, field.StateFilled, stateOf(t, m, "name"))
	assert.Equal(t, field.StateFocused, stateOf(t, m, "email"))

	m, _ = update(t, m, tab)
	assert.Equal(t, "password", m.Focused())
	assert.Equal(t, field.StateDefault, stateOf(t, m, "email"))

	// The disabled invite field is skipped.
	m, _ = update(t, m, tab)
	assert.Equal(t, "name", m.Focused())
	assert.Equal(t, field.StateDisabled, stateOf(t, m, "invite"))

	m, _ = update(t, m, shiftTab)
	assert.Equal(t, "password", m.Focused())
}

func TestSubmitMarksFailures(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(signupDoc()), "A")
	m, cmd := update(t, m, enter)
	require.NotNil(t, cmd)
	assert.False(t, m.Submitted())

	name, _ := m.FieldConfig("name")
	assert.Equal(t, field.StateError, name.State)
	assert.Equal(t, "Please tell us your name.", name.ErrorText)

	email, _ := m.FieldConfig("email")
	assert.Equal(t, field.StateError, email.State)
	assert.Equal(t, "This field is required.", email.ErrorText)

	invite, _ := m.FieldConfig("invite")
	assert.Equal(t, field.StateDisabled, invite.State)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "3 fields need attention")
	assert.Contains(t, out, field.ErrorGlyph+" Please tell us your name.")
}

func TestErrorSurvivesBlurAndClearsOnEdit(t *testing.T) {
	t.Parallel()

	m, _ := update(t, New(signupDoc()), enter)
	require.Equal(t, field.StateError, stateOf(t, m, "name"))

	m, _ = update(t, m, tab)
	m, _ = update(t, m, shiftTab)
	assert.Equal(t, field.StateError, stateOf(t, m, "name"))

	m = typeText(t, m, "Ad")
	name, _ := m.FieldConfig("name")
	assert.Equal(t, field.StateTyping, name.State)
	assert.Empty(t, name.ErrorText)
}

func TestSubmitKeepsFocusedFieldFocusedWhenItPasses(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(signupDoc()), "Ada")
	name := m.entries[0]
	name.state = field.StateError
	name.errText = "stale"

	m, _ = update(t, m, enter)
	require.False(t, m.Submitted())
	require.Equal(t, "name", m.Focused())

	cfg, _ := m.FieldConfig("name")
	assert.Equal(t, field.StateFocused, cfg.State)
	assert.Empty(t, cfg.ErrorText)
	assert.Equal(t, field.StateError, stateOf(t, m, "email"))
}

func TestRuleMessageFallback(t *testing.T) {
	t.Parallel()

	m, _ := update(t, New(signupDoc()), tab)
	m = typeText(t, m, "not-an-email")
	m, _ = update(t, m, enter)

	email, _ := m.FieldConfig("email")
	assert.Equal(t, "Enter a valid email address.", email.ErrorText)
}

func TestClearAction(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(signupDoc()), "Ada")
	m, _ = update(t, m, ctrlT)

	assert.Empty(t, m.Values()["name"])
	assert.Equal(t, field.StateTyping, stateOf(t, m, "name"))
}

func TestRevealAction(t *testing.T) {
	t.Parallel()

	m, _ := update(t, New(signupDoc()), shiftTab)
	require.Equal(t, "password", m.Focused())
	m = typeText(t, m, "hunter22")

	cfg, _ := m.FieldConfig("password")
	require.True(t, cfg.Masked)
	assert.NotContains(t, ansi.Strip(m.View()), "hunter22")

	m, _ = update(t, m, ctrlT)
	cfg, _ = m.FieldConfig("password")
	assert.False(t, cfg.Masked)
	assert.Contains(t, ansi.Strip(m.View()), "hunter22")

	m, _ = update(t, m, ctrlT)
	cfg, _ = m.FieldConfig("password")
	assert.True(t, cfg.Masked)
}

func TestSuccessfulSubmit(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(signupDoc()), "Ada")
	m, _ = update(t, m, tab)
	m = typeText(t, m, "ada@example.com")
	m, _ = update(t, m, tab)
	m = typeText(t, m, "correct horse")

	m, cmd := update(t, m, enter)
	require.NotNil(t, cmd)
	assert.True(t, m.Submitted())
	assert.Empty(t, m.Focused())
	assert.Equal(t, map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "correct horse",
		"invite":   "CODE",
	}, m.Values())
	assert.Equal(t, field.StateFilled, stateOf(t, m, "password"))
	assert.Contains(t, ansi.Strip(m.View()), "Submitted")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m, cmd := update(t, New(signupDoc()), msg)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
		assert.True(t, m.Quitting())
		assert.Empty(t, m.View())
	}
}

func TestPressMsgWithoutIDGoesToFocusedField(t *testing.T) {
	t.Parallel()

	m := typeText(t, New(signupDoc()), "Ada")
	m, _ = update(t, m, field.PressMsg{Target: field.TargetTrailing})
	assert.Empty(t, m.Values()["name"])
}

func TestViewListsFieldsAndHelp(t *testing.T) {
	t.Parallel()

	m, _ := update(t, New(signupDoc()), tea.WindowSizeMsg{Width: 100, Height: 40})
	out := ansi.Strip(m.View())

	for _, want := range []string{"Sign up", "Name", "Email", "Password", "Invite", "CODE", "tab", "submit"} {
		assert.Contains(t, out, want)
	}
}

func TestViewShowsCompletion(t *testing.T) {
	t.Parallel()

	m := New(signupDoc())
	assert.Contains(t, ansi.Strip(m.View()), "0/3 fields complete")

	m = typeText(t, m, "Ada")
	m, _ = update(t, m, tab)
	m = typeText(t, m, "not-an-email")
	assert.Contains(t, ansi.Strip(m.View()), "1/3 fields complete")
}
