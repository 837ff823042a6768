package field

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect runs cmd and any batched children, keeping the messages that
// arrive promptly. Cursor blink ticks are left behind.
func collect(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	var out []tea.Msg
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		ch := make(chan tea.Msg, 1)
		go func() { ch <- c() }()
		select {
		case msg := <-ch:
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, inner := range batch {
					run(inner)
				}
				return
			}
			out = append(out, msg)
		case <-time.After(50 * time.Millisecond):
		}
	}
	run(cmd)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelTypingProposesToBinding(t *testing.T) {
	t.Parallel()

	var buffer string
	m := New(Bind(&buffer), Config{State: StateFocused})
	m.Focus()

	var cmd tea.Cmd
	m, _ = m.Update(runes("h"))
	m, cmd = m.Update(runes("i"))

	assert.Equal(t, "hi", buffer)

	var edited []EditedMsg
	for _, msg := range collect(t, cmd) {
		if e, ok := msg.(EditedMsg); ok {
			edited = append(edited, e)
		}
	}
	require.Len(t, edited, 1)
	assert.Equal(t, EditedMsg{ID: m.ID(), Value: "hi"}, edited[0])
}

func TestModelIgnoresKeysWhenUnfocused(t *testing.T) {
	t.Parallel()

	buffer := "keep"
	m := New(Bind(&buffer), Config{})
	m, cmd := m.Update(runes("x"))

	assert.Nil(t, cmd)
	assert.Equal(t, "keep", buffer)
}

func TestModelDisabledRejectsKeystrokes(t *testing.T) {
	t.Parallel()

	buffer := "locked"
	leading, trailing := 0, 0
	cfg := Config{
		State:         StateDisabled,
		LeadingIcon:   "★",
		TrailingIcon:  "×",
		OnLeadingTap:  func() { leading++ },
		OnTrailingTap: func() { trailing++ },
	}
	m := New(Bind(&buffer), cfg)

	assert.Nil(t, m.Focus())
	assert.False(t, m.focused)

	// A field disabled while focused keeps receiving keys from its host.
	m.focused = true
	m, cmd := m.Update(runes("x"))
	assert.Nil(t, cmd)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "locked", buffer)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	m, _ = m.Update(PressMsg{Target: TargetTrailing})
	assert.Equal(t, 1, leading)
	assert.Equal(t, 1, trailing)
}

func TestModelSetConfigDisabledBlurs(t *testing.T) {
	t.Parallel()

	m := New(Constant(""), Config{})
	m.Focus()
	require.True(t, m.focused)

	m.SetConfig(Config{State: StateDisabled})
	assert.False(t, m.focused)
}

func TestModelPressRouting(t *testing.T) {
	t.Parallel()

	presses := 0
	m := New(Constant(""), Config{TrailingIcon: "×", OnTrailingTap: func() { presses++ }})

	m, _ = m.Update(PressMsg{ID: m.ID() + 1000, Target: TargetTrailing})
	assert.Equal(t, 0, presses)

	m, _ = m.Update(PressMsg{ID: m.ID(), Target: TargetTrailing})
	assert.Equal(t, 1, presses)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.Equal(t, 2, presses)

	assert.False(t, m.Press(TargetLeading))
}

func TestModelPressWithoutCallbackIsNoop(t *testing.T) {
	t.Parallel()

	m := New(Constant(""), Config{LeadingIcon: "★"})
	assert.False(t, m.Press(TargetLeading))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	assert.Nil(t, cmd)
}

func TestModelViewReadsLiveBinding(t *testing.T) {
	t.Parallel()

	buffer := "first"
	m := New(Bind(&buffer), Config{Label: "Name"})
	assert.Contains(t, ansi.Strip(m.View()), "first")

	buffer = "second"
	out := ansi.Strip(m.View())
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "first")
}

func TestModelViewMasked(t *testing.T) {
	t.Parallel()

	m := New(Constant("hunter2"), Config{Masked: true})
	out := ansi.Strip(m.View())
	assert.NotContains(t, out, "hunter2")
	assert.Contains(t, out, "•••••••")
}

func TestModelViewPlaceholder(t *testing.T) {
	t.Parallel()

	m := New(nil, Config{})
	assert.Contains(t, ansi.Strip(m.View()), DefaultPlaceholder)
}

func TestModelTransitionFrames(t *testing.T) {
	t.Parallel()

	m := New(Constant(""), Config{})
	cmd := m.SetConfig(Config{State: StateFocused})
	require.NotNil(t, cmd)

	tr := m.Transition()
	require.True(t, tr.Active())
	assert.Equal(t, CurveEaseInOut, tr.Curve)
	assert.Equal(t, Resolve(StateDefault), tr.From)
	assert.Equal(t, Resolve(StateFocused), tr.To)

	stale := FrameMsg{ID: m.ID(), tag: m.tag - 1}
	m, cmd = m.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.Transition().Frames())

	for i := 0; m.Transition().Active(); i++ {
		require.Less(t, i, maxFrames+1)
		m, _ = m.Update(FrameMsg{ID: m.ID(), tag: m.tag})
	}
	assert.Equal(t, 1.0, m.Transition().Progress())
}

func TestModelSetConfigSameStateNoTransition(t *testing.T) {
	t.Parallel()

	m := New(Constant(""), Config{State: StateFocused})
	assert.Nil(t, m.SetConfig(Config{State: StateFocused, Label: "Renamed"}))
	assert.False(t, m.Transition().Active())
	assert.Equal(t, "Renamed", m.Config().Label)

	// Focused and typing share every attribute.
	assert.Nil(t, m.SetConfig(Config{State: StateTyping}))
}

func TestModelReset(t *testing.T) {
	t.Parallel()

	m := New(Constant(""), Config{})
	m.Focus()
	m.SetConfig(Config{State: StateFocused})
	tag := m.tag

	m.Reset()
	assert.False(t, m.focused)
	assert.False(t, m.Transition().Active())

	m, cmd := m.Update(FrameMsg{ID: m.ID(), tag: tag})
	assert.Nil(t, cmd)
	assert.False(t, m.Transition().Active())
}

func TestModelIDsAreUnique(t *testing.T) {
	t.Parallel()

	a := New(nil, Config{})
	b := New(nil, Config{})
	assert.NotEqual(t, a.ID(), b.ID())
}

// The clipboard package resolves its helper binaries at init, so the paste
// test reruns itself in a child process whose PATH holds a fake xclip/xsel.
const fakeClipboardEnv = "FIELDKIT_FAKE_CLIPBOARD"

func TestModelPasteProposesToBinding(t *testing.T) {
	if os.Getenv(fakeClipboardEnv) == "1" {
		pasteIntoField(t)
		return
	}
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("clipboard helpers are only faked on unix")
	}
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"xclip", "xsel", "wl-paste"} {
		script := []byte("#!/bin/sh\nprintf PASTED\n")
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), script, 0o755))
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestModelPasteProposesToBinding$", "-test.v")
	cmd.Env = append(os.Environ(), fakeClipboardEnv+"=1", "PATH="+dir, "WAYLAND_DISPLAY=")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Contains(t, string(out), "--- PASS: TestModelPasteProposesToBinding")
}

func pasteIntoField(t *testing.T) {
	t.Helper()

	buffer := "ab"
	m := New(Bind(&buffer), Config{State: StateFocused})
	m.Focus()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	require.NotNil(t, cmd)
	assert.Equal(t, "ab", buffer)

	m, cmd = m.Update(cmd())
	assert.Equal(t, "abPASTED", buffer)
	assert.Contains(t, ansi.Strip(m.View()), "abPASTED")

	var edited []EditedMsg
	for _, msg := range collect(t, cmd) {
		if e, ok := msg.(EditedMsg); ok {
			edited = append(edited, e)
		}
	}
	require.Len(t, edited, 1)
	assert.Equal(t, EditedMsg{ID: m.ID(), Value: "abPASTED"}, edited[0])
}

func TestModelDisabledRejectsPaste(t *testing.T) {
	t.Parallel()

	buffer := "locked"
	m := New(Bind(&buffer), Config{State: StateDisabled})
	m.focused = true

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.Nil(t, cmd)
	assert.Equal(t, "locked", buffer)
}
