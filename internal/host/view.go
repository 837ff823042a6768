package host

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/fieldkit/internal/ui"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

// View renders the form.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ctx := components.DefaultContext().WithTheme(m.theme)

	fields := make([]ui.Renderable, 0, len(m.entries))
	for _, e := range m.entries {
		f := e.field
		fields = append(fields, ui.RenderableFunc(func() string {
			return f.ViewWithContext(ctx)
		}))
	}

	sections := []ui.Renderable{
		components.NewText(m.title).WithStyle(m.styles.title),
		components.VStack(fields...).WithGap(1),
	}
	if done, total := m.completion(); total > 0 {
		sections = append(sections, components.NewProgress(total).
			WithCompleted(done).
			WithLabel("fields complete").
			WithStyle(m.styles.footer))
	}
	if status := m.status(); status != "" {
		sections = append(sections, components.NewText(status).WithStyle(m.statusStyle()))
	}
	sections = append(sections, components.NewText(m.help.View(m.keys)).WithStyle(m.styles.footer))

	return components.VStack(sections...).ViewWithContext(ctx)
}

// completion counts the editable fields whose value is present and passes
// its rules.
func (m Model) completion() (done, total int) {
	for _, e := range m.entries {
		if e.pinned() {
			continue
		}
		total++
		if e.value == "" {
			continue
		}
		if msg, err := check(e); err == nil && msg == "" {
			done++
		}
	}
	return done, total
}

func (m Model) status() string {
	switch {
	case m.submitted:
		return "✓ Submitted"
	case m.failures == 1:
		return "1 field needs attention"
	case m.failures > 1:
		return fmt.Sprintf("%d fields need attention", m.failures)
	}
	return ""
}

func (m Model) statusStyle() lipgloss.Style {
	if m.submitted {
		return m.styles.success
	}
	return m.styles.failure
}
