package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

func TestPickerListsAllTemplates(t *testing.T) {
	m := newPickerModel(domain.TemplateModern)

	view := m.View()
	for _, tmpl := range domain.Templates {
		if !strings.Contains(view, string(tmpl)) {
			t.Errorf("expected template %q in view, got:\n%s", tmpl, view)
		}
	}
}

func TestPickerStartsOnPreferredTemplate(t *testing.T) {
	m := newPickerModel(domain.TemplateCreative)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from enter")
	}
	msg, ok := cmd().(templateChosenMsg)
	if !ok {
		t.Fatalf("expected templateChosenMsg, got %T", cmd())
	}
	if msg.template != domain.TemplateCreative {
		t.Errorf("expected preselected creative, got %q", msg.template)
	}
}

func TestPickerNavigationClamps(t *testing.T) {
	m := newPickerModel(domain.TemplateModern)

	m, _ = m.Update(keyRunes("k"))
	if m.cursor != 0 {
		t.Errorf("cursor above first template: %d", m.cursor)
	}
	for i := 0; i < 5; i++ {
		m, _ = m.Update(keyRunes("j"))
	}
	if m.cursor != len(domain.Templates)-1 {
		t.Errorf("cursor past last template: %d", m.cursor)
	}
}
