package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Abhishek10293/PortfolioGenerator/internal/store"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	st, err := store.Open(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	a := NewApp(st, nil, domain.TemplateModern, "dev")
	model, _ := a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return model.(App)
}

func update(a App, msg tea.Msg) App {
	model, _ := a.Update(msg)
	return model.(App)
}

func TestAppStartsOnCatalog(t *testing.T) {
	a := newTestApp(t)
	a.catalog.loading = false
	a = update(a, profilesLoadedMsg{profiles: domain.Samples()})

	view := a.View()
	if !strings.Contains(view, "PROFILES") {
		t.Errorf("expected catalog view, got:\n%s", view)
	}
	if !strings.Contains(view, "F") { // shimmer logo letters
		t.Errorf("expected logo header, got:\n%s", view)
	}
}

func TestAppNOpensPickerAndEscReturns(t *testing.T) {
	a := newTestApp(t)
	a = update(a, keyRunes("n"))
	if a.view != viewPicker {
		t.Fatalf("expected picker view, got %d", a.view)
	}
	if !strings.Contains(a.View(), "PICK A TEMPLATE") {
		t.Errorf("expected picker body, got:\n%s", a.View())
	}

	a = update(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.view != viewCatalog {
		t.Errorf("esc should return to catalog, got %d", a.view)
	}
}

func TestAppTemplateChoiceOpensForm(t *testing.T) {
	a := newTestApp(t)
	a = update(a, keyRunes("n"))
	a = update(a, templateChosenMsg{template: domain.TemplateCreative})

	if a.view != viewForm {
		t.Fatalf("expected form view, got %d", a.view)
	}
	view := a.View()
	if !strings.Contains(view, "HERO SECTION") || !strings.Contains(view, "creative") {
		t.Errorf("expected creative form at hero, got:\n%s", view)
	}
}

func TestAppFormEscAbandonsDraft(t *testing.T) {
	a := newTestApp(t)
	a = update(a, templateChosenMsg{template: domain.TemplateModern})
	a = update(a, keyRunes("x")) // start typing a name

	a = update(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.view != viewCatalog {
		t.Errorf("esc in form should abandon to catalog, got %d", a.view)
	}

	ps, err := a.store.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 0 {
		t.Errorf("abandoned draft must not persist, found %d profiles", len(ps))
	}
}

func TestAppFormDoneOpensViewer(t *testing.T) {
	a := newTestApp(t)

	p := domain.NewDraft(domain.TemplateModern)
	p.ID = "done-1"
	p.Name = "Ada Lovelace"
	p.Title = "Engineer"
	p.Bio = "First programmer."
	p.Email = "ada@example.com"
	if err := a.store.Put(p); err != nil {
		t.Fatal(err)
	}

	a = update(a, formDoneMsg{id: "done-1"})
	if a.view != viewViewer {
		t.Fatalf("expected viewer after commit, got %d", a.view)
	}
	a.viewer, _ = a.viewer.Update(a.viewer.load("done-1")())
	if !strings.Contains(a.View(), "Ada Lovelace") {
		t.Errorf("expected committed profile in viewer, got:\n%s", a.View())
	}
}

func TestAppEditorMsgOpensEditForm(t *testing.T) {
	a := newTestApp(t)

	p := domain.NewDraft(domain.TemplateModern)
	p.ID = "e-1"
	p.Name = "Ada"
	a = update(a, openEditorMsg{profile: p})

	if a.view != viewForm {
		t.Fatalf("expected form view, got %d", a.view)
	}
	if !a.form.wiz.Editing() {
		t.Error("expected the form wizard in edit mode")
	}
}

func TestAppHelpOverlayCapturesKeys(t *testing.T) {
	a := newTestApp(t)
	a = update(a, keyRunes("h"))
	if !a.helpOpen {
		t.Fatal("expected help overlay open")
	}
	if !strings.Contains(a.View(), "KEYS") {
		t.Errorf("expected help body, got:\n%s", a.View())
	}

	a = update(a, keyRunes("n")) // must NOT open the picker while help shows
	if a.view != viewCatalog || a.helpOpen != true {
		t.Error("help overlay should swallow view keys")
	}

	a = update(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.helpOpen {
		t.Error("esc should close help")
	}
}

func TestAppQuitReleasesStoreSubscription(t *testing.T) {
	a := newTestApp(t)

	model, cmd := a.Update(keyRunes("q"))
	a = model.(App)
	if cmd == nil {
		t.Fatal("expected quit command")
	}

	select {
	case _, ok := <-a.events:
		if ok {
			t.Error("expected notifier channel closed after quit")
		}
	default:
		t.Error("notifier channel still open after quit")
	}
}

func TestAppStoreEventRefreshesCatalog(t *testing.T) {
	a := newTestApp(t)

	model, cmd := a.Update(storeEventMsg{event: store.Event{Kind: store.EventSaved, ProfileID: "x"}})
	a = model.(App)
	if cmd == nil {
		t.Fatal("expected reload + rearm commands after store event")
	}
}
