package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Abhishek10293/PortfolioGenerator/internal/browser"
	"github.com/Abhishek10293/PortfolioGenerator/internal/store"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/render"
)

type profileLoadedMsg struct {
	profile domain.Profile
	err     error
}

type copyResultMsg struct{ err error }

type viewerModel struct {
	store     *store.Store
	profile   domain.Profile
	loaded    bool
	notFound  bool
	err       error
	vp        viewport.Model
	closed    bool
	statusMsg string
	width     int
	height    int
}

func newViewerModel(st *store.Store) viewerModel {
	vp := viewport.New(80, 20)
	return viewerModel{store: st, vp: vp}
}

// load fetches a profile by id, checking the samples first so sample
// entries open without touching disk.
func (m viewerModel) load(id string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		if p, ok := domain.SampleByID(id); ok {
			return profileLoadedMsg{profile: p}
		}
		p, err := st.Get(id)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m viewerModel) Update(msg tea.Msg) (viewerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, store.ErrNotFound) {
				m.notFound = true
			} else {
				m.err = msg.err
			}
			return m, nil
		}
		m.profile = msg.profile
		m.loaded = true
		m.notFound = false
		m.err = nil
		m.refreshContent()
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-2, 0) // header + status
		if m.loaded {
			m.refreshContent()
		}
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "esc":
			m.closed = true
			return m, nil
		case "c":
			if m.loaded {
				mail := m.profile.ContactEmail()
				return m, func() tea.Msg {
					return copyResultMsg{err: clipboard.WriteAll(mail)}
				}
			}
		case "o":
			if m.loaded {
				if socials := m.profile.DisplaySocials(); len(socials) > 0 {
					browser.Open(socials[0].URL) //nolint:errcheck // best-effort browser open
					m.statusMsg = "opening " + socials[0].Platform
				}
			}
		default:
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *viewerModel) refreshContent() {
	w := m.vp.Width
	if w <= 0 {
		w = 80
	}
	r := render.For(m.profile.Template)
	m.vp.SetContent(r.Render(m.profile, w))
	m.vp.GotoTop()
}

func (m viewerModel) View() string {
	var b strings.Builder

	switch {
	case m.notFound:
		b.WriteString(" " + errStyle.Render("profile not found") + "\n")
		b.WriteString(" " + dimStyle.Render("it may have been deleted; esc goes back"))
		return b.String()
	case m.err != nil:
		b.WriteString(" " + errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		return b.String()
	case !m.loaded:
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}

	header := " " + selectedStyle.Render(m.profile.Name) +
		"  " + TemplateStyle(m.profile.Template).Render("["+m.profile.Template+"]")
	if domain.IsSampleID(m.profile.ID) {
		header += "  " + sampleStyle.Render("sample")
	}
	if m.statusMsg != "" {
		header += "  " + okStyle.Render(m.statusMsg)
	}
	b.WriteString(header + "\n")
	b.WriteString(m.vp.View())
	return b.String()
}
