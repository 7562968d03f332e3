package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek10293/PortfolioGenerator/internal/store"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/catalog"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

type filterTarget int

const (
	filterNone filterTarget = iota
	filterSkill
	filterRole
)

// openViewerMsg asks the app to show a profile read-only.
type openViewerMsg struct {
	id string
}

// openEditorMsg asks the app to reopen the form on an existing profile.
type openEditorMsg struct {
	profile domain.Profile
}

type profilesLoadedMsg struct {
	profiles []domain.Profile
	err      error
}

type deleteResultMsg struct {
	err error
}

type catalogModel struct {
	store     *store.Store
	all       []domain.Profile
	profiles  []domain.Profile // all with filters applied
	cursor    int
	skill     string
	role      string
	editing   filterTarget // which filter is being typed, if any
	confirmID string       // pending delete awaiting y/n
	err       error
	width     int
	height    int
	loading   bool
	statusMsg string
}

func newCatalogModel(st *store.Store) catalogModel {
	return catalogModel{store: st, loading: true}
}

func (m catalogModel) load() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		ps, err := catalog.Visible(st)
		return profilesLoadedMsg{profiles: ps, err: err}
	}
}

func (m catalogModel) Init() tea.Cmd {
	return m.load()
}

func (m *catalogModel) applyFilters() {
	m.profiles = catalog.Filter(m.all, m.skill, m.role)
	if m.cursor >= len(m.profiles) {
		m.cursor = 0
	}
}

func (m catalogModel) selected() (domain.Profile, bool) {
	if m.cursor < 0 || m.cursor >= len(m.profiles) {
		return domain.Profile{}, false
	}
	return m.profiles[m.cursor], true
}

func (m catalogModel) Update(msg tea.Msg) (catalogModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		m.loading = false
		m.all = msg.profiles
		m.err = msg.err
		m.applyFilters()
		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("delete failed: %v", msg.err)
			return m, nil
		}
		m.statusMsg = "deleted"
		m.loading = true
		return m, m.load()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		if m.editing != filterNone {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m catalogModel) updateFilter(msg tea.KeyMsg) (catalogModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.editing = filterNone
	case "esc":
		if m.editing == filterSkill {
			m.skill = ""
		} else {
			m.role = ""
		}
		m.editing = filterNone
		m.applyFilters()
	default:
		if m.editing == filterSkill {
			m.skill = editRune(m.skill, msg.String())
		} else {
			m.role = editRune(m.role, msg.String())
		}
		m.applyFilters()
	}
	return m, nil
}

func (m catalogModel) updateList(msg tea.KeyMsg) (catalogModel, tea.Cmd) {
	// A pending delete swallows the next key: y commits, anything else
	// cancels.
	if m.confirmID != "" {
		id := m.confirmID
		m.confirmID = ""
		if msg.String() == "y" {
			st := m.store
			return m, func() tea.Msg {
				return deleteResultMsg{err: st.Delete(id)}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.profiles)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		if p, ok := m.selected(); ok {
			id := p.ID
			return m, func() tea.Msg { return openViewerMsg{id: id} }
		}
	case "e":
		if p, ok := m.selected(); ok {
			if !catalog.Deletable(p) {
				m.statusMsg = "samples are read-only"
				return m, nil
			}
			prof := p
			return m, func() tea.Msg { return openEditorMsg{profile: prof} }
		}
	case "d":
		if p, ok := m.selected(); ok {
			if !catalog.Deletable(p) {
				m.statusMsg = "samples cannot be deleted"
				return m, nil
			}
			m.confirmID = p.ID
		}
	case "/":
		m.editing = filterSkill
		m.skill = ""
	case "r":
		m.editing = filterRole
		m.role = ""
	case "R":
		m.loading = true
		return m, m.load()
	}
	return m, nil
}

func (m catalogModel) View() string {
	var b strings.Builder

	if m.width >= 50 {
		b.WriteString(" " + sectionTitleStyle.Render("PROFILES") + "  " + sectionDescStyle.Render("Every portfolio, yours and sampled.") + "\n")
	} else {
		b.WriteString(" " + sectionTitleStyle.Render("PROFILES") + "\n")
	}

	// Filter bars
	switch {
	case m.editing == filterSkill:
		b.WriteString(" " + searchStyle.Render("skill: "+m.skill+"█"))
	case m.skill != "":
		b.WriteString(" " + searchStyle.Render("skill: "+m.skill))
	default:
		b.WriteString(" " + dimStyle.Render("/ skill..."))
	}
	b.WriteString("   ")
	switch {
	case m.editing == filterRole:
		b.WriteString(searchStyle.Render("role: " + m.role + "█"))
	case m.role != "":
		b.WriteString(searchStyle.Render("role: " + m.role))
	default:
		b.WriteString(dimStyle.Render("r role..."))
	}
	b.WriteString("\n")

	sepW := m.width - 2
	if sepW < 4 {
		sepW = 4
	}
	b.WriteString(" " + metaStyle.Render(strings.Repeat("─", sepW)) + "\n")

	if m.confirmID != "" {
		b.WriteString(" " + errStyle.Render("delete this profile? y/n") + "\n")
	} else if m.statusMsg != "" {
		b.WriteString(" " + okStyle.Render(m.statusMsg) + "\n")
	}

	if m.loading {
		b.WriteString(" " + dimStyle.Render("loading..."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(" " + errStyle.Render(fmt.Sprintf("error: %v", m.err)))
		return b.String()
	}
	if len(m.profiles) == 0 {
		b.WriteString(" " + dimStyle.Render("no profiles match"))
		return b.String()
	}

	viewChrome := 6
	maxVisible := m.height - viewChrome
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	for i := start; i < len(m.profiles) && i < start+maxVisible; i++ {
		p := m.profiles[i]

		cursor := "  "
		nameStyle := dimStyle
		if i == m.cursor {
			cursor = accentStyle.Render("▸") + " "
			nameStyle = normalStyle.Bold(true)
		}

		badge := TemplateStyle(p.Template).Render("●") + " "

		// Right columns: template(8) + rating(5) + sample tag(7)
		var rightParts []string
		rightWidth := 0
		if m.width >= 60 {
			rightParts = append(rightParts, TemplateStyle(p.Template).Render(fmt.Sprintf("%-8s", p.Template)))
			rightWidth += 9
		}
		if p.Rating > 0 {
			rightParts = append(rightParts, starStyle.Render(fmt.Sprintf("★%.1f", p.Rating)))
			rightWidth += 5
		}
		if domain.IsSampleID(p.ID) {
			rightParts = append(rightParts, sampleStyle.Render("sample"))
			rightWidth += 7
		}

		nameWidth := m.width - 4 - rightWidth
		if nameWidth < 10 {
			nameWidth = 10
		}
		label := p.Name
		if p.Title != "" {
			label += "  ·  " + p.Title
		}
		label = truncStr(oneLine(label), nameWidth)
		labelPadded := fmt.Sprintf("%-*s", nameWidth, label)

		line := cursor + badge + nameStyle.Render(labelPadded) + " " + strings.Join(rightParts, " ")
		if i == m.cursor {
			padded := line + strings.Repeat(" ", max(m.width-lipgloss.Width(line), 0))
			b.WriteString(selectedRowBg.Render(padded) + "\n")
		} else {
			b.WriteString(line + "\n")
		}
	}

	// Preview of the selected profile
	if p, ok := m.selected(); ok {
		b.WriteString("\n")
		header := " " + TemplateStyle(p.Template).Render("["+p.Template+"]")
		if len(p.DisplaySkills()) > 0 {
			header += "  " + metaStyle.Render(truncStr(strings.Join(p.DisplaySkills(), ", "), m.width-20))
		}
		b.WriteString(header + "\n")
		if p.Tagline != "" {
			detailWidth := m.width - 4
			if detailWidth < 40 {
				detailWidth = 40
			}
			wrapped := lipgloss.NewStyle().Width(detailWidth).Render(p.Tagline)
			for _, line := range strings.Split(wrapped, "\n") {
				b.WriteString("  " + dimStyle.Render(line) + "\n")
			}
		}
	}

	return b.String()
}
