package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

// templateChosenMsg asks the app to open a fresh form on the chosen template.
type templateChosenMsg struct {
	template domain.Template
}

type pickerModel struct {
	cursor int
	width  int
	height int
}

// templateBlurbs previews what each template looks like.
var templateBlurbs = map[domain.Template]string{
	domain.TemplateModern:   "Clean flat sections with emerald accents. The safe default.",
	domain.TemplateCreative: "Boxed sections, violet and amber. For louder portfolios.",
}

func newPickerModel(preferred domain.Template) pickerModel {
	m := pickerModel{}
	for i, t := range domain.Templates {
		if t == preferred {
			m.cursor = i
		}
	}
	return m
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (pickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down", "l", "right":
			if m.cursor < len(domain.Templates)-1 {
				m.cursor++
			}
		case "k", "up", "h", "left":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			t := domain.Templates[m.cursor]
			return m, func() tea.Msg { return templateChosenMsg{template: t} }
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(" " + sectionTitleStyle.Render("PICK A TEMPLATE") + "\n")
	b.WriteString(" " + sectionDescStyle.Render("The template is fixed once the profile is created.") + "\n\n")

	for i, t := range domain.Templates {
		name := string(t)
		cursor := "  "
		style := dimStyle
		if i == m.cursor {
			cursor = " " + accentStyle.Render("▸")
			style = selectedStyle
		}
		b.WriteString(cursor + " " + TemplateStyle(name).Render("●") + " " + style.Render(name) + "\n")
		b.WriteString("     " + metaStyle.Render(templateBlurbs[t]) + "\n")
	}

	return b.String()
}
