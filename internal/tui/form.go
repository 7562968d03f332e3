package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Abhishek10293/PortfolioGenerator/internal/imageio"
	"github.com/Abhishek10293/PortfolioGenerator/internal/store"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/wizard"
)

// formDoneMsg tells the app a profile was committed.
type formDoneMsg struct {
	id string
}

type commitResultMsg struct {
	id  string
	err error
}

// imageEncodedMsg carries a finished image conversion. project is the
// portfolio slot the image belongs to, or -1 for the profile photo.
type imageEncodedMsg struct {
	handle  string
	project int
	err     error
}

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldImage
)

// formField is one editable row of the current section, closed over the
// wizard so editing goes through its typed mutators.
type formField struct {
	label   string
	kind    fieldKind
	row     int // list row this field belongs to, -1 for scalars
	project int // portfolio slot for image fields, -1 otherwise
	get     func() string
	set     func(string)
}

type formModel struct {
	store  *store.Store
	wiz    *wizard.Wizard
	fields []formField
	focus  int

	// image attach sub-state: typing a file path for the focused image field
	pathEntry  bool
	pathBuf    string
	pathTarget int // portfolio slot, -1 for profile photo

	spin      spinner.Model
	statusMsg string
	errMsg    string
	width     int
	height    int
}

func newFormModel(st *store.Store, t domain.Template) formModel {
	return newFormWith(st, wizard.New(t))
}

func newEditFormModel(st *store.Store, p domain.Profile) formModel {
	return newFormWith(st, wizard.Edit(p))
}

func newFormWith(st *store.Store, w *wizard.Wizard) formModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle
	m := formModel{store: st, wiz: w, spin: sp, pathTarget: -1}
	m.rebuildFields()
	return m
}

func (m formModel) Init() tea.Cmd {
	return nil
}

// rebuildFields derives the editable field list for the current section.
// Called after every section change and list mutation.
func (m *formModel) rebuildFields() {
	w := m.wiz
	d := w.Draft()
	var fs []formField

	scalar := func(label string, f wizard.ScalarField) formField {
		return formField{
			label: label, row: -1, project: -1,
			get: func() string { return w.Scalar(f) },
			set: func(v string) { w.SetScalar(f, v) },
		}
	}

	switch w.Section() {
	case wizard.SectionHero:
		fs = append(fs,
			scalar("name", wizard.FieldName),
			scalar("title", wizard.FieldTitle),
			scalar("tagline", wizard.FieldTagline),
			formField{label: "photo", kind: fieldImage, row: -1, project: -1,
				get: func() string { return w.Scalar(wizard.FieldProfileImage) }},
		)

	case wizard.SectionAbout:
		fs = append(fs,
			scalar("bio", wizard.FieldBio),
			scalar("email", wizard.FieldEmail),
			scalar("phone", wizard.FieldPhone),
			scalar("location", wizard.FieldLocation),
		)
		for i := range d.Socials {
			i := i
			fs = append(fs,
				formField{label: fmt.Sprintf("social %d platform", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Socials[i].Platform },
					set: func(v string) {
						s := w.Draft().Socials[i]
						s.Platform = v
						w.UpdateSocial(i, s)
					}},
				formField{label: fmt.Sprintf("social %d url", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Socials[i].URL },
					set: func(v string) {
						s := w.Draft().Socials[i]
						s.URL = v
						w.UpdateSocial(i, s)
					}},
			)
		}

	case wizard.SectionSkills:
		for i := range d.Skills {
			i := i
			fs = append(fs, formField{label: fmt.Sprintf("skill %d", i+1), row: i, project: -1,
				get: func() string { return w.Draft().Skills[i] },
				set: func(v string) { w.UpdateSkill(i, v) }})
		}

	case wizard.SectionServices:
		for i := range d.Services {
			i := i
			fs = append(fs,
				formField{label: fmt.Sprintf("service %d title", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Services[i].Title },
					set: func(v string) {
						s := w.Draft().Services[i]
						s.Title = v
						w.UpdateService(i, s)
					}},
				formField{label: fmt.Sprintf("service %d details", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Services[i].Description },
					set: func(v string) {
						s := w.Draft().Services[i]
						s.Description = v
						w.UpdateService(i, s)
					}},
			)
		}

	case wizard.SectionPortfolio:
		for i := range d.Portfolio {
			i := i
			fs = append(fs,
				formField{label: fmt.Sprintf("project %d title", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Portfolio[i].Title },
					set: func(v string) {
						p := w.Draft().Portfolio[i]
						p.Title = v
						w.UpdateProject(i, p)
					}},
				formField{label: fmt.Sprintf("project %d details", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Portfolio[i].Description },
					set: func(v string) {
						p := w.Draft().Portfolio[i]
						p.Description = v
						w.UpdateProject(i, p)
					}},
				formField{label: fmt.Sprintf("project %d image", i+1), kind: fieldImage, row: i, project: i,
					get: func() string { return w.Draft().Portfolio[i].Image }},
			)
		}

	case wizard.SectionTestimonials:
		for i := range d.Testimonials {
			i := i
			fs = append(fs,
				formField{label: fmt.Sprintf("testimonial %d name", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Testimonials[i].Name },
					set: func(v string) {
						t := w.Draft().Testimonials[i]
						t.Name = v
						w.UpdateTestimonial(i, t)
					}},
				formField{label: fmt.Sprintf("testimonial %d role", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Testimonials[i].Role },
					set: func(v string) {
						t := w.Draft().Testimonials[i]
						t.Role = v
						w.UpdateTestimonial(i, t)
					}},
				formField{label: fmt.Sprintf("testimonial %d quote", i+1), row: i, project: -1,
					get: func() string { return w.Draft().Testimonials[i].Quote },
					set: func(v string) {
						t := w.Draft().Testimonials[i]
						t.Quote = v
						w.UpdateTestimonial(i, t)
					}},
			)
		}

	case wizard.SectionBlog:
		fs = append(fs,
			scalar("blog title", wizard.FieldBlogTitle),
			scalar("blog summary", wizard.FieldBlogSummary),
		)

	case wizard.SectionContact:
		fs = append(fs,
			scalar("message", wizard.FieldContactMessage),
			scalar("contact email", wizard.FieldContactEmail),
			scalar("contact phone", wizard.FieldContactPhone),
		)
	}

	m.fields = fs
	if m.focus >= len(fs) {
		m.focus = 0
	}
}

// sectionSupportsRows reports whether ctrl+a / ctrl+d apply here.
func (m formModel) sectionSupportsRows() bool {
	switch m.wiz.Section() {
	case wizard.SectionAbout, wizard.SectionSkills, wizard.SectionTestimonials:
		return true
	}
	return false
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.wiz.ImageBusy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case imageEncodedMsg:
		m.wiz.FinishImage()
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("image: %v", msg.err)
			return m, nil
		}
		if msg.project >= 0 {
			m.wiz.SetProjectImage(msg.project, msg.handle)
		} else {
			m.wiz.SetScalar(wizard.FieldProfileImage, msg.handle)
		}
		m.statusMsg = "image attached"
		return m, nil

	case commitResultMsg:
		if msg.err != nil {
			var verr *wizard.ValidationError
			switch {
			case errors.As(msg.err, &verr):
				m.errMsg = "missing: " + strings.Join(verr.Fields, ", ")
			case errors.Is(msg.err, wizard.ErrImageBusy):
				m.errMsg = "wait for the image upload to finish"
			default:
				m.errMsg = fmt.Sprintf("save failed: %v", msg.err)
			}
			return m, nil
		}
		id := msg.id
		return m, func() tea.Msg { return formDoneMsg{id: id} }

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		m.errMsg = ""
		if m.pathEntry {
			return m.updatePathEntry(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m formModel) updatePathEntry(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pathEntry = false
		m.pathBuf = ""
	case "enter":
		path := strings.TrimSpace(m.pathBuf)
		m.pathEntry = false
		m.pathBuf = ""
		if path == "" {
			return m, nil
		}
		m.wiz.BeginImage()
		target := m.pathTarget
		encode := func() tea.Msg {
			handle, err := imageio.EncodeFile(path)
			return imageEncodedMsg{handle: handle, project: target, err: err}
		}
		return m, tea.Batch(encode, m.spin.Tick)
	default:
		m.pathBuf = editRune(m.pathBuf, msg.String())
	}
	return m, nil
}

func (m formModel) updateKeys(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		st := m.store
		w := m.wiz
		return m, func() tea.Msg {
			id, err := w.Commit(st)
			return commitResultMsg{id: id, err: err}
		}

	case "tab", "down":
		if m.focus < len(m.fields)-1 {
			m.focus++
		}
	case "shift+tab", "up":
		if m.focus > 0 {
			m.focus--
		}

	case "enter":
		// Next field, spilling into the next section from the last one.
		if m.focus < len(m.fields)-1 {
			m.focus++
			return m, nil
		}
		if !m.wiz.AtLast() {
			m.wiz.Next()
			m.focus = 0
			m.rebuildFields()
		}

	case "ctrl+n", "right":
		if !m.wiz.AtLast() {
			m.wiz.Next()
			m.focus = 0
			m.rebuildFields()
		}
	case "ctrl+p", "left":
		if !m.wiz.AtFirst() {
			m.wiz.Prev()
			m.focus = 0
			m.rebuildFields()
		}

	case "ctrl+a":
		switch m.wiz.Section() {
		case wizard.SectionAbout:
			m.wiz.AddSocial(domain.Social{})
		case wizard.SectionSkills:
			m.wiz.AddSkill("")
		case wizard.SectionTestimonials:
			m.wiz.AddTestimonial(domain.Testimonial{})
		default:
			return m, nil
		}
		m.rebuildFields()
		m.focus = len(m.fields) - 1

	case "ctrl+d":
		if m.focus >= len(m.fields) {
			return m, nil
		}
		row := m.fields[m.focus].row
		if row < 0 {
			return m, nil
		}
		switch m.wiz.Section() {
		case wizard.SectionAbout:
			m.wiz.RemoveSocial(row)
		case wizard.SectionSkills:
			m.wiz.RemoveSkill(row)
		case wizard.SectionTestimonials:
			m.wiz.RemoveTestimonial(row)
		default:
			return m, nil
		}
		m.rebuildFields()

	case "ctrl+o":
		if m.focus < len(m.fields) && m.fields[m.focus].kind == fieldImage {
			m.pathEntry = true
			m.pathBuf = ""
			m.pathTarget = m.fields[m.focus].project
		}

	default:
		if m.focus < len(m.fields) {
			f := m.fields[m.focus]
			switch {
			case f.kind == fieldText && f.set != nil:
				f.set(editRune(f.get(), msg.String()))
			case f.kind == fieldImage && msg.String() == "i":
				m.pathEntry = true
				m.pathBuf = ""
				m.pathTarget = f.project
			}
		}
	}
	return m, nil
}

func (m formModel) View() string {
	var b strings.Builder

	info := wizard.Sections[m.wiz.Section()]
	step := fmt.Sprintf("%d/%d", int(m.wiz.Section())+1, len(wizard.Sections))
	mode := "new"
	if m.wiz.Editing() {
		mode = "edit"
	}
	b.WriteString(" " + sectionTitleStyle.Render(strings.ToUpper(info.Title)) +
		"  " + metaStyle.Render(step) +
		"  " + TemplateStyle(string(m.wiz.Template())).Render(string(m.wiz.Template())) +
		"  " + dimStyle.Render(mode) + "\n")
	b.WriteString(" " + sectionDescStyle.Render(info.Description) + "\n\n")

	for i, f := range m.fields {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = accentStyle.Render(">")
			style = selectedStyle
		}

		if f.kind == fieldImage {
			state := inputPlaceholderStyle.Render("none  (i to attach)")
			if m.wiz.ImageBusy() && i == m.focus {
				state = m.spin.View() + dimStyle.Render(" converting...")
			} else if f.get() != "" {
				state = okStyle.Render("attached")
			}
			fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(f.label), state)
			continue
		}

		value := f.get()
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(f.label), normalStyle.Render(value))
	}

	if m.pathEntry {
		b.WriteString("\n " + inputPromptStyle.Render("image path> ") + m.pathBuf + "█\n")
	}

	b.WriteString("\n")
	switch {
	case m.errMsg != "":
		b.WriteString(" " + errStyle.Render(m.errMsg))
	case m.statusMsg != "":
		b.WriteString(" " + okStyle.Render(m.statusMsg))
	case m.wiz.AtLast():
		b.WriteString(" " + dimStyle.Render("ctrl+s saves the profile"))
	case m.sectionSupportsRows():
		b.WriteString(" " + dimStyle.Render("ctrl+a adds a row, ctrl+d removes the current one"))
	}

	return b.String()
}
