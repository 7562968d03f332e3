// Package tui is the terminal frontend: a root model that routes between
// the catalog, the template picker, the form, and the profile viewer.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Abhishek10293/PortfolioGenerator/internal/store"
	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

type view int

const (
	viewCatalog view = iota
	viewPicker
	viewForm
	viewViewer
)

// storeEventMsg wraps a storage notification into the Bubbletea loop.
type storeEventMsg struct {
	event store.Event
}

// App is the root Bubbletea model.
type App struct {
	store       *store.Store
	log         *zap.Logger
	version     string
	defaultTmpl domain.Template

	view    view
	catalog catalogModel
	picker  pickerModel
	form    formModel
	viewer  viewerModel

	viewingID string // id open in the viewer, for external-change refresh

	events      <-chan store.Event
	eventCancel func()

	helpOpen   bool
	helpCursor int
	width      int
	height     int
	frame      int // logo shimmer animation frame
}

// NewApp creates the TUI application. It subscribes to the store's
// notifier so saves, deletes, and external file changes refresh the
// catalog while the app runs.
func NewApp(st *store.Store, log *zap.Logger, defaultTmpl domain.Template, version string) App {
	if log == nil {
		log = zap.NewNop()
	}
	events, cancel := st.Notifier().Subscribe()
	return App{
		store:       st,
		log:         log,
		version:     version,
		defaultTmpl: defaultTmpl,
		catalog:     newCatalogModel(st),
		picker:      newPickerModel(defaultTmpl),
		form:        newFormModel(st, defaultTmpl),
		viewer:      newViewerModel(st),
		events:      events,
		eventCancel: cancel,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.catalog.Init(), shimmerTickCmd(), a.waitEvent())
}

func (a App) waitEvent() tea.Cmd {
	ch := a.events
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg{event: ev}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + help(1) = 3 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 3}
		a.catalog, _ = a.catalog.Update(bodyMsg)
		a.picker, _ = a.picker.Update(bodyMsg)
		a.form, _ = a.form.Update(bodyMsg)
		a.viewer, _ = a.viewer.Update(bodyMsg)

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case storeEventMsg:
		a.log.Debug("store event",
			zap.Int("kind", int(msg.event.Kind)),
			zap.String("id", msg.event.ProfileID))
		cmds := []tea.Cmd{a.catalog.load(), a.waitEvent()}
		if a.view == viewViewer && msg.event.ProfileID == a.viewingID {
			cmds = append(cmds, a.viewer.load(a.viewingID))
		}
		return a, tea.Batch(cmds...)

	case templateChosenMsg:
		a.view = viewForm
		a.form = newFormModel(a.store, msg.template)
		return a, sizeCmd(a.form, a.width, a.height)

	case openEditorMsg:
		a.view = viewForm
		a.form = newEditFormModel(a.store, msg.profile)
		return a, sizeCmd(a.form, a.width, a.height)

	case openViewerMsg:
		a.view = viewViewer
		a.viewingID = msg.id
		a.viewer = newViewerModel(a.store)
		a.viewer, _ = a.viewer.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height - 3})
		return a, a.viewer.load(msg.id)

	case formDoneMsg:
		a.log.Info("profile committed", zap.String("id", msg.id))
		a.view = viewViewer
		a.viewingID = msg.id
		a.viewer = newViewerModel(a.store)
		a.viewer, _ = a.viewer.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height - 3})
		return a, tea.Batch(a.viewer.load(msg.id), a.catalog.load())

	case tea.KeyMsg:
		// Help overlay captures all keys when open
		if a.helpOpen {
			switch msg.String() {
			case "h", "esc":
				a.helpOpen = false
			case "q", "ctrl+c":
				return a, a.quit()
			case "j", "down":
				if a.helpCursor < len(helpItems)-1 {
					a.helpCursor++
				}
			case "k", "up":
				if a.helpCursor > 0 {
					a.helpCursor--
				}
			}
			return a, nil
		}

		// Global keys (only when not editing)
		if !a.isEditing() {
			switch msg.String() {
			case "h":
				if a.view == viewCatalog {
					a.helpOpen = true
					a.helpCursor = 0
					return a, nil
				}
			case "q", "ctrl+c":
				return a, a.quit()
			case "n":
				if a.view == viewCatalog {
					a.view = viewPicker
					a.picker = newPickerModel(a.defaultTmpl)
					return a, nil
				}
			case "esc":
				switch a.view {
				case viewPicker, viewViewer:
					a.view = viewCatalog
					a.viewingID = ""
					return a, a.catalog.load()
				}
			}
		} else if msg.String() == "esc" && a.view == viewForm && !a.form.pathEntry {
			// Abandon the draft; nothing was persisted.
			a.view = viewCatalog
			return a, a.catalog.load()
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewCatalog:
		a.catalog, cmd = a.catalog.Update(msg)
	case viewPicker:
		a.picker, cmd = a.picker.Update(msg)
	case viewForm:
		a.form, cmd = a.form.Update(msg)
	case viewViewer:
		a.viewer, cmd = a.viewer.Update(msg)
		if a.viewer.closed {
			a.viewer.closed = false
			a.view = viewCatalog
			a.viewingID = ""
			return a, tea.Batch(cmd, a.catalog.load())
		}
	}

	return a, cmd
}

// quit unsubscribes from the store notifier before stopping the program,
// so the waitEvent goroutine is released rather than left parked on the
// channel.
func (a App) quit() tea.Cmd {
	if a.eventCancel != nil {
		a.eventCancel()
	}
	return tea.Quit
}

func sizeCmd(m formModel, w, h int) tea.Cmd {
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: w, Height: h}
	}
}

func (a App) isEditing() bool {
	switch a.view {
	case viewForm:
		return true
	case viewCatalog:
		return a.catalog.editing != filterNone
	}
	return false
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)

	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	tagline := metaStyle.Render("portfolios, forged in the terminal")
	if a.version != "" && a.version != "dev" {
		tagline = metaStyle.Render("portfolios, forged in the terminal  ·  " + a.version)
	}
	tagWidth := lipgloss.Width(tagline)
	tagPad := (a.width - tagWidth) / 2
	if tagPad < 0 {
		tagPad = 0
	}
	header += "\n" + strings.Repeat(" ", tagPad) + tagline

	// Body + help per view
	var body string
	var help string
	switch a.view {
	case viewCatalog:
		body = a.catalog.View()
		if a.catalog.editing != filterNone {
			help = " " + helpEntry("enter", "apply") + "  " + helpEntry("esc", "clear")
		} else {
			help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "view") + "  " + helpEntry("n", "new") + "  " + helpEntry("e", "edit") + "  " + helpEntry("d", "delete") + "  " + helpEntry("/", "skill") + "  " + helpEntry("r", "role") + "  " + helpEntry("h", "help") + "  " + helpEntry("q", "quit")
		}
	case viewPicker:
		body = a.picker.View()
		help = " " + helpEntry("j/k", "choose") + "  " + helpEntry("enter", "start") + "  " + helpEntry("esc", "back")
	case viewForm:
		body = a.form.View()
		help = " " + helpEntry("tab", "field") + "  " + helpEntry("ctrl+n/p", "section") + "  " + helpEntry("i", "image") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("esc", "cancel")
	case viewViewer:
		body = a.viewer.View()
		help = " " + helpEntry("j/k", "scroll") + "  " + helpEntry("c", "copy email") + "  " + helpEntry("o", "open social") + "  " + helpEntry("esc", "back")
	}

	// Help overlay
	if a.helpOpen {
		body = helpView(a.helpCursor)
		help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("esc", "close")
	}

	// Chrome budget: header(2) + help(1) = 3 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-3), "\n")

	return fmt.Sprintf("%s\n%s\n%s", header, body, help)
}
