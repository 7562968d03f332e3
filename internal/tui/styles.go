package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the FOLIO logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "F O L I O" as a flowing wave of violet light.
// Deep plum (#2a1a3a) -> bright violet (#c084e0). No hue drift.
func renderShimmerLogo(frame int) string {
	const text = "FOLIO"
	n := len(text)

	var out string

	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// One smooth wave advancing through the text
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Deep:   (42, 26, 58)    #2a1a3a
		// Bright: (192, 132, 224) #c084e0
		r := clampByte(42 + b*(192-42))
		g := clampByte(26 + b*(132-26))
		bl := clampByte(58 + b*(224-58))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += "  "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles, folio neutral palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Search / accent
	searchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c084e0")).
			Bold(true)

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a060d0"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))

	sampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4a844"))

	sectionTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4a844")).
				Bold(true)

	sectionDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8890a0")).
				Italic(true)

	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a060d0")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	// Selected row background
	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	// Template badges
	templateColors = map[string]lipgloss.Color{
		"modern":   lipgloss.Color("#4ade80"),
		"creative": lipgloss.Color("#c084e0"),
	}
)

// TemplateStyle returns the badge style for a template name, dim for
// anything unknown.
func TemplateStyle(name string) lipgloss.Style {
	if c, ok := templateColors[name]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return dimStyle
}

func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpItem is a row in the help overlay.
type helpItem struct {
	label string
	key   string
}

var helpItems = []helpItem{
	{"new profile", "n"},
	{"view selected", "enter"},
	{"edit selected", "e"},
	{"delete selected", "d"},
	{"filter by skill", "/"},
	{"filter by role", "r"},
	{"refresh", "R"},
	{"quit", "q"},
}

func helpView(cursor int) string {
	out := " " + sectionTitleStyle.Render("KEYS") + "\n\n"
	for i, item := range helpItems {
		prefix := "   "
		style := dimStyle
		if i == cursor {
			prefix = " " + accentStyle.Render("▸") + " "
			style = selectedStyle
		}
		out += prefix + helpKeyStyle.Render(fmt.Sprintf("%-7s", item.key)) + style.Render(item.label) + "\n"
	}
	return out
}
