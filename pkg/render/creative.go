package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

func init() {
	Register(creative{})
}

var (
	creativeNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c084e0")).
				Bold(true)

	creativeTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f0944a")).
				Bold(true)

	creativeHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f0944a"))

	creativeTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c0c4d0"))

	creativeDimStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8890a0"))

	creativeChipStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0b0b10")).
				Background(lipgloss.Color("#c084e0")).
				Padding(0, 1)

	creativeQuoteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#d4a844")).
				Italic(true)

	creativeBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3a2a4a")).
				Padding(0, 1)
)

// creative is the louder template: boxed sections, violet and amber accents,
// skill chips with filled backgrounds.
type creative struct{}

func (creative) Name() domain.Template { return domain.TemplateCreative }

func (creative) Render(p domain.Profile, width int) string {
	w := clampWidth(width)
	inner := w - 4 // border and padding
	wrap := lipgloss.NewStyle().Width(inner)
	box := creativeBoxStyle.Width(w - 2)

	header := func(s string) string {
		return creativeHeaderStyle.Render("✦ " + s)
	}

	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, box.Render(s))
		}
	}

	// Hero
	var hero strings.Builder
	if p.ProfileImage != "" {
		hero.WriteString(creativeDimStyle.Render("◉") + " ")
	} else {
		hero.WriteString(creativeDimStyle.Render("○") + " ")
	}
	hero.WriteString(creativeNameStyle.Render(p.Name) + "\n")
	hero.WriteString(creativeTitleStyle.Render(p.Title))
	if p.Tagline != "" {
		hero.WriteString("\n" + wrap.Inherit(creativeDimStyle).Render(p.Tagline))
	}
	add(hero.String())

	// About
	var about strings.Builder
	about.WriteString(header("About") + "\n")
	about.WriteString(wrap.Inherit(creativeTextStyle).Render(p.Bio))
	var meta []string
	if p.Email != "" {
		meta = append(meta, p.Email)
	}
	if p.Phone != "" {
		meta = append(meta, p.Phone)
	}
	if p.Location != "" {
		meta = append(meta, p.Location)
	}
	if len(meta) > 0 {
		about.WriteString("\n" + creativeDimStyle.Render(strings.Join(meta, "  ✦  ")))
	}
	for _, s := range p.DisplaySocials() {
		about.WriteString("\n" + creativeTitleStyle.Render(s.Platform) + creativeDimStyle.Render("  "+s.URL))
	}
	add(about.String())

	// Skills
	if skills := p.DisplaySkills(); len(skills) > 0 {
		var b strings.Builder
		b.WriteString(header("Skills") + "\n")
		for i, sk := range skills {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(creativeChipStyle.Render(sk))
		}
		add(b.String())
	}

	// Services
	if p.HasServices() {
		var b strings.Builder
		b.WriteString(header("Services"))
		for _, s := range p.DisplayServices() {
			b.WriteString("\n" + creativeNameStyle.Render(s.Title))
			if s.Description != "" {
				b.WriteString("\n" + wrap.Inherit(creativeDimStyle).Render(s.Description))
			}
		}
		add(b.String())
	}

	// Portfolio
	if p.HasPortfolio() {
		var b strings.Builder
		b.WriteString(header("Work"))
		for _, pr := range p.DisplayProjects() {
			b.WriteString("\n" + creativeNameStyle.Render(pr.Title))
			if pr.Image != "" {
				b.WriteString(creativeDimStyle.Render(" ◉"))
			}
			if pr.Description != "" {
				b.WriteString("\n" + wrap.Inherit(creativeDimStyle).Render(pr.Description))
			}
		}
		add(b.String())
	}

	// Testimonials
	if p.HasTestimonials() {
		var b strings.Builder
		b.WriteString(header("Kind words"))
		for _, t := range p.DisplayTestimonials() {
			b.WriteString("\n" + wrap.Inherit(creativeQuoteStyle).Render(t.Quote))
			attribution := t.Name
			if t.Role != "" {
				attribution += " · " + t.Role
			}
			b.WriteString("\n" + creativeDimStyle.Render("  "+attribution))
		}
		add(b.String())
	}

	// Blog
	if p.HasBlog() {
		var b strings.Builder
		b.WriteString(header("Blog") + "\n")
		b.WriteString(creativeNameStyle.Render(p.BlogTitle))
		if p.BlogSummary != "" {
			b.WriteString("\n" + wrap.Inherit(creativeDimStyle).Render(p.BlogSummary))
		}
		add(b.String())
	}

	// Contact
	var contact strings.Builder
	contact.WriteString(header("Say hello"))
	if p.ContactMsg != "" {
		contact.WriteString("\n" + wrap.Inherit(creativeTextStyle).Render(p.ContactMsg))
	}
	contact.WriteString("\n" + creativeTitleStyle.Render(p.ContactEmail()))
	if tel := p.ContactPhone(); tel != "" {
		contact.WriteString("\n" + creativeDimStyle.Render(tel))
	}
	add(contact.String())

	if p.Rating > 0 {
		parts = append(parts, creativeDimStyle.Render(fmt.Sprintf("  ★ %.1f", p.Rating)))
	}

	return joinSections(parts)
}
