package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

func init() {
	Register(modern{})
}

var (
	modernNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	modernTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4ade80"))

	modernHeaderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#606878")).
				Bold(true)

	modernTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	modernDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	modernMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	modernChipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22d3ee"))

	modernQuoteStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c8a84c")).
				Italic(true)
)

// modern is the default template: flat sections, a thin rule between them,
// emerald accents.
type modern struct{}

func (modern) Name() domain.Template { return domain.TemplateModern }

func (modern) Render(p domain.Profile, width int) string {
	w := clampWidth(width)
	wrap := lipgloss.NewStyle().Width(w)
	rule := modernMetaStyle.Render(strings.Repeat("─", w))

	var parts []string
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}

	// Hero
	var hero strings.Builder
	if p.ProfileImage != "" {
		hero.WriteString(modernDimStyle.Render("[ photo ]") + "\n")
	} else {
		hero.WriteString(modernMetaStyle.Render("[ no photo ]") + "\n")
	}
	hero.WriteString(modernNameStyle.Render(p.Name) + "\n")
	hero.WriteString(modernTitleStyle.Render(p.Title))
	if p.Tagline != "" {
		hero.WriteString("\n" + wrap.Inherit(modernDimStyle).Render(p.Tagline))
	}
	add(hero.String())

	// About
	var about strings.Builder
	about.WriteString(modernHeaderStyle.Render("ABOUT") + "\n")
	about.WriteString(wrap.Inherit(modernTextStyle).Render(p.Bio))
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
		about.WriteString("\n" + modernDimStyle.Render(strings.Join(meta, "  ·  ")))
	}
	for _, s := range p.DisplaySocials() {
		about.WriteString("\n" + modernChipStyle.Render(s.Platform) + modernMetaStyle.Render("  "+s.URL))
	}
	add(about.String())

	// Skills
	if skills := p.DisplaySkills(); len(skills) > 0 {
		var b strings.Builder
		b.WriteString(modernHeaderStyle.Render("SKILLS") + "\n")
		for i, sk := range skills {
			if i > 0 {
				b.WriteString(modernMetaStyle.Render(" · "))
			}
			b.WriteString(modernChipStyle.Render(sk))
		}
		add(b.String())
	}

	// Services
	if p.HasServices() {
		var b strings.Builder
		b.WriteString(modernHeaderStyle.Render("SERVICES"))
		for _, s := range p.DisplayServices() {
			b.WriteString("\n" + modernTextStyle.Bold(true).Render(s.Title))
			if s.Description != "" {
				b.WriteString("\n" + wrap.Inherit(modernDimStyle).Render(s.Description))
			}
		}
		add(b.String())
	}

	// Portfolio
	if p.HasPortfolio() {
		var b strings.Builder
		b.WriteString(modernHeaderStyle.Render("PORTFOLIO"))
		for _, pr := range p.DisplayProjects() {
			b.WriteString("\n" + modernTextStyle.Bold(true).Render(pr.Title))
			if pr.Image != "" {
				b.WriteString(modernMetaStyle.Render("  [img]"))
			}
			if pr.Description != "" {
				b.WriteString("\n" + wrap.Inherit(modernDimStyle).Render(pr.Description))
			}
		}
		add(b.String())
	}

	// Testimonials
	if p.HasTestimonials() {
		var b strings.Builder
		b.WriteString(modernHeaderStyle.Render("TESTIMONIALS"))
		for _, t := range p.DisplayTestimonials() {
			b.WriteString("\n" + wrap.Inherit(modernQuoteStyle).Render("“"+t.Quote+"”"))
			attribution := t.Name
			if t.Role != "" {
				attribution += ", " + t.Role
			}
			b.WriteString("\n" + modernDimStyle.Render("— "+attribution))
		}
		add(b.String())
	}

	// Blog
	if p.HasBlog() {
		var b strings.Builder
		b.WriteString(modernHeaderStyle.Render("BLOG") + "\n")
		b.WriteString(modernTextStyle.Bold(true).Render(p.BlogTitle))
		if p.BlogSummary != "" {
			b.WriteString("\n" + wrap.Inherit(modernDimStyle).Render(p.BlogSummary))
		}
		add(b.String())
	}

	// Contact
	var contact strings.Builder
	contact.WriteString(modernHeaderStyle.Render("CONTACT"))
	if p.ContactMsg != "" {
		contact.WriteString("\n" + wrap.Inherit(modernTextStyle).Render(p.ContactMsg))
	}
	contact.WriteString("\n" + modernDimStyle.Render(p.ContactEmail()))
	if tel := p.ContactPhone(); tel != "" {
		contact.WriteString("\n" + modernDimStyle.Render(tel))
	}
	add(contact.String())

	if p.Rating > 0 {
		add(modernMetaStyle.Render(fmt.Sprintf("rated %.1f / 5.0", p.Rating)))
	}

	return strings.Join(parts, "\n"+rule+"\n")
}
