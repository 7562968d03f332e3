package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateFallsBackToModern(t *testing.T) {
	assert.Equal(t, TemplateModern, ParseTemplate("modern"))
	assert.Equal(t, TemplateCreative, ParseTemplate("creative"))
	assert.Equal(t, TemplateModern, ParseTemplate(""))
	assert.Equal(t, TemplateModern, ParseTemplate("brutalist"))
}

func TestNewDraftSeedsEmptyRows(t *testing.T) {
	d := NewDraft(TemplateCreative)

	assert.Equal(t, "creative", d.Template)
	assert.Empty(t, d.ID)
	assert.Len(t, d.Socials, 1)
	assert.Len(t, d.Skills, 1)
	assert.Len(t, d.Services, 3)
	assert.Len(t, d.Portfolio, 3)
	assert.Len(t, d.Testimonials, 1)
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewDraft(TemplateModern)
	p.Name = "Ada"
	p.Skills[0] = "Go"

	c := p.Clone()
	c.Skills[0] = "Rust"
	c.Socials[0].Platform = "github"
	c.Services[0].Title = "Consulting"
	c.Portfolio[0].Title = "Engine"
	c.Testimonials[0].Name = "Bob"

	assert.Equal(t, "Go", p.Skills[0])
	assert.Empty(t, p.Socials[0].Platform)
	assert.Empty(t, p.Services[0].Title)
	assert.Empty(t, p.Portfolio[0].Title)
	assert.Empty(t, p.Testimonials[0].Name)
}

func TestValidateReportsBlankRequiredFields(t *testing.T) {
	p := NewDraft(TemplateModern)
	missing := p.Validate()
	assert.Equal(t, []string{"name", "title", "bio", "email"}, missing)

	p.Name = "Ada"
	p.Title = "Engineer"
	p.Bio = "I build things."
	p.Email = "ada@example.com"
	assert.Empty(t, p.Validate())

	// Whitespace-only does not count as filled.
	p.Bio = "   "
	assert.Equal(t, []string{"bio"}, p.Validate())
}

func TestDisplayListsFilterBlanksAndKeepOrder(t *testing.T) {
	p := Profile{
		Skills: []string{"Go", "  ", "", "SQL"},
		Socials: []Social{
			{Platform: "github", URL: "https://github.com/ada"},
			{Platform: "", URL: ""},
			{Platform: "  ", URL: "https://x.com/ada"}, // url alone is not enough
		},
		Services: []Service{
			{Title: "Consulting"},
			{Title: "", Description: ""},
		},
		Portfolio: []Project{
			{Title: "", Description: ""},
			{Title: "Engine", Description: "A thing"},
		},
		Testimonials: []Testimonial{
			{Name: "Bob", Quote: "Great"},
			{Name: "", Role: "", Quote: ""},
		},
	}

	assert.Equal(t, []string{"Go", "SQL"}, p.DisplaySkills())

	socials := p.DisplaySocials()
	require.Len(t, socials, 1)
	assert.Equal(t, "github", socials[0].Platform)

	services := p.DisplayServices()
	require.Len(t, services, 1)
	assert.Equal(t, "Consulting", services[0].Title)

	projects := p.DisplayProjects()
	require.Len(t, projects, 1)
	assert.Equal(t, "Engine", projects[0].Title)

	ts := p.DisplayTestimonials()
	require.Len(t, ts, 1)
	assert.Equal(t, "Bob", ts[0].Name)
}

func TestSectionPredicates(t *testing.T) {
	var p Profile
	assert.False(t, p.HasServices())
	assert.False(t, p.HasPortfolio())
	assert.False(t, p.HasTestimonials())
	assert.False(t, p.HasBlog())

	p.Services = []Service{{Title: " "}, {Title: "Audit"}}
	assert.True(t, p.HasServices())

	p.Portfolio = []Project{{Description: "desc only, no title"}}
	assert.False(t, p.HasPortfolio())
	p.Portfolio = append(p.Portfolio, Project{Title: "Engine"})
	assert.True(t, p.HasPortfolio())

	p.Testimonials = []Testimonial{{Name: "Bob"}}
	assert.False(t, p.HasTestimonials())
	p.Testimonials[0].Quote = "Great work"
	assert.True(t, p.HasTestimonials())

	p.BlogTitle = "Notes"
	assert.True(t, p.HasBlog())
}

func TestContactFallbacks(t *testing.T) {
	p := Profile{Email: "ada@example.com", Phone: "555-1234"}
	assert.Equal(t, "ada@example.com", p.ContactEmail())
	assert.Equal(t, "555-1234", p.ContactPhone())

	p.ContactMail = "hello@example.com"
	p.ContactTel = "555-9999"
	assert.Equal(t, "hello@example.com", p.ContactEmail())
	assert.Equal(t, "555-9999", p.ContactPhone())
}

func TestSamplesAreCompleteAndStable(t *testing.T) {
	samples := Samples()
	require.Len(t, samples, 4)

	seen := map[string]bool{}
	for _, s := range samples {
		assert.True(t, IsSampleID(s.ID), "sample id %q must carry the sample prefix", s.ID)
		assert.Empty(t, s.Validate(), "sample %s must pass validation", s.ID)
		assert.Greater(t, s.Rating, 4.0)
		assert.False(t, seen[s.ID], "duplicate sample id %s", s.ID)
		seen[s.ID] = true
	}

	// Samples returns fresh copies; mutating one call must not leak into the next.
	samples[0].Name = "mutated"
	again := Samples()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestSampleByID(t *testing.T) {
	p, ok := SampleByID("mock-1")
	require.True(t, ok)
	assert.Equal(t, "mock-1", p.ID)

	_, ok = SampleByID("nope")
	assert.False(t, ok)

	assert.False(t, IsSampleID("f81d4fae-7dec-11d0-a765-00a0c91e6bf6"))
}
