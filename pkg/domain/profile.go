package domain

import "strings"

// Template is a rendering variant for a portfolio profile.
type Template string

const (
	TemplateModern   Template = "modern"
	TemplateCreative Template = "creative"
)

// ParseTemplate maps a stored template tag to a known variant.
// Unrecognized tags fall back to modern rather than failing; old or
// hand-edited profiles must always stay renderable.
func ParseTemplate(s string) Template {
	switch Template(s) {
	case TemplateModern, TemplateCreative:
		return Template(s)
	default:
		return TemplateModern
	}
}

// Templates lists the selectable variants in display order.
var Templates = []Template{TemplateModern, TemplateCreative}

// Social is one external link shown in the about section.
type Social struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Service is one offering card.
type Service struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Project is one portfolio showcase entry. Image is an opaque embeddable
// handle (data URL) or empty.
type Project struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// Testimonial is one client quote.
type Testimonial struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Quote string `json:"quote"`
}

// Profile is the persisted unit: one person's portfolio content plus their
// template choice. ID and Template are assigned at creation and never change.
type Profile struct {
	ID           string        `json:"id"`
	Template     string        `json:"template"`
	Name         string        `json:"name"`
	Title        string        `json:"title"`
	Tagline      string        `json:"tagline"`
	ProfileImage string        `json:"profileImage"`
	Bio          string        `json:"bio"`
	Email        string        `json:"email"`
	Phone        string        `json:"phone"`
	Location     string        `json:"location"`
	Socials      []Social      `json:"socials"`
	Skills       []string      `json:"skills"`
	Services     []Service     `json:"services"`
	Portfolio    []Project     `json:"portfolio"`
	Testimonials []Testimonial `json:"testimonials"`
	BlogTitle    string        `json:"blogTitle"`
	BlogSummary  string        `json:"blogSummary"`
	ContactMsg   string        `json:"contactMessage"`
	ContactMail  string        `json:"contactEmail"`
	ContactTel   string        `json:"contactPhone"`

	// Cosmetic catalog metadata. Optional, never validated.
	Experience string  `json:"experience,omitempty"`
	Projects   string  `json:"projects,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
}

// NewDraft returns an empty draft profile for the given template. List
// fields are seeded with blank rows so the editing UI has something to
// show; blanks are filtered out again at render time.
func NewDraft(t Template) Profile {
	return Profile{
		Template:     string(t),
		Socials:      []Social{{}},
		Skills:       []string{""},
		Services:     []Service{{}, {}, {}},
		Portfolio:    []Project{{}, {}, {}},
		Testimonials: []Testimonial{{}},
	}
}

// Clone returns a deep copy, safe to mutate independently.
func (p Profile) Clone() Profile {
	c := p
	c.Socials = append([]Social(nil), p.Socials...)
	c.Skills = append([]string(nil), p.Skills...)
	c.Services = append([]Service(nil), p.Services...)
	c.Portfolio = append([]Project(nil), p.Portfolio...)
	c.Testimonials = append([]Testimonial(nil), p.Testimonials...)
	return c
}

// Required fields: a profile is renderable once all of these are non-blank.
var requiredFields = []struct {
	name  string
	value func(Profile) string
}{
	{"name", func(p Profile) string { return p.Name }},
	{"title", func(p Profile) string { return p.Title }},
	{"bio", func(p Profile) string { return p.Bio }},
	{"email", func(p Profile) string { return p.Email }},
}

// Validate returns the names of required fields that are still blank,
// in a fixed order. A nil result means the profile is renderable.
func (p Profile) Validate() []string {
	var missing []string
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(p)) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// HasServices reports whether at least one service has a non-blank title.
func (p Profile) HasServices() bool {
	for _, s := range p.Services {
		if strings.TrimSpace(s.Title) != "" {
			return true
		}
	}
	return false
}

// HasPortfolio reports whether at least one project has a non-blank title.
func (p Profile) HasPortfolio() bool {
	for _, pr := range p.Portfolio {
		if strings.TrimSpace(pr.Title) != "" {
			return true
		}
	}
	return false
}

// HasTestimonials reports whether at least one testimonial has a non-blank quote.
func (p Profile) HasTestimonials() bool {
	for _, t := range p.Testimonials {
		if strings.TrimSpace(t.Quote) != "" {
			return true
		}
	}
	return false
}

// HasBlog reports whether the blog section should render.
func (p Profile) HasBlog() bool {
	return strings.TrimSpace(p.BlogTitle) != ""
}

// DisplaySkills returns the skills with blank draft rows filtered out,
// insertion order preserved.
func (p Profile) DisplaySkills() []string {
	var out []string
	for _, s := range p.Skills {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// DisplaySocials returns socials that have both a platform and a URL.
func (p Profile) DisplaySocials() []Social {
	var out []Social
	for _, s := range p.Socials {
		if strings.TrimSpace(s.Platform) != "" && strings.TrimSpace(s.URL) != "" {
			out = append(out, s)
		}
	}
	return out
}

// DisplayServices returns services with a non-blank title.
func (p Profile) DisplayServices() []Service {
	var out []Service
	for _, s := range p.Services {
		if strings.TrimSpace(s.Title) != "" {
			out = append(out, s)
		}
	}
	return out
}

// DisplayProjects returns portfolio projects with a non-blank title.
func (p Profile) DisplayProjects() []Project {
	var out []Project
	for _, pr := range p.Portfolio {
		if strings.TrimSpace(pr.Title) != "" {
			out = append(out, pr)
		}
	}
	return out
}

// DisplayTestimonials returns testimonials with a non-blank quote.
func (p Profile) DisplayTestimonials() []Testimonial {
	var out []Testimonial
	for _, t := range p.Testimonials {
		if strings.TrimSpace(t.Quote) != "" {
			out = append(out, t)
		}
	}
	return out
}

// ContactEmail returns the contact email, falling back to the about email.
func (p Profile) ContactEmail() string {
	if strings.TrimSpace(p.ContactMail) != "" {
		return p.ContactMail
	}
	return p.Email
}

// ContactPhone returns the contact phone, falling back to the about phone.
func (p Profile) ContactPhone() string {
	if strings.TrimSpace(p.ContactTel) != "" {
		return p.ContactTel
	}
	return p.Phone
}
