// Package wizard drives the multi-step form that turns user input into a
// persisted profile. It owns the draft exclusively until commit; nothing
// else sees the draft's state while editing is in progress.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

// Section is one step of the form, in fixed order.
type Section int

const (
	SectionHero Section = iota
	SectionAbout
	SectionSkills
	SectionServices
	SectionPortfolio
	SectionTestimonials
	SectionBlog
	SectionContact

	numSections
)

// SectionInfo describes a section for the form UI.
type SectionInfo struct {
	ID          Section
	Name        string
	Title       string
	Description string
}

// Sections lists every form step in presentation order.
var Sections = []SectionInfo{
	{SectionHero, "hero", "Hero Section", "Your main introduction"},
	{SectionAbout, "about", "About Me", "Personal information and bio"},
	{SectionSkills, "skills", "Skills", "Your technical and soft skills"},
	{SectionServices, "services", "Services", "What you offer to clients"},
	{SectionPortfolio, "portfolio", "Portfolio", "Showcase your best work"},
	{SectionTestimonials, "testimonials", "Testimonials", "Client feedback and reviews"},
	{SectionBlog, "blog", "Blog", "Optional blog section"},
	{SectionContact, "contact", "Contact", "How people can reach you"},
}

// ScalarField identifies a free-text scalar on the draft. The closed enum
// replaces the original design's untyped any-field setter: an unknown field
// is now a compile error instead of a silent misspelling.
type ScalarField int

const (
	FieldName ScalarField = iota
	FieldTitle
	FieldTagline
	FieldProfileImage
	FieldBio
	FieldEmail
	FieldPhone
	FieldLocation
	FieldBlogTitle
	FieldBlogSummary
	FieldContactMessage
	FieldContactEmail
	FieldContactPhone
)

// ErrImageBusy rejects commit while an image conversion is still in flight,
// so a profile is never persisted with a half-attached image.
var ErrImageBusy = errors.New("image upload in progress")

// ErrNotAtEnd rejects commit from any section before the last one.
var ErrNotAtEnd = errors.New("commit is only available from the contact section")

// ValidationError reports the required fields still blank at commit.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "required fields missing: " + strings.Join(e.Fields, ", ")
}

// ProfileWriter is the slice of the storage gateway the wizard needs.
type ProfileWriter interface {
	Put(domain.Profile) error
}

// Wizard is the form state machine: a draft profile, a current section,
// and an in-flight image counter. Zero value is not usable; construct with
// New or Edit.
type Wizard struct {
	draft     domain.Profile
	section   Section
	editing   bool
	imageBusy int
}

// New starts a fresh draft for the given template. The id is allocated at
// commit, not before.
func New(t domain.Template) *Wizard {
	return &Wizard{draft: domain.NewDraft(t)}
}

// Edit starts a draft from an existing profile. ID and template carry over
// unchanged and stay immutable; commit overwrites the same entry.
func Edit(p domain.Profile) *Wizard {
	return &Wizard{draft: p.Clone(), editing: true}
}

// Editing reports whether the wizard was opened on an existing profile.
func (w *Wizard) Editing() bool { return w.editing }

// Draft returns the current draft for display. Callers must treat it as
// read-only; all mutation goes through the typed operations below.
func (w *Wizard) Draft() domain.Profile { return w.draft }

// Template returns the immutable template chosen at creation.
func (w *Wizard) Template() domain.Template {
	return domain.ParseTemplate(w.draft.Template)
}

// Section returns the current step.
func (w *Wizard) Section() Section { return w.section }

// AtFirst reports whether the wizard is on the first section.
func (w *Wizard) AtFirst() bool { return w.section == 0 }

// AtLast reports whether the wizard is on the final (commit) section.
func (w *Wizard) AtLast() bool { return w.section == numSections-1 }

// Next advances one section, clamped at the last.
func (w *Wizard) Next() {
	if w.section < numSections-1 {
		w.section++
	}
}

// Prev steps back one section, clamped at the first.
func (w *Wizard) Prev() {
	if w.section > 0 {
		w.section--
	}
}

// Scalar reads a scalar field from the draft.
func (w *Wizard) Scalar(f ScalarField) string {
	switch f {
	case FieldName:
		return w.draft.Name
	case FieldTitle:
		return w.draft.Title
	case FieldTagline:
		return w.draft.Tagline
	case FieldProfileImage:
		return w.draft.ProfileImage
	case FieldBio:
		return w.draft.Bio
	case FieldEmail:
		return w.draft.Email
	case FieldPhone:
		return w.draft.Phone
	case FieldLocation:
		return w.draft.Location
	case FieldBlogTitle:
		return w.draft.BlogTitle
	case FieldBlogSummary:
		return w.draft.BlogSummary
	case FieldContactMessage:
		return w.draft.ContactMsg
	case FieldContactEmail:
		return w.draft.ContactMail
	case FieldContactPhone:
		return w.draft.ContactTel
	}
	return ""
}

// SetScalar writes a scalar field on the draft. Legal from any section;
// the UI only exposes the current section's fields, but programmatic
// updates (image completion callbacks) may land out of step.
func (w *Wizard) SetScalar(f ScalarField, v string) {
	switch f {
	case FieldName:
		w.draft.Name = v
	case FieldTitle:
		w.draft.Title = v
	case FieldTagline:
		w.draft.Tagline = v
	case FieldProfileImage:
		w.draft.ProfileImage = v
	case FieldBio:
		w.draft.Bio = v
	case FieldEmail:
		w.draft.Email = v
	case FieldPhone:
		w.draft.Phone = v
	case FieldLocation:
		w.draft.Location = v
	case FieldBlogTitle:
		w.draft.BlogTitle = v
	case FieldBlogSummary:
		w.draft.BlogSummary = v
	case FieldContactMessage:
		w.draft.ContactMsg = v
	case FieldContactEmail:
		w.draft.ContactMail = v
	case FieldContactPhone:
		w.draft.ContactTel = v
	}
}

// AddSocial appends a social link row.
func (w *Wizard) AddSocial(s domain.Social) {
	w.draft.Socials = append(w.draft.Socials, s)
}

// UpdateSocial replaces the social at i. Out of range is a no-op.
func (w *Wizard) UpdateSocial(i int, s domain.Social) {
	if i >= 0 && i < len(w.draft.Socials) {
		w.draft.Socials[i] = s
	}
}

// RemoveSocial deletes the social at i, preserving order. Out of range is
// a no-op.
func (w *Wizard) RemoveSocial(i int) {
	if i >= 0 && i < len(w.draft.Socials) {
		w.draft.Socials = append(w.draft.Socials[:i], w.draft.Socials[i+1:]...)
	}
}

// AddSkill appends a skill row.
func (w *Wizard) AddSkill(v string) {
	w.draft.Skills = append(w.draft.Skills, v)
}

// UpdateSkill replaces the skill at i. Out of range is a no-op.
func (w *Wizard) UpdateSkill(i int, v string) {
	if i >= 0 && i < len(w.draft.Skills) {
		w.draft.Skills[i] = v
	}
}

// RemoveSkill deletes the skill at i. Out of range is a no-op.
func (w *Wizard) RemoveSkill(i int) {
	if i >= 0 && i < len(w.draft.Skills) {
		w.draft.Skills = append(w.draft.Skills[:i], w.draft.Skills[i+1:]...)
	}
}

// UpdateService replaces the service at i. The three service slots are
// fixed; there is no add or remove.
func (w *Wizard) UpdateService(i int, s domain.Service) {
	if i >= 0 && i < len(w.draft.Services) {
		w.draft.Services[i] = s
	}
}

// UpdateProject replaces the portfolio project at i. Out of range is a
// no-op.
func (w *Wizard) UpdateProject(i int, p domain.Project) {
	if i >= 0 && i < len(w.draft.Portfolio) {
		w.draft.Portfolio[i] = p
	}
}

// SetProjectImage attaches an image handle to the project at i. Out of
// range is a no-op; a racing second upload to the same slot simply wins
// by finishing last.
func (w *Wizard) SetProjectImage(i int, handle string) {
	if i >= 0 && i < len(w.draft.Portfolio) {
		w.draft.Portfolio[i].Image = handle
	}
}

// AddTestimonial appends a testimonial row.
func (w *Wizard) AddTestimonial(t domain.Testimonial) {
	w.draft.Testimonials = append(w.draft.Testimonials, t)
}

// UpdateTestimonial replaces the testimonial at i. Out of range is a no-op.
func (w *Wizard) UpdateTestimonial(i int, t domain.Testimonial) {
	if i >= 0 && i < len(w.draft.Testimonials) {
		w.draft.Testimonials[i] = t
	}
}

// RemoveTestimonial deletes the testimonial at i. Out of range is a no-op.
func (w *Wizard) RemoveTestimonial(i int) {
	if i >= 0 && i < len(w.draft.Testimonials) {
		w.draft.Testimonials = append(w.draft.Testimonials[:i], w.draft.Testimonials[i+1:]...)
	}
}

// BeginImage marks an image conversion as in flight. Commit is blocked
// until every begun conversion has finished.
func (w *Wizard) BeginImage() { w.imageBusy++ }

// FinishImage marks one image conversion as done, success or failure. On
// failure the caller leaves the target field untouched.
func (w *Wizard) FinishImage() {
	if w.imageBusy > 0 {
		w.imageBusy--
	}
}

// ImageBusy reports whether any image conversion is still in flight.
func (w *Wizard) ImageBusy() bool { return w.imageBusy > 0 }

// Commit validates the draft and writes it through the storage gateway.
// It is all-or-nothing: any rejection leaves the store untouched. On
// success it returns the profile id (freshly allocated for new drafts,
// reused in edit mode).
func (w *Wizard) Commit(st ProfileWriter) (string, error) {
	if !w.AtLast() {
		return "", ErrNotAtEnd
	}
	if w.ImageBusy() {
		return "", ErrImageBusy
	}
	if missing := w.draft.Validate(); len(missing) > 0 {
		return "", &ValidationError{Fields: missing}
	}
	if w.draft.ID == "" {
		w.draft.ID = uuid.NewString()
	}
	if err := st.Put(w.draft); err != nil {
		return "", fmt.Errorf("commit profile: %w", err)
	}
	return w.draft.ID, nil
}
