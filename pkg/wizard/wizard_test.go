package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

// fakeStore records commits and can be told to fail.
type fakeStore struct {
	saved []domain.Profile
	err   error
}

func (f *fakeStore) Put(p domain.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, p)
	return nil
}

func atEnd(w *Wizard) {
	for !w.AtLast() {
		w.Next()
	}
}

func fillRequired(w *Wizard) {
	w.SetScalar(FieldName, "Ada Lovelace")
	w.SetScalar(FieldTitle, "Engineer")
	w.SetScalar(FieldBio, "First programmer.")
	w.SetScalar(FieldEmail, "ada@example.com")
}

func TestSectionOrderAndClamping(t *testing.T) {
	w := New(domain.TemplateModern)

	assert.True(t, w.AtFirst())
	assert.Equal(t, SectionHero, w.Section())

	w.Prev() // clamped
	assert.Equal(t, SectionHero, w.Section())

	order := []Section{
		SectionHero, SectionAbout, SectionSkills, SectionServices,
		SectionPortfolio, SectionTestimonials, SectionBlog, SectionContact,
	}
	for _, want := range order[1:] {
		w.Next()
		assert.Equal(t, want, w.Section())
	}
	assert.True(t, w.AtLast())

	w.Next() // clamped
	assert.Equal(t, SectionContact, w.Section())
}

func TestScalarRoundTrip(t *testing.T) {
	w := New(domain.TemplateModern)

	fields := []ScalarField{
		FieldName, FieldTitle, FieldTagline, FieldProfileImage, FieldBio,
		FieldEmail, FieldPhone, FieldLocation, FieldBlogTitle,
		FieldBlogSummary, FieldContactMessage, FieldContactEmail, FieldContactPhone,
	}
	for i, f := range fields {
		w.SetScalar(f, string(rune('a'+i)))
	}
	for i, f := range fields {
		assert.Equal(t, string(rune('a'+i)), w.Scalar(f))
	}
}

func TestListMutatorsPreserveOrder(t *testing.T) {
	w := New(domain.TemplateModern)

	w.UpdateSkill(0, "Go")
	w.AddSkill("SQL")
	w.AddSkill("Rust")
	assert.Equal(t, []string{"Go", "SQL", "Rust"}, w.Draft().Skills)

	w.RemoveSkill(1)
	assert.Equal(t, []string{"Go", "Rust"}, w.Draft().Skills)

	// Out of range is a no-op, not a panic.
	w.RemoveSkill(5)
	w.RemoveSkill(-1)
	w.UpdateSkill(99, "x")
	assert.Equal(t, []string{"Go", "Rust"}, w.Draft().Skills)
}

func TestSocialAndTestimonialMutators(t *testing.T) {
	w := New(domain.TemplateModern)

	w.UpdateSocial(0, domain.Social{Platform: "github", URL: "https://github.com/ada"})
	w.AddSocial(domain.Social{Platform: "x", URL: "https://x.com/ada"})
	require.Len(t, w.Draft().Socials, 2)

	w.RemoveSocial(0)
	require.Len(t, w.Draft().Socials, 1)
	assert.Equal(t, "x", w.Draft().Socials[0].Platform)

	w.UpdateTestimonial(0, domain.Testimonial{Name: "Bob", Quote: "Great"})
	w.AddTestimonial(domain.Testimonial{Name: "Cai", Quote: "Superb"})
	w.RemoveTestimonial(0)
	require.Len(t, w.Draft().Testimonials, 1)
	assert.Equal(t, "Cai", w.Draft().Testimonials[0].Name)
}

func TestFixedSlotMutators(t *testing.T) {
	w := New(domain.TemplateModern)

	w.UpdateService(2, domain.Service{Title: "Audit"})
	assert.Equal(t, "Audit", w.Draft().Services[2].Title)
	w.UpdateService(3, domain.Service{Title: "nope"}) // no fourth slot
	require.Len(t, w.Draft().Services, 3)

	w.UpdateProject(0, domain.Project{Title: "Engine", Description: "A thing"})
	w.SetProjectImage(0, "data:image/png;base64,AAAA")
	assert.Equal(t, "Engine", w.Draft().Portfolio[0].Title)
	assert.Equal(t, "data:image/png;base64,AAAA", w.Draft().Portfolio[0].Image)
	w.SetProjectImage(7, "x") // no-op
}

func TestCommitRejectedBeforeLastSection(t *testing.T) {
	w := New(domain.TemplateModern)
	fillRequired(w)

	st := &fakeStore{}
	_, err := w.Commit(st)
	assert.ErrorIs(t, err, ErrNotAtEnd)
	assert.Empty(t, st.saved)
}

func TestCommitRejectsMissingFieldsAllOrNothing(t *testing.T) {
	w := New(domain.TemplateModern)
	w.SetScalar(FieldName, "Ada")
	atEnd(w)

	st := &fakeStore{}
	_, err := w.Commit(st)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"title", "bio", "email"}, verr.Fields)
	assert.Empty(t, st.saved, "nothing may be persisted on a rejected commit")
}

func TestCommitBlockedWhileImageInFlight(t *testing.T) {
	w := New(domain.TemplateModern)
	fillRequired(w)
	atEnd(w)

	w.BeginImage()
	st := &fakeStore{}
	_, err := w.Commit(st)
	assert.ErrorIs(t, err, ErrImageBusy)

	w.FinishImage()
	assert.False(t, w.ImageBusy())
	id, err := w.Commit(st)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestFinishImageNeverGoesNegative(t *testing.T) {
	w := New(domain.TemplateModern)
	w.FinishImage()
	assert.False(t, w.ImageBusy())

	w.BeginImage()
	w.BeginImage()
	w.FinishImage()
	assert.True(t, w.ImageBusy(), "two uploads, one done, still busy")
	w.FinishImage()
	assert.False(t, w.ImageBusy())
}

func TestCommitAssignsIDOnceAndPersists(t *testing.T) {
	w := New(domain.TemplateCreative)
	fillRequired(w)
	atEnd(w)

	st := &fakeStore{}
	id, err := w.Commit(st)
	require.NoError(t, err)
	require.Len(t, st.saved, 1)
	assert.Equal(t, id, st.saved[0].ID)
	assert.Equal(t, "creative", st.saved[0].Template)

	// Committing again reuses the same id.
	id2, err := w.Commit(st)
	require.NoError(t, err)
	assert.Equal(t, id, id2)
}

func TestCommitWrapsStoreError(t *testing.T) {
	w := New(domain.TemplateModern)
	fillRequired(w)
	atEnd(w)

	boom := errors.New("disk full")
	st := &fakeStore{err: boom}
	_, err := w.Commit(st)
	assert.ErrorIs(t, err, boom)
}

func TestEditPreservesIDAndTemplate(t *testing.T) {
	orig := domain.NewDraft(domain.TemplateCreative)
	orig.ID = "keep-me"
	orig.Name = "Ada"
	orig.Title = "Engineer"
	orig.Bio = "First programmer."
	orig.Email = "ada@example.com"

	w := Edit(orig)
	assert.True(t, w.Editing())
	w.SetScalar(FieldName, "Ada Lovelace")
	atEnd(w)

	st := &fakeStore{}
	id, err := w.Commit(st)
	require.NoError(t, err)
	assert.Equal(t, "keep-me", id)
	assert.Equal(t, "creative", st.saved[0].Template)
	assert.Equal(t, "Ada Lovelace", st.saved[0].Name)

	// The source profile is untouched until commit writes through the store.
	assert.Equal(t, "Ada", orig.Name)
}

func TestEditDraftIsDeepCopy(t *testing.T) {
	orig := domain.NewDraft(domain.TemplateModern)
	orig.ID = "x"
	orig.Skills = []string{"Go"}

	w := Edit(orig)
	w.UpdateSkill(0, "Rust")
	assert.Equal(t, "Go", orig.Skills[0])
}
