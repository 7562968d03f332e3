// Package catalog assembles the profile listing: persisted profiles merged
// with the built-in samples, plus the filters the browse screen offers.
package catalog

import (
	"strings"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

// ProfileLister is the slice of the storage gateway the catalog reads from.
type ProfileLister interface {
	ListAll() ([]domain.Profile, error)
}

// Visible returns the profiles the catalog shows. With no persisted
// profiles, the samples stand in alone; once anything real exists, the
// persisted profiles lead and the samples follow as inspiration.
func Visible(st ProfileLister) ([]domain.Profile, error) {
	persisted, err := st.ListAll()
	if err != nil {
		return nil, err
	}
	samples := domain.Samples()
	if len(persisted) == 0 {
		return samples, nil
	}
	out := make([]domain.Profile, 0, len(persisted)+len(samples))
	out = append(out, persisted...)
	out = append(out, samples...)
	return out, nil
}

// Deletable reports whether a profile may be removed. Samples are
// permanent fixtures.
func Deletable(p domain.Profile) bool {
	return !domain.IsSampleID(p.ID)
}

// FilterBySkill keeps profiles with at least one skill containing the
// query, case-insensitively. A blank query matches everything.
func FilterBySkill(ps []domain.Profile, query string) []domain.Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ps
	}
	var out []domain.Profile
	for _, p := range ps {
		for _, sk := range p.Skills {
			if strings.Contains(strings.ToLower(sk), q) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// FilterByRole keeps profiles whose title contains the query,
// case-insensitively. A blank query matches everything.
func FilterByRole(ps []domain.Profile, query string) []domain.Profile {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ps
	}
	var out []domain.Profile
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
		}
	}
	return out
}

// Filter applies the skill and role queries together; a profile survives
// only if it matches both.
func Filter(ps []domain.Profile, skill, role string) []domain.Profile {
	return FilterByRole(FilterBySkill(ps, skill), role)
}
