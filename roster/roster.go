// Package roster combines per-discipline competition rosters into a
// single athlete list.
package roster

import (
	"sort"

	"github.com/RBaldassarre/worldaquatics-export/models"
)

// Mode selects how athletes from several discipline rosters combine.
type Mode int

const (
	// Union keeps every athlete appearing in at least one roster.
	Union Mode = iota
	// Intersection keeps only athletes appearing in every roster.
	Intersection
)

// Filter is the gender pre-filter applied to each roster before
// combination. An empty Gender means no restriction. Country
// restriction is not filtered here: it is applied server-side by the
// roster query, and the wire reports full country names ("Italy")
// rather than the codes the query uses ("ITA").
type Filter struct {
	Gender string
}

func (f Filter) matches(a models.Athlete) bool {
	return f.Gender == "" || a.Gender == f.Gender
}

// Combine merges the per-discipline rosters keyed by athlete id.
//
// In Union mode an athlete's Disciplines field accumulates every
// discipline from every roster that produced them, not only the one
// seen first. In Intersection mode an athlete must be present in all
// rosters. With a single roster both modes produce identical output.
// Results are sorted by country, then name, then id.
func Combine(rosters [][]models.Athlete, mode Mode, f Filter) []models.Athlete {
	if len(rosters) == 0 {
		return nil
	}

	merged := make(map[int]*models.Athlete)
	appearances := make(map[int]int)

	for _, r := range rosters {
		// count each athlete once per roster even if listed twice
		seenHere := make(map[int]bool)
		for _, a := range r {
			if !f.matches(a) {
				continue
			}
			if !seenHere[a.ID] {
				seenHere[a.ID] = true
				appearances[a.ID]++
			}
			if existing, ok := merged[a.ID]; ok {
				existing.Disciplines = mergeDisciplines(existing.Disciplines, a.Disciplines)
				fillMissing(existing, a)
			} else {
				ath := a
				ath.Disciplines = append([]string(nil), a.Disciplines...)
				merged[a.ID] = &ath
			}
		}
	}

	var out []models.Athlete
	for id, a := range merged {
		if mode == Intersection && appearances[id] < len(rosters) {
			continue
		}
		out = append(out, *a)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Country != out[j].Country {
			return out[i].Country < out[j].Country
		}
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// mergeDisciplines appends the additions not already present,
// preserving first-seen order.
func mergeDisciplines(existing, additions []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, d := range existing {
		seen[d] = true
	}
	for _, d := range additions {
		if !seen[d] {
			seen[d] = true
			existing = append(existing, d)
		}
	}
	return existing
}

// fillMissing copies fields a later roster may have that the first
// appearance lacked (the API omits DOB or gender on some entries).
func fillMissing(dst *models.Athlete, src models.Athlete) {
	if dst.Name == "" {
		dst.Name = src.Name
	}
	if dst.Country == "" {
		dst.Country = src.Country
	}
	if dst.Gender == "" {
		dst.Gender = src.Gender
	}
	if dst.DOB == "" {
		dst.DOB = src.DOB
	}
}
