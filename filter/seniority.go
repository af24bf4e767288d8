// Package filter holds the junior/masters heuristic exclusion.
//
// The World Aquatics API has no reliable flag separating senior meets
// from junior, youth or masters ones, so classification is done by
// keyword matching on the competition name and category label. It is
// best effort: a senior meet with "junior" in its city name would be a
// false positive, and nothing guarantees every age-group meet carries
// a telltale keyword.
package filter

import (
	"strings"

	"github.com/RBaldassarre/worldaquatics-export/constants"
)

// IsSenior reports whether a competition looks like a senior/absolute
// one. Both the name and the category label are lower-cased and tested
// against the keyword denylist; any hit classifies the competition as
// non-senior.
func IsSenior(name, category string) bool {
	text := strings.ToLower(name + " " + category)
	for _, kw := range constants.NonSeniorKeywords {
		if strings.Contains(text, kw) {
			return false
		}
	}
	return true
}
