// Package splits aligns per-competitor checkpoint readings into one
// rectangular table.
package splits

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/RBaldassarre/worldaquatics-export/models"
)

// Table is the aligned split-time table of one race event. Columns is
// the union of checkpoint labels seen across all competitors, ordered
// by the nominal distance each label encodes. Rows follow the final
// ranking; competitors without a rank (DNF, DSQ) come after every
// ranked finisher, in source order.
type Table struct {
	Columns []string
	Rows    []models.ResultRow
}

// CellFor returns the split time of one competitor at one column, or
// the empty string when the competitor has no reading there.
func (t Table) CellFor(row models.ResultRow, column string) string {
	for _, s := range row.Splits {
		if s.Label == column {
			return s.Time
		}
	}
	return ""
}

// Build computes the aligned table for the given result rows. A
// competitor missing a checkpoint keeps their row; only the cell stays
// empty.
func Build(rows []models.ResultRow) Table {
	return Table{
		Columns: columnUnion(rows),
		Rows:    orderRows(rows),
	}
}

// columnUnion collects every checkpoint label once, sorted by nominal
// distance. Labels that encode no distance fall back to the lowest
// split order they were seen at, after all distance-bearing labels.
func columnUnion(rows []models.ResultRow) []string {
	type colKey struct {
		meters   float64
		hasDist  bool
		minOrder int
	}
	cols := make(map[string]colKey)
	for _, r := range rows {
		for _, s := range r.Splits {
			key, seen := cols[s.Label]
			if !seen {
				m, ok := nominalMeters(s.Label)
				key = colKey{meters: m, hasDist: ok, minOrder: s.Order}
			} else if s.Order < key.minOrder {
				key.minOrder = s.Order
			}
			cols[s.Label] = key
		}
	}

	labels := make([]string, 0, len(cols))
	for l := range cols {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		a, b := cols[labels[i]], cols[labels[j]]
		if a.hasDist != b.hasDist {
			return a.hasDist
		}
		if a.hasDist && a.meters != b.meters {
			return a.meters < b.meters
		}
		if a.minOrder != b.minOrder {
			return a.minOrder < b.minOrder
		}
		return labels[i] < labels[j]
	})
	return labels
}

// orderRows sorts ranked finishers ascending by rank and keeps
// unranked rows after them in the order the API returned them.
func orderRows(rows []models.ResultRow) []models.ResultRow {
	out := make([]models.ResultRow, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Rank, out[j].Rank
		if ri > 0 && rj > 0 {
			return ri < rj
		}
		// ranked before unranked; two unranked keep source order
		return ri > 0 && rj == 0
	})
	return out
}

var distancePattern = regexp.MustCompile(`(?i)([0-9]+(?:[.,][0-9]+)?)\s*(km|m)`)

// nominalMeters extracts the distance a checkpoint label represents,
// e.g. "1.5km" → 1500, "400m" → 400. The bool is false when the label
// carries no recognizable distance.
func nominalMeters(label string) (float64, bool) {
	m := distancePattern.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return 0, false
	}
	if strings.EqualFold(m[2], "km") {
		value *= 1000
	}
	return value, true
}
