package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RBaldassarre/worldaquatics-export/config"
	"github.com/RBaldassarre/worldaquatics-export/models"
)

// two disciplines, partially overlapping fields; Country carries the
// full name the roster endpoint reports, not the queried code
func testRosters() map[string][]models.Athlete {
	sw := []models.Athlete{
		{ID: 1, Name: "Gregorio Paltrinieri", Country: "Italy", Gender: "M", DOB: "1994-09-05", Disciplines: []string{"1500m Freestyle"}},
		{ID: 2, Name: "Katie Ledecky", Country: "United States of America", Gender: "F", DOB: "1997-03-17", Disciplines: []string{"800m Freestyle"}},
		{ID: 3, Name: "Domenico Acerenza", Country: "Italy", Gender: "M", DOB: "1995-01-19", Disciplines: []string{"1500m Freestyle"}},
	}
	ow := []models.Athlete{
		{ID: 1, Name: "Gregorio Paltrinieri", Country: "Italy", Gender: "M", DOB: "1994-09-05", Disciplines: []string{"Men 10km"}},
		{ID: 4, Name: "Sharon van Rouwendaal", Country: "Netherlands", Gender: "F", DOB: "1993-09-09", Disciplines: []string{"Women 10km"}},
	}
	return map[string][]models.Athlete{
		rosterKey("SW", "", ""):     sw,
		rosterKey("OW", "", ""):     ow,
		rosterKey("OW", "", "ITA"):  {ow[0]},
		rosterKey("SW", "M", "ITA"): {sw[0], sw[2]},
		rosterKey("OW", "M", "ITA"): {ow[0]},
	}
}

func TestRunAthletes_IntersectionIsSubsetOfUnion(t *testing.T) {
	base := config.AthletesOptions{
		CompetitionID: "4725",
		Disciplines:   []string{"SW", "OW"},
		OutputDir:     "out",
	}

	orExporter := &mockExporter{}
	orOpts := base
	orOpts.Intersect = false
	_, err := RunAthletes(context.Background(), &mockAPI{rosters: testRosters()}, orExporter, orOpts)
	require.NoError(t, err)

	andExporter := &mockExporter{}
	andOpts := base
	andOpts.Intersect = true
	_, err = RunAthletes(context.Background(), &mockAPI{rosters: testRosters()}, andExporter, andOpts)
	require.NoError(t, err)

	union := make(map[string]bool)
	for _, row := range orExporter.rows {
		union[row[1]] = true
	}
	for _, row := range andExporter.rows {
		assert.True(t, union[row[1]], "AND result %q must appear in OR result", row[1])
	}
	assert.Less(t, len(andExporter.rows), len(orExporter.rows))

	// only Paltrinieri is in both rosters, with both disciplines merged
	require.Len(t, andExporter.rows, 1)
	assert.Equal(t, "Gregorio Paltrinieri", andExporter.rows[0][1])
	assert.Equal(t, "1500m Freestyle / Men 10km", andExporter.rows[0][4])
}

func TestRunAthletes_SingleDisciplineModesAreIdentical(t *testing.T) {
	run := func(intersect bool) *mockExporter {
		exporter := &mockExporter{}
		opts := config.AthletesOptions{
			CompetitionID: "4725",
			Disciplines:   []string{"SW"},
			Intersect:     intersect,
			OutputDir:     "out",
		}
		_, err := RunAthletes(context.Background(), &mockAPI{rosters: testRosters()}, exporter, opts)
		require.NoError(t, err)
		return exporter
	}

	and := run(true)
	or := run(false)
	assert.Equal(t, or.rows, and.rows, "AND and OR must be identical for one discipline")
	assert.Equal(t, or.header, and.header)
}

func TestRunAthletes_GenderCountryFilter(t *testing.T) {
	exporter := &mockExporter{}
	opts := config.AthletesOptions{
		CompetitionID: "4725",
		Disciplines:   []string{"SW", "OW"},
		Intersect:     true,
		Gender:        "M",
		Countries:     []string{"ITA"},
		OutputDir:     "out",
	}
	_, err := RunAthletes(context.Background(), &mockAPI{rosters: testRosters()}, exporter, opts)
	require.NoError(t, err)

	// male Italians present in both SW and OW rosters
	require.Len(t, exporter.rows, 1)
	assert.Equal(t, "Italy", exporter.rows[0][0])
	assert.Equal(t, "Gregorio Paltrinieri", exporter.rows[0][1])
	assert.Equal(t, "M", exporter.rows[0][2])
	assert.Equal(t, "athletes_SW-OW_both_M_ITA.xlsx", exporter.filename)
}

func TestRunAthletes_CountryQueryKeepsWireCountryNames(t *testing.T) {
	// the roster endpoint filters by country code server-side but
	// reports full country names; the code queried with must not be
	// re-matched against those names
	exporter := &mockExporter{}
	opts := config.AthletesOptions{
		CompetitionID: "4725",
		Disciplines:   []string{"OW"},
		Countries:     []string{"ITA"},
		OutputDir:     "out",
	}
	_, err := RunAthletes(context.Background(), &mockAPI{rosters: testRosters()}, exporter, opts)
	require.NoError(t, err)

	require.NotEmpty(t, exporter.rows)
	assert.Equal(t, "Italy", exporter.rows[0][0])
	assert.Equal(t, "Gregorio Paltrinieri", exporter.rows[0][1])
	assert.Equal(t, "athletes_OW_ITA.xlsx", exporter.filename)
}

func TestAthletesFilename(t *testing.T) {
	tests := []struct {
		name string
		opts config.AthletesOptions
		want string
	}{
		{"no filters", config.AthletesOptions{}, "athletes_ALL.xlsx"},
		{"union of two", config.AthletesOptions{Disciplines: []string{"SW", "OW"}}, "athletes_SW-OW.xlsx"},
		{"intersection", config.AthletesOptions{Disciplines: []string{"SW", "OW"}, Intersect: true}, "athletes_SW-OW_both.xlsx"},
		{"full", config.AthletesOptions{Disciplines: []string{"OW"}, Gender: "F", Countries: []string{"ITA", "USA"}}, "athletes_OW_F_ITA-USA.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, athletesFilename(tt.opts))
		})
	}
}
