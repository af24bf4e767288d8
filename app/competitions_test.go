package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RBaldassarre/worldaquatics-export/config"
	"github.com/RBaldassarre/worldaquatics-export/models"
)

func testCompetitions() map[int][]models.Competition {
	return map[int][]models.Competition{
		2022: {
			{ID: "100", Name: "World Championships Budapest", City: "Budapest", Country: "Hungary",
				Disciplines: []string{"SW", "OW", "DV"}, DateFrom: "2022-06-18", DateTo: "2022-07-03"},
			{ID: "101", Name: "Junior World Championships", City: "Lima", Country: "Peru",
				Disciplines: []string{"SW"}, DateFrom: "2022-08-30", DateTo: "2022-09-04"},
		},
		2023: {
			{ID: "200", Name: "World Championships Fukuoka", City: "Fukuoka", Country: "Japan",
				Disciplines: []string{"SW", "OW"}, DateFrom: "2023-07-14", DateTo: "2023-07-30"},
			{ID: "201", Name: "Masters World Championships", City: "Fukuoka", Country: "Japan",
				Disciplines: []string{"SW", "OW"}, DateFrom: "2023-08-02", DateTo: "2023-08-10"},
		},
	}
}

func TestRunCompetitions_DisciplineAndYearFilter(t *testing.T) {
	client := &mockAPI{competitions: testCompetitions()}
	exporter := &mockExporter{}

	opts := config.CompetitionsOptions{
		Years:       []int{2022, 2023},
		Disciplines: []string{"OW"},
		SeniorOnly:  false,
		OutputDir:   "out",
	}
	_, err := RunCompetitions(context.Background(), client, exporter, opts)
	require.NoError(t, err)

	// only competitions whose discipline list includes OW
	require.Len(t, exporter.rows, 3)
	for _, row := range exporter.rows {
		assert.Contains(t, row[4], "OW")
	}
}

func TestRunCompetitions_SeniorityToggle(t *testing.T) {
	ids := func(rows [][]string) []string {
		var out []string
		for _, r := range rows {
			out = append(out, r[0])
		}
		return out
	}

	t.Run("filter enabled excludes junior and masters meets", func(t *testing.T) {
		exporter := &mockExporter{}
		opts := config.CompetitionsOptions{Years: []int{2022, 2023}, SeniorOnly: true, OutputDir: "out"}
		_, err := RunCompetitions(context.Background(), &mockAPI{competitions: testCompetitions()}, exporter, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"100", "200"}, ids(exporter.rows))
	})

	t.Run("filter disabled passes everything through", func(t *testing.T) {
		exporter := &mockExporter{}
		opts := config.CompetitionsOptions{Years: []int{2022, 2023}, SeniorOnly: false, OutputDir: "out"}
		_, err := RunCompetitions(context.Background(), &mockAPI{competitions: testCompetitions()}, exporter, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"100", "101", "200", "201"}, ids(exporter.rows))
	})
}

func TestRunCompetitions_NoPartialOutputOnAPIError(t *testing.T) {
	client := &mockAPI{err: assert.AnError}
	exporter := &mockExporter{}

	opts := config.CompetitionsOptions{Years: []int{2022}, OutputDir: "out"}
	_, err := RunCompetitions(context.Background(), client, exporter, opts)
	require.Error(t, err)
	assert.Zero(t, exporter.calls, "no file must be written when a request fails")
}

func TestCompetitionsFilename(t *testing.T) {
	tests := []struct {
		name  string
		years []int
		want  string
	}{
		{"single year", []int{2024}, "competitions_2024.xlsx"},
		{"two years", []int{2022, 2023}, "competitions_2022_2023.xlsx"},
		{"contiguous range", []int{2019, 2020, 2021, 2022, 2023, 2024}, "competitions_2019-2024.xlsx"},
		{"gap keeps explicit list", []int{2019, 2021, 2024}, "competitions_2019_2021_2024.xlsx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, competitionsFilename(tt.years))
		})
	}
}
