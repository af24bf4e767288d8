// Package app contains one pipeline per tool. Pipelines take their
// whole configuration as an explicit options struct and reach the
// outside world only through the interfaces package, so every run is
// reproducible in tests without a network or a terminal.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/config"
	"github.com/RBaldassarre/worldaquatics-export/filter"
	"github.com/RBaldassarre/worldaquatics-export/interfaces"
	"github.com/RBaldassarre/worldaquatics-export/models"
)

var competitionsHeader = []string{"id", "name", "city", "country", "disciplines", "date_from", "date_to"}

// RunCompetitions fetches every competition in the selected years,
// applies the discipline filter and the optional seniority heuristic,
// and writes one spreadsheet. It returns the path written.
func RunCompetitions(ctx context.Context, client interfaces.APIClient, exporter interfaces.Exporter, opts config.CompetitionsOptions) (string, error) {
	var (
		comps   []models.Competition
		skipped int
	)
	for _, year := range opts.Years {
		log.Info().Int("year", year).Msg("fetching competitions")
		yearComps, yearSkipped, err := client.CompetitionsByYear(ctx, year)
		if err != nil {
			return "", err
		}
		comps = append(comps, yearComps...)
		skipped += yearSkipped
	}

	rows := make([][]string, 0, len(comps))
	for _, c := range comps {
		if !matchesDisciplines(c, opts.Disciplines) {
			continue
		}
		if opts.SeniorOnly && !filter.IsSenior(c.Name, "") {
			log.Debug().Str("name", c.Name).Msg("excluded by seniority heuristic")
			continue
		}
		rows = append(rows, []string{
			c.ID,
			c.Name,
			c.City,
			c.Country,
			strings.Join(c.Disciplines, ", "),
			c.DateFrom,
			c.DateTo,
		})
	}

	path, err := exporter.Write(opts.OutputDir, competitionsFilename(opts.Years), competitionsHeader, rows)
	if err != nil {
		return "", err
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("malformed competition records were skipped")
	}
	log.Info().Int("competitions", len(rows)).Str("file", path).Msg("competition export done")
	return path, nil
}

func matchesDisciplines(c models.Competition, disciplines []string) bool {
	if len(disciplines) == 0 {
		return true
	}
	for _, d := range disciplines {
		if c.HasDiscipline(d) {
			return true
		}
	}
	return false
}

// competitionsFilename encodes the queried years. A contiguous span of
// more than two years becomes "first-last", anything else joins the
// years with underscores, matching the original naming convention.
func competitionsFilename(years []int) string {
	if contiguous(years) && len(years) > 2 {
		return fmt.Sprintf("competitions_%d-%d.xlsx", years[0], years[len(years)-1])
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return "competitions_" + strings.Join(parts, "_") + ".xlsx"
}

func contiguous(years []int) bool {
	for i := 1; i < len(years); i++ {
		if years[i] != years[i-1]+1 {
			return false
		}
	}
	return len(years) > 0
}
