package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/config"
	"github.com/RBaldassarre/worldaquatics-export/interfaces"
	"github.com/RBaldassarre/worldaquatics-export/models"
	"github.com/RBaldassarre/worldaquatics-export/roster"
)

var athletesHeader = []string{"country", "athlete", "gender", "dob", "disciplines"}

// RunAthletes fetches one roster per requested discipline and country,
// combines them by athlete id (intersection or union), and writes one
// spreadsheet. It returns the path written.
func RunAthletes(ctx context.Context, client interfaces.APIClient, exporter interfaces.Exporter, opts config.AthletesOptions) (string, error) {
	disciplines := opts.Disciplines
	if len(disciplines) == 0 {
		disciplines = []string{""} // single unfiltered roster
	}
	countries := opts.Countries
	if len(countries) == 0 {
		countries = []string{""}
	}

	var (
		rosters [][]models.Athlete
		skipped int
	)
	for _, disc := range disciplines {
		var combined []models.Athlete
		for _, cty := range countries {
			log.Info().Str("discipline", orAll(disc)).Str("gender", orAll(opts.Gender)).
				Str("country", orAll(cty)).Msg("fetching roster")
			athletes, s, err := client.Roster(ctx, opts.CompetitionID, disc, opts.Gender, cty)
			if err != nil {
				return "", err
			}
			combined = append(combined, athletes...)
			skipped += s
		}
		rosters = append(rosters, combined)
	}

	mode := roster.Union
	if opts.Intersect {
		mode = roster.Intersection
	}
	// countries are already applied by the per-roster query; the wire
	// carries full country names, not the queried codes
	athletes := roster.Combine(rosters, mode, roster.Filter{Gender: opts.Gender})

	rows := make([][]string, 0, len(athletes))
	for _, a := range athletes {
		rows = append(rows, []string{
			a.Country,
			a.Name,
			a.Gender,
			a.DOB,
			strings.Join(a.Disciplines, " / "),
		})
	}

	path, err := exporter.Write(opts.OutputDir, athletesFilename(opts), athletesHeader, rows)
	if err != nil {
		return "", err
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("malformed roster records were skipped")
	}
	log.Info().Int("athletes", len(rows)).Str("file", path).Msg("athlete export done")
	return path, nil
}

func orAll(s string) string {
	if s == "" {
		return "ALL"
	}
	return s
}

// athletesFilename encodes disciplines, combination mode, gender and
// countries, matching the original naming convention ("_both" marks
// intersection mode).
func athletesFilename(opts config.AthletesOptions) string {
	suffix := "ALL"
	if len(opts.Disciplines) > 0 {
		suffix = strings.Join(opts.Disciplines, "-")
	}
	if opts.Intersect {
		suffix += "_both"
	}
	if opts.Gender != "" {
		suffix += "_" + opts.Gender
	}
	if len(opts.Countries) > 0 {
		suffix += "_" + strings.Join(opts.Countries, "-")
	}
	return "athletes_" + suffix + ".xlsx"
}
