// Command competitions exports every World Aquatics competition in a
// year selection to an .xlsx file.
//
// Usage:
//
//	competitions [flags] [year selection] [discipline token]
//
//	competitions 2024
//	competitions 2022,2023 OW
//	competitions 2019 to 2024 SW,OW
//	competitions 2019 to 2024 ALL
//
// An unparseable year selection falls back to the full historical
// range; a missing discipline token means Open Water only and ALL
// disables the discipline filter.
package main

import (
	"context"
	"flag"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/api"
	"github.com/RBaldassarre/worldaquatics-export/app"
	"github.com/RBaldassarre/worldaquatics-export/config"
	"github.com/RBaldassarre/worldaquatics-export/constants"
	"github.com/RBaldassarre/worldaquatics-export/export"
	"github.com/RBaldassarre/worldaquatics-export/utils"
)

func main() {
	seniorOnly := flag.Bool("senior-only", true, "exclude junior/masters/age-group competitions (keyword heuristic)")
	flag.Parse()

	_ = godotenv.Load()
	settings := config.Load()
	utils.SetupLogger(settings.LogLevel)
	if err := settings.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	selection := config.ParseYearSelection(flag.Args())
	opts := config.CompetitionsOptions{
		Years:       selection.Years,
		Disciplines: selection.Disciplines,
		SeniorOnly:  *seniorOnly,
		OutputDir:   filepath.Join(settings.OutputRoot, constants.CompetitionsOutputDir),
	}

	client := api.NewWorldAquaticsClient(settings.APIBaseURL)
	if _, err := app.RunCompetitions(context.Background(), client, export.NewExcelWriter(), opts); err != nil {
		log.Fatal().Err(err).Msg("competition export failed")
	}
}
