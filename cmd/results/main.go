// Command results lists the Open Water events of one competition,
// prompts for a race, and exports its finishing results with one
// column per checkpoint.
//
//	results -competition 4725
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/api"
	"github.com/RBaldassarre/worldaquatics-export/app"
	"github.com/RBaldassarre/worldaquatics-export/config"
	"github.com/RBaldassarre/worldaquatics-export/constants"
	"github.com/RBaldassarre/worldaquatics-export/export"
	"github.com/RBaldassarre/worldaquatics-export/prompt"
	"github.com/RBaldassarre/worldaquatics-export/utils"
)

func main() {
	competitionID := flag.String("competition", "", "competition id (required)")
	sport := flag.String("sport", constants.DisciplineOpenWater, "sport code whose events are offered")
	flag.Parse()

	_ = godotenv.Load()
	settings := config.Load()
	utils.SetupLogger(settings.LogLevel)
	if err := settings.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if *competitionID == "" {
		log.Fatal().Msg("-competition is required")
	}

	opts := config.ResultsOptions{
		CompetitionID: *competitionID,
		Sport:         *sport,
		OutputDir:     filepath.Join(settings.OutputRoot, constants.ResultsOutputDir),
	}

	client := api.NewWorldAquaticsClient(settings.APIBaseURL)
	selector := prompt.NewTerminalSelector(os.Stdin, os.Stdout)
	if _, err := app.RunResults(context.Background(), client, export.NewExcelWriter(), selector, opts); err != nil {
		log.Fatal().Err(err).Msg("results export failed")
	}
}
