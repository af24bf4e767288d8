// Command owpool cross-references the 10km open-water fields of one
// competition with the pool freestyle events swum at the same
// competition (400m, 800m and 1500m by default).
//
//	owpool -competition 4725
package main

import (
	"context"
	"flag"
	"path/filepath"
	"strings"

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
	competitionID := flag.String("competition", "", "competition id (required)")
	distances := flag.String("distances", "400m,800m,1500m", "comma-separated pool distances to match")
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

	var distList []string
	for _, d := range strings.Split(*distances, ",") {
		if d = strings.TrimSpace(d); d != "" {
			distList = append(distList, d)
		}
	}

	opts := config.AnalysisOptions{
		CompetitionID: *competitionID,
		Distances:     distList,
		OutputDir:     filepath.Join(settings.OutputRoot, constants.AnalysisOutputDir),
	}

	client := api.NewWorldAquaticsClient(settings.APIBaseURL)
	if _, err := app.RunAnalysis(context.Background(), client, export.NewExcelWriter(), opts); err != nil {
		log.Fatal().Err(err).Msg("analysis export failed")
	}
}
