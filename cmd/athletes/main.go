// Command athletes exports the roster of one competition to an .xlsx
// file, combining several discipline rosters by union or intersection
// of athlete identity.
//
//	athletes -competition 4725 -disciplines SW,OW -and -gender M -countries ITA
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
	competitionID := flag.String("competition", "", "competition id (required)")
	disciplines := flag.String("disciplines", constants.DisciplineOpenWater, "comma-separated discipline codes, or ALL")
	intersect := flag.Bool("and", false, "require athletes to appear in every discipline (default: union)")
	gender := flag.String("gender", "", "gender filter: M, F or empty for all")
	countries := flag.String("countries", "", "comma-separated country codes, empty for all")
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

	discList := config.SplitList(*disciplines)
	if len(discList) == 1 && discList[0] == constants.DisciplineTokenAll {
		discList = nil
	}

	opts := config.AthletesOptions{
		CompetitionID: *competitionID,
		Disciplines:   discList,
		Intersect:     *intersect,
		Gender:        config.NormalizeGender(*gender),
		Countries:     config.SplitList(*countries),
		OutputDir:     filepath.Join(settings.OutputRoot, constants.AthletesOutputDir),
	}

	client := api.NewWorldAquaticsClient(settings.APIBaseURL)
	if _, err := app.RunAthletes(context.Background(), client, export.NewExcelWriter(), opts); err != nil {
		log.Fatal().Err(err).Msg("athlete export failed")
	}
}
