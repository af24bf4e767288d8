package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/config"
	"github.com/RBaldassarre/worldaquatics-export/constants"
	apperrors "github.com/RBaldassarre/worldaquatics-export/errors"
	"github.com/RBaldassarre/worldaquatics-export/interfaces"
	"github.com/RBaldassarre/worldaquatics-export/models"
)

// RunAnalysis cross-references one competition's 10km open-water
// fields with the pool freestyle events at the same competition: one
// row per open-water athlete, one column per pool event, each cell
// holding the athlete's time in that pool race (empty when they did
// not swim it). It returns the path written.
func RunAnalysis(ctx context.Context, client interfaces.APIClient, exporter interfaces.Exporter, opts config.AnalysisOptions) (string, error) {
	distances := opts.Distances
	if len(distances) == 0 {
		distances = []string{"400m", "800m", "1500m"}
	}

	events, err := client.Events(ctx, opts.CompetitionID)
	if err != nil {
		return "", err
	}

	var owEvents, poolEvents []models.RaceEvent
	for _, e := range events {
		switch {
		case e.Discipline == constants.DisciplineOpenWater && strings.Contains(e.Name, "10km"):
			owEvents = append(owEvents, e)
		case e.Discipline == constants.DisciplineSwimming && strings.Contains(e.Name, "Freestyle") && matchesDistance(e.Name, distances):
			poolEvents = append(poolEvents, e)
		}
	}
	if len(owEvents) == 0 {
		return "", apperrors.NewNotFoundError("NO_OW_10KM",
			fmt.Sprintf("competition %s has no 10km open-water events", opts.CompetitionID))
	}

	type owAthlete struct {
		row  models.ResultRow
		pool map[string]string // pool event name -> best time
	}

	var (
		order   []string // insertion order of athlete keys
		byKey   = make(map[string]*owAthlete)
		skipped int
	)
	for _, e := range owEvents {
		log.Info().Str("event", e.Name).Msg("fetching open-water results")
		_, rows, s, err := client.EventResults(ctx, e.ID)
		if err != nil {
			return "", err
		}
		skipped += s
		for _, r := range rows {
			key := athleteKey(r.FirstName, r.LastName)
			if _, ok := byKey[key]; !ok {
				byKey[key] = &owAthlete{row: r, pool: make(map[string]string)}
				order = append(order, key)
			}
		}
	}

	var poolColumns []string
	for _, e := range poolEvents {
		log.Info().Str("event", e.Name).Msg("fetching pool results")
		_, rows, s, err := client.EventResults(ctx, e.ID)
		if err != nil {
			return "", err
		}
		skipped += s

		if !containsString(poolColumns, e.Name) {
			poolColumns = append(poolColumns, e.Name)
		}
		for _, r := range rows {
			ath, ok := byKey[athleteKey(r.FirstName, r.LastName)]
			if !ok {
				continue // only athletes who raced the 10km
			}
			// keep the best time when the athlete swam the event twice
			existing := ath.pool[e.Name]
			if r.FinalTime != "" && (existing == "" || fasterTime(r.FinalTime, existing)) {
				ath.pool[e.Name] = r.FinalTime
			}
		}
	}

	header := append([]string{"athlete", "country", "ow_time"}, poolColumns...)
	rows := make([][]string, 0, len(order))
	for _, key := range order {
		ath := byKey[key]
		row := []string{ath.row.FullName(), ath.row.Country, ath.row.FinalTime}
		for _, col := range poolColumns {
			row = append(row, ath.pool[col])
		}
		rows = append(rows, row)
	}

	filename := fmt.Sprintf("ow_pool_%s.xlsx", opts.CompetitionID)
	path, err := exporter.Write(opts.OutputDir, filename, header, rows)
	if err != nil {
		return "", err
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("malformed result records were skipped")
	}
	log.Info().Int("athletes", len(rows)).Int("pool_events", len(poolColumns)).
		Str("file", path).Msg("analysis export done")
	return path, nil
}

func matchesDistance(name string, distances []string) bool {
	for _, d := range distances {
		if strings.Contains(name, d) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// fasterTime reports whether race time a beats b. Times are parsed as
// [HH:]MM:SS.cc; lexicographic order breaks across digit-length
// boundaries ("10:01.00" < "9:59.99"), so unparseable times are the
// only ones compared as strings.
func fasterTime(a, b string) bool {
	as, aok := timeSeconds(a)
	bs, bok := timeSeconds(b)
	if aok && bok {
		return as < bs
	}
	return a < b
}

func timeSeconds(s string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, false
	}
	var total float64
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.Replace(p, ",", ".", 1), 64)
		if err != nil || v < 0 {
			return 0, false
		}
		total = total*60 + v
	}
	return total, true
}

// athleteKey matches results rows across events by normalized name.
// Result rows carry no person id, so name matching is the only handle.
func athleteKey(first, last string) string {
	return strings.ToLower(strings.TrimSpace(first)) + "|" + strings.ToLower(strings.TrimSpace(last))
}
