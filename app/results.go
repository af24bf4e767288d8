package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/config"
	apperrors "github.com/RBaldassarre/worldaquatics-export/errors"
	"github.com/RBaldassarre/worldaquatics-export/export"
	"github.com/RBaldassarre/worldaquatics-export/interfaces"
	"github.com/RBaldassarre/worldaquatics-export/models"
	"github.com/RBaldassarre/worldaquatics-export/splits"
)

// RunResults lists the competition's events for the configured sport,
// lets the selector choose one, and writes the finishing results with
// one column per checkpoint. It returns the path written.
func RunResults(ctx context.Context, client interfaces.APIClient, exporter interfaces.Exporter, selector interfaces.EventSelector, opts config.ResultsOptions) (string, error) {
	events, err := client.Events(ctx, opts.CompetitionID)
	if err != nil {
		return "", err
	}

	var candidates []models.RaceEvent
	for _, e := range events {
		if e.Discipline == opts.Sport {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return "", apperrors.NewNotFoundError("NO_SPORT_EVENTS",
			fmt.Sprintf("competition %s has no %s events", opts.CompetitionID, opts.Sport))
	}

	selected, err := selector.Select(candidates)
	if err != nil {
		return "", err
	}
	log.Info().Str("event", selected.Name).Str("gender", selected.Gender).Msg("downloading results")

	disciplineName, rows, skipped, err := client.EventResults(ctx, selected.ID)
	if err != nil {
		return "", err
	}
	if disciplineName == "" {
		disciplineName = selected.Name
	}

	table := splits.Build(rows)
	header := append([]string{"first_name", "last_name", "country", "bib", "rank", "final_time", "medal"}, table.Columns...)

	outRows := make([][]string, 0, len(table.Rows))
	for _, r := range table.Rows {
		rank := ""
		if r.Rank > 0 {
			rank = strconv.Itoa(r.Rank)
		}
		row := []string{r.FirstName, r.LastName, r.Country, r.Bib, rank, r.FinalTime, r.Medal}
		for _, col := range table.Columns {
			row = append(row, table.CellFor(r, col))
		}
		outRows = append(outRows, row)
	}

	filename := fmt.Sprintf("%s_%s.xlsx", opts.CompetitionID, export.SafeFilename(disciplineName))
	path, err := exporter.Write(opts.OutputDir, filename, header, outRows)
	if err != nil {
		return "", err
	}

	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("malformed result records were skipped")
	}
	log.Info().Int("competitors", len(outRows)).Int("checkpoints", len(table.Columns)).
		Str("file", path).Msg("results export done")
	return path, nil
}
