package interfaces

import (
	"context"

	"github.com/RBaldassarre/worldaquatics-export/models"
)

// APIClient is the read-only surface of the World Aquatics API used by
// the pipelines. The int return values are counts of malformed records
// the client skipped while parsing.
type APIClient interface {
	CompetitionsByYear(ctx context.Context, year int) ([]models.Competition, int, error)
	Roster(ctx context.Context, competitionID, discipline, gender, country string) ([]models.Athlete, int, error)
	Events(ctx context.Context, competitionID string) ([]models.RaceEvent, error)
	EventResults(ctx context.Context, eventID string) (string, []models.ResultRow, int, error)
}
