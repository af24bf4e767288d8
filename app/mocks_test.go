package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/RBaldassarre/worldaquatics-export/models"
)

// mockAPI is an in-memory interfaces.APIClient.
type mockAPI struct {
	competitions map[int][]models.Competition
	compSkipped  int
	rosters      map[string][]models.Athlete // key: discipline|gender|country
	rosterSkip   int
	events       []models.RaceEvent
	results      map[string]mockEventResult
	err          error
}

type mockEventResult struct {
	name    string
	rows    []models.ResultRow
	skipped int
}

func rosterKey(discipline, gender, country string) string {
	return discipline + "|" + gender + "|" + country
}

func (m *mockAPI) CompetitionsByYear(_ context.Context, year int) ([]models.Competition, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.competitions[year], m.compSkipped, nil
}

func (m *mockAPI) Roster(_ context.Context, _, discipline, gender, country string) ([]models.Athlete, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.rosters[rosterKey(discipline, gender, country)], m.rosterSkip, nil
}

func (m *mockAPI) Events(_ context.Context, _ string) ([]models.RaceEvent, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockAPI) EventResults(_ context.Context, eventID string) (string, []models.ResultRow, int, error) {
	if m.err != nil {
		return "", nil, 0, m.err
	}
	res, ok := m.results[eventID]
	if !ok {
		return "", nil, 0, fmt.Errorf("unknown event %s", eventID)
	}
	return res.name, res.rows, res.skipped, nil
}

// mockExporter records what would have been written.
type mockExporter struct {
	dir      string
	filename string
	header   []string
	rows     [][]string
	calls    int
	err      error
}

func (m *mockExporter) Write(dir, filename string, header []string, rows [][]string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.calls++
	m.dir = dir
	m.filename = filename
	m.header = header
	m.rows = rows
	return filepath.Join(dir, filename), nil
}
