package config

import (
	"os"
	"strings"

	"github.com/RBaldassarre/worldaquatics-export/constants"
)

// Settings holds the environment-level configuration shared by all
// tools. Per-run parameters live in the option structs below and are
// passed explicitly into the pipelines, never read from globals.
type Settings struct {
	APIBaseURL string
	LogLevel   string
	OutputRoot string
}

// CompetitionsOptions drives one CompetitionFinder run.
type CompetitionsOptions struct {
	Years       []int
	Disciplines []string // empty means no discipline filter
	SeniorOnly  bool     // apply the junior/masters heuristic exclusion
	OutputDir   string
}

// AthletesOptions drives one AthleteFinder run.
type AthletesOptions struct {
	CompetitionID string
	Disciplines   []string
	Intersect     bool // true = AND across disciplines, false = OR
	Gender        string
	Countries     []string // empty means all countries
	OutputDir     string
}

// ResultsOptions drives one ResultsDownloader run.
type ResultsOptions struct {
	CompetitionID string
	Sport         string // sport code whose events are offered, e.g. "OW"
	OutputDir     string
}

// AnalysisOptions drives one open-water / pool cross-analysis run.
type AnalysisOptions struct {
	CompetitionID string
	Distances     []string // pool freestyle distances to match
	OutputDir     string
}

// Load reads the environment-level settings.
func Load() *Settings {
	return &Settings{
		APIBaseURL: getEnv(constants.EnvAPIBaseURL, constants.WorldAquaticsBaseURL),
		LogLevel:   getEnv(constants.EnvLogLevel, constants.LogLevelInfo),
		OutputRoot: getEnv(constants.EnvOutputRoot, "."),
	}
}

// Validate checks the loaded settings.
func (s *Settings) Validate() error {
	validLogLevels := map[string]bool{
		constants.LogLevelDebug: true,
		constants.LogLevelInfo:  true,
		constants.LogLevelWarn:  true,
		constants.LogLevelError: true,
	}
	if !validLogLevels[strings.ToUpper(s.LogLevel)] {
		return &ConfigError{
			Field:   "LogLevel",
			Message: "LOG_LEVEL must be one of: DEBUG, INFO, WARN, ERROR (got: " + s.LogLevel + ")",
		}
	}
	if s.APIBaseURL == "" {
		return &ConfigError{
			Field:   "APIBaseURL",
			Message: constants.EnvAPIBaseURL + " must not be empty",
		}
	}
	return nil
}

// ConfigError reports an invalid setting.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in " + e.Field + ": " + e.Message
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
