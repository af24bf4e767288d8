package constants

import "time"

// API related constants
const (
	WorldAquaticsBaseURL = "https://api.worldaquatics.com/fina"
	APITimeout           = 30 * time.Second
	CompetitionsPageSize = 100
	CompetitionsGroup    = "FINA"
	CompetitionsSort     = "dateFrom,asc"
)

// Request headers expected by the World Aquatics API
const (
	HeaderUserAgent = "Mozilla/5.0"
	HeaderAccept    = "application/json"
	HeaderOrigin    = "https://www.worldaquatics.com"
	HeaderReferer   = "https://www.worldaquatics.com"
)

// Discipline codes
const (
	DisciplineSwimming   = "SW"
	DisciplineOpenWater  = "OW"
	DisciplineDiving     = "DV"
	DisciplineHighDiving = "HD"
	DisciplineWaterPolo  = "WP"
	DisciplineArtistic   = "AS"
	DisciplineTokenAll   = "ALL"
)

// Default query span when the year selection cannot be parsed.
// 1973 is the first FINA World Championships; anything earlier has no
// usable data on the API.
const (
	DefaultFirstYear = 1973
)

// Default discipline filter when none is given
var DefaultDisciplines = []string{DisciplineOpenWater}

// Output directories, one per tool
const (
	CompetitionsOutputDir = "output_competitionsID"
	AthletesOutputDir     = "output_athletes"
	ResultsOutputDir      = "output_ow"
	AnalysisOutputDir     = "output_analysis"
	OutputDirPermissions  = 0o755
)

// Date formats
const (
	DateFormat    = "2006-01-02"
	VenueDateFrom = "%d-01-01T00:00:00+00:00"
)

// Environment variable keys
const (
	EnvAPIBaseURL = "WORLD_AQUATICS_API_URL"
	EnvLogLevel   = "LOG_LEVEL"
	EnvOutputRoot = "OUTPUT_ROOT"
)

// Log level names
const (
	LogLevelDebug = "DEBUG"
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// Gender codes as used by the athletes endpoint (numeric) and by the
// query surface (single letter)
const (
	GenderCodeMale   = 0
	GenderCodeFemale = 1
	GenderMale       = "M"
	GenderFemale     = "F"
)
