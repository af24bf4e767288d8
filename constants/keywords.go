package constants

// Keyword denylist for the seniority heuristic. A competition whose
// name or category contains any of these (case-insensitive) is treated
// as a junior/masters/age-group meet, not a senior one. Best effort:
// the list is matched as plain substrings, so false positives and
// negatives are accepted.
var NonSeniorKeywords = []string{
	"masters",
	"junior",
	"juniors",
	"youth",
	"u18",
	"u20",
	"u23",
	"age group",
	"age-group",
	"cadet",
	"schools",
}
