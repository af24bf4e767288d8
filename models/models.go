package models

// Competition is one meet as returned by the competitions endpoint.
// Fetched fresh per run, never persisted.
type Competition struct {
	ID          string
	Name        string
	City        string
	Country     string
	Disciplines []string
	DateFrom    string // "2006-01-02"
	DateTo      string // "2006-01-02"
}

// HasDiscipline reports whether the competition lists the given
// discipline code.
func (c Competition) HasDiscipline(code string) bool {
	for _, d := range c.Disciplines {
		if d == code {
			return true
		}
	}
	return false
}

// Athlete is one person in a competition roster. Disciplines holds
// every discipline the athlete appeared in for the queried scope;
// the merge key across rosters is ID.
type Athlete struct {
	ID          int
	Name        string
	Country     string
	Gender      string // "M", "F" or ""
	DOB         string // "2006-01-02", may be empty
	Disciplines []string
}

// RaceEvent is a single race within a competition, e.g. "Women 10km".
type RaceEvent struct {
	ID         string
	Discipline string // sport code, e.g. "OW"
	Name       string
	Gender     string
}

// Split is one intermediate checkpoint reading for one competitor.
type Split struct {
	Label string // checkpoint label, usually a distance such as "1.5km"
	Order int    // position within the competitor's own split sequence
	Time  string // elapsed time, empty when not recorded
}

// ResultRow is one competitor's finishing record in a race event.
// Rank is zero for non-finishers and disqualifications.
type ResultRow struct {
	FirstName string
	LastName  string
	Country   string
	Bib       string
	Rank      int
	FinalTime string
	Medal     string
	Splits    []Split
}

// FullName joins the name parts, tolerating either being empty.
func (r ResultRow) FullName() string {
	if r.FirstName == "" {
		return r.LastName
	}
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}
