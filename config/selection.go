package config

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/constants"
)

// YearSelection is the normalized form of the year/discipline argument
// text: an ordered, de-duplicated year list plus a discipline set. An
// empty discipline set means no filter.
type YearSelection struct {
	Years       []int
	Disciplines []string
}

// years outside this window are treated as malformed input
const (
	minPlausibleYear = 1900
	maxPlausibleYear = 2100
)

var knownDisciplines = map[string]bool{
	constants.DisciplineSwimming:   true,
	constants.DisciplineOpenWater:  true,
	constants.DisciplineDiving:     true,
	constants.DisciplineHighDiving: true,
	constants.DisciplineWaterPolo:  true,
	constants.DisciplineArtistic:   true,
}

// ParseYearSelection interprets the positional arguments of the
// competitions tool. Accepted year forms: a single year ("2024"), a
// comma list ("2022,2023"), or a textual range ("2019 to 2024"). An
// optional trailing discipline token is a known code, a comma list of
// codes, or "ALL" (no filter).
//
// This is an interactive utility, so malformed input never fails the
// run: an unparseable year text falls back to the full historical span
// (1973 through the current year) and a missing or unknown discipline
// token falls back to Open Water only.
func ParseYearSelection(args []string) YearSelection {
	tokens := splitTokens(args)

	disciplines, rest := takeDisciplineToken(tokens)
	years := parseYears(rest)

	if years == nil {
		years = defaultYears()
		if len(rest) > 0 {
			log.Warn().Str("input", strings.Join(rest, " ")).
				Msg("could not parse year selection, using full historical range")
		}
	}

	return YearSelection{Years: years, Disciplines: disciplines}
}

// splitTokens re-tokenizes the arguments so that "2019 to 2024" and
// "2019", "to", "2024" parse the same way.
func splitTokens(args []string) []string {
	var tokens []string
	for _, a := range args {
		for _, t := range strings.Fields(a) {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// takeDisciplineToken strips a trailing discipline token if there is
// one and returns the normalized discipline set plus the remaining
// year tokens. No trailing token means the default filter (OW only).
func takeDisciplineToken(tokens []string) ([]string, []string) {
	if len(tokens) == 0 {
		return append([]string(nil), constants.DefaultDisciplines...), tokens
	}

	last := strings.ToUpper(tokens[len(tokens)-1])
	if last == constants.DisciplineTokenAll {
		return nil, tokens[:len(tokens)-1]
	}

	parts := strings.Split(last, ",")
	codes := make([]string, 0, len(parts))
	seen := make(map[string]bool)
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !knownDisciplines[p] {
			codes = nil
			break
		}
		if !seen[p] {
			seen[p] = true
			codes = append(codes, p)
		}
	}
	if len(codes) > 0 {
		return codes, tokens[:len(tokens)-1]
	}
	return append([]string(nil), constants.DefaultDisciplines...), tokens
}

// parseYears interprets the year tokens, returning nil when malformed.
func parseYears(tokens []string) []int {
	if len(tokens) == 0 {
		return nil
	}

	// textual range: "<start> to <end>"
	if len(tokens) == 3 && strings.EqualFold(tokens[1], "to") {
		start, okStart := parseYear(tokens[0])
		end, okEnd := parseYear(tokens[2])
		if !okStart || !okEnd || start > end {
			return nil
		}
		years := make([]int, 0, end-start+1)
		for y := start; y <= end; y++ {
			years = append(years, y)
		}
		return years
	}

	// single year or comma list, possibly spread over several tokens
	seen := make(map[int]bool)
	var years []int
	for _, tok := range tokens {
		for _, part := range strings.Split(tok, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			y, ok := parseYear(part)
			if !ok {
				return nil
			}
			if !seen[y] {
				seen[y] = true
				years = append(years, y)
			}
		}
	}
	if len(years) == 0 {
		return nil
	}
	sort.Ints(years)
	return years
}

func parseYear(s string) (int, bool) {
	y, err := strconv.Atoi(s)
	if err != nil || y < minPlausibleYear || y > maxPlausibleYear {
		return 0, false
	}
	return y, true
}

func defaultYears() []int {
	last := time.Now().Year()
	years := make([]int, 0, last-constants.DefaultFirstYear+1)
	for y := constants.DefaultFirstYear; y <= last; y++ {
		years = append(years, y)
	}
	return years
}

// NormalizeGender maps free-form gender input to "M", "F" or "" (all).
func NormalizeGender(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case constants.GenderMale, "MALE", "MEN":
		return constants.GenderMale
	case constants.GenderFemale, "FEMALE", "WOMEN":
		return constants.GenderFemale
	default:
		return ""
	}
}

// SplitList splits a comma-separated argument into trimmed upper-case
// tokens, dropping empties.
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
