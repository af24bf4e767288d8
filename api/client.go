package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/RBaldassarre/worldaquatics-export/constants"
	apperrors "github.com/RBaldassarre/worldaquatics-export/errors"
	"github.com/RBaldassarre/worldaquatics-export/models"
)

// WorldAquaticsClient talks to the public World Aquatics JSON API.
// Every call is a single synchronous request; a failed request is a
// terminal failure of the run, there are no retries.
type WorldAquaticsClient struct {
	client  *http.Client
	baseURL string
}

// NewWorldAquaticsClient creates a client against the given base URL,
// falling back to the production API when baseURL is empty.
func NewWorldAquaticsClient(baseURL string) *WorldAquaticsClient {
	if baseURL == "" {
		baseURL = constants.WorldAquaticsBaseURL
	}
	return &WorldAquaticsClient{
		client: &http.Client{
			Timeout: constants.APITimeout,
		},
		baseURL: baseURL,
	}
}

// wire shapes of the API responses

// stringOrNumber tolerates fields the API serves inconsistently as
// JSON strings or numbers (ids, bib numbers, ranks like "DNF").
type stringOrNumber string

func (s *stringOrNumber) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = stringOrNumber(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = stringOrNumber(n.String())
	return nil
}

func (s stringOrNumber) String() string {
	return string(s)
}

type competitionsPage struct {
	Content  []competitionRecord `json:"content"`
	PageInfo struct {
		NumPages int `json:"numPages"`
	} `json:"pageInfo"`
}

type competitionRecord struct {
	ID       stringOrNumber `json:"id"`
	Name     string         `json:"name"`
	Location struct {
		City        string `json:"city"`
		CountryName string `json:"countryName"`
	} `json:"location"`
	Disciplines []string `json:"disciplines"`
	DateFrom    string   `json:"dateFrom"`
	DateTo      string   `json:"dateTo"`
}

type rosterCountry struct {
	CountryName    string          `json:"CountryName"`
	Participations []participation `json:"Participations"`
}

type participation struct {
	PersonID           int    `json:"PersonId"`
	PreferredFirstName string `json:"PreferredFirstName"`
	PreferredLastName  string `json:"PreferredLastName"`
	Gender             *int   `json:"Gender"`
	DOB                string `json:"DOB"`
	Disciplines        []struct {
		DisciplineName string `json:"DisciplineName"`
	} `json:"Disciplines"`
}

type eventsResponse struct {
	Sports []struct {
		Code           string `json:"Code"`
		DisciplineList []struct {
			ID             string `json:"Id"`
			DisciplineName string `json:"DisciplineName"`
			Gender         string `json:"Gender"`
		} `json:"DisciplineList"`
	} `json:"Sports"`
}

type eventDetail struct {
	DisciplineName string `json:"DisciplineName"`
	Heats          []struct {
		Results []resultRecord `json:"Results"`
	} `json:"Heats"`
}

type resultRecord struct {
	FirstName string         `json:"FirstName"`
	LastName  string         `json:"LastName"`
	NAT       string         `json:"NAT"`
	Bib       stringOrNumber `json:"Bib"`
	Rank      stringOrNumber `json:"Rank"`
	Time      string         `json:"Time"`
	MedalTag  string         `json:"MedalTag"`
	Splits    []struct {
		Distance string `json:"Distance"`
		Order    int    `json:"Order"`
		Time     string `json:"Time"`
	} `json:"Splits"`
}

// doRequest performs one GET with the headers the API expects and
// returns the raw body. Non-2xx statuses are errors.
func (c *WorldAquaticsClient) doRequest(ctx context.Context, rawURL, requestType string) ([]byte, error) {
	log.Debug().Str("url", rawURL).Str("request", requestType).Msg("fetching")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, apperrors.NewSystemError("REQUEST_BUILD", fmt.Sprintf("building %s request", requestType), err)
	}
	req.Header.Set("User-Agent", constants.HeaderUserAgent)
	req.Header.Set("Accept", constants.HeaderAccept)
	req.Header.Set("Origin", constants.HeaderOrigin)
	req.Header.Set("Referer", constants.HeaderReferer)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, apperrors.NewAPIError("REQUEST_FAILED", fmt.Sprintf("%s request failed", requestType), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.NewNotFoundError("NOT_FOUND", fmt.Sprintf("%s: resource not found", requestType))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewAPIError("BAD_STATUS",
			fmt.Sprintf("%s: API returned status %d", requestType, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewAPIError("READ_BODY", fmt.Sprintf("reading %s response", requestType), err)
	}
	return body, nil
}

// CompetitionsByYear walks every page of the competitions endpoint for
// one calendar year. Records missing an id or a name are skipped; the
// second return value is the skip count.
func (c *WorldAquaticsClient) CompetitionsByYear(ctx context.Context, year int) ([]models.Competition, int, error) {
	var (
		comps   []models.Competition
		skipped int
	)

	for page := 0; ; page++ {
		q := url.Values{}
		q.Set("pageSize", strconv.Itoa(constants.CompetitionsPageSize))
		q.Set("venueDateFrom", fmt.Sprintf(constants.VenueDateFrom, year))
		q.Set("venueDateTo", fmt.Sprintf(constants.VenueDateFrom, year+1))
		q.Set("disciplines", "")
		q.Set("group", constants.CompetitionsGroup)
		q.Set("sort", constants.CompetitionsSort)
		q.Set("page", strconv.Itoa(page))

		body, err := c.doRequest(ctx, c.baseURL+"/competitions?"+q.Encode(), "competitions")
		if err != nil {
			return nil, 0, err
		}

		var pageData competitionsPage
		if err := json.Unmarshal(body, &pageData); err != nil {
			return nil, 0, apperrors.NewAPIError("PARSE_COMPETITIONS", "parsing competitions response", err)
		}

		for _, rec := range pageData.Content {
			if rec.ID.String() == "" || rec.Name == "" {
				skipped++
				log.Debug().Str("id", rec.ID.String()).Str("name", rec.Name).Msg("skipping malformed competition record")
				continue
			}
			comps = append(comps, models.Competition{
				ID:          rec.ID.String(),
				Name:        rec.Name,
				City:        rec.Location.City,
				Country:     rec.Location.CountryName,
				Disciplines: rec.Disciplines,
				DateFrom:    truncateDate(rec.DateFrom),
				DateTo:      truncateDate(rec.DateTo),
			})
		}

		if page >= pageData.PageInfo.NumPages-1 {
			break
		}
	}

	log.Debug().Int("year", year).Int("count", len(comps)).Int("skipped", skipped).Msg("fetched competitions")
	return comps, skipped, nil
}

// Roster fetches one competition roster slice for a single
// discipline/gender/country combination. Empty filter values mean
// "all". Participations without a PersonId are skipped and counted.
func (c *WorldAquaticsClient) Roster(ctx context.Context, competitionID, discipline, gender, country string) ([]models.Athlete, int, error) {
	q := url.Values{}
	q.Set("discipline", discipline)
	q.Set("gender", gender)
	q.Set("countryId", country)

	body, err := c.doRequest(ctx, fmt.Sprintf("%s/competitions/%s/athletes?%s", c.baseURL, competitionID, q.Encode()), "athletes")
	if err != nil {
		return nil, 0, err
	}

	var countries []rosterCountry
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, 0, apperrors.NewAPIError("PARSE_ATHLETES", "parsing athletes response", err)
	}

	var (
		athletes []models.Athlete
		skipped  int
	)
	for _, cty := range countries {
		for _, p := range cty.Participations {
			if p.PersonID == 0 {
				skipped++
				continue
			}
			disciplines := make([]string, 0, len(p.Disciplines))
			for _, d := range p.Disciplines {
				disciplines = append(disciplines, d.DisciplineName)
			}
			athletes = append(athletes, models.Athlete{
				ID:          p.PersonID,
				Name:        joinName(p.PreferredFirstName, p.PreferredLastName),
				Country:     cty.CountryName,
				Gender:      genderString(p.Gender),
				DOB:         truncateDate(p.DOB),
				Disciplines: disciplines,
			})
		}
	}

	log.Debug().Str("discipline", discipline).Str("country", country).
		Int("count", len(athletes)).Int("skipped", skipped).Msg("fetched roster")
	return athletes, skipped, nil
}

// Events lists every race event of a competition, tagged with the
// sport code it belongs to.
func (c *WorldAquaticsClient) Events(ctx context.Context, competitionID string) ([]models.RaceEvent, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("%s/competitions/%s/events", c.baseURL, competitionID), "events")
	if err != nil {
		return nil, err
	}

	var data eventsResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, apperrors.NewAPIError("PARSE_EVENTS", "parsing events response", err)
	}

	var events []models.RaceEvent
	for _, sport := range data.Sports {
		for _, d := range sport.DisciplineList {
			events = append(events, models.RaceEvent{
				ID:         d.ID,
				Discipline: sport.Code,
				Name:       d.DisciplineName,
				Gender:     d.Gender,
			})
		}
	}
	return events, nil
}

// EventResults fetches the final-heat results of one event. The first
// heat holds the final. Rows without both name parts are skipped and
// counted.
func (c *WorldAquaticsClient) EventResults(ctx context.Context, eventID string) (string, []models.ResultRow, int, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("%s/events/%s", c.baseURL, eventID), "event results")
	if err != nil {
		return "", nil, 0, err
	}

	var detail eventDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return "", nil, 0, apperrors.NewAPIError("PARSE_RESULTS", "parsing event results", err)
	}
	if len(detail.Heats) == 0 {
		return "", nil, 0, apperrors.NewNotFoundError("NO_HEATS", "event has no heats")
	}

	var (
		rows    []models.ResultRow
		skipped int
	)
	for _, rec := range detail.Heats[0].Results {
		if rec.FirstName == "" && rec.LastName == "" {
			skipped++
			continue
		}
		row := models.ResultRow{
			FirstName: rec.FirstName,
			LastName:  rec.LastName,
			Country:   rec.NAT,
			Bib:       rec.Bib.String(),
			Rank:      parseRank(rec.Rank),
			FinalTime: rec.Time,
			Medal:     rec.MedalTag,
		}
		for i, s := range rec.Splits {
			order := s.Order
			if order == 0 {
				order = i + 1
			}
			label := s.Distance
			if label == "" {
				// some events report splits without a distance label
				label = fmt.Sprintf("split_%d", order)
			}
			row.Splits = append(row.Splits, models.Split{
				Label: label,
				Order: order,
				Time:  s.Time,
			})
		}
		rows = append(rows, row)
	}

	log.Debug().Str("event", eventID).Int("count", len(rows)).Int("skipped", skipped).Msg("fetched event results")
	return detail.DisciplineName, rows, skipped, nil
}

// truncateDate keeps the date part of an ISO timestamp.
func truncateDate(s string) string {
	if len(s) > len(constants.DateFormat) {
		return s[:len(constants.DateFormat)]
	}
	return s
}

func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}

// genderString maps the numeric wire value (0 male, 1 female) to the
// single-letter form used everywhere else.
func genderString(code *int) string {
	if code == nil {
		return ""
	}
	switch *code {
	case constants.GenderCodeMale:
		return constants.GenderMale
	case constants.GenderCodeFemale:
		return constants.GenderFemale
	default:
		return ""
	}
}

// parseRank turns the wire rank into an int, zero when absent or not
// numeric (DNF, DSQ and similar markers).
func parseRank(n stringOrNumber) int {
	v, err := strconv.Atoi(n.String())
	if err != nil || v < 0 {
		return 0
	}
	return v
}
