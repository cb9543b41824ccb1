// Package fatebook is a thin typed client for the Fatebook API
// (https://fatebook.io/api). Remote failures never escape the client:
// every operation logs the failure and returns the empty/absent/false
// sentinel so a broken connection reads as "no predictions found" rather
// than crashing the host session.
package fatebook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the production Fatebook API root.
const DefaultBaseURL = "https://fatebook.io/api"

// Filter narrows a question listing. Unset fields are omitted from the
// outgoing query entirely; the API treats an omitted boolean differently
// from an explicit "false", which is why Resolved and Unresolved are
// tri-state pointers.
type Filter struct {
	Limit              int
	Resolved           *bool
	Unresolved         *bool
	ShowAllPublic      bool
	SearchString       string
	FilterTagIDs       []string
	FilterTournamentID string
	ResolvingSoon      bool
	ReadyToResolve     bool
	SortEarliestFirst  bool
}

// query encodes only the present fields. Booleans go out as the literal
// strings "true"/"false"; tag ids as repeated filterTagIds keys.
func (f Filter) query(apiKey string) url.Values {
	q := url.Values{}
	q.Set("apiKey", apiKey)
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Resolved != nil {
		q.Set("resolved", strconv.FormatBool(*f.Resolved))
	}
	if f.Unresolved != nil {
		q.Set("unresolved", strconv.FormatBool(*f.Unresolved))
	}
	if f.ShowAllPublic {
		q.Set("showAllPublic", "true")
	}
	if f.SearchString != "" {
		q.Set("searchString", f.SearchString)
	}
	for _, id := range f.FilterTagIDs {
		q.Add("filterTagIds", id)
	}
	if f.FilterTournamentID != "" {
		q.Set("filterTournamentId", f.FilterTournamentID)
	}
	if f.ResolvingSoon {
		q.Set("resolvingSoon", "true")
	}
	if f.ReadyToResolve {
		q.Set("readyToResolve", "true")
	}
	if f.SortEarliestFirst {
		q.Set("sortEarliestFirst", "true")
	}
	return q
}

// Client talks to the Fatebook API with a fixed key. The HTTP client is
// shared for the process lifetime; each call is a single best-effort
// attempt with no retries.
type Client struct {
	HTTP    *http.Client
	BaseURL string
	APIKey  string
}

// NewClient returns a client for the production API. If httpClient is nil,
// a default with a 30s timeout is used.
func NewClient(apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{HTTP: httpClient, BaseURL: DefaultBaseURL, APIKey: apiKey}
}

// Questions lists questions matching the filter. Returns nil on any
// transport error, non-2xx status, or malformed payload.
func (c *Client) Questions(ctx context.Context, f Filter) []Question {
	body, err := c.get(ctx, c.BaseURL+"/v0/getQuestions?"+f.query(c.APIKey).Encode())
	if err != nil {
		log.Error().Err(err).Msg("fatebook: list questions")
		return nil
	}
	// The API returns questions under "items", not "questions".
	var resp struct {
		Items []Question `json:"items"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Error().Err(err).Msg("fatebook: decode questions")
		return nil
	}
	log.Debug().Int("count", len(resp.Items)).Msg("fatebook: questions returned")
	return resp.Items
}

// Question fetches a single question by exact id. Returns nil when the
// question does not exist or the call fails for any reason, so callers can
// tell "not found" from "found but empty".
func (c *Client) Question(ctx context.Context, id string) *Question {
	q := url.Values{}
	q.Set("apiKey", c.APIKey)
	q.Set("questionId", id)
	body, err := c.get(ctx, c.BaseURL+"/v0/getQuestion?"+q.Encode())
	if err != nil {
		log.Error().Err(err).Str("question_id", id).Msg("fatebook: fetch question")
		return nil
	}
	var out Question
	if err := json.Unmarshal(body, &out); err != nil {
		log.Error().Err(err).Str("question_id", id).Msg("fatebook: decode question")
		return nil
	}
	return &out
}

// AddForecast posts a new forecast value. The updated question is not
// returned; callers re-fetch if they need the new state. Returns false on
// any failure.
func (c *Client) AddForecast(ctx context.Context, id string, forecast float64, comment string) bool {
	payload := map[string]any{
		"apiKey":     c.APIKey,
		"questionId": id,
		"forecast":   forecast,
	}
	if comment != "" {
		payload["comment"] = comment
	}
	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v0/addForecast", bytes.NewReader(b))
	if err != nil {
		log.Error().Err(err).Str("question_id", id).Msg("fatebook: add forecast")
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Error().Err(err).Str("question_id", id).Msg("fatebook: add forecast")
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error().
			Int("status", resp.StatusCode).
			Str("question_id", id).
			Str("body", string(body)).
			Msg("fatebook: add forecast")
		return false
	}
	return true
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", req.URL.Path, resp.StatusCode, string(body))
	}
	return body, nil
}
