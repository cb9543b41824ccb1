package fatebook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// User is the nested identity attached to questions and forecasts.
type User struct {
	Name string `json:"name"`
}

// ForecastValue is a probability as reported by the API. It is usually a
// number in [0,1], but the API occasionally returns a non-numeric sentinel
// (e.g. "AMBIGUOUS"), so both forms are kept.
type ForecastValue struct {
	Number  float64
	Text    string
	numeric bool
}

// NumberValue builds a numeric forecast value.
func NumberValue(f float64) ForecastValue { return ForecastValue{Number: f, numeric: true} }

// TextValue builds a non-numeric forecast value.
func TextValue(s string) ForecastValue { return ForecastValue{Text: s} }

func (v ForecastValue) IsNumber() bool { return v.numeric }

// Display renders the value the one way it is shown everywhere: numbers as a
// percentage with one decimal place, anything else verbatim.
func (v ForecastValue) Display() string {
	if v.numeric {
		return fmt.Sprintf("%.1f%%", v.Number*100)
	}
	return v.Text
}

func (v *ForecastValue) UnmarshalJSON(b []byte) error {
	// Unmarshal treats null into a float64 as a no-op success, which would
	// read as a 0.0 forecast; keep it textual instead.
	if string(bytes.TrimSpace(b)) == "null" {
		v.Text = "null"
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		v.Number = f
		v.numeric = true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v.Text = s
		return nil
	}
	// Neither number nor string; keep the raw token so it still prints.
	v.Text = strings.TrimSpace(string(b))
	return nil
}

func (v ForecastValue) MarshalJSON() ([]byte, error) {
	if v.numeric {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

// Forecast is one probability estimate recorded against a question,
// immutable once created.
type Forecast struct {
	Forecast    ForecastValue `json:"forecast"`
	CreatedDate string        `json:"createdDate"`
	User        *User         `json:"user,omitempty"`
}

// Question is a forecasting item tracked by Fatebook. Date fields stay in the
// string form the API sends; empty means the field was absent.
type Question struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	CreatedDate string     `json:"createdDate"`
	ResolveBy   string     `json:"resolveBy"`
	Resolved    bool       `json:"resolved"`
	Resolution  string     `json:"resolution"`
	User        *User      `json:"user,omitempty"`
	Forecasts   []Forecast `json:"forecasts"`
}

// Latest returns the current forecast (the last element, insertion order is
// chronological) or nil when none has been made.
func (q *Question) Latest() *Forecast {
	if len(q.Forecasts) == 0 {
		return nil
	}
	return &q.Forecasts[len(q.Forecasts)-1]
}
