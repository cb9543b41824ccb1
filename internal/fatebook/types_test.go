package fatebook

import (
	"encoding/json"
	"testing"
)

func TestForecastValueDisplay(t *testing.T) {
	t.Run("Number", func(t *testing.T) {
		var v ForecastValue
		if err := json.Unmarshal([]byte(`0.753`), &v); err != nil {
			t.Fatal(err)
		}
		if !v.IsNumber() {
			t.Error("0.753 should decode as numeric")
		}
		if got := v.Display(); got != "75.3%" {
			t.Errorf("Display()=%q want 75.3%%", got)
		}
	})

	t.Run("Rounding", func(t *testing.T) {
		for in, want := range map[string]string{
			`0`:      "0.0%",
			`1`:      "100.0%",
			`0.005`:  "0.5%",
			`0.3333`: "33.3%",
		} {
			var v ForecastValue
			if err := json.Unmarshal([]byte(in), &v); err != nil {
				t.Fatal(err)
			}
			if got := v.Display(); got != want {
				t.Errorf("Display(%s)=%q want %q", in, got, want)
			}
		}
	})

	t.Run("Sentinel", func(t *testing.T) {
		var v ForecastValue
		if err := json.Unmarshal([]byte(`"AMBIGUOUS"`), &v); err != nil {
			t.Fatal(err)
		}
		if v.IsNumber() {
			t.Error("sentinel should not be numeric")
		}
		if got := v.Display(); got != "AMBIGUOUS" {
			t.Errorf("Display()=%q want the literal string", got)
		}
	})

	t.Run("OtherToken", func(t *testing.T) {
		var v ForecastValue
		if err := json.Unmarshal([]byte(`null`), &v); err != nil {
			t.Fatal(err)
		}
		if v.IsNumber() {
			t.Error("null must not decode as a 0.0 forecast")
		}
		if got := v.Display(); got != "null" {
			t.Errorf("Display()=%q want raw token", got)
		}
	})

	t.Run("NullInsideForecast", func(t *testing.T) {
		var f Forecast
		if err := json.Unmarshal([]byte(`{"forecast":null,"createdDate":"2026-03-01"}`), &f); err != nil {
			t.Fatal(err)
		}
		if f.Forecast.IsNumber() || f.Forecast.Display() != "null" {
			t.Errorf("forecast=%+v want textual null", f.Forecast)
		}
	})
}

func TestQuestionLatest(t *testing.T) {
	q := Question{}
	if q.Latest() != nil {
		t.Error("empty forecasts should have no latest")
	}

	q.Forecasts = []Forecast{
		{Forecast: NumberValue(0.2), CreatedDate: "2026-01-01"},
		{Forecast: NumberValue(0.9), CreatedDate: "2026-02-01"},
	}
	f := q.Latest()
	if f == nil || f.Forecast.Display() != "90.0%" {
		t.Errorf("Latest()=%v want the last element", f)
	}
}
