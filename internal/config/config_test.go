package config

import "testing"

func TestLoad(t *testing.T) {
	t.Run("MissingAPIKeyFails", func(t *testing.T) {
		t.Setenv("FATEBOOK_API_KEY", "")
		if _, err := Load(); err == nil {
			t.Fatal("Load should fail without FATEBOOK_API_KEY")
		}
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("FATEBOOK_API_KEY", "k")
		t.Setenv("FATEBOOK_BASE_URL", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("REQUEST_TIMEOUT", "")

		cfg, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.BaseURL != "https://fatebook.io/api" {
			t.Errorf("BaseURL=%q", cfg.BaseURL)
		}
		if cfg.LogLevel != "info" || cfg.RequestTimeout != 30 {
			t.Errorf("cfg=%+v", cfg)
		}
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("FATEBOOK_API_KEY", "k")
		t.Setenv("FATEBOOK_BASE_URL", "http://localhost:3000/api")
		t.Setenv("REQUEST_TIMEOUT", "5")

		cfg, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.BaseURL != "http://localhost:3000/api" || cfg.RequestTimeout != 5 {
			t.Errorf("cfg=%+v", cfg)
		}
	})

	t.Run("BadIntFallsBack", func(t *testing.T) {
		t.Setenv("FATEBOOK_API_KEY", "k")
		t.Setenv("REQUEST_TIMEOUT", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatal(err)
		}
		if cfg.RequestTimeout != 30 {
			t.Errorf("RequestTimeout=%d want fallback 30", cfg.RequestTimeout)
		}
	})
}
