package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("FILMSCOUT_TEST_KEY", "set")
	if got := getEnv("FILMSCOUT_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("got %q, want the set value", got)
	}
	if got := getEnv("FILMSCOUT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q, want the fallback", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FILMSCOUT_DATA", "")
	t.Setenv("FILMSCOUT_LOG", "")
	t.Setenv("FILMSCOUT_LOG_LEVEL", "")
	cfg := Load()
	if cfg.DataPath != "data/film-locations.csv" {
		t.Errorf("DataPath = %q", cfg.DataPath)
	}
	if cfg.LogPath != "" || cfg.LogLevel != "info" {
		t.Errorf("cfg = %+v", cfg)
	}
}
