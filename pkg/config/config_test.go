package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Predictor.MixedConversion {
		t.Errorf("expected MixedConversion to default false")
	}
	if !cfg.Predictor.UseRealtimeConversion || !cfg.Predictor.UseDictionarySuggest ||
		!cfg.Predictor.ZeroQuerySuggestion || !cfg.Predictor.EnableExpansion {
		t.Errorf("expected the remaining predictor flags to default true, got %+v", cfg.Predictor)
	}
	if cfg.Predictor.MaxPredictionCandidates != 10 {
		t.Errorf("expected MaxPredictionCandidates default of 10, got %d", cfg.Predictor.MaxPredictionCandidates)
	}
	if cfg.Server.MaxLimit != 64 {
		t.Errorf("expected Server.MaxLimit default of 64, got %d", cfg.Server.MaxLimit)
	}
}

func TestSaveAndLoadConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := DefaultConfig()
	cfg.Predictor.MixedConversion = true
	cfg.Predictor.MaxPredictionCandidates = 25
	cfg.Server.MaxLimit = 100

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !loaded.Predictor.MixedConversion {
		t.Errorf("expected MixedConversion=true to round-trip")
	}
	if loaded.Predictor.MaxPredictionCandidates != 25 {
		t.Errorf("expected MaxPredictionCandidates=25 to round-trip, got %d", loaded.Predictor.MaxPredictionCandidates)
	}
	if loaded.Server.MaxLimit != 100 {
		t.Errorf("expected Server.MaxLimit=100 to round-trip, got %d", loaded.Server.MaxLimit)
	}
}

func TestLoadConfigMissingFileFallsBackToPartialParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing.toml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected LoadConfig to recover rather than error, got %v", err)
	}
	if cfg.Predictor.MaxPredictionCandidates != 10 {
		t.Errorf("expected defaults when the file doesn't exist, got %+v", cfg.Predictor)
	}
}

func TestTryPartialParseRecoversKnownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[predictor]\nmixed_conversion = true\nmax_prediction_candidates = 42\n\n[server]\nmax_limit = 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := tryPartialParse(path)
	if err != nil {
		t.Fatalf("tryPartialParse failed: %v", err)
	}
	if !cfg.Predictor.MixedConversion {
		t.Errorf("expected mixed_conversion to be recovered")
	}
	if cfg.Predictor.MaxPredictionCandidates != 42 {
		t.Errorf("expected max_prediction_candidates=42 to be recovered, got %d", cfg.Predictor.MaxPredictionCandidates)
	}
	if cfg.Server.MaxLimit != 5 {
		t.Errorf("expected max_limit=5 to be recovered, got %d", cfg.Server.MaxLimit)
	}
	if !cfg.Predictor.UseRealtimeConversion {
		t.Errorf("expected fields absent from the file to keep their defaults")
	}
}

func TestTryPartialParseUnparseableFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(path, []byte("not valid toml [[[ ="), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := tryPartialParse(path)
	if err != nil {
		t.Fatalf("expected tryPartialParse to recover rather than error, got %v", err)
	}
	if cfg.Predictor.MaxPredictionCandidates != 10 {
		t.Errorf("expected all-default fallback for an unparseable file, got %+v", cfg.Predictor)
	}
}

func TestInitConfigCreatesDefaultFileWhenMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if cfg.Predictor.MaxPredictionCandidates != 10 {
		t.Errorf("expected default config to be returned, got %+v", cfg.Predictor)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected InitConfig to create the config file at %s: %v", path, err)
	}
}

func TestInitConfigLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	cfg := DefaultConfig()
	cfg.Predictor.MaxPredictionCandidates = 77
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := InitConfig(path)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}
	if loaded.Predictor.MaxPredictionCandidates != 77 {
		t.Errorf("expected InitConfig to load the existing file's value, got %d", loaded.Predictor.MaxPredictionCandidates)
	}
}

func TestGetActiveConfigPathReturnsAbsolutePathForCustomConfig(t *testing.T) {
	got := GetActiveConfigPath("relative/config.toml")
	if !filepath.IsAbs(got) {
		t.Errorf("expected an absolute path, got %s", got)
	}
}
