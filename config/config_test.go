package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	def := DefaultConfig()
	if cfg.Tracker != def.Tracker || cfg.MinDepth != def.MinDepth || cfg.MaxDepth != def.MaxDepth {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadInvalidJSONReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected a JSON error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.FramesDir = "/data/run42"
	cfg.Tracker = "KCF"
	cfg.MinDepth = 2.5
	cfg.LastFrameIndex = 17
	cfg.SelectionX, cfg.SelectionY = 10, 20
	cfg.SelectionW, cfg.SelectionH = 100, 80
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.FramesDir != "/data/run42" || got.Tracker != "KCF" || got.MinDepth != 2.5 {
		t.Fatalf("round trip lost values: %+v", got)
	}
	if got.LastFrameIndex != 17 || got.SelectionW != 100 || got.SelectionH != 80 {
		t.Fatalf("session fields lost: %+v", got)
	}
}

func TestValidateClamps(t *testing.T) {
	cfg := &Config{
		MinDepth:        -4,
		MaxDepth:        0.1,
		Tracker:         "bogus",
		ZoomStep:        9,
		HandleHitRadius: -1,
		SelectionW:      -5,
		LastFrameIndex:  -3,
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.MinDepth != 1.0 || cfg.MaxDepth <= cfg.MinDepth {
		t.Fatalf("depth band not normalized: %+v", cfg)
	}
	if cfg.Tracker != "CSRT" {
		t.Fatalf("unknown tracker must fall back to CSRT, got %q", cfg.Tracker)
	}
	if cfg.ZoomStep != 1.2 || cfg.HandleHitRadius != 10 {
		t.Fatalf("view settings not normalized: %+v", cfg)
	}
	if cfg.SelectionW != 0 || cfg.LastFrameIndex != 0 {
		t.Fatalf("session fields not normalized: %+v", cfg)
	}
}
