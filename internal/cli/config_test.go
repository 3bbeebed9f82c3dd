package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := loadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config != defaultConfig() {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestLoadConfig_PartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panelist.toml")
	content := "right_to_left = true\nsearch_zone = 0.3\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !config.RightToLeft {
		t.Error("right_to_left not applied")
	}
	if config.SearchZone != 0.3 {
		t.Errorf("search_zone not applied: %v", config.SearchZone)
	}
	// Unset keys keep their defaults.
	if config.Padding != 5 {
		t.Errorf("padding should keep default 5, got %d", config.Padding)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestReadRegions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.json")
	if err := os.WriteFile(path, []byte(`[[0,0,100,100],[110,0,100,100]]`), 0644); err != nil {
		t.Fatal(err)
	}

	regions, err := readRegions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[1].X != 110 || regions[1].Width != 100 {
		t.Errorf("unexpected region %+v", regions[1])
	}
}

func TestReadRegions_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.json")
	if err := os.WriteFile(path, []byte(`{"not": "a list"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := readRegions(path); err == nil {
		t.Error("expected error for malformed input")
	}
}
