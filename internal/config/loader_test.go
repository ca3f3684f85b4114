package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the user and local search paths at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadSinkhole("")
	if err != nil {
		t.Fatalf("LoadSinkhole() error = %v", err)
	}
	if cfg != DefaultSinkholeConfig() {
		t.Errorf("embedded YAML differs from DefaultSinkholeConfig():\n%+v\n%+v", cfg, DefaultSinkholeConfig())
	}
}

func TestDefaultsDerivedValues(t *testing.T) {
	w := DefaultSinkholeConfig().World
	if w.WallWidth() != 320 {
		t.Errorf("WallWidth() = %v, expected 320", w.WallWidth())
	}
	if w.PlayableSpace() != 960 {
		t.Errorf("PlayableSpace() = %v, expected 960", w.PlayableSpace())
	}
}

func TestLoadSinkholeCustomPartial(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  health: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSinkhole(path)
	if err != nil {
		t.Fatalf("LoadSinkhole() error = %v", err)
	}
	if cfg.Player.Health != 7 {
		t.Errorf("Player.Health = %d, expected 7", cfg.Player.Health)
	}
	if cfg.Player.JumpSpeed != 500 {
		t.Errorf("Player.JumpSpeed = %v, expected default 500", cfg.Player.JumpSpeed)
	}
}

func TestLoadSinkholeCustomErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := LoadSinkhole(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("platforms:\n  min_platform: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadSinkhole(bad)
	if err == nil || !strings.Contains(err.Error(), "playable space") {
		t.Errorf("LoadSinkhole() error = %v, expected playable space validation error", err)
	}
}

func TestLoadSinkholeSearchOrder(t *testing.T) {
	home := isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", sinkholeFile), []byte("player:\n  damage: 11\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSinkhole("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.Damage != 11 {
		t.Errorf("local config not used: Damage = %d", cfg.Player.Damage)
	}

	userDir := filepath.Join(home, ".sinkhole", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, sinkholeFile), []byte("player:\n  damage: 22\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadSinkhole("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.Damage != 22 {
		t.Errorf("user config should win over local: Damage = %d", cfg.Player.Damage)
	}
}

func TestApplySinkholePreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		bias    int
	}{
		{DifficultyEasy, true, -1},
		{DifficultyNormal, true, 0},
		{DifficultyHard, true, 2},
		{DifficultyFixed, false, 0},
		{"", true, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultSinkholeConfig()
			ApplySinkholePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.Bias != tc.bias {
				t.Errorf("Difficulty = %+v, expected enabled=%v bias=%d", cfg.Difficulty, tc.enabled, tc.bias)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error(`ParsePreset("hard") should be DifficultyHard`)
	}
	if ParsePreset("brutal") != "" {
		t.Error("unknown presets should parse to empty")
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		upgrades int
		expected int
	}{
		{"enabled", DifficultyConfig{Enabled: true}, 4, 4},
		{"biased", DifficultyConfig{Enabled: true, Bias: 3}, 4, 7},
		{"fixed", DifficultyConfig{Enabled: false, Bias: 2}, 9, 2},
		{"easy trails by one", DifficultyConfig{Enabled: true, Bias: -1}, 3, 2},
		{"negative bias clamps", DifficultyConfig{Enabled: true, Bias: -5}, 1, 0},
		{"fixed negative bias", DifficultyConfig{Enabled: false, Bias: -1}, 6, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if got := d.Level(tc.upgrades); got != tc.expected {
				t.Errorf("Level(%d) = %d, expected %d", tc.upgrades, got, tc.expected)
			}
		})
	}
}

func TestLoadUpgradesEmbedded(t *testing.T) {
	isolate(t)

	table, err := LoadUpgrades("")
	if err != nil {
		t.Fatalf("LoadUpgrades() error = %v", err)
	}
	if len(table) != 11 {
		t.Fatalf("len(table) = %d, expected 11", len(table))
	}
	if table[4].Name != "Double Jump" {
		t.Errorf("table[4].Name = %q, expected Double Jump", table[4].Name)
	}
}

func TestLoadUpgradesCSV(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "upgrades.csv")
	data := "Health,More health\nDamage,\"Hit harder, faster\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	table, err := LoadUpgrades(path)
	if err != nil {
		t.Fatalf("LoadUpgrades() error = %v", err)
	}
	if len(table) != 2 || table[1].Description != "Hit harder, faster" {
		t.Errorf("table = %+v", table)
	}
	if got := table.Lookup(9).Name; got != "Upgrade 9" {
		t.Errorf("Lookup(9).Name = %q, expected placeholder", got)
	}
}

func TestParseUpgradesCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"wrong field count", "a,b,c\n"},
		{"blank name", " ,desc\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseUpgradesCSV(strings.NewReader(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestPresetsOrderAroundDefault(t *testing.T) {
	level := func(preset DifficultyPreset) int {
		cfg := DefaultSinkholeConfig()
		ApplySinkholePreset(&cfg, preset)
		return NewDifficultyManager(cfg.Difficulty).Level(3)
	}

	base := level("")
	if got := level(DifficultyNormal); got != base {
		t.Errorf("normal level = %d, expected the default %d", got, base)
	}
	if got := level(DifficultyEasy); got >= base {
		t.Errorf("easy level = %d, expected below the default %d", got, base)
	}
	if got := level(DifficultyHard); got <= base {
		t.Errorf("hard level = %d, expected above the default %d", got, base)
	}
}
