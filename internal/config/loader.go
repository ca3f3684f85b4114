package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	sinkholeFile = "sinkhole.yaml"
	upgradesFile = "upgrades.yaml"
)

// LoadSinkhole loads the simulation configuration.
// Search order: customPath -> ~/.sinkhole/configs/sinkhole.yaml ->
// ./configs/sinkhole.yaml -> embedded default. Files may be partial; missing
// keys keep their default values.
func LoadSinkhole(customPath string) (SinkholeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SinkholeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSinkhole(data)
		if err != nil {
			return SinkholeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(sinkholeFile) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseSinkhole(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSinkhole(defaultSinkholeYAML)
	if err != nil {
		return DefaultSinkholeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseSinkhole(data []byte) (SinkholeConfig, error) {
	cfg := DefaultSinkholeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SinkholeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SinkholeConfig{}, err
	}
	return cfg, nil
}

// ApplySinkholePreset modifies the config based on a difficulty preset.
func ApplySinkholePreset(cfg *SinkholeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.Bias = BiasForPreset(preset)
}

// UpgradeInfo is the display text of one upgrade.
type UpgradeInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// UpgradeTable lists upgrade texts by upgrade index.
type UpgradeTable []UpgradeInfo

// Lookup returns the entry at index i, or a placeholder when the table is short.
func (t UpgradeTable) Lookup(i int) UpgradeInfo {
	if i < 0 || i >= len(t) {
		return UpgradeInfo{Name: fmt.Sprintf("Upgrade %d", i)}
	}
	return t[i]
}

// LoadUpgrades loads the upgrade text table. Files ending in .csv are read
// as name,description rows; anything else is read as a YAML list.
// Search order matches LoadSinkhole.
func LoadUpgrades(customPath string) (UpgradeTable, error) {
	if customPath != "" {
		table, err := readUpgradeFile(customPath)
		if err != nil {
			return nil, err
		}
		return table, nil
	}

	for _, path := range searchPaths(upgradesFile) {
		if table, err := readUpgradeFile(path); err == nil {
			return table, nil
		}
	}

	var table UpgradeTable
	if err := yaml.Unmarshal(defaultUpgradesYAML, &table); err != nil {
		return nil, fmt.Errorf("failed to parse embedded upgrades: %w", err)
	}
	return table, nil
}

func readUpgradeFile(path string) (UpgradeTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrades %s: %w", path, err)
	}
	defer f.Close()

	var table UpgradeTable
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		table, err = ParseUpgradesCSV(f)
	} else {
		err = yaml.NewDecoder(f).Decode(&table)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse upgrades %s: %w", path, err)
	}
	return table, nil
}

// ParseUpgradesCSV reads name,description rows. Blank names are rejected.
func ParseUpgradesCSV(r io.Reader) (UpgradeTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true

	var table UpgradeTable
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(record[0]) == "" {
			return nil, fmt.Errorf("upgrade %d has an empty name", len(table))
		}
		table = append(table, UpgradeInfo{Name: record[0], Description: record[1]})
	}
	if len(table) == 0 {
		return nil, errors.New("no upgrades found")
	}
	return table, nil
}

// searchPaths returns the user and local config locations for a file.
func searchPaths(filename string) []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".sinkhole", "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}
