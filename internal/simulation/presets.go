package simulation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoPreset is returned when a named preset is not in the presets directory
var ErrNoPreset = errors.New("no such preset")

// Preset is a named config file in the presets directory
type Preset struct {
	Name string // file name without extension
	Path string
}

var presetExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
	".toml": true,
}

// ScanPresets lists the config files viper can read in dir, sorted by name.
// Hidden files and subdirectories are skipped.
func ScanPresets(dir string) ([]Preset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets directory: %w", err)
	}

	var presets []Preset
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		// viper matches extensions case-sensitively
		if !presetExtensions[filepath.Ext(name)] {
			continue
		}
		presets = append(presets, Preset{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// FindPreset resolves a preset name inside dir to its config path
func FindPreset(dir, name string) (string, error) {
	presets, err := ScanPresets(dir)
	if err != nil {
		return "", err
	}
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p.Path, nil
		}
	}
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return "", fmt.Errorf("%w %q (available: %s)", ErrNoPreset, name, strings.Join(names, ", "))
}
