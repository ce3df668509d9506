package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestScanPresets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "swarm.yaml"), "world:\n  mobCount: 60\n")
	writeFile(t, filepath.Join(dir, "arena.json"), `{"world": {"size": 1000}}`)
	writeFile(t, filepath.Join(dir, "LOUD.YAML"), "seed: 1\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")
	writeFile(t, filepath.Join(dir, ".hidden.yaml"), "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.yaml"), 0o755))

	presets, err := ScanPresets(dir)
	require.NoError(t, err)
	require.Len(t, presets, 2)
	assert.Equal(t, "arena", presets[0].Name)
	assert.Equal(t, filepath.Join(dir, "arena.json"), presets[0].Path)
	assert.Equal(t, "swarm", presets[1].Name)
}

func TestScanPresets_MissingDir(t *testing.T) {
	_, err := ScanPresets(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFindPresetLoadsThroughViper(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "swarm.yaml"), "world:\n  mobCount: 60\n  bossCount: 2\n")

	path, err := FindPreset(dir, "SWARM")
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.World.MobCount)
	assert.Equal(t, 2, cfg.World.BossCount)
	assert.Equal(t, DefaultConfig().World.Size, cfg.World.Size)
}

func TestFindPreset_Unknown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "swarm.yaml"), "seed: 1\n")

	_, err := FindPreset(dir, "calm")
	require.ErrorIs(t, err, ErrNoPreset)
	assert.Contains(t, err.Error(), "swarm")
}
