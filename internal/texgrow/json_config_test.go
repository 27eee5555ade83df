package texgrow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `{"rounds": 3, "seed": 42}`), false)
	require.NoError(t, err)
	want := DefaultConfig()
	want.Rounds = 3
	want.Seed = 42
	assert.Equal(t, want, *cfg)
}

func TestLoadConfigHonorsExplicitZero(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `{"exchangeRate": 0, "seed": 0, "rounds": 2}`), false)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.ExchangeRate)
	assert.Equal(t, uint64(0), cfg.Seed)
}

func TestLoadConfigEmptyOutDirFallsBack(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `{"outDir": "", "previewScale": -3}`), false)
	require.NoError(t, err)
	assert.Equal(t, OutDir, cfg.OutDir)
	assert.Equal(t, PreviewScale, cfg.PreviewScale)
}

func TestLoadConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	_, err := loadConfig(path, false)
	assert.ErrorIs(t, err, ErrConfig)

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadConfigBadJSON(t *testing.T) {
	_, err := loadConfig(writeConfig(t, `{"rounds": "three"}`), false)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadConfigInvalidParams(t *testing.T) {
	_, err := loadConfig(writeConfig(t, `{"initialNoise": 4, "finalNoise": 8}`), false)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestConfigParams(t *testing.T) {
	p := DefaultConfig().Params()
	assert.Equal(t, Params{
		InitialNoise: 255, FinalNoise: 4, Rounds: 10, Outerp: 0.1, ExchangeRate: 1000, Seed: 0,
	}, p)
}
