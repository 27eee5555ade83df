package texgrow

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

type Config struct {
	InitialNoise float64 `json:"initialNoise"`
	FinalNoise   float64 `json:"finalNoise"`
	Rounds       int     `json:"rounds"`
	Outerp       float64 `json:"outerp"`
	ExchangeRate int     `json:"exchangeRate"`
	Seed         uint64  `json:"seed"`
	OutDir       string  `json:"outDir,omitempty"`
	// Plot writes a per-round energy/acceptance chart next to the texture.
	Plot bool `json:"plot,omitempty"`
	// GIF writes an animation with one frame per round.
	GIF bool `json:"gif,omitempty"`
	// PreviewScale > 1 also writes a nearest-neighbour upscaled copy.
	PreviewScale int `json:"previewScale,omitempty"`
}

// DefaultConfig returns the values used for keys missing from the file.
func DefaultConfig() Config {
	return Config{
		InitialNoise: InitialNoise,
		FinalNoise:   FinalNoise,
		Rounds:       Rounds,
		Outerp:       Outerp,
		ExchangeRate: ExchangeRate,
		Seed:         Seed,
		OutDir:       OutDir,
		PreviewScale: PreviewScale,
	}
}

// Params extracts the synthesis parameters.
func (c Config) Params() Params {
	return Params{
		InitialNoise: c.InitialNoise,
		FinalNoise:   c.FinalNoise,
		Rounds:       c.Rounds,
		Outerp:       c.Outerp,
		ExchangeRate: c.ExchangeRate,
		Seed:         c.Seed,
	}
}

// loadConfig overlays the JSON file at path onto DefaultConfig, so keys that
// are present keep their value even when it is zero. When allowMissing is set
// a nonexistent file yields the defaults.
func loadConfig(path string, allowMissing bool) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case err != nil && allowMissing && errors.Is(err, fs.ErrNotExist):
		Logger().Debug("config file not found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
		}
	}
	if cfg.OutDir == "" {
		cfg.OutDir = OutDir
	}
	if cfg.PreviewScale <= 0 {
		cfg.PreviewScale = PreviewScale
	}
	if err := cfg.Params().Validate(); err != nil {
		return nil, err
	}
	Logger().Debug("loaded config", "path", path,
		"initialNoise", cfg.InitialNoise, "finalNoise", cfg.FinalNoise,
		"rounds", cfg.Rounds, "outerp", cfg.Outerp,
		"exchangeRate", cfg.ExchangeRate, "seed", cfg.Seed,
		"outDir", cfg.OutDir, "plot", cfg.Plot, "gif", cfg.GIF, "previewScale", cfg.PreviewScale)
	return &cfg, nil
}
