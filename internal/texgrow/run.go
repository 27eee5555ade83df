package texgrow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Run loads the config at cfgPath, synthesizes the texture and writes it (plus
// the optional preview and rounds plot) into the configured output directory.
// The default config path may be absent, any other path must exist.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath, cfgPath == DefaultConfigPath)
	if err != nil {
		return err
	}
	if Preview > 1 {
		cfg.PreviewScale = Preview
	}
	p := cfg.Params()
	name := Filename(p)
	fmt.Println(name)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("%w: create output dir: %v", ErrImageWrite, err)
	}
	out := filepath.Join(cfg.OutDir, name)

	start := time.Now()
	var frames *GrowthFrames
	var observe RoundObserver
	if cfg.GIF || GIF {
		frames = NewGrowthFrames(p.Rounds)
		observe = frames.Observe
	}
	g, stats := SynthesizeObserved(p, observe)
	Logger().Info("synthesized", "size", g.Size(), "rounds", len(stats), "elapsed", time.Since(start))

	if Debug {
		roundsStats(stats)
	}

	img := Quantize(g)
	if err := SavePNG(img, out); err != nil {
		return err
	}
	if cfg.PreviewScale > 1 {
		if err := SavePreview(img, siblingName(out, fmt.Sprintf("x%d", cfg.PreviewScale)), cfg.PreviewScale); err != nil {
			return err
		}
	}
	if cfg.Plot || Plot {
		if err := SaveRoundsPlot(stats, siblingName(out, "rounds")); err != nil {
			return err
		}
	}
	if frames != nil {
		if err := frames.SaveGIF(strings.TrimSuffix(out, ".png")+"-growth.gif", GIFDelay); err != nil {
			return err
		}
	}
	return nil
}

// roundsStats prints one line per round.
func roundsStats(stats []RoundStats) {
	for _, s := range stats {
		fmt.Printf("[ROUND] %2d size=%5d noise=%8.3f ex/px=%6d accepted=%d/%d (%.2f%%) energy mean=%.4f sd=%.4f\n",
			s.Round, s.Size, s.Noise, s.ExchangesPerPixel, s.Accepted, s.Trials,
			100*s.AcceptRatio(), s.EnergyMean, s.EnergyStdDev)
	}
}
