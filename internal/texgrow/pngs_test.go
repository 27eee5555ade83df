package texgrow

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilename(t *testing.T) {
	assert.Equal(t, "img-255-4-3-0.1-10-42.png", Filename(scenarioParams()))
	assert.Equal(t, "img-12.5-0.25-1-1-0-18446744073709551615.png", Filename(Params{
		InitialNoise: 12.5, FinalNoise: 0.25, Rounds: 1, Outerp: 1, ExchangeRate: 0, Seed: ^uint64(0),
	}))
}

func TestSiblingName(t *testing.T) {
	assert.Equal(t, "out/a-rounds.png", siblingName("out/a.png", "rounds"))
	assert.Equal(t, "a-x4.png", siblingName("a.png", "x4"))
}

func TestSavePNGRoundTrip(t *testing.T) {
	g, _ := Synthesize(scenarioParams())
	img := Quantize(g)
	path := filepath.Join(t.TempDir(), Filename(scenarioParams()))
	require.NoError(t, SavePNG(img, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	dec, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, img.Bounds(), dec.Bounds())
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r1, g1, b1, _ := img.At(x, y).RGBA()
			r2, g2, b2, _ := dec.At(x, y).RGBA()
			assert.Equal(t, [3]uint32{r1, g1, b1}, [3]uint32{r2, g2, b2})
		}
	}
}

func TestSavePNGUnwritable(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	err := SavePNG(img, filepath.Join(t.TempDir(), "missing", "dir", "x.png"))
	assert.ErrorIs(t, err, ErrImageWrite)
}

func TestUpscaleNearestNeighbour(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.SetRGBA(0, 0, color.RGBA{255, 0, 0, 255})
	src.SetRGBA(1, 1, color.RGBA{0, 0, 255, 255})
	up := Upscale(src, 3)
	require.Equal(t, image.Rect(0, 0, 6, 6), up.Bounds())
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, src.RGBAAt(x/3, y/3), up.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestSavePreview(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dir := t.TempDir()
	assert.ErrorIs(t, SavePreview(src, filepath.Join(dir, "p.png"), 1), ErrInvalidParams)

	path := filepath.Join(dir, "p-x2.png")
	require.NoError(t, SavePreview(src, path, 2))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Width)
	assert.Equal(t, 8, cfg.Height)
}
