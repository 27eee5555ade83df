package texgrow

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// GrowthFrames collects one quantized frame per round, each upscaled to the
// final texture size so the animation does not change dimensions.
type GrowthFrames struct {
	final  int
	frames []*image.RGBA
}

// NewGrowthFrames prepares a recorder for a run with the given round count.
func NewGrowthFrames(rounds int) *GrowthFrames {
	return &GrowthFrames{final: 1 << rounds, frames: make([]*image.RGBA, 0, rounds)}
}

// Observe records the grid at the end of a round; pass it to SynthesizeObserved.
func (gf *GrowthFrames) Observe(_ int, g *Grid) {
	img := Quantize(g)
	if scale := gf.final / g.Size(); scale > 1 {
		img = Upscale(img, scale)
	}
	gf.frames = append(gf.frames, img)
}

// Len returns the number of recorded frames.
func (gf *GrowthFrames) Len() int { return len(gf.frames) }

// SaveGIF writes the recorded rounds as a looping animation.
// delay is in 100ths of a second; the last frame is held 4x longer.
func (gf *GrowthFrames) SaveGIF(path string, delay int) error {
	if len(gf.frames) == 0 {
		return fmt.Errorf("%w: no frames recorded", ErrImageWrite)
	}
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(gf.frames)),
		Delay:     make([]int, 0, len(gf.frames)),
		LoopCount: 0,
	}
	for i, rgba := range gf.frames {
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})
		out.Image = append(out.Image, pimg)
		d := delay
		if i == len(gf.frames)-1 {
			d *= 4
		}
		out.Delay = append(out.Delay, d)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageWrite, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode %s: %v", ErrImageWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrImageWrite, path, err)
	}
	Logger().Info("wrote growth animation", "path", path, "frames", len(gf.frames))
	return nil
}
