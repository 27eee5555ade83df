package texgrow

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Filename encodes every parameter of the run, so equal runs share a name.
func Filename(p Params) string {
	return fmt.Sprintf("img-%v-%v-%v-%v-%v-%v.png",
		p.InitialNoise, p.FinalNoise, p.Rounds, p.Outerp, p.ExchangeRate, p.Seed)
}

// siblingName derives a companion file name, e.g. "a.png" + "rounds" -> "a-rounds.png".
func siblingName(path, suffix string) string {
	return strings.TrimSuffix(path, ".png") + "-" + suffix + ".png"
}

// SavePNG writes img as a lossless PNG. Errors wrap ErrImageWrite.
func SavePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageWrite, err)
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode %s: %v", ErrImageWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrImageWrite, path, err)
	}
	Logger().Info("wrote image", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// Upscale enlarges img by an integer factor with nearest-neighbour sampling,
// so every texture pixel stays a sharp square.
func Upscale(img image.Image, scale int) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SavePreview writes an upscaled copy of img. Scales below 2 are rejected.
func SavePreview(img image.Image, path string, scale int) error {
	if scale < 2 {
		return fmt.Errorf("%w: preview scale must be >= 2, got %d", ErrInvalidParams, scale)
	}
	return SavePNG(Upscale(img, scale), path)
}
