package texgrow

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// newRoundsPanel builds one line+points panel over the round index.
func newRoundsPanel(title, ylabel string, pts plotter.XYs, c color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "round"
	p.Y.Label.Text = ylabel
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(1)
	points.Color = c
	p.Add(line, points, plotter.NewGrid())
	return p, nil
}

// SaveRoundsPlot charts mean cell energy and swap acceptance ratio per round
// as two stacked panels in one PNG.
func SaveRoundsPlot(stats []RoundStats, path string) error {
	if len(stats) == 0 {
		return fmt.Errorf("%w: no rounds to plot", ErrImageWrite)
	}

	energyPts := make(plotter.XYs, 0, len(stats))
	acceptPts := make(plotter.XYs, 0, len(stats))
	for _, s := range stats {
		energyPts = append(energyPts, plotter.XY{X: float64(s.Round), Y: s.EnergyMean})
		acceptPts = append(acceptPts, plotter.XY{X: float64(s.Round), Y: s.AcceptRatio()})
	}

	pEnergy, err := newRoundsPanel("Mean cell energy", "energy", energyPts, color.RGBA{R: 200, A: 255})
	if err != nil {
		return fmt.Errorf("%w: energy panel: %v", ErrImageWrite, err)
	}
	pAccept, err := newRoundsPanel("Swap acceptance", "accepted / trials", acceptPts, color.RGBA{B: 200, A: 255})
	if err != nil {
		return fmt.Errorf("%w: acceptance panel: %v", ErrImageWrite, err)
	}

	const w, h = 8 * vg.Inch, 3 * vg.Inch
	img := vgimg.New(w, 2*h)
	dc := draw.New(img)
	plots := [][]*plot.Plot{{pEnergy}, {pAccept}}
	canvases := plot.Align(plots, draw.Tiles{Rows: 2, Cols: 1}, dc)
	for j := range plots {
		plots[j][0].Draw(canvases[j][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrImageWrite, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: encode %s: %v", ErrImageWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", ErrImageWrite, path, err)
	}
	Logger().Info("wrote rounds plot", "path", path, "rounds", len(stats))
	return nil
}
