package texgrow

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2
)

// Color is one cell of the float grid; channels live in [0,255].
type Color [3]float64

// clampChannel clamps a single channel value to [0,255].
func clampChannel(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > MaxChannel {
		return MaxChannel
	}
	return x
}

// Clamp returns c with every channel clamped to [0,255].
func (c Color) Clamp() Color {
	return Color{clampChannel(c[ChR]), clampChannel(c[ChG]), clampChannel(c[ChB])}
}

// dist2 is the squared Euclidean distance between two colors.
func dist2(a, b Color) float64 {
	dr := a[ChR] - b[ChR]
	dg := a[ChG] - b[ChG]
	db := a[ChB] - b[ChB]
	return dr*dr + dg*dg + db*db
}
