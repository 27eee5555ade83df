package texgrow

var (
	Debug = false // set to true for debug logging and per-round stats dumps
	Plot  = false // set to true to always write the per-round stats plot
	GIF   = false // set to true to always write the per-round growth animation
	// Preview > 1 overrides the config previewScale
	Preview = 0
)
