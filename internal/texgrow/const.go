package texgrow

const (
	MaxChannel = 255.0
	SeedGray   = 128.0
	MaxRounds  = 14 // 16384x16384 output, ~6 GiB of float channels

	// defaults, used for config keys that are absent
	InitialNoise = 255.0
	FinalNoise   = 4.0
	Rounds       = 10
	Outerp       = 0.1
	ExchangeRate = 1000
	Seed         = 0
	OutDir       = "."
	PreviewScale = 1
	GIFDelay     = 50 // 100ths of a second per frame

	DefaultConfigPath = "configs/config.json"
)
