package service

const (
	SamplePoints = 1000 // points per continuous curve

	// GammaWindow is how many 1/rate units the gamma domain extends on each
	// side of the mode.
	GammaWindow = 10.0

	MaxTrials     = 100_000   // largest binomial n
	MaxSampleSize = 1_000_000 // largest observed sample

	DensityColor    = "#4169e1" // royalblue
	LikelihoodColor = "#0000ff"
	LineWidth       = 2.0
	MarkerSize      = 10.0

	labelPrecision = 6
)
