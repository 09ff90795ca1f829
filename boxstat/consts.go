package boxstat

const (
	// TukeyCoefficient scales the interquartile distance into the whisker reach.
	TukeyCoefficient = 1.5

	// indices into a QuantileSet
	idxMin    = 0
	idxP2     = 1
	idxP9     = 2
	idxQ25    = 3
	idxMedian = 4
	idxQ75    = 5
	idxP91    = 6
	idxP98    = 7
	idxMax    = 8
)

var (
	// Probabilities are the breakpoints of every QuantileSet.
	Probabilities = []float64{0, 0.02, 0.09, 0.25, 0.5, 0.75, 0.91, 0.98, 1}
)
