package boxstat

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/ascii-boxplot/common"
	"github.com/uyouii/ascii-boxplot/model"
	"gonum.org/v1/gonum/stat"
)

// Quantiles returns, for every p in probs, the value at rank p*(n-1) of
// the sorted values, linearly interpolated between neighbours.
// values is not modified.
func Quantiles(values []float64, probs []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("quantiles of empty sequence: %w", common.ErrorInvalidInput)
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	res := make([]float64, len(probs))
	for i, p := range probs {
		if p < 0 || p > 1 || math.IsNaN(p) {
			return nil, fmt.Errorf("probability %v out of [0, 1]: %w", p, common.ErrorInvalidInput)
		}
		res[i] = quantileSorted(sorted, p)
	}
	return res, nil
}

func quantileSorted(sorted []float64, p float64) float64 {
	rank := p * float64(len(sorted)-1)
	lo, hi := math.Floor(rank), math.Ceil(rank)
	lower, upper := sorted[int(lo)], sorted[int(hi)]
	if lo == hi {
		return lower
	}
	return lower + (rank-lo)*(upper-lower)
}

// QuantileSetOf computes the fixed nine point quantile set of values.
func QuantileSetOf(values []float64) (model.QuantileSet, error) {
	var qs model.QuantileSet
	res, err := Quantiles(values, Probabilities)
	if err != nil {
		return qs, err
	}
	copy(qs[:], res)
	return qs, nil
}

func Range(qs model.QuantileSet) model.Interval {
	return model.Interval{Lower: qs[idxMin], Upper: qs[idxMax]}
}

func Median(qs model.QuantileSet) float64 {
	return qs[idxMedian]
}

func IQR(qs model.QuantileSet) model.Interval {
	return model.Interval{Lower: qs[idxQ25], Upper: qs[idxQ75]}
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return math.NaN(), fmt.Errorf("mean of empty sequence: %w", common.ErrorInvalidInput)
	}
	return stat.Mean(values, nil), nil
}
