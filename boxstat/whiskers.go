package boxstat

import (
	"fmt"
	"math"
	"strings"

	"github.com/uyouii/ascii-boxplot/common"
	"github.com/uyouii/ascii-boxplot/model"
)

// WhiskerPolicy decides where the whiskers of a group end. Any side it
// cannot determine is NaN and is not drawn.
type WhiskerPolicy func(qs model.QuantileSet, values []float64) model.Interval

// TukeyWhiskers reach the most extreme values within 1.5 IQR of the box.
var TukeyWhiskers WhiskerPolicy = Tukey(TukeyCoefficient)

// Tukey returns a policy whose whiskers reach the most extreme values
// within k times the interquartile distance of the box edges.
func Tukey(k float64) WhiskerPolicy {
	return func(qs model.QuantileSet, values []float64) model.Interval {
		iqr := IQR(qs)
		dist := iqr.Width() * k
		lowerFence, upperFence := iqr.Lower-dist, iqr.Upper+dist

		res := model.Interval{Lower: math.NaN(), Upper: math.NaN()}
		for _, v := range values {
			if v >= lowerFence && (math.IsNaN(res.Lower) || v < res.Lower) {
				res.Lower = v
			}
			if v <= upperFence && (math.IsNaN(res.Upper) || v > res.Upper) {
				res.Upper = v
			}
		}
		return res
	}
}

// RangeWhiskers span the whole data range; there are never outliers.
func RangeWhiskers(qs model.QuantileSet, _ []float64) model.Interval {
	return Range(qs)
}

// PercentileWhiskers end at two entries of the quantile set, given by
// their index into Probabilities.
func PercentileWhiskers(lo, hi int) WhiskerPolicy {
	return func(qs model.QuantileSet, _ []float64) model.Interval {
		return model.Interval{Lower: qs[lo], Upper: qs[hi]}
	}
}

var (
	// Percentile9 whiskers end at the 9th and 91st percentile.
	Percentile9 = PercentileWhiskers(idxP9, idxP91)
	// Percentile2 whiskers end at the 2nd and 98th percentile.
	Percentile2 = PercentileWhiskers(idxP2, idxP98)
)

// PolicyByName resolves "tukey", "range", "p9" and "p2".
func PolicyByName(name string) (WhiskerPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "tukey":
		return TukeyWhiskers, nil
	case "range", "minmax":
		return RangeWhiskers, nil
	case "p9":
		return Percentile9, nil
	case "p2":
		return Percentile2, nil
	}
	return nil, fmt.Errorf("unknown whisker policy %q: %w", name, common.ErrorInvalidOption)
}

// Outliers returns the values strictly below the lower whisker followed by
// the values strictly above the upper whisker, each in input order.
func Outliers(w model.Interval, values []float64) []float64 {
	below, above := []float64{}, []float64{}
	for _, v := range values {
		if v < w.Lower {
			below = append(below, v)
		}
	}
	for _, v := range values {
		if v > w.Upper {
			above = append(above, v)
		}
	}
	return append(below, above...)
}
