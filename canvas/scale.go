package canvas

import (
	"github.com/uyouii/ascii-boxplot/model"
	"github.com/uyouii/ascii-boxplot/utils"
)

// Scale maps a domain value onto an integral target value. The result
// stays a float64 so a degenerate mapping can surface as NaN or Inf.
type Scale func(v float64) float64

// NewScale returns the linear mapping of domain onto target, rounded half
// up. A zero width domain is not rejected: it maps everything to NaN or
// Inf and callers drop those coordinates.
func NewScale(domain, target model.Interval) Scale {
	factor := target.Width() / domain.Width()
	return func(v float64) float64 {
		return utils.RoundHalfUp((v-domain.Lower)*factor + target.Lower)
	}
}

// Interval applies s to both sides of i.
func (s Scale) Interval(i model.Interval) model.Interval {
	return i.Map(s)
}

// Values applies s to every element of vs.
func (s Scale) Values(vs []float64) []float64 {
	res := make([]float64, len(vs))
	for i, v := range vs {
		res[i] = s(v)
	}
	return res
}
