package model

import (
	"fmt"
	"math"
)

// QuantileSet holds the breakpoints at the fixed probabilities
// 0, 0.02, 0.09, 0.25, 0.5, 0.75, 0.91, 0.98 and 1.
type QuantileSet [9]float64

// Interval is a closed numeric interval. Either side may be NaN when it
// could not be determined, e.g. a whisker with no qualifying value.
type Interval struct {
	Lower float64 `json:"l"`
	Upper float64 `json:"u"`
}

func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

// Valid reports whether both sides are finite numbers.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Lower) && !math.IsNaN(i.Upper) &&
		!math.IsInf(i.Lower, 0) && !math.IsInf(i.Upper, 0)
}

func (i Interval) Map(fn func(float64) float64) Interval {
	return Interval{Lower: fn(i.Lower), Upper: fn(i.Upper)}
}

func (i Interval) String() string {
	return fmt.Sprintf("[%v, %v]", i.Lower, i.Upper)
}

// Summary is the statistic bundle of one group.
type Summary struct {
	Quantiles QuantileSet `json:"quantiles"`
	Range     Interval    `json:"range"`
	IQR       Interval    `json:"iqr"`
	Median    float64     `json:"median"`
	Whiskers  Interval    `json:"whiskers"`
	Outliers  []float64   `json:"outliers,omitempty"`
	Mean      float64     `json:"mean"`
	Count     int         `json:"count"`
}

func (s *Summary) DebugString() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("count: %v, range: %v, iqr: %v, median: %v, whiskers: %v, outliers: %v, mean: %v",
		s.Count, s.Range, s.IQR, s.Median, s.Whiskers, len(s.Outliers), s.Mean)
}
