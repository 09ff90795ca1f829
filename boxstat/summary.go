package boxstat

import (
	"github.com/uyouii/ascii-boxplot/model"
)

// Summarize computes the statistic bundle of one group. A nil policy
// means TukeyWhiskers.
func Summarize(values []float64, policy WhiskerPolicy) (*model.Summary, error) {
	if policy == nil {
		policy = TukeyWhiskers
	}

	qs, err := QuantileSetOf(values)
	if err != nil {
		return nil, err
	}
	mean, err := Mean(values)
	if err != nil {
		return nil, err
	}

	whiskers := policy(qs, values)
	return &model.Summary{
		Quantiles: qs,
		Range:     Range(qs),
		IQR:       IQR(qs),
		Median:    Median(qs),
		Whiskers:  whiskers,
		Outliers:  Outliers(whiskers, values),
		Mean:      mean,
		Count:     len(values),
	}, nil
}
