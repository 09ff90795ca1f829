package boxplot

import "github.com/uyouii/ascii-boxplot/model"

const (
	// TickCount is the number of labels on the axis line.
	TickCount = 10
	// TickDigits is the number of significant digits of a tick label.
	TickDigits = 2

	markBar      = '|'
	markDash     = '-'
	markTopRule  = '¯'
	markBaseRule = '_'
	markMean     = 'μ'
	markOverflow = '+'
)

var (
	// GroupRows bounds the height of a group block; the largest group gets
	// the most rows.
	GroupRows = model.Interval{Lower: 5, Upper: 9}
)

func getGroupRows() model.Interval {
	return GroupRows
}
