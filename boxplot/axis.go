package boxplot

import (
	"math"

	"github.com/uyouii/ascii-boxplot/canvas"
	"github.com/uyouii/ascii-boxplot/model"
	"github.com/uyouii/ascii-boxplot/utils"
)

// Axis renders the shared value axis over domain: a full row of dashes
// with TickCount evenly spaced "|value" labels.
func Axis(domain model.Interval) string {
	c := canvas.New(1)
	c.Fill(0, 0, canvas.Width, markDash)

	tickWidth := float64(canvas.Width) / TickCount
	valWidth := domain.Width() / TickCount
	for i := 0; i < TickCount; i++ {
		col := int(math.Floor(float64(i) * tickWidth))
		c.Text(0, col, tickLabel(domain.Lower+float64(i)*valWidth))
	}
	return c.Line(0)
}

func tickLabel(v float64) string {
	return string(markBar) + utils.FormatNumber(utils.RoundSigFig(v, TickDigits))
}
