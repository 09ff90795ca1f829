package boxplot

import (
	"github.com/uyouii/ascii-boxplot/canvas"
	"github.com/uyouii/ascii-boxplot/model"
)

// Layer draws one visual element onto a canvas and hands it on. Layers
// take coordinates that are already scaled to canvas columns.
type Layer func(c *canvas.Canvas) *canvas.Canvas

// Compose applies layers in order; later layers overwrite earlier marks.
func Compose(c *canvas.Canvas, layers ...Layer) *canvas.Canvas {
	for _, layer := range layers {
		c = layer(c)
	}
	return c
}

// Whiskers marks both whisker ends on the middle row and joins each of them
// to the adjacent box edge with dashes. A missing whisker draws nothing on
// its side.
func Whiskers(w, iqr model.Interval) Layer {
	return func(c *canvas.Canvas) *canvas.Canvas {
		row := c.MidRow()
		c.PutAt(row, w.Lower, markBar)
		c.PutAt(row, w.Upper, markBar)

		if lo, ok := canvas.Column(w.Lower); ok {
			if edge, ok := canvas.Column(iqr.Lower); ok {
				c.Fill(row, lo+1, edge, markDash)
			}
		}
		if hi, ok := canvas.Column(w.Upper); ok {
			if edge, ok := canvas.Column(iqr.Upper); ok {
				c.Fill(row, edge+1, hi, markDash)
			}
		}
		return c
	}
}

// Box draws the interquartile box: bars at both edges on every row, a top
// rule on row 0 and a base rule on the last row.
func Box(iqr model.Interval) Layer {
	return func(c *canvas.Canvas) *canvas.Canvas {
		for row := 0; row < c.Rows(); row++ {
			c.PutAt(row, iqr.Lower, markBar)
			c.PutAt(row, iqr.Upper, markBar)
		}

		lo, okLo := canvas.Column(iqr.Lower)
		hi, okHi := canvas.Column(iqr.Upper)
		if !okLo || !okHi {
			return c
		}
		c.Fill(0, lo+1, hi, markTopRule)
		c.Fill(c.LastRow(), lo+1, hi, markBaseRule)
		return c
	}
}

// MedianBar draws a bar through every row.
func MedianBar(x float64) Layer {
	return func(c *canvas.Canvas) *canvas.Canvas {
		for row := 0; row < c.Rows(); row++ {
			c.PutAt(row, x, markBar)
		}
		return c
	}
}

// Label writes s on row starting at column x.
func Label(s string, x float64, row int) Layer {
	return func(c *canvas.Canvas) *canvas.Canvas {
		if col, ok := canvas.Column(x); ok {
			c.Text(row, col, s)
		}
		return c
	}
}

// MeanMark puts μ on the middle row.
func MeanMark(x float64) Layer {
	return func(c *canvas.Canvas) *canvas.Canvas {
		c.PutAt(c.MidRow(), x, markMean)
		return c
	}
}

// OutlierMarks plots outlier columns on the middle row in the given order.
// A run of equal consecutive columns shows its length, 1 to 9, and + from
// the tenth hit on. Any change of column restarts the count, so callers
// pass the columns sorted.
func OutlierMarks(cols []float64) Layer {
	return func(c *canvas.Canvas) *canvas.Canvas {
		row := c.MidRow()
		n := 0
		for i, x := range cols {
			if i > 0 && x == cols[i-1] {
				n++
			} else {
				n = 1
			}
			c.PutAt(row, x, runMark(n))
		}
		return c
	}
}

func runMark(n int) rune {
	if n < 10 {
		return rune('0' + n)
	}
	return markOverflow
}
