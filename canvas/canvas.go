package canvas

import (
	"math"
	"strings"
)

// Canvas is a fixed size character grid of Width columns. All writes are
// clamped: a cell outside the grid is silently ignored.
type Canvas struct {
	cells []rune
	rows  int
}

// New allocates a blank canvas with the given number of rows, at least one.
func New(rows int) *Canvas {
	rows = max(rows, 1)
	cells := make([]rune, rows*Width)
	for i := range cells {
		cells[i] = Blank
	}
	return &Canvas{cells: cells, rows: rows}
}

func (c *Canvas) Rows() int {
	return c.rows
}

// MidRow is the row single line marks are drawn on.
func (c *Canvas) MidRow() int {
	return c.rows / 2
}

func (c *Canvas) LastRow() int {
	return c.rows - 1
}

// Column converts a scaled coordinate into a column index. ok is false for
// NaN, Inf and values too large to be a column.
func Column(x float64) (col int, ok bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.Abs(x) > maxColumn {
		return 0, false
	}
	return int(x), true
}

func (c *Canvas) inside(row, col int) bool {
	return row >= 0 && row < c.rows && col >= 0 && col < Width
}

// Put writes r at (row, col).
func (c *Canvas) Put(row, col int, r rune) {
	if !c.inside(row, col) {
		return
	}
	c.cells[row*Width+col] = r
}

// PutAt writes r at a scaled column.
func (c *Canvas) PutAt(row int, x float64, r rune) {
	if col, ok := Column(x); ok {
		c.Put(row, col, r)
	}
}

// Fill writes r on row over the columns in [from, to).
func (c *Canvas) Fill(row, from, to int, r rune) {
	from, to = max(from, 0), min(to, Width)
	for col := from; col < to; col++ {
		c.Put(row, col, r)
	}
}

// Text writes s left to right starting at (row, col). Characters past the
// end of the row are dropped, there is no wrapping.
func (c *Canvas) Text(row, col int, s string) {
	for _, r := range s {
		if col >= Width {
			return
		}
		c.Put(row, col, r)
		col++
	}
}

// Line returns one row as a string.
func (c *Canvas) Line(row int) string {
	if row < 0 || row >= c.rows {
		return ""
	}
	return string(c.cells[row*Width : (row+1)*Width])
}

// Lines splits the canvas into its rows.
func (c *Canvas) Lines() []string {
	res := make([]string, 0, c.rows)
	for row := 0; row < c.rows; row++ {
		res = append(res, c.Line(row))
	}
	return res
}

func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}
