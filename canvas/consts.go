package canvas

const (
	// Width is the number of columns of every canvas row.
	Width = 80

	// Blank fills a fresh canvas.
	Blank = ' '

	// scaled columns beyond this magnitude are treated as unplottable
	maxColumn = 1 << 30
)
