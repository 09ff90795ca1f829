package boxplot

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/uyouii/ascii-boxplot/boxstat"
	"github.com/uyouii/ascii-boxplot/canvas"
	"github.com/uyouii/ascii-boxplot/common"
	"github.com/uyouii/ascii-boxplot/model"
	"github.com/uyouii/ascii-boxplot/nest"
	"github.com/uyouii/ascii-boxplot/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Render draws one box plot per group of records, side by side on a shared
// value axis. key selects the group of a record and value its number.
//
// The result is the axis line followed, for every group in first-seen
// order, by a blank line and the rows of the group's block. Every line is
// canvas.Width runes wide.
func Render[R any, K comparable](ctx context.Context, opts Options,
	key func(R) K, value func(R) float64, records []R) (lines []string, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Render recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			lines, err = nil, fmt.Errorf("render panicked: %v", r)
		}
	}()

	if key == nil || value == nil {
		return nil, fmt.Errorf("key and value accessors are required: %w", common.ErrorInvalidOption)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no records: %w", common.ErrorInvalidInput)
	}
	opts = opts.merge(DefaultOptions())

	groups := nest.Group(key, value, records)

	ys := make([]float64, 0, len(records))
	groups.Each(func(_ K, vs []float64) {
		ys = append(ys, vs...)
	})
	yDomain := model.Interval{Lower: floats.Min(ys), Upper: floats.Max(ys)}
	if floats.HasNaN(ys) || !yDomain.Valid() {
		return nil, fmt.Errorf("values must be finite, domain %v: %w", yDomain, common.ErrorInvalidInput)
	}
	yScale := canvas.NewScale(yDomain, model.Interval{Lower: 0, Upper: canvas.Width - 1})
	rowScale := canvas.NewScale(model.Interval{Lower: 0, Upper: float64(groups.MaxSize())}, getGroupRows())

	logger.Debug("render box plot", zap.Int("records", len(records)),
		zap.Int("groups", groups.Len()), zap.Stringer("domain", yDomain))

	lines = []string{Axis(yDomain)}
	for _, k := range groups.Keys() {
		values := groups.Get(k)
		title := fmt.Sprint(k)

		summary, err := boxstat.Summarize(values, opts.Whiskers)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", title, err)
		}
		logger.Debug("group summary", zap.String("group", title),
			zap.String("summary", summary.DebugString()))

		c := canvas.New(groupRows(rowScale, len(values)))
		Compose(c, groupLayers(title, summary, yScale)...)
		logger.Debug("group block", zap.String("group", title), zap.Stringer("block", c))

		lines = append(lines, blankLine())
		lines = append(lines, c.Lines()...)
	}
	return lines, nil
}

// RenderString is Render with the lines joined by newlines.
func RenderString[R any, K comparable](ctx context.Context, opts Options,
	key func(R) K, value func(R) float64, records []R) (string, error) {
	lines, err := Render(ctx, opts, key, value, records)
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// groupLayers lists the layers of one group block in draw order.
func groupLayers(title string, s *model.Summary, yScale canvas.Scale) []Layer {
	iqr := yScale.Interval(s.IQR)
	outliers := yScale.Values(s.Outliers)
	sort.Float64s(outliers)

	return []Layer{
		Whiskers(yScale.Interval(s.Whiskers), iqr),
		Box(iqr),
		MedianBar(yScale(s.Median)),
		Label(title, iqr.Lower+1, 0),
		Label("n="+strconv.Itoa(s.Count), iqr.Lower+1, 1),
		MeanMark(yScale(s.Mean)),
		OutlierMarks(outliers),
	}
}

func groupRows(rowScale canvas.Scale, size int) int {
	rows, ok := canvas.Column(rowScale(float64(size)))
	if !ok {
		return 1
	}
	return max(rows, 1)
}

func blankLine() string {
	return strings.Repeat(" ", canvas.Width)
}
