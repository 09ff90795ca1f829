package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"
)

// 10^places overflows past this
const maxRoundPlaces = 308

// RoundHalfUp rounds x to the nearest integer, ties towards +Inf.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundSigFig rounds f to the given number of significant digits.
// Zero, NaN and Inf are returned unchanged.
func RoundSigFig(f float64, digits int) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	places := digits - int(math.Floor(math.Log10(math.Abs(f)))) - 1
	if places > maxRoundPlaces {
		return f
	}
	rounded, err := stats.Round(f, places)
	if err != nil {
		return f
	}
	// drop the representation noise left by dividing through 10^places
	rounded, _ = strconv.ParseFloat(strconv.FormatFloat(rounded, 'g', 12, 64), 64)
	return rounded
}

// FormatNumber prints f in its shortest plain decimal form, switching to
// exponent notation only for very small or very large magnitudes. The
// exponent carries no leading zeros, as in 1e-7.
func FormatNumber(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
