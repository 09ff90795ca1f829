package boxplot

import (
	"github.com/uyouii/ascii-boxplot/boxstat"
)

// Options configure a render. The zero value is valid: every unset field
// falls back to DefaultOptions.
type Options struct {
	// Whiskers decides where the whiskers end; outliers are the values
	// beyond them.
	Whiskers boxstat.WhiskerPolicy
}

func DefaultOptions() Options {
	return Options{
		Whiskers: boxstat.TukeyWhiskers,
	}
}

// merge fills the unset fields of o from defaults, field by field.
func (o Options) merge(defaults Options) Options {
	if o.Whiskers == nil {
		o.Whiskers = defaults.Whiskers
	}
	return o
}
