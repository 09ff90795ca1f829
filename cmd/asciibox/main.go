// Command asciibox prints side by side box plots of grouped numbers.
//
// It reads records from a file or stdin, either CSV or JSON (one object per
// line, or a single top level array), takes a group key and a numeric value
// from each record and prints the plot to stdout.
//
//	asciibox --header --key city --value temp weather.csv
//	asciibox --format json --key host --value latency.p99 < samples.jsonl
package main

import (
	"context"
	"os"

	"github.com/uyouii/ascii-boxplot/utils"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		utils.GetLogger(context.Background()).Error("asciibox failed", zap.Error(err))
		os.Exit(1)
	}
}
