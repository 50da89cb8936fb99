package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/merge"
)

// Usage: csv-merge [options] <output_csv_path> <input_csv_path>...
func main() {
	conf := domain.ParseCommandLine()
	atom := domain.NewAtomicLevel(conf.LogLevel)
	logger := domain.NewLogger(&atom)

	output, inputs, err := conf.MergeArgs()
	if err != nil {
		logger.Error("Invalid arguments.", zap.Error(err))
		os.Exit(2)
	}

	if _, err := merge.NewPipeline(conf, &atom).Run(output, inputs); err != nil {
		logger.Error("Merge failed.", zap.Error(err))
		os.Exit(1)
	}
}
