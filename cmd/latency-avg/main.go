package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/latency"
)

const defaultTraceReport = "report.csv"

// Usage: latency-avg [options] [report_csv]
func main() {
	conf := domain.ParseCommandLine()
	atom := domain.NewAtomicLevel(conf.LogLevel)
	logger := domain.NewLogger(&atom)

	path := defaultTraceReport
	if args := conf.Args(); len(args) > 0 {
		path = args[0]
	}

	mean, err := latency.AverageTraceLatency(path)
	if err != nil {
		logger.Error("Failed to average trace latency.", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}

	fmt.Println("latency: ", mean)
}
