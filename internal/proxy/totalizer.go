package proxy

import (
	"go.uber.org/zap"
)

// TotalDurationSeconds sums the lifetime of every worker found in the given reports. Reports that are
// missing or unparsable contribute nothing.
func TotalDurationSeconds(logger *zap.Logger, paths []string) float64 {
	reports, _ := NewLoader(logger, true).LoadReports(paths)
	return AggregateReports(reports).TotalDurationSeconds()
}
