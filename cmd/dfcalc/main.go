package main

import (
	"fmt"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/proxy"
)

// Usage: dfcalc [options]
//
// Prints the summed lifetime, in seconds, of every data function in the configured proxy reports.
// Missing reports are skipped.
func main() {
	conf := domain.ParseCommandLine()
	atom := domain.NewAtomicLevel(conf.LogLevel)
	logger := domain.NewLogger(&atom)

	fmt.Println(proxy.TotalDurationSeconds(logger, conf.ProxyReportPaths()))
}
