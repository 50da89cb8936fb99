package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/proxy"
)

// Usage: print-timeline [options] [proxy_report_json]
//
// Without an argument, the last of the configured proxy reports is printed.
func main() {
	conf := domain.ParseCommandLine()
	atom := domain.NewAtomicLevel(conf.LogLevel)
	logger := domain.NewLogger(&atom)

	var path string
	if args := conf.Args(); len(args) > 0 {
		path = args[0]
	} else if paths := conf.ProxyReportPaths(); len(paths) > 0 {
		path = paths[len(paths)-1]
	} else {
		path = filepath.Join(conf.ReportDir, domain.DefaultProxyReports[len(domain.DefaultProxyReports)-1])
	}

	report, err := proxy.LoadTimelineReport(path)
	if err != nil {
		logger.Error("Failed to load proxy report.", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}

	if err := proxy.PrintTimeline(os.Stdout, report); err != nil {
		logger.Error("Failed to print timeline.", zap.String("path", path), zap.Error(err))
		os.Exit(1)
	}
}
