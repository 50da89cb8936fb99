package proxy_test

import (
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/proxy"
)

var _ = Describe("Aggregate", func() {
	It("Will sum started workers across reports", func() {
		reports := []*domain.ProxyReport{{StartedDF: 2}, {StartedDF: 2}, {StartedDF: 2}}

		Expect(proxy.AggregateReports(reports).TotalStartedDF).To(Equal(int64(6)))
	})

	It("Will pool worker records across reports", func() {
		reports := []*domain.ProxyReport{
			{StartedDF: 1, DF: []*domain.DataFunction{{FinishedJobCount: 10, Duration: 2_000_000_000, StartDuration: 1_000_000}}},
			{StartedDF: 1, DF: []*domain.DataFunction{{FinishedJobCount: 4, Duration: 1_000_000_000, StartDuration: 3_000_000}}},
		}

		aggregate := proxy.AggregateReports(reports)
		Expect(aggregate.Reports).To(Equal(2))
		Expect(aggregate.Utilization).To(Equal([]float64{5, 4}))
		Expect(aggregate.StartupTimes).To(Equal([]int64{1_000_000, 3_000_000}))
		Expect(aggregate.Durations).To(Equal([]int64{2_000_000_000, 1_000_000_000}))

		Expect(aggregate.MeanUtilization()).To(BeNumerically("~", 4.5, 1e-9))
		Expect(aggregate.MaxUtilization()).To(BeNumerically("~", 5.0, 1e-9))
		Expect(aggregate.MeanStartupSeconds()).To(BeNumerically("~", 0.002, 1e-12))
		Expect(aggregate.TotalDurationNanoseconds()).To(Equal(int64(3_000_000_000)))
		Expect(aggregate.TotalDurationSeconds()).To(BeNumerically("~", 3.0, 1e-9))
	})

	It("Will fall back to zero on an empty aggregate", func() {
		aggregate := proxy.AggregateReports(nil)

		Expect(aggregate.TotalStartedDF).To(Equal(int64(0)))
		Expect(aggregate.MeanUtilization()).To(Equal(0.0))
		Expect(aggregate.MeanStartupSeconds()).To(Equal(0.0))
		Expect(aggregate.MaxUtilization()).To(Equal(0.0))
		Expect(aggregate.TotalDurationSeconds()).To(Equal(0.0))
	})

	It("Will keep the maximum utilization at zero when no worker finished a job", func() {
		reports := []*domain.ProxyReport{{DF: []*domain.DataFunction{
			{FinishedJobCount: 0, Duration: 1_000_000_000},
			{FinishedJobCount: 0, Duration: 0},
		}}}

		Expect(proxy.AggregateReports(reports).MaxUtilization()).To(BeNumerically(">=", 0))
	})
})

var _ = Describe("TotalDurationSeconds", func() {
	atom := zap.NewAtomicLevelAt(zap.DebugLevel)

	It("Will total the reports that exist and ignore the rest", func() {
		dir := reportDir(map[string]string{
			"proxy-report-1.json": sampleReport,
			"proxy-report-3.json": "garbage",
		})

		total := proxy.TotalDurationSeconds(domain.NewLogger(&atom), []string{
			filepath.Join(dir, "proxy-report-1.json"),
			filepath.Join(dir, "proxy-report-2.json"),
			filepath.Join(dir, "proxy-report-3.json"),
		})
		Expect(total).To(BeNumerically("~", 3.0, 1e-9))
	})

	It("Will report zero when no report exists", func() {
		Expect(proxy.TotalDurationSeconds(domain.NewLogger(&atom), []string{"/nonexistent/a.json"})).To(Equal(0.0))
	})
})
