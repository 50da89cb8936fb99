package latency_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/latency"
)

var _ = Describe("AverageTraceLatency", func() {
	It("Will average the duration_us column", func() {
		path := writeFixture("report.csv", "op,duration_us\nread,10\nwrite,20\nread,30\n")

		mean, err := latency.AverageTraceLatency(path)
		Expect(err).To(BeNil())
		Expect(mean).To(BeNumerically("~", 20.0, 1e-9))
	})

	It("Will report zero for a header-only file", func() {
		mean, err := latency.AverageTraceLatency(writeFixture("report.csv", "duration_us\n"))
		Expect(err).To(BeNil())
		Expect(mean).To(Equal(0.0))
	})

	It("Will fail on a file without a header", func() {
		_, err := latency.AverageTraceLatency(writeFixture("report.csv", ""))
		Expect(errors.Is(err, domain.ErrMalformedInput)).To(BeTrue())
	})

	It("Will fail when the file is missing", func() {
		_, err := latency.AverageTraceLatency("/nonexistent/report.csv")
		Expect(errors.Is(err, domain.ErrInputNotFound)).To(BeTrue())
	})
})
