package merge_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/merge"
	"github.com/scusemua/ycsb-report/m/v2/internal/summary"
)

const benchmarkOutput = "runtime,client0,client1,summary,\n" +
	"2000000000ns,1000000,3000000,Throughput,42\n" +
	",2000000,4000000,,\n"

const proxyReport = `{"started_df": 2, "df": [{"finished_job_count": 4, "duration": 2000000000, "start_duration": 100000000}]}`

var _ = Describe("Pipeline", func() {
	atom := zap.NewAtomicLevelAt(zap.DebugLevel)

	var (
		dir   string
		opts  *domain.ReportConfig
		input string
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "ycsb-report-merge")
		Expect(err).To(BeNil())
		DeferCleanup(os.RemoveAll, dir)

		for _, name := range domain.DefaultProxyReports {
			Expect(os.WriteFile(filepath.Join(dir, name), []byte(proxyReport), 0644)).To(Succeed())
		}

		input = filepath.Join(dir, "ycsb-1.csv")
		Expect(os.WriteFile(input, []byte(benchmarkOutput), 0644)).To(Succeed())

		opts = domain.GetDefaultConfig()
		opts.ReportDir = dir
	})

	It("Will merge one benchmark output with the proxy reports", func() {
		output := filepath.Join(dir, "merged.csv")

		result, err := merge.NewPipeline(opts, &atom).Run(output, []string{input})
		Expect(err).To(BeNil())
		Expect(result.RunID).ToNot(BeEmpty())
		Expect(result.Pool.Len()).To(Equal(4))
		Expect(result.Aggregate.TotalStartedDF).To(Equal(int64(6)))

		total, ok := result.Table.Lookup(summary.LabelTotalRequests)
		Expect(ok).To(BeTrue())
		Expect(total).To(Equal("4"))

		data, err := os.ReadFile(output)
		Expect(err).To(BeNil())
		Expect(string(data)).To(Equal(fmt.Sprintf("runtime,summary,,client0|%s,client1|%s\r\n", input, input) +
			",,,1000000,3000000\r\n" +
			"2.00,TotalReqs,4,2000000,4000000\r\n"))
	})

	It("Will keep the client columns of every input, even a repeated one", func() {
		result, err := merge.NewPipeline(opts, &atom).Run(filepath.Join(dir, "merged.csv"), []string{input, input})
		Expect(err).To(BeNil())

		Expect(result.Namespaced.Header).To(HaveLen(7))
		Expect(result.Pool.Len()).To(Equal(8))

		total, _ := result.Table.Lookup(summary.LabelTotalRequests)
		Expect(total).To(Equal("8"))
	})

	It("Will abort on latency cells that are not finite numbers", func() {
		for _, cell := range []string{"NaN", "Inf"} {
			bad := filepath.Join(dir, "ycsb-"+cell+".csv")
			Expect(os.WriteFile(bad, []byte("runtime,client0\n1000000000ns,"+cell+"\n"), 0644)).To(Succeed())

			var err error
			Expect(func() {
				_, err = merge.NewPipeline(opts, &atom).Run(filepath.Join(dir, "merged.csv"), []string{bad})
			}).NotTo(Panic())
			Expect(errors.Is(err, domain.ErrMalformedInput)).To(BeTrue(), cell)
		}
	})

	It("Will fail without inputs", func() {
		_, err := merge.NewPipeline(opts, &atom).Run(filepath.Join(dir, "merged.csv"), nil)
		Expect(errors.Is(err, domain.ErrUsage)).To(BeTrue())
	})

	It("Will fail when the inputs disagree on their row count", func() {
		short := filepath.Join(dir, "ycsb-2.csv")
		Expect(os.WriteFile(short, []byte("runtime,client0\n1000000000ns,5\n"), 0644)).To(Succeed())

		_, err := merge.NewPipeline(opts, &atom).Run(filepath.Join(dir, "merged.csv"), []string{input, short})
		Expect(errors.Is(err, domain.ErrRowCountMismatch)).To(BeTrue())
	})

	It("Will fail on a missing proxy report unless told to tolerate it", func() {
		Expect(os.Remove(filepath.Join(dir, domain.DefaultProxyReports[2]))).To(Succeed())
		output := filepath.Join(dir, "merged.csv")

		_, err := merge.NewPipeline(opts, &atom).Run(output, []string{input})
		Expect(errors.Is(err, domain.ErrReportNotFound)).To(BeTrue())

		opts.TolerateMissingReports = true
		result, err := merge.NewPipeline(opts, &atom).Run(output, []string{input})
		Expect(err).To(BeNil())
		Expect(result.Aggregate.TotalStartedDF).To(Equal(int64(4)))
	})
})
