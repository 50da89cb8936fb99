package latency

import (
	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/pkg/statistics"
)

// Pool holds every client latency sample of a run, in nanoseconds, regardless of which client or file
// produced it, along with the first (cold-start) sample of each client column.
type Pool struct {
	Samples    []float64
	ColdStarts []float64
}

// Len is the total number of requests observed across all clients.
func (p *Pool) Len() int {
	return len(p.Samples)
}

func (p *Pool) Stats() *statistics.Sample {
	return statistics.NewSampleFromFloats(p.Samples...)
}

// MeanColdStartSeconds returns the average cold-start latency in seconds, or zero when there is none.
func (p *Pool) MeanColdStartSeconds() float64 {
	return statistics.NewSampleFromFloats(p.ColdStarts...).Avg().InexactFloat64() / domain.NanosecondsPerSecond
}

// Histogram buckets every sample of the pool by whole milliseconds.
func (p *Pool) Histogram() *Histogram {
	histogram := NewHistogram()
	for _, sample := range p.Samples {
		histogram.Observe(sample)
	}
	return histogram
}
