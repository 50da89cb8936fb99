package proxy

import (
	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/pkg/statistics"
)

// Aggregate pools the worker records of several proxy reports.
type Aggregate struct {
	Reports        int
	TotalStartedDF int64

	Utilization  []float64 // Jobs per second, one entry per worker.
	StartupTimes []int64   // Nanoseconds.
	Durations    []int64   // Nanoseconds.
}

func AggregateReports(reports []*domain.ProxyReport) *Aggregate {
	aggregate := &Aggregate{
		Reports:      len(reports),
		Utilization:  make([]float64, 0),
		StartupTimes: make([]int64, 0),
		Durations:    make([]int64, 0),
	}

	for _, report := range reports {
		aggregate.TotalStartedDF += report.StartedDF

		for _, df := range report.DF {
			aggregate.Utilization = append(aggregate.Utilization, df.Utilization())
			aggregate.StartupTimes = append(aggregate.StartupTimes, df.StartDuration)
			aggregate.Durations = append(aggregate.Durations, df.Duration)
		}
	}

	return aggregate
}

// MeanStartupSeconds is zero when no worker was recorded.
func (a *Aggregate) MeanStartupSeconds() float64 {
	sample := statistics.NewSample(len(a.StartupTimes))
	for _, startup := range a.StartupTimes {
		sample.AddInt(startup)
	}
	return sample.Avg().InexactFloat64() / domain.NanosecondsPerSecond
}

// MeanUtilization is zero when no worker was recorded.
func (a *Aggregate) MeanUtilization() float64 {
	return statistics.NewSampleFromFloats(a.Utilization...).Avg().InexactFloat64()
}

// MaxUtilization never drops below zero, even when no worker was recorded.
func (a *Aggregate) MaxUtilization() float64 {
	sample := statistics.NewSampleFromFloats(a.Utilization...)
	sample.AddFloat(0)
	return sample.Max().InexactFloat64()
}

func (a *Aggregate) TotalDurationNanoseconds() int64 {
	var total int64
	for _, duration := range a.Durations {
		total += duration
	}
	return total
}

// TotalDurationSeconds is the summed worker lifetime in seconds.
func (a *Aggregate) TotalDurationSeconds() float64 {
	return float64(a.TotalDurationNanoseconds()) / domain.NanosecondsPerSecond
}
