package summary

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/latency"
	"github.com/scusemua/ycsb-report/m/v2/internal/metadata"
	"github.com/scusemua/ycsb-report/m/v2/internal/proxy"
	"github.com/scusemua/ycsb-report/m/v2/pkg/statistics"
)

// Length of the unit suffix ("ns") trailing every run-duration cell.
const runDurationSuffixLen = 2

type Builder struct {
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger
}

func NewBuilder(logger *zap.Logger) *Builder {
	return &Builder{
		logger:        logger,
		sugaredLogger: logger.Sugar(),
	}
}

// Build derives the summary metrics and lays them out in report order.
func (b *Builder) Build(tracks *metadata.Tracks, pool *latency.Pool, aggregate *proxy.Aggregate) (*Table, error) {
	avgRuntimeSeconds, err := AverageRuntimeSeconds(tracks.RunDurations)
	if err != nil {
		return nil, err
	}

	table := &Table{
		RunDuration: make([]string, 0, len(tracks.RunDurations)+3),
		Labels:      make([]string, 0, len(tracks.Labels)+16),
		Values:      make([]string, 0, len(tracks.Values)+16),
	}

	table.RunDuration = append(table.RunDuration, "", fmt.Sprintf("%.2f", avgRuntimeSeconds), "")
	table.RunDuration = append(table.RunDuration, tracks.RunDurations...)

	table.Labels = append(table.Labels, "")
	table.Labels = append(table.Labels, tracks.Labels...)
	table.Values = append(table.Values, "")
	table.Values = append(table.Values, tracks.Values...)

	totalRequests := pool.Len()
	coldStartSeconds := pool.MeanColdStartSeconds()

	table.prepend(LabelIOPSAll, formatFloat(Throughput(totalRequests, avgRuntimeSeconds)))
	table.prepend(LabelIOPSHot, formatFloat(Throughput(totalRequests, avgRuntimeSeconds-coldStartSeconds)))
	table.prepend(LabelTotalRequests, strconv.Itoa(totalRequests))

	table.append("", "")
	table.append(LabelDFStat, "")
	table.append(LabelTotalDF, strconv.FormatInt(aggregate.TotalStartedDF, 10))
	table.append(LabelDFStart, formatFloat(aggregate.MeanStartupSeconds()))
	table.append(LabelAvgUtilization, formatFloat(aggregate.MeanUtilization()))
	table.append(LabelMaxUtilization, formatFloat(aggregate.MaxUtilization()))
	table.append(LabelDFAllDuration, formatFloat(aggregate.TotalDurationSeconds()))

	histogram := pool.Histogram()
	table.append("", "")
	table.append(LabelDistributionHdr, "")
	buckets := histogram.Buckets()
	for el := buckets.Front(); el != nil; el = el.Next() {
		table.append(strconv.FormatInt(el.Key, 10), strconv.Itoa(el.Value))
	}

	stats := pool.Stats()
	b.logger.Info("Summarized run.",
		zap.Int("total_requests", totalRequests),
		zap.Float64("avg_runtime_s", avgRuntimeSeconds),
		zap.Float64("avg_cold_start_s", coldStartSeconds),
		zap.Float64("avg_latency_ns", stats.Avg().InexactFloat64()),
		zap.Float64("stdev_latency_ns", stats.SampleStandardDeviation()),
		zap.Int64("total_df", aggregate.TotalStartedDF),
		zap.Int("latency_buckets", buckets.Len()))

	return table, nil
}

// AverageRuntimeSeconds parses run-duration cells of the form "<integer nanoseconds><2-character unit>"
// and returns their mean in seconds. Blank cells are ignored and no cells at all yield zero.
func AverageRuntimeSeconds(runDurations []string) (float64, error) {
	sample := statistics.NewSample(len(runDurations))
	for _, raw := range runDurations {
		if raw == "" {
			continue
		}

		nanoseconds, err := ParseRunDuration(raw)
		if err != nil {
			return 0, err
		}
		sample.AddInt(nanoseconds)
	}

	return sample.Avg().InexactFloat64() / domain.NanosecondsPerSecond, nil
}

func ParseRunDuration(raw string) (int64, error) {
	if len(raw) <= runDurationSuffixLen {
		return 0, domain.Errorf(domain.ErrMalformedInput, "run duration \"%s\" is too short to carry a unit", raw)
	}

	nanoseconds, err := strconv.ParseInt(strings.TrimSpace(raw[:len(raw)-runDurationSuffixLen]), 10, 64)
	if err != nil {
		return 0, domain.Errorf(domain.ErrMalformedInput, "run duration \"%s\": %v", raw, err)
	}
	return nanoseconds, nil
}

// Throughput returns requests per second, or zero when the elapsed time is not positive.
func Throughput(requests int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return float64(requests) / seconds
}
