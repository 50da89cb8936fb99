package latency

import (
	"errors"
	"io/fs"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/pkg/statistics"
)

// TraceRecord is one row of a trace replay report.
type TraceRecord struct {
	DurationUs int64 `csv:"duration_us"`
}

// AverageTraceLatency returns the mean of the duration_us column of a trace replay report, in microseconds.
func AverageTraceLatency(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, domain.Errorf(domain.ErrInputNotFound, "\"%s\"", path)
		}
		return 0, domain.Errorf(domain.ErrMalformedInput, "failed to open \"%s\": %v", path, err)
	}
	defer f.Close()

	records := []*TraceRecord{}
	if err := gocsv.UnmarshalFile(f, &records); err != nil { // Load trace data from file
		return 0, domain.Errorf(domain.ErrMalformedInput, "failed to parse \"%s\": %v", path, err)
	}

	sample := statistics.NewSample(len(records))
	for _, record := range records {
		sample.AddInt(record.DurationUs)
	}

	return sample.Avg().InexactFloat64(), nil
}
