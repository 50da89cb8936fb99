package latency

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/ingest"
)

// Collector flattens the client columns of every input file into a single Pool.
type Collector struct {
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger

	clientMarker string
}

func NewCollector(logger *zap.Logger, clientMarker string) *Collector {
	return &Collector{
		logger:        logger,
		sugaredLogger: logger.Sugar(),
		clientMarker:  clientMarker,
	}
}

func (c *Collector) Collect(set *ingest.Set) (*Pool, error) {
	pool := &Pool{
		Samples:    make([]float64, 0, set.RowCount*len(set.Files)),
		ColdStarts: make([]float64, 0),
	}

	for _, file := range set.Files {
		clients := file.ClientColumns(c.clientMarker)
		for _, column := range clients {
			for idx, row := range file.Rows {
				raw, _ := row.Get(column)
				sample, err := ParseNanoseconds(raw)
				if err != nil {
					return nil, domain.Errorf(domain.ErrMalformedInput, "\"%s\" row %d column \"%s\": %v", file.Path, idx+1, column, err)
				}

				pool.Samples = append(pool.Samples, sample)
				if idx == 0 {
					pool.ColdStarts = append(pool.ColdStarts, sample)
				}
			}
		}

		c.logger.Debug("Collected client latencies.", zap.String("path", file.Path), zap.Strings("clients", clients))
	}

	return pool, nil
}

// ParseNanoseconds parses a textual latency sample. NaN and infinities are rejected.
func ParseNanoseconds(raw string) (float64, error) {
	sample, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}

	if math.IsNaN(sample) || math.IsInf(sample, 0) {
		return 0, domain.Errorf(domain.ErrMalformedInput, "latency \"%s\" is not a finite number", raw)
	}
	return sample, nil
}
