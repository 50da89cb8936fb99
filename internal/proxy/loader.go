package proxy

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
)

// Keys every proxy report must carry.
var requiredKeys = []string{"started_df", "df"}

// Keys the timeline printer needs; the worker records may be absent.
var timelineKeys = []string{"history"}

// LoadReport reads and validates one proxy report.
func LoadReport(path string) (*domain.ProxyReport, error) {
	return decodeReport(path, requiredKeys)
}

// LoadTimelineReport reads a proxy report that only has to carry its history.
func LoadTimelineReport(path string) (*domain.ProxyReport, error) {
	return decodeReport(path, timelineKeys)
}

func decodeReport(path string, required []string) (*domain.ProxyReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Errorf(domain.ErrReportNotFound, "\"%s\"", path)
		}
		return nil, domain.Errorf(domain.ErrMalformedReport, "failed to read \"%s\": %v", path, err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, domain.Errorf(domain.ErrMalformedReport, "failed to parse \"%s\": %v", path, err)
	}
	for _, key := range required {
		if _, ok := keys[key]; !ok {
			return nil, domain.Errorf(domain.ErrMalformedReport, "\"%s\" has no \"%s\" field", path, key)
		}
	}

	report := &domain.ProxyReport{}
	if err := json.Unmarshal(data, report); err != nil {
		return nil, domain.Errorf(domain.ErrMalformedReport, "failed to decode \"%s\": %v", path, err)
	}
	report.Path = path

	return report, nil
}

// Loader reads the proxy reports of a run, one per proxy shard.
type Loader struct {
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger

	// When set, reports that are missing or unparsable are skipped with a warning instead of failing the run.
	tolerant bool
}

func NewLoader(logger *zap.Logger, tolerant bool) *Loader {
	return &Loader{
		logger:        logger,
		sugaredLogger: logger.Sugar(),
		tolerant:      tolerant,
	}
}

func (l *Loader) LoadReports(paths []string) ([]*domain.ProxyReport, error) {
	reports := make([]*domain.ProxyReport, 0, len(paths))
	for _, path := range paths {
		report, err := LoadReport(path)
		if err != nil {
			if l.tolerant {
				l.logger.Warn("Skipping proxy report.", zap.String("path", path), zap.Error(err))
				continue
			}
			return nil, err
		}

		l.logger.Debug("Loaded proxy report.", zap.String("path", path), zap.Int64("started_df", report.StartedDF), zap.Int("df", len(report.DF)))
		reports = append(reports, report)
	}

	return reports, nil
}
