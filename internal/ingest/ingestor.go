package ingest

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
)

// Set is the result of ingesting every input file of a run.
type Set struct {
	Files []*LatencyCsvFile

	// RowCount is the number of data rows of the first file; every other file has the same count.
	RowCount int
}

type Ingestor struct {
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger
}

func NewIngestor(logger *zap.Logger) *Ingestor {
	return &Ingestor{
		logger:        logger,
		sugaredLogger: logger.Sugar(),
	}
}

// LoadFiles reads every path in order. The run is aborted on the first file that is missing, malformed, or
// whose row count differs from the first file's.
func (i *Ingestor) LoadFiles(paths []string) (*Set, error) {
	if len(paths) == 0 {
		return nil, domain.Errorf(domain.ErrUsage, "at least one input CSV is required")
	}

	set := &Set{Files: make([]*LatencyCsvFile, 0, len(paths))}
	for idx, path := range paths {
		file, err := i.LoadFile(path)
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			set.RowCount = file.Len()
		} else if file.Len() != set.RowCount {
			return nil, domain.Errorf(domain.ErrRowCountMismatch, "\"%s\" has %d row(s), but \"%s\" has %d", path, file.Len(), paths[0], set.RowCount)
		}

		set.Files = append(set.Files, file)
	}

	return set, nil
}

// LoadFile parses one header-plus-rows CSV file.
func (i *Ingestor) LoadFile(path string) (*LatencyCsvFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Errorf(domain.ErrInputNotFound, "\"%s\"", path)
		}
		return nil, domain.Errorf(domain.ErrMalformedInput, "failed to open \"%s\": %v", path, err)
	}
	defer f.Close()

	decoder := gocsv.NewSimpleDecoderFromCSVReader(csv.NewReader(f))
	records, err := decoder.GetCSVRows()
	if err != nil {
		i.sugaredLogger.Errorf("Failed to parse CSV file \"%s\": %v", path, err)
		return nil, domain.Errorf(domain.ErrMalformedInput, "failed to parse \"%s\": %v", path, err)
	}

	if len(records) == 0 {
		return nil, domain.Errorf(domain.ErrMalformedInput, "\"%s\" is empty (no header)", path)
	}
	if len(records) == 1 {
		return nil, domain.Errorf(domain.ErrMalformedInput, "\"%s\" has a header but no rows", path)
	}

	header := records[0]
	file := &LatencyCsvFile{
		Path:   path,
		Header: dedupe(header),
		Rows:   make([]Row, 0, len(records)-1),
	}

	for _, record := range records[1:] {
		row := orderedmap.NewOrderedMap[string, string]()
		for idx, column := range header {
			// Repeated column names keep their first position but their last value.
			row.Set(column, record[idx])
		}
		file.Rows = append(file.Rows, row)
	}

	i.logger.Debug("Loaded latency CSV.", zap.String("path", path), zap.Int("rows", file.Len()), zap.Strings("header", file.Header))

	return file, nil
}

func dedupe(header []string) []string {
	seen := make(map[string]struct{}, len(header))
	columns := make([]string, 0, len(header))
	for _, column := range header {
		if _, ok := seen[column]; ok {
			continue
		}
		seen[column] = struct{}{}
		columns = append(columns, column)
	}
	return columns
}
