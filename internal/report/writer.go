package report

import (
	"os"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gocarina/gocsv"
	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/ingest"
	"github.com/scusemua/ycsb-report/m/v2/internal/summary"
)

// Layout tells the writer which output columns receive the derived summary columns.
type Layout struct {
	TestName    string // Header of the run-duration column.
	LabelColumn string
	ValueColumn string
}

// Writer emits the merged report: one output row per input row index.
type Writer struct {
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger

	layout Layout
}

func NewWriter(logger *zap.Logger, layout Layout) *Writer {
	return &Writer{
		logger:        logger,
		sugaredLogger: logger.Sugar(),
		layout:        layout,
	}
}

// WriteFile creates (or truncates) path and writes the merged report to it.
func (w *Writer) WriteFile(path string, namespaced *ingest.Namespaced, rowCount int, table *summary.Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return domain.Errorf(domain.ErrMalformedInput, "failed to create output \"%s\": %v", path, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	csvWriter := gocsv.DefaultCSVWriter(f)
	csvWriter.UseCRLF = true

	if err = w.Write(csvWriter, namespaced, rowCount, table); err != nil {
		return err
	}

	w.logger.Info("Wrote merged report.", zap.String("path", path), zap.Int("rows", rowCount), zap.Int("columns", len(namespaced.Header)))
	return nil
}

// Write emits the header and rowCount data rows. Cells whose column is not part of the header are dropped.
func (w *Writer) Write(out gocsv.CSVWriter, namespaced *ingest.Namespaced, rowCount int, table *summary.Table) error {
	if err := out.Write(namespaced.Header); err != nil {
		return err
	}

	record := make([]string, len(namespaced.Header))
	for idx := 0; idx < rowCount; idx++ {
		row := w.mergeRow(idx, namespaced, table)
		for col, column := range namespaced.Header {
			record[col] = row.GetOrDefault(column, "")
		}

		if err := out.Write(record); err != nil {
			return err
		}
	}

	out.Flush()
	return out.Error()
}

func (w *Writer) mergeRow(idx int, namespaced *ingest.Namespaced, table *summary.Table) *orderedmap.OrderedMap[string, string] {
	row := orderedmap.NewOrderedMap[string, string]()
	for _, file := range namespaced.Files {
		if idx < len(file.Rows) {
			for el := file.Rows[idx].Front(); el != nil; el = el.Next() {
				row.Set(el.Key, el.Value)
			}
		}
	}

	row.Set(w.layout.TestName, at(table.RunDuration, idx))
	row.Set(w.layout.LabelColumn, at(table.Labels, idx))
	row.Set(w.layout.ValueColumn, at(table.Values, idx))

	return row
}

func at(values []string, idx int) string {
	if idx < len(values) {
		return values[idx]
	}
	return ""
}
