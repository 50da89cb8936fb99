package metadata

import (
	"strings"

	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/ingest"
)

// Tracks are the sequences the scanner pulls out of the metadata columns. Blank cells are skipped, not
// padded, so a track's length only matches the row count when every row has a value.
type Tracks struct {
	// TestName is the header of the run-duration column.
	TestName     string
	RunDurations []string
	Labels       []string
	Values       []string
}

type Scanner struct {
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger

	schema Schema
	state  State
}

func NewScanner(logger *zap.Logger, schema Schema) *Scanner {
	return &Scanner{
		logger:        logger,
		sugaredLogger: logger.Sugar(),
		schema:        schema,
		state:         CollectingLabels,
	}
}

func (s *Scanner) State() State {
	return s.state
}

// Scan walks the metadata cells of every row of every file. The first file's metadata columns are the
// authoritative key set; a column missing from a later file reads as blank.
func (s *Scanner) Scan(set *ingest.Set, clientMarker string) *Tracks {
	tracks := &Tracks{
		TestName:     s.schema.RunDurationColumn,
		RunDurations: make([]string, 0),
		Labels:       make([]string, 0),
		Values:       make([]string, 0),
	}

	if len(set.Files) == 0 {
		return tracks
	}

	columns := set.Files[0].MetadataColumns(clientMarker)
	for _, file := range set.Files {
		for _, row := range file.Rows {
			s.scanRow(row, columns, tracks)
		}
	}

	s.logger.Debug("Scanned metadata columns.",
		zap.Stringer("schema", s.schema),
		zap.String("testname", tracks.TestName),
		zap.Int("run_durations", len(tracks.RunDurations)),
		zap.Int("labels", len(tracks.Labels)),
		zap.Int("values", len(tracks.Values)),
		zap.Stringer("state", s.state))

	return tracks
}

func (s *Scanner) scanRow(row ingest.Row, columns []string, tracks *Tracks) {
	for _, column := range columns {
		cell, _ := row.Get(column)
		if cell == "" {
			continue
		}

		switch s.schema.RoleOf(column) {
		case RoleLabel:
			if s.state == CollectingLabels && s.schema.DistMarker != "" && strings.Contains(cell, s.schema.DistMarker) {
				s.sugaredLogger.Debugf("Label \"%s\" starts the distribution section; no more summary cells will be collected.", cell)
				s.state = CollectingDistribution
			}

			if s.state == CollectingLabels {
				tracks.Labels = append(tracks.Labels, cell)
			}
		case RoleValue:
			if s.state == CollectingLabels {
				tracks.Values = append(tracks.Values, cell)
			}
		case RoleRunDuration:
			tracks.TestName = column
			tracks.RunDurations = append(tracks.RunDurations, cell)
		}
	}
}
