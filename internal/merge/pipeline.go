package merge

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
	"github.com/scusemua/ycsb-report/m/v2/internal/ingest"
	"github.com/scusemua/ycsb-report/m/v2/internal/latency"
	"github.com/scusemua/ycsb-report/m/v2/internal/metadata"
	"github.com/scusemua/ycsb-report/m/v2/internal/proxy"
	"github.com/scusemua/ycsb-report/m/v2/internal/report"
	"github.com/scusemua/ycsb-report/m/v2/internal/summary"
)

// Result is everything a run produced, returned for inspection once the report has been written.
type Result struct {
	RunID      string
	Inputs     *ingest.Set
	Namespaced *ingest.Namespaced
	Pool       *latency.Pool
	Tracks     *metadata.Tracks
	Aggregate  *proxy.Aggregate
	Table      *summary.Table
}

// Pipeline runs the merge stages once, in order: ingest, namespace, collect latencies, scan metadata,
// aggregate proxy reports, build the summary, write the report.
type Pipeline struct {
	logger        *zap.Logger
	sugaredLogger *zap.SugaredLogger

	opts *domain.ReportConfig
}

func NewPipeline(opts *domain.ReportConfig, atom *zap.AtomicLevel) *Pipeline {
	logger := domain.NewLogger(atom)

	return &Pipeline{
		logger:        logger,
		sugaredLogger: logger.Sugar(),
		opts:          opts,
	}
}

func (p *Pipeline) Schema() metadata.Schema {
	return metadata.Schema{
		LabelColumn:       p.opts.LabelColumn,
		ValueColumn:       p.opts.ValueColumn,
		RunDurationColumn: p.opts.RunDurationColumn,
		DistMarker:        p.opts.DistMarker,
	}
}

func (p *Pipeline) Run(outputPath string, inputPaths []string) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	logger := p.logger.With(zap.String("run_id", result.RunID))
	logger.Info("Merging benchmark output.", zap.String("output", outputPath), zap.Strings("inputs", inputPaths))

	var err error
	if result.Inputs, err = ingest.NewIngestor(logger).LoadFiles(inputPaths); err != nil {
		return nil, err
	}

	result.Namespaced = ingest.Namespace(result.Inputs, p.opts.ClientMarker)

	if result.Pool, err = latency.NewCollector(logger, p.opts.ClientMarker).Collect(result.Inputs); err != nil {
		return nil, err
	}

	result.Tracks = metadata.NewScanner(logger, p.Schema()).Scan(result.Inputs, p.opts.ClientMarker)

	reports, err := proxy.NewLoader(logger, p.opts.TolerateMissingReports).LoadReports(p.opts.ProxyReportPaths())
	if err != nil {
		return nil, err
	}
	result.Aggregate = proxy.AggregateReports(reports)

	if result.Table, err = summary.NewBuilder(logger).Build(result.Tracks, result.Pool, result.Aggregate); err != nil {
		return nil, err
	}

	writer := report.NewWriter(logger, report.Layout{
		TestName:    result.Tracks.TestName,
		LabelColumn: p.opts.LabelColumn,
		ValueColumn: p.opts.ValueColumn,
	})
	if err = writer.WriteFile(outputPath, result.Namespaced, result.Inputs.RowCount, result.Table); err != nil {
		return nil, err
	}

	return result, nil
}
