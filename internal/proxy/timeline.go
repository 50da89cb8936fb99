package proxy

import (
	"fmt"
	"io"
	"sort"

	"github.com/scusemua/ycsb-report/m/v2/internal/domain"
)

const TimelineSeparator = "v"

// Timeline returns the report's history ordered by timestamp. Entries sharing a timestamp keep their
// recorded order.
func Timeline(report *domain.ProxyReport) ([]*domain.HistoryEntry, error) {
	if report.History == nil {
		return nil, domain.Errorf(domain.ErrMalformedReport, "\"%s\" has no \"history\" field", report.Path)
	}

	history := make([]*domain.HistoryEntry, len(report.History))
	copy(history, report.History)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp < history[j].Timestamp
	})

	return history, nil
}

// PrintTimeline writes the timestamps, worker counts and incoming request counts of the report's
// history as three single-column sections separated by a "v" line.
func PrintTimeline(out io.Writer, report *domain.ProxyReport) error {
	history, err := Timeline(report)
	if err != nil {
		return err
	}

	columns := []func(*domain.HistoryEntry) int64{
		func(h *domain.HistoryEntry) int64 { return h.Timestamp },
		func(h *domain.HistoryEntry) int64 { return h.WorkerCount },
		func(h *domain.HistoryEntry) int64 { return h.NumberOfIncomingRequest },
	}

	for idx, column := range columns {
		if idx > 0 {
			if _, err := fmt.Fprintln(out, TimelineSeparator); err != nil {
				return err
			}
		}

		for _, h := range history {
			if _, err := fmt.Fprintln(out, column(h)); err != nil {
				return err
			}
		}
	}

	return nil
}
