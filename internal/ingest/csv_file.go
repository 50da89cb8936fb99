package ingest

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
)

// Row maps column name to the raw cell text. Iteration follows the file's header order.
type Row = *orderedmap.OrderedMap[string, string]

// LatencyCsvFile is one per-client latency CSV. The header fixes the schema of every row.
type LatencyCsvFile struct {
	Path   string
	Header []string
	Rows   []Row
}

func (f *LatencyCsvFile) Len() int {
	return len(f.Rows)
}

// ClientColumns returns, in header order, the columns holding per-client latency samples.
func (f *LatencyCsvFile) ClientColumns(marker string) []string {
	columns := make([]string, 0, len(f.Header))
	for _, column := range f.Header {
		if IsClientColumn(column, marker) {
			columns = append(columns, column)
		}
	}
	return columns
}

// MetadataColumns returns, in header order, every column that is not a client column.
func (f *LatencyCsvFile) MetadataColumns(marker string) []string {
	columns := make([]string, 0, len(f.Header))
	for _, column := range f.Header {
		if !IsClientColumn(column, marker) {
			columns = append(columns, column)
		}
	}
	return columns
}

func IsClientColumn(column string, marker string) bool {
	return strings.Contains(column, marker)
}
