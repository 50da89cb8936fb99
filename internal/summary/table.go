package summary

import (
	"strconv"
)

const (
	LabelTotalRequests   = "TotalReqs"
	LabelIOPSHot         = "IOPS(hot)"
	LabelIOPSAll         = "IOPS(all)"
	LabelDFStat          = "DF Stat"
	LabelTotalDF         = "Total DF"
	LabelDFStart         = "DF Start (s)"
	LabelAvgUtilization  = "Avg Util=(finished job/duration)"
	LabelMaxUtilization  = "Max Util"
	LabelDFAllDuration   = "DF All Duration (s)"
	LabelDistributionHdr = "dist bucket(ms)"
)

// Table holds the three derived columns of the merged report. Index i of each slice lands on output row i.
type Table struct {
	// RunDuration is the run-duration column: a blank, the average run duration in seconds, a blank, then
	// every run duration read from the inputs.
	RunDuration []string

	Labels []string
	Values []string
}

// Len returns the number of label/value pairs.
func (t *Table) Len() int {
	return len(t.Labels)
}

// Lookup returns the value recorded next to the first occurrence of label.
func (t *Table) Lookup(label string) (string, bool) {
	for idx, l := range t.Labels {
		if l == label && idx < len(t.Values) {
			return t.Values[idx], true
		}
	}
	return "", false
}

func (t *Table) prepend(label string, value string) {
	t.Labels = insertAt(t.Labels, 1, label)
	t.Values = insertAt(t.Values, 1, value)
}

func (t *Table) append(label string, value string) {
	t.Labels = append(t.Labels, label)
	t.Values = append(t.Values, value)
}

// insertAt inserts value at idx, or appends it when the slice is shorter than idx.
func insertAt(values []string, idx int, value string) []string {
	if idx >= len(values) {
		return append(values, value)
	}

	values = append(values, "")
	copy(values[idx+1:], values[idx:])
	values[idx] = value
	return values
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
