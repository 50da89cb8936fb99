package metadata

import "fmt"

// Role is the part a metadata column plays in the merged report.
type Role int

const (
	RoleIgnored Role = iota
	RoleLabel
	RoleValue
	RoleRunDuration
)

func (r Role) String() string {
	switch r {
	case RoleLabel:
		return "label"
	case RoleValue:
		return "value"
	case RoleRunDuration:
		return "run-duration"
	default:
		return "ignored"
	}
}

// State tells whether the label column still carries per-row summary labels or has moved on to the raw
// distribution section that some inputs append further down the same column.
type State int

const (
	CollectingLabels State = iota
	CollectingDistribution
)

func (s State) String() string {
	if s == CollectingDistribution {
		return "collecting-distribution"
	}
	return "collecting-labels"
}

// Schema declares which metadata columns carry which role.
type Schema struct {
	LabelColumn string
	ValueColumn string

	// RunDurationColumn names the run-duration column. When empty, every metadata column that is neither
	// the label nor the value column is treated as a run-duration column, and the last one seen names
	// the output column.
	RunDurationColumn string

	// DistMarker switches the scanner to CollectingDistribution the first time a label contains it.
	DistMarker string
}

func (s Schema) RoleOf(column string) Role {
	switch {
	case column == s.LabelColumn:
		return RoleLabel
	case column == s.ValueColumn:
		return RoleValue
	case s.RunDurationColumn == "" || column == s.RunDurationColumn:
		return RoleRunDuration
	default:
		return RoleIgnored
	}
}

func (s Schema) String() string {
	return fmt.Sprintf("Schema[label=%q, value=%q, run-duration=%q, dist-marker=%q]", s.LabelColumn, s.ValueColumn, s.RunDurationColumn, s.DistMarker)
}
