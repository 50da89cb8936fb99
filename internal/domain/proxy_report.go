package domain

import "encoding/json"

// DataFunction is the record a proxy keeps for every worker ("data function") it launched.
// Durations are in nanoseconds.
type DataFunction struct {
	FinishedJobCount int64 `json:"finished_job_count"`
	Duration         int64 `json:"duration"`
	StartDuration    int64 `json:"start_duration"`
}

// Utilization returns the jobs completed per second of lifetime. A worker that reports no lifetime has
// a utilization of zero.
func (df *DataFunction) Utilization() float64 {
	if df.Duration <= 0 {
		return 0
	}
	return float64(df.FinishedJobCount) / (float64(df.Duration) / NanosecondsPerSecond)
}

// HistoryEntry is one sample of the proxy's view of the cluster.
type HistoryEntry struct {
	Timestamp               int64 `json:"timestamp"`
	WorkerCount             int64 `json:"worker_count"`
	NumberOfIncomingRequest int64 `json:"number_of_incoming_request"`
}

// ProxyReport is the JSON document a proxy dumps at the end of a benchmark run.
type ProxyReport struct {
	TotalDuration int64           `json:"total_duration"` // Lifetime of the proxy in nanoseconds.
	StartedDF     int64           `json:"started_df"`
	History       []*HistoryEntry `json:"history,omitempty"` // Absent when the proxy ran without history sampling.
	DF            []*DataFunction `json:"df"`

	Path string `json:"-"` // File the report was loaded from.
}

func (r *ProxyReport) String() string {
	out, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}

	return string(out)
}
