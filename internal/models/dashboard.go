package models

// ChartData is a pair of parallel sequences for categorical or time-series
// dashboard charts: Labels[i] corresponds to Counts[i].
type ChartData struct {
	Labels []string `json:"labels"`
	Counts []int64  `json:"counts"`
}
