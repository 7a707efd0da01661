package model

type SortNumbersParams struct {
	Values    []float64 `json:"values"`
	// Ascending defaults to true when omitted.
	Ascending *bool     `json:"ascending"`
}

type SortStringsParams struct {
	Values    []string `json:"values"`
	// Ascending defaults to true when omitted.
	Ascending *bool    `json:"ascending"`
}

type SortObjectsParams struct {
	Objects   []map[string]any `json:"objects"`
	Column    string           `json:"column"`
	// Ascending defaults to true when omitted.
	Ascending *bool            `json:"ascending"`
}

type BatchJob struct {
	Values    []float64 `json:"values"`
	Direction string    `json:"direction"`
}

type BatchParams struct {
	Jobs []BatchJob `json:"jobs"`
}

// IsAscending resolves an optional direction flag. Every request's Ascending
// field defaults to true when omitted.
func IsAscending(flag *bool) bool {
	return flag == nil || *flag
}
