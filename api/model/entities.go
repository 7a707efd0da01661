package model

type SortNumbersResponse struct {
	Values []float64 `json:"values"`
}

type SortStringsResponse struct {
	Values []string `json:"values"`
}

type SortObjectsResponse struct {
	Objects []map[string]any `json:"objects"`
}

type BatchResponse struct {
	Results [][]float64 `json:"results"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}
