package dto

// BatchRunResponse summarizes one scheduled billing invocation. Item failures
// are reported here and never abort the batch, so success stays true as long
// as the due-cycle fetch itself worked.
type BatchRunResponse struct {
	Success    bool     `json:"success"`
	Processed  int      `json:"processed"`
	Completed  int      `json:"completed"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
	DurationMs int64    `json:"duration_ms"`
}
