package task

import "time"

// Metadata carries observability data for one execution. Duration is
// measured from pipeline entry to exit on every path, success or failure.
type Metadata struct {
	Duration time.Duration `json:"duration"`

	// TokensUsed and CostUSD are set only on success when the task
	// reported usage.
	TokensUsed int     `json:"tokens_used,omitempty"`
	CostUSD    float64 `json:"cost_usd,omitempty"`

	// Model is the effective model id after config merging.
	Model string `json:"model,omitempty"`

	// Retries is how many retry attempts the execution consumed.
	Retries int `json:"retries,omitempty"`

	// CostTrackingFailed marks the cost figure untrustworthy: the task
	// succeeded but its model couldn't be priced. Distinct from a
	// legitimately free call, which reports zero with the flag unset.
	CostTrackingFailed bool `json:"cost_tracking_failed,omitempty"`
}

// Result is the uniform envelope returned to every caller. Success implies
// Data is present and passed output validation; failure implies Data is nil
// and Error carries the human-readable cause.
type Result struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data,omitempty"`
	Error    string   `json:"error,omitempty"`
	Metadata Metadata `json:"metadata"`
}
