package slotcfg

// ManifestEntry is the caller-declared association of one uploaded file with
// a slot key.
type ManifestEntry struct {
	Slot    string `json:"slot"`
	File    string `json:"file"`
	Consent *bool  `json:"consent,omitempty"`
}

// ImageMetadata carries the per-file technical facts the validator judges.
// QualityScore is nil until the scorer has run (or the caller supplied one).
type ImageMetadata struct {
	Filename      string   `json:"filename"`
	Slot          string   `json:"slot"`
	FileSizeBytes int64    `json:"file_size_bytes"`
	Width         int      `json:"width"`
	Height        int      `json:"height"`
	QualityScore  *float64 `json:"quality_score,omitempty"`
}

// CostEstimate summarizes the projected spend for the selected shots.
type CostEstimate struct {
	TotalShots            int     `json:"total_shots"`
	EstimatedCostUSD      float64 `json:"estimated_cost_usd"`
	ProcessingTimeMinutes int     `json:"processing_time_minutes"`
}

// ValidationSummary reports coverage and the generation selection.
type ValidationSummary struct {
	TotalUploaded         int          `json:"total_uploaded"`
	RequiredFulfilled     int          `json:"required_fulfilled"`
	RequiredTotal         int          `json:"required_total"`
	SelectedForGeneration []string     `json:"selected_for_generation"`
	CostEstimate          CostEstimate `json:"cost_estimate"`
}

// ValidationResult is the sole output of a validation run. Errors block the
// request; warnings never do.
type ValidationResult struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []string          `json:"errors"`
	Warnings []string          `json:"warnings"`
	Summary  ValidationSummary `json:"summary"`
}
