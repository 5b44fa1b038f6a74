package cost

import "fmt"

// ToolMetrics describes the cost and performance characteristics of a single
// tool execution. The agent runtime can use these values to choose between
// tools with overlapping capabilities (for example a paid scraping API versus
// a free local fetch).
type ToolMetrics struct {
	// Amount is the cost value for executing this tool once
	Amount float64 `json:"amount"`

	// Currency is the currency or unit for the cost (e.g., "USD", "credits")
	Currency string `json:"currency,omitempty"`

	// CostDescription provides additional context about the cost
	// (e.g., "per API call", "per search query")
	CostDescription string `json:"cost_description,omitempty"`

	// Accuracy represents the accuracy/reliability score (0.0 to 1.0)
	Accuracy float64 `json:"accuracy,omitempty"`

	// AverageDurationInMillis is the average execution time in milliseconds
	AverageDurationInMillis int64 `json:"average_duration_ms,omitempty"`
}

// String returns a formatted string representation of the metrics.
func (tm ToolMetrics) String() string {
	currency := tm.Currency
	if currency == "" {
		currency = "USD"
	}

	result := fmt.Sprintf("%.6f %s", tm.Amount, currency)
	if tm.CostDescription != "" {
		result = fmt.Sprintf("%s (%s)", result, tm.CostDescription)
	}
	if tm.Accuracy > 0 {
		result = fmt.Sprintf("%s, accuracy %.1f%%", result, tm.Accuracy*100)
	}
	if tm.AverageDurationInMillis > 0 {
		result = fmt.Sprintf("%s, ~%dms", result, tm.AverageDurationInMillis)
	}
	return result
}
