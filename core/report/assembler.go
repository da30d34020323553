package report

import (
	"time"
)

// Assemble attaches the _meta block to a parsed or error-shaped report:
// the assembly timestamp (ISO-8601 UTC with an explicit Z suffix) and
// verbatim copies of the caller's inputs, predictions, and confidences.
// No other field is touched. Pure bookkeeping; it cannot fail.
func Assemble(data, inputs, predictions map[string]any, confidences map[string]float64, at time.Time) map[string]any {
	if data == nil {
		data = make(map[string]any)
	}
	data["_meta"] = map[string]any{
		"generated_at": at.UTC().Format(time.RFC3339),
		"inputs":       inputs,
		"predictions":  predictions,
		"confidences":  confidences,
	}
	return data
}
