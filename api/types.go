package api

// RecommendRequest is the body of POST /recommend
type RecommendRequest struct {
	// Inputs are the agronomic base inputs, echoed back in _meta
	Inputs map[string]any `json:"inputs"`

	// Predictions map prediction categories to predicted values
	Predictions map[string]any `json:"predictions"`

	// Confidences map the same categories to probabilities in [0,1]
	Confidences map[string]float64 `json:"confidences"`
}

// PriceResponse is the body of GET /price
type PriceResponse struct {
	// Name is the canonical fertilizer name that was looked up
	Name string `json:"name"`

	// Region is the region the lookup applied to, if any
	Region string `json:"region,omitempty"`

	// Available reports whether a quote exists
	Available bool `json:"available"`

	// PricePerKg is the quoted price, present only when available
	PricePerKg string `json:"price_per_kg,omitempty"`

	// Currency is the quote currency, present only when available
	Currency string `json:"currency,omitempty"`

	// Source identifies the quoting source, present only when available
	Source string `json:"source,omitempty"`
}

// ErrorResponse is the body of any non-2xx response
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
