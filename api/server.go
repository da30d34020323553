// Package api - thin HTTP layer over the report and pricing services.
// The API is only responsible for input ingestion, service invocation,
// and output serialization; it performs no pipeline logic of its own.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"fertcost/core/pricing"
	"fertcost/core/report"
	"fertcost/internal/logging"
)

// Server is the API server
type Server struct {
	mux     *http.ServeMux
	version string
	reports *report.Service
	prices  *pricing.Service
}

// NewServer creates a new API server over the given services
func NewServer(version string, reports *report.Service, prices *pricing.Service) *Server {
	s := &Server{
		mux:     http.NewServeMux(),
		version: version,
		reports: reports,
		prices:  prices,
	}
	s.registerRoutes()
	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST /recommend", s.handleRecommend)
	s.mux.HandleFunc("GET /price", s.handlePrice)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleRecommend handles POST /recommend. The response body is the
// recommendation report itself; degenerate raw/error shapes pass
// through with status 200 because a reportable value is the contract.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := validateRecommendRequest(&req); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	result := s.reports.Generate(r.Context(), req.Inputs, req.Predictions, req.Confidences)

	logging.Info("recommendation served",
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	s.writeJSON(w, result, http.StatusOK)
}

// handlePrice handles GET /price?name=...&region=...
func (s *Server) handlePrice(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		s.writeError(w, "VALIDATION_ERROR", "name is required", http.StatusBadRequest)
		return
	}
	region := r.URL.Query().Get("region")

	quote, ok := s.prices.GetPrice(r.Context(), name, region)
	resp := PriceResponse{Name: name, Region: region, Available: ok}
	if ok {
		resp.Name = quote.Name
		resp.Region = quote.Region
		resp.PricePerKg = quote.PricePerKg.String()
		resp.Currency = quote.Currency
		resp.Source = quote.Source
	}
	s.writeJSON(w, resp, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, HealthResponse{Status: "ok", Version: s.version}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"version": s.version}, http.StatusOK)
}

func validateRecommendRequest(req *RecommendRequest) error {
	if req.Inputs == nil {
		return fmt.Errorf("inputs is required")
	}
	if req.Predictions == nil {
		return fmt.Errorf("predictions is required")
	}
	for category, confidence := range req.Confidences {
		if confidence < 0 || confidence > 1 {
			return fmt.Errorf("confidence for %q must be in [0,1], got %v", category, confidence)
		}
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, ErrorResponse{Code: code, Message: message}, status)
}
