package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fertcost/core/fertilizer"
	"fertcost/core/pricing"
	"fertcost/core/report"
	"fertcost/internal/llm"
)

type stubClient struct {
	response string
}

func (s stubClient) Name() string { return "stub" }

func (s stubClient) GenerateText(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	return s.response, nil
}

func newTestServer(response string, source pricing.Source) *Server {
	factory := func(ctx context.Context) (llm.Client, error) {
		return stubClient{response: response}, nil
	}
	reports := report.NewService(factory, llm.Options{}, time.Second)
	prices := pricing.NewService(source, "")
	return NewServer("test", reports, prices)
}

func TestHandleRecommend(t *testing.T) {
	server := newTestServer(`{"soil_condition": {"ph_status": "neutral"}}`, pricing.UnavailableSource{})

	body := `{
		"inputs": {"Sowing_Date": "2026-06-15", "Field_Size": 2},
		"predictions": {"Primary_Fertilizer": "MOP"},
		"confidences": {"Primary_Fertilizer": 0.87}
	}`
	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(body))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Contains(t, result, "soil_condition")
	meta, ok := result["_meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"Primary_Fertilizer": "MOP"}, meta["predictions"])
}

func TestHandleRecommendInvalidJSON(t *testing.T) {
	server := newTestServer(`{}`, pricing.UnavailableSource{})

	req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_JSON", resp.Code)
}

func TestHandleRecommendValidation(t *testing.T) {
	server := newTestServer(`{}`, pricing.UnavailableSource{})

	tests := []struct {
		name string
		body string
	}{
		{name: "missing inputs", body: `{"predictions": {}}`},
		{name: "missing predictions", body: `{"inputs": {}}`},
		{name: "confidence out of range", body: `{"inputs": {}, "predictions": {}, "confidences": {"Primary_Fertilizer": 1.5}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/recommend", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePriceUnavailable(t *testing.T) {
	server := newTestServer(`{}`, pricing.UnavailableSource{})

	req := httptest.NewRequest(http.MethodGet, "/price?name=urea", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
	assert.Empty(t, resp.PricePerKg)
}

func TestHandlePriceWithCatalogSource(t *testing.T) {
	source := pricing.NewStaticSource(fertilizer.DefaultCatalog(), "INR")
	server := newTestServer(`{}`, source)

	req := httptest.NewRequest(http.MethodGet, "/price?name=muriate+of+potash&region=punjab", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp PriceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, "MOP", resp.Name)
	assert.Equal(t, "34", resp.PricePerKg)
	assert.Equal(t, "INR", resp.Currency)
}

func TestHandlePriceRequiresName(t *testing.T) {
	server := newTestServer(`{}`, pricing.UnavailableSource{})

	req := httptest.NewRequest(http.MethodGet, "/price", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	server := newTestServer(`{}`, pricing.UnavailableSource{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "test", resp.Version)
}
