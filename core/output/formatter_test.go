package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func structuredReport() map[string]any {
	return map[string]any{
		"ml_model_prediction": map[string]any{
			"name":               "MOP",
			"confidence_percent": 87.0,
			"npk":                "0-0-60",
		},
		"soil_condition": map[string]any{
			"ph_status":             "acidic",
			"nutrient_deficiencies": []any{"potassium", "nitrogen"},
		},
		"primary_fertilizer": map[string]any{
			"name":      "MOP",
			"amount_kg": 100.0,
		},
		"organic_alternatives": []any{
			map[string]any{"name": "Compost", "amount_kg": 200.0},
		},
		"_meta": map[string]any{"generated_at": "2026-08-23T10:30:00Z"},
	}
}

// TestNewSelectsFormatter tests format selection with a CLI default
func TestNewSelectsFormatter(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected Format
	}{
		{name: "json", format: "json", expected: FormatJSON},
		{name: "cli", format: "cli", expected: FormatCLI},
		{name: "unknown defaults to cli", format: "html", expected: FormatCLI},
		{name: "empty defaults to cli", format: "", expected: FormatCLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(tt.format).Format(); got != tt.expected {
				t.Errorf("New(%q).Format() = %q, expected %q", tt.format, got, tt.expected)
			}
		})
	}
}

// TestCLIRenderStructuredReport tests the section renderer over a
// schema-shaped report
func TestCLIRenderStructuredReport(t *testing.T) {
	var buf bytes.Buffer
	if err := New("cli").Render(&buf, structuredReport()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"ml_model_prediction:",
		"soil_condition:",
		"primary_fertilizer:",
		"organic_alternatives:",
		"name: MOP",
		"ph_status: acidic",
		"- potassium",
		"amount_kg: 200",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "generated_at") {
		t.Error("_meta must not render as a report section")
	}
}

// TestCLIRenderDegenerateShapes tests raw and error reports render
// distinctly instead of as sections
func TestCLIRenderDegenerateShapes(t *testing.T) {
	tests := []struct {
		name    string
		report  map[string]any
		want    string
		notWant string
	}{
		{
			name:    "error report",
			report:  map[string]any{"error": "failed to generate recommendation: boom", "_meta": map[string]any{}},
			want:    "Report generation failed:\n  failed to generate recommendation: boom",
			notWant: "soil_condition",
		},
		{
			name:    "raw report",
			report:  map[string]any{"raw": "not json at all", "_meta": map[string]any{}},
			want:    "Model returned unstructured output:\nnot json at all",
			notWant: "Report generation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New("cli").Render(&buf, tt.report); err != nil {
				t.Fatalf("Render: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in output, got:\n%s", tt.want, out)
			}
			if strings.Contains(out, tt.notWant) {
				t.Errorf("did not expect %q in output:\n%s", tt.notWant, out)
			}
		})
	}
}

// TestJSONRenderRoundTrips tests the JSON formatter emits the report
// unchanged, degenerate shapes included
func TestJSONRenderRoundTrips(t *testing.T) {
	for _, report := range []map[string]any{
		structuredReport(),
		{"raw": "not json at all"},
		{"error": "failed to generate recommendation: boom"},
	} {
		var buf bytes.Buffer
		if err := New("json").Render(&buf, report); err != nil {
			t.Fatalf("Render: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("output is not valid JSON: %v", err)
		}
		if len(decoded) != len(report) {
			t.Errorf("expected %d top-level keys, got %d", len(report), len(decoded))
		}
		for key := range report {
			if _, ok := decoded[key]; !ok {
				t.Errorf("missing key %q in JSON output", key)
			}
		}
	}
}
