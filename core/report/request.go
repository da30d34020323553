// Package report implements the recommendation report pipeline: it
// builds a generation request from agronomic inputs and model
// predictions, sends it to the generative-model service, parses the
// response into the expected schema, and degrades to raw-text or
// error-shaped reports instead of failing.
package report

import (
	"encoding/json"
	"fmt"
	"math"
)

// PredictionPrimaryFertilizer is the prediction category whose
// confidence is surfaced in the prompt.
const PredictionPrimaryFertilizer = "Primary_Fertilizer"

const systemPrompt = "You are an agronomy assistant. Convert soil/crop + ML outputs into a clear,\n" +
	"practical fertilizer recommendation. Return only JSON and keep values realistic.\n" +
	"When estimating amounts and costs, scale by field size."

// Request is the fully-assembled generation request: instruction text,
// a declarative output-schema description, and the context payload.
// It is immutable once built and fully determined by its inputs.
type Request struct {
	system  string
	payload requestPayload
}

type requestPayload struct {
	Inputs                   map[string]any `json:"inputs"`
	Predictions              map[string]any `json:"predictions"`
	PrimaryConfidencePercent *int           `json:"primary_confidence_percent"`
	FormatRequirements       map[string]any `json:"format_requirements"`
	Notes                    string         `json:"notes"`
}

// BuildRequest assembles a generation request from base inputs, model
// predictions, and per-category confidences. The primary confidence is
// converted to a whole percentage, rounding halves away from zero; it
// is nil when the Primary_Fertilizer category is absent.
func BuildRequest(inputs, predictions map[string]any, confidences map[string]float64) Request {
	var primaryPct *int
	if conf, ok := confidences[PredictionPrimaryFertilizer]; ok {
		pct := int(math.Round(conf * 100))
		primaryPct = &pct
	}

	sowingDate := inputs["Sowing_Date"]
	fieldSize := inputs["Field_Size"]
	fieldUnit, ok := inputs["Field_Unit"].(string)
	if !ok || fieldUnit == "" {
		fieldUnit = "hectares"
	}

	notes := "- Use predicted fertilizers/statuses as anchors.\n" +
		"- If pH_Amendment is 'None', reflect that.\n" +
		fmt.Sprintf("- Sowing date: %v, field size: %v %s.\n", sowingDate, fieldSize, fieldUnit) +
		"- Provide concise, farmer-friendly text."

	return Request{
		system: systemPrompt,
		payload: requestPayload{
			Inputs:                   inputs,
			Predictions:              predictions,
			PrimaryConfidencePercent: primaryPct,
			FormatRequirements:       formatRequirements(),
			Notes:                    notes,
		},
	}
}

// PrimaryConfidencePercent returns the rounded primary confidence, or
// nil when it was absent from the confidences.
func (r Request) PrimaryConfidencePercent() *int {
	return r.payload.PrimaryConfidencePercent
}

// Prompt renders the full prompt text sent to the model. Map keys are
// marshaled in sorted order, so rendering is deterministic.
func (r Request) Prompt() string {
	payload, err := json.Marshal(r.payload)
	if err != nil {
		// Inputs are plain JSON-compatible maps; marshaling them
		// cannot fail short of caller-supplied exotic values.
		payload = []byte(`{}`)
	}
	return r.system + "\n\n" +
		"Generate a structured agronomy report as JSON (no extra text).\n" +
		string(payload)
}

// formatRequirements declares the expected output shape, field by
// field. It steers the model; enforcement is the consumer's concern.
func formatRequirements() map[string]any {
	fertilizerDetail := object(map[string]any{
		"name":               prop("string"),
		"amount_kg":          prop("number"),
		"reason":             prop("string"),
		"application_method": prop("string"),
	})

	return object(map[string]any{
		"ml_model_prediction": object(map[string]any{
			"name":               prop("string"),
			"confidence_percent": prop("number"),
			"npk":                prop("string"),
		}),
		"soil_condition": object(map[string]any{
			"ph_status":             prop("string"),
			"moisture_status":       prop("string"),
			"nutrient_deficiencies": array(prop("string")),
			"recommendations":       array(prop("string")),
		}),
		"primary_fertilizer":   fertilizerDetail,
		"secondary_fertilizer": fertilizerDetail,
		"organic_alternatives": array(object(map[string]any{
			"name":      prop("string"),
			"amount_kg": prop("number"),
			"reason":    prop("string"),
			"timing":    prop("string"),
		})),
		"application_timing": object(map[string]any{
			"primary":   prop("string"),
			"secondary": prop("string"),
			"organics":  prop("string"),
		}),
		"cost_estimate": object(map[string]any{
			"primary":   prop("number"),
			"secondary": prop("number"),
			"organics":  prop("number"),
			"total":     prop("number"),
			"notes":     prop("string"),
		}),
	})
}

func prop(t string) map[string]any {
	return map[string]any{"type": t}
}

func object(properties map[string]any) map[string]any {
	return map[string]any{"type": "object", "properties": properties}
}

func array(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}
