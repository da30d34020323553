// Package output renders recommendation reports for humans and
// machines. Degenerate report shapes (raw-text and error fallbacks)
// render distinctly instead of pretending to be structured.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes the report
	Render(w io.Writer, report map[string]any) error
}

// New returns the formatter for a format name, defaulting to CLI
func New(format string) Formatter {
	switch Format(format) {
	case FormatJSON:
		return jsonFormatter{}
	default:
		return cliFormatter{}
	}
}

type jsonFormatter struct{}

func (jsonFormatter) Format() Format { return FormatJSON }

func (jsonFormatter) Render(w io.Writer, report map[string]any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

type cliFormatter struct{}

func (cliFormatter) Format() Format { return FormatCLI }

func (cliFormatter) Render(w io.Writer, report map[string]any) error {
	if msg, ok := report["error"].(string); ok {
		_, err := fmt.Fprintf(w, "Report generation failed:\n  %s\n", msg)
		return err
	}
	if raw, ok := report["raw"].(string); ok {
		_, err := fmt.Fprintf(w, "Model returned unstructured output:\n%s\n", raw)
		return err
	}

	for _, section := range []string{
		"ml_model_prediction",
		"soil_condition",
		"primary_fertilizer",
		"secondary_fertilizer",
		"organic_alternatives",
		"application_timing",
		"cost_estimate",
	} {
		value, ok := report[section]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:\n", section); err != nil {
			return err
		}
		if err := renderValue(w, value, "  "); err != nil {
			return err
		}
	}
	return nil
}

func renderValue(w io.Writer, value any, indent string) error {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch child := v[k].(type) {
			case map[string]any, []any:
				if _, err := fmt.Fprintf(w, "%s%s:\n", indent, k); err != nil {
					return err
				}
				if err := renderValue(w, child, indent+"  "); err != nil {
					return err
				}
			default:
				if _, err := fmt.Fprintf(w, "%s%s: %v\n", indent, k, child); err != nil {
					return err
				}
			}
		}
	case []any:
		for _, item := range v {
			switch item.(type) {
			case map[string]any, []any:
				if _, err := fmt.Fprintf(w, "%s-\n", indent); err != nil {
					return err
				}
				if err := renderValue(w, item, indent+"  "); err != nil {
					return err
				}
			default:
				if _, err := fmt.Fprintf(w, "%s- %v\n", indent, item); err != nil {
					return err
				}
			}
		}
	default:
		if _, err := fmt.Fprintf(w, "%s%v\n", indent, v); err != nil {
			return err
		}
	}
	return nil
}
