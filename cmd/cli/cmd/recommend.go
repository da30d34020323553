// Package cmd - recommend command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fertcost/adapters/profile"
	"fertcost/core/output"
	"fertcost/core/pricing"
	"fertcost/core/report"
	"fertcost/internal/config"
	"fertcost/internal/llm"
	"fertcost/internal/logging"
)

var (
	inputsFile      string
	profileFile     string
	predictionsFile string
	confidencesFile string
	outputFormat    string
	withCosts       bool
	referencePrices bool
	region          string
)

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate a fertilizer recommendation report",
	Long: `Generate a structured recommendation report from agronomic inputs
and model predictions.

Base inputs come from either a JSON inputs file or a field profile
(.hcl or .json). Predictions and confidences are JSON files mapping
prediction categories to values and probabilities.

Examples:
  fertcost recommend --profile field.hcl --predictions pred.json --confidences conf.json
  fertcost recommend --inputs inputs.json --predictions pred.json --format json
  fertcost recommend --profile field.hcl --predictions pred.json --costs --reference-prices`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVarP(&inputsFile, "inputs", "i", "", "JSON file with base inputs")
	recommendCmd.Flags().StringVarP(&profileFile, "profile", "p", "", "field profile file (.hcl or .json)")
	recommendCmd.Flags().StringVar(&predictionsFile, "predictions", "", "JSON file with model predictions (required)")
	recommendCmd.Flags().StringVar(&confidencesFile, "confidences", "", "JSON file with prediction confidences")
	recommendCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	recommendCmd.Flags().BoolVar(&withCosts, "costs", false, "append a cost summary priced via the market source")
	recommendCmd.Flags().BoolVar(&referencePrices, "reference-prices", false, "price the cost summary from catalog reference prices")
	recommendCmd.Flags().StringVarP(&region, "region", "r", "", "region for price lookups")

	_ = recommendCmd.MarkFlagRequired("predictions")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	inputs, err := loadInputs()
	if err != nil {
		return err
	}

	var predictions map[string]any
	if err := readJSONFile(predictionsFile, &predictions); err != nil {
		return fmt.Errorf("load predictions: %w", err)
	}

	confidences := map[string]float64{}
	if confidencesFile != "" {
		if err := readJSONFile(confidencesFile, &confidences); err != nil {
			return fmt.Errorf("load confidences: %w", err)
		}
	}

	factory := llm.GeminiFactory(cfg.LLM.APIKeyEnv, cfg.LLM.Model)
	service := report.NewService(factory, llm.Options{
		Temperature:    float32(cfg.LLM.Temperature),
		CandidateCount: int32(cfg.LLM.CandidateCount),
	}, cfg.LLM.Timeout())

	logging.Info("generating recommendation report")
	result := service.Generate(ctx, inputs, predictions, confidences)

	format := outputFormat
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	formatter := output.New(format)
	if err := formatter.Render(os.Stdout, result); err != nil {
		return err
	}

	if withCosts {
		summary := pricing.Summarize(ctx, buildPriceService(), result, region)
		return renderCostSummary(os.Stdout, summary, format)
	}
	return nil
}

func loadInputs() (map[string]any, error) {
	switch {
	case profileFile != "":
		p, err := profile.Load(profileFile)
		if err != nil {
			return nil, fmt.Errorf("load profile: %w", err)
		}
		if region == "" {
			region = p.Field.Region
		}
		return p.Field.BaseInputs(), nil
	case inputsFile != "":
		var inputs map[string]any
		if err := readJSONFile(inputsFile, &inputs); err != nil {
			return nil, fmt.Errorf("load inputs: %w", err)
		}
		return inputs, nil
	default:
		return nil, fmt.Errorf("either --inputs or --profile is required")
	}
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func renderCostSummary(w *os.File, summary pricing.CostSummary, format string) error {
	if format == string(output.FormatJSON) {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintln(w, "\ncost summary:")
	for _, line := range summary.Lines {
		if line.Priced {
			fmt.Fprintf(w, "  %-9s %-26s %8s kg  %10s %s\n",
				line.Role, line.Name, line.AmountKg.String(), line.Cost.StringFixed(2), summary.Currency)
		} else {
			fmt.Fprintf(w, "  %-9s %-26s %8s kg  price unavailable\n",
				line.Role, line.Name, line.AmountKg.String())
		}
	}
	if len(summary.Lines) == 0 {
		fmt.Fprintln(w, "  no priceable recommendations in report")
		return nil
	}
	fmt.Fprintf(w, "  total (priced items): %s %s\n", summary.Total.StringFixed(2), summary.Currency)
	return nil
}
