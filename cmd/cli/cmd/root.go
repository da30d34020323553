// Package cmd provides the CLI commands for fertcost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fertcost/internal/config"
	"fertcost/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fertcost",
	Short: "Generate fertilizer recommendation reports with price lookups",
	Long: `fertcost turns soil/crop data and ML fertilizer predictions into a
structured, farmer-facing recommendation report, optionally priced
against a market data source.

Examples:
  fertcost recommend --profile field.hcl --predictions pred.json --confidences conf.json
  fertcost recommend --inputs inputs.json --predictions pred.json --format json
  fertcost price "muriate of potash" --region punjab`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fertcost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fertcost version 0.1.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("model:           %s\n", cfg.LLM.Model)
		fmt.Printf("temperature:     %g\n", cfg.LLM.Temperature)
		fmt.Printf("candidate_count: %d\n", cfg.LLM.CandidateCount)
		fmt.Printf("timeout:         %s\n", cfg.LLM.Timeout())
		fmt.Printf("api_key_env:     %s\n", cfg.LLM.APIKeyEnv)
		fmt.Printf("currency:        %s\n", cfg.Pricing.Currency)
		return nil
	},
}
