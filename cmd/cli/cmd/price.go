// Package cmd - price command
package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fertcost/core/fertilizer"
	"fertcost/core/pricing"
	"fertcost/internal/config"
)

var (
	priceRegion string
	listCatalog bool
)

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price [name]",
	Short: "Look up the market price for a fertilizer",
	Long: `Look up the price per kg for a fertilizer name. Names are normalized
(aliases like "muriate of potash" resolve to MOP) before lookup.

Without a configured market source every lookup reports unavailable;
pass --reference-prices to quote indicative catalog prices instead.

Examples:
  fertcost price urea
  fertcost price "muriate of potash" --region punjab --reference-prices
  fertcost price --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVarP(&priceRegion, "region", "r", "", "region for the lookup")
	priceCmd.Flags().BoolVar(&referencePrices, "reference-prices", false, "quote from catalog reference prices")
	priceCmd.Flags().BoolVar(&listCatalog, "list", false, "list known fertilizer products")
}

func runPrice(cmd *cobra.Command, args []string) error {
	if listCatalog {
		catalog := fertilizer.DefaultCatalog()
		for _, name := range catalog.Names() {
			p, _ := catalog.Get(name)
			if p.NPK != "" {
				fmt.Printf("%-26s %-13s NPK %s\n", p.Name, p.Category, p.NPK)
			} else {
				fmt.Printf("%-26s %-13s\n", p.Name, p.Category)
			}
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("fertilizer name is required (or use --list)")
	}
	name := args[0]

	quote, ok := buildPriceService().GetPrice(context.Background(), name, priceRegion)
	if !ok {
		fmt.Printf("%s: price unavailable\n", fertilizer.Normalize(name))
		return nil
	}
	fmt.Printf("%s: %s %s/kg (source: %s)\n", quote.Name, quote.PricePerKg.String(), quote.Currency, quote.Source)
	return nil
}

// buildPriceService assembles the price lookup from configuration.
// The default source reports everything unavailable; a real market
// feed plugs in as a pricing.Source.
func buildPriceService() *pricing.Service {
	cfg := config.Get()

	var source pricing.Source = pricing.UnavailableSource{}
	if referencePrices {
		source = pricing.NewStaticSource(fertilizer.DefaultCatalog(), cfg.Pricing.Currency)
	}
	if cfg.Pricing.CacheEnabled {
		source = pricing.NewCachingSource(source, time.Duration(cfg.Pricing.CacheTTLSeconds)*time.Second)
	}
	return pricing.NewService(source, cfg.Pricing.DefaultRegion)
}
