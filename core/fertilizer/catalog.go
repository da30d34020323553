package fertilizer

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Category classifies a product by origin
type Category string

const (
	// CategoryMineral - synthetic mineral fertilizers
	CategoryMineral Category = "mineral"
	// CategoryOrganic - composts, manures, plant and animal residues
	CategoryOrganic Category = "organic"
	// CategoryBio - microbial inoculants
	CategoryBio Category = "biofertilizer"
)

// Product is a catalog entry for a fertilizer product
type Product struct {
	// Name is the canonical product name (agrees with Normalize)
	Name string

	// Category classifies the product
	Category Category

	// NPK is the nominal N-P-K grade, empty when not applicable
	NPK string

	// Unit is the sale unit prices refer to
	Unit string

	// ReferencePrice is an indicative price per unit in INR.
	// It is reference data for offline estimation, not a live quote.
	ReferencePrice decimal.Decimal
}

// Catalog is the authoritative fertilizer product catalog
type Catalog struct {
	entries map[string]Product
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string]Product)}
}

// Register adds a product to the catalog, keyed by canonical name
func (c *Catalog) Register(p Product) {
	c.entries[Normalize(p.Name)] = p
}

// Get looks up a product by name, normalizing first
func (c *Catalog) Get(name string) (Product, bool) {
	p, ok := c.entries[Normalize(name)]
	return p, ok
}

// Names returns all canonical product names, sorted
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of catalog entries
func (c *Catalog) Len() int {
	return len(c.entries)
}

// DefaultCatalog builds the catalog of products the recommendation
// vocabulary knows about. Reference prices are indicative INR per kg.
func DefaultCatalog() *Catalog {
	c := NewCatalog()
	for _, p := range []Product{
		{Name: "Urea", Category: CategoryMineral, NPK: "46-0-0", Unit: "kg", ReferencePrice: decimal.NewFromFloat(6.5)},
		{Name: "DAP", Category: CategoryMineral, NPK: "18-46-0", Unit: "kg", ReferencePrice: decimal.NewFromFloat(27)},
		{Name: "MOP", Category: CategoryMineral, NPK: "0-0-60", Unit: "kg", ReferencePrice: decimal.NewFromFloat(34)},
		{Name: "SOP", Category: CategoryMineral, NPK: "0-0-50", Unit: "kg", ReferencePrice: decimal.NewFromFloat(60)},
		{Name: "Calcium Ammonium Nitrate", Category: CategoryMineral, NPK: "25-0-0", Unit: "kg", ReferencePrice: decimal.NewFromFloat(22)},
		{Name: "Ammonium Sulphate", Category: CategoryMineral, NPK: "21-0-0", Unit: "kg", ReferencePrice: decimal.NewFromFloat(16)},
		{Name: "Vermicompost", Category: CategoryOrganic, Unit: "kg", ReferencePrice: decimal.NewFromFloat(10)},
		{Name: "Neem Cake", Category: CategoryOrganic, Unit: "kg", ReferencePrice: decimal.NewFromFloat(28)},
		{Name: "Bone Meal", Category: CategoryOrganic, Unit: "kg", ReferencePrice: decimal.NewFromFloat(35)},
		{Name: "Compost", Category: CategoryOrganic, Unit: "kg", ReferencePrice: decimal.NewFromFloat(5)},
		{Name: "Poultry manure", Category: CategoryOrganic, Unit: "kg", ReferencePrice: decimal.NewFromFloat(7)},
		{Name: "Wood Ash", Category: CategoryOrganic, Unit: "kg", ReferencePrice: decimal.NewFromFloat(4)},
		{Name: "PSB", Category: CategoryBio, Unit: "kg", ReferencePrice: decimal.NewFromFloat(120)},
		{Name: "Rhizobium", Category: CategoryBio, Unit: "kg", ReferencePrice: decimal.NewFromFloat(150)},
		{Name: "Azospirillum", Category: CategoryBio, Unit: "kg", ReferencePrice: decimal.NewFromFloat(140)},
		{Name: "Azotobacter", Category: CategoryBio, Unit: "kg", ReferencePrice: decimal.NewFromFloat(140)},
	} {
		c.Register(p)
	}
	return c
}
