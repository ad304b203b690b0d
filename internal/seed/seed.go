package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/discount"
	"github.com/coffai/pos/internal/menu"
	"github.com/coffai/pos/internal/money"
)

// OptionSpec describes one menu option to seed.
type OptionSpec struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// RuleSpec describes one discount rule to seed.
type RuleSpec struct {
	Name            string `json:"name"`
	MinQuantity     int    `json:"minQuantity"`
	DiscountPercent string `json:"discountPercent"`
	IsActive        bool   `json:"isActive"`
}

// Catalog is the full startup data set for the shop.
type Catalog struct {
	Coffees   []OptionSpec `json:"coffees"`
	Milks     []OptionSpec `json:"milks"`
	AddOns    []OptionSpec `json:"addons"`
	Discounts []RuleSpec   `json:"discounts"`
}

// Default returns the built-in CoffAI catalog.
func Default() Catalog {
	return Catalog{
		Coffees: []OptionSpec{
			{Name: "Espresso", Price: "3.50"},
			{Name: "Americano", Price: "4.00"},
			{Name: "Latte", Price: "5.50"},
			{Name: "Cappuccino", Price: "5.00"},
			{Name: "Macchiato", Price: "5.75"},
			{Name: "Mocha", Price: "6.00"},
			{Name: "Flat White", Price: "5.25"},
		},
		Milks: []OptionSpec{
			{Name: "Whole Milk", Price: "0.50"},
			{Name: "Skimmed Milk", Price: "0.50"},
			{Name: "Oat Milk", Price: "0.75"},
			{Name: "Soy Milk", Price: "0.65"},
			{Name: "Almond Milk", Price: "0.70"},
			{Name: "Coconut Milk", Price: "0.80"},
		},
		AddOns: []OptionSpec{
			{Name: "Extra Shot", Price: "1.00"},
			{Name: "Sugar", Price: "0.00"},
			{Name: "Vanilla Syrup", Price: "0.75"},
			{Name: "Caramel Syrup", Price: "0.75"},
			{Name: "Chocolate Topping", Price: "0.50"},
			{Name: "Whipped Cream", Price: "0.60"},
			{Name: "Cinnamon", Price: "0.25"},
			{Name: "Extra Hot", Price: "0.00"},
		},
		Discounts: []RuleSpec{
			{Name: "Bulk Order (5+ items)", MinQuantity: 5, DiscountPercent: "10", IsActive: true},
			{Name: "Large Order (10+ items)", MinQuantity: 10, DiscountPercent: "15", IsActive: true},
			{Name: "Party Pack (20+ items)", MinQuantity: 20, DiscountPercent: "20", IsActive: true},
		},
	}
}

// FromFile loads a catalog from a JSON file.
func FromFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog file: %w", err)
	}
	return c, nil
}

// Apply writes the catalog into the given stores. IDs are generated with newID.
func Apply(c Catalog, options *menu.Store, rules *discount.Store, newID func() uuid.UUID) error {
	if newID == nil {
		newID = uuid.New
	}
	for _, group := range []struct {
		kind  menu.Kind
		specs []OptionSpec
	}{
		{menu.KindCoffee, c.Coffees},
		{menu.KindMilk, c.Milks},
		{menu.KindAddOn, c.AddOns},
	} {
		for _, spec := range group.specs {
			price, err := money.Parse(spec.Price)
			if err != nil {
				return fmt.Errorf("seed %s %q: %w", group.kind, spec.Name, err)
			}
			if price.IsNegative() {
				return fmt.Errorf("seed %s %q: price must not be negative", group.kind, spec.Name)
			}
			options.Put(menu.Option{
				ID:    newID(),
				Kind:  group.kind,
				Name:  spec.Name,
				Price: price,
			})
		}
	}
	for _, spec := range c.Discounts {
		percent, err := decimal.NewFromString(spec.DiscountPercent)
		if err != nil {
			return fmt.Errorf("seed discount %q: %w", spec.Name, err)
		}
		// The resolver trusts stored rules, so a seed file gets the same
		// checks rule creation over the API enforces.
		if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("seed discount %q: discountPercent must be between 0 and 100", spec.Name)
		}
		if spec.MinQuantity < 1 {
			return fmt.Errorf("seed discount %q: minQuantity must be at least 1", spec.Name)
		}
		rules.Put(discount.Rule{
			ID:              newID(),
			Name:            spec.Name,
			MinQuantity:     spec.MinQuantity,
			DiscountPercent: percent,
			IsActive:        spec.IsActive,
		})
	}
	return nil
}
