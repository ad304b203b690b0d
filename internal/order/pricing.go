package order

import (
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/menu"
)

// Price computes the extended price for one selection:
// (coffee + milk + sum of add-ons) x quantity. Decimal arithmetic, never
// rounded here; display formatting is the only place amounts are rounded.
func Price(coffee menu.Option, milk *menu.Option, addOns []menu.Option, quantity int) decimal.Decimal {
	unit := coffee.Price
	if milk != nil {
		unit = unit.Add(milk.Price)
	}
	for _, addOn := range addOns {
		unit = unit.Add(addOn.Price)
	}
	return unit.Mul(decimal.NewFromInt(int64(quantity)))
}

// reprice recomputes the line's total from its stored composition. Always a
// full recomputation, never an incremental adjustment.
func (li *LineItem) reprice() {
	li.TotalPrice = Price(li.Coffee, li.Milk, li.AddOns, li.Quantity)
}
