package order

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/menu"
)

// Customer is the contact captured just before finalization. Both fields may
// be empty for a walk-in customer.
type Customer struct {
	Name   string `json:"name"`
	Mobile string `json:"mobile"`
}

// LineItem is one priced entry in a cart. The coffee, milk, and add-on
// options are copies taken at selection time; later catalog edits never
// change an existing line item. TotalPrice is derived and recomputed in full
// whenever quantity or composition changes.
type LineItem struct {
	ID         uuid.UUID       `json:"id"`
	Coffee     menu.Option     `json:"coffee"`
	Milk       *menu.Option    `json:"milk,omitempty"`
	AddOns     []menu.Option   `json:"addOns"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// clone returns a deep copy safe to hand across the cart boundary.
func (li LineItem) clone() LineItem {
	out := li
	if li.Milk != nil {
		milk := *li.Milk
		out.Milk = &milk
	}
	out.AddOns = append([]menu.Option(nil), li.AddOns...)
	return out
}
