package discount

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Rule grants a percentage discount once an order reaches a minimum number of
// units. Rules are owned by catalog management; the resolver only reads them.
type Rule struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	MinQuantity     int             `json:"minQuantity"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	IsActive        bool            `json:"isActive"`
}
