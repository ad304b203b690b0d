package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/discount"
	"github.com/coffai/pos/internal/order"
)

// Bill is the immutable record produced by finalizing a cart. Every field is
// a snapshot: the items are deep copies, the applied rule is copied by value,
// and no later cart or catalog mutation ever changes a stored bill.
type Bill struct {
	ID              uuid.UUID        `json:"id"`
	CartID          uuid.UUID        `json:"cartId"`
	Customer        order.Customer   `json:"customer"`
	Items           []order.LineItem `json:"items"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DiscountAmount  decimal.Decimal  `json:"discountAmount"`
	AppliedDiscount *discount.Rule   `json:"appliedDiscount,omitempty"`
	Total           decimal.Decimal  `json:"total"`
	Date            time.Time        `json:"date"`
	AISummary       string           `json:"aiSummary"`
}
