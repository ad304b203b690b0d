package menu

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind distinguishes the three selectable option flavors.
type Kind string

const (
	KindCoffee Kind = "coffee"
	KindMilk   Kind = "milk"
	KindAddOn  Kind = "addon"
)

// Valid reports whether the kind is one of the known option flavors.
func (k Kind) Valid() bool {
	switch k {
	case KindCoffee, KindMilk, KindAddOn:
		return true
	}
	return false
}

// Option is a priced, named selectable menu entry. Options are immutable once
// created; edits go through remove + re-add in the management flow.
type Option struct {
	ID    uuid.UUID       `json:"id"`
	Kind  Kind            `json:"kind"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
