package order

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/common"
	"github.com/coffai/pos/internal/discount"
	"github.com/coffai/pos/internal/events"
	"github.com/coffai/pos/internal/menu"
	"github.com/coffai/pos/internal/obs"
)

// AddItemInput carries a selection to price into a new line item.
type AddItemInput struct {
	CoffeeID uuid.UUID   `json:"coffeeId"`
	MilkID   *uuid.UUID  `json:"milkId"`
	AddOnIDs []uuid.UUID `json:"addOnIds"`
	Quantity int         `json:"quantity"`
}

// DiscountPreview reports the rule the resolver would apply to the cart as it
// stands, with the resulting amount.
type DiscountPreview struct {
	Rule   discount.Rule   `json:"rule"`
	Amount decimal.Decimal `json:"amount"`
}

// View is the cart state returned to callers: items plus derived totals and
// the current discount resolution.
type View struct {
	ID            uuid.UUID        `json:"id"`
	Items         []LineItem       `json:"items"`
	Customer      Customer         `json:"customer"`
	Subtotal      decimal.Decimal  `json:"subtotal"`
	TotalQuantity int              `json:"totalQuantity"`
	Discount      *DiscountPreview `json:"discount,omitempty"`
	Total         decimal.Decimal  `json:"total"`
}

// Service encapsulates cart session operations. Menu options are resolved and
// copied by value when a line is added, so catalog edits never reach back
// into existing lines.
type Service struct {
	Store  *Store
	Menu   *menu.Store
	Rules  *discount.Store
	Events *events.Bus
	NewID  func() uuid.UUID
	Now    func() time.Time
}

func (s *Service) newID() uuid.UUID {
	if s != nil && s.NewID != nil {
		return s.NewID()
	}
	return uuid.New()
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateCart opens a new, empty order session.
func (s *Service) CreateCart(ctx context.Context) (View, error) {
	if s == nil || s.Store == nil {
		return View{}, common.NewAppError("INTERNAL", "cart service not configured", http.StatusInternalServerError, nil)
	}
	cart := s.Store.Create(s.newID(), s.now())
	if s.Events != nil {
		_, _ = s.Events.Emit(ctx, events.TopicCartCreated, cart.ID, map[string]any{
			"cartId": cart.ID.String(),
		})
	}
	return s.view(cart), nil
}

// GetCart returns the cart's current state with totals and discount preview.
func (s *Service) GetCart(_ context.Context, id uuid.UUID) (View, error) {
	cart, err := s.Store.View(id)
	if err != nil {
		return View{}, cartError(err)
	}
	return s.view(cart), nil
}

// AddItem resolves the selection against the catalog, prices it, and appends
// a new line. A missing coffee base is a hard error; milk is optional;
// add-ons are de-duplicated by id.
func (s *Service) AddItem(_ context.Context, cartID uuid.UUID, input AddItemInput) (View, error) {
	coffee, ok := s.Menu.Get(input.CoffeeID)
	if !ok || coffee.Kind != menu.KindCoffee {
		return View{}, common.NewAppError("INVALID_SELECTION", "a coffee base is required", http.StatusUnprocessableEntity, nil)
	}
	var milk *menu.Option
	if input.MilkID != nil {
		opt, ok := s.Menu.Get(*input.MilkID)
		if !ok || opt.Kind != menu.KindMilk {
			return View{}, common.NewAppError("VALIDATION", "milk option not found", http.StatusBadRequest, nil)
		}
		milk = &opt
	}
	seen := make(map[uuid.UUID]struct{}, len(input.AddOnIDs))
	addOns := make([]menu.Option, 0, len(input.AddOnIDs))
	for _, id := range input.AddOnIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		opt, ok := s.Menu.Get(id)
		if !ok || opt.Kind != menu.KindAddOn {
			return View{}, common.NewAppError("VALIDATION", "add-on option not found", http.StatusBadRequest, nil)
		}
		addOns = append(addOns, opt)
	}
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}
	item := LineItem{
		ID:       s.newID(),
		Coffee:   coffee,
		Milk:     milk,
		AddOns:   addOns,
		Quantity: quantity,
	}
	item.reprice()

	cart, err := s.Store.Mutate(cartID, func(c *Cart) error {
		c.AddItem(item)
		return nil
	})
	if err != nil {
		return View{}, cartError(err)
	}
	if obs.CartMutationTotal != nil {
		obs.CartMutationTotal.WithLabelValues("add_item").Inc()
	}
	return s.view(cart), nil
}

// UpdateQuantity changes a line's quantity, clamping values below 1 to 1.
// An unknown item id leaves the cart untouched.
func (s *Service) UpdateQuantity(_ context.Context, cartID, itemID uuid.UUID, quantity int) (View, error) {
	cart, err := s.Store.Mutate(cartID, func(c *Cart) error {
		c.UpdateQuantity(itemID, quantity)
		return nil
	})
	if err != nil {
		return View{}, cartError(err)
	}
	if obs.CartMutationTotal != nil {
		obs.CartMutationTotal.WithLabelValues("update_quantity").Inc()
	}
	return s.view(cart), nil
}

// RemoveItem deletes a line. Removing an unknown id is a no-op, not an error.
func (s *Service) RemoveItem(_ context.Context, cartID, itemID uuid.UUID) (View, error) {
	cart, err := s.Store.Mutate(cartID, func(c *Cart) error {
		c.RemoveItem(itemID)
		return nil
	})
	if err != nil {
		return View{}, cartError(err)
	}
	if obs.CartMutationTotal != nil {
		obs.CartMutationTotal.WithLabelValues("remove_item").Inc()
	}
	return s.view(cart), nil
}

// Clear resets the cart for a new order.
func (s *Service) Clear(_ context.Context, cartID uuid.UUID) (View, error) {
	cart, err := s.Store.Mutate(cartID, func(c *Cart) error {
		c.Clear()
		return nil
	})
	if err != nil {
		return View{}, cartError(err)
	}
	if obs.CartMutationTotal != nil {
		obs.CartMutationTotal.WithLabelValues("clear").Inc()
	}
	return s.view(cart), nil
}

func (s *Service) view(cart Cart) View {
	subtotal := cart.Subtotal()
	totalQuantity := cart.TotalQuantity()
	v := View{
		ID:            cart.ID,
		Items:         cart.Items,
		Customer:      cart.Customer,
		Subtotal:      subtotal,
		TotalQuantity: totalQuantity,
		Total:         subtotal,
	}
	if s.Rules != nil {
		if rule := discount.Applicable(s.Rules.List(), totalQuantity); rule != nil {
			amount := discount.Amount(subtotal, rule)
			v.Discount = &DiscountPreview{Rule: *rule, Amount: amount}
			v.Total = subtotal.Sub(amount)
		}
	}
	return v
}

func cartError(err error) error {
	if err == ErrCartNotFound {
		return common.NewAppError("NOT_FOUND", "cart not found", http.StatusNotFound, err)
	}
	return err
}
