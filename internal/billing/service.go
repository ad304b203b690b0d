package billing

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/coffai/pos/internal/common"
	"github.com/coffai/pos/internal/discount"
	"github.com/coffai/pos/internal/events"
	"github.com/coffai/pos/internal/money"
	"github.com/coffai/pos/internal/obs"
	"github.com/coffai/pos/internal/order"
)

// Service finalizes carts into immutable bills. Finalize does not clear the
// cart: computing a bill and resetting for the next order are separate
// actions, so the same cart state can be finalized as a dry run.
type Service struct {
	Carts  *order.Store
	Rules  *discount.Store
	Bills  *Store
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

// Finalize snapshots the cart, resolves the discount, and produces the bill.
// An empty cart finalizes to a zero-total bill.
func (s *Service) Finalize(ctx context.Context, cartID uuid.UUID, customer order.Customer) (Bill, error) {
	if s == nil || s.Carts == nil || s.Bills == nil {
		return Bill{}, common.NewAppError("INTERNAL", "billing service not configured", http.StatusInternalServerError, nil)
	}

	var items []order.LineItem
	_, err := s.Carts.Mutate(cartID, func(c *order.Cart) error {
		// Checkout records the customer on the cart, so finalizing the same
		// cart again under a different name overwrites the one it held.
		c.Customer = customer
		items = c.Snapshot()
		return nil
	})
	if err != nil {
		if err == order.ErrCartNotFound {
			return Bill{}, common.NewAppError("NOT_FOUND", "cart not found", http.StatusNotFound, err)
		}
		return Bill{}, err
	}

	subtotal := money.Zero
	totalQuantity := 0
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
		totalQuantity += item.Quantity
	}

	var applied *discount.Rule
	if s.Rules != nil {
		applied = discount.Applicable(s.Rules.List(), totalQuantity)
	}
	discountAmount := discount.Amount(subtotal, applied)

	bill := Bill{
		ID:              s.newID(),
		CartID:          cartID,
		Customer:        customer,
		Items:           items,
		Subtotal:        subtotal,
		DiscountAmount:  discountAmount,
		AppliedDiscount: applied,
		Total:           subtotal.Sub(discountAmount),
		Date:            s.now(),
	}
	bill.AISummary = Summarize(bill)
	s.Bills.Put(bill)

	outcome := "none"
	if applied != nil {
		outcome = "applied"
	}
	if obs.BillFinalizedTotal != nil {
		obs.BillFinalizedTotal.WithLabelValues(outcome).Inc()
	}

	if s.Events != nil {
		_, _ = s.Events.Emit(ctx, events.TopicCheckoutCompleted, bill.ID, map[string]any{
			"billId": bill.ID.String(),
			"cartId": cartID.String(),
			"total":  money.Format(bill.Total),
		})
	}

	return bill, nil
}

// Get fetches a previously finalized bill.
func (s *Service) Get(_ context.Context, id uuid.UUID) (Bill, error) {
	bill, ok := s.Bills.Get(id)
	if !ok {
		return Bill{}, common.NewAppError("NOT_FOUND", "bill not found", http.StatusNotFound, nil)
	}
	return bill, nil
}

// List returns one page of finalized bills, newest first.
func (s *Service) List(_ context.Context, page, perPage int) ([]Bill, int) {
	return s.Bills.List(page, perPage)
}
