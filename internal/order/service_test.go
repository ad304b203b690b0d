package order_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/coffai/pos/internal/common"
	"github.com/coffai/pos/internal/discount"
	"github.com/coffai/pos/internal/menu"
	"github.com/coffai/pos/internal/order"
)

type fixture struct {
	svc     *order.Service
	latte   menu.Option
	oat     menu.Option
	vanilla menu.Option
	shot    menu.Option
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	options := menu.NewStore()
	rules := discount.NewStore()

	latte := option(menu.KindCoffee, "Latte", "5.50")
	oat := option(menu.KindMilk, "Oat Milk", "0.75")
	vanilla := option(menu.KindAddOn, "Vanilla Syrup", "0.75")
	shot := option(menu.KindAddOn, "Extra Shot", "1.00")
	for _, opt := range []menu.Option{latte, oat, vanilla, shot} {
		options.Put(opt)
	}
	rules.Put(discount.Rule{
		ID:              uuid.New(),
		Name:            "Bulk Order (5+ items)",
		MinQuantity:     5,
		DiscountPercent: decimal.NewFromInt(10),
		IsActive:        true,
	})

	return fixture{
		svc:     &order.Service{Store: order.NewStore(), Menu: options, Rules: rules},
		latte:   latte,
		oat:     oat,
		vanilla: vanilla,
		shot:    shot,
	}
}

func TestAddItemPricesSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)

	view, err := f.svc.AddItem(ctx, cart.ID, order.AddItemInput{
		CoffeeID: f.latte.ID,
		MilkID:   &f.oat.ID,
		AddOnIDs: []uuid.UUID{f.vanilla.ID},
		Quantity: 2,
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	require.True(t, view.Items[0].TotalPrice.Equal(decimal.RequireFromString("14.00")))
	require.True(t, view.Subtotal.Equal(decimal.RequireFromString("14.00")))
	require.Equal(t, 2, view.TotalQuantity)
	require.Nil(t, view.Discount)
	require.True(t, view.Total.Equal(view.Subtotal))
}

func TestAddItemRequiresCoffee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)

	var appErr *common.AppError

	_, err = f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: uuid.New(), Quantity: 1})
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "INVALID_SELECTION", appErr.Code)
	require.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)

	// A milk id in the coffee slot is not a coffee.
	_, err = f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: f.oat.ID, Quantity: 1})
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "INVALID_SELECTION", appErr.Code)
}

func TestAddItemRejectsUnknownMilkAndAddOns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)

	var appErr *common.AppError

	badMilk := uuid.New()
	_, err = f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: f.latte.ID, MilkID: &badMilk, Quantity: 1})
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "VALIDATION", appErr.Code)

	_, err = f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: f.latte.ID, AddOnIDs: []uuid.UUID{uuid.New()}, Quantity: 1})
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "VALIDATION", appErr.Code)
}

func TestAddItemDeduplicatesAddOns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)

	view, err := f.svc.AddItem(ctx, cart.ID, order.AddItemInput{
		CoffeeID: f.latte.ID,
		AddOnIDs: []uuid.UUID{f.shot.ID, f.shot.ID, f.vanilla.ID},
		Quantity: 1,
	})
	require.NoError(t, err)
	require.Len(t, view.Items[0].AddOns, 2)
	require.True(t, view.Items[0].TotalPrice.Equal(decimal.RequireFromString("7.25")))
}

func TestAddItemClampsQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)

	view, err := f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: f.latte.ID, Quantity: 0})
	require.NoError(t, err)
	require.Equal(t, 1, view.Items[0].Quantity)
	require.True(t, view.Items[0].TotalPrice.Equal(decimal.RequireFromString("5.50")))
}

func TestViewResolvesDiscountAtThreshold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)

	view, err := f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: f.latte.ID, Quantity: 4})
	require.NoError(t, err)
	require.Nil(t, view.Discount)

	itemID := view.Items[0].ID
	view, err = f.svc.UpdateQuantity(ctx, cart.ID, itemID, 5)
	require.NoError(t, err)
	require.NotNil(t, view.Discount)
	require.Equal(t, "Bulk Order (5+ items)", view.Discount.Rule.Name)
	// 27.50 - 2.75
	require.True(t, view.Discount.Amount.Equal(decimal.RequireFromString("2.75")))
	require.True(t, view.Total.Equal(decimal.RequireFromString("24.75")))
}

func TestRemoveItemUnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)
	view, err := f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: f.latte.ID, Quantity: 1})
	require.NoError(t, err)

	after, err := f.svc.RemoveItem(ctx, cart.ID, uuid.New())
	require.NoError(t, err)
	require.Len(t, after.Items, len(view.Items))
}

func TestCartNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var appErr *common.AppError
	_, err := f.svc.GetCart(ctx, uuid.New())
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "NOT_FOUND", appErr.Code)
	require.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestClearResetsView(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cart, err := f.svc.CreateCart(ctx)
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, cart.ID, order.AddItemInput{CoffeeID: f.latte.ID, Quantity: 6})
	require.NoError(t, err)

	view, err := f.svc.Clear(ctx, cart.ID)
	require.NoError(t, err)
	require.Empty(t, view.Items)
	require.True(t, view.Subtotal.IsZero())
	require.Nil(t, view.Discount)
}
