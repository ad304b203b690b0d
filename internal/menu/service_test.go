package menu_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/coffai/pos/internal/common"
	"github.com/coffai/pos/internal/menu"
)

func newService(t *testing.T) (*menu.Service, *menu.Store) {
	t.Helper()
	store := menu.NewStore()
	svc, err := menu.NewService(menu.ServiceConfig{Store: store})
	require.NoError(t, err)
	return svc, store
}

func TestCreateAndList(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	espresso, err := svc.Create(ctx, menu.KindCoffee, menu.CreateInput{Name: "Espresso", Price: decimal.RequireFromString("3.50")})
	require.NoError(t, err)
	require.Equal(t, menu.KindCoffee, espresso.Kind)

	_, err = svc.Create(ctx, menu.KindCoffee, menu.CreateInput{Name: "Latte", Price: decimal.RequireFromString("5.50")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, menu.KindMilk, menu.CreateInput{Name: "Oat Milk", Price: decimal.RequireFromString("0.75")})
	require.NoError(t, err)

	coffees, err := svc.List(ctx, menu.KindCoffee)
	require.NoError(t, err)
	require.Len(t, coffees, 2)
	require.Equal(t, "Espresso", coffees[0].Name)
	require.Equal(t, "Latte", coffees[1].Name)

	milks, err := svc.List(ctx, menu.KindMilk)
	require.NoError(t, err)
	require.Len(t, milks, 1)
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, menu.KindCoffee, menu.CreateInput{Price: decimal.NewFromInt(1)})
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "VALIDATION", appErr.Code)

	_, err = svc.Create(ctx, menu.KindCoffee, menu.CreateInput{Name: "Broken", Price: decimal.NewFromInt(-1)})
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "VALIDATION", appErr.Code)

	// Zero price options such as plain sugar are allowed.
	_, err = svc.Create(ctx, menu.KindAddOn, menu.CreateInput{Name: "Sugar", Price: decimal.Zero})
	require.NoError(t, err)
}

func TestInvalidKind(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, menu.Kind("pastries"))
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "INVALID_KIND", appErr.Code)
	require.Equal(t, http.StatusNotFound, appErr.HTTPStatus)

	_, err = svc.Create(ctx, menu.Kind(""), menu.CreateInput{Name: "Espresso", Price: decimal.NewFromInt(3)})
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "INVALID_KIND", appErr.Code)
}

func TestDelete(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	opt, err := svc.Create(ctx, menu.KindAddOn, menu.CreateInput{Name: "Cinnamon", Price: decimal.RequireFromString("0.25")})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, menu.KindAddOn, opt.ID))
	require.Equal(t, 0, store.Len())

	err = svc.Delete(ctx, menu.KindAddOn, uuid.New())
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "NOT_FOUND", appErr.Code)
}
