package discount_test

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
)

func newService(t *testing.T) (*discount.Service, *discount.Store) {
	t.Helper()
	store := discount.NewStore()
	svc, err := discount.NewService(discount.ServiceConfig{Store: store})
	require.NoError(t, err)
	return svc, store
}

func TestCreateDefaultsToActive(t *testing.T) {
	svc, _ := newService(t)
	rule, err := svc.Create(context.Background(), discount.CreateInput{
		Name:            "Bulk Order (5+ items)",
		MinQuantity:     5,
		DiscountPercent: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.True(t, rule.IsActive)
	require.NotEqual(t, rule.ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestCreateRejectsInvalidPayloads(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input discount.CreateInput
	}{
		{"missing name", discount.CreateInput{MinQuantity: 5, DiscountPercent: decimal.NewFromInt(10)}},
		{"zero min quantity", discount.CreateInput{Name: "Bad", MinQuantity: 0, DiscountPercent: decimal.NewFromInt(10)}},
		{"negative percent", discount.CreateInput{Name: "Bad", MinQuantity: 5, DiscountPercent: decimal.NewFromInt(-1)}},
		{"percent above 100", discount.CreateInput{Name: "Bad", MinQuantity: 5, DiscountPercent: decimal.NewFromInt(101)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			var appErr *common.AppError
			require.True(t, errors.As(err, &appErr))
			require.Equal(t, "VALIDATION", appErr.Code)
			require.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		})
	}
}

func TestUpdateTogglesActivation(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()
	rule, err := svc.Create(ctx, discount.CreateInput{
		Name:            "Bulk",
		MinQuantity:     5,
		DiscountPercent: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	off := false
	updated, err := svc.Update(ctx, rule.ID, discount.UpdateInput{IsActive: &off})
	require.NoError(t, err)
	require.False(t, updated.IsActive)
	require.Equal(t, "Bulk", updated.Name)

	stored, ok := store.Get(rule.ID)
	require.True(t, ok)
	require.False(t, stored.IsActive)

	on := true
	updated, err = svc.Update(ctx, rule.ID, discount.UpdateInput{IsActive: &on})
	require.NoError(t, err)
	require.True(t, updated.IsActive)
}

func TestUpdatePartialPatch(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	rule, err := svc.Create(ctx, discount.CreateInput{
		Name:            "Bulk",
		MinQuantity:     5,
		DiscountPercent: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	newMin := 8
	updated, err := svc.Update(ctx, rule.ID, discount.UpdateInput{MinQuantity: &newMin})
	require.NoError(t, err)
	require.Equal(t, 8, updated.MinQuantity)
	require.True(t, updated.DiscountPercent.Equal(decimal.NewFromInt(10)))
	require.Equal(t, "Bulk", updated.Name)

	badPercent := decimal.NewFromInt(150)
	_, err = svc.Update(ctx, rule.ID, discount.UpdateInput{DiscountPercent: &badPercent})
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "VALIDATION", appErr.Code)
}

func TestUpdateAndDeleteMissingRule(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	on := true
	_, err := svc.Update(ctx, uuid.New(), discount.UpdateInput{IsActive: &on})
	var appErr *common.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "NOT_FOUND", appErr.Code)

	err = svc.Delete(ctx, uuid.New())
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "NOT_FOUND", appErr.Code)
	require.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}

func TestListPreservesInsertionOrder(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	names := []string{"Bulk", "Large", "Party"}
	for _, name := range names {
		_, err := svc.Create(ctx, discount.CreateInput{
			Name:            name,
			MinQuantity:     5,
			DiscountPercent: decimal.NewFromInt(10),
		})
		require.NoError(t, err)
	}
	rules := svc.List(ctx)
	require.Len(t, rules, 3)
	for i, name := range names {
		require.Equal(t, name, rules[i].Name)
	}
}
