package order_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/menu"
	"github.com/coffai/pos/internal/order"
)

func option(kind menu.Kind, name, price string) menu.Option {
	return menu.Option{
		ID:    uuid.New(),
		Kind:  kind,
		Name:  name,
		Price: decimal.RequireFromString(price),
	}
}

func TestPrice(t *testing.T) {
	latte := option(menu.KindCoffee, "Latte", "5.50")
	oat := option(menu.KindMilk, "Oat Milk", "0.75")
	vanilla := option(menu.KindAddOn, "Vanilla Syrup", "0.75")

	// (5.50 + 0.75 + 0.75) x 2 = 14.00
	got := order.Price(latte, &oat, []menu.Option{vanilla}, 2)
	if !got.Equal(decimal.RequireFromString("14.00")) {
		t.Fatalf("expected 14.00 got %s", got)
	}
}

func TestPriceWithoutMilkOrAddOns(t *testing.T) {
	espresso := option(menu.KindCoffee, "Espresso", "3.50")
	got := order.Price(espresso, nil, nil, 3)
	if !got.Equal(decimal.RequireFromString("10.50")) {
		t.Fatalf("expected 10.50 got %s", got)
	}
}

func TestPriceAddOnOrderDoesNotMatter(t *testing.T) {
	mocha := option(menu.KindCoffee, "Mocha", "6.00")
	shot := option(menu.KindAddOn, "Extra Shot", "1.00")
	cream := option(menu.KindAddOn, "Whipped Cream", "0.60")
	cinnamon := option(menu.KindAddOn, "Cinnamon", "0.25")

	a := order.Price(mocha, nil, []menu.Option{shot, cream, cinnamon}, 2)
	b := order.Price(mocha, nil, []menu.Option{cinnamon, shot, cream}, 2)
	if !a.Equal(b) {
		t.Fatalf("add-on ordering changed the price: %s vs %s", a, b)
	}
}

func TestPriceZeroPriceAddOns(t *testing.T) {
	americano := option(menu.KindCoffee, "Americano", "4.00")
	sugar := option(menu.KindAddOn, "Sugar", "0.00")
	got := order.Price(americano, nil, []menu.Option{sugar}, 1)
	if !got.Equal(decimal.RequireFromString("4.00")) {
		t.Fatalf("expected 4.00 got %s", got)
	}
}
