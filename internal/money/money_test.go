package money_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/coffai/pos/internal/money"
)

func TestParse(t *testing.T) {
	d, err := money.Parse(" 5.50 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !d.Equal(decimal.RequireFromString("5.5")) {
		t.Fatalf("unexpected amount %s", d)
	}

	if _, err := money.Parse(""); err == nil {
		t.Fatal("expected error for empty amount")
	}
	if _, err := money.Parse("abc"); err == nil {
		t.Fatal("expected error for non-numeric amount")
	}
}

func TestPercentKeepsSubCentPrecision(t *testing.T) {
	// 15% of 10.35 is 1.5525, kept exact until display.
	got := money.Percent(decimal.RequireFromString("10.35"), decimal.NewFromInt(15))
	if !got.Equal(decimal.RequireFromString("1.5525")) {
		t.Fatalf("expected 1.5525 got %s", got)
	}
	if money.Format(got) != "1.55" {
		t.Fatalf("unexpected display rounding %s", money.Format(got))
	}
}

func TestFormatUSD(t *testing.T) {
	if got := money.FormatUSD(decimal.RequireFromString("14")); got != "$14.00" {
		t.Fatalf("unexpected format %s", got)
	}
	if got := money.FormatUSD(decimal.Zero); got != "$0.00" {
		t.Fatalf("unexpected format %s", got)
	}
}
