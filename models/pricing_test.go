package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputePrices(t *testing.T) {
	cases := []struct {
		name     string
		purchase string
		margin   string
		net      string
		tax      string
		sale     string
	}{
		{"typical margin", "1000", "30", "1300", "247", "1547"},
		{"rounding matters", "333", "30", "432.9", "82.251", "515"},
		{"zero margin", "100", "0", "100", "19", "119"},
		{"max margin", "10", "1000", "110", "20.9", "131"},
		{"fractional purchase", "19.9", "50", "29.85", "5.6715", "36"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			purchase := decimal.RequireFromString(tc.purchase)
			margin := decimal.RequireFromString(tc.margin)

			net, tax, sale := ComputePrices(purchase, margin)

			if net.String() != tc.net {
				t.Errorf("net price: expected %s, got %s", tc.net, net.String())
			}
			if tax.String() != tc.tax {
				t.Errorf("tax: expected %s, got %s", tc.tax, tax.String())
			}
			if sale.String() != tc.sale {
				t.Errorf("sale price: expected %s, got %s", tc.sale, sale.String())
			}
		})
	}
}

func TestComputePricesIsDeterministic(t *testing.T) {
	purchase := decimal.RequireFromString("4990.50")
	margin := decimal.RequireFromString("32.5")

	net1, tax1, sale1 := ComputePrices(purchase, margin)
	net2, tax2, sale2 := ComputePrices(purchase, margin)

	if !net1.Equal(net2) || !tax1.Equal(tax2) || !sale1.Equal(sale2) {
		t.Fatalf("same input produced different prices: (%s %s %s) vs (%s %s %s)",
			net1, tax1, sale1, net2, tax2, sale2)
	}
}
