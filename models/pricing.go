package models

import "github.com/shopspring/decimal"

// TaxRate is the fixed IVA applied on top of the net price.
var TaxRate = decimal.NewFromFloat(0.19)

var oneHundred = decimal.NewFromInt(100)

// DefaultMarginPct is applied when a product is created without a margin.
var DefaultMarginPct = decimal.NewFromInt(30)

// ComputePrices derives the stored pricing columns from a purchase price
// and a margin percentage:
//
//	net  = purchase + purchase * margin / 100
//	tax  = net * TaxRate
//	sale = round(net + tax, 0)
//
// Only the sale price is rounded (it is the customer-facing figure);
// net price and tax keep full precision.
func ComputePrices(purchasePrice, marginPct decimal.Decimal) (net, tax, sale decimal.Decimal) {
	net = purchasePrice.Add(purchasePrice.Mul(marginPct).Div(oneHundred))
	tax = net.Mul(TaxRate)
	sale = net.Add(tax).Round(0)
	return net, tax, sale
}
