package order

import "github.com/shopspring/decimal"

// Item is one selected product and the quantity asked for.
type Item struct {
	Product  string
	Quantity int
}

type Customer struct {
	Name    string
	Address string
	City    string
	Phone   string
}

// Order is a validated submission, ready to be priced.
type Order struct {
	Customer Customer
	Province string
	Items    []Item
}

type ReceiptLine struct {
	Product   string
	Quantity  int
	LineTotal decimal.Decimal
}

// Receipt holds unrounded amounts; rounding happens only in FormatMoney.
type Receipt struct {
	Lines        []ReceiptLine
	Subtotal     decimal.Decimal
	Province     string
	TaxRate      decimal.Decimal
	TaxAmount    decimal.Decimal
	TotalWithTax decimal.Decimal
}

// TaxPercent is the tax rate as a whole percentage, e.g. "13".
func (r *Receipt) TaxPercent() string {
	return r.TaxRate.Shift(2).StringFixed(0)
}

// FormatMoney renders an amount with exactly two decimals, without a currency sign.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
