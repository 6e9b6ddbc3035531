package order

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrBelowMinimum is returned when the tax-inclusive total is under the
// store's minimum purchase.
var ErrBelowMinimum = errors.New("order total below minimum purchase")

// DefaultMinimum is the smallest accepted tax-inclusive total.
var DefaultMinimum = decimal.NewFromInt(10)

// PriceLookup resolves a product name to its unit price. Unknown names must
// return zero.
type PriceLookup interface {
	PriceOf(name string) decimal.Decimal
}

// Calculator prices orders against a catalog and a tax table. It holds no
// mutable state and may be shared between requests.
type Calculator struct {
	catalog PriceLookup
	taxes   TaxTable
	minimum decimal.Decimal
}

func NewCalculator(catalog PriceLookup, taxes TaxTable, minimum decimal.Decimal) *Calculator {
	return &Calculator{catalog: catalog, taxes: taxes, minimum: minimum}
}

// Lines prices every item with a positive quantity and returns them with
// their sum. Items with zero or negative quantities are not part of the
// order: they appear neither on the receipt nor in the subtotal.
func (c *Calculator) Lines(items []Item) ([]ReceiptLine, decimal.Decimal) {
	lines := make([]ReceiptLine, 0, len(items))
	subtotal := decimal.Zero
	for _, it := range items {
		if it.Quantity <= 0 {
			continue
		}
		total := c.catalog.PriceOf(it.Product).Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, ReceiptLine{Product: it.Product, Quantity: it.Quantity, LineTotal: total})
		subtotal = subtotal.Add(total)
	}
	return lines, subtotal
}

// Subtotal is the pre-tax amount of the order.
func (c *Calculator) Subtotal(items []Item) decimal.Decimal {
	_, subtotal := c.Lines(items)
	return subtotal
}

// TaxRateFor exposes the injected tax table.
func (c *Calculator) TaxRateFor(province string) decimal.Decimal {
	return c.taxes.RateFor(province)
}

// CheckMinimum rejects totals under the configured minimum.
func (c *Calculator) CheckMinimum(totalWithTax decimal.Decimal) error {
	if totalWithTax.LessThan(c.minimum) {
		return fmt.Errorf("%w: %s < %s", ErrBelowMinimum, totalWithTax.StringFixed(2), c.minimum.StringFixed(2))
	}
	return nil
}

// MinimumMessage is the customer-facing rejection text.
func (c *Calculator) MinimumMessage() string {
	return fmt.Sprintf("Minimum purchase should be $%s or more.", c.minimum.String())
}

// BuildReceipt prices o and returns its receipt, or ErrBelowMinimum when the
// tax-inclusive total is too small. The same subtotal feeds the tax, the
// minimum check and the itemized lines.
func (c *Calculator) BuildReceipt(o Order) (*Receipt, error) {
	lines, subtotal := c.Lines(o.Items)
	province := strings.ToUpper(strings.TrimSpace(o.Province))
	rate := c.taxes.RateFor(province)
	tax := subtotal.Mul(rate)
	total := subtotal.Add(tax)

	if err := c.CheckMinimum(total); err != nil {
		return nil, err
	}
	return &Receipt{
		Lines:        lines,
		Subtotal:     subtotal,
		Province:     province,
		TaxRate:      rate,
		TaxAmount:    tax,
		TotalWithTax: total,
	}, nil
}
