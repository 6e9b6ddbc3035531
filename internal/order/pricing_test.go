package order_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/storefront-orders/internal/order"
)

type priceList map[string]string

func (p priceList) PriceOf(name string) decimal.Decimal {
	if s, ok := p[name]; ok {
		return decimal.RequireFromString(s)
	}
	return decimal.Zero
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newCalculator(t *testing.T) *order.Calculator {
	t.Helper()
	taxes, err := order.NewTaxTable(order.DefaultTaxRates())
	require.NoError(t, err)
	return order.NewCalculator(priceList{"Widget": "5.00", "Gadget": "12.50"}, taxes, order.DefaultMinimum)
}

func TestBuildReceipt_Ontario(t *testing.T) {
	calc := newCalculator(t)

	r, err := calc.BuildReceipt(order.Order{
		Province: "ON",
		Items:    []order.Item{{Product: "Widget", Quantity: 3}},
	})
	require.NoError(t, err)

	require.Len(t, r.Lines, 1)
	assert.Equal(t, "Widget", r.Lines[0].Product)
	assert.Equal(t, 3, r.Lines[0].Quantity)
	assert.Equal(t, "15.00", order.FormatMoney(r.Lines[0].LineTotal))
	assert.Equal(t, "15.00", order.FormatMoney(r.Subtotal))
	assert.Equal(t, "1.95", order.FormatMoney(r.TaxAmount))
	assert.Equal(t, "16.95", order.FormatMoney(r.TotalWithTax))
	assert.Equal(t, "13", r.TaxPercent())
	assert.Equal(t, "ON", r.Province)
}

func TestBuildReceipt_BelowMinimum(t *testing.T) {
	calc := newCalculator(t)

	r, err := calc.BuildReceipt(order.Order{
		Province: "BC",
		Items:    []order.Item{{Product: "Widget", Quantity: 1}},
	})
	assert.Nil(t, r)
	assert.True(t, errors.Is(err, order.ErrBelowMinimum))
	assert.Equal(t, "Minimum purchase should be $10 or more.", calc.MinimumMessage())
}

func TestBuildReceipt_UnknownProvinceIsUntaxed(t *testing.T) {
	calc := newCalculator(t)

	r, err := calc.BuildReceipt(order.Order{
		Province: "ab",
		Items:    []order.Item{{Product: "Gadget", Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, r.TaxRate.IsZero())
	assert.True(t, r.TaxAmount.IsZero())
	assert.True(t, r.TotalWithTax.Equal(r.Subtotal))
	assert.Equal(t, "AB", r.Province)
	assert.Equal(t, "0", r.TaxPercent())
}

func TestBuildReceipt_TotalsAreConsistent(t *testing.T) {
	calc := newCalculator(t)

	r, err := calc.BuildReceipt(order.Order{
		Province: "qc",
		Items: []order.Item{
			{Product: "Gadget", Quantity: 3},
			{Product: "Widget", Quantity: 1},
			{Product: "Unknown", Quantity: 4},
		},
	})
	require.NoError(t, err)

	sum := decimal.Zero
	for _, l := range r.Lines {
		sum = sum.Add(l.LineTotal)
	}
	assert.True(t, r.Subtotal.Equal(sum))
	assert.True(t, r.TaxAmount.Equal(r.Subtotal.Mul(r.TaxRate)))
	assert.True(t, r.TotalWithTax.Equal(r.Subtotal.Add(r.TaxAmount)))
	// 42.50 * 0.14975 is kept unrounded internally
	assert.Equal(t, "6.364375", r.TaxAmount.String())
	assert.Equal(t, "6.36", order.FormatMoney(r.TaxAmount))
	assert.Equal(t, "15", r.TaxPercent())
	require.Len(t, r.Lines, 3)
	assert.True(t, r.Lines[2].LineTotal.IsZero())
}

func TestLines_NonPositiveQuantitiesAreExcludedEverywhere(t *testing.T) {
	calc := newCalculator(t)
	items := []order.Item{
		{Product: "Gadget", Quantity: 2},
		{Product: "Widget", Quantity: 0},
		{Product: "Widget", Quantity: -3},
	}

	lines, subtotal := calc.Lines(items)
	require.Len(t, lines, 1)
	assert.Equal(t, "Gadget", lines[0].Product)
	assert.True(t, subtotal.Equal(dec("25")))
	// the subtotal used for pricing is the one shown on the receipt
	assert.True(t, calc.Subtotal(items).Equal(subtotal))

	r, err := calc.BuildReceipt(order.Order{Province: "ON", Items: items})
	require.NoError(t, err)
	assert.True(t, r.Subtotal.Equal(dec("25")))
	assert.Equal(t, "28.25", order.FormatMoney(r.TotalWithTax))
}

func TestCheckMinimum_Boundary(t *testing.T) {
	calc := newCalculator(t)

	assert.NoError(t, calc.CheckMinimum(dec("10.00")))
	assert.NoError(t, calc.CheckMinimum(dec("10.01")))
	assert.ErrorIs(t, calc.CheckMinimum(dec("9.999")), order.ErrBelowMinimum)
}

func TestCalculator_CustomMinimum(t *testing.T) {
	taxes, err := order.NewTaxTable(nil)
	require.NoError(t, err)
	calc := order.NewCalculator(priceList{"Widget": "5.00"}, taxes, dec("25"))

	_, err = calc.BuildReceipt(order.Order{Province: "ON", Items: []order.Item{{Product: "Widget", Quantity: 4}}})
	assert.ErrorIs(t, err, order.ErrBelowMinimum)
	assert.Equal(t, "Minimum purchase should be $25 or more.", calc.MinimumMessage())
}
