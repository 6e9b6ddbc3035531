package order

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxTable maps uppercase province codes to sales-tax rates in [0,1).
// It is immutable once built.
type TaxTable struct {
	rates map[string]decimal.Decimal
}

// DefaultTaxRates are the combined provincial rates charged by the storefront.
func DefaultTaxRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"ON": decimal.RequireFromString("0.13"),    // Ontario HST
		"QC": decimal.RequireFromString("0.14975"), // Quebec GST + QST
		"BC": decimal.RequireFromString("0.12"),    // British Columbia GST + PST
	}
}

func NewTaxTable(rates map[string]decimal.Decimal) (TaxTable, error) {
	one := decimal.NewFromInt(1)
	t := TaxTable{rates: make(map[string]decimal.Decimal, len(rates))}
	for code, rate := range rates {
		code = normalizeProvince(code)
		if code == "" {
			return TaxTable{}, fmt.Errorf("tax table: empty province code")
		}
		if rate.IsNegative() || rate.GreaterThanOrEqual(one) {
			return TaxTable{}, fmt.Errorf("tax table: rate %s for %s outside [0,1)", rate, code)
		}
		t.rates[code] = rate
	}
	return t, nil
}

// RateFor is case-insensitive. Unknown or malformed codes are taxed at 0.
func (t TaxTable) RateFor(province string) decimal.Decimal {
	if rate, ok := t.rates[normalizeProvince(province)]; ok {
		return rate
	}
	return decimal.Zero
}

// ParseTaxRates reads overrides in the form "ON=0.13,QC=0.14975".
func ParseTaxRates(s string) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		code, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("tax rate %q: expected CODE=RATE", pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("tax rate %q: %w", pair, err)
		}
		out[normalizeProvince(code)] = rate
	}
	return out, nil
}

func normalizeProvince(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
