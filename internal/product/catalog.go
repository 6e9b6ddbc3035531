// Package product holds the read-only product catalog and the sources it can be loaded from.
package product

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativePrice = errors.New("product price must not be negative")
	ErrEmptyName     = errors.New("product name is required")
)

// Catalog is built once at startup and never mutated, so it is safe for
// concurrent readers.
type Catalog struct {
	products []Product
	prices   map[string]decimal.Decimal
}

func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		prices:   make(map[string]decimal.Decimal, len(products)),
	}
	for i, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("%q: %w", p.Name, ErrNegativePrice)
		}
		c.products = append(c.products, p)
		// first entry with a given name wins
		if _, seen := c.prices[p.Name]; !seen {
			c.prices[p.Name] = p.Price
		}
	}
	return c, nil
}

// PriceOf returns the unit price for an exact name match, or zero when the
// product is unknown.
func (c *Catalog) PriceOf(name string) decimal.Decimal {
	if price, ok := c.prices[name]; ok {
		return price
	}
	return decimal.Zero
}

// Products returns a copy of the catalog entries in load order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int { return len(c.products) }
