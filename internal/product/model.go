package product

import "github.com/shopspring/decimal"

// Product is a catalog entry. Name is the lookup key used by order forms.
type Product struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ProductView is the JSON shape of a catalog entry.
// swagger:model ProductView
type ProductView struct {
	Name  string `json:"name"  example:"Widget"`
	Price string `json:"price" example:"5.00"`
}

// ListResponse represents the catalog listing.
// swagger:model
type ListResponse struct {
	// total items in the catalog
	Count int           `json:"count"`
	Items []ProductView `json:"items"`
}

// View formats the price with two decimals, the way it is shown on receipts.
func (p Product) View() ProductView {
	return ProductView{Name: p.Name, Price: p.Price.StringFixed(2)}
}
