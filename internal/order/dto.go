package order

import (
	"strconv"
	"strings"
)

// OrderForm is the form-encoded body of POST /order. Products and Quantities
// are parallel arrays on the wire; Items zips them.
// swagger:model OrderForm
type OrderForm struct {
	Name       string   `form:"name"       binding:"required"            example:"Jane Doe"`
	Address    string   `form:"address"    binding:"required"            example:"12 King St"`
	City       string   `form:"city"       binding:"required"            example:"Toronto"`
	Province   string   `form:"province"   binding:"required,len=2,alpha" example:"ON"`
	Phone      string   `form:"phone"      binding:"required,len=10,number" example:"4165550100"`
	Products   []string `form:"products"   binding:"required,min=1"`
	Quantities []string `form:"quantities"`
}

// Items pairs each product with its quantity. A quantity that is not a whole
// number, or a quantities list that does not line up with products, is a
// validation error: nothing is priced from a partial pairing.
func (f OrderForm) Items() ([]Item, ValidationErrors) {
	if len(f.Products) == 0 {
		return nil, nil
	}
	if len(f.Quantities) != len(f.Products) {
		return nil, ValidationErrors{{Field: "quantities", Message: MsgQuantityMismatch}}
	}
	items := make([]Item, len(f.Products))
	for i, p := range f.Products {
		q, err := strconv.Atoi(strings.TrimSpace(f.Quantities[i]))
		if err != nil {
			return nil, ValidationErrors{{Field: "quantities", Message: MsgQuantityNotNumber}}
		}
		items[i] = Item{Product: p, Quantity: q}
	}
	return items, nil
}

// Order converts a bound form into an Order with the given items.
func (f OrderForm) Order(items []Item) Order {
	return Order{
		Customer: Customer{
			Name:    f.Name,
			Address: f.Address,
			City:    f.City,
			Phone:   f.Phone,
		},
		Province: f.Province,
		Items:    items,
	}
}
