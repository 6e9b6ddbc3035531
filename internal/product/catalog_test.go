package product_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/storefront-orders/internal/product"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCatalog_PriceOf(t *testing.T) {
	c, err := product.NewCatalog([]product.Product{
		{Name: "Widget", Price: price("5.00")},
		{Name: "Gadget", Price: price("12.50")},
		{Name: "Widget", Price: price("99.00")},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known product", "Gadget", "12.5"},
		{"first entry wins", "Widget", "5"},
		{"unknown product costs nothing", "Thingamajig", "0"},
		{"match is exact", "widget", "0"},
		{"empty name", "", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, c.PriceOf(tt.in).Equal(price(tt.want)), "PriceOf(%q)=%s", tt.in, c.PriceOf(tt.in))
		})
	}
	assert.Equal(t, 3, c.Len())
}

func TestNewCatalog_RejectsBadEntries(t *testing.T) {
	_, err := product.NewCatalog([]product.Product{{Name: "Bad", Price: price("-1")}})
	assert.True(t, errors.Is(err, product.ErrNegativePrice))

	_, err = product.NewCatalog([]product.Product{{Name: "", Price: price("1")}})
	assert.True(t, errors.Is(err, product.ErrEmptyName))
}

func TestCatalog_ProductsIsACopy(t *testing.T) {
	c, err := product.Load(context.Background(), product.DefaultProducts())
	require.NoError(t, err)

	items := c.Products()
	items[0].Name = "changed"
	assert.Equal(t, "Widget", c.Products()[0].Name)
	assert.True(t, c.PriceOf("Widget").Equal(price("5")))
}

func TestProduct_View(t *testing.T) {
	v := product.Product{Name: "Gadget", Price: price("12.5")}.View()
	assert.Equal(t, "Gadget", v.Name)
	assert.Equal(t, "12.50", v.Price)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
products:
  - name: Widget
    price: 5.00
  - name: " Gadget "
    price: "12.50"
`)
	got, err := product.ParseYAML(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Widget", got[0].Name)
	assert.True(t, got[0].Price.Equal(price("5")))
	assert.Equal(t, "Gadget", got[1].Name)
	assert.True(t, got[1].Price.Equal(price("12.5")))
}

func TestParseYAML_InvalidPrice(t *testing.T) {
	_, err := product.ParseYAML([]byte("products:\n  - name: Widget\n    price: cheap\n"))
	assert.Error(t, err)
}

func TestFileSource_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products:\n  - name: Gizmo\n    price: \"3.75\"\n"), 0o600))

	c, err := product.Load(context.Background(), product.FileSource{Path: path})
	require.NoError(t, err)
	assert.True(t, c.PriceOf("Gizmo").Equal(price("3.75")))

	_, err = product.FileSource{Path: filepath.Join(t.TempDir(), "missing.yaml")}.Load(context.Background())
	assert.Error(t, err)
}
