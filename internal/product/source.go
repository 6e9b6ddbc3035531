package product

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Source loads catalog entries. It is called once at startup.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
}

// Load builds a Catalog from src.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewCatalog(products)
}

// StaticSource serves a fixed list, used when no file or database is configured.
type StaticSource []Product

func (s StaticSource) Load(context.Context) ([]Product, error) {
	out := make([]Product, len(s))
	copy(out, s)
	return out, nil
}

// DefaultProducts is the built-in storefront catalog.
func DefaultProducts() StaticSource {
	return StaticSource{
		{Name: "Widget", Price: decimal.RequireFromString("5.00")},
		{Name: "Gadget", Price: decimal.RequireFromString("12.50")},
		{Name: "Gizmo", Price: decimal.RequireFromString("3.75")},
		{Name: "Sprocket", Price: decimal.RequireFromString("8.00")},
		{Name: "Doohickey", Price: decimal.RequireFromString("20.00")},
	}
}

// FileSource reads a YAML catalog:
//
//	products:
//	  - name: Widget
//	    price: "5.00"
type FileSource struct {
	Path string
}

type catalogFile struct {
	Products []struct {
		Name  string `yaml:"name"`
		Price string `yaml:"price"`
	} `yaml:"products"`
}

func (s FileSource) Load(context.Context) ([]Product, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
	}
	products, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", s.Path, err)
	}
	return products, nil
}

func ParseYAML(data []byte) ([]Product, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out := make([]Product, 0, len(f.Products))
	for i, e := range f.Products {
		price, err := decimal.NewFromString(strings.TrimSpace(e.Price))
		if err != nil {
			return nil, fmt.Errorf("entry %d (%q): invalid price %q: %w", i, e.Name, e.Price, err)
		}
		out = append(out, Product{Name: strings.TrimSpace(e.Name), Price: price})
	}
	return out, nil
}
