package receipt

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"path/filepath"

	"github.com/MikeMC777/storefront-orders/internal/order"
)

//go:embed templates/receipt.html
var defaultTemplate string

var funcs = template.FuncMap{
	"money": order.FormatMoney,
}

type TemplateRenderer struct {
	tmpl *template.Template
}

func NewTemplateRenderer(path string) (*TemplateRenderer, error) {
	var (
		tmpl *template.Template
		err  error
	)
	if path == "" {
		tmpl, err = template.New("receipt").Funcs(funcs).Parse(defaultTemplate)
	} else {
		tmpl, err = template.New("receipt").Funcs(funcs).ParseFiles(path)
		if err == nil {
			// ParseFiles names templates after the file
			tmpl = tmpl.Lookup(filepath.Base(path))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("parse receipt template: %w", err)
	}
	if tmpl == nil {
		return nil, fmt.Errorf("parse receipt template: %s defines nothing", path)
	}
	return &TemplateRenderer{tmpl: tmpl}, nil
}

func (t *TemplateRenderer) Render(w io.Writer, r *order.Receipt) error {
	return t.tmpl.Execute(w, r)
}
