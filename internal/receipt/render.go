// Package receipt turns a priced order into the HTML page sent back to the customer.
package receipt

import (
	"fmt"
	"io"

	"github.com/MikeMC777/storefront-orders/internal/order"
)

const (
	KindTemplate = "template"
	KindInline   = "inline"
)

// Renderer writes receipt markup. Implementations must be safe for
// concurrent use.
type Renderer interface {
	Render(w io.Writer, r *order.Receipt) error
}

// New returns the renderer named by kind. templatePath only applies to the
// template renderer; empty means the built-in template.
func New(kind, templatePath string) (Renderer, error) {
	switch kind {
	case "", KindTemplate:
		return NewTemplateRenderer(templatePath)
	case KindInline:
		return InlineRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown receipt renderer %q", kind)
	}
}
