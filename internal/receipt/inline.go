package receipt

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/MikeMC777/storefront-orders/internal/order"
)

// InlineRenderer builds the receipt page in code, without a template file.
type InlineRenderer struct{}

func (InlineRenderer) Render(w io.Writer, r *order.Receipt) error {
	var rows strings.Builder
	for _, l := range r.Lines {
		fmt.Fprintf(&rows, `
            <tr>
                <td>%s</td>
                <td>%d</td>
                <td>$%s</td>
            </tr>`, html.EscapeString(l.Product), l.Quantity, order.FormatMoney(l.LineTotal))
	}

	_, err := fmt.Fprintf(w, `<html>
<head>
    <title>Order Receipt</title>
    <link rel="stylesheet" href="/css/style.css">
</head>
<body>
    <div class="receipt">
        <h1>Order Receipt</h1>
        <table class="receipt-table">
            <tr>
                <th>Item</th>
                <th>Quantity</th>
                <th>Price</th>
            </tr>%s
        </table>
        <p>Subtotal: $%s</p>
        <p>Tax (%s): %s%%: $%s</p>
        <p><strong>Total Amount with Tax: $%s</strong></p>
        <a href="/">Place another order</a>
    </div>
</body>
</html>
`,
		rows.String(),
		order.FormatMoney(r.Subtotal),
		html.EscapeString(r.Province), r.TaxPercent(), order.FormatMoney(r.TaxAmount),
		order.FormatMoney(r.TotalWithTax),
	)
	return err
}
