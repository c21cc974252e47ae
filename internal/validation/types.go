package validation

import (
	"encoding/json"
	"fmt"

	"github.com/gokulnath/order-service/internal/orders"
)

// Item is one line item as submitted in the multipart items field.
// Quantities and prices are stored as given; nothing bounds them.
type Item struct {
	ProductID string  `json:"productId" validate:"required"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateOrderRequest is the assembled POST /api/orders payload. The order
// creation endpoint is multipart, so this is built from form fields rather
// than bound from a JSON body. Only the request shape is checked; the amount
// is persisted as claimed without reconciling it against the items.
type CreateOrderRequest struct {
	CustomerName string `validate:"required"`
	Amount       float64
	Items        []Item `validate:"required,min=1,dive"`
}

// ParseItems decodes the JSON-encoded items form field.
func ParseItems(itemsJSON string) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	return items, nil
}

// LineItems converts validated items into the stored representation.
func LineItems(items []Item) []orders.LineItem {
	out := make([]orders.LineItem, 0, len(items))
	for _, it := range items {
		out = append(out, orders.LineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}
