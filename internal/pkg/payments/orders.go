package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v78"
)

const cartItemsMetadataKey = "cart_items"

// ListOrders returns the customer's succeeded payments, newest first, with
// cart lines decoded from payment metadata. Payments without parseable cart
// metadata are kept with empty items so the history stays complete.
func (c *Client) ListOrders(ctx context.Context, customerID string) ([]Order, error) {
	if customerID == "" {
		return []Order{}, nil
	}

	params := &stripe.PaymentIntentListParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(100)

	orders := make([]Order, 0)
	it := c.api.PaymentIntents.List(params)
	for it.Next() {
		pi := it.PaymentIntent()
		if pi.Status != stripe.PaymentIntentStatusSucceeded {
			continue
		}

		order := Order{
			ID:          pi.ID,
			AmountCents: pi.Amount,
			Currency:    string(pi.Currency),
			CreatedAt:   time.Unix(pi.Created, 0),
			Items:       ParseCartItems(pi.Metadata[cartItemsMetadataKey]),
		}
		if pi.LatestCharge != nil {
			order.ReceiptURL = pi.LatestCharge.ReceiptURL
		}
		if pi.Invoice != nil {
			order.InvoiceID = pi.Invoice.ID
		}
		orders = append(orders, order)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("list payments for %s: %w", customerID, err)
	}
	return orders, nil
}

// ParseCartItems decodes the cart lines a checkout session stored in payment
// metadata. Malformed or empty input yields an empty slice, never an error.
func ParseCartItems(raw string) []OrderItem {
	if raw == "" {
		return []OrderItem{}
	}
	var items []OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []OrderItem{}
	}
	if items == nil {
		return []OrderItem{}
	}
	return items
}
