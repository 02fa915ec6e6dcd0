package payments

import (
	"context"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v78"
)

// ListSubscriptions returns all of the customer's subscriptions regardless of
// status. Callers filter with Subscription.IsEntitling and match price IDs
// against bundle tiers.
func (c *Client) ListSubscriptions(ctx context.Context, customerID string) ([]Subscription, error) {
	if customerID == "" {
		return []Subscription{}, nil
	}

	params := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(100)

	subs := make([]Subscription, 0)
	it := c.api.Subscriptions.List(params)
	for it.Next() {
		subs = append(subs, normalizeSubscription(it.Subscription()))
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("list subscriptions for %s: %w", customerID, err)
	}
	return subs, nil
}

// Reactivate clears a pending cancellation so the subscription renews again.
func (c *Client) Reactivate(ctx context.Context, subscriptionID string) (*Subscription, error) {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(false),
	}
	params.Context = ctx

	sub, err := c.api.Subscriptions.Update(subscriptionID, params)
	if err != nil {
		return nil, fmt.Errorf("reactivate subscription %s: %w", subscriptionID, err)
	}
	normalized := normalizeSubscription(sub)
	return &normalized, nil
}

func normalizeSubscription(sub *stripe.Subscription) Subscription {
	normalized := Subscription{
		ID:                 sub.ID,
		Status:             string(sub.Status),
		CurrentPeriodStart: time.Unix(sub.CurrentPeriodStart, 0),
		CurrentPeriodEnd:   time.Unix(sub.CurrentPeriodEnd, 0),
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
		PriceIDs:           []string{},
	}
	if sub.CanceledAt > 0 {
		t := time.Unix(sub.CanceledAt, 0)
		normalized.CanceledAt = &t
	}
	if sub.Items != nil {
		for _, item := range sub.Items.Data {
			if item.Price != nil {
				normalized.PriceIDs = append(normalized.PriceIDs, item.Price.ID)
			}
		}
	}
	return normalized
}
