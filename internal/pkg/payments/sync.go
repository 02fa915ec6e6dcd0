package payments

import (
	"context"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v78"
)

// SyncProduct creates or updates the provider-side product for a catalog
// entry and returns the provider product id.
func (c *Client) SyncProduct(ctx context.Context, providerProductID, name, description string) (string, error) {
	if providerProductID == "" {
		params := &stripe.ProductParams{
			Name:        stripe.String(name),
			Description: stripe.String(description),
		}
		params.Context = ctx
		product, err := c.api.Products.New(params)
		if err != nil {
			return "", fmt.Errorf("create provider product: %w", err)
		}
		return product.ID, nil
	}

	params := &stripe.ProductParams{
		Name:        stripe.String(name),
		Description: stripe.String(description),
	}
	params.Context = ctx
	if _, err := c.api.Products.Update(providerProductID, params); err != nil {
		return "", fmt.Errorf("update provider product %s: %w", providerProductID, err)
	}
	return providerProductID, nil
}

// SyncPrice creates a new one-time price for the product. Prices are
// immutable at the provider, so a changed amount always yields a new id.
func (c *Client) SyncPrice(ctx context.Context, providerProductID string, amount float64) (string, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(providerProductID),
		UnitAmount: stripe.Int64(dollarsToCents(amount)),
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	price, err := c.api.Prices.New(params)
	if err != nil {
		return "", fmt.Errorf("create provider price: %w", err)
	}
	return price.ID, nil
}

// SyncRecurringPrice creates a recurring price for a subscription tier.
// Interval is "month" or "year"; lifetime tiers use SyncPrice instead.
func (c *Client) SyncRecurringPrice(ctx context.Context, providerProductID string, amount float64, interval string) (string, error) {
	params := &stripe.PriceParams{
		Product:    stripe.String(providerProductID),
		UnitAmount: stripe.Int64(dollarsToCents(amount)),
		Currency:   stripe.String(string(stripe.CurrencyUSD)),
		Recurring: &stripe.PriceRecurringParams{
			Interval: stripe.String(interval),
		},
	}
	params.Context = ctx
	price, err := c.api.Prices.New(params)
	if err != nil {
		return "", fmt.Errorf("create recurring provider price: %w", err)
	}
	return price.ID, nil
}

func dollarsToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
