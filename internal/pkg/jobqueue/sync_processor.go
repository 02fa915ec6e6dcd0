package jobqueue

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/waveforge/waveforge/app/repository"
	"github.com/waveforge/waveforge/internal/pkg/payments"
	"github.com/waveforge/waveforge/internal/pkg/pricing"
)

// processProviderSyncJob pushes a product and its current price to the
// payment provider and stores the returned references on the product row.
func (q *Queue) processProviderSyncJob(ctx context.Context, job *Job) error {
	payload, err := ProviderSyncJobPayloadFromMap(job.Payload)
	if err != nil {
		return fmt.Errorf("invalid provider sync payload: %w", err)
	}

	client := payments.Get()
	if client == nil {
		return fmt.Errorf("payment provider is not configured")
	}

	productID, err := uuid.Parse(payload.ProductID)
	if err != nil {
		return fmt.Errorf("invalid product id %q: %w", payload.ProductID, err)
	}

	productRepo := repository.GetGlobalFactory().GetProductRepository()
	product, err := productRepo.GetByID(productID)
	if err != nil {
		return fmt.Errorf("load product %s: %w", payload.ProductID, err)
	}

	providerProductID, err := client.SyncProduct(ctx, product.ProviderProduct, product.Name, product.ShortDescription)
	if err != nil {
		return err
	}
	product.ProviderProduct = providerProductID

	amount := pricing.EffectivePrice(product.Price, product.SalePrice)
	if amount > 0 {
		priceID, err := client.SyncPrice(ctx, providerProductID, amount)
		if err != nil {
			return err
		}
		product.ProviderPrice = priceID
	}

	return productRepo.Update(product)
}
