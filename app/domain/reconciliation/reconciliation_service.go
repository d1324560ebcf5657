package reconciliation

import (
	"context"

	"github.com/mileusna/crontab"
	"shopstack.io/product-catalog/app/domain/product"
	"shopstack.io/product-catalog/app/utils/logger"
)

// ReconciliationCrontabService periodically retries inventory creation
// for products whose remote record never materialized.
type ReconciliationCrontabService struct {
	ProductService *product.ProductService
}

func NewService(productService *product.ProductService) *ReconciliationCrontabService {
	return &ReconciliationCrontabService{
		ProductService: productService,
	}
}

func (rs *ReconciliationCrontabService) Start(ctx context.Context, ctab *crontab.Crontab) {
	rs.Reconcile(ctx)
	ctab.AddJob("*/5 * * * *", func() {
		rs.Reconcile(ctx)
	})
}

func (rs *ReconciliationCrontabService) Reconcile(ctx context.Context) {
	if err := rs.ProductService.ReconcilePendingInventory(ctx); err != nil {
		logger.GetLogger().
			WithField("error_code", "0b6e8d2a-4c97-4f51-b3e0-7a1d5c9f2e84").
			Warnf("pending inventory reconciliation run failed: %v", err)
	}
}
