package domain

import (
	"github.com/google/wire"
	"shopstack.io/product-catalog/app/domain/product"
	"shopstack.io/product-catalog/app/domain/reconciliation"
)

var ServiceProvider = wire.NewSet(
	product.NewAvailabilityPredicate,
	product.NewService,
	reconciliation.NewService,
)
