package infrastructure

import (
	"github.com/google/wire"
	"shopstack.io/product-catalog/app/domain/inventory"
	"shopstack.io/product-catalog/app/infrastructure/cache"
	"shopstack.io/product-catalog/app/utils/httpclients/inventoryclient"
)

var InfrastructureProvider = wire.NewSet(
	cache.NewCacheService,
	inventoryclient.NewClient,
	wire.Bind(new(inventory.API), new(*inventoryclient.Client)),
)
