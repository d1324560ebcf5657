package routes

import (
	"github.com/google/wire"
	v1 "shopstack.io/product-catalog/app/interfaces/http/routes/v1"
	"shopstack.io/product-catalog/app/interfaces/http/routes/v1/products"
)

var RouteProvider = wire.NewSet(
	products.NewProductsRoute,
	v1.NewV1Route,
)
