package repository

import (
	"github.com/google/wire"
	"shopstack.io/product-catalog/app/infrastructure/database/repository/productrepo"
)

var RepositoryProvider = wire.NewSet(
	productrepo.NewProductGormRepository,
)
