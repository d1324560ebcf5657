//go:build wireinject

package main

import (
	"github.com/google/wire"
	"shopstack.io/product-catalog/app/domain"
	"shopstack.io/product-catalog/app/infrastructure"
	"shopstack.io/product-catalog/app/infrastructure/database"
	"shopstack.io/product-catalog/app/infrastructure/database/repository"
	"shopstack.io/product-catalog/app/interfaces/http"
	"shopstack.io/product-catalog/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		database.NewDB,
		repository.RepositoryProvider,
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
