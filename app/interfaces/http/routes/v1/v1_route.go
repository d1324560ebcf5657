package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"shopstack.io/product-catalog/app/interfaces/http/routes/v1/products"
	"shopstack.io/product-catalog/config"
)

type V1Route struct {
	productsRoute *products.ProductsRoute
}

func NewV1Route(
	productsRoute *products.ProductsRoute,
) *V1Route {
	return &V1Route{
		productsRoute,
	}
}

func (v1Route *V1Route) RegisterRouter(router gin.IRouter) {
	v1Router := router.Group("/api/v1")
	v1Router.GET("/version", GetVersion)
	v1Route.productsRoute.RegisterRouter(v1Router)
}

func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": config.Version,
	})
}
