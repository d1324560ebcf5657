package products

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"shopstack.io/product-catalog/app/domain/common"
	"shopstack.io/product-catalog/app/domain/product"
	"shopstack.io/product-catalog/app/interfaces/http/responses"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("productcategory", func(fl validator.FieldLevel) bool {
			_, known := product.CategoryFromString(fl.Field().String())
			return known
		})
	}
}

type ProductsRoute struct {
	productService *product.ProductService
}

func NewProductsRoute(productService *product.ProductService) *ProductsRoute {
	return &ProductsRoute{
		productService: productService,
	}
}

func (route *ProductsRoute) RegisterRouter(router gin.IRouter) {
	productsRouter := router.Group("/products")
	productsRouter.POST("/add", route.AddProduct)
	productsRouter.GET("/all", route.GetProductsAll)
	productsRouter.GET("/inventoryById/:inventoryId", route.GetProductByInventoryID)
	productsRouter.GET("/productByPriceRange", route.GetProductsByPriceRange)
	productsRouter.GET("/productByPriceGreaterThanEqual", route.GetProductsByPriceGreaterThanEqual)
	productsRouter.GET("/productByPriceLessThanEqual", route.GetProductsByPriceLessThanEqual)
	productsRouter.GET("/productByQuantity", route.GetProductsByQuantity)
	productsRouter.GET("/productByCategory", route.GetProductsByCategory)
	productsRouter.GET("/:id", route.GetProductByID)
	productsRouter.PUT("/", route.UpdateProduct)
	productsRouter.DELETE("/:id", route.DeleteProduct)
}

type CreateProductBody struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=500"`
	Category    string  `json:"category" binding:"required,productcategory"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
}

type UpdateProductBody struct {
	ID          string  `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"max=500"`
	Category    string  `json:"category" binding:"required,productcategory"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	NewQuantity int     `json:"newQuantity" binding:"gte=0"`
}

func (route *ProductsRoute) AddProduct(reqCtx *gin.Context) {
	var body CreateProductBody
	if err := reqCtx.ShouldBindJSON(&body); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "7d3e0c5a-9b24-4f68-a1d7-5e8c2f0b6d93",
			Error: err.Error(),
		})
		return
	}

	created, err := route.productService.CreateProduct(reqCtx.Request.Context(), &product.CreateProductRequest{
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
		Quantity:    body.Quantity,
	})
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusCreated, created)
}

func (route *ProductsRoute) GetProductsAll(reqCtx *gin.Context) {
	products, err := route.productService.GetProductsAll(reqCtx.Request.Context())
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, products)
}

func (route *ProductsRoute) GetProductByID(reqCtx *gin.Context) {
	p, err := route.productService.GetProductByID(reqCtx.Request.Context(), reqCtx.Param("id"))
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, p)
}

func (route *ProductsRoute) GetProductByInventoryID(reqCtx *gin.Context) {
	p, err := route.productService.GetProductByInventoryID(reqCtx.Request.Context(), reqCtx.Param("inventoryId"))
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, p)
}

func (route *ProductsRoute) GetProductsByPriceRange(reqCtx *gin.Context) {
	minPrice, ok := priceQuery(reqCtx, "minPrice")
	if !ok {
		return
	}
	maxPrice, ok := priceQuery(reqCtx, "maxPrice")
	if !ok {
		return
	}
	products, err := route.productService.GetProductsByPriceRange(reqCtx.Request.Context(), minPrice, maxPrice)
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, products)
}

func (route *ProductsRoute) GetProductsByPriceGreaterThanEqual(reqCtx *gin.Context) {
	price, ok := priceQuery(reqCtx, "price")
	if !ok {
		return
	}
	products, err := route.productService.GetProductsByPriceGreaterThanEqual(reqCtx.Request.Context(), price)
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, products)
}

func (route *ProductsRoute) GetProductsByPriceLessThanEqual(reqCtx *gin.Context) {
	price, ok := priceQuery(reqCtx, "price")
	if !ok {
		return
	}
	products, err := route.productService.GetProductsByPriceLessThanEqual(reqCtx.Request.Context(), price)
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, products)
}

func (route *ProductsRoute) GetProductsByQuantity(reqCtx *gin.Context) {
	quantity, err := strconv.Atoi(reqCtx.Query("quantity"))
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "4a9c7e1d-2f58-4b03-8d6a-0e5b9f3c7a21",
			Error: "quantity must be an integer",
		})
		return
	}
	products, err := route.productService.GetProductsByQuantity(reqCtx.Request.Context(), quantity)
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, products)
}

func (route *ProductsRoute) GetProductsByCategory(reqCtx *gin.Context) {
	products, err := route.productService.GetProductsByCategory(reqCtx.Request.Context(), reqCtx.Query("category"))
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, products)
}

func (route *ProductsRoute) UpdateProduct(reqCtx *gin.Context) {
	var body UpdateProductBody
	if err := reqCtx.ShouldBindJSON(&body); err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "d1f6b3e9-8a07-4c52-9e4b-6f0d2a8c5b17",
			Error: err.Error(),
		})
		return
	}

	updated, err := route.productService.UpdateProductByID(reqCtx.Request.Context(), &product.UpdateProductRequest{
		ID:          body.ID,
		Name:        body.Name,
		Description: body.Description,
		Category:    body.Category,
		Price:       body.Price,
		NewQuantity: body.NewQuantity,
	})
	if err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, updated)
}

func (route *ProductsRoute) DeleteProduct(reqCtx *gin.Context) {
	if err := route.productService.DeleteProductByID(reqCtx.Request.Context(), reqCtx.Param("id")); err != nil {
		abortWithError(reqCtx, err)
		return
	}
	reqCtx.JSON(http.StatusOK, responses.GeneralResponse[string]{
		Status: "ok",
		Result: "product deleted",
	})
}

func priceQuery(reqCtx *gin.Context, name string) (float64, bool) {
	value, err := strconv.ParseFloat(reqCtx.Query(name), 64)
	if err != nil {
		reqCtx.AbortWithStatusJSON(http.StatusBadRequest, responses.ErrorResponse{
			Code:  "9b0f5c2e-6d84-4a17-b3f9-8e1c4d7a0b52",
			Error: name + " must be a number",
		})
		return 0, false
	}
	return value, true
}

func abortWithError(reqCtx *gin.Context, err error) {
	code := "0f3d8a6c-1e95-4b27-a8d0-5c7f2e9b4d61"
	var domainErr *common.Error
	if errors.As(err, &domainErr) {
		code = domainErr.Code
	}

	status := http.StatusInternalServerError
	switch common.KindOf(err) {
	case common.KindValidation:
		status = http.StatusBadRequest
	case common.KindNotFound:
		status = http.StatusNotFound
	case common.KindServiceUnavailable, common.KindDependencyUnavailable:
		status = http.StatusServiceUnavailable
	}

	reqCtx.AbortWithStatusJSON(status, responses.ErrorResponse{
		Code:  code,
		Error: err.Error(),
	})
}
