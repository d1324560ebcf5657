package product_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"shopstack.io/product-catalog/app/domain/common"
	"shopstack.io/product-catalog/app/domain/inventory"
	"shopstack.io/product-catalog/app/domain/product"
	"shopstack.io/product-catalog/app/infrastructure/cache"
	"shopstack.io/product-catalog/app/mocks"
)

func alwaysAvailable() error { return nil }

func newTestService(t *testing.T) (*product.ProductService, *mocks.MockProductRepository, *mocks.MockAPI, cache.CacheService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProductRepository(ctrl)
	api := mocks.NewMockAPI(ctrl)
	cacheService := cache.NewMemoryCacheService()
	service := product.NewService(repo, api, cacheService, alwaysAvailable)
	return service, repo, api, cacheService
}

func unavailableErr() error {
	return common.NewError(common.KindDependencyUnavailable, "test", "inventory service unavailable")
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("happy_case", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *product.Product) error {
			p.ID = 1
			return nil
		})
		api.EXPECT().CreateInventory(ctx, gomock.Any(), 5).DoAndReturn(func(_ context.Context, productID string, quantity int) (*inventory.Record, error) {
			return &inventory.Record{InventoryID: "inv-1", ProductID: productID, StockQuantity: quantity}, nil
		})
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		created, err := service.CreateProduct(ctx, &product.CreateProductRequest{
			Name:        "Clavier mécanique",
			Description: "Clavier 75%",
			Category:    "ELECTRONIQUE",
			Price:       89.99,
			Quantity:    5,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.PublicID)
		assert.NotNil(t, created.InventoryID)
		assert.Equal(t, "inv-1", *created.InventoryID)
		assert.Equal(t, 5, created.StockQuantity)
		assert.False(t, created.IsFallback())
	})

	t.Run("inventory_unavailable_returns_fallback_and_keeps_local_row", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		var savedID string
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *product.Product) error {
			p.ID = 1
			savedID = p.PublicID
			return nil
		})
		api.EXPECT().CreateInventory(ctx, gomock.Any(), 3).Return(nil, unavailableErr())
		// No Update and no Delete: the local row stands as-is.

		created, err := service.CreateProduct(ctx, &product.CreateProductRequest{
			Name:     "Ballon",
			Category: "SPORT_ET_PLEIN_AIR",
			Price:    12.50,
			Quantity: 3,
		})

		assert.NoError(t, err)
		assert.True(t, created.IsFallback())
		assert.Equal(t, product.FallbackProductName, created.Name)
		assert.NotEmpty(t, savedID)
	})

	t.Run("inventory_called_exactly_once", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *product.Product) error {
			p.ID = 2
			return nil
		})
		api.EXPECT().CreateInventory(ctx, gomock.Any(), 1).Times(1).Return(&inventory.Record{InventoryID: "inv-2", StockQuantity: 1}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		_, err := service.CreateProduct(ctx, &product.CreateProductRequest{
			Name:     "Stylo",
			Category: "PAPETERIE",
			Price:    2.10,
			Quantity: 1,
		})
		assert.NoError(t, err)
	})

	t.Run("validation_rejects_before_any_side_effect", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		testCases := []struct {
			name string
			req  *product.CreateProductRequest
		}{
			{"zero_price", &product.CreateProductRequest{Name: "X", Category: "AUTRE", Price: 0, Quantity: 1}},
			{"negative_quantity", &product.CreateProductRequest{Name: "X", Category: "AUTRE", Price: 1, Quantity: -1}},
			{"unknown_category", &product.CreateProductRequest{Name: "X", Category: "GADGETS", Price: 1, Quantity: 1}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := service.CreateProduct(ctx, tc.req)
				assert.True(t, common.IsKind(err, common.KindValidation))
			})
		}
	})
}

func TestGetProductsAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_hit_equals_miss", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		stored := []*product.Product{
			{PublicID: "prod_a", Name: "A", Category: "MODE", Price: 10},
			{PublicID: "prod_b", Name: "B", Category: "AUTRE", Price: 20},
		}
		repo.EXPECT().FindAll(ctx).Times(1).Return(stored, nil)

		first, err := service.GetProductsAll(ctx)
		assert.NoError(t, err)
		second, err := service.GetProductsAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, first, second)
		assert.Len(t, second, 2)
		assert.Equal(t, "prod_a", second[0].PublicID)
	})

	t.Run("degraded_window_rejects_without_touching_store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockProductRepository(ctrl)
		api := mocks.NewMockAPI(ctrl)
		degraded := func() error {
			return common.NewError(common.KindServiceUnavailable, "test", "catalog unavailable")
		}
		service := product.NewService(repo, api, cache.NewMemoryCacheService(), degraded)

		_, err := service.GetProductsAll(ctx)
		assert.True(t, common.IsKind(err, common.KindServiceUnavailable))
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("happy_case_second_read_served_from_cache", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_a").Times(1).Return(&product.Product{PublicID: "prod_a", Name: "A", Price: 10}, nil)

		first, err := service.GetProductByID(ctx, "prod_a")
		assert.NoError(t, err)
		second, err := service.GetProductByID(ctx, "prod_a")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("missing_product", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_missing").Return(nil, nil)

		_, err := service.GetProductByID(ctx, "prod_missing")
		assert.True(t, common.IsKind(err, common.KindNotFound))
	})
}

func TestGetProductByInventoryID(t *testing.T) {
	ctx := context.Background()
	service, repo, _, _ := newTestService(t)

	repo.EXPECT().FindByInventoryID(ctx, "inv-9").Return(nil, nil)

	_, err := service.GetProductByInventoryID(ctx, "inv-9")
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestUpdateProductByID(t *testing.T) {
	ctx := context.Background()
	invID := "inv-1"

	t.Run("happy_case_read_before_write", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_a").Return(&product.Product{ID: 1, PublicID: "prod_a", Name: "Old", Category: "MODE", Price: 5, InventoryID: &invID, StockQuantity: 2}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		api.EXPECT().GetInventory(ctx, invID).Return(&inventory.Record{InventoryID: invID, StockQuantity: 2}, nil)
		api.EXPECT().UpdateInventory(ctx, invID, inventory.UpdateRequest{ProductID: "prod_a", NewQuantity: 7}).
			Return(&inventory.Record{InventoryID: invID, StockQuantity: 7}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		updated, err := service.UpdateProductByID(ctx, &product.UpdateProductRequest{
			ID: "prod_a", Name: "New", Category: "MODE", Price: 6, NewQuantity: 7,
		})

		assert.NoError(t, err)
		assert.Equal(t, "New", updated.Name)
		assert.Equal(t, 7, updated.StockQuantity)
	})

	t.Run("pending_inventory_link_updates_locally_only", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_b").Return(&product.Product{ID: 2, PublicID: "prod_b", Name: "Old", Category: "AUTRE", Price: 3}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		// No inventory calls at all.

		updated, err := service.UpdateProductByID(ctx, &product.UpdateProductRequest{
			ID: "prod_b", Name: "New", Category: "AUTRE", Price: 4, NewQuantity: 1,
		})

		assert.NoError(t, err)
		assert.Nil(t, updated.InventoryID)
		assert.Equal(t, "New", updated.Name)
	})

	t.Run("inventory_unavailable_local_write_stands", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		var persisted *product.Product
		repo.EXPECT().FindByPublicID(ctx, "prod_c").Return(&product.Product{ID: 3, PublicID: "prod_c", Name: "Old", Category: "MODE", Price: 5, InventoryID: &invID}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *product.Product) error {
			persisted = p
			return nil
		})
		api.EXPECT().GetInventory(ctx, invID).Return(nil, unavailableErr())

		updated, err := service.UpdateProductByID(ctx, &product.UpdateProductRequest{
			ID: "prod_c", Name: "New", Category: "MODE", Price: 6, NewQuantity: 9,
		})

		assert.NoError(t, err)
		assert.True(t, updated.IsFallback())
		assert.Equal(t, "New", persisted.Name)
	})

	t.Run("remote_record_gone_is_consistency_error", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_d").Return(&product.Product{ID: 4, PublicID: "prod_d", Name: "Old", Category: "MODE", Price: 5, InventoryID: &invID}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		api.EXPECT().GetInventory(ctx, invID).Return(nil, common.NewError(common.KindNotFound, "test", "inventory record not found"))

		_, err := service.UpdateProductByID(ctx, &product.UpdateProductRequest{
			ID: "prod_d", Name: "New", Category: "MODE", Price: 6, NewQuantity: 1,
		})
		assert.True(t, common.IsKind(err, common.KindConsistency))
	})

	t.Run("missing_product", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_missing").Return(nil, nil)

		_, err := service.UpdateProductByID(ctx, &product.UpdateProductRequest{
			ID: "prod_missing", Name: "X", Category: "AUTRE", Price: 1, NewQuantity: 0,
		})
		assert.True(t, common.IsKind(err, common.KindNotFound))
	})

	t.Run("malformed_id_rejected_before_any_side_effect", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.UpdateProductByID(ctx, &product.UpdateProductRequest{
			ID: "not-a-product-id!", Name: "X", Category: "AUTRE", Price: 1, NewQuantity: 0,
		})
		assert.True(t, common.IsKind(err, common.KindValidation))
	})

	t.Run("no_stale_read_after_update", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_e").Times(1).Return(&product.Product{ID: 5, PublicID: "prod_e", Name: "Old", Category: "MODE", Price: 5, InventoryID: &invID, StockQuantity: 1}, nil)

		// Warm the read cache.
		first, err := service.GetProductByID(ctx, "prod_e")
		assert.NoError(t, err)
		assert.Equal(t, "Old", first.Name)

		repo.EXPECT().FindByPublicID(ctx, "prod_e").Return(&product.Product{ID: 5, PublicID: "prod_e", Name: "Old", Category: "MODE", Price: 5, InventoryID: &invID, StockQuantity: 1}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Times(2).Return(nil)
		api.EXPECT().GetInventory(ctx, invID).Return(&inventory.Record{InventoryID: invID, StockQuantity: 1}, nil)
		api.EXPECT().UpdateInventory(ctx, invID, gomock.Any()).Return(&inventory.Record{InventoryID: invID, StockQuantity: 4}, nil)

		_, err = service.UpdateProductByID(ctx, &product.UpdateProductRequest{
			ID: "prod_e", Name: "New", Category: "MODE", Price: 5, NewQuantity: 4,
		})
		assert.NoError(t, err)

		// The eviction forces the next read back to the store.
		repo.EXPECT().FindByPublicID(ctx, "prod_e").Return(&product.Product{ID: 5, PublicID: "prod_e", Name: "New", Category: "MODE", Price: 5, InventoryID: &invID, StockQuantity: 4}, nil)
		fresh, err := service.GetProductByID(ctx, "prod_e")
		assert.NoError(t, err)
		assert.Equal(t, "New", fresh.Name)
		assert.Equal(t, 4, fresh.StockQuantity)
	})
}

func TestDeleteProductByID(t *testing.T) {
	ctx := context.Background()
	invID := "inv-1"

	t.Run("happy_case_local_then_remote", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		p := &product.Product{ID: 1, PublicID: "prod_a", Name: "A", InventoryID: &invID}
		repo.EXPECT().FindByPublicID(ctx, "prod_a").Return(p, nil)
		repo.EXPECT().FindByInventoryID(ctx, invID).Return(p, nil)
		localDelete := repo.EXPECT().Delete(ctx, "prod_a").Return(nil)
		api.EXPECT().DeleteInventory(ctx, "prod_a").After(localDelete).Return(nil)

		assert.NoError(t, service.DeleteProductByID(ctx, "prod_a"))
	})

	t.Run("remote_failure_absorbed", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		p := &product.Product{ID: 1, PublicID: "prod_b", Name: "B", InventoryID: &invID}
		repo.EXPECT().FindByPublicID(ctx, "prod_b").Return(p, nil)
		repo.EXPECT().FindByInventoryID(ctx, invID).Return(p, nil)
		repo.EXPECT().Delete(ctx, "prod_b").Return(nil)
		api.EXPECT().DeleteInventory(ctx, "prod_b").Return(unavailableErr())

		assert.NoError(t, service.DeleteProductByID(ctx, "prod_b"))
	})

	t.Run("missing_product_is_not_found_and_no_remote_call", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_missing").Return(nil, nil)

		err := service.DeleteProductByID(ctx, "prod_missing")
		assert.True(t, common.IsKind(err, common.KindNotFound))
	})

	t.Run("unresolved_inventory_reference", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByPublicID(ctx, "prod_c").Return(&product.Product{ID: 1, PublicID: "prod_c", InventoryID: &invID}, nil)
		repo.EXPECT().FindByInventoryID(ctx, invID).Return(nil, nil)

		err := service.DeleteProductByID(ctx, "prod_c")
		assert.True(t, common.IsKind(err, common.KindConsistency))
	})

	t.Run("evicts_cached_listings", func(t *testing.T) {
		service, repo, api, cacheService := newTestService(t)

		assert.NoError(t, cacheService.Set(ctx, cache.ProductAllKey, `[]`, 0))

		p := &product.Product{ID: 1, PublicID: "prod_d", InventoryID: &invID}
		repo.EXPECT().FindByPublicID(ctx, "prod_d").Return(p, nil)
		repo.EXPECT().FindByInventoryID(ctx, invID).Return(p, nil)
		repo.EXPECT().Delete(ctx, "prod_d").Return(nil)
		api.EXPECT().DeleteInventory(ctx, "prod_d").Return(nil)

		assert.NoError(t, service.DeleteProductByID(ctx, "prod_d"))

		_, err := cacheService.Get(ctx, cache.ProductAllKey)
		assert.ErrorIs(t, err, cache.ErrCacheMiss)
	})
}

func TestDerivedQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("price_range_is_inclusive_and_sorted", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByFilter(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, filter product.ProductFilter) ([]*product.Product, error) {
			assert.Equal(t, 10.0, *filter.PriceMin)
			assert.Equal(t, 20.0, *filter.PriceMax)
			assert.True(t, filter.SortPriceAscending)
			return []*product.Product{
				{PublicID: "prod_a", Price: 10},
				{PublicID: "prod_b", Price: 20},
			}, nil
		})

		products, err := service.GetProductsByPriceRange(ctx, 10, 20)
		assert.NoError(t, err)
		assert.Len(t, products, 2)
		assert.LessOrEqual(t, products[0].Price, products[1].Price)
	})

	t.Run("price_bounds_single_sided", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByFilter(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, filter product.ProductFilter) ([]*product.Product, error) {
			assert.Equal(t, 15.0, *filter.PriceMin)
			assert.Nil(t, filter.PriceMax)
			return nil, nil
		})
		_, err := service.GetProductsByPriceGreaterThanEqual(ctx, 15)
		assert.NoError(t, err)

		repo.EXPECT().FindByFilter(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, filter product.ProductFilter) ([]*product.Product, error) {
			assert.Nil(t, filter.PriceMin)
			assert.Equal(t, 15.0, *filter.PriceMax)
			return nil, nil
		})
		_, err = service.GetProductsByPriceLessThanEqual(ctx, 15)
		assert.NoError(t, err)
	})

	t.Run("quantity_filters_snapshot", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindAll(ctx).Return([]*product.Product{
			{PublicID: "prod_a", StockQuantity: 3},
			{PublicID: "prod_b", StockQuantity: 5},
			{PublicID: "prod_c", StockQuantity: 3},
		}, nil)

		products, err := service.GetProductsByQuantity(ctx, 3)
		assert.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("category_normalizes_input", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindAll(ctx).Return([]*product.Product{
			{PublicID: "prod_a", Category: product.CategoryMode},
			{PublicID: "prod_b", Category: product.CategoryAutre},
		}, nil)

		products, err := service.GetProductsByCategory(ctx, " mode ")
		assert.NoError(t, err)
		assert.Len(t, products, 1)
		assert.Equal(t, "prod_a", products[0].PublicID)
	})

	t.Run("unknown_category_is_validation_error", func(t *testing.T) {
		service, _, _, _ := newTestService(t)

		_, err := service.GetProductsByCategory(ctx, "GADGETS")
		assert.True(t, common.IsKind(err, common.KindValidation))
	})

	t.Run("no_matches_is_empty_not_error", func(t *testing.T) {
		service, repo, _, _ := newTestService(t)

		repo.EXPECT().FindByFilter(ctx, gomock.Any()).Return([]*product.Product{}, nil)

		products, err := service.GetProductsByPriceRange(ctx, 1000, 2000)
		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestReconcilePendingInventory(t *testing.T) {
	ctx := context.Background()

	t.Run("repairs_pending_links", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		pending := []*product.Product{
			{ID: 1, PublicID: "prod_a", StockQuantity: 2},
			{ID: 2, PublicID: "prod_b", StockQuantity: 4},
		}
		repo.EXPECT().FindByFilter(ctx, product.ProductFilter{MissingInventoryID: true}).Return(pending, nil)
		api.EXPECT().CreateInventory(ctx, "prod_a", 2).Return(&inventory.Record{InventoryID: "inv-a", StockQuantity: 2}, nil)
		api.EXPECT().CreateInventory(ctx, "prod_b", 4).Return(&inventory.Record{InventoryID: "inv-b", StockQuantity: 4}, nil)
		repo.EXPECT().Update(ctx, gomock.Any()).Times(2).Return(nil)

		assert.NoError(t, service.ReconcilePendingInventory(ctx))
		assert.Equal(t, "inv-a", *pending[0].InventoryID)
		assert.Equal(t, "inv-b", *pending[1].InventoryID)
	})

	t.Run("stops_early_when_dependency_unavailable", func(t *testing.T) {
		service, repo, api, _ := newTestService(t)

		pending := []*product.Product{
			{ID: 1, PublicID: "prod_a", StockQuantity: 2},
			{ID: 2, PublicID: "prod_b", StockQuantity: 4},
		}
		repo.EXPECT().FindByFilter(ctx, product.ProductFilter{MissingInventoryID: true}).Return(pending, nil)
		api.EXPECT().CreateInventory(ctx, "prod_a", 2).Return(nil, unavailableErr())
		// prod_b is not attempted in this run.

		assert.NoError(t, service.ReconcilePendingInventory(ctx))
		assert.Nil(t, pending[0].InventoryID)
		assert.Nil(t, pending[1].InventoryID)
	})
}

func TestCreateUpdateDeleteScenario(t *testing.T) {
	ctx := context.Background()
	service, repo, api, _ := newTestService(t)

	store := map[string]*product.Product{}
	byInventory := map[string]*product.Product{}

	repo.EXPECT().Create(ctx, gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, p *product.Product) error {
		p.ID = uint(len(store) + 1)
		store[p.PublicID] = p
		return nil
	})
	repo.EXPECT().Update(ctx, gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, p *product.Product) error {
		store[p.PublicID] = p
		if p.InventoryID != nil {
			byInventory[*p.InventoryID] = p
		}
		return nil
	})
	repo.EXPECT().FindByPublicID(ctx, gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, id string) (*product.Product, error) {
		return store[id], nil
	})
	repo.EXPECT().FindByInventoryID(ctx, gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, id string) (*product.Product, error) {
		return byInventory[id], nil
	})
	repo.EXPECT().Delete(ctx, gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, id string) error {
		delete(store, id)
		return nil
	})

	nextInventory := 0
	api.EXPECT().CreateInventory(ctx, gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, productID string, quantity int) (*inventory.Record, error) {
		nextInventory++
		return &inventory.Record{InventoryID: fmt.Sprintf("inv-%d", nextInventory), ProductID: productID, StockQuantity: quantity}, nil
	})
	api.EXPECT().GetInventory(ctx, gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, id string) (*inventory.Record, error) {
		return &inventory.Record{InventoryID: id}, nil
	})
	api.EXPECT().UpdateInventory(ctx, gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(func(_ context.Context, id string, req inventory.UpdateRequest) (*inventory.Record, error) {
		return &inventory.Record{InventoryID: id, ProductID: req.ProductID, StockQuantity: req.NewQuantity}, nil
	})
	api.EXPECT().DeleteInventory(ctx, gomock.Any()).AnyTimes().Return(nil)

	created, err := service.CreateProduct(ctx, &product.CreateProductRequest{
		Name: "Lampe", Category: "MAISON_ET_VIE", Price: 30, Quantity: 2,
	})
	assert.NoError(t, err)
	assert.False(t, created.IsFallback())

	updated, err := service.UpdateProductByID(ctx, &product.UpdateProductRequest{
		ID: created.PublicID, Name: "Lampe LED", Category: "MAISON_ET_VIE", Price: 35, NewQuantity: 6,
	})
	assert.NoError(t, err)
	assert.Equal(t, 6, updated.StockQuantity)

	assert.NoError(t, service.DeleteProductByID(ctx, created.PublicID))

	_, err = service.GetProductByID(ctx, created.PublicID)
	assert.True(t, common.IsKind(err, common.KindNotFound))
}

func TestAvailabilityPredicate(t *testing.T) {
	at := func(hour int) func() time.Time {
		return func() time.Time {
			return time.Date(2025, 6, 1, hour, 30, 0, 0, time.UTC)
		}
	}

	t.Run("degraded_hour_rejects", func(t *testing.T) {
		predicate := product.NewDegradedWindowPredicate("17", at(17))
		err := predicate()
		assert.True(t, common.IsKind(err, common.KindServiceUnavailable))
	})

	t.Run("other_hours_pass", func(t *testing.T) {
		predicate := product.NewDegradedWindowPredicate("17", at(9))
		assert.NoError(t, predicate())
	})

	t.Run("unset_setting_is_always_available", func(t *testing.T) {
		predicate := product.NewDegradedWindowPredicate("", at(17))
		assert.NoError(t, predicate())
	})

	t.Run("invalid_setting_is_always_available", func(t *testing.T) {
		predicate := product.NewDegradedWindowPredicate("25", at(17))
		assert.NoError(t, predicate())
	})
}
