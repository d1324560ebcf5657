package product

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redsync/redsync/v4"
	"golang.org/x/sync/singleflight"
	"shopstack.io/product-catalog/app/domain/common"
	"shopstack.io/product-catalog/app/domain/inventory"
	"shopstack.io/product-catalog/app/infrastructure/cache"
	"shopstack.io/product-catalog/app/utils/functional"
	"shopstack.io/product-catalog/app/utils/idgen"
	"shopstack.io/product-catalog/app/utils/logger"
)

// ProductService orchestrates the split product/inventory aggregate: it
// owns the local store writes, reaches inventory state only through the
// inventory API, and serves every read through the cache layer.
//
// Create and delete are two-phase without compensation. A product whose
// inventory link is still pending is a valid transient state repaired by
// reconciliation, and a remote delete failing after the local row is gone
// is an accepted inconsistency window. Both trade strict atomicity for
// catalog availability.
type ProductService struct {
	productrepo  ProductRepository
	inventoryAPI inventory.API
	cacheService cache.CacheService
	available    AvailabilityPredicate
	group        singleflight.Group
}

func NewService(
	productrepo ProductRepository,
	inventoryAPI inventory.API,
	cacheService cache.CacheService,
	available AvailabilityPredicate,
) *ProductService {
	return &ProductService{
		productrepo:  productrepo,
		inventoryAPI: inventoryAPI,
		cacheService: cacheService,
		available:    available,
	}
}

// CreateProduct persists the product locally, then asks the inventory
// service for a stock record. The local write is never rolled back: when
// the dependency is unavailable the caller gets the sentinel product and
// the pending row stays behind for reconciliation.
func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	publicID, err := idgen.GenerateSecureID("prod", 16)
	if err != nil {
		return nil, common.WrapError(common.KindConsistency, "7f6f2f1e-5b7a-4f43-96a3-d76fddfd3c9a", "failed to generate product id", err)
	}

	category, _ := CategoryFromString(req.Category)
	p := &Product{
		PublicID:      publicID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      category,
		Price:         req.Price,
		StockQuantity: req.Quantity,
	}
	if err := s.productrepo.Create(ctx, p); err != nil {
		return nil, common.WrapError(common.KindPersistence, "41e70dd4-d0c7-44c6-9c89-9e013b0f36f6", "failed to persist product", err)
	}
	if p.ID == 0 || p.PublicID == "" {
		return nil, common.NewError(common.KindConsistency, "b3c96a2e-9b64-4e61-92f7-4e14fca1de0a", "product id missing after save")
	}

	record, err := s.inventoryAPI.CreateInventory(ctx, p.PublicID, req.Quantity)
	if err != nil {
		if common.IsKind(err, common.KindDependencyUnavailable) {
			logger.GetLogger().
				WithField("error_code", "09d8cf1a-7a0e-4cd2-b6dd-4f202e13d68e").
				WithField("product_id", p.PublicID).
				Warnf("inventory creation degraded, returning fallback product: %v", err)
			s.evictProductCache(ctx)
			return FallbackProduct(), nil
		}
		return nil, err
	}

	inventoryID := record.InventoryID
	p.InventoryID = &inventoryID
	p.StockQuantity = record.StockQuantity
	if err := s.productrepo.Update(ctx, p); err != nil {
		return nil, common.WrapError(common.KindPersistence, "5a7e9f77-3f93-4a06-95a1-c3cb7d2b1fb0", "failed to persist inventory acknowledgment", err)
	}

	s.evictProductCache(ctx)
	return p, nil
}

// GetProductsAll lists the catalog through the cache. The availability
// predicate runs first so a degraded window is never cached.
func (s *ProductService) GetProductsAll(ctx context.Context) ([]*Product, error) {
	if err := s.available(); err != nil {
		return nil, err
	}
	return cache.Aside(ctx, s.cacheService, &s.group, cache.ProductAllKey, 0, func(ctx context.Context) ([]*Product, error) {
		return s.findAll(ctx)
	})
}

func (s *ProductService) GetProductByID(ctx context.Context, publicID string) (*Product, error) {
	key := fmt.Sprintf(cache.ProductByIDKeyPattern, publicID)
	return cache.Aside(ctx, s.cacheService, &s.group, key, 0, func(ctx context.Context) (*Product, error) {
		p, err := s.productrepo.FindByPublicID(ctx, publicID)
		if err != nil {
			return nil, common.WrapError(common.KindPersistence, "1a2b8e0c-25a4-4b69-9f73-aa9e9f6e4c70", "failed to load product", err)
		}
		if p == nil {
			return nil, common.NewError(common.KindNotFound, "6cf17a4e-9c2e-41b0-9a3c-df6c1b0a9f5d", "product not found: "+publicID)
		}
		return p, nil
	})
}

// GetProductByInventoryID resolves a product through the secondary index
// on its inventory reference.
func (s *ProductService) GetProductByInventoryID(ctx context.Context, inventoryID string) (*Product, error) {
	key := fmt.Sprintf(cache.ProductByInventoryKeyPattern, inventoryID)
	return cache.Aside(ctx, s.cacheService, &s.group, key, 0, func(ctx context.Context) (*Product, error) {
		p, err := s.productrepo.FindByInventoryID(ctx, inventoryID)
		if err != nil {
			return nil, common.WrapError(common.KindPersistence, "e9c5bb1d-8a21-4da5-b2f1-8a3df9f0c6b7", "failed to load product by inventory id", err)
		}
		if p == nil {
			return nil, common.NewError(common.KindNotFound, "f7410c9a-4f77-4a4b-8a3f-1b6f4dba6e1c", "inventory not found: "+inventoryID)
		}
		return p, nil
	})
}

// UpdateProductByID applies the field changes locally, then performs the
// remote read-before-write and pushes the new stock quantity. A product
// still waiting for its inventory link accepts local-only updates. When
// the dependency is unavailable the local write stands and the sentinel
// product is returned.
func (s *ProductService) UpdateProductByID(ctx context.Context, req *UpdateProductRequest) (*Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Remote read-modify-write has no version check; serialize per
	// product when the backend can lock (see DESIGN.md). Best effort.
	if provider, ok := s.cacheService.(cache.MutexProvider); ok {
		mutex := provider.NewMutex(
			fmt.Sprintf(cache.ProductUpdateLockKeyPattern, req.ID),
			redsync.WithExpiry(8*time.Second),
			redsync.WithTries(3),
		)
		if err := mutex.LockContext(ctx); err != nil {
			logger.GetLogger().
				WithField("error_code", "2f8b7a61-9f0f-4d7f-97e1-fb2f0a6d81c3").
				WithField("product_id", req.ID).
				Warnf("proceeding without update lock: %v", err)
		} else {
			defer mutex.UnlockContext(ctx)
		}
	}

	p, err := s.productrepo.FindByPublicID(ctx, req.ID)
	if err != nil {
		return nil, common.WrapError(common.KindPersistence, "37f08c10-6f0a-49f7-8b0e-1f9d3c2ab651", "failed to load product", err)
	}
	if p == nil {
		return nil, common.NewError(common.KindNotFound, "8e41bd25-6d4c-4d8e-9f1a-3b9f0e4c7a52", "product not found: "+req.ID)
	}

	category, _ := CategoryFromString(req.Category)
	p.Name = req.Name
	p.Description = req.Description
	p.Category = category
	p.Price = req.Price
	if err := s.productrepo.Update(ctx, p); err != nil {
		return nil, common.WrapError(common.KindPersistence, "c0f1da5b-2b0c-4f97-8f8a-5f1b0c6e2d94", "failed to persist product update", err)
	}

	if p.InventoryID == nil {
		// Pending inventory link; reconciliation will attach the record.
		s.evictProductCache(ctx)
		return p, nil
	}

	if _, err := s.inventoryAPI.GetInventory(ctx, *p.InventoryID); err != nil {
		return s.degradeOrFail(ctx, p.PublicID, err)
	}

	record, err := s.inventoryAPI.UpdateInventory(ctx, *p.InventoryID, inventory.UpdateRequest{
		ProductID:   p.PublicID,
		NewQuantity: req.NewQuantity,
	})
	if err != nil {
		return s.degradeOrFail(ctx, p.PublicID, err)
	}

	p.StockQuantity = record.StockQuantity
	if err := s.productrepo.Update(ctx, p); err != nil {
		return nil, common.WrapError(common.KindPersistence, "d9a0c3f5-7e4b-4a1d-b6c2-0e8f5a7d3b16", "failed to persist stock snapshot", err)
	}

	s.evictProductCache(ctx)
	return p, nil
}

func (s *ProductService) degradeOrFail(ctx context.Context, publicID string, err error) (*Product, error) {
	if common.IsKind(err, common.KindDependencyUnavailable) {
		logger.GetLogger().
			WithField("error_code", "4bc0e7d8-2a15-4f2f-b1d9-6a3e9c0f7b24").
			WithField("product_id", publicID).
			Warnf("inventory sync degraded, returning fallback product: %v", err)
		s.evictProductCache(ctx)
		return FallbackProduct(), nil
	}
	if common.IsKind(err, common.KindNotFound) {
		// The local row references an inventory record the remote side
		// no longer knows; that is an invariant violation, not a miss.
		return nil, common.WrapError(common.KindConsistency, "0a1f7e3c-5d92-4b88-a6f0-2c9e8d4b7a61", "remote inventory record missing for product "+publicID, err)
	}
	return nil, err
}

// DeleteProductByID removes the local row first and then the remote
// inventory record. A remote failure after the local delete is logged and
// absorbed: the catalog row is gone either way.
func (s *ProductService) DeleteProductByID(ctx context.Context, publicID string) error {
	p, err := s.productrepo.FindByPublicID(ctx, publicID)
	if err != nil {
		return common.WrapError(common.KindPersistence, "63c5f0b9-1e8a-4d27-bd4f-9a2c7e0f5d38", "failed to load product", err)
	}
	if p == nil {
		return common.NewError(common.KindNotFound, "af52c9e1-0b74-4e3d-8c6a-5f1d9b2e7c40", "product not found: "+publicID)
	}

	if p.InventoryID != nil {
		linked, err := s.productrepo.FindByInventoryID(ctx, *p.InventoryID)
		if err != nil {
			return common.WrapError(common.KindPersistence, "58e2a7c4-9f31-4b06-a8d5-3c0f6e9b1d72", "failed to resolve inventory reference", err)
		}
		if linked == nil {
			return common.NewError(common.KindConsistency, "914d0f6b-7c2e-4a59-b3f8-6e5a1c8d0b27", "inventory reference unresolved for product "+publicID)
		}
	}

	if err := s.productrepo.Delete(ctx, p.PublicID); err != nil {
		return common.WrapError(common.KindPersistence, "7b9e4d21-5a0f-4c83-9d6b-2f8c1a5e0d94", "failed to delete product", err)
	}

	if err := s.inventoryAPI.DeleteInventory(ctx, p.PublicID); err != nil {
		// The local row is already gone; this window is repaired
		// administratively, never by resurrecting the product.
		logger.GetLogger().
			WithField("error_code", "c7a2f8e0-3d61-4b95-8f0c-1e9d5b4a2c73").
			WithField("product_id", p.PublicID).
			Warnf("remote inventory deletion failed after local delete: %v", err)
	}

	s.evictProductCache(ctx)
	return nil
}

// GetProductsByPriceRange returns products with min <= price <= max,
// ascending by price. No matches is an empty slice, never an error.
func (s *ProductService) GetProductsByPriceRange(ctx context.Context, minPrice, maxPrice float64) ([]*Product, error) {
	key := fmt.Sprintf(cache.ProductByPriceRangeKeyPattern, formatPrice(minPrice), formatPrice(maxPrice))
	return cache.Aside(ctx, s.cacheService, &s.group, key, 0, func(ctx context.Context) ([]*Product, error) {
		return s.findByFilter(ctx, ProductFilter{
			PriceMin:           &minPrice,
			PriceMax:           &maxPrice,
			SortPriceAscending: true,
		})
	})
}

func (s *ProductService) GetProductsByPriceGreaterThanEqual(ctx context.Context, price float64) ([]*Product, error) {
	key := fmt.Sprintf(cache.ProductByPriceGteKeyPattern, formatPrice(price))
	return cache.Aside(ctx, s.cacheService, &s.group, key, 0, func(ctx context.Context) ([]*Product, error) {
		return s.findByFilter(ctx, ProductFilter{
			PriceMin:           &price,
			SortPriceAscending: true,
		})
	})
}

func (s *ProductService) GetProductsByPriceLessThanEqual(ctx context.Context, price float64) ([]*Product, error) {
	key := fmt.Sprintf(cache.ProductByPriceLteKeyPattern, formatPrice(price))
	return cache.Aside(ctx, s.cacheService, &s.group, key, 0, func(ctx context.Context) ([]*Product, error) {
		return s.findByFilter(ctx, ProductFilter{
			PriceMax:           &price,
			SortPriceAscending: true,
		})
	})
}

// GetProductsByQuantity filters on the denormalized stock snapshot with a
// full scan; the catalog is small enough that no index is kept for it.
func (s *ProductService) GetProductsByQuantity(ctx context.Context, quantity int) ([]*Product, error) {
	key := fmt.Sprintf(cache.ProductByQuantityKeyPattern, quantity)
	return cache.Aside(ctx, s.cacheService, &s.group, key, 0, func(ctx context.Context) ([]*Product, error) {
		products, err := s.findAll(ctx)
		if err != nil {
			return nil, err
		}
		return functional.Filter(products, func(p *Product) bool {
			return p.StockQuantity == quantity
		}), nil
	})
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, category string) ([]*Product, error) {
	resolved, ok := CategoryFromString(category)
	if !ok {
		return nil, common.NewError(common.KindValidation, "21d6e9f4-0c83-4b57-a2d1-8f5b3e7c0a96", "unknown product category: "+category)
	}
	key := fmt.Sprintf(cache.ProductByCategoryKeyPattern, string(resolved))
	return cache.Aside(ctx, s.cacheService, &s.group, key, 0, func(ctx context.Context) ([]*Product, error) {
		products, err := s.findAll(ctx)
		if err != nil {
			return nil, err
		}
		return functional.Filter(products, func(p *Product) bool {
			return p.Category == resolved
		}), nil
	})
}

// ReconcilePendingInventory retries inventory creation for products still
// inside the creation window. It stops early once the dependency reports
// unavailable; the next run picks the remainder up.
func (s *ProductService) ReconcilePendingInventory(ctx context.Context) error {
	pending, err := s.productrepo.FindByFilter(ctx, ProductFilter{MissingInventoryID: true})
	if err != nil {
		return common.WrapError(common.KindPersistence, "eb30c1d7-4f58-4a92-b6e3-0d7a9c5f2e81", "failed to list pending products", err)
	}

	repaired := 0
	for _, p := range pending {
		record, err := s.inventoryAPI.CreateInventory(ctx, p.PublicID, p.StockQuantity)
		if err != nil {
			logger.GetLogger().
				WithField("error_code", "f0d8b5a2-6c91-4e37-8a4d-2b6f0e9c3d75").
				WithField("product_id", p.PublicID).
				Warnf("inventory reconciliation failed: %v", err)
			if common.IsKind(err, common.KindDependencyUnavailable) {
				break
			}
			continue
		}
		inventoryID := record.InventoryID
		p.InventoryID = &inventoryID
		p.StockQuantity = record.StockQuantity
		if err := s.productrepo.Update(ctx, p); err != nil {
			logger.GetLogger().
				WithField("error_code", "a5c9e2f7-1d04-4b68-93f5-7e0b8d4a6c12").
				WithField("product_id", p.PublicID).
				Warnf("failed to persist reconciled inventory: %v", err)
			continue
		}
		repaired++
	}

	if repaired > 0 {
		logger.GetLogger().WithField("count", repaired).Info("reconciled pending inventory links")
		s.evictProductCache(ctx)
	}
	return nil
}

func (s *ProductService) findAll(ctx context.Context) ([]*Product, error) {
	products, err := s.productrepo.FindAll(ctx)
	if err != nil {
		return nil, common.WrapError(common.KindPersistence, "b8f3d0a6-5e27-4c91-a4b0-9d2e6f8c1a35", "failed to list products", err)
	}
	return products, nil
}

func (s *ProductService) findByFilter(ctx context.Context, filter ProductFilter) ([]*Product, error) {
	products, err := s.productrepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, common.WrapError(common.KindPersistence, "3c7a1e9d-8b40-4f56-92c8-0e5d7a3f6b19", "failed to query products", err)
	}
	return products, nil
}

// evictProductCache drops the whole product namespace. Coarse on purpose:
// an occasional unnecessary miss is acceptable, a stale read is not.
func (s *ProductService) evictProductCache(ctx context.Context) {
	if err := s.cacheService.DeletePattern(ctx, cache.ProductNamespacePattern); err != nil {
		logger.GetLogger().
			WithField("error_code", "6e2d9c5b-0a78-4f13-b8e6-4c1f7d0a9e52").
			Warnf("failed to evict product cache: %v", err)
	}
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
