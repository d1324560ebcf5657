package productrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"shopstack.io/product-catalog/app/domain/product"
	"shopstack.io/product-catalog/app/infrastructure/database/dbschema"
	"shopstack.io/product-catalog/app/utils/functional"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) product.ProductRepository {
	return &ProductGormRepository{
		db: db,
	}
}

func (r *ProductGormRepository) Create(ctx context.Context, p *product.Product) error {
	model := dbschema.NewSchemaProduct(p)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *ProductGormRepository) FindByPublicID(ctx context.Context, publicID string) (*product.Product, error) {
	var model dbschema.Product
	err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *ProductGormRepository) FindByInventoryID(ctx context.Context, inventoryID string) (*product.Product, error) {
	var model dbschema.Product
	err := r.db.WithContext(ctx).Where("inventory_id = ?", inventoryID).First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return model.EtoD(), nil
}

func (r *ProductGormRepository) FindAll(ctx context.Context) ([]*product.Product, error) {
	var models []*dbschema.Product
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomain(models), nil
}

func (r *ProductGormRepository) FindByFilter(ctx context.Context, filter product.ProductFilter) ([]*product.Product, error) {
	query := r.db.WithContext(ctx).Model(&dbschema.Product{})
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.MissingInventoryID {
		query = query.Where("inventory_id IS NULL")
	}
	if filter.SortPriceAscending {
		query = query.Order("price asc")
	} else {
		query = query.Order("id")
	}

	var models []*dbschema.Product
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomain(models), nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p *product.Product) error {
	model := dbschema.NewSchemaProduct(p)
	return r.db.WithContext(ctx).Save(model).Error
}

func (r *ProductGormRepository) Delete(ctx context.Context, publicID string) error {
	return r.db.WithContext(ctx).Where("public_id = ?", publicID).Delete(&dbschema.Product{}).Error
}

func toDomain(models []*dbschema.Product) []*product.Product {
	return functional.Map(models, (*dbschema.Product).EtoD)
}
