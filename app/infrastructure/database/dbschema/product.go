package dbschema

import (
	"shopstack.io/product-catalog/app/domain/product"
	"shopstack.io/product-catalog/app/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Product{})
}

type Product struct {
	BaseModel
	PublicID      string  `gorm:"uniqueIndex;size:64"`
	Name          string  `gorm:"size:100"`
	Description   string  `gorm:"size:500"`
	Category      string  `gorm:"size:32;index"`
	Price         float64 `gorm:"index"`
	InventoryID   *string `gorm:"index;size:64"`
	StockQuantity int
}

func NewSchemaProduct(p *product.Product) *Product {
	return &Product{
		BaseModel: BaseModel{
			ID: p.ID,
		},
		PublicID:      p.PublicID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      string(p.Category),
		Price:         p.Price,
		InventoryID:   p.InventoryID,
		StockQuantity: p.StockQuantity,
	}
}

func (p *Product) EtoD() *product.Product {
	return &product.Product{
		ID:            p.ID,
		PublicID:      p.PublicID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      product.Category(p.Category),
		Price:         p.Price,
		InventoryID:   p.InventoryID,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
