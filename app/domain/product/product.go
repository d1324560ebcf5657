package product

import (
	"context"
	"strings"
	"time"
)

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryElectronique    Category = "ELECTRONIQUE"
	CategoryMode            Category = "MODE"
	CategoryMaisonEtVie     Category = "MAISON_ET_VIE"
	CategorySportEtPleinAir Category = "SPORT_ET_PLEIN_AIR"
	CategoryCosmetique      Category = "COSMETIQUE"
	CategoryPapeterie       Category = "PAPETERIE"
	CategorySupermarche     Category = "SUPERMARCHE"
	CategoryAutre           Category = "AUTRE"
)

var knownCategories = map[Category]struct{}{
	CategoryElectronique:    {},
	CategoryMode:            {},
	CategoryMaisonEtVie:     {},
	CategorySportEtPleinAir: {},
	CategoryCosmetique:      {},
	CategoryPapeterie:       {},
	CategorySupermarche:     {},
	CategoryAutre:           {},
}

// CategoryFromString normalizes and resolves a category name.
func CategoryFromString(value string) (Category, bool) {
	c := Category(strings.ToUpper(strings.TrimSpace(value)))
	_, ok := knownCategories[c]
	return c, ok
}

// Product is the catalog side of the split aggregate. InventoryID is nil
// only during the creation window between the local save and the remote
// acknowledgment; StockQuantity is a denormalized snapshot of the remote
// record and may be stale.
type Product struct {
	ID            uint      `json:"-"`
	PublicID      string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      Category  `json:"category"`
	Price         float64   `json:"price"`
	InventoryID   *string   `json:"inventoryId"`
	StockQuantity int       `json:"stockQuantity"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

const (
	// FallbackProductName and FallbackProductDescription are the fixed
	// shape of the sentinel returned when the inventory dependency cannot
	// be reached. Callers must treat it as a degraded result, not a
	// committed product.
	FallbackProductName        = "IPHONE 13"
	FallbackProductDescription = "This product is created as a fallback because some service is down"
)

func FallbackProduct() *Product {
	return &Product{
		Name:        FallbackProductName,
		Description: FallbackProductDescription,
	}
}

// IsFallback reports whether p is the sentinel product.
func (p *Product) IsFallback() bool {
	return p != nil && p.PublicID == "" && p.Name == FallbackProductName
}

// ProductFilter narrows store lookups. Nil bounds are unconstrained.
type ProductFilter struct {
	PriceMin           *float64
	PriceMax           *float64
	MissingInventoryID bool
	SortPriceAscending bool
}

// ProductRepository is the durable product store. Lookups report an
// absent row as (nil, nil), never as an error.
type ProductRepository interface {
	Create(ctx context.Context, p *Product) error
	FindByPublicID(ctx context.Context, publicID string) (*Product, error)
	FindByInventoryID(ctx context.Context, inventoryID string) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
	FindByFilter(ctx context.Context, filter ProductFilter) ([]*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, publicID string) error
}
