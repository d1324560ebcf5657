package inventory

import "context"

// Record is the remote inventory state for one product. The inventory
// service owns it; the catalog only holds snapshots.
type Record struct {
	InventoryID   string `json:"id"`
	ProductID     string `json:"productId"`
	StockQuantity int    `json:"stockQuantity"`
}

// UpdateRequest carries the mutable part of a record on update.
type UpdateRequest struct {
	ProductID   string `json:"productId"`
	NewQuantity int    `json:"newQuantity"`
}

// API is the catalog's boundary to the inventory service. Implementations
// must bound every call and report resilience exhaustion as a
// dependency-unavailable error so the orchestrator can degrade instead of
// failing hard.
type API interface {
	CreateInventory(ctx context.Context, productID string, quantity int) (*Record, error)
	GetInventory(ctx context.Context, inventoryID string) (*Record, error)
	UpdateInventory(ctx context.Context, inventoryID string, update UpdateRequest) (*Record, error)
	DeleteInventory(ctx context.Context, productID string) error
}
