package inventoryclient

import (
	"context"
	"fmt"
	"net/http"

	"resty.dev/v3"
	"shopstack.io/product-catalog/app/domain/common"
	"shopstack.io/product-catalog/app/domain/inventory"
	"shopstack.io/product-catalog/app/infrastructure/resilience"
	"shopstack.io/product-catalog/app/utils/httpclients"
	"shopstack.io/product-catalog/config/environment_variables"
)

var InventoryRestyClient *resty.Client

func Init() {
	InventoryRestyClient = httpclients.NewClient("InventoryClient")
	InventoryRestyClient.SetBaseURL(environment_variables.EnvironmentVariables.INVENTORY_SERVICE_URL)
}

type createInventoryRequest struct {
	ProductID     string `json:"productId"`
	StockQuantity int    `json:"stockQuantity"`
}

type updateInventoryRequest struct {
	ProductID   string `json:"productId"`
	NewQuantity int    `json:"newQuantity"`
}

// Client talks to the inventory service over HTTP. Every call goes
// through one shared resilience guard, so breaker and limiter state is
// common to all operations against the dependency.
type Client struct {
	guard *resilience.Guard[*inventory.Record]
}

func NewClient() *Client {
	return &Client{
		guard: resilience.NewGuard[*inventory.Record]("inventory-service", resilience.DefaultConfig()),
	}
}

func (c *Client) CreateInventory(ctx context.Context, productID string, quantity int) (*inventory.Record, error) {
	return c.guard.Do(ctx, func(ctx context.Context) (*inventory.Record, error) {
		var record inventory.Record
		resp, err := InventoryRestyClient.R().
			SetContext(ctx).
			SetBody(createInventoryRequest{ProductID: productID, StockQuantity: quantity}).
			SetResult(&record).
			Post("/api/v1/inventory")
		if err != nil {
			return nil, err
		}
		if err := checkStatus(resp); err != nil {
			return nil, err
		}
		return &record, nil
	})
}

func (c *Client) GetInventory(ctx context.Context, inventoryID string) (*inventory.Record, error) {
	return c.guard.Do(ctx, func(ctx context.Context) (*inventory.Record, error) {
		var record inventory.Record
		resp, err := InventoryRestyClient.R().
			SetContext(ctx).
			SetResult(&record).
			Get("/api/v1/inventory/" + inventoryID)
		if err != nil {
			return nil, err
		}
		if err := checkStatus(resp); err != nil {
			return nil, err
		}
		return &record, nil
	})
}

func (c *Client) UpdateInventory(ctx context.Context, inventoryID string, req inventory.UpdateRequest) (*inventory.Record, error) {
	return c.guard.Do(ctx, func(ctx context.Context) (*inventory.Record, error) {
		var record inventory.Record
		resp, err := InventoryRestyClient.R().
			SetContext(ctx).
			SetBody(updateInventoryRequest{ProductID: req.ProductID, NewQuantity: req.NewQuantity}).
			SetResult(&record).
			Put("/api/v1/inventory/" + inventoryID)
		if err != nil {
			return nil, err
		}
		if err := checkStatus(resp); err != nil {
			return nil, err
		}
		return &record, nil
	})
}

func (c *Client) DeleteInventory(ctx context.Context, productID string) error {
	_, err := c.guard.Do(ctx, func(ctx context.Context) (*inventory.Record, error) {
		resp, err := InventoryRestyClient.R().
			SetContext(ctx).
			Delete("/api/v1/inventory/" + productID)
		if err != nil {
			return nil, err
		}
		return nil, checkStatus(resp)
	})
	return err
}

// checkStatus maps a definitive 404 to a not-found error so the guard
// does not burn retries on it; everything else non-2xx is transient.
func checkStatus(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusNotFound {
		return common.NewError(common.KindNotFound, "e1b0a4c7-9d52-4f38-8a6e-0c3f7b1d5e92", "inventory record not found")
	}
	return fmt.Errorf("inventory service returned status %d", resp.StatusCode())
}
