package product

import (
	"shopstack.io/product-catalog/app/domain/common"
	"shopstack.io/product-catalog/app/utils/idgen"
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)

type CreateProductRequest struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
}

func (r *CreateProductRequest) Validate() error {
	if err := validateFields(r.Name, r.Description, r.Category, r.Price); err != nil {
		return err
	}
	if r.Quantity < 0 {
		return common.NewError(common.KindValidation, "5d2ba9de-3c51-4f61-9d0d-0f6fb77f3f21", "stock quantity must not be negative")
	}
	return nil
}

type UpdateProductRequest struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       float64
	NewQuantity int
}

func (r *UpdateProductRequest) Validate() error {
	if r.ID == "" {
		return common.NewError(common.KindValidation, "0ce2fd9b-38a1-41a3-b3fd-1c7f6df1f287", "product id is required")
	}
	if !idgen.ValidateIDFormat(r.ID, "prod") {
		return common.NewError(common.KindValidation, "84b7f2d0-6c3e-4a19-b5d8-1f0e9c6a3b47", "malformed product id: "+r.ID)
	}
	if err := validateFields(r.Name, r.Description, r.Category, r.Price); err != nil {
		return err
	}
	if r.NewQuantity < 0 {
		return common.NewError(common.KindValidation, "7a8e06e6-92ed-4d0e-8fb2-b8f6f55f7a02", "stock quantity must not be negative")
	}
	return nil
}

func validateFields(name, description, category string, price float64) error {
	if len(name) > maxNameLength {
		return common.NewError(common.KindValidation, "3e84a9a5-14a8-4ab1-bc06-e3fd9d1be911", "product name must not exceed 100 characters")
	}
	if len(description) > maxDescriptionLength {
		return common.NewError(common.KindValidation, "b0f64a47-7d17-4e25-8cf7-b20f1fd282a1", "product description must not exceed 500 characters")
	}
	if price <= 0 {
		return common.NewError(common.KindValidation, "f3b5c8d4-0f12-4a25-b232-27b1f65be6aa", "product price must be greater than 0")
	}
	if _, ok := CategoryFromString(category); !ok {
		return common.NewError(common.KindValidation, "9dd2f1c7-b7c8-45f6-a1ce-a53bb0da3e0d", "unknown product category: "+category)
	}
	return nil
}
