package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type CreatePurchaseOrderInput struct {
	SupplierID           string   `json:"supplierId"`
	SupplierName         string   `json:"supplierName"`
	ExpectedDeliveryDate *int64   `json:"expectedDeliveryDate"`
	ItemCount            *int     `json:"itemCount"`
	TotalValue           *float64 `json:"totalValue"`
	Notes                string   `json:"notes"`
}

// UpdateStatusInput is the only mutation allowed after creation.
type UpdateStatusInput struct {
	Status *model.PurchaseOrderStatus `json:"status,omitempty"`
}
