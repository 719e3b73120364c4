package model

type PurchaseOrderStatus string

const (
	PurchaseOrderPending   PurchaseOrderStatus = "Pending"
	PurchaseOrderShipped   PurchaseOrderStatus = "Shipped"
	PurchaseOrderDelivered PurchaseOrderStatus = "Delivered"
	PurchaseOrderCancelled PurchaseOrderStatus = "Cancelled"
)

var PurchaseOrderStatuses = []PurchaseOrderStatus{
	PurchaseOrderPending,
	PurchaseOrderShipped,
	PurchaseOrderDelivered,
	PurchaseOrderCancelled,
}

func (s PurchaseOrderStatus) Valid() bool { return oneOf(s, PurchaseOrderStatuses) }

type PurchaseOrder struct {
	ID                   string              `json:"id"`
	SupplierID           string              `json:"supplierId"`
	SupplierName         string              `json:"supplierName"`
	OrderDate            int64               `json:"orderDate"`
	ExpectedDeliveryDate int64               `json:"expectedDeliveryDate"`
	Status               PurchaseOrderStatus `json:"status"`
	TotalValue           float64             `json:"totalValue"`
	ItemCount            int                 `json:"itemCount"`
	Notes                string              `json:"notes,omitempty"`
}

type OnlineOrderStatus string

const (
	OnlineOrderPendingFulfillment OnlineOrderStatus = "Pending Fulfillment"
	OnlineOrderShipped            OnlineOrderStatus = "Shipped"
	OnlineOrderDelivered          OnlineOrderStatus = "Delivered"
)

var OnlineOrderStatuses = []OnlineOrderStatus{
	OnlineOrderPendingFulfillment,
	OnlineOrderShipped,
	OnlineOrderDelivered,
}

func (s OnlineOrderStatus) Valid() bool { return oneOf(s, OnlineOrderStatuses) }

type OnlineOrder struct {
	ID           string            `json:"id"`
	CustomerName string            `json:"customerName"`
	OrderDate    int64             `json:"orderDate"`
	Total        float64           `json:"total"`
	Status       OnlineOrderStatus `json:"status"`
	ItemCount    int               `json:"itemCount"`
}
