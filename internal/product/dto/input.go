package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type ProductFilters struct {
	Cursor string
	Limit  int
}

// CreateProductInput uses pointers so absent required fields can be told
// apart from zero values.
type CreateProductInput struct {
	Name              *string            `json:"name"`
	Type              *model.ProductType `json:"type"`
	Origin            *string            `json:"origin"`
	Vintage           *int               `json:"vintage"`
	Price             *float64           `json:"price"`
	Cost              *float64           `json:"cost"`
	StockLevel        *int               `json:"stockLevel"`
	LowStockThreshold *int               `json:"lowStockThreshold"`
	ImageURL          *string            `json:"imageUrl"`
}

// UpdateProductInput marshals to only the fields the client sent.
type UpdateProductInput struct {
	Name              *string            `json:"name,omitempty"`
	Type              *model.ProductType `json:"type,omitempty"`
	Origin            *string            `json:"origin,omitempty"`
	Vintage           *int               `json:"vintage,omitempty"`
	Price             *float64           `json:"price,omitempty"`
	Cost              *float64           `json:"cost,omitempty"`
	StockLevel        *int               `json:"stockLevel,omitempty"`
	LowStockThreshold *int               `json:"lowStockThreshold,omitempty"`
	ImageURL          *string            `json:"imageUrl,omitempty"`
}
