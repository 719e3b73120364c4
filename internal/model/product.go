package model

type ProductType string

const (
	ProductTypeWine    ProductType = "Wine"
	ProductTypeSpirit  ProductType = "Spirit"
	ProductTypeLiqueur ProductType = "Liqueur"
	ProductTypeBeer    ProductType = "Beer"
)

var ProductTypes = []ProductType{ProductTypeWine, ProductTypeSpirit, ProductTypeLiqueur, ProductTypeBeer}

func (t ProductType) Valid() bool { return oneOf(t, ProductTypes) }

type Product struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Type              ProductType `json:"type"`
	Origin            string      `json:"origin"`
	Vintage           *int        `json:"vintage,omitempty"`
	Price             float64     `json:"price"`
	Cost              float64     `json:"cost"`
	StockLevel        int         `json:"stockLevel"`
	LowStockThreshold int         `json:"lowStockThreshold"`
	ImageURL          string      `json:"imageUrl,omitempty"`
	CreatedAt         int64       `json:"createdAt"` // unix millis
}

// LowStock reports whether the product is at or below its reorder threshold.
func (p Product) LowStock() bool {
	return p.StockLevel <= p.LowStockThreshold
}
