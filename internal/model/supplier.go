package model

type SupplierCategory string

const (
	SupplierCategoryWine          SupplierCategory = "Wine"
	SupplierCategorySpirits       SupplierCategory = "Spirits"
	SupplierCategoryInternational SupplierCategory = "International Imports"
	SupplierCategoryLocalCraft    SupplierCategory = "Local Craft"
)

var SupplierCategories = []SupplierCategory{
	SupplierCategoryWine,
	SupplierCategorySpirits,
	SupplierCategoryInternational,
	SupplierCategoryLocalCraft,
}

func (c SupplierCategory) Valid() bool { return oneOf(c, SupplierCategories) }

type Supplier struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	ContactPerson string           `json:"contactPerson"`
	Phone         string           `json:"phone"`
	Email         string           `json:"email"`
	Category      SupplierCategory `json:"category"`
}
