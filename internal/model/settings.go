package model

type StoreSettings struct {
	StoreName string  `json:"storeName"`
	TaxRate   float64 `json:"taxRate"`
	Currency  string  `json:"currency"`
}

func DefaultStoreSettings() StoreSettings {
	return StoreSettings{
		StoreName: "Hellena's Bistro",
		TaxRate:   16,
		Currency:  "KSH",
	}
}
