package dto

type UpdateSettingsInput struct {
	StoreName *string  `json:"storeName,omitempty"`
	TaxRate   *float64 `json:"taxRate,omitempty"`
	Currency  *string  `json:"currency,omitempty"`
}
