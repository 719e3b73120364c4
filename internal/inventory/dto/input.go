package dto

type AdjustInventoryInput struct {
	ProductID      string `json:"productId"`
	QuantityChange *int   `json:"quantityChange"`
	Reason         string `json:"reason"`
}
