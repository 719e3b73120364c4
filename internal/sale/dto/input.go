package dto

import "github.com/fekuna/omnipos-retail-service/internal/model"

type SaleItemInput struct {
	ProductID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     *float64 `json:"price"`
}

type CreateSaleInput struct {
	Items         []SaleItemInput     `json:"items"`
	Total         *float64            `json:"total"`
	CustomerID    string              `json:"customerId"`
	CustomerName  string              `json:"customerName"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod"`
}
