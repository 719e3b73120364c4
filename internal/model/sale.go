package model

type PaymentMethod string

const (
	PaymentMethodMpesa PaymentMethod = "Mpesa"
	PaymentMethodCash  PaymentMethod = "Cash"
)

var PaymentMethods = []PaymentMethod{PaymentMethodMpesa, PaymentMethodCash}

func (m PaymentMethod) Valid() bool { return oneOf(m, PaymentMethods) }

type SaleItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Sale struct {
	ID            string        `json:"id"`
	Items         []SaleItem    `json:"items"`
	Total         float64       `json:"total"`
	CustomerID    string        `json:"customerId,omitempty"`
	CustomerName  string        `json:"customerName,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Timestamp     int64         `json:"timestamp"` // unix millis
}
