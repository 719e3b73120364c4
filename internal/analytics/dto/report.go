package dto

type Dashboard struct {
	TodaySales     float64    `json:"todaySales"`
	TodayProfit    float64    `json:"todayProfit"`
	InventoryLevel int        `json:"inventoryLevel"`
	LowStockCount  int        `json:"lowStockCount"`
	WeeklySales    []DaySales `json:"weeklySales"`
}

type DaySales struct {
	Name  string  `json:"name"`
	Sales float64 `json:"sales"`
}

type DayProfit struct {
	Name   string  `json:"name"`
	Profit float64 `json:"profit"`
}

type ProductQuantity struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type CategorySales struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type Report struct {
	SalesByDay      []DaySales        `json:"salesByDay"`
	ProfitByDay     []DayProfit       `json:"profitByDay"`
	TopProducts     []ProductQuantity `json:"topProducts"`
	SalesByCategory []CategorySales   `json:"salesByCategory"`
}
