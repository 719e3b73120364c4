// Package seed provides the demo records a fresh store is populated with.
// The records live in embedded YAML files under data/.
package seed

import (
	"embed"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var files embed.FS

type document struct {
	Products       []productRow       `yaml:"products"`
	Customers      []customerRow      `yaml:"customers"`
	Sales          []saleRow          `yaml:"sales"`
	Suppliers      []supplierRow      `yaml:"suppliers"`
	PurchaseOrders []purchaseOrderRow `yaml:"purchaseOrders"`
	OnlineOrders   []onlineOrderRow   `yaml:"onlineOrders"`
	Events         []eventRow         `yaml:"events"`
	Staff          []staffRow         `yaml:"staff"`
}

var load = sync.OnceValues(func() (*document, error) {
	return parse(files)
})

func parse(fsys fs.FS) (*document, error) {
	names, err := fs.Glob(fsys, "data/*.yaml")
	if err != nil {
		return nil, err
	}
	doc := &document{}
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		var part document
		if err := yaml.Unmarshal(raw, &part); err != nil {
			return nil, fmt.Errorf("seed %s: %w", name, err)
		}
		doc.Products = append(doc.Products, part.Products...)
		doc.Customers = append(doc.Customers, part.Customers...)
		doc.Sales = append(doc.Sales, part.Sales...)
		doc.Suppliers = append(doc.Suppliers, part.Suppliers...)
		doc.PurchaseOrders = append(doc.PurchaseOrders, part.PurchaseOrders...)
		doc.OnlineOrders = append(doc.OnlineOrders, part.OnlineOrders...)
		doc.Events = append(doc.Events, part.Events...)
		doc.Staff = append(doc.Staff, part.Staff...)
	}
	return doc, nil
}

// Validate reports whether the embedded data parses. The accessors below
// panic on a broken build, so callers may run this at startup.
func Validate() error {
	_, err := load()
	return err
}

func mustLoad() *document {
	doc, err := load()
	if err != nil {
		panic(err)
	}
	return doc
}

func millis(t time.Time) int64 { return t.UnixMilli() }

type productRow struct {
	ID                string    `yaml:"id"`
	Name              string    `yaml:"name"`
	Type              string    `yaml:"type"`
	Origin            string    `yaml:"origin"`
	Vintage           *int      `yaml:"vintage"`
	Price             float64   `yaml:"price"`
	Cost              float64   `yaml:"cost"`
	StockLevel        int       `yaml:"stockLevel"`
	LowStockThreshold int       `yaml:"lowStockThreshold"`
	ImageURL          string    `yaml:"imageUrl"`
	CreatedAt         time.Time `yaml:"createdAt"`
}

func Products(time.Time) []model.Product {
	rows := mustLoad().Products
	out := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Product{
			ID:                r.ID,
			Name:              r.Name,
			Type:              model.ProductType(r.Type),
			Origin:            r.Origin,
			Vintage:           r.Vintage,
			Price:             r.Price,
			Cost:              r.Cost,
			StockLevel:        r.StockLevel,
			LowStockThreshold: r.LowStockThreshold,
			ImageURL:          r.ImageURL,
			CreatedAt:         millis(r.CreatedAt),
		})
	}
	return out
}

type customerRow struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Phone           string   `yaml:"phone"`
	Email           string   `yaml:"email"`
	LoyaltyTier     string   `yaml:"loyaltyTier"`
	PurchaseHistory []string `yaml:"purchaseHistory"`
}

func Customers(time.Time) []model.Customer {
	rows := mustLoad().Customers
	out := make([]model.Customer, 0, len(rows))
	for _, r := range rows {
		history := append([]string{}, r.PurchaseHistory...)
		out = append(out, model.Customer{
			ID:              r.ID,
			Name:            r.Name,
			Phone:           r.Phone,
			Email:           r.Email,
			LoyaltyTier:     model.LoyaltyTier(r.LoyaltyTier),
			PurchaseHistory: history,
		})
	}
	return out
}

type saleRow struct {
	ID    string `yaml:"id"`
	Items []struct {
		ProductID string  `yaml:"productId"`
		Quantity  int     `yaml:"quantity"`
		Price     float64 `yaml:"price"`
	} `yaml:"items"`
	Total         float64   `yaml:"total"`
	CustomerID    string    `yaml:"customerId"`
	CustomerName  string    `yaml:"customerName"`
	PaymentMethod string    `yaml:"paymentMethod"`
	Timestamp     time.Time `yaml:"timestamp"`
}

func Sales(time.Time) []model.Sale {
	rows := mustLoad().Sales
	out := make([]model.Sale, 0, len(rows))
	for _, r := range rows {
		items := make([]model.SaleItem, 0, len(r.Items))
		for _, it := range r.Items {
			items = append(items, model.SaleItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
		}
		out = append(out, model.Sale{
			ID:            r.ID,
			Items:         items,
			Total:         r.Total,
			CustomerID:    r.CustomerID,
			CustomerName:  r.CustomerName,
			PaymentMethod: model.PaymentMethod(r.PaymentMethod),
			Timestamp:     millis(r.Timestamp),
		})
	}
	return out
}

type supplierRow struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	ContactPerson string `yaml:"contactPerson"`
	Phone         string `yaml:"phone"`
	Email         string `yaml:"email"`
	Category      string `yaml:"category"`
}

func Suppliers(time.Time) []model.Supplier {
	rows := mustLoad().Suppliers
	out := make([]model.Supplier, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Supplier{
			ID:            r.ID,
			Name:          r.Name,
			ContactPerson: r.ContactPerson,
			Phone:         r.Phone,
			Email:         r.Email,
			Category:      model.SupplierCategory(r.Category),
		})
	}
	return out
}

type purchaseOrderRow struct {
	ID                   string    `yaml:"id"`
	SupplierID           string    `yaml:"supplierId"`
	SupplierName         string    `yaml:"supplierName"`
	OrderDate            time.Time `yaml:"orderDate"`
	ExpectedDeliveryDate time.Time `yaml:"expectedDeliveryDate"`
	Status               string    `yaml:"status"`
	TotalValue           float64   `yaml:"totalValue"`
	ItemCount            int       `yaml:"itemCount"`
	Notes                string    `yaml:"notes"`
}

func PurchaseOrders(time.Time) []model.PurchaseOrder {
	rows := mustLoad().PurchaseOrders
	out := make([]model.PurchaseOrder, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.PurchaseOrder{
			ID:                   r.ID,
			SupplierID:           r.SupplierID,
			SupplierName:         r.SupplierName,
			OrderDate:            millis(r.OrderDate),
			ExpectedDeliveryDate: millis(r.ExpectedDeliveryDate),
			Status:               model.PurchaseOrderStatus(r.Status),
			TotalValue:           r.TotalValue,
			ItemCount:            r.ItemCount,
			Notes:                r.Notes,
		})
	}
	return out
}

type onlineOrderRow struct {
	ID           string  `yaml:"id"`
	CustomerName string  `yaml:"customerName"`
	AgeMinutes   int     `yaml:"ageMinutes"`
	Total        float64 `yaml:"total"`
	Status       string  `yaml:"status"`
	ItemCount    int     `yaml:"itemCount"`
}

// OnlineOrders dates each order ageMinutes before now.
func OnlineOrders(now time.Time) []model.OnlineOrder {
	rows := mustLoad().OnlineOrders
	out := make([]model.OnlineOrder, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.OnlineOrder{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			OrderDate:    millis(now.Add(-time.Duration(r.AgeMinutes) * time.Minute)),
			Total:        r.Total,
			Status:       model.OnlineOrderStatus(r.Status),
			ItemCount:    r.ItemCount,
		})
	}
	return out
}

type eventRow struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	MonthOffset int    `yaml:"monthOffset"`
	Day         int    `yaml:"day"`
	Hour        int    `yaml:"hour"`
	Type        string `yaml:"type"`
	Attendees   int    `yaml:"attendees"`
	MaxCapacity int    `yaml:"maxCapacity"`
}

// Events places each event on day/hour of the month monthOffset months after
// now's month, in now's location.
func Events(now time.Time) []model.Event {
	rows := mustLoad().Events
	out := make([]model.Event, 0, len(rows))
	for _, r := range rows {
		date := time.Date(now.Year(), now.Month()+time.Month(r.MonthOffset), r.Day, r.Hour, 0, 0, 0, now.Location())
		out = append(out, model.Event{
			ID:          r.ID,
			Title:       r.Title,
			Date:        millis(date),
			Type:        model.EventType(r.Type),
			Attendees:   r.Attendees,
			MaxCapacity: r.MaxCapacity,
		})
	}
	return out
}

type staffRow struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Role   string `yaml:"role"`
	Email  string `yaml:"email"`
	Phone  string `yaml:"phone"`
	Status string `yaml:"status"`
}

func Staff(time.Time) []model.StaffMember {
	rows := mustLoad().Staff
	out := make([]model.StaffMember, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.StaffMember{
			ID:     r.ID,
			Name:   r.Name,
			Role:   model.StaffRole(r.Role),
			Email:  r.Email,
			Phone:  r.Phone,
			Status: model.StaffStatus(r.Status),
		})
	}
	return out
}
