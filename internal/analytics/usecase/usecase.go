package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/fekuna/omnipos-retail-service/internal/analytics"
	"github.com/fekuna/omnipos-retail-service/internal/analytics/dto"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	topProductsLimit = 5
	weekDays         = 7
	unknownProduct   = "Unknown"
)

type analyticsUseCase struct {
	products analytics.ProductRepository
	sales    analytics.SaleRepository
	loc      *time.Location
	logger   logger.ZapLogger
	now      func() time.Time
}

// NewAnalyticsUseCase buckets sales into calendar days of loc.
func NewAnalyticsUseCase(products analytics.ProductRepository, sales analytics.SaleRepository, loc *time.Location, log logger.ZapLogger) analytics.UseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &analyticsUseCase{
		products: products,
		sales:    sales,
		loc:      loc,
		logger:   log,
		now:      time.Now,
	}
}

type snapshot struct {
	products []model.Product
	byID     map[string]model.Product
	sales    []model.Sale
}

func (uc *analyticsUseCase) load(ctx context.Context) (*snapshot, error) {
	if _, err := uc.products.EnsureSeed(ctx); err != nil {
		return nil, err
	}
	if _, err := uc.sales.EnsureSeed(ctx); err != nil {
		return nil, err
	}
	products, err := uc.products.All(ctx)
	if err != nil {
		uc.logger.Error("failed to load products", zap.Error(err))
		return nil, err
	}
	sales, err := uc.sales.All(ctx)
	if err != nil {
		uc.logger.Error("failed to load sales", zap.Error(err))
		return nil, err
	}
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &snapshot{products: products, byID: byID, sales: sales}, nil
}

// profit is the sale total minus the cost of its items. Unknown products
// contribute no cost.
func (s *snapshot) profit(sale model.Sale) decimal.Decimal {
	cost := decimal.Zero
	for _, item := range sale.Items {
		if p, ok := s.byID[item.ProductID]; ok {
			cost = cost.Add(decimal.NewFromFloat(p.Cost).Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}
	return decimal.NewFromFloat(sale.Total).Sub(cost)
}

func (uc *analyticsUseCase) startOfDay(t time.Time) time.Time {
	t = t.In(uc.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, uc.loc)
}

func (uc *analyticsUseCase) day(ms int64) time.Time {
	return uc.startOfDay(time.UnixMilli(ms))
}

func (uc *analyticsUseCase) Dashboard(ctx context.Context) (*dto.Dashboard, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	today := uc.startOfDay(uc.now())
	first := today.AddDate(0, 0, -(weekDays - 1))
	week := make([]decimal.Decimal, weekDays)
	todaySales, todayProfit := decimal.Zero, decimal.Zero

	for _, sale := range snap.sales {
		d := uc.day(sale.Timestamp)
		if d.Equal(today) {
			todaySales = todaySales.Add(decimal.NewFromFloat(sale.Total))
			todayProfit = todayProfit.Add(snap.profit(sale))
		}
		if d.Before(first) || d.After(today) {
			continue
		}
		i := daysBetween(first, d)
		week[i] = week[i].Add(decimal.NewFromFloat(sale.Total))
	}

	out := &dto.Dashboard{
		TodaySales:  todaySales.InexactFloat64(),
		TodayProfit: todayProfit.InexactFloat64(),
		WeeklySales: make([]dto.DaySales, weekDays),
	}
	for _, p := range snap.products {
		out.InventoryLevel += p.StockLevel
		if p.LowStock() {
			out.LowStockCount++
		}
	}
	for i := range week {
		out.WeeklySales[i] = dto.DaySales{
			Name:  first.AddDate(0, 0, i).Format("Mon"),
			Sales: week[i].InexactFloat64(),
		}
	}
	return out, nil
}

// daysBetween counts calendar days, which stays exact across DST shifts.
func daysBetween(from, to time.Time) int {
	n := 0
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

type dayTotals struct {
	day    time.Time
	sales  decimal.Decimal
	profit decimal.Decimal
}

func (uc *analyticsUseCase) Report(ctx context.Context) (*dto.Report, error) {
	snap, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	days := make(map[int64]*dayTotals)
	quantities := make(map[string]int)
	categories := make(map[model.ProductType]decimal.Decimal)

	for _, sale := range snap.sales {
		d := uc.day(sale.Timestamp)
		bucket, ok := days[d.Unix()]
		if !ok {
			bucket = &dayTotals{day: d}
			days[d.Unix()] = bucket
		}
		bucket.sales = bucket.sales.Add(decimal.NewFromFloat(sale.Total))
		bucket.profit = bucket.profit.Add(snap.profit(sale))

		for _, item := range sale.Items {
			quantities[item.ProductID] += item.Quantity
			if p, ok := snap.byID[item.ProductID]; ok {
				line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
				categories[p.Type] = categories[p.Type].Add(line)
			}
		}
	}

	ordered := make([]*dayTotals, 0, len(days))
	for _, b := range days {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].day.Before(ordered[j].day) })

	out := &dto.Report{
		SalesByDay:      make([]dto.DaySales, 0, len(ordered)),
		ProfitByDay:     make([]dto.DayProfit, 0, len(ordered)),
		TopProducts:     uc.topProducts(snap, quantities),
		SalesByCategory: make([]dto.CategorySales, 0, len(categories)),
	}
	for _, b := range ordered {
		label := b.day.Format("Jan 02")
		out.SalesByDay = append(out.SalesByDay, dto.DaySales{Name: label, Sales: b.sales.InexactFloat64()})
		out.ProfitByDay = append(out.ProfitByDay, dto.DayProfit{Name: label, Profit: b.profit.InexactFloat64()})
	}
	for _, t := range model.ProductTypes {
		if v, ok := categories[t]; ok {
			out.SalesByCategory = append(out.SalesByCategory, dto.CategorySales{Name: string(t), Value: v.InexactFloat64()})
		}
	}
	return out, nil
}

func (uc *analyticsUseCase) topProducts(snap *snapshot, quantities map[string]int) []dto.ProductQuantity {
	top := make([]dto.ProductQuantity, 0, len(quantities))
	for id, qty := range quantities {
		name := unknownProduct
		if p, ok := snap.byID[id]; ok {
			name = p.Name
		}
		top = append(top, dto.ProductQuantity{ProductID: id, Name: name, Quantity: qty})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantity != top[j].Quantity {
			return top[i].Quantity > top[j].Quantity
		}
		return top[i].ProductID < top[j].ProductID
	})
	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}
	return top
}
