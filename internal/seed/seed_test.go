package seed

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDataParses(t *testing.T) {
	require.NoError(t, Validate())

	now := time.Now()
	assert.Len(t, Products(now), 99)
	assert.Len(t, Customers(now), 5)
	assert.Len(t, Sales(now), 5)
	assert.Len(t, Suppliers(now), 4)
	assert.Len(t, PurchaseOrders(now), 3)
	assert.Len(t, OnlineOrders(now), 3)
	assert.Len(t, Events(now), 3)
	assert.Len(t, Staff(now), 4)
}

func TestSeedEnumsAreValid(t *testing.T) {
	now := time.Now()
	for _, p := range Products(now) {
		assert.True(t, p.Type.Valid(), p.ID)
		assert.NotEmpty(t, p.Name, p.ID)
		assert.Positive(t, p.CreatedAt, p.ID)
	}
	for _, c := range Customers(now) {
		assert.True(t, c.LoyaltyTier.Valid(), c.ID)
		assert.NotNil(t, c.PurchaseHistory, c.ID)
	}
	for _, s := range Sales(now) {
		assert.True(t, s.PaymentMethod.Valid(), s.ID)
	}
	for _, s := range Suppliers(now) {
		assert.True(t, s.Category.Valid(), s.ID)
	}
	for _, o := range PurchaseOrders(now) {
		assert.True(t, o.Status.Valid(), o.ID)
	}
	for _, o := range OnlineOrders(now) {
		assert.True(t, o.Status.Valid(), o.ID)
	}
	for _, e := range Events(now) {
		assert.True(t, e.Type.Valid(), e.ID)
	}
	for _, m := range Staff(now) {
		assert.True(t, m.Role.Valid(), m.ID)
		assert.True(t, m.Status.Valid(), m.ID)
	}
}

func TestFixedTimestamps(t *testing.T) {
	products := Products(time.Now())
	assert.Equal(t, "prod_beer_001", products[0].ID)
	assert.Equal(t, time.Date(2023, 1, 15, 10, 0, 0, 0, time.UTC).UnixMilli(), products[0].CreatedAt)

	orders := PurchaseOrders(time.Now())
	assert.Equal(t, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), orders[0].OrderDate)

	sales := Sales(time.Now())
	require.Len(t, sales[1].Items, 2)
	assert.Equal(t, 4, sales[1].Items[1].Quantity)
	assert.Equal(t, 1620.0, sales[1].Total)
}

func TestRelativeDates(t *testing.T) {
	now := time.Date(2024, 12, 10, 9, 30, 0, 0, time.UTC)

	orders := OnlineOrders(now)
	assert.Equal(t, now.Add(-24*time.Hour).UnixMilli(), orders[0].OrderDate)
	assert.Equal(t, now.Add(-3*time.Hour).UnixMilli(), orders[2].OrderDate)

	events := Events(now)
	assert.Equal(t, time.Date(2024, 12, 15, 18, 0, 0, 0, time.UTC).UnixMilli(), events[0].Date)
	// month offset rolls into the next year
	assert.Equal(t, time.Date(2025, 1, 5, 17, 0, 0, 0, time.UTC).UnixMilli(), events[2].Date)
}

func TestParseRejectsBrokenYAML(t *testing.T) {
	fsys := fstest.MapFS{"data/bad.yaml": {Data: []byte("products: [\n")}}
	_, err := parse(fsys)
	assert.Error(t, err)
}

func TestParseMergesFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"data/a.yaml": {Data: []byte("suppliers:\n  - id: s1\n")},
		"data/b.yaml": {Data: []byte("suppliers:\n  - id: s2\nstaff:\n  - id: m1\n")},
	}
	doc, err := parse(fsys)
	require.NoError(t, err)
	assert.Len(t, doc.Suppliers, 2)
	assert.Len(t, doc.Staff, 1)
}
