package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumValidity(t *testing.T) {
	assert.True(t, ProductTypeBeer.Valid())
	assert.False(t, ProductType("Cider").Valid())
	assert.True(t, LoyaltyTierVIP.Valid())
	assert.False(t, LoyaltyTier("").Valid())
	assert.True(t, PaymentMethodMpesa.Valid())
	assert.False(t, PaymentMethod("Card").Valid())
	assert.True(t, SupplierCategoryInternational.Valid())
	assert.True(t, PurchaseOrderCancelled.Valid())
	assert.False(t, PurchaseOrderStatus("Lost").Valid())
	assert.True(t, OnlineOrderPendingFulfillment.Valid())
	assert.False(t, OnlineOrderStatus("Pending").Valid())
	assert.True(t, EventTypeClass.Valid())
	assert.True(t, StaffRoleSommelier.Valid())
	assert.False(t, StaffStatus("Away").Valid())
}

func TestStaffStatusToggled(t *testing.T) {
	assert.Equal(t, StaffInactive, StaffActive.Toggled())
	assert.Equal(t, StaffActive, StaffInactive.Toggled())
	assert.Equal(t, StaffActive, StaffActive.Toggled().Toggled())
}

func TestProductLowStock(t *testing.T) {
	assert.True(t, Product{StockLevel: 10, LowStockThreshold: 10}.LowStock())
	assert.False(t, Product{StockLevel: 11, LowStockThreshold: 10}.LowStock())
}
