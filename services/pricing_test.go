package services

import (
	"testing"

	"go-delivery-marketplace/models"

	"github.com/stretchr/testify/assert"
)

func TestCouponDiscountPercent(t *testing.T) {
	coupon := &models.Coupon{
		Name:          "SAVE10",
		Discount:      10,
		Discount_type: models.DiscountPercent,
		Min_order:     300,
		Applicable_to: "both",
	}
	assert.Equal(t, 50.0, CouponDiscount(coupon, 500, models.OrderTypeFood))
	assert.Equal(t, 0.0, CouponDiscount(coupon, 200, models.OrderTypeFood), "below min_order")
	assert.Equal(t, 30.0, CouponDiscount(coupon, 300, models.OrderTypeFood), "min_order boundary is inclusive")
}

func TestCouponDiscountFlatClamped(t *testing.T) {
	coupon := &models.Coupon{
		Name:          "FLAT80",
		Discount:      80,
		Discount_type: models.DiscountFlat,
		Min_order:     0,
		Applicable_to: "both",
	}
	assert.Equal(t, 50.0, CouponDiscount(coupon, 50, models.OrderTypeFood), "flat discount capped at subtotal")
	assert.Equal(t, 80.0, CouponDiscount(coupon, 500, models.OrderTypeFood))
}

func TestCouponDiscountApplicability(t *testing.T) {
	coupon := &models.Coupon{
		Name:          "FOODONLY",
		Discount:      20,
		Discount_type: models.DiscountPercent,
		Applicable_to: "food",
	}
	assert.Equal(t, 100.0, CouponDiscount(coupon, 500, models.OrderTypeFood))
	assert.Equal(t, 0.0, CouponDiscount(coupon, 500, models.OrderTypeGrocery))
	assert.Equal(t, 0.0, CouponDiscount(nil, 500, models.OrderTypeFood), "absent coupon means no discount")
}

func TestPriceOrderFoodSingleShop(t *testing.T) {
	items := []models.CartItem{
		{Product_id: "a", Shop_id: "s1", Unit_price: 100, Quantity: 2},
		{Product_id: "b", Shop_id: "s1", Unit_price: 100, Quantity: 1},
	}
	b := PriceOrder(models.OrderTypeFood, items, 40, nil)
	assert.Equal(t, 300.0, b.Subtotal)
	assert.Equal(t, 15.0, b.Tax, "5 percent of the food subtotal")
	assert.Equal(t, 0.0, b.ConvenienceFee, "single shop pays no convenience fee")
	assert.Equal(t, 0.0, b.ServiceCharge, "food orders pay tax, not service charge")
	assert.Equal(t, 355.0, b.Amount)
	assert.Equal(t, 355.0, b.TotalAmount)
}

func TestPriceOrderMultiStoreConvenienceFee(t *testing.T) {
	items := []models.CartItem{
		{Product_id: "a", Shop_id: "s1", Unit_price: 100, Quantity: 1},
		{Product_id: "b", Shop_id: "s2", Unit_price: 100, Quantity: 1},
	}
	b := PriceOrder(models.OrderTypeGrocery, items, 30, nil)
	assert.Equal(t, MultiStoreConvenienceFee, b.ConvenienceFee)
}

func TestPriceOrderGroceryServiceCharge(t *testing.T) {
	assert.Equal(t, 30.0, GroceryServiceCharge(150))
	assert.Equal(t, 30.0, GroceryServiceCharge(200))
	assert.Equal(t, 20.0, GroceryServiceCharge(350))
	assert.Equal(t, 10.0, GroceryServiceCharge(800))
	assert.Equal(t, 0.0, GroceryServiceCharge(1500))

	items := []models.CartItem{{Product_id: "a", Shop_id: "s1", Unit_price: 150, Quantity: 1}}
	b := PriceOrder(models.OrderTypeGrocery, items, 30, nil)
	assert.Equal(t, 0.0, b.Tax, "grocery orders pay no tax")
	assert.Equal(t, 30.0, b.ServiceCharge)
	assert.Equal(t, 210.0, b.TotalAmount)
}

func TestPriceOrderPayableNeverNegative(t *testing.T) {
	coupon := &models.Coupon{
		Name:          "FLAT80",
		Discount:      80,
		Discount_type: models.DiscountFlat,
		Applicable_to: "both",
	}
	items := []models.CartItem{{Product_id: "a", Shop_id: "s1", Unit_price: 50, Quantity: 1}}
	b := PriceOrder(models.OrderTypeFood, items, 0, coupon)
	assert.Equal(t, 50.0, b.Discount, "discount clamped to subtotal")
	assert.GreaterOrEqual(t, b.TotalAmount, 0.0)
}

func TestPriceOrderBreakdownAddsUp(t *testing.T) {
	coupon := &models.Coupon{
		Name:          "SAVE10",
		Discount:      10,
		Discount_type: models.DiscountPercent,
		Min_order:     300,
		Applicable_to: "both",
	}
	items := []models.CartItem{
		{Product_id: "a", Shop_id: "s1", Unit_price: 250, Quantity: 2},
	}
	b := PriceOrder(models.OrderTypeFood, items, 40, coupon)
	assert.Equal(t, b.Subtotal+b.DeliveryCharge+b.Tax+b.ConvenienceFee+b.ServiceCharge, b.Amount)
	assert.Equal(t, b.Amount-b.Discount, b.TotalAmount)
	assert.Equal(t, 50.0, b.Discount)
}
