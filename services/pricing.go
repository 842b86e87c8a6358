package services

import (
	"go-delivery-marketplace/models"
)

const (
	// FoodTaxPercent applies to the cart subtotal of food orders only.
	FoodTaxPercent = 5.0
	// MultiStoreConvenienceFee is charged once when a single checkout spans
	// more than one shop.
	MultiStoreConvenienceFee = 30.0
)

// Grocery orders pay a service charge by subtotal bracket instead of tax.
var groceryServiceBrackets = []struct {
	UpTo   float64
	Charge float64
}{
	{UpTo: 200, Charge: 30},
	{UpTo: 500, Charge: 20},
	{UpTo: 1000, Charge: 10},
}

// PriceBreakdown is the full money breakdown of one checkout. Total_amount
// is the canonical payable; Amount is the pre-discount total kept alongside.
type PriceBreakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DeliveryCharge float64 `json:"delivery_charge"`
	Tax            float64 `json:"tax"`
	ConvenienceFee float64 `json:"convenience_fee"`
	ServiceCharge  float64 `json:"service_charge"`
	Discount       float64 `json:"discount"`
	Amount         float64 `json:"amount"`
	TotalAmount    float64 `json:"total_amount"`
}

func CartSubtotal(items []models.CartItem) float64 {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Unit_price * float64(item.Quantity)
	}
	return subtotal
}

func distinctShops(items []models.CartItem) int {
	seen := map[string]bool{}
	for _, item := range items {
		seen[item.Shop_id] = true
	}
	return len(seen)
}

func GroceryServiceCharge(subtotal float64) float64 {
	for _, bracket := range groceryServiceBrackets {
		if subtotal <= bracket.UpTo {
			return bracket.Charge
		}
	}
	return 0
}

// CouponDiscount computes the discount a coupon yields on a subtotal. A nil
// or inapplicable coupon, or a subtotal under min_order, yields zero rather
// than an error. A flat discount is capped at the subtotal so the payable
// can never go negative.
func CouponDiscount(coupon *models.Coupon, subtotal float64, orderType string) float64 {
	if coupon == nil {
		return 0
	}
	if coupon.Applicable_to != "both" && coupon.Applicable_to != orderType {
		return 0
	}
	if subtotal < coupon.Min_order {
		return 0
	}
	var discount float64
	if coupon.Discount_type == models.DiscountPercent {
		discount = subtotal * coupon.Discount / 100
	} else {
		discount = coupon.Discount
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		return 0
	}
	return discount
}

// PriceOrder derives every money field of an order. Pure: no lookups, no
// side effects; missing coupon degrades to zero discount.
func PriceOrder(orderType string, items []models.CartItem, deliveryCharge float64, coupon *models.Coupon) PriceBreakdown {
	b := PriceBreakdown{
		Subtotal:       CartSubtotal(items),
		DeliveryCharge: deliveryCharge,
	}
	if orderType == models.OrderTypeFood {
		b.Tax = b.Subtotal * FoodTaxPercent / 100
	} else {
		b.ServiceCharge = GroceryServiceCharge(b.Subtotal)
	}
	if distinctShops(items) > 1 {
		b.ConvenienceFee = MultiStoreConvenienceFee
	}
	b.Discount = CouponDiscount(coupon, b.Subtotal, orderType)
	b.Amount = b.Subtotal + b.DeliveryCharge + b.Tax + b.ConvenienceFee + b.ServiceCharge
	b.TotalAmount = b.Amount - b.Discount
	if b.TotalAmount < 0 {
		b.TotalAmount = 0
	}
	return b
}
