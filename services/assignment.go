package services

import "go-delivery-marketplace/models"

// IsAvailableOrder reports whether a courier may still claim the order:
// nobody assigned yet and the order still in a pre-delivery state.
func IsAvailableOrder(o models.Order) bool {
	if o.Delivery_boy_id != nil {
		return false
	}
	return o.Delivery_status != models.StatusDelivered && o.Delivery_status != models.StatusCancelled
}

// CommissionForOrder is what the courier earns on a delivered order.
func CommissionForOrder(o models.Order) float64 {
	return o.Delivery_charge + o.Convenience_fee
}

func CommissionTotal(entries []models.CommissionEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Amount
	}
	return total
}

func UnsettledTotal(payments []models.OutstandingPayment) float64 {
	var total float64
	for _, p := range payments {
		if p.Status == models.PaymentUnsettled {
			total += p.Amount
		}
	}
	return total
}

func PendingDeliveries(assigned []models.Order) int {
	count := 0
	for _, o := range assigned {
		if o.Delivery_status != models.StatusDelivered && o.Delivery_status != models.StatusCancelled {
			count++
		}
	}
	return count
}

// DashboardSummary backs the courier home screen.
type DashboardSummary struct {
	Pending_orders     int     `json:"pending_orders"`
	Total_commission   float64 `json:"total_commission"`
	Outstanding_amount float64 `json:"outstanding_amount"`
}

func Dashboard(boy models.DeliveryBoy, assigned []models.Order) DashboardSummary {
	return DashboardSummary{
		Pending_orders:     PendingDeliveries(assigned),
		Total_commission:   CommissionTotal(boy.Commission_history),
		Outstanding_amount: boy.Outstanding_amount,
	}
}
