package services

import (
	"testing"
	"time"

	"go-delivery-marketplace/models"

	"github.com/stretchr/testify/assert"
)

func TestIsAvailableOrder(t *testing.T) {
	boy := "boy-1"
	tests := []struct {
		name  string
		order models.Order
		want  bool
	}{
		{"unassigned processing", models.Order{Delivery_status: models.StatusProcessing}, true},
		{"unassigned preparing", models.Order{Delivery_status: models.StatusPreparing}, true},
		{"already assigned", models.Order{Delivery_status: models.StatusProcessing, Delivery_boy_id: &boy}, false},
		{"delivered", models.Order{Delivery_status: models.StatusDelivered}, false},
		{"cancelled", models.Order{Delivery_status: models.StatusCancelled}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAvailableOrder(tt.order))
		})
	}
}

func TestCommissionForOrder(t *testing.T) {
	order := models.Order{Delivery_charge: 40, Convenience_fee: 30}
	assert.Equal(t, 70.0, CommissionForOrder(order))

	order = models.Order{Delivery_charge: 50}
	assert.Equal(t, 50.0, CommissionForOrder(order))
}

func TestUnsettledTotalMatchesEntries(t *testing.T) {
	now := time.Now()
	payments := []models.OutstandingPayment{
		{Order_id: "o1", Amount: 50, Status: models.PaymentUnsettled, Collected_at: now},
		{Order_id: "o2", Amount: 60, Status: models.PaymentUnsettled, Collected_at: now},
		{Order_id: "o3", Amount: 40, Status: models.PaymentUnsettled, Collected_at: now},
		{Order_id: "o0", Amount: 99, Status: models.PaymentSettled, Collected_at: now, Settled_at: &now},
	}
	// the running total a courier document carries must always equal this sum
	assert.Equal(t, 150.0, UnsettledTotal(payments))

	for i := range payments {
		payments[i].Status = models.PaymentSettled
	}
	assert.Equal(t, 0.0, UnsettledTotal(payments), "after settlement nothing remains unsettled")
}

func TestDashboard(t *testing.T) {
	boy := models.DeliveryBoy{
		Outstanding_amount: 150,
		Commission_history: []models.CommissionEntry{
			{Order_id: "o1", Amount: 40},
			{Order_id: "o2", Amount: 70},
		},
	}
	boyId := "boy-1"
	assigned := []models.Order{
		{Delivery_status: models.StatusOutForDelivery, Delivery_boy_id: &boyId},
		{Delivery_status: models.StatusPreparing, Delivery_boy_id: &boyId},
		{Delivery_status: models.StatusDelivered, Delivery_boy_id: &boyId},
		{Delivery_status: models.StatusCancelled, Delivery_boy_id: &boyId},
	}

	summary := Dashboard(boy, assigned)
	assert.Equal(t, 2, summary.Pending_orders, "delivered and cancelled are not pending")
	assert.Equal(t, 110.0, summary.Total_commission)
	assert.Equal(t, 150.0, summary.Outstanding_amount)
}

// The full lifecycle as the courier sees it: accept, pick up, deliver COD.
func TestDeliveryLifecycleBookkeeping(t *testing.T) {
	boyId := "boy-1"
	order := models.Order{
		Order_id:        "o1",
		Subtotal:        300,
		Delivery_charge: 40,
		Total_amount:    355,
		Delivery_status: models.StatusProcessing,
		Payment_status:  models.PaymentUnpaid,
		Payment_method:  models.PaymentMethodCOD,
	}
	policy := CancelPolicy{}

	assert.True(t, IsAvailableOrder(order))
	order.Delivery_boy_id = &boyId
	assert.False(t, IsAvailableOrder(order), "accepted orders leave the pool")

	assert.NoError(t, Transition(order.Delivery_status, models.StatusOutForDelivery, true, policy))
	order.Delivery_status = models.StatusOutForDelivery

	assert.NoError(t, Transition(order.Delivery_status, models.StatusDelivered, true, policy))
	order.Delivery_status = models.StatusDelivered
	order.Payment_status = models.PaymentPaid

	commission := CommissionForOrder(order)
	assert.Equal(t, 40.0, commission)

	boy := models.DeliveryBoy{}
	now := time.Now()
	boy.Commission_history = append(boy.Commission_history, models.CommissionEntry{
		Order_id: order.Order_id, Amount: commission, Earned_at: now,
	})
	boy.Outstanding_payments = append(boy.Outstanding_payments, models.OutstandingPayment{
		Order_id: order.Order_id, Amount: commission, Status: models.PaymentUnsettled, Collected_at: now,
	})
	boy.Outstanding_amount += commission

	assert.Equal(t, boy.Outstanding_amount, UnsettledTotal(boy.Outstanding_payments))
	assert.Len(t, boy.Commission_history, 1)
}
