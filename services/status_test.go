package services

import (
	"testing"

	"go-delivery-marketplace/models"
)

func TestTransitionForwardPath(t *testing.T) {
	policy := CancelPolicy{}
	tests := []struct {
		from, to   string
		hasCourier bool
		wantErr    bool
	}{
		{models.StatusProcessing, models.StatusPreparing, false, false},
		{models.StatusPreparing, models.StatusOutForDelivery, true, false},
		{models.StatusProcessing, models.StatusOutForDelivery, true, false},
		{models.StatusOutForDelivery, models.StatusDelivered, true, false},

		// no skipping to Delivered
		{models.StatusProcessing, models.StatusDelivered, true, true},
		{models.StatusPreparing, models.StatusDelivered, true, true},
		// no going backwards
		{models.StatusPreparing, models.StatusProcessing, false, true},
		{models.StatusDelivered, models.StatusOutForDelivery, true, true},
		{models.StatusOutForDelivery, models.StatusPreparing, true, true},
		// terminal states stay terminal
		{models.StatusDelivered, models.StatusPreparing, true, true},
		{models.StatusCancelled, models.StatusPreparing, false, true},
		// same state is rejected
		{models.StatusProcessing, models.StatusProcessing, false, true},
	}
	for _, tt := range tests {
		err := Transition(tt.from, tt.to, tt.hasCourier, policy)
		if (err != nil) != tt.wantErr {
			t.Errorf("Transition(%q, %q, courier=%v) error = %v, wantErr %v",
				tt.from, tt.to, tt.hasCourier, err, tt.wantErr)
		}
	}
}

func TestTransitionRequiresCourier(t *testing.T) {
	policy := CancelPolicy{}
	if err := Transition(models.StatusPreparing, models.StatusOutForDelivery, false, policy); err == nil {
		t.Error("expected error: Out For Delivery without an assigned courier")
	}
	if err := Transition(models.StatusOutForDelivery, models.StatusDelivered, false, policy); err == nil {
		t.Error("expected error: Delivered without an assigned courier")
	}
}

func TestTransitionCancelWindowDefault(t *testing.T) {
	policy := CancelPolicyFromEnv("")
	if err := Transition(models.StatusProcessing, models.StatusCancelled, false, policy); err != nil {
		t.Errorf("cancel from Processing should be allowed: %v", err)
	}
	if err := Transition(models.StatusPreparing, models.StatusCancelled, false, policy); err == nil {
		t.Error("cancel from Preparing should be rejected by the default window")
	}
	if err := Transition(models.StatusOutForDelivery, models.StatusCancelled, true, policy); err == nil {
		t.Error("cancel from Out For Delivery must never be allowed")
	}
}

func TestTransitionCancelWindowPreparing(t *testing.T) {
	policy := CancelPolicyFromEnv("preparing")
	if err := Transition(models.StatusProcessing, models.StatusCancelled, false, policy); err != nil {
		t.Errorf("cancel from Processing should be allowed: %v", err)
	}
	if err := Transition(models.StatusPreparing, models.StatusCancelled, false, policy); err != nil {
		t.Errorf("extended window should allow cancel from Preparing: %v", err)
	}
	if err := Transition(models.StatusOutForDelivery, models.StatusCancelled, true, policy); err == nil {
		t.Error("cancel from Out For Delivery must never be allowed")
	}
}

func TestCancelPolicyFromEnv(t *testing.T) {
	if CancelPolicyFromEnv("preparing").AllowPreparing != true {
		t.Error("CANCEL_WINDOW=preparing should extend the window")
	}
	if CancelPolicyFromEnv("PREPARING").AllowPreparing != true {
		t.Error("CANCEL_WINDOW should be case-insensitive")
	}
	if CancelPolicyFromEnv("").AllowPreparing {
		t.Error("empty CANCEL_WINDOW should keep the default")
	}
	if CancelPolicyFromEnv("processing").AllowPreparing {
		t.Error("CANCEL_WINDOW=processing should keep the default")
	}
}

func TestRequiresCourier(t *testing.T) {
	if !RequiresCourier(models.StatusOutForDelivery) || !RequiresCourier(models.StatusDelivered) {
		t.Error("Out For Delivery and Delivered require a courier")
	}
	if RequiresCourier(models.StatusProcessing) || RequiresCourier(models.StatusPreparing) || RequiresCourier(models.StatusCancelled) {
		t.Error("pre-pickup and cancelled states require no courier")
	}
}
