package services

import (
	"fmt"
	"strings"

	"go-delivery-marketplace/models"
)

// CancelPolicy decides how far into the lifecycle an order may still be
// cancelled. The default window closes once the seller starts preparing.
type CancelPolicy struct {
	AllowPreparing bool
}

// CancelPolicyFromEnv parses the CANCEL_WINDOW setting. "preparing" extends
// the window; anything else keeps the Processing-only default.
func CancelPolicyFromEnv(value string) CancelPolicy {
	return CancelPolicy{AllowPreparing: strings.EqualFold(value, "preparing")}
}

func (p CancelPolicy) Cancellable(from string) bool {
	if from == models.StatusProcessing {
		return true
	}
	return p.AllowPreparing && from == models.StatusPreparing
}

// forwardTransitions lists every allowed non-cancel move. Pickup may happen
// before the seller marks Preparing, so Processing goes straight to
// Out For Delivery as well.
var forwardTransitions = map[string][]string{
	models.StatusProcessing:     {models.StatusPreparing, models.StatusOutForDelivery},
	models.StatusPreparing:      {models.StatusOutForDelivery},
	models.StatusOutForDelivery: {models.StatusDelivered},
}

// RequiresCourier reports whether a status may only be reached with a
// courier already assigned.
func RequiresCourier(status string) bool {
	return status == models.StatusOutForDelivery || status == models.StatusDelivered
}

// Transition is the single gate for every order status change. It validates
// the move and returns a reason when it is not allowed. Callers must never
// write delivery_status without going through it.
func Transition(from string, to string, hasCourier bool, policy CancelPolicy) error {
	if from == to {
		return fmt.Errorf("order is already %s", from)
	}
	if to == models.StatusCancelled {
		if !policy.Cancellable(from) {
			return fmt.Errorf("order can no longer be cancelled once %s", from)
		}
		return nil
	}
	if RequiresCourier(to) && !hasCourier {
		return fmt.Errorf("order cannot be marked %s without an assigned delivery boy", to)
	}
	for _, allowed := range forwardTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("order cannot move from %s to %s", from, to)
}
