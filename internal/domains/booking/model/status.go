package model

import (
	"time"
)

// Status is the booking lifecycle stage.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPickedUp  Status = "Picked Up"
	StatusDelivered Status = "Delivered"
)

// Valid reports whether the status is one of the known lifecycle stages.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPickedUp, StatusDelivered:
		return true
	}

	return false
}

// TimestampEffects carries the timestamp writes a status change produces.
// A nil field means the corresponding column is left untouched.
type TimestampEffects struct {
	PickupTime   *time.Time
	DeliveryTime *time.Time
}

// Transition applies a requested status change to the current stage.
// Picked Up stamps the pickup time and Delivered stamps the delivery time,
// overwriting any prior value; no other status touches a timestamp, so
// moving back to an earlier stage never clears what was already set.
func Transition(current, requested Status, now time.Time) (Status, TimestampEffects) {
	effects := TimestampEffects{}

	switch requested {
	case StatusPickedUp:
		effects.PickupTime = &now
	case StatusDelivered:
		effects.DeliveryTime = &now
	}

	return requested, effects
}
