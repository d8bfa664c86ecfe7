package model

import (
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldName           = "name"
	FieldPhone          = "phone"
	FieldPickupLocation = "pickup_location"
	FieldDropLocation   = "drop_location"
	FieldBookingDate    = "booking_date"
	FieldStatus         = "status"
	FieldPickupTime     = "pickup_time"
	FieldDeliveryTime   = "delivery_time"
	FieldCreatedAt      = "created_at"
)

type Booking struct {
	ID             string     `db:"id"`
	Name           string     `db:"name"`
	Phone          string     `db:"phone"`
	PickupLocation string     `db:"pickup_location"`
	DropLocation   string     `db:"drop_location"`
	BookingDate    time.Time  `db:"booking_date"`
	Status         Status     `db:"status"`
	PickupTime     *time.Time `db:"pickup_time"`
	DeliveryTime   *time.Time `db:"delivery_time"`
	CreatedAt      time.Time  `db:"created_at"`
}
