package dto

import (
	"time"

	"packshift/internal/domains/booking/model"
	"packshift/shared"
	"packshift/shared/constant"
	"packshift/shared/timezone"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	Name   string `json:"name"   validate:"required,personname"`
	Phone  string `json:"phone"  validate:"required,inphone"`
	Pickup string `json:"pickup" validate:"required"`
	Drop   string `json:"drop"   validate:"required"`
	Date   string `json:"date"   validate:"required"`
}

func (r *SubmitBookingRequest) ToModel() (model.Booking, error) {
	bookingDate, err := time.Parse(constant.BookingDateFormat, r.Date)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:             uuid.NewString(),
		Name:           r.Name,
		Phone:          r.Phone,
		PickupLocation: r.Pickup,
		DropLocation:   r.Drop,
		BookingDate:    bookingDate,
		Status:         model.StatusPending,
		CreatedAt:      timezone.Now(),
	}, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending 'Picked Up' Delivered"`
}

type BookingResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Pickup       string  `json:"pickup"`
	Drop         string  `json:"drop"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	PickupTime   *string `json:"pickup_time,omitempty"`
	DeliveryTime *string `json:"delivery_time,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Pickup = model.PickupLocation
	r.Drop = model.DropLocation
	r.Date = model.BookingDate.Format(constant.BookingDateFormat)
	r.Status = string(model.Status)
	r.PickupTime = formatOptional(model.PickupTime)
	r.DeliveryTime = formatOptional(model.DeliveryTime)
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type TrackBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (r *TrackBookingsResponse) FromModels(models []model.Booking) {
	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type UpdateBookingResponse struct {
	Message string          `json:"message"`
	Booking BookingResponse `json:"booking"`
}

func formatOptional(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
