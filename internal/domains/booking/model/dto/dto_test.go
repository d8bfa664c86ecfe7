package dto_test

import (
	"testing"
	"time"

	"packshift/internal/domains/booking/model"
	"packshift/internal/domains/booking/model/dto"
	"packshift/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestSubmitBookingRequest_ToModel(t *testing.T) {
	req := dto.SubmitBookingRequest{
		Name:   "Ravi Kumar",
		Phone:  "9876543210",
		Pickup: "MG Road",
		Drop:   "Airport",
		Date:   "2026-09-15",
	}

	booking, err := req.ToModel()

	assert.NoError(t, err)
	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, booking.Name)
	assert.Equal(t, req.Phone, booking.Phone)
	assert.Equal(t, req.Pickup, booking.PickupLocation)
	assert.Equal(t, req.Drop, booking.DropLocation)
	assert.Equal(t, 2026, booking.BookingDate.Year())
	assert.Equal(t, time.September, booking.BookingDate.Month())
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Nil(t, booking.PickupTime)
	assert.Nil(t, booking.DeliveryTime)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestSubmitBookingRequest_ToModelInvalidDate(t *testing.T) {
	req := dto.SubmitBookingRequest{
		Name:   "Ravi Kumar",
		Phone:  "9876543210",
		Pickup: "MG Road",
		Drop:   "Airport",
		Date:   "15/09/2026",
	}

	_, err := req.ToModel()

	assert.Error(t, err)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	pickupAt := now.Add(-time.Hour)

	bookingModel := model.Booking{
		ID:             "test-id",
		Name:           "Ravi Kumar",
		Phone:          "9876543210",
		PickupLocation: "MG Road",
		DropLocation:   "Airport",
		BookingDate:    time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Status:         model.StatusPickedUp,
		PickupTime:     &pickupAt,
		CreatedAt:      now,
	}

	var response dto.BookingResponse
	response.FromModel(bookingModel)

	assert.Equal(t, bookingModel.ID, response.ID)
	assert.Equal(t, bookingModel.Name, response.Name)
	assert.Equal(t, bookingModel.Phone, response.Phone)
	assert.Equal(t, "MG Road", response.Pickup)
	assert.Equal(t, "Airport", response.Drop)
	assert.Equal(t, "2026-09-15", response.Date)
	assert.Equal(t, "Picked Up", response.Status)
	assert.NotNil(t, response.PickupTime)
	assert.Nil(t, response.DeliveryTime, "expected no delivery time before delivery")
	assert.NotEmpty(t, response.CreatedAt)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Booking{
		{ID: "booking-1", Status: model.StatusPending, CreatedAt: now},
		{ID: "booking-2", Status: model.StatusDelivered, CreatedAt: now},
	}

	var response dto.GetBookingsResponse
	response.FromModels(models, 12, 10)

	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, 12, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Equal(t, "booking-1", response.Bookings[0].ID)
}

func TestTrackBookingsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	models := []model.Booking{
		{ID: "booking-1", Phone: "9876543210", Status: model.StatusPending, CreatedAt: now},
	}

	var response dto.TrackBookingsResponse
	response.FromModels(models)

	assert.Len(t, response.Bookings, 1)
	assert.Equal(t, "9876543210", response.Bookings[0].Phone)
}
