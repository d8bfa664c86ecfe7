package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"packshift/config"
	kafkaMocks "packshift/infras/kafka/mocks"
	"packshift/infras/otel/mocks"
	bookingMocks "packshift/internal/domains/booking/mocks"
	"packshift/internal/domains/booking/model"
	"packshift/internal/domains/booking/model/dto"
	"packshift/internal/domains/booking/service"
	cacheMocks "packshift/shared/cache/mocks"
	gDto "packshift/shared/dto"
	"packshift/shared/failure"
	"packshift/shared/timezone"
)

func newTestService(ctrl *gomock.Controller) (service.Booking, *bookingMocks.MockBooking, *cacheMocks.MockRedisCache) {
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockProducer := kafkaMocks.NewMockProducer(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	// Cache writes, invalidation and event publishing run on background
	// goroutines, so they may or may not land within a test's lifetime.
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockProducer.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, cfg, mockCache, mockProducer, mockOtel)

	return svc, mockRepo, mockCache
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestService(ctrl)

	validReq := dto.SubmitBookingRequest{
		Name:   "Ravi Kumar",
		Phone:  "9876543210",
		Pickup: "MG Road",
		Drop:   "Airport",
		Date:   "2026-09-15",
	}

	tests := []struct {
		name      string
		req       dto.SubmitBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation starts as pending",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.NotEmpty(t, booking.ID)
						assert.Equal(t, model.StatusPending, booking.Status)
						assert.Nil(t, booking.PickupTime)
						assert.Nil(t, booking.DeliveryTime)
						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			req: dto.SubmitBookingRequest{
				Name:   "Ravi Kumar",
				Phone:  "9876543210",
				Pickup: "MG Road",
				Drop:   "Airport",
				Date:   "15-09-2026",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			id, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, id)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newTestService(ctrl)

	bookings := []model.Booking{
		{ID: "booking-1", Name: "Ravi Kumar", Phone: "9876543210", Status: model.StatusPending, CreatedAt: timezone.Now()},
		{ID: "booking-2", Name: "Anita Shah", Phone: "8765432109", Status: model.StatusDelivered, CreatedAt: timezone.Now()},
	}

	params := gDto.QueryParams{Page: 1, Limit: 10, SortBy: "created_at", SortDir: "DESC"}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, dest any) error {
						res := dest.(*dto.GetBookingsResponse)
						res.FromModels(bookings, 2, params.Limit)
						return nil
					})
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "cache miss, fetch from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), params, gomock.Any()).
					Return(bookings, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss")).
					Times(2)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetAll(context.Background(), params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Bookings, tt.wantLen)
				assert.Equal(t, 2, res.TotalData)
				assert.Equal(t, 1, res.TotalPage)
			}
		})
	}
}

func TestBookingService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestService(ctrl)

	pending := model.Booking{
		ID:        "booking-1",
		Name:      "Ravi Kumar",
		Phone:     "9876543210",
		Status:    model.StatusPending,
		CreatedAt: timezone.Now(),
	}

	tests := []struct {
		name       string
		id         string
		req        dto.UpdateStatusRequest
		setupMock  func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "picked up stamps pickup time",
			id:   "booking-1",
			req:  dto.UpdateStatusRequest{Status: "Picked Up"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Picked Up", fields[model.FieldStatus])
						assert.IsType(t, time.Time{}, fields[model.FieldPickupTime])
						assert.NotContains(t, fields, model.FieldDeliveryTime)
						return nil
					})
			},
			wantErr:    false,
			wantStatus: "Picked Up",
		},
		{
			name: "delivered stamps delivery time only",
			id:   "booking-1",
			req:  dto.UpdateStatusRequest{Status: "Delivered"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Delivered", fields[model.FieldStatus])
						assert.IsType(t, time.Time{}, fields[model.FieldDeliveryTime])
						assert.NotContains(t, fields, model.FieldPickupTime)
						return nil
					})
			},
			wantErr:    false,
			wantStatus: "Delivered",
		},
		{
			name: "reset to pending leaves timestamps alone",
			id:   "booking-1",
			req:  dto.UpdateStatusRequest{Status: "Pending"},
			setupMock: func() {
				picked := pending
				pickupAt := timezone.Now()
				picked.Status = model.StatusPickedUp
				picked.PickupTime = &pickupAt

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(picked, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Pending", fields[model.FieldStatus])
						assert.NotContains(t, fields, model.FieldPickupTime)
						assert.NotContains(t, fields, model.FieldDeliveryTime)
						return nil
					})
			},
			wantErr:    false,
			wantStatus: "Pending",
		},
		{
			name: "unknown booking",
			id:   "missing-id",
			req:  dto.UpdateStatusRequest{Status: "Delivered"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			id:   "booking-1",
			req:  dto.UpdateStatusRequest{Status: "Delivered"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(pending, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.UpdateStatus(context.Background(), tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, res.Status)
			}
		})
	}
}

func TestBookingService_UpdateStatusNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestService(ctrl)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, nil)

	_, err := svc.UpdateStatus(context.Background(), dto.UpdateStatusRequest{Status: "Delivered"}, "missing-id")

	assert.Error(t, err)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			id:   "booking-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown id still succeeds",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "repository error",
			id:   "booking-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_TrackByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newTestService(ctrl)

	bookings := []model.Booking{
		{ID: "booking-1", Name: "Ravi Kumar", Phone: "9876543210", Status: model.StatusPending, CreatedAt: timezone.Now()},
	}

	tests := []struct {
		name      string
		fragment  string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name:     "matches by substring without a result cap",
			fragment: "98765",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
						assert.Zero(t, params.Page, "tracking must not paginate")
						assert.Zero(t, params.Limit, "tracking must return every match")
						assert.Equal(t, "created_at", params.SortBy)
						assert.Equal(t, "DESC", params.SortDir)
						return bookings, nil
					})
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:     "no matches",
			fragment: "000",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)
			},
			wantErr: false,
			wantLen: 0,
		},
		{
			name:     "repository error",
			fragment: "98765",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.TrackByPhone(context.Background(), tt.fragment)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, res.Bookings, tt.wantLen)
			}
		})
	}
}
