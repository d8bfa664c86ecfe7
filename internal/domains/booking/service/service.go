package service

import (
	"context"
	"fmt"

	"packshift/config"
	"packshift/infras/kafka"
	"packshift/infras/otel"
	"packshift/internal/domains/booking/model"
	"packshift/internal/domains/booking/model/dto"
	"packshift/internal/domains/booking/repository"
	"packshift/shared"
	"packshift/shared/cache"
	"packshift/shared/constant"
	gDto "packshift/shared/dto"
	"packshift/shared/failure"
	"packshift/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheTrackBooking  = "booking:track"
)

const (
	eventBookingCreated       = "booking.created"
	eventBookingStatusChanged = "booking.status_changed"
	eventBookingDeleted       = "booking.deleted"
)

type bookingEvent struct {
	Event     string `json:"event"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status,omitempty"`
	At        string `json:"at"`
}

type Booking interface {
	Create(ctx context.Context, req dto.SubmitBookingRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	TrackByPhone(ctx context.Context, fragment string) (dto.TrackBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	producer kafka.Producer
	otel     otel.Otel
}

func New(repo repository.Booking, cfg *config.Config, cache cache.RedisCache, producer kafka.Producer, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    cache,
		producer: producer,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SubmitBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := req.ToModel()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return id, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return id, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheTrackBooking)

		s.publishEvent(c, eventBookingCreated, booking.ID, string(booking.Status))
	}()

	return booking.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Str("id", id).Msg("booking not found")

		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	newStatus, effects := model.Transition(booking.Status, model.Status(req.Status), timezone.Now())

	updatedFields := map[string]any{
		model.FieldStatus: string(newStatus),
	}

	booking.Status = newStatus
	if effects.PickupTime != nil {
		updatedFields[model.FieldPickupTime] = *effects.PickupTime
		booking.PickupTime = effects.PickupTime
	}

	if effects.DeliveryTime != nil {
		updatedFields[model.FieldDeliveryTime] = *effects.DeliveryTime
		booking.DeliveryTime = effects.DeliveryTime
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return res, fmt.Errorf("failed to update booking status: %w", err)
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheTrackBooking)

		s.publishEvent(c, eventBookingStatusChanged, id, string(newStatus))
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	// Deleting an unknown id is a no-op and still succeeds.
	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
		shared.InvalidateCaches(c, s.cache, cacheTrackBooking)

		s.publishEvent(c, eventBookingDeleted, id, constant.Empty)
	}()

	return nil
}

func (s *serviceImpl) TrackByPhone(ctx context.Context, fragment string) (res dto.TrackBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TrackByPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheTrackBooking, fragment)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tracked bookings")

		return res, nil
	}

	// Zero page/limit keeps the query unpaginated; tracking returns every
	// match for the fragment.
	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	models, err := s.repo.GetAll(ctx, params, shared.FilterBySubstring(fragment, model.FieldPhone, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to track bookings by phone")

		return res, fmt.Errorf("failed to track bookings by phone: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tracked bookings to cache")
		}
	}()

	return res, nil
}

// publishEvent emits a lifecycle event to the booking events topic. Delivery
// is best effort and never fails the originating request.
func (s *serviceImpl) publishEvent(ctx context.Context, event, id, status string) {
	message := kafka.Message{
		Key: id,
		Value: bookingEvent{
			Event:     event,
			BookingID: id,
			Status:    status,
			At:        timezone.Format(timezone.Now(), constant.DateFormat),
		},
	}

	if err := s.producer.SendMessages(ctx, s.cfg.Kafka.Topic.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish booking event")
	}
}
