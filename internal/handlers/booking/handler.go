package booking

import (
	"net/http"

	"packshift/infras/otel"
	"packshift/internal/domains/booking/model/dto"
	"packshift/internal/domains/booking/service"
	"packshift/shared/constant"
	gDto "packshift/shared/dto"
	"packshift/shared/validator"
	"packshift/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/submit-booking", handler.SubmitBooking)
	router.Get("/get-bookings", handler.GetBookings)
	router.Patch("/update-booking/{id}", handler.UpdateBooking)
	router.Delete("/delete-booking/{id}", handler.DeleteBooking)
	router.Get("/track/{phone}", handler.TrackBookings)
}

// SubmitBooking handles the creation of a new delivery booking.
// @Summary Submit a new booking
// @Description Create a new delivery booking with the provided details.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SubmitBookingRequest true "Submit Booking Request"
// @Success 201 {object} response.Message "Booking Confirmed"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /submit-booking [post]
func (handler *Handler) SubmitBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBooking")
	defer scope.End()

	req := dto.SubmitBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created with id " + id)

	response.WithMessage(writer, http.StatusCreated, "Booking Confirmed")
}

// GetBookings retrieves all bookings based on query parameters.
// @Summary Get all bookings
// @Description Retrieve all bookings with pagination, newest first.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /get-bookings [get]
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// UpdateBooking updates the status of an existing booking.
// @Summary Update booking status
// @Description Move a booking through its lifecycle and stamp pickup or delivery times.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.UpdateBookingResponse] "Booking updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /update-booking/{id} [patch]
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking " + id + " moved to " + booking.Status)

	response.WithJSON(w, http.StatusOK, dto.UpdateBookingResponse{
		Message: "Status updated",
		Booking: booking,
	})
}

// DeleteBooking deletes a booking by its ID.
// @Summary Delete a booking by ID
// @Description Remove a booking using its unique identifier.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted"
// @Failure 500 {object} response.Error
// @Router /delete-booking/{id} [delete]
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking deleted: " + id)

	response.WithMessage(w, http.StatusOK, "Booking deleted")
}

// TrackBookings retrieves bookings whose phone number contains the fragment.
// @Summary Track bookings by phone
// @Description Look up bookings by a full or partial phone number.
// @Tags Booking
// @Accept json
// @Produce json
// @Param phone path string true "Phone number or fragment"
// @Success 200 {object} response.Data[dto.TrackBookingsResponse] "Matching bookings"
// @Failure 500 {object} response.Error
// @Router /track/{phone} [get]
func (handler *Handler) TrackBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TrackBookings")
	defer scope.End()

	phone := chi.URLParam(r, constant.RequestParamPhone)

	bookings, err := handler.service.TrackByPhone(ctx, phone)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to track bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings tracked by phone fragment")

	response.WithJSON(w, http.StatusOK, bookings)
}
