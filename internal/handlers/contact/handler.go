package contact

import (
	"net/http"

	"packshift/infras/otel"
	"packshift/internal/domains/contact/model/dto"
	"packshift/internal/domains/contact/service"
	"packshift/shared/constant"
	"packshift/shared/validator"
	"packshift/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Contact
	otel    otel.Otel
}

func New(service service.Contact, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/contact", handler.SubmitMessage)
}

// SubmitMessage stores a message from the contact form.
// @Summary Submit a contact message
// @Description Store a message sent through the contact form.
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Contact Request"
// @Success 201 {object} response.Message "Message received"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /contact [post]
func (handler *Handler) SubmitMessage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitMessage")
	defer scope.End()

	req := dto.ContactRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to store contact message")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Contact message stored")

	response.WithMessage(writer, http.StatusCreated, "Message received")
}
