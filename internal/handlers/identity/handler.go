package identity

import (
	"net/http"

	"gymroom/infras/otel"
	"gymroom/internal/domains/identity/model/dto"
	"gymroom/internal/domains/identity/service"
	"gymroom/shared/constant"
	"gymroom/shared/validator"
	"gymroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Identity
	otel    otel.Otel
}

func New(service service.Identity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Put("/session/identity", handler.RememberDriver)
}

// RememberDriver stores the driver id used for bookings made with this token.
// @Summary Remember the session's driver
// @Tags Session
// @Accept json
// @Produce json
// @Param request body dto.RememberDriverRequest true "Remember Driver Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/session/identity [put]
// @Security BearerAuth
func (handler *Handler) RememberDriver(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RememberDriver")
	defer scope.End()

	req := dto.RememberDriverRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Remember(ctx, constant.IdentityKeyDriverID, req.DriverID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remember driver")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Driver remembered")
}
