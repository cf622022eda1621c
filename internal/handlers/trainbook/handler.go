package trainbook

import (
	"net/http"

	"gymroom/infras/otel"
	roomService "gymroom/internal/domains/room/service"
	"gymroom/internal/domains/trainbook/model/dto"
	"gymroom/internal/domains/trainbook/service"
	"gymroom/shared/constant"
	gDto "gymroom/shared/dto"
	"gymroom/shared/failure"
	"gymroom/shared/metrics"
	"gymroom/shared/validator"
	"gymroom/shared/view"
	"gymroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageBookingFailed = "Unable to book the room, please try again"

type Handler struct {
	rooms     roomService.Room
	submitter service.Submitter
	service   service.Trainbook
	otel      otel.Otel
	metrics   *metrics.Metrics
}

func New(
	rooms roomService.Room,
	submitter service.Submitter,
	service service.Trainbook,
	otel otel.Otel,
	m *metrics.Metrics,
) Handler {
	return Handler{
		rooms:     rooms,
		submitter: submitter,
		service:   service,
		otel:      otel,
		metrics:   m,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/rooms/trainbook/{id}", handler.BookRoom)

	// Full paths keep the route patterns equal to the permission table entries.
	router.Get("/trainbooks", handler.GetTrainbooks)
	router.Get("/trainbooks/{id}", handler.GetTrainbookByID)
	router.Patch("/trainbooks/{id}", handler.UpdateTrainbook)
	router.Delete("/trainbooks/{id}", handler.DeleteTrainbook)
}

// BookRoom books the room for the session's driver.
// @Summary Book a room
// @Description Load the room and submit a confirmed booking for the current driver. Success navigates back to the room list.
// @Tags Trainbook
// @Produce json
// @Param id path int true "Room ID"
// @Success 201 {object} response.View[dto.TrainbookResponse]
// @Failure 400 {object} response.View[dto.TrainbookResponse]
// @Failure 401 {object} response.View[dto.TrainbookResponse]
// @Failure 409 {object} response.View[dto.TrainbookResponse]
// @Failure 502 {object} response.View[dto.TrainbookResponse]
// @Router /v1/rooms/trainbook/{id} [post]
func (handler *Handler) BookRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookRoom")
	defer scope.End()

	collector := view.NewCollector(handler.metrics)
	detail := handler.rooms.NewDetail()

	// The booking is only offered for a room that loaded.
	if err := detail.Load(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("room detail did not load before booking")

		collector.Notify(ctx, view.LevelError, "Booking failed", bookingMessage(err))
		response.WithView[dto.TrainbookResponse](writer, http.StatusCreated, nil, err, collector)

		return
	}

	res, err := handler.submitter.Submit(ctx, detail)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book room")

		collector.Notify(ctx, view.LevelError, "Booking failed", bookingMessage(err))
		response.WithView[dto.TrainbookResponse](writer, http.StatusCreated, nil, err, collector)

		return
	}

	collector.Notify(ctx, view.LevelSuccess, "Success", "Room booked")
	collector.Navigate(ctx, constant.PathRooms)

	response.WithView(writer, http.StatusCreated, &res, nil, collector)
}

// GetTrainbooks lists every booking.
// @Summary Get all bookings
// @Tags Trainbook
// @Produce json
// @Param sort query gDto.QueryParams false "Sort parameters"
// @Success 200 {object} response.Data[[]dto.TrainbookResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/trainbooks [get]
// @Security BearerAuth
func (handler *Handler) GetTrainbooks(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrainbooks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trainbooks")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetTrainbookByID returns one booking.
// @Summary Get a booking
// @Tags Trainbook
// @Produce json
// @Param id path int true "Trainbook ID"
// @Success 200 {object} response.Data[dto.TrainbookResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/trainbooks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTrainbookByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrainbookByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trainbook")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateTrainbook patches a booking.
// @Summary Update a booking
// @Tags Trainbook
// @Accept json
// @Produce json
// @Param id path int true "Trainbook ID"
// @Param request body dto.UpdateTrainbookRequest true "Update Trainbook Request"
// @Success 200 {object} response.Data[dto.TrainbookResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/trainbooks/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTrainbook(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTrainbook")
	defer scope.End()

	req := dto.UpdateTrainbookRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update trainbook")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteTrainbook removes a booking.
// @Summary Delete a booking
// @Tags Trainbook
// @Produce json
// @Param id path int true "Trainbook ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/trainbooks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTrainbook(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTrainbook")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete trainbook")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Trainbook deleted successfully")
}

// bookingMessage keeps the backend's own message and the precondition
// messages. Everything else gets the generic text.
func bookingMessage(err error) string {
	switch failure.KindOf(err) {
	case failure.KindBackendRejected,
		failure.KindMissingIdentifier,
		failure.KindRoomNotReady,
		failure.KindNoDriverIdentity,
		failure.KindBookingInFlight:
		return err.Error()
	default:
		return messageBookingFailed
	}
}
