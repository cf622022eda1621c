package room

import (
	"errors"
	"fmt"
	"net/http"

	"gymroom/infras/otel"
	"gymroom/internal/domains/room/model/dto"
	"gymroom/internal/domains/room/service"
	"gymroom/shared"
	"gymroom/shared/constant"
	"gymroom/shared/failure"
	"gymroom/shared/metrics"
	"gymroom/shared/view"
	"gymroom/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(service service.Room, otel otel.Otel, m *metrics.Metrics) Handler {
	return Handler{
		service: service,
		otel:    otel,
		metrics: m,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
	router.Delete("/rooms/{id}", handler.DeleteRoom)
	router.Get("/rooms/trainbook/{id}", handler.GetRoomDetail)
}

// GetRooms renders the room list.
// @Summary Room list screen
// @Description Fetch all rooms with their occupancy status and the actions the caller's role allows.
// @Tags Room
// @Produce json
// @Success 200 {object} response.View[dto.RoomListResponse]
// @Failure 502 {object} response.View[dto.RoomListResponse]
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	role := roleOf(request)
	collector := view.NewCollector(handler.metrics)

	rooms, err := handler.service.NewList().Fetch(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch rooms")

		collector.Notify(ctx, view.LevelError, "Error", describe(err, "Unable to load rooms"))
	}

	res := dto.NewRoomListResponse(rooms, role)

	response.WithView(writer, http.StatusOK, &res, err, collector)
}

// DeleteRoom deletes a room and returns the refreshed list.
// @Summary Delete a room
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.View[dto.RoomListResponse]
// @Failure 400 {object} response.View[dto.RoomListResponse]
// @Failure 502 {object} response.View[dto.RoomListResponse]
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	role := roleOf(request)
	collector := view.NewCollector(handler.metrics)

	idParam := chi.URLParam(request, constant.RequestParamID)

	id, ok := shared.ConvertStringToID(idParam)
	if !ok {
		err := failure.MissingIdentifier(fmt.Sprintf("room id %q is missing or invalid", idParam))
		scope.TraceError(err)

		collector.Notify(ctx, view.LevelError, "Error", err.Error())
		response.WithView[dto.RoomListResponse](writer, http.StatusOK, nil, err, collector)

		return
	}

	list := handler.service.NewList()

	if err := list.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("room_id", id).Msg("failed to delete room")

		collector.Notify(ctx, view.LevelError, "Error", describe(err, "Unable to delete room"))

		// A stale list is sent empty. Any other failure sends no list and the
		// client keeps what it had.
		var res *dto.RoomListResponse
		if errors.Is(err, service.ErrListStale) {
			stale := dto.NewRoomListResponse(list.Rooms(), role)
			res = &stale
		}

		response.WithView(writer, http.StatusOK, res, err, collector)

		return
	}

	scope.AddEvent(fmt.Sprintf("room %d deleted", id))
	collector.Notify(ctx, view.LevelSuccess, "Success", "Room deleted")

	res := dto.NewRoomListResponse(list.Rooms(), role)

	response.WithView(writer, http.StatusOK, &res, nil, collector)
}

// GetRoomDetail loads the room shown on the booking screen.
// @Summary Room booking screen
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.View[dto.RoomDetailResponse]
// @Failure 400 {object} response.View[dto.RoomDetailResponse]
// @Failure 502 {object} response.View[dto.RoomDetailResponse]
// @Router /v1/rooms/trainbook/{id} [get]
func (handler *Handler) GetRoomDetail(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomDetail")
	defer scope.End()

	collector := view.NewCollector(handler.metrics)
	detail := handler.service.NewDetail()

	err := detail.Load(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		collector.Notify(ctx, view.LevelError, "Error", describe(err, "Unable to load room"))
	}

	snapshot := detail.Snapshot()
	res := dto.NewRoomDetailResponse(string(snapshot.State), snapshot.Room, err == nil)

	response.WithView(writer, http.StatusOK, &res, err, collector)
}

func roleOf(request *http.Request) string {
	role, _ := request.Context().Value(constant.ContextKeyUserRole).(string)
	if role == constant.Empty {
		return constant.RoleGuest
	}

	return role
}

// describe returns the failure message shown to the user, or fallback for
// errors that are not meant for display.
func describe(err error, fallback string) string {
	var fail *failure.Failure
	if errors.As(err, &fail) && fail.Message != constant.Empty {
		return fail.Message
	}

	return fallback
}
