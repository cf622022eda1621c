package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"gymroom/infras/backend"
	"gymroom/infras/otel"
	"gymroom/internal/domains/room/model"
	"gymroom/internal/domains/room/model/dto"
	"gymroom/shared/constant"
	"gymroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const pathRoom = "/room"

type Room interface {
	Get(ctx context.Context, id int) (model.Room, error)
	GetAll(ctx context.Context) ([]model.Room, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Room {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (room model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room.id", id)

	res, err := r.client.Do(ctx, http.MethodGet, roomPath(id), nil)
	if err != nil {
		return model.Room{}, transportFailure(ctx, err, "failed to load room")
	}

	if !res.Is(http.StatusOK) {
		log.Warn().Int("status", res.StatusCode).Int("room_id", id).Msg("backend refused room")

		return model.Room{}, failure.FetchError(fmt.Sprintf("failed to load room %d: backend returned status %d", id, res.StatusCode)) //nolint:wrapcheck
	}

	return dto.DecodeRoom(res.Body)
}

func (r *repositoryImpl) GetAll(ctx context.Context) (rooms []model.Room, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := r.client.Do(ctx, http.MethodGet, pathRoom, nil)
	if err != nil {
		return nil, transportFailure(ctx, err, "failed to load rooms")
	}

	if !res.Is(http.StatusOK) {
		log.Warn().Int("status", res.StatusCode).Msg("backend refused room list")

		return nil, failure.FetchError(fmt.Sprintf("failed to load rooms: backend returned status %d", res.StatusCode)) //nolint:wrapcheck
	}

	rooms, err = dto.DecodeRooms(res.Body)
	if err != nil {
		return nil, err
	}

	scope.SetAttribute("room.count", len(rooms))

	return rooms, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room.id", id)

	res, err := r.client.Do(ctx, http.MethodDelete, roomPath(id), nil)
	if err != nil {
		return transportFailure(ctx, err, "failed to delete room")
	}

	if !res.Is(http.StatusOK, http.StatusNoContent) {
		if msg := res.ErrorMessage(); msg != constant.Empty {
			return failure.BackendRejected(res.StatusCode, msg) //nolint:wrapcheck
		}

		return failure.FetchError(fmt.Sprintf("failed to delete room %d: backend returned status %d", id, res.StatusCode)) //nolint:wrapcheck
	}

	return nil
}

func roomPath(id int) string {
	return pathRoom + "/" + strconv.Itoa(id)
}

// transportFailure keeps cancellation visible to callers and reports any other
// transport problem as a FetchError.
func transportFailure(ctx context.Context, err error, msg string) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", msg, ctx.Err())
	}

	log.Error().Err(err).Msg(msg)

	return failure.FetchError(msg + ": backend unreachable") //nolint:wrapcheck
}
