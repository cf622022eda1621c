package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"gymroom/infras/backend"
	"gymroom/infras/otel"
	"gymroom/internal/domains/trainbook/model"
	"gymroom/internal/domains/trainbook/model/dto"
	"gymroom/shared/constant"
	"gymroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const pathTrainbook = "/trainbook"

type Trainbook interface {
	Create(ctx context.Context, req dto.CreateTrainbookRequest) (model.Trainbook, error)
	GetAll(ctx context.Context) ([]model.Trainbook, error)
	Get(ctx context.Context, id int) (model.Trainbook, error)
	Update(ctx context.Context, id int, fields map[string]any) (model.Trainbook, error)
	Delete(ctx context.Context, id int) error
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Trainbook {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

// Create posts a booking. 200 and 201 are both success; the echoed booking is
// used when it can be read, otherwise the submitted one is returned.
func (r *repositoryImpl) Create(ctx context.Context, req dto.CreateTrainbookRequest) (trainbook model.Trainbook, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trainbook.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"room.id":   req.RoomID,
		"driver.id": req.DriverID,
	})

	res, err := r.client.Do(ctx, http.MethodPost, pathTrainbook, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to submit booking")

		return model.Trainbook{}, failure.FetchError("booking failed: backend unreachable") //nolint:wrapcheck
	}

	if !res.Is(http.StatusOK, http.StatusCreated) {
		return model.Trainbook{}, rejection(res, "booking failed")
	}

	trainbook, err = dto.DecodeTrainbook(res.Body)
	if err != nil || trainbook.RoomID == 0 {
		log.Debug().Err(err).Msg("booking response unreadable, using submitted booking")

		return req.ToModel(), nil
	}

	return trainbook, nil
}

func (r *repositoryImpl) GetAll(ctx context.Context) (trainbooks []model.Trainbook, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trainbook.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := r.client.Do(ctx, http.MethodGet, pathTrainbook, nil)
	if err != nil {
		return nil, failure.FetchError("failed to load bookings: backend unreachable") //nolint:wrapcheck
	}

	if !res.Is(http.StatusOK) {
		return nil, rejection(res, "failed to load bookings")
	}

	return dto.DecodeTrainbooks(res.Body)
}

func (r *repositoryImpl) Get(ctx context.Context, id int) (trainbook model.Trainbook, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trainbook.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := r.client.Do(ctx, http.MethodGet, trainbookPath(id), nil)
	if err != nil {
		return model.Trainbook{}, failure.FetchError("failed to load booking: backend unreachable") //nolint:wrapcheck
	}

	if res.Is(http.StatusNotFound) {
		return model.Trainbook{}, failure.NotFound(fmt.Sprintf("%s %d not found", model.EntityName, id)) //nolint:wrapcheck
	}

	if !res.Is(http.StatusOK) {
		return model.Trainbook{}, rejection(res, "failed to load booking")
	}

	return dto.DecodeTrainbook(res.Body)
}

// Update sends the changed fields along with the booking id, which the backend requires.
func (r *repositoryImpl) Update(ctx context.Context, id int, fields map[string]any) (trainbook model.Trainbook, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trainbook.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body := make(map[string]any, len(fields)+1)
	for key, value := range fields {
		body[key] = value
	}

	body[model.FieldID] = id

	res, err := r.client.Do(ctx, http.MethodPatch, trainbookPath(id), body)
	if err != nil {
		return model.Trainbook{}, failure.FetchError("failed to update booking: backend unreachable") //nolint:wrapcheck
	}

	if !res.Is(http.StatusOK) {
		return model.Trainbook{}, rejection(res, "failed to update booking")
	}

	return dto.DecodeTrainbook(res.Body)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".trainbook.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := r.client.Do(ctx, http.MethodDelete, trainbookPath(id), nil)
	if err != nil {
		return failure.FetchError("failed to delete booking: backend unreachable") //nolint:wrapcheck
	}

	if !res.Is(http.StatusOK, http.StatusNoContent) {
		return rejection(res, "failed to delete booking")
	}

	return nil
}

// rejection reports the backend's own message when it sent one.
func rejection(res *backend.Response, msg string) error {
	if backendMsg := res.ErrorMessage(); backendMsg != constant.Empty {
		log.Warn().Int("status", res.StatusCode).Str("error", backendMsg).Msg(msg)

		return failure.BackendRejected(res.StatusCode, backendMsg) //nolint:wrapcheck
	}

	log.Warn().Int("status", res.StatusCode).Msg(msg)

	return failure.FetchError(fmt.Sprintf("%s: backend returned status %d", msg, res.StatusCode)) //nolint:wrapcheck
}

func trainbookPath(id int) string {
	return pathTrainbook + "/" + strconv.Itoa(id)
}
