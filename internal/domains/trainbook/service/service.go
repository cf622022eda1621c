package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Trainbook=MockTrainbookService

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gymroom/config"
	"gymroom/infras/otel"
	roomModel "gymroom/internal/domains/room/model"
	"gymroom/internal/domains/trainbook/model/dto"
	"gymroom/internal/domains/trainbook/repository"
	"gymroom/shared"
	"gymroom/shared/cache"
	"gymroom/shared/constant"
	gDto "gymroom/shared/dto"
	"gymroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetAllTrainbook = "trainbook:get_all"

// RoomSource is a loaded room detail the booking is made for.
type RoomSource interface {
	Ready() (roomModel.Room, bool)
}

type Submitter interface {
	// Submit books the ready room for the session's driver. Nothing is
	// retained between attempts.
	Submit(ctx context.Context, room RoomSource) (dto.TrainbookResponse, error)
}

// Trainbook administers existing bookings.
type Trainbook interface {
	// GetAll returns every booking ordered by q. The unordered list is cached.
	GetAll(ctx context.Context, q gDto.QueryParams) ([]dto.TrainbookResponse, error)
	Get(ctx context.Context, id string) (dto.TrainbookResponse, error)
	Update(ctx context.Context, req dto.UpdateTrainbookRequest, id string) (dto.TrainbookResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Trainbook
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Trainbook, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Trainbook {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, q gDto.QueryParams) (res []dto.TrainbookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trainbook.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	all, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	res = slices.Clone(all)
	if err = dto.SortTrainbooks(res, q.SortBy, q.SortDir); err != nil {
		return nil, err
	}

	return res, nil
}

func (s *serviceImpl) all(ctx context.Context) (res []dto.TrainbookResponse, err error) {
	if s.cfg.Cache.TTL > 0 {
		if err = s.cache.Get(ctx, cacheGetAllTrainbook, &res); err == nil {
			log.Info().Str("cacheKey", cacheGetAllTrainbook).Msg("cache hit for trainbooks")

			return res, nil
		}
	}

	trainbooks, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trainbooks")

		return nil, err
	}

	res = dto.FromModels(trainbooks)

	if s.cfg.Cache.TTL > 0 {
		if err := s.cache.Save(ctx, cacheGetAllTrainbook, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trainbooks to cache")
		}
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TrainbookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trainbook.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trainbookID, ok := shared.ConvertStringToID(id)
	if !ok {
		return res, failure.MissingIdentifier(fmt.Sprintf("trainbook id %q is missing or invalid", id))
	}

	trainbook, err := s.repo.Get(ctx, trainbookID)
	if err != nil {
		log.Error().Err(err).Int("trainbook_id", trainbookID).Msg("failed to get trainbook")

		return res, err
	}

	res.FromModel(trainbook)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTrainbookRequest, id string) (res dto.TrainbookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trainbook.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trainbookID, ok := shared.ConvertStringToID(id)
	if !ok {
		return res, failure.MissingIdentifier(fmt.Sprintf("trainbook id %q is missing or invalid", id))
	}

	fields := shared.TransformFields(req)
	if len(fields) == 0 {
		return res, failure.BadRequestFromString("no fields to update")
	}

	trainbook, err := s.repo.Update(ctx, trainbookID, fields)
	if err != nil {
		log.Error().Err(err).Int("trainbook_id", trainbookID).Msg("failed to update trainbook")

		return res, err
	}

	if trainbook.ID == 0 {
		trainbook.ID = trainbookID
	}

	invalidate(ctx, s.cfg, s.cache)

	res.FromModel(trainbook)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trainbook.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	trainbookID, ok := shared.ConvertStringToID(id)
	if !ok {
		return failure.MissingIdentifier(fmt.Sprintf("trainbook id %q is missing or invalid", id))
	}

	if err = s.repo.Delete(ctx, trainbookID); err != nil {
		log.Error().Err(err).Int("trainbook_id", trainbookID).Msg("failed to delete trainbook")

		return err
	}

	invalidate(ctx, s.cfg, s.cache)

	return nil
}

// invalidate drops the cached booking list after a write.
func invalidate(ctx context.Context, cfg *config.Config, c cache.RedisCache) {
	if cfg.Cache.TTL <= 0 {
		return
	}

	if err := c.Delete(context.WithoutCancel(ctx), cacheGetAllTrainbook); err != nil && !errors.Is(err, cache.Nil) {
		log.Error().Err(err).Msg("failed to invalidate trainbook cache")
	}
}
