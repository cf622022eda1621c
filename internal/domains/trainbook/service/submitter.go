package service

import (
	"context"
	"strconv"
	"sync"

	"gymroom/config"
	"gymroom/infras/otel"
	identityService "gymroom/internal/domains/identity/service"
	"gymroom/internal/domains/trainbook/model/dto"
	"gymroom/internal/domains/trainbook/repository"
	"gymroom/shared"
	"gymroom/shared/cache"
	"gymroom/shared/constant"
	"gymroom/shared/failure"
	"gymroom/shared/metrics"
	"gymroom/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheBookingGuard = "trainbook:in_flight"

type submitterImpl struct {
	repo     repository.Trainbook
	identity identityService.Identity
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	metrics  *metrics.Metrics

	// inFlight holds the guard keys of submissions running in this process.
	inFlight sync.Map
}

func NewSubmitter(
	repo repository.Trainbook,
	identity identityService.Identity,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	m *metrics.Metrics,
) Submitter {
	return &submitterImpl{
		repo:     repo,
		identity: identity,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		metrics:  m,
	}
}

func (s *submitterImpl) Submit(ctx context.Context, source RoomSource) (res dto.TrainbookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trainbook.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { s.count(err) }()

	room, ready := source.Ready()
	if !ready {
		return res, failure.RoomNotReady("room details are not loaded yet")
	}

	driverID, err := s.driverID(ctx)
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"room.id":   room.ID,
		"driver.id": driverID,
	})

	release, err := s.guard(ctx, shared.BuildCacheKey(cacheBookingGuard, strconv.Itoa(driverID), strconv.Itoa(room.ID)))
	if err != nil {
		return res, err
	}
	defer release()

	req := dto.NewCreateTrainbookRequest(room.ID, driverID)
	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	trainbook, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Error().Err(err).Int("room_id", room.ID).Int("driver_id", driverID).Msg("booking rejected")

		return res, err
	}

	invalidate(ctx, s.cfg, s.cache)

	log.Info().Int("room_id", room.ID).Int("driver_id", driverID).Msg("room booked")

	res.FromModel(trainbook)

	return res, nil
}

func (s *submitterImpl) driverID(ctx context.Context) (int, error) {
	raw, found, err := s.identity.Lookup(ctx, constant.IdentityKeyDriverID)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve driver identity")

		return 0, failure.NoDriverIdentity("driver identity could not be resolved")
	}

	driverID, ok := shared.ConvertStringToID(raw)
	if !found || !ok {
		return 0, failure.NoDriverIdentity("no driver is associated with this session")
	}

	return driverID, nil
}

// guard rejects a second submission for the same driver and room while one
// is running, both within this process and across instances sharing Redis.
func (s *submitterImpl) guard(ctx context.Context, key string) (func(), error) {
	if _, busy := s.inFlight.LoadOrStore(key, struct{}{}); busy {
		return nil, failure.BookingInFlight("a booking for this room is already being submitted")
	}

	acquired, err := s.cache.Acquire(ctx, key, s.cfg.Backend.BookingGuardSeconds)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("booking guard unavailable, relying on local guard")

		return func() { s.inFlight.Delete(key) }, nil
	}

	if !acquired {
		s.inFlight.Delete(key)

		return nil, failure.BookingInFlight("a booking for this room is already being submitted")
	}

	return func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to release booking guard")
		}

		s.inFlight.Delete(key)
	}, nil
}

func (s *submitterImpl) count(err error) {
	if s.metrics == nil {
		return
	}

	s.metrics.BookingsTotal.WithLabelValues(metrics.Outcome(string(failure.KindOf(err)), err)).Inc()
}
