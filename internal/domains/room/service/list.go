package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"gymroom/infras/otel"
	"gymroom/internal/domains/room/model"
	"gymroom/internal/domains/room/repository"
	"gymroom/shared/constant"
	"gymroom/shared/failure"
	"gymroom/shared/metrics"

	"github.com/rs/zerolog/log"
)

// ErrListStale marks a delete that went through on the backend while the
// refetch after it failed. The list is empty in that case.
var ErrListStale = errors.New("room list is stale")

type listImpl struct {
	repo    repository.Room
	otel    otel.Otel
	metrics *metrics.Metrics

	mu    sync.Mutex
	seq   uint64
	rooms []model.Room
}

// Fetch replaces the list with the backend's rooms in backend order. Any
// failure empties the list.
func (l *listImpl) Fetch(ctx context.Context) (rooms []model.Room, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Fetch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { countFetch(l.metrics, screenList, err) }()

	l.mu.Lock()
	l.seq++
	token := l.seq
	l.mu.Unlock()

	fetched, err := l.repo.GetAll(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if token != l.seq {
		return nil, failure.ErrSuperseded
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to fetch rooms")

		l.rooms = []model.Room{}

		return []model.Room{}, err
	}

	l.rooms = fetched

	return copyRooms(l.rooms), nil
}

// Delete removes a room on the backend and refetches the whole list on
// success. A failed delete leaves the list as it was.
func (l *listImpl) Delete(ctx context.Context, id int) (err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("room.id", id)

	if id <= 0 {
		return failure.MissingIdentifier(fmt.Sprintf("room id %d is invalid", id)) //nolint:wrapcheck
	}

	if err = l.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int("room_id", id).Msg("failed to delete room")

		return err
	}

	log.Info().Int("room_id", id).Msg("room deleted")

	if _, err = l.Fetch(ctx); err != nil {
		return fmt.Errorf("room %d deleted: %w: %w", id, ErrListStale, err)
	}

	return nil
}

func (l *listImpl) Rooms() []model.Room {
	l.mu.Lock()
	defer l.mu.Unlock()

	return copyRooms(l.rooms)
}

func copyRooms(rooms []model.Room) []model.Room {
	return append(make([]model.Room, 0, len(rooms)), rooms...)
}
