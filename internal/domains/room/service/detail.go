package service

import (
	"context"
	"fmt"
	"sync"

	"gymroom/infras/otel"
	"gymroom/internal/domains/room/model"
	"gymroom/internal/domains/room/repository"
	"gymroom/shared"
	"gymroom/shared/constant"
	"gymroom/shared/failure"
	"gymroom/shared/metrics"

	"github.com/rs/zerolog/log"
)

type State string

const (
	StateIdle    State = "Idle"
	StateLoading State = "Loading"
	StateReady   State = "Ready"
	StateFailed  State = "Failed"
)

// DetailSnapshot is a copy of the detail state. Room is set only when Ready,
// Err only when Failed.
type DetailSnapshot struct {
	State State
	Room  model.Room
	Err   error
}

type detailImpl struct {
	repo    repository.Room
	otel    otel.Otel
	metrics *metrics.Metrics

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	state  State
	room   model.Room
	err    error
}

func (d *detailImpl) Load(ctx context.Context, idParam string) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()
	defer func() { countFetch(d.metrics, screenDetail, err) }()

	id, ok := shared.ConvertStringToID(idParam)

	d.mu.Lock()
	d.seq++
	token := d.seq

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}

	if !ok {
		err = failure.MissingIdentifier(fmt.Sprintf("room id %q is missing or invalid", idParam))
		d.fail(err)
		d.mu.Unlock()

		return err
	}

	loadCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.state = StateLoading
	d.room = model.Room{}
	d.err = nil
	d.mu.Unlock()

	defer cancel()

	scope.SetAttribute("room.id", id)

	room, err := d.repo.Get(loadCtx, id)

	d.mu.Lock()
	defer d.mu.Unlock()

	if token != d.seq {
		log.Debug().Int("room_id", id).Msg("discarding superseded room load")

		return failure.ErrSuperseded
	}

	d.cancel = nil

	if err != nil {
		log.Error().Err(err).Int("room_id", id).Msg("failed to load room")
		d.fail(err)

		return err
	}

	// Room-by-id bodies may omit the id. An echoed id must match the route.
	if room.ID != 0 && room.ID != id {
		err = failure.MalformedPayload(fmt.Sprintf("room %d was requested but the backend returned room %d", id, room.ID))
		log.Error().Err(err).Int("room_id", id).Msg("room payload does not match the requested room")
		d.fail(err)

		return err
	}

	room.ID = id

	d.state = StateReady
	d.room = room

	return nil
}

func (d *detailImpl) fail(err error) {
	d.state = StateFailed
	d.room = model.Room{}
	d.err = err
}

func (d *detailImpl) Snapshot() DetailSnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()

	return DetailSnapshot{
		State: d.state,
		Room:  d.room,
		Err:   d.err,
	}
}

func (d *detailImpl) Ready() (model.Room, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != StateReady {
		return model.Room{}, false
	}

	return d.room, true
}
