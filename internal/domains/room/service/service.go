package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"errors"

	"gymroom/infras/otel"
	"gymroom/internal/domains/room/model"
	"gymroom/internal/domains/room/repository"
	"gymroom/shared/failure"
	"gymroom/shared/metrics"
)

const (
	screenDetail = "detail"
	screenList   = "list"
)

// Room hands out screen controllers. Each controller keeps its own state,
// so one is created per screen instance.
type Room interface {
	NewDetail() Detail
	NewList() List
}

type Detail interface {
	// Load fetches the room for idParam and replaces the displayed state.
	// A load superseded by a newer one returns failure.ErrSuperseded and
	// leaves the state alone.
	Load(ctx context.Context, idParam string) error
	Snapshot() DetailSnapshot
	// Ready returns the loaded room when the detail is in the Ready state.
	Ready() (model.Room, bool)
}

type List interface {
	Fetch(ctx context.Context) ([]model.Room, error)
	Delete(ctx context.Context, id int) error
	Rooms() []model.Room
}

type serviceImpl struct {
	repo    repository.Room
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(repo repository.Room, otel otel.Otel, m *metrics.Metrics) Room {
	return &serviceImpl{
		repo:    repo,
		otel:    otel,
		metrics: m,
	}
}

func (s *serviceImpl) NewDetail() Detail {
	return &detailImpl{
		repo:    s.repo,
		otel:    s.otel,
		metrics: s.metrics,
		state:   StateIdle,
	}
}

func (s *serviceImpl) NewList() List {
	return &listImpl{
		repo:    s.repo,
		otel:    s.otel,
		metrics: s.metrics,
		rooms:   []model.Room{},
	}
}

func countFetch(m *metrics.Metrics, screen string, err error) {
	if m == nil {
		return
	}

	outcome := metrics.Outcome(string(failure.KindOf(err)), err)
	if errors.Is(err, failure.ErrSuperseded) {
		outcome = "superseded"
	}

	m.FetchesTotal.WithLabelValues(screen, outcome).Inc()
}
