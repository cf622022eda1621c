package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gymroom/infras/otel/mocks"
	roomMocks "gymroom/internal/domains/room/mocks"
	"gymroom/internal/domains/room/model"
	"gymroom/internal/domains/room/service"
	"gymroom/shared/failure"
	"gymroom/shared/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*roomMocks.MockRoom, service.Room, *metrics.Metrics) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)
	m := metrics.New()

	return repo, service.New(repo, mocks.NewOtel(), m), m
}

func TestDetail_Load(t *testing.T) {
	spin := model.Room{ID: 5, Name: "Spin", Capacity: 10, CurrentBookings: 10}

	tests := []struct {
		name      string
		idParam   string
		setupMock func(repo *roomMocks.MockRoom)
		wantState service.State
		wantKind  failure.Kind
	}{
		{
			name:    "ready",
			idParam: "5",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), 5).Return(spin, nil)
			},
			wantState: service.StateReady,
		},
		{
			name:      "empty id makes no call",
			idParam:   "",
			setupMock: func(*roomMocks.MockRoom) {},
			wantState: service.StateFailed,
			wantKind:  failure.KindMissingIdentifier,
		},
		{
			name:      "non numeric id makes no call",
			idParam:   "abc",
			setupMock: func(*roomMocks.MockRoom) {},
			wantState: service.StateFailed,
			wantKind:  failure.KindMissingIdentifier,
		},
		{
			name:      "zero id makes no call",
			idParam:   "0",
			setupMock: func(*roomMocks.MockRoom) {},
			wantState: service.StateFailed,
			wantKind:  failure.KindMissingIdentifier,
		},
		{
			name:    "backend failure",
			idParam: "5",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), 5).Return(model.Room{}, failure.FetchError("failed to load room"))
			},
			wantState: service.StateFailed,
			wantKind:  failure.KindFetchError,
		},
		{
			name:    "mismatched room id",
			idParam: "5",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), 5).Return(model.Room{ID: 9, Name: "Box"}, nil)
			},
			wantState: service.StateFailed,
			wantKind:  failure.KindMalformedPayload,
		},
		{
			name:    "malformed payload",
			idParam: "5",
			setupMock: func(repo *roomMocks.MockRoom) {
				repo.EXPECT().Get(gomock.Any(), 5).Return(model.Room{}, failure.MalformedPayload("room payload must be an object"))
			},
			wantState: service.StateFailed,
			wantKind:  failure.KindMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc, _ := newService(t)
			tt.setupMock(repo)

			detail := svc.NewDetail()
			assert.Equal(t, service.StateIdle, detail.Snapshot().State)

			err := detail.Load(context.Background(), tt.idParam)
			snapshot := detail.Snapshot()

			assert.Equal(t, tt.wantState, snapshot.State)

			if tt.wantKind != failure.KindGeneric {
				assert.True(t, failure.Is(err, tt.wantKind))
				assert.True(t, failure.Is(snapshot.Err, tt.wantKind))

				_, ready := detail.Ready()
				assert.False(t, ready)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, spin, snapshot.Room)
			assert.Equal(t, model.StatusFull, snapshot.Room.Status())
		})
	}
}

func TestDetail_Load_StaleResultDiscarded(t *testing.T) {
	repo, svc, m := newService(t)
	detail := svc.NewDetail()

	started := make(chan struct{})

	repo.EXPECT().Get(gomock.Any(), 1).DoAndReturn(func(ctx context.Context, _ int) (model.Room, error) {
		close(started)
		<-ctx.Done()

		return model.Room{ID: 1, Name: "Old"}, nil
	})
	repo.EXPECT().Get(gomock.Any(), 2).Return(model.Room{ID: 2, Name: "New"}, nil)

	var (
		wg       sync.WaitGroup
		firstErr error
	)

	wg.Add(1)

	go func() {
		defer wg.Done()

		firstErr = detail.Load(context.Background(), "1")
	}()

	<-started

	require.NoError(t, detail.Load(context.Background(), "2"))

	wg.Wait()

	assert.ErrorIs(t, firstErr, failure.ErrSuperseded)

	room, ready := detail.Ready()
	require.True(t, ready)
	assert.Equal(t, "New", room.Name)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("detail", "superseded")), 0)
}

func TestDetail_Load_InvalidIDCancelsPending(t *testing.T) {
	repo, svc, _ := newService(t)
	detail := svc.NewDetail()

	started := make(chan struct{})

	repo.EXPECT().Get(gomock.Any(), 1).DoAndReturn(func(ctx context.Context, _ int) (model.Room, error) {
		close(started)
		<-ctx.Done()

		return model.Room{}, ctx.Err()
	})

	done := make(chan error, 1)

	go func() { done <- detail.Load(context.Background(), "1") }()

	<-started

	err := detail.Load(context.Background(), "")
	assert.True(t, failure.Is(err, failure.KindMissingIdentifier))
	assert.ErrorIs(t, <-done, failure.ErrSuperseded)
	assert.Equal(t, service.StateFailed, detail.Snapshot().State)
}

func TestList_Fetch(t *testing.T) {
	repo, svc, m := newService(t)
	list := svc.NewList()

	rooms := []model.Room{
		{ID: 5, Capacity: 10, CurrentBookings: 10},
		{ID: 6, Capacity: 8},
		{ID: 7, Capacity: 12, CurrentBookings: 4},
	}

	repo.EXPECT().GetAll(gomock.Any()).Return(rooms, nil)

	got, err := list.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rooms, got)
	assert.Equal(t, rooms, list.Rooms())

	repo.EXPECT().GetAll(gomock.Any()).Return(nil, failure.MalformedPayload("room list must be an array, got object"))

	got, err = list.Fetch(context.Background())
	assert.True(t, failure.Is(err, failure.KindMalformedPayload))
	assert.Empty(t, got)
	assert.Empty(t, list.Rooms())

	assert.InDelta(t, 1, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("list", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.FetchesTotal.WithLabelValues("list", "MalformedPayload")), 0)
}

func TestList_Fetch_LatestWins(t *testing.T) {
	repo, svc, _ := newService(t)
	list := svc.NewList()

	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		repo.EXPECT().GetAll(gomock.Any()).DoAndReturn(func(context.Context) ([]model.Room, error) {
			close(started)
			<-release

			return []model.Room{{ID: 1}}, nil
		}),
		repo.EXPECT().GetAll(gomock.Any()).Return([]model.Room{{ID: 2}}, nil),
	)

	done := make(chan error, 1)

	go func() {
		_, err := list.Fetch(context.Background())
		done <- err
	}()

	<-started

	_, err := list.Fetch(context.Background())
	require.NoError(t, err)

	close(release)

	assert.ErrorIs(t, <-done, failure.ErrSuperseded)
	assert.Equal(t, []model.Room{{ID: 2}}, list.Rooms())
}

func TestList_Delete(t *testing.T) {
	t.Run("success refetches", func(t *testing.T) {
		repo, svc, _ := newService(t)
		list := svc.NewList()

		gomock.InOrder(
			repo.EXPECT().Delete(gomock.Any(), 6).Return(nil),
			repo.EXPECT().GetAll(gomock.Any()).Return([]model.Room{{ID: 5}, {ID: 7}}, nil),
		)

		require.NoError(t, list.Delete(context.Background(), 6))
		assert.Equal(t, []model.Room{{ID: 5}, {ID: 7}}, list.Rooms())
	})

	t.Run("failure leaves list untouched", func(t *testing.T) {
		repo, svc, _ := newService(t)
		list := svc.NewList()

		repo.EXPECT().GetAll(gomock.Any()).Return([]model.Room{{ID: 5}, {ID: 6}}, nil)
		_, err := list.Fetch(context.Background())
		require.NoError(t, err)

		repo.EXPECT().Delete(gomock.Any(), 6).Return(failure.FetchError("failed to delete room 6"))

		err = list.Delete(context.Background(), 6)
		assert.True(t, failure.Is(err, failure.KindFetchError))
		assert.Equal(t, []model.Room{{ID: 5}, {ID: 6}}, list.Rooms())
	})

	t.Run("refetch failure is reported", func(t *testing.T) {
		repo, svc, _ := newService(t)
		list := svc.NewList()

		repo.EXPECT().Delete(gomock.Any(), 6).Return(nil)
		repo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("boom"))

		err := list.Delete(context.Background(), 6)
		assert.ErrorIs(t, err, service.ErrListStale)
		assert.Empty(t, list.Rooms())
	})

	t.Run("invalid id makes no call", func(t *testing.T) {
		_, svc, _ := newService(t)

		err := svc.NewList().Delete(context.Background(), 0)
		assert.True(t, failure.Is(err, failure.KindMissingIdentifier))
	})
}
