package service_test

import (
	"context"
	"errors"
	"testing"

	"gymroom/config"
	"gymroom/infras/otel/mocks"
	roomModel "gymroom/internal/domains/room/model"
	"gymroom/internal/domains/trainbook/model"
	"gymroom/internal/domains/trainbook/model/dto"
	trainbookMocks "gymroom/internal/domains/trainbook/mocks"
	"gymroom/internal/domains/trainbook/service"
	cacheMocks "gymroom/shared/cache/mocks"
	gDto "gymroom/shared/dto"
	"gymroom/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTrainbookService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := trainbookMocks.NewMockTrainbook(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	spin := roomModel.Room{ID: 5, Name: "Spin"}

	tests := []struct {
		name      string
		setupMock func()
		q         gDto.QueryParams
		want      []dto.TrainbookResponse
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "trainbook:get_all", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]dto.TrainbookResponse) = []dto.TrainbookResponse{{ID: 1}}

						return nil
					})
			},
			want: []dto.TrainbookResponse{{ID: 1}},
		},
		{
			name: "cache miss loads and saves",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "trainbook:get_all", gomock.Any()).Return(errors.New("miss"))
				mockRepo.EXPECT().GetAll(gomock.Any()).
					Return([]model.Trainbook{{ID: 2, RoomID: 5, DriverID: 42, Status: "Confirmed", Room: &spin}}, nil)
				mockCache.EXPECT().Save(gomock.Any(), "trainbook:get_all", gomock.Any(), 3600).Return(nil)
			},
			want: []dto.TrainbookResponse{{ID: 2, RoomID: 5, DriverID: 42, Status: "Confirmed", RoomName: "Spin"}},
		},
		{
			name: "sorted descending",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "trainbook:get_all", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*[]dto.TrainbookResponse) = []dto.TrainbookResponse{{ID: 1}, {ID: 3}, {ID: 2}}

						return nil
					})
			},
			q:    gDto.QueryParams{SortBy: "id", SortDir: gDto.SortDirDesc},
			want: []dto.TrainbookResponse{{ID: 3}, {ID: 2}, {ID: 1}},
		},
		{
			name: "unknown sort field",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "trainbook:get_all", gomock.Any()).Return(nil)
			},
			q:       gDto.QueryParams{SortBy: "password"},
			wantErr: true,
		},
		{
			name: "backend failure",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "trainbook:get_all", gomock.Any()).Return(errors.New("miss"))
				mockRepo.EXPECT().GetAll(gomock.Any()).Return(nil, failure.FetchError("failed to load bookings"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.GetAll(context.Background(), tt.q)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrainbookService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := trainbookMocks.NewMockTrainbook(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().Get(gomock.Any(), 3).Return(model.Trainbook{ID: 3, RoomID: 5}, nil)

	res, err := svc.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ID)

	_, err = svc.Get(context.Background(), "x")
	assert.True(t, failure.Is(err, failure.KindMissingIdentifier))
}

func TestTrainbookService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := trainbookMocks.NewMockTrainbook(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockRepo.EXPECT().Update(gomock.Any(), 3, map[string]any{"Status": "completed"}).
		Return(model.Trainbook{RoomID: 5, Status: "completed"}, nil)
	mockCache.EXPECT().Delete(gomock.Any(), "trainbook:get_all").Return(nil)

	res, err := svc.Update(context.Background(), dto.UpdateTrainbookRequest{Status: "completed"}, "3")
	require.NoError(t, err)
	assert.Equal(t, 3, res.ID)
	assert.Equal(t, "completed", res.Status)

	_, err = svc.Update(context.Background(), dto.UpdateTrainbookRequest{}, "3")
	assert.Equal(t, 400, failure.GetCode(err))

	_, err = svc.Update(context.Background(), dto.UpdateTrainbookRequest{Status: "completed"}, "")
	assert.True(t, failure.Is(err, failure.KindMissingIdentifier))
}

func TestTrainbookService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := trainbookMocks.NewMockTrainbook(ctrl)
	svc := service.New(mockRepo, &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

	mockRepo.EXPECT().Delete(gomock.Any(), 3).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), "3"))

	mockRepo.EXPECT().Delete(gomock.Any(), 4).Return(failure.BackendRejected(404, "not found"))
	assert.True(t, failure.Is(svc.Delete(context.Background(), "4"), failure.KindBackendRejected))
}
