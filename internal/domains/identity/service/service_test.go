package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gymroom/config"
	"gymroom/infras/otel/mocks"
	"gymroom/internal/domains/identity/service"
	"gymroom/shared/cache"
	cacheMocks "gymroom/shared/cache/mocks"
	"gymroom/shared/constant"
	"gymroom/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIdentityService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	svc := service.New(&config.Config{}, mockCache, mocks.NewOtel())

	session := context.WithValue(context.Background(), constant.ContextKeyTokenID, "tok-1")

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func()
		want      string
		wantFound bool
		wantErr   bool
	}{
		{
			name:      "driver from session claims",
			ctx:       context.WithValue(session, constant.ContextKeyDriverID, "42"),
			setupMock: func() {},
			want:      "42",
			wantFound: true,
		},
		{
			name: "driver from store",
			ctx:  session,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "identity:tok-1:driver_id", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						*value.(*string) = "7"

						return nil
					})
			},
			want:      "7",
			wantFound: true,
		},
		{
			name: "not stored",
			ctx:  session,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "identity:tok-1:driver_id", gomock.Any()).
					Return(fmt.Errorf("failed to get cache value: %w", cache.Nil))
			},
		},
		{
			name:      "no session",
			ctx:       context.Background(),
			setupMock: func() {},
		},
		{
			name: "store unavailable",
			ctx:  session,
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "identity:tok-1:driver_id", gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, found, err := svc.Lookup(tt.ctx, constant.IdentityKeyDriverID)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestIdentityService_Remember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.JWT.AccessExpireMin = 60

	svc := service.New(cfg, mockCache, mocks.NewOtel())

	err := svc.Remember(context.Background(), constant.IdentityKeyDriverID, "42")
	assert.Equal(t, failure.KindGeneric, failure.KindOf(err))
	assert.Equal(t, 401, failure.GetCode(err))

	session := context.WithValue(context.Background(), constant.ContextKeyTokenID, "tok-1")

	mockCache.EXPECT().Save(gomock.Any(), "identity:tok-1:driver_id", "42", 3600).Return(nil)
	require.NoError(t, svc.Remember(session, constant.IdentityKeyDriverID, "42"))

	mockCache.EXPECT().Save(gomock.Any(), "identity:tok-1:driver_id", "42", 3600).Return(errors.New("down"))
	assert.Error(t, svc.Remember(session, constant.IdentityKeyDriverID, "42"))
}
