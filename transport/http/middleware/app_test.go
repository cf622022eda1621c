package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymroom/config"
	otelMocks "gymroom/infras/otel/mocks"
	"gymroom/shared/cache"
	"gymroom/shared/cache/mocks"
	"gymroom/shared/constant"
	"gymroom/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func ok(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
}

func newLimited(t *testing.T, enable bool) (http.Handler, *mocks.MockRedisCache) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	redisCache := mocks.NewMockRedisCache(gomock.NewController(t))
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redisCache)

	return app.RateLimit()(http.HandlerFunc(ok)), redisCache
}

func TestRateLimit(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		handler, _ := newLimited(t, false)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("first request", func(t *testing.T) {
		handler, redisCache := newLimited(t, true)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
		redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
	})

	t.Run("over the limit", func(t *testing.T) {
		handler, redisCache := newLimited(t, true)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*int) = 2

				return nil
			})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("redis down lets requests through", func(t *testing.T) {
		handler, redisCache := newLimited(t, true)

		redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRequestID(t *testing.T) {
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen, _ = request.Context().Value(constant.ContextKeyRequestID).(string)
		writer.WriteHeader(http.StatusOK)
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))
		assert.Equal(t, rec.Header().Get(constant.RequestHeaderRequestID), seen)
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constant.RequestHeaderRequestID, "req-1")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", rec.Header().Get(constant.RequestHeaderRequestID))
		assert.Equal(t, "req-1", seen)
	})
}
