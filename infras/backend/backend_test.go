package backend_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymroom/config"
	"gymroom/infras/backend"
	"gymroom/infras/otel/mocks"
	"gymroom/shared/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) backend.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL + "/"

	return backend.New(cfg, mocks.NewOtel(), metrics.New())
}

func TestClient_Do(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]any

	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &gotBody)
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})

	res, err := client.Do(context.Background(), http.MethodPost, "/trainbook", map[string]any{"RoomID": 5})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/trainbook", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.InDelta(t, 5, gotBody["RoomID"], 0)
	assert.True(t, res.Is(http.StatusOK, http.StatusCreated))
	assert.JSONEq(t, `{"message":"ok"}`, string(res.Body))
}

func TestClient_Do_NonSuccessIsNotError(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"full"}`))
	})

	res, err := client.Do(context.Background(), http.MethodGet, "/room/1", nil)
	require.NoError(t, err)

	assert.False(t, res.Is(http.StatusOK))
	assert.Equal(t, "full", res.ErrorMessage())
}

func TestClient_Do_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	cfg := &config.Config{}
	cfg.Backend.BaseURL = server.URL

	_, err := backend.New(cfg, mocks.NewOtel(), nil).Do(context.Background(), http.MethodGet, "/room", nil)
	assert.Error(t, err)
}

func TestClient_Do_CancelledContext(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Do(ctx, http.MethodGet, "/room", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResponse_ErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{name: "error field", body: `{"error":"room is full"}`, expected: "room is full"},
		{name: "no error field", body: `{"message":"x"}`, expected: ""},
		{name: "not json", body: `oops`, expected: ""},
		{name: "array", body: `[1,2]`, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &backend.Response{StatusCode: http.StatusBadRequest, Body: []byte(tt.body)}
			assert.Equal(t, tt.expected, res.ErrorMessage())
		})
	}
}
