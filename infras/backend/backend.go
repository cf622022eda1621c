package backend

//go:generate go run go.uber.org/mock/mockgen -source=./backend.go -destination=./mocks/backend_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gymroom/config"
	"gymroom/infras/otel"
	"gymroom/shared/constant"
	"gymroom/shared/metrics"

	"github.com/rs/zerolog/log"
)

// Response is a raw backend reply. Non-success statuses are not errors at this level.
type Response struct {
	StatusCode int
	Body       []byte
}

// Is reports whether the status is one of codes.
func (r *Response) Is(codes ...int) bool {
	for _, code := range codes {
		if r.StatusCode == code {
			return true
		}
	}

	return false
}

// ErrorMessage returns the "error" field of a JSON body, empty when absent.
func (r *Response) ErrorMessage() string {
	var body struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(r.Body, &body); err != nil {
		return constant.Empty
	}

	return body.Error
}

type Client interface {
	// Do sends one request. It fails only on encoding or transport errors.
	Do(ctx context.Context, method, path string, body any) (*Response, error)
}

type clientImpl struct {
	baseURL string
	http    *http.Client
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(cfg *config.Config, otel otel.Otel, m *metrics.Metrics) Client {
	httpClient := &http.Client{}
	if cfg.Backend.TimeoutSeconds > 0 {
		httpClient.Timeout = time.Duration(cfg.Backend.TimeoutSeconds) * time.Second
	}

	return &clientImpl{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		http:    httpClient,
		otel:    otel,
		metrics: m,
	}
}

func (c *clientImpl) Do(ctx context.Context, method, path string, body any) (res *Response, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".backend."+method)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	url := c.baseURL + path
	scope.SetAttributes(map[string]any{
		constant.OtelURLAttributeKey:    url,
		constant.OtelMethodAttributeKey: method,
	})

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode backend request: %w", err)
		}

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build backend request: %w", err)
	}

	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	request.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	start := time.Now()

	response, err := c.http.Do(request)
	if err != nil {
		c.observe(method, "transport_error", start)
		log.Error().Err(err).Str("method", method).Str("url", url).Msg("backend request failed")

		return nil, fmt.Errorf("backend %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		c.observe(method, "read_error", start)

		return nil, fmt.Errorf("failed to read backend body: %w", err)
	}

	c.observe(method, strconv.Itoa(response.StatusCode), start)
	scope.SetAttribute(constant.OtelStatusAttributeKey, response.StatusCode)

	log.Debug().Str("method", method).Str("url", url).Int("status", response.StatusCode).Msg("backend responded")

	return &Response{StatusCode: response.StatusCode, Body: raw}, nil
}

func (c *clientImpl) observe(method, status string, start time.Time) {
	if c.metrics == nil {
		return
	}

	c.metrics.BackendDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
}
