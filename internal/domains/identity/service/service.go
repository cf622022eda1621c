package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"gymroom/config"
	"gymroom/infras/otel"
	"gymroom/shared"
	"gymroom/shared/cache"
	"gymroom/shared/constant"
	"gymroom/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheIdentity = "identity"

// Identity is the per-session key/value store the screens read the current
// driver from. Values from the session token take precedence over stored ones.
type Identity interface {
	Lookup(ctx context.Context, key string) (string, bool, error)
	Remember(ctx context.Context, key, value string) error
}

type serviceImpl struct {
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Identity {
	return &serviceImpl{
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Lookup(ctx context.Context, key string) (value string, found bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".identity.Lookup")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if key == constant.IdentityKeyDriverID {
		if driverID, _ := ctx.Value(constant.ContextKeyDriverID).(string); driverID != constant.Empty {
			return driverID, true, nil
		}
	}

	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	if tokenID == constant.Empty {
		return constant.Empty, false, nil
	}

	if err = s.cache.Get(ctx, shared.BuildCacheKey(cacheIdentity, tokenID, key), &value); err != nil {
		if errors.Is(err, cache.Nil) {
			return constant.Empty, false, nil
		}

		log.Error().Err(err).Str("key", key).Msg("failed to read identity")

		return constant.Empty, false, fmt.Errorf("failed to read identity %s: %w", key, err)
	}

	return value, value != constant.Empty, nil
}

// Remember stores value for the current session. It lives as long as an access token.
func (s *serviceImpl) Remember(ctx context.Context, key, value string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".identity.Remember")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	if tokenID == constant.Empty {
		return failure.Unauthorized("a session is required to remember identity values") //nolint:wrapcheck
	}

	ttl := s.cfg.JWT.AccessExpireMin * 60

	if err = s.cache.Save(ctx, shared.BuildCacheKey(cacheIdentity, tokenID, key), value, ttl); err != nil {
		return fmt.Errorf("failed to remember identity %s: %w", key, err)
	}

	log.Info().Str("key", key).Msg("identity remembered")

	return nil
}
