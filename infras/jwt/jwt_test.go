package jwt_test

import (
	"testing"

	"gymroom/config"
	"gymroom/infras/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(secret string, expireMin int) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "gymroom"
	cfg.JWT.AccessSecret = secret
	cfg.JWT.AccessExpireMin = expireMin

	return jwt.New(cfg)
}

func TestService_RoundTrip(t *testing.T) {
	svc := newService("secret", 5)

	token, err := svc.GenerateToken("user-1", "admin", "42")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.DriverID)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, claims.TokenID, claims.ID)
}

func TestService_ValidateToken(t *testing.T) {
	token, err := newService("secret", 5).GenerateToken("user-1", "user", "")
	require.NoError(t, err)

	expired, err := newService("secret", -5).GenerateToken("user-1", "user", "")
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{name: "wrong secret", token: token, secret: "other", wantErr: jwt.ErrInvalidToken},
		{name: "expired", token: expired, secret: "secret", wantErr: jwt.ErrExpiredToken},
		{name: "garbage", token: "not-a-token", secret: "secret", wantErr: jwt.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(tt.secret, 5).ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, jwt.ErrMissingToken)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.ErrorIs(t, err, jwt.ErrBearerPrefix)
}
