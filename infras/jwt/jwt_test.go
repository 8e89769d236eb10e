package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/config"
	"hotel/infras/jwt"
	"hotel/shared/constant"
)

func newJWT() jwt.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return jwt.New(cfg)
}

func TestValidateToken(t *testing.T) {
	svc := newJWT()

	token, err := svc.Issue("user-1", "guest@example.com", constant.RoleCustomer, jwt.AccessToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, constant.RoleCustomer, claims.Role)
}

func TestValidateToken_Rejects(t *testing.T) {
	svc := newJWT()

	refresh, err := svc.Issue("user-1", "guest@example.com", constant.RoleCustomer, jwt.RefreshToken)
	require.NoError(t, err)

	unknownRole, err := svc.Issue("user-1", "guest@example.com", "superuser", jwt.AccessToken)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"garbage", "not-a-token", jwt.ErrInvalidToken},
		{"wrong secret", refresh, jwt.ErrInvalidToken},
		{"unknown role", unknownRole, jwt.ErrInvalidClaim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token, jwt.AccessToken)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)
}
