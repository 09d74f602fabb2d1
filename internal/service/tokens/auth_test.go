package tokens

import (
	"testing"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserJWT(t *testing.T) {
	key := []byte("secret")

	token, err := GenerateUserJWT(12, domain.RoleAdmin, time.Hour, key)
	require.NoError(t, err)

	claims, err := ValidateUserJWT(token, key)
	require.NoError(t, err)
	assert.Equal(t, int64(12), claims.ID)
	assert.Equal(t, domain.Actor{UserID: 12, Role: domain.RoleAdmin}, claims.Actor())

	_, err = ValidateUserJWT(token, []byte("other"))
	require.Error(t, err)

	expired, err := GenerateUserJWT(12, domain.RoleStaff, -time.Minute, key)
	require.NoError(t, err)
	_, err = ValidateUserJWT(expired, key)
	require.ErrorIs(t, err, ErrTokenExpired)

	_, err = ValidateUserJWT("garbage", key)
	require.Error(t, err)
}
