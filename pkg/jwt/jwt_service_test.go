package jwt

import (
	"Recipe-Sharing-API/domain"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("secret")

	token, err := svc.GenerateTokenUser("user-1")
	require.NoError(t, err)

	id, err := svc.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := NewJWTService("secret").GenerateTokenUser("user-1")
	require.NoError(t, err)

	_, err = NewJWTService("other").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	claims := jwtUserClaim{
		"user-1",
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			Issuer:    "RECIPE-SHARE",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTService("secret").GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := NewJWTService("secret").GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
