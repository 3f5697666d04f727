package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "12345678901234567890123456789012"

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	token, payload, err := maker.CreateToken("admin", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, payload.ID)

	verified, err := maker.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "admin", verified.Subject)
	require.Equal(t, payload.ID, verified.ID)
	require.WithinDuration(t, time.Now().Add(time.Minute), verified.ExpiresAt.Time, time.Second)
}

func TestExpiredJWT(t *testing.T) {
	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	token, _, err := maker.CreateToken("admin", -time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestInvalidJWTAlgNone(t *testing.T) {
	payload, err := NewPayload("admin", time.Minute)
	require.NoError(t, err)

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodNone, payload)
	token, err := jwtToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	maker, err := NewJWTMaker(testSecretKey)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestShortSecretKeyRejected(t *testing.T) {
	_, err := NewJWTMaker("too-short")
	require.Error(t, err)
}
