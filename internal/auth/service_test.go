package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piccante-system/config"
)

func testService() *Service {
	return NewService(config.AuthConfig{
		AdminPassword: "geheim",
		JwtSecret:     "test-secret",
		TokenTTLHours: 1,
	}, nil)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	s := testService()

	token, exp, err := s.Login(context.Background(), "127.0.0.1", "geheim")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := s.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	s := testService()

	_, _, err := s.Login(context.Background(), "127.0.0.1", "falsch")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginEmptyConfiguredPasswordNeverSucceeds(t *testing.T) {
	s := NewService(config.AuthConfig{JwtSecret: "x", TokenTTLHours: 1}, nil)

	_, _, err := s.Login(context.Background(), "127.0.0.1", "")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	token, _, err := GenerateToken([]byte("other-secret"), time.Hour)
	require.NoError(t, err)

	_, err = testService().Verify(token)

	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, _, err := GenerateToken([]byte("test-secret"), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken([]byte("test-secret"), token)

	assert.Error(t, err)
}
