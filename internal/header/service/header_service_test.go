package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/storefront-bff/internal/session"
	sessionMocks "github.com/ridloal/storefront-bff/internal/session/mocks"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, email string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "user123",
		"email":   email,
		"exp":     time.Now().Add(expiresIn).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestHeaderService_State(t *testing.T) {
	ctx := context.TODO()
	sessionID := "sess-1"

	t.Run("No session id renders anonymous", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		svc := NewHeaderService(mockStore, testSecret)

		state, err := svc.State(ctx, "")

		assert.NoError(t, err)
		assert.False(t, state.Authenticated)
		mockStore.AssertNotCalled(t, "Get")
	})

	t.Run("Missing token renders anonymous", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		mockStore.On("Get", ctx, sessionID, session.KeyToken).Return("", nil).Once()
		svc := NewHeaderService(mockStore, testSecret)

		state, err := svc.State(ctx, sessionID)

		assert.NoError(t, err)
		assert.False(t, state.Authenticated)
		mockStore.AssertExpectations(t)
	})

	t.Run("Valid token with stored username", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		mockStore.On("Get", ctx, sessionID, session.KeyToken).Return(signedToken(t, "budi@example.com", time.Hour), nil).Once()
		mockStore.On("Get", ctx, sessionID, session.KeyUsername).Return("budi", nil).Once()
		svc := NewHeaderService(mockStore, testSecret)

		state, err := svc.State(ctx, sessionID)

		assert.NoError(t, err)
		assert.True(t, state.Authenticated)
		assert.Equal(t, "budi", state.Username)
		assert.Equal(t, "B", state.AvatarInitial)
		mockStore.AssertExpectations(t)
	})

	t.Run("Username falls back to email local-part", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		mockStore.On("Get", ctx, sessionID, session.KeyToken).Return(signedToken(t, "sari@example.com", time.Hour), nil).Once()
		mockStore.On("Get", ctx, sessionID, session.KeyUsername).Return("", nil).Once()
		svc := NewHeaderService(mockStore, testSecret)

		state, err := svc.State(ctx, sessionID)

		assert.NoError(t, err)
		assert.True(t, state.Authenticated)
		assert.Equal(t, "sari", state.Username)
		assert.Equal(t, "S", state.AvatarInitial)
	})

	t.Run("Expired token renders anonymous", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		mockStore.On("Get", ctx, sessionID, session.KeyToken).Return(signedToken(t, "budi@example.com", -time.Hour), nil).Once()
		svc := NewHeaderService(mockStore, testSecret)

		state, err := svc.State(ctx, sessionID)

		assert.NoError(t, err)
		assert.False(t, state.Authenticated)
		mockStore.AssertExpectations(t)
	})

	t.Run("Token signed with wrong secret renders anonymous", func(t *testing.T) {
		claims := jwt.MapClaims{"email": "x@example.com", "exp": time.Now().Add(time.Hour).Unix()}
		wrong, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		mockStore := new(sessionMocks.MockStore)
		mockStore.On("Get", ctx, sessionID, session.KeyToken).Return(wrong, nil).Once()
		svc := NewHeaderService(mockStore, testSecret)

		state, err := svc.State(ctx, sessionID)

		assert.NoError(t, err)
		assert.False(t, state.Authenticated)
	})

	t.Run("Session store failure is an error", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		mockStore.On("Get", ctx, sessionID, session.KeyToken).Return("", errors.New("redis down")).Once()
		svc := NewHeaderService(mockStore, testSecret)

		state, err := svc.State(ctx, sessionID)

		assert.Error(t, err)
		assert.Nil(t, state)
	})
}

func TestHeaderService_Logout(t *testing.T) {
	ctx := context.TODO()

	t.Run("Clears the session", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		mockStore.On("Clear", ctx, "sess-1").Return(nil).Once()
		svc := NewHeaderService(mockStore, testSecret)

		assert.NoError(t, svc.Logout(ctx, "sess-1"))
		mockStore.AssertExpectations(t)
	})

	t.Run("No session id is a no-op", func(t *testing.T) {
		mockStore := new(sessionMocks.MockStore)
		svc := NewHeaderService(mockStore, testSecret)

		assert.NoError(t, svc.Logout(ctx, ""))
		mockStore.AssertNotCalled(t, "Clear")
	})
}
