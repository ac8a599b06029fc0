package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/aquago/aquago/internal/app/config"
	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/models"
)

const testSecretKey = "test-secret"

func sessionConfig() config.AppConfig {
	return config.AppConfig{TokenSecretKey: testSecretKey}
}

func signedToken(t *testing.T, userUID uuid.UUID, email string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserUID:   userUID.String(),
		UserEmail: email,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecretKey))
	assert.NoError(t, err)
	return token
}

func TestSessionService_Login(t *testing.T) {
	userUID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, userUID, "ramesh@example.com", expiresAt)

	t.Run("derives the session from token claims and persists it", func(t *testing.T) {
		gateway := &MockGatewayClient{}
		gateway.On("Login", mock.Anything, "ramesh@example.com", "secret").Return(token, nil)
		sessionRepo := &MockSessionRepository{}
		sessionRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		ss := NewSessionService(sessionConfig(), gateway, sessionRepo)

		session, err := ss.Login(context.Background(), "ramesh@example.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, userUID, session.UserUID)
		assert.Equal(t, "ramesh@example.com", session.Email)
		assert.Equal(t, token, session.Token)
		assert.Equal(t, expiresAt.Unix(), session.ExpiresAt.Unix())
		sessionRepo.AssertCalled(t, "Save", mock.Anything, session)
	})

	t.Run("bad credentials pass the gateway error through", func(t *testing.T) {
		gateway := &MockGatewayClient{}
		remoteErr := appErrors.NewWithCode(errors.New("invalid login"), "Invalid email or password", http.StatusUnauthorized)
		gateway.On("Login", mock.Anything, mock.Anything, mock.Anything).Return("", remoteErr)
		sessionRepo := &MockSessionRepository{}
		ss := NewSessionService(sessionConfig(), gateway, sessionRepo)

		_, err := ss.Login(context.Background(), "ramesh@example.com", "wrong")
		assert.Error(t, err)
		sessionRepo.AssertNotCalled(t, "Save")
	})

	t.Run("token signed with another key is rejected", func(t *testing.T) {
		claims := Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)},
			UserUID:          userUID.String(),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		assert.NoError(t, err)

		gateway := &MockGatewayClient{}
		gateway.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(forged, nil)
		ss := NewSessionService(sessionConfig(), gateway, &MockSessionRepository{})

		_, err = ss.Login(context.Background(), "ramesh@example.com", "secret")
		assert.Error(t, err)
	})
}

func TestSessionService_Register(t *testing.T) {
	userUID := uuid.New()
	token := signedToken(t, userUID, "new@example.com", time.Now().Add(time.Hour))

	gateway := &MockGatewayClient{}
	gateway.On("Register", mock.Anything, "New User", "new@example.com", "9876543210", "secret").Return(token, nil)
	sessionRepo := &MockSessionRepository{}
	sessionRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
	ss := NewSessionService(sessionConfig(), gateway, sessionRepo)

	session, err := ss.Register(context.Background(), "New User", "new@example.com", "9876543210", "secret")
	assert.NoError(t, err)
	assert.Equal(t, userUID, session.UserUID)
}

func TestSessionService_Restore(t *testing.T) {
	t.Run("valid persisted session", func(t *testing.T) {
		stored := &models.Session{
			UserUID:   uuid.New(),
			Email:     "ramesh@example.com",
			Token:     "opaque",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		sessionRepo := &MockSessionRepository{}
		sessionRepo.On("Load", mock.Anything).Return(stored, nil)
		ss := NewSessionService(sessionConfig(), &MockGatewayClient{}, sessionRepo)

		session, err := ss.Restore(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, stored, session)
	})

	t.Run("expired session forces re-login", func(t *testing.T) {
		stored := &models.Session{
			UserUID:   uuid.New(),
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		sessionRepo := &MockSessionRepository{}
		sessionRepo.On("Load", mock.Anything).Return(stored, nil)
		ss := NewSessionService(sessionConfig(), &MockGatewayClient{}, sessionRepo)

		_, err := ss.Restore(context.Background())
		assert.Error(t, err)
		appErr := appErrors.ResponseCodeError{}
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code())
	})

	t.Run("no persisted session", func(t *testing.T) {
		sessionRepo := &MockSessionRepository{}
		notFound := appErrors.NewWithCode(errors.New("no session"), "Not signed in", http.StatusUnauthorized)
		sessionRepo.On("Load", mock.Anything).Return(nil, notFound)
		ss := NewSessionService(sessionConfig(), &MockGatewayClient{}, sessionRepo)

		_, err := ss.Restore(context.Background())
		assert.Error(t, err)
	})
}

func TestSessionService_SignOut(t *testing.T) {
	sessionRepo := &MockSessionRepository{}
	sessionRepo.On("Clear", mock.Anything).Return(nil)
	ss := NewSessionService(sessionConfig(), &MockGatewayClient{}, sessionRepo)

	assert.NoError(t, ss.SignOut(context.Background()))
	sessionRepo.AssertExpectations(t)
}
