package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/aquago/aquago/internal/app/config"
	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/models"
	"github.com/aquago/aquago/internal/app/repository"
	"github.com/aquago/aquago/internal/app/service/clients"
)

// SessionService owns the sign-in lifecycle: it exchanges credentials for a
// gateway token, derives the session from the token's claims, persists it in
// the local store, and restores or tears it down. The session is passed
// explicitly to every flow that needs it; there is no ambient current-user
// state.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, name, email, phone, password string) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
	SignOut(ctx context.Context) error
}

type Claims struct {
	jwt.RegisteredClaims
	UserUID   string
	UserEmail string
}

type SessionServiceImpl struct {
	gateway     clients.GatewayClient
	sessionRepo repository.SessionRepository
	secretKey   string
}

func NewSessionService(cfg config.AppConfig, gateway clients.GatewayClient, sessionRepo repository.SessionRepository) *SessionServiceImpl {
	return &SessionServiceImpl{
		gateway:     gateway,
		sessionRepo: sessionRepo,
		secretKey:   cfg.TokenSecretKey,
	}
}

func (ss *SessionServiceImpl) Login(ctx context.Context, email, password string) (*models.Session, error) {
	token, err := ss.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return ss.establish(ctx, token)
}

func (ss *SessionServiceImpl) Register(ctx context.Context, name, email, phone, password string) (*models.Session, error) {
	token, err := ss.gateway.Register(ctx, name, email, phone, password)
	if err != nil {
		return nil, err
	}
	return ss.establish(ctx, token)
}

// Restore loads the persisted session and rejects it when expired, so the
// caller can fall back to the sign-in flow.
func (ss *SessionServiceImpl) Restore(ctx context.Context) (*models.Session, error) {
	session, err := ss.sessionRepo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, appErrors.NewWithCode(errors.New("session expired"), "Session expired, please sign in again", http.StatusUnauthorized)
	}
	return session, nil
}

func (ss *SessionServiceImpl) SignOut(ctx context.Context) error {
	return ss.sessionRepo.Clear(ctx)
}

func (ss *SessionServiceImpl) establish(ctx context.Context, token string) (*models.Session, error) {
	session, err := ss.parseToken(token)
	if err != nil {
		return nil, err
	}
	if err := ss.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	return session, nil
}

func (ss *SessionServiceImpl) parseToken(tokenString string) (*models.Session, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(ss.secretKey), nil
		})
	if err != nil {
		return nil, appErrors.New(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, appErrors.New(errors.New("token error"), "token is not valid")
	}

	userUID, err := uuid.Parse(claims.UserUID)
	if err != nil {
		return nil, appErrors.New(err, "invalid user id in token")
	}
	if claims.ExpiresAt == nil {
		return nil, appErrors.New(errors.New("token error"), "token has no expiry")
	}

	return &models.Session{
		UserUID:   userUID,
		Email:     claims.UserEmail,
		Token:     tokenString,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
