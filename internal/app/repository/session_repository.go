package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/aquago/aquago/internal/app/errors"
	"github.com/aquago/aquago/internal/app/models"
)

type SessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context) (*models.Session, error)
	Clear(ctx context.Context) error
}

type SessionRepositoryImpl struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepositoryImpl {
	return &SessionRepositoryImpl{db: db}
}

// Save keeps exactly one session row; signing in again replaces it.
func (sr *SessionRepositoryImpl) Save(ctx context.Context, session *models.Session) error {
	query := `INSERT INTO session (id, user_uuid, email, token, expires_at)
			  VALUES (1, ?, ?, ?, ?)
			  ON CONFLICT (id) DO UPDATE
			  SET user_uuid = excluded.user_uuid,
				  email = excluded.email,
				  token = excluded.token,
				  expires_at = excluded.expires_at;`
	stmt, err := sr.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, session.UserUID, session.Email, session.Token, session.ExpiresAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (sr *SessionRepositoryImpl) Load(ctx context.Context) (*models.Session, error) {
	query := `SELECT user_uuid, email, token, expires_at FROM session WHERE id = 1;`
	session := models.Session{}
	err := sr.db.GetContext(ctx, &session, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewWithCode(err, "no stored session", http.StatusUnauthorized)
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return &session, nil
}

func (sr *SessionRepositoryImpl) Clear(ctx context.Context) error {
	_, err := sr.db.ExecContext(ctx, `DELETE FROM session;`)
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
