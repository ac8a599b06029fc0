package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aquago/aquago/internal/app/models"
)

const initSessionDB = `
CREATE TABLE IF NOT EXISTS session
(
    id INTEGER PRIMARY KEY CHECK (id = 1),
    user_uuid TEXT NOT NULL,
    email TEXT NOT NULL,
    token TEXT NOT NULL,
    expires_at TIMESTAMP NOT NULL
);
`

func setupInMemorySessionDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:sessiondb?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(initSessionDB)
	if err != nil {
		t.Fatalf("could not create session table: %v", err)
	}
	_, err = db.Exec(`DELETE FROM session;`)
	if err != nil {
		t.Fatalf("could not reset session table: %v", err)
	}
	return db
}

func TestSessionRepositoryImpl_SaveAndLoad(t *testing.T) {
	db := setupInMemorySessionDB(t)
	defer db.Close()

	repo := NewSessionRepository(db)
	ctx := context.Background()

	session := &models.Session{
		UserUID:   uuid.New(),
		Email:     "user@example.com",
		Token:     "token-1",
		ExpiresAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.UserUID, loaded.UserUID)
	assert.Equal(t, session.Email, loaded.Email)
	assert.Equal(t, session.Token, loaded.Token)
	assert.True(t, session.ExpiresAt.Equal(loaded.ExpiresAt))
}

func TestSessionRepositoryImpl_SaveReplacesExisting(t *testing.T) {
	db := setupInMemorySessionDB(t)
	defer db.Close()

	repo := NewSessionRepository(db)
	ctx := context.Background()

	first := &models.Session{UserUID: uuid.New(), Email: "a@example.com", Token: "t1", ExpiresAt: time.Now().Add(time.Hour)}
	second := &models.Session{UserUID: uuid.New(), Email: "b@example.com", Token: "t2", ExpiresAt: time.Now().Add(2 * time.Hour)}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.UserUID, loaded.UserUID)
	assert.Equal(t, "t2", loaded.Token)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM session;`))
	assert.Equal(t, 1, count)
}

func TestSessionRepositoryImpl_LoadEmpty(t *testing.T) {
	db := setupInMemorySessionDB(t)
	defer db.Close()

	repo := NewSessionRepository(db)
	_, err := repo.Load(context.Background())
	assert.Error(t, err)
}

func TestSessionRepositoryImpl_Clear(t *testing.T) {
	db := setupInMemorySessionDB(t)
	defer db.Close()

	repo := NewSessionRepository(db)
	ctx := context.Background()

	session := &models.Session{UserUID: uuid.New(), Email: "a@example.com", Token: "t1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Save(ctx, session))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Load(ctx)
	assert.Error(t, err)
}
