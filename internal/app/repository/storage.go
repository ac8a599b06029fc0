package repository

import (
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/aquago/aquago/internal/app/config"
	"github.com/aquago/aquago/migrations"
)

// LocalStore is the on-device sqlite database backing the session record,
// the cached container selection and the recent search locations. All
// authoritative data lives behind the gateway; nothing here is a cache the
// backend depends on.
type LocalStore struct {
	DBConn *sqlx.DB
}

func NewLocalStore(cfg config.AppConfig) *LocalStore {
	db := Open(cfg.LocalStorePath)
	// Migrate the database
	err := MigrateFS(db, migrations.FS, ".")
	if err != nil {
		panic(err)
	}

	return &LocalStore{DBConn: db}
}

func Open(path string) *sqlx.DB {
	return sqlx.MustOpen("sqlite3", path)
}

func MigrateFS(db *sqlx.DB, fsys fs.FS, dir string) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *LocalStore) Close() error {
	return s.DBConn.Close()
}
