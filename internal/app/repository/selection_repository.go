package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	appErrors "github.com/aquago/aquago/internal/app/errors"
)

// Selection is the cached "selected container" record: the supplier and rate
// tier the user last picked, restored when the checkout flow reopens.
type Selection struct {
	ContainerID uuid.UUID `db:"container_id"`
	Name        string    `db:"name"`
	Volume      int       `db:"volume"`
	Price       float64   `db:"price"`
	SavedAt     time.Time `db:"saved_at"`
}

type SelectionRepository interface {
	Save(ctx context.Context, selection *Selection) error
	Load(ctx context.Context) (*Selection, error)
	Clear(ctx context.Context) error
}

type SelectionRepositoryImpl struct {
	db *sqlx.DB
}

func NewSelectionRepository(db *sqlx.DB) *SelectionRepositoryImpl {
	return &SelectionRepositoryImpl{db: db}
}

func (sr *SelectionRepositoryImpl) Save(ctx context.Context, selection *Selection) error {
	query := `INSERT INTO selected_container (id, container_id, name, volume, price, saved_at)
			  VALUES (1, ?, ?, ?, ?, ?)
			  ON CONFLICT (id) DO UPDATE
			  SET container_id = excluded.container_id,
				  name = excluded.name,
				  volume = excluded.volume,
				  price = excluded.price,
				  saved_at = excluded.saved_at;`
	stmt, err := sr.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, selection.ContainerID, selection.Name, selection.Volume, selection.Price, selection.SavedAt)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (sr *SelectionRepositoryImpl) Load(ctx context.Context) (*Selection, error) {
	query := `SELECT container_id, name, volume, price, saved_at FROM selected_container WHERE id = 1;`
	selection := Selection{}
	err := sr.db.GetContext(ctx, &selection, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.NewWithCode(err, "no cached selection", http.StatusNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load selection: %w", err)
	}
	return &selection, nil
}

func (sr *SelectionRepositoryImpl) Clear(ctx context.Context) error {
	_, err := sr.db.ExecContext(ctx, `DELETE FROM selected_container;`)
	if err != nil {
		return fmt.Errorf("clear selection: %w", err)
	}
	return nil
}
