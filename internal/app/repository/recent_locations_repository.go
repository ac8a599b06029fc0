package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/paulmach/orb"
)

const recentLocationLimit = 10

type RecentLocation struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Address   string    `db:"address"`
	Lng       float64   `db:"lng"`
	Lat       float64   `db:"lat"`
	VisitedAt time.Time `db:"visited_at"`
}

func (rl RecentLocation) Point() orb.Point {
	return orb.Point{rl.Lng, rl.Lat}
}

type RecentLocationRepository interface {
	Add(ctx context.Context, title, address string, point orb.Point) error
	List(ctx context.Context) (*[]RecentLocation, error)
}

type RecentLocationRepositoryImpl struct {
	db *sqlx.DB
}

func NewRecentLocationRepository(db *sqlx.DB) *RecentLocationRepositoryImpl {
	return &RecentLocationRepositoryImpl{db: db}
}

// Add records a searched location and trims the history.
func (rr *RecentLocationRepositoryImpl) Add(ctx context.Context, title, address string, point orb.Point) error {
	query := `INSERT INTO recent_locations (title, address, lng, lat, visited_at)
			  VALUES (?, ?, ?, ?, ?);`
	_, err := rr.db.ExecContext(ctx, query, title, address, point.Lon(), point.Lat(), time.Now())
	if err != nil {
		return fmt.Errorf("add recent location: %w", err)
	}

	trim := `DELETE FROM recent_locations
			 WHERE id NOT IN (SELECT id FROM recent_locations ORDER BY visited_at DESC, id DESC LIMIT ?);`
	if _, err := rr.db.ExecContext(ctx, trim, recentLocationLimit); err != nil {
		return fmt.Errorf("trim recent locations: %w", err)
	}
	return nil
}

func (rr *RecentLocationRepositoryImpl) List(ctx context.Context) (*[]RecentLocation, error) {
	query := `SELECT id, title, address, lng, lat, visited_at FROM recent_locations
			  ORDER BY visited_at DESC, id DESC;`
	var locations []RecentLocation
	if err := rr.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("list recent locations: %w", err)
	}
	return &locations, nil
}
