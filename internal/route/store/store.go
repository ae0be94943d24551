package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/route"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectRouteColumns = `
	id, location_id, shipment_id, recipient_id, driver_id,
	start_time, end_time, weight, created_at, updated_at
`

func scanRoute(sc scanner) (*route.Route, error) {
	var r route.Route

	err := sc.Scan(
		&r.ID, &r.LocationID, &r.ShipmentID, &r.RecipientID, &r.DriverID,
		&r.StartTime, &r.EndTime, &r.Weight, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}

// ListAssignedRoutes returns the driver's open routes plus the ones
// finished inside the given window.
func (s *Store) ListAssignedRoutes(ctx context.Context, driverID uuid.UUID, dayStart, dayEnd time.Time) ([]*route.Route, error) {
	query := `
		SELECT` + selectRouteColumns + `
		FROM routes
		WHERE driver_id = $1
			AND (end_time IS NULL OR end_time BETWEEN $2 AND $3)
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, driverID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("listing routes: %w", err)
	}
	defer rows.Close()

	var routes []*route.Route

	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning route: %w", err)
		}

		routes = append(routes, r)
	}

	return routes, rows.Err()
}

func (s *Store) StartRoute(ctx context.Context, routeID, driverID uuid.UUID, now time.Time) (*route.Route, error) {
	var active bool

	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM routes
			WHERE driver_id = $1 AND start_time IS NOT NULL AND end_time IS NULL
		)
	`, driverID).Scan(&active)
	if err != nil {
		return nil, fmt.Errorf("checking active route: %w", err)
	}

	if active {
		return nil, route.ErrRouteInProgress
	}

	query := `
		UPDATE routes
		SET start_time = $3, updated_at = $3
		WHERE id = $1 AND driver_id = $2 AND start_time IS NULL
		RETURNING` + selectRouteColumns

	r, err := scanRoute(s.db.QueryRowContext(ctx, query, routeID, driverID, now))
	if err == sql.ErrNoRows {
		return nil, route.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("starting route: %w", err)
	}

	return r, nil
}

// EndRoute closes the route and stamps delivered_at on its shipment in
// the same transaction. Delivery to the seamstress is what moves the
// shipment into production.
func (s *Store) EndRoute(ctx context.Context, routeID, driverID uuid.UUID, now time.Time) (*route.Route, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE routes
		SET end_time = $3, updated_at = $3
		WHERE id = $1 AND driver_id = $2
			AND start_time IS NOT NULL AND end_time IS NULL
		RETURNING` + selectRouteColumns

	r, err := scanRoute(tx.QueryRowContext(ctx, query, routeID, driverID, now))
	if err == sql.ErrNoRows {
		return nil, route.ErrRouteNotStarted
	}
	if err != nil {
		return nil, fmt.Errorf("ending route: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE shipments SET delivered_at = $2, updated_at = $2 WHERE id = $1
	`, r.ShipmentID, now); err != nil {
		return nil, fmt.Errorf("marking shipment delivered: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return r, nil
}

func (s *Store) UpsertDriverPosition(ctx context.Context, driverID uuid.UUID, lat, lng decimal.Decimal) (*route.Position, error) {
	query := `
		INSERT INTO driver_position (driver_id, lat, lng, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (driver_id) DO UPDATE
		SET lat = EXCLUDED.lat, lng = EXCLUDED.lng, updated_at = now()
		RETURNING id, driver_id, lat, lng, updated_at
	`

	var pos route.Position

	err := s.db.QueryRowContext(ctx, query, driverID, lat, lng).
		Scan(&pos.ID, &pos.DriverID, &pos.Lat, &pos.Lng, &pos.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upserting driver position: %w", err)
	}

	return &pos, nil
}
