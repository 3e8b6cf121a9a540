package repository

import (
	"context"
	"fmt"

	"rail-booking/internal/data/entity"
	"rail-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindByStationsAndDate(ctx context.Context, fromStationID, toStationID uuid.UUID, travelDate string) ([]*entity.Route, error)
	FindFeatured(ctx context.Context, limit int) ([]*entity.Route, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Route, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, route *entity.Route) error
	DecrementAvailableSeats(ctx context.Context, id uuid.UUID, count int) (bool, error)
	IncrementAvailableSeats(ctx context.Context, id uuid.UUID, count int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewRouteRepository(db database.DBTX, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

const routeColumns = `id, train_id, from_station_id, to_station_id, departure_time, arrival_time, duration, price, travel_date, available_seats, created_at, updated_at`

func (r *routeRepository) scanRoute(row pgx.Row) (*entity.Route, error) {
	var route entity.Route
	err := row.Scan(
		&route.ID,
		&route.TrainID,
		&route.FromStationID,
		&route.ToStationID,
		&route.DepartureTime,
		&route.ArrivalTime,
		&route.Duration,
		&route.Price,
		&route.TravelDate,
		&route.AvailableSeats,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	query := `
		INSERT INTO routes (id, train_id, from_station_id, to_station_id, departure_time,
			arrival_time, duration, price, travel_date, available_seats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		route.ID,
		route.TrainID,
		route.FromStationID,
		route.ToStationID,
		route.DepartureTime,
		route.ArrivalTime,
		route.Duration,
		route.Price,
		route.TravelDate,
		route.AvailableSeats,
		route.CreatedAt,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("train_id", route.TrainID.String()),
		)
		return fmt.Errorf("create route: %w", err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1 AND deleted_at IS NULL`

	route, err := r.scanRoute(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, fmt.Errorf("find route by ID %s: %w", id.String(), err)
	}

	return route, nil
}

// FindByIDForUpdate locks the route row for the rest of the transaction.
// Only meaningful inside TxManager.Atomic.
func (r *routeRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`

	route, err := r.scanRoute(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to lock route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, fmt.Errorf("lock route %s: %w", id.String(), err)
	}

	return route, nil
}

func (r *routeRepository) FindByStationsAndDate(ctx context.Context, fromStationID, toStationID uuid.UUID, travelDate string) ([]*entity.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE from_station_id = $1 AND to_station_id = $2 AND travel_date = $3
			AND deleted_at IS NULL
		ORDER BY departure_time
	`

	rows, err := r.db.Query(ctx, query, fromStationID, toStationID, travelDate)
	if err != nil {
		r.log.Error("Failed to find routes by stations and date",
			zap.Error(err),
			zap.String("travel_date", travelDate),
		)
		return nil, fmt.Errorf("find routes by stations and date: %w", err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		route, err := r.scanRoute(rows)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate route rows: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) FindFeatured(ctx context.Context, limit int) ([]*entity.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE available_seats > 0 AND deleted_at IS NULL
		ORDER BY travel_date, departure_time
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find featured routes", zap.Error(err))
		return nil, fmt.Errorf("find featured routes: %w", err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		route, err := r.scanRoute(rows)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate route rows: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Route, error) {
	query := `
		SELECT ` + routeColumns + `
		FROM routes
		WHERE deleted_at IS NULL
		ORDER BY travel_date, departure_time
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find routes", zap.Error(err))
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer rows.Close()

	var routes []*entity.Route
	for rows.Next() {
		route, err := r.scanRoute(rows)
		if err != nil {
			r.log.Error("Failed to scan route row", zap.Error(err))
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, route)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate route rows: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM routes WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count routes", zap.Error(err))
		return 0, fmt.Errorf("count routes: %w", err)
	}

	return count, nil
}

func (r *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	query := `
		UPDATE routes
		SET train_id = $2, from_station_id = $3, to_station_id = $4, departure_time = $5,
		    arrival_time = $6, duration = $7, price = $8, travel_date = $9,
		    available_seats = $10, updated_at = $11
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		route.ID,
		route.TrainID,
		route.FromStationID,
		route.ToStationID,
		route.DepartureTime,
		route.ArrivalTime,
		route.Duration,
		route.Price,
		route.TravelDate,
		route.AvailableSeats,
		route.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update route",
			zap.Error(err),
			zap.String("route_id", route.ID.String()),
		)
		return fmt.Errorf("update route %s: %w", route.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", route.ID.String())
	}

	return nil
}

// DecrementAvailableSeats takes count seats off the route counter. The
// guard clause keeps the counter from ever going negative; a false
// return means the route did not have enough seats left.
func (r *routeRepository) DecrementAvailableSeats(ctx context.Context, id uuid.UUID, count int) (bool, error) {
	query := `
		UPDATE routes
		SET available_seats = available_seats - $2, updated_at = NOW()
		WHERE id = $1 AND available_seats >= $2 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, count)
	if err != nil {
		r.log.Error("Failed to decrement available seats",
			zap.Error(err),
			zap.String("route_id", id.String()),
			zap.Int("count", count),
		)
		return false, fmt.Errorf("decrement available seats on route %s: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *routeRepository) IncrementAvailableSeats(ctx context.Context, id uuid.UUID, count int) error {
	query := `
		UPDATE routes
		SET available_seats = available_seats + $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id, count)
	if err != nil {
		r.log.Error("Failed to increment available seats",
			zap.Error(err),
			zap.String("route_id", id.String()),
			zap.Int("count", count),
		)
		return fmt.Errorf("increment available seats on route %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", id.String())
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE routes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return fmt.Errorf("delete route %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s not found", id.String())
	}

	return nil
}
