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

type StationRepository interface {
	Create(ctx context.Context, station *entity.Station) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Station, error)
	FindByCode(ctx context.Context, code string) (*entity.Station, error)
	SearchByName(ctx context.Context, name string) (*entity.Station, error)
	FindAll(ctx context.Context) ([]*entity.Station, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, station *entity.Station) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type stationRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewStationRepository(db database.DBTX, log *zap.Logger) StationRepository {
	return &stationRepository{
		db:  db,
		log: log.With(zap.String("repository", "station")),
	}
}

const stationColumns = `id, name, code, city, created_at, updated_at`

func (r *stationRepository) scanStation(row pgx.Row) (*entity.Station, error) {
	var station entity.Station
	err := row.Scan(
		&station.ID,
		&station.Name,
		&station.Code,
		&station.City,
		&station.CreatedAt,
		&station.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *stationRepository) Create(ctx context.Context, station *entity.Station) error {
	query := `
		INSERT INTO stations (id, name, code, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		station.ID,
		station.Name,
		station.Code,
		station.City,
		station.CreatedAt,
		station.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create station",
			zap.Error(err),
			zap.String("code", station.Code),
		)
		return fmt.Errorf("create station %s: %w", station.Code, err)
	}

	return nil
}

func (r *stationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE id = $1 AND deleted_at IS NULL`

	station, err := r.scanStation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find station by ID",
			zap.Error(err),
			zap.String("station_id", id.String()),
		)
		return nil, fmt.Errorf("find station by ID %s: %w", id.String(), err)
	}

	return station, nil
}

func (r *stationRepository) FindByCode(ctx context.Context, code string) (*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE UPPER(code) = UPPER($1) AND deleted_at IS NULL`

	station, err := r.scanStation(r.db.QueryRow(ctx, query, code))
	if err != nil {
		r.log.Error("Failed to find station by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find station by code %s: %w", code, err)
	}

	return station, nil
}

// SearchByName returns the first station whose name contains the given
// text, case-insensitive. Ambiguous input is not disambiguated.
func (r *stationRepository) SearchByName(ctx context.Context, name string) (*entity.Station, error) {
	query := `
		SELECT ` + stationColumns + `
		FROM stations
		WHERE name ILIKE '%' || $1 || '%' AND deleted_at IS NULL
		ORDER BY name
		LIMIT 1
	`

	station, err := r.scanStation(r.db.QueryRow(ctx, query, name))
	if err != nil {
		r.log.Error("Failed to search station by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("search station by name %s: %w", name, err)
	}

	return station, nil
}

func (r *stationRepository) FindAll(ctx context.Context) ([]*entity.Station, error) {
	query := `SELECT ` + stationColumns + ` FROM stations WHERE deleted_at IS NULL ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find stations", zap.Error(err))
		return nil, fmt.Errorf("find stations: %w", err)
	}
	defer rows.Close()

	var stations []*entity.Station
	for rows.Next() {
		station, err := r.scanStation(rows)
		if err != nil {
			r.log.Error("Failed to scan station row", zap.Error(err))
			return nil, fmt.Errorf("scan station row: %w", err)
		}
		stations = append(stations, station)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate station rows: %w", err)
	}

	return stations, nil
}

func (r *stationRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stations WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count stations", zap.Error(err))
		return 0, fmt.Errorf("count stations: %w", err)
	}

	return count, nil
}

func (r *stationRepository) Update(ctx context.Context, station *entity.Station) error {
	query := `
		UPDATE stations
		SET name = $2, code = $3, city = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		station.ID,
		station.Name,
		station.Code,
		station.City,
		station.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update station",
			zap.Error(err),
			zap.String("station_id", station.ID.String()),
		)
		return fmt.Errorf("update station %s: %w", station.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("station %s not found", station.ID.String())
	}

	return nil
}

func (r *stationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE stations SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete station",
			zap.Error(err),
			zap.String("station_id", id.String()),
		)
		return fmt.Errorf("delete station %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("station %s not found", id.String())
	}

	return nil
}
