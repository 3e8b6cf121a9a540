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

type TrainRepository interface {
	Create(ctx context.Context, train *entity.Train) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error)
	FindByNumber(ctx context.Context, trainNumber string) (*entity.Train, error)
	FindAll(ctx context.Context) ([]*entity.Train, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, train *entity.Train) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TrainStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewTrainRepository(db database.DBTX, log *zap.Logger) TrainRepository {
	return &trainRepository{
		db:  db,
		log: log.With(zap.String("repository", "train")),
	}
}

const trainColumns = `id, train_number, name, type, capacity, amenities, status, created_at, updated_at`

func (r *trainRepository) scanTrain(row pgx.Row) (*entity.Train, error) {
	var train entity.Train
	err := row.Scan(
		&train.ID,
		&train.TrainNumber,
		&train.Name,
		&train.Type,
		&train.Capacity,
		&train.Amenities,
		&train.Status,
		&train.CreatedAt,
		&train.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &train, nil
}

func (r *trainRepository) Create(ctx context.Context, train *entity.Train) error {
	query := `
		INSERT INTO trains (id, train_number, name, type, capacity, amenities, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		train.ID,
		train.TrainNumber,
		train.Name,
		train.Type,
		train.Capacity,
		train.Amenities,
		train.Status,
		train.CreatedAt,
		train.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create train",
			zap.Error(err),
			zap.String("train_number", train.TrainNumber),
		)
		return fmt.Errorf("create train %s: %w", train.TrainNumber, err)
	}

	return nil
}

func (r *trainRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE id = $1 AND deleted_at IS NULL`

	train, err := r.scanTrain(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find train by ID",
			zap.Error(err),
			zap.String("train_id", id.String()),
		)
		return nil, fmt.Errorf("find train by ID %s: %w", id.String(), err)
	}

	return train, nil
}

func (r *trainRepository) FindByNumber(ctx context.Context, trainNumber string) (*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE UPPER(train_number) = UPPER($1) AND deleted_at IS NULL`

	train, err := r.scanTrain(r.db.QueryRow(ctx, query, trainNumber))
	if err != nil {
		r.log.Error("Failed to find train by number",
			zap.Error(err),
			zap.String("train_number", trainNumber),
		)
		return nil, fmt.Errorf("find train by number %s: %w", trainNumber, err)
	}

	return train, nil
}

func (r *trainRepository) FindAll(ctx context.Context) ([]*entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains WHERE deleted_at IS NULL ORDER BY train_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find trains", zap.Error(err))
		return nil, fmt.Errorf("find trains: %w", err)
	}
	defer rows.Close()

	var trains []*entity.Train
	for rows.Next() {
		train, err := r.scanTrain(rows)
		if err != nil {
			r.log.Error("Failed to scan train row", zap.Error(err))
			return nil, fmt.Errorf("scan train row: %w", err)
		}
		trains = append(trains, train)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate train rows: %w", err)
	}

	return trains, nil
}

func (r *trainRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM trains WHERE deleted_at IS NULL`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count trains", zap.Error(err))
		return 0, fmt.Errorf("count trains: %w", err)
	}

	return count, nil
}

func (r *trainRepository) Update(ctx context.Context, train *entity.Train) error {
	query := `
		UPDATE trains
		SET train_number = $2, name = $3, type = $4, capacity = $5,
		    amenities = $6, status = $7, updated_at = $8
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		train.ID,
		train.TrainNumber,
		train.Name,
		train.Type,
		train.Capacity,
		train.Amenities,
		train.Status,
		train.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update train",
			zap.Error(err),
			zap.String("train_id", train.ID.String()),
		)
		return fmt.Errorf("update train %s: %w", train.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("train %s not found", train.ID.String())
	}

	return nil
}

func (r *trainRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TrainStatus) error {
	query := `UPDATE trains SET status = $2, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update train status",
			zap.Error(err),
			zap.String("train_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update train status %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("train %s not found", id.String())
	}

	return nil
}

func (r *trainRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE trains SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete train",
			zap.Error(err),
			zap.String("train_id", id.String()),
		)
		return fmt.Errorf("delete train %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("train %s not found", id.String())
	}

	return nil
}
