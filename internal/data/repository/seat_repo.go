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

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error)
	FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error)
	FindByTrainID(ctx context.Context, trainID uuid.UUID) ([]*entity.Seat, error)
	FindAvailableByTrainID(ctx context.Context, trainID uuid.UUID) ([]*entity.Seat, error)
	Update(ctx context.Context, seat *entity.Seat) error
	UpdateSeatsStatus(ctx context.Context, ids []uuid.UUID, status entity.SeatStatus) error
}

type seatRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewSeatRepository(db database.DBTX, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

const seatColumns = `id, train_id, car_number, seat_number, class, status, created_at, updated_at`

func (r *seatRepository) scanSeat(row pgx.Row) (*entity.Seat, error) {
	var seat entity.Seat
	err := row.Scan(
		&seat.ID,
		&seat.TrainID,
		&seat.CarNumber,
		&seat.SeatNumber,
		&seat.Class,
		&seat.Status,
		&seat.CreatedAt,
		&seat.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (r *seatRepository) scanSeats(rows pgx.Rows) ([]*entity.Seat, error) {
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		seat, err := r.scanSeat(rows)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (id, train_id, car_number, seat_number, class, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.TrainID,
		seat.CarNumber,
		seat.SeatNumber,
		seat.Class,
		seat.Status,
		seat.CreatedAt,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seat",
			zap.Error(err),
			zap.String("train_id", seat.TrainID.String()),
			zap.String("seat_number", seat.SeatNumber),
		)
		return fmt.Errorf("create seat %s: %w", seat.SeatNumber, err)
	}

	return nil
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO seats (id, train_id, car_number, seat_number, class, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	for _, seat := range seats {
		batch.Queue(query,
			seat.ID,
			seat.TrainID,
			seat.CarNumber,
			seat.SeatNumber,
			seat.Class,
			seat.Status,
			seat.CreatedAt,
			seat.UpdatedAt,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range seats {
		if _, err := results.Exec(); err != nil {
			r.log.Error("Failed to create seat batch", zap.Error(err))
			return fmt.Errorf("create seat batch: %w", err)
		}
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = $1 AND deleted_at IS NULL`

	seat, err := r.scanSeat(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return seat, nil
}

func (r *seatRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = ANY($1) AND deleted_at IS NULL ORDER BY id`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find seats by IDs", zap.Error(err))
		return nil, fmt.Errorf("find seats by IDs: %w", err)
	}

	return r.scanSeats(rows)
}

// FindByIDsForUpdate locks the requested seat rows until the transaction
// ends. Rows are locked in id order so two overlapping reservations
// always contend on the same seat first instead of deadlocking.
func (r *seatRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	query := `SELECT ` + seatColumns + ` FROM seats WHERE id = ANY($1) AND deleted_at IS NULL ORDER BY id FOR UPDATE`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to lock seats", zap.Error(err))
		return nil, fmt.Errorf("lock seats: %w", err)
	}

	return r.scanSeats(rows)
}

func (r *seatRepository) FindByTrainID(ctx context.Context, trainID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM seats
		WHERE train_id = $1 AND deleted_at IS NULL
		ORDER BY car_number, seat_number
	`

	rows, err := r.db.Query(ctx, query, trainID)
	if err != nil {
		r.log.Error("Failed to find seats by train",
			zap.Error(err),
			zap.String("train_id", trainID.String()),
		)
		return nil, fmt.Errorf("find seats by train %s: %w", trainID.String(), err)
	}

	return r.scanSeats(rows)
}

func (r *seatRepository) FindAvailableByTrainID(ctx context.Context, trainID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT ` + seatColumns + `
		FROM seats
		WHERE train_id = $1 AND status = 'available' AND deleted_at IS NULL
		ORDER BY car_number, seat_number
	`

	rows, err := r.db.Query(ctx, query, trainID)
	if err != nil {
		r.log.Error("Failed to find available seats by train",
			zap.Error(err),
			zap.String("train_id", trainID.String()),
		)
		return nil, fmt.Errorf("find available seats by train %s: %w", trainID.String(), err)
	}

	return r.scanSeats(rows)
}

func (r *seatRepository) Update(ctx context.Context, seat *entity.Seat) error {
	query := `
		UPDATE seats
		SET car_number = $2, seat_number = $3, class = $4, status = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		seat.ID,
		seat.CarNumber,
		seat.SeatNumber,
		seat.Class,
		seat.Status,
		seat.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update seat",
			zap.Error(err),
			zap.String("seat_id", seat.ID.String()),
		)
		return fmt.Errorf("update seat %s: %w", seat.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %s not found", seat.ID.String())
	}

	return nil
}

func (r *seatRepository) UpdateSeatsStatus(ctx context.Context, ids []uuid.UUID, status entity.SeatStatus) error {
	query := `UPDATE seats SET status = $2, updated_at = NOW() WHERE id = ANY($1) AND deleted_at IS NULL`

	_, err := r.db.Exec(ctx, query, ids, status)
	if err != nil {
		r.log.Error("Failed to update seats status",
			zap.Error(err),
			zap.String("status", string(status)),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("update seats status: %w", err)
	}

	return nil
}
