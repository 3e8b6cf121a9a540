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

type PassengerRepository interface {
	CreateBatch(ctx context.Context, passengers []*entity.Passenger) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Passenger, error)
}

type passengerRepository struct {
	db  database.DBTX
	log *zap.Logger
}

func NewPassengerRepository(db database.DBTX, log *zap.Logger) PassengerRepository {
	return &passengerRepository{
		db:  db,
		log: log.With(zap.String("repository", "passenger")),
	}
}

func (r *passengerRepository) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	if len(passengers) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO passengers (id, booking_id, seat_id, name, age, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for _, p := range passengers {
		batch.Queue(query, p.ID, p.BookingID, p.SeatID, p.Name, p.Age, p.CreatedAt)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for range passengers {
		if _, err := results.Exec(); err != nil {
			r.log.Error("Failed to create passenger batch", zap.Error(err))
			return fmt.Errorf("create passenger batch: %w", err)
		}
	}

	return nil
}

func (r *passengerRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Passenger, error) {
	query := `
		SELECT id, booking_id, seat_id, name, age, created_at
		FROM passengers
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find passengers by booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find passengers by booking %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var passengers []*entity.Passenger
	for rows.Next() {
		var p entity.Passenger
		err := rows.Scan(&p.ID, &p.BookingID, &p.SeatID, &p.Name, &p.Age, &p.CreatedAt)
		if err != nil {
			r.log.Error("Failed to scan passenger row", zap.Error(err))
			return nil, fmt.Errorf("scan passenger row: %w", err)
		}
		passengers = append(passengers, &p)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate passenger rows: %w", err)
	}

	return passengers, nil
}
