package repository

import (
	"context"
	"fmt"

	"rail-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User      UserRepository
	Session   SessionRepository
	Station   StationRepository
	Train     TrainRepository
	Route     RouteRepository
	Seat      SeatRepository
	Booking   BookingRepository
	Passenger PassengerRepository

	// Tx runs a closure against transaction-bound repositories. The
	// booking workflow depends on it for its all-or-nothing guarantees.
	Tx TxManager
}

// TxManager is the transactional boundary of the store. The *Repository
// handed to fn is bound to a single transaction; fn returning an error
// rolls everything back.
type TxManager interface {
	Atomic(ctx context.Context, fn func(r *Repository) error) error
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	r := newRepository(db, log)
	r.Tx = &pgxTxManager{db: db, log: log}
	return r
}

func newRepository(db database.DBTX, log *zap.Logger) *Repository {
	return &Repository{
		User:      NewUserRepository(db, log),
		Session:   NewSessionRepository(db, log),
		Station:   NewStationRepository(db, log),
		Train:     NewTrainRepository(db, log),
		Route:     NewRouteRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Booking:   NewBookingRepository(db, log),
		Passenger: NewPassengerRepository(db, log),
	}
}

type pgxTxManager struct {
	db  database.PgxIface
	log *zap.Logger
}

func (m *pgxTxManager) Atomic(ctx context.Context, fn func(r *Repository) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		m.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin transaction: %w", err)
	}

	txRepo := newRepository(tx, m.log)
	// Nested Atomic calls reuse the already-open transaction.
	txRepo.Tx = &passthroughTxManager{repo: txRepo}

	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			m.log.Error("Failed to rollback transaction", zap.Error(rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		m.log.Error("Failed to commit transaction", zap.Error(err))
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

type passthroughTxManager struct {
	repo *Repository
}

func (m *passthroughTxManager) Atomic(ctx context.Context, fn func(r *Repository) error) error {
	return fn(m.repo)
}
