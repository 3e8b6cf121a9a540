package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// brokenRows behaves like a result set whose connection died mid
// iteration: Next reports no more rows and the failure only surfaces
// through Err.
type brokenRows struct {
	err error
}

func (r *brokenRows) Close()                                       {}
func (r *brokenRows) Err() error                                   { return r.err }
func (r *brokenRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *brokenRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *brokenRows) Next() bool                                   { return false }
func (r *brokenRows) Scan(dest ...any) error                       { return nil }
func (r *brokenRows) Values() ([]any, error)                       { return nil, nil }
func (r *brokenRows) RawValues() [][]byte                          { return nil }
func (r *brokenRows) Conn() *pgx.Conn                              { return nil }

func TestScanSeatsReportsIterationError(t *testing.T) {
	repo := &seatRepository{log: zap.NewNop()}

	cause := errors.New("connection reset")
	seats, err := repo.scanSeats(&brokenRows{err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped %v", err, cause)
	}
	if seats != nil {
		t.Errorf("seats = %v, want nil on iteration error", seats)
	}
}

func TestScanBookingsReportsIterationError(t *testing.T) {
	repo := &bookingRepository{log: zap.NewNop()}

	cause := errors.New("connection reset")
	bookings, err := repo.scanBookings(&brokenRows{err: cause})
	if !errors.Is(err, cause) {
		t.Fatalf("err = %v, want wrapped %v", err, cause)
	}
	if bookings != nil {
		t.Errorf("bookings = %v, want nil on iteration error", bookings)
	}
}
