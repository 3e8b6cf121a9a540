package entity

import "github.com/google/uuid"

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusBooked    SeatStatus = "booked"
	// SeatStatusReserved exists in the schema but is never produced by
	// the booking workflow.
	SeatStatusReserved SeatStatus = "reserved"
)

type Seat struct {
	Base
	TrainID    uuid.UUID  `db:"train_id"`
	CarNumber  string     `db:"car_number"`  // 5, 6, 7, etc.
	SeatNumber string     `db:"seat_number"` // 1A, 1B, 2A, etc.
	Class      string     `db:"class"`       // economy, business, etc.
	Status     SeatStatus `db:"status"`
}
