package entity

import "github.com/google/uuid"

// Passenger links a booking to one reserved seat. Rows are created once
// at booking time and never mutated; cancellation only flips the owning
// booking's status.
type Passenger struct {
	BaseSimple
	BookingID uuid.UUID `db:"booking_id"`
	SeatID    uuid.UUID `db:"seat_id"`
	Name      string    `db:"name"`
	Age       int       `db:"age"`
}
