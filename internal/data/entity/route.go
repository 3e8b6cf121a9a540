package entity

import "github.com/google/uuid"

// Route is a train journey between two stations on a specific service
// date. AvailableSeats only moves through the booking workflow: down as
// bookings commit, back up as they cancel.
type Route struct {
	Base
	TrainID        uuid.UUID `db:"train_id"`
	FromStationID  uuid.UUID `db:"from_station_id"`
	ToStationID    uuid.UUID `db:"to_station_id"`
	DepartureTime  string    `db:"departure_time"` // HH:MM
	ArrivalTime    string    `db:"arrival_time"`   // HH:MM
	Duration       string    `db:"duration"`       // "3h 45m"
	Price          int       `db:"price"`          // minor currency units per seat
	TravelDate     string    `db:"travel_date"`    // YYYY-MM-DD
	AvailableSeats int       `db:"available_seats"`
}
