package entity

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Booking struct {
	Base
	Reference     string        `db:"reference"` // RAIL-YYYYMMDD-NNNNNN
	UserID        uuid.UUID     `db:"user_id"`
	RouteID       uuid.UUID     `db:"route_id"`
	TotalSeats    int           `db:"total_seats"`
	TotalPrice    int           `db:"total_price"`
	Status        BookingStatus `db:"status"`
	PaymentMethod string        `db:"payment_method"`
	PaymentStatus PaymentStatus `db:"payment_status"`
}
