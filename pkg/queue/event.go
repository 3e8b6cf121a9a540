// Package queue publishes booking lifecycle events to RabbitMQ for
// downstream consumers (notifications, analytics).
package queue

const (
	QueueBookingCreated   = "booking.created"
	QueueBookingCancelled = "booking.cancelled"
)

// BookingCreatedEvent is published after a booking commits. It carries
// enough detail for consumers to notify the customer without hitting the
// primary database.
type BookingCreatedEvent struct {
	BookingID   string   `json:"booking_id"`
	Reference   string   `json:"reference"`
	UserID      string   `json:"user_id"`
	RouteID     string   `json:"route_id"`
	TrainNumber string   `json:"train_number"`
	FromStation string   `json:"from_station"`
	ToStation   string   `json:"to_station"`
	TravelDate  string   `json:"travel_date"`
	SeatNumbers []string `json:"seats"`
	TotalPrice  int      `json:"total_price"`
	CreatedAt   string   `json:"created_at"`
}

// BookingCancelledEvent is published after a cancellation releases seats.
type BookingCancelledEvent struct {
	BookingID     string `json:"booking_id"`
	Reference     string `json:"reference"`
	UserID        string `json:"user_id"`
	RouteID       string `json:"route_id"`
	SeatsReleased int    `json:"seats_released"`
	CancelledAt   string `json:"cancelled_at"`
}
