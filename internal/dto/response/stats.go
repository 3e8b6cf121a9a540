package response

type StatsResponse struct {
	TotalUsers        int64              `json:"total_users"`
	TotalStations     int64              `json:"total_stations"`
	TotalTrains       int64              `json:"total_trains"`
	TotalRoutes       int64              `json:"total_routes"`
	TotalBookings     int64              `json:"total_bookings"`
	CancelledBookings int64              `json:"cancelled_bookings"`
	TotalRevenue      int64              `json:"total_revenue"`
	RecentBookings    []*BookingResponse `json:"recent_bookings"`
}
