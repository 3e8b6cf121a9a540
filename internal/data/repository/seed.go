package repository

import (
	"context"
	"fmt"
	"time"

	"rail-booking/internal/data/entity"
	"rail-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedSampleData loads a small demo network: an admin account, six
// stations, three trains with their seat maps, and a handful of routes.
// It is a no-op when stations already exist.
func SeedSampleData(ctx context.Context, repos *Repository, log *zap.Logger) error {
	count, err := repos.Station.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("check existing stations: %w", err)
	}
	if count > 0 {
		log.Info("Sample data already present, skipping seed")
		return nil
	}

	now := time.Now()

	adminPassword, err := utils.HashPassword("admin123")
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username:     "admin",
		Email:        "admin@railbooking.local",
		PasswordHash: adminPassword,
		Role:         entity.RoleAdmin,
		IsActive:     true,
	}
	if err := repos.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	stations := []struct {
		name string
		code string
		city string
	}{
		{"New York Penn Station", "NYP", "New York"},
		{"Boston South Station", "BOS", "Boston"},
		{"Chicago Union Station", "CHI", "Chicago"},
		{"Detroit Central Station", "DET", "Detroit"},
		{"Los Angeles Union Station", "LAX", "Los Angeles"},
		{"San Francisco Station", "SFO", "San Francisco"},
	}

	stationIDs := make(map[string]uuid.UUID, len(stations))
	for _, s := range stations {
		station := &entity.Station{
			Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name: s.name,
			Code: s.code,
			City: s.city,
		}
		if err := repos.Station.Create(ctx, station); err != nil {
			return fmt.Errorf("seed station %s: %w", s.code, err)
		}
		stationIDs[s.code] = station.ID
	}

	trains := []struct {
		number    string
		name      string
		trainType string
		amenities []string
	}{
		{"NE-238", "Northeast Express", "Express", []string{"wifi", "cafe", "power outlets"}},
		{"CL-445", "Coastal Limited", "Regular", []string{"wifi", "dining car"}},
		{"CE-512", "Central Express", "Express", []string{"wifi", "quiet car", "power outlets"}},
	}

	trainIDs := make(map[string]uuid.UUID, len(trains))
	for _, t := range trains {
		train := &entity.Train{
			Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			TrainNumber: t.number,
			Name:        t.name,
			Type:        t.trainType,
			Capacity:    100,
			Amenities:   t.amenities,
			Status:      entity.TrainStatusActive,
		}
		if err := repos.Train.Create(ctx, train); err != nil {
			return fmt.Errorf("seed train %s: %w", t.number, err)
		}
		trainIDs[t.number] = train.ID

		if err := seedSeats(ctx, repos, train.ID, now); err != nil {
			return fmt.Errorf("seed seats for train %s: %w", t.number, err)
		}
	}

	routes := []struct {
		train     string
		from      string
		to        string
		departure string
		arrival   string
		duration  string
		price     int
		date      string
	}{
		{"NE-238", "NYP", "BOS", "06:30", "10:15", "3h 45m", 8900, "2026-10-10"},
		{"NE-238", "BOS", "NYP", "15:30", "19:15", "3h 45m", 8900, "2026-10-10"},
		{"CL-445", "NYP", "CHI", "08:00", "20:30", "12h 30m", 14500, "2026-10-10"},
		{"CE-512", "CHI", "DET", "09:15", "14:45", "5h 30m", 6500, "2026-10-11"},
		{"CL-445", "LAX", "SFO", "07:45", "15:30", "7h 45m", 9900, "2026-10-11"},
	}

	for _, rt := range routes {
		route := &entity.Route{
			Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			TrainID:        trainIDs[rt.train],
			FromStationID:  stationIDs[rt.from],
			ToStationID:    stationIDs[rt.to],
			DepartureTime:  rt.departure,
			ArrivalTime:    rt.arrival,
			Duration:       rt.duration,
			Price:          rt.price,
			TravelDate:     rt.date,
			AvailableSeats: 100,
		}
		if err := repos.Route.Create(ctx, route); err != nil {
			return fmt.Errorf("seed route %s %s-%s: %w", rt.train, rt.from, rt.to, err)
		}
	}

	log.Info("Sample data seeded",
		zap.Int("stations", len(stations)),
		zap.Int("trains", len(trains)),
		zap.Int("routes", len(routes)),
	)
	return nil
}

// seedSeats lays out four cars of five rows, seats A through E. Car 5 is
// business class, the rest economy.
func seedSeats(ctx context.Context, repos *Repository, trainID uuid.UUID, now time.Time) error {
	letters := []string{"A", "B", "C", "D", "E"}

	var seats []*entity.Seat
	for car := 5; car <= 8; car++ {
		class := "economy"
		if car == 5 {
			class = "business"
		}
		for row := 1; row <= 5; row++ {
			for _, letter := range letters {
				seats = append(seats, &entity.Seat{
					Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
					TrainID:    trainID,
					CarNumber:  fmt.Sprintf("%d", car),
					SeatNumber: fmt.Sprintf("%d%s", row, letter),
					Class:      class,
					Status:     entity.SeatStatusAvailable,
				})
			}
		}
	}

	return repos.Seat.CreateBatch(ctx, seats)
}
