package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"
	"rail-booking/internal/dto/request"

	"github.com/google/uuid"
)

type searchFixture struct {
	repos *repository.Repository
	svc   *SearchService
	nyp   uuid.UUID
	bos   uuid.UUID
	train uuid.UUID
}

func newSearchFixture(t *testing.T) *searchFixture {
	t.Helper()

	repos, _ := newTestRepos()
	now := time.Now()
	ctx := context.Background()

	nyp := &entity.Station{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: "New York Penn Station", Code: "NYP", City: "New York",
	}
	bos := &entity.Station{
		Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name: "Boston South Station", Code: "BOS", City: "Boston",
	}
	for _, s := range []*entity.Station{nyp, bos} {
		if err := repos.Station.Create(ctx, s); err != nil {
			t.Fatalf("seed station: %v", err)
		}
	}

	train := &entity.Train{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		TrainNumber: "NE-238", Name: "Northeast Express", Type: "Express",
		Capacity: 100, Status: entity.TrainStatusActive,
	}
	if err := repos.Train.Create(ctx, train); err != nil {
		t.Fatalf("seed train: %v", err)
	}

	routes := []struct {
		departure string
		arrival   string
	}{
		{"06:30", "10:15"},
		{"15:30", "19:15"},
	}
	for _, r := range routes {
		route := &entity.Route{
			Base:          entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			TrainID:       train.ID,
			FromStationID: nyp.ID,
			ToStationID:   bos.ID,
			DepartureTime: r.departure, ArrivalTime: r.arrival, Duration: "3h 45m",
			Price: 8900, TravelDate: "2026-10-10", AvailableSeats: 100,
		}
		if err := repos.Route.Create(ctx, route); err != nil {
			t.Fatalf("seed route: %v", err)
		}
	}

	return &searchFixture{
		repos: repos,
		svc:   NewSearchService(repos, testLogger()),
		nyp:   nyp.ID,
		bos:   bos.ID,
		train: train.ID,
	}
}

func TestSearchRoutesByCode(t *testing.T) {
	f := newSearchFixture(t)

	results, err := f.svc.SearchRoutes(context.Background(), request.SearchRoutesRequest{
		From: "NYP", To: "BOS", Date: "2026-10-10",
	})
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}

	first := results[0]
	if first.DepartureTime != "06:30" {
		t.Errorf("first departure = %s, results not ordered by departure", first.DepartureTime)
	}
	if first.TrainNumber != "NE-238" || first.FromCode != "NYP" || first.ToCode != "BOS" {
		t.Errorf("enrichment wrong: %+v", first)
	}
	if first.FromStation != "New York Penn Station" {
		t.Errorf("from station = %q", first.FromStation)
	}
}

func TestSearchRoutesByName(t *testing.T) {
	f := newSearchFixture(t)

	results, err := f.svc.SearchRoutes(context.Background(), request.SearchRoutesRequest{
		From: "new york", To: "boston", Date: "2026-10-10",
	})
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
}

func TestSearchRoutesCodeBeatsName(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	// A station whose name contains "NYP" must lose to the exact code match.
	decoy := &entity.Station{
		Base: entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name: "ANYPORT Junction", Code: "ANJ", City: "Anyport",
	}
	if err := f.repos.Station.Create(ctx, decoy); err != nil {
		t.Fatalf("seed decoy: %v", err)
	}

	results, err := f.svc.SearchRoutes(ctx, request.SearchRoutesRequest{
		From: "NYP", To: "BOS", Date: "2026-10-10",
	})
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
}

func TestSearchRoutesUnknownStation(t *testing.T) {
	f := newSearchFixture(t)

	results, err := f.svc.SearchRoutes(context.Background(), request.SearchRoutesRequest{
		From: "Atlantis", To: "BOS", Date: "2026-10-10",
	})
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestSearchRoutesWrongDate(t *testing.T) {
	f := newSearchFixture(t)

	results, err := f.svc.SearchRoutes(context.Background(), request.SearchRoutesRequest{
		From: "NYP", To: "BOS", Date: "2026-12-25",
	})
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %d, want 0", len(results))
	}
}

func TestSearchRoutesValidation(t *testing.T) {
	f := newSearchFixture(t)

	_, err := f.svc.SearchRoutes(context.Background(), request.SearchRoutesRequest{
		From: "NYP", To: "BOS", Date: "10/10/2026",
	})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestSearchRoutesDropsIncompleteResults(t *testing.T) {
	f := newSearchFixture(t)
	ctx := context.Background()

	// A route pointing at a missing train is dropped, not an error.
	orphan := &entity.Route{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		TrainID:       uuid.New(),
		FromStationID: f.nyp,
		ToStationID:   f.bos,
		DepartureTime: "23:00", ArrivalTime: "23:59", Duration: "0h 59m",
		Price: 100, TravelDate: "2026-10-10", AvailableSeats: 10,
	}
	if err := f.repos.Route.Create(ctx, orphan); err != nil {
		t.Fatalf("seed orphan route: %v", err)
	}

	results, err := f.svc.SearchRoutes(ctx, request.SearchRoutesRequest{
		From: "NYP", To: "BOS", Date: "2026-10-10",
	})
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("results = %d, want 2 (orphan dropped)", len(results))
	}
}
