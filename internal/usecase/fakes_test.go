package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"rail-booking/internal/data/entity"
	"rail-booking/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memStore is an in-memory stand-in for the database. Entities are held
// by value so a transaction snapshot is a plain map copy.
type memStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	stations   map[uuid.UUID]entity.Station
	trains     map[uuid.UUID]entity.Train
	routes     map[uuid.UUID]entity.Route
	seats      map[uuid.UUID]entity.Seat
	bookings   map[uuid.UUID]entity.Booking
	passengers map[uuid.UUID]entity.Passenger
}

func newMemStore() *memStore {
	return &memStore{
		stations:   make(map[uuid.UUID]entity.Station),
		trains:     make(map[uuid.UUID]entity.Train),
		routes:     make(map[uuid.UUID]entity.Route),
		seats:      make(map[uuid.UUID]entity.Seat),
		bookings:   make(map[uuid.UUID]entity.Booking),
		passengers: make(map[uuid.UUID]entity.Passenger),
	}
}

type storeSnapshot struct {
	stations   map[uuid.UUID]entity.Station
	trains     map[uuid.UUID]entity.Train
	routes     map[uuid.UUID]entity.Route
	seats      map[uuid.UUID]entity.Seat
	bookings   map[uuid.UUID]entity.Booking
	passengers map[uuid.UUID]entity.Passenger
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storeSnapshot{
		stations:   copyMap(s.stations),
		trains:     copyMap(s.trains),
		routes:     copyMap(s.routes),
		seats:      copyMap(s.seats),
		bookings:   copyMap(s.bookings),
		passengers: copyMap(s.passengers),
	}
}

func (s *memStore) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stations = snap.stations
	s.trains = snap.trains
	s.routes = snap.routes
	s.seats = snap.seats
	s.bookings = snap.bookings
	s.passengers = snap.passengers
}

// fakeTxManager serializes transactions with a mutex and rolls back by
// restoring a snapshot, mirroring what the real transaction does.
type fakeTxManager struct {
	store *memStore
	repos *repository.Repository
}

func (m *fakeTxManager) Atomic(ctx context.Context, fn func(r *repository.Repository) error) error {
	m.store.txMu.Lock()
	defer m.store.txMu.Unlock()

	snap := m.store.snapshot()
	if err := fn(m.repos); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

// failingTxManager wraps the fake and injects an error after fn runs, so
// tests can prove a late failure rolls everything back.
type failingTxManager struct {
	inner *fakeTxManager
	err   error
}

func (m *failingTxManager) Atomic(ctx context.Context, fn func(r *repository.Repository) error) error {
	wrapped := func(r *repository.Repository) error {
		if err := fn(r); err != nil {
			return err
		}
		return m.err
	}
	return m.inner.Atomic(ctx, wrapped)
}

// hookedTxManager runs a callback once before the next transaction
// starts, so tests can interleave a competing write.
type hookedTxManager struct {
	inner  repository.TxManager
	before func()
}

func (m *hookedTxManager) Atomic(ctx context.Context, fn func(r *repository.Repository) error) error {
	if m.before != nil {
		before := m.before
		m.before = nil
		before()
	}
	return m.inner.Atomic(ctx, fn)
}

func newTestRepos() (*repository.Repository, *memStore) {
	store := newMemStore()
	repos := &repository.Repository{
		Station:   &fakeStationRepo{store: store},
		Train:     &fakeTrainRepo{store: store},
		Route:     &fakeRouteRepo{store: store},
		Seat:      &fakeSeatRepo{store: store},
		Booking:   &fakeBookingRepo{store: store},
		Passenger: &fakePassengerRepo{store: store},
	}
	repos.Tx = &fakeTxManager{store: store, repos: repos}
	return repos, store
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

type fakeStationRepo struct {
	store *memStore
}

func (f *fakeStationRepo) Create(ctx context.Context, station *entity.Station) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.stations[station.ID] = *station
	return nil
}

func (f *fakeStationRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Station, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if s, ok := f.store.stations[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeStationRepo) FindByCode(ctx context.Context, code string) (*entity.Station, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, s := range f.store.stations {
		if strings.EqualFold(s.Code, code) {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeStationRepo) SearchByName(ctx context.Context, name string) (*entity.Station, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var matches []entity.Station
	for _, s := range f.store.stations {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(name)) {
			matches = append(matches, s)
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return &matches[0], nil
}

func (f *fakeStationRepo) FindAll(ctx context.Context) ([]*entity.Station, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Station
	for _, s := range f.store.stations {
		station := s
		out = append(out, &station)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeStationRepo) CountAll(ctx context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.store.stations)), nil
}

func (f *fakeStationRepo) Update(ctx context.Context, station *entity.Station) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.stations[station.ID] = *station
	return nil
}

func (f *fakeStationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.stations, id)
	return nil
}

type fakeTrainRepo struct {
	store *memStore
}

func (f *fakeTrainRepo) Create(ctx context.Context, train *entity.Train) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.trains[train.ID] = *train
	return nil
}

func (f *fakeTrainRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Train, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if t, ok := f.store.trains[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (f *fakeTrainRepo) FindByNumber(ctx context.Context, trainNumber string) (*entity.Train, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, t := range f.store.trains {
		if strings.EqualFold(t.TrainNumber, trainNumber) {
			out := t
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeTrainRepo) FindAll(ctx context.Context) ([]*entity.Train, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Train
	for _, t := range f.store.trains {
		train := t
		out = append(out, &train)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TrainNumber < out[j].TrainNumber })
	return out, nil
}

func (f *fakeTrainRepo) CountAll(ctx context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.store.trains)), nil
}

func (f *fakeTrainRepo) Update(ctx context.Context, train *entity.Train) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.trains[train.ID] = *train
	return nil
}

func (f *fakeTrainRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TrainStatus) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	t := f.store.trains[id]
	t.Status = status
	f.store.trains[id] = t
	return nil
}

func (f *fakeTrainRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.trains, id)
	return nil
}

type fakeRouteRepo struct {
	store *memStore
}

func (f *fakeRouteRepo) Create(ctx context.Context, route *entity.Route) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.routes[route.ID] = *route
	return nil
}

func (f *fakeRouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if r, ok := f.store.routes[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (f *fakeRouteRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeRouteRepo) FindByStationsAndDate(ctx context.Context, fromStationID, toStationID uuid.UUID, travelDate string) ([]*entity.Route, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Route
	for _, r := range f.store.routes {
		if r.FromStationID == fromStationID && r.ToStationID == toStationID && r.TravelDate == travelDate {
			route := r
			out = append(out, &route)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DepartureTime < out[j].DepartureTime })
	return out, nil
}

func (f *fakeRouteRepo) FindFeatured(ctx context.Context, limit int) ([]*entity.Route, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Route
	for _, r := range f.store.routes {
		if r.AvailableSeats > 0 {
			route := r
			out = append(out, &route)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TravelDate != out[j].TravelDate {
			return out[i].TravelDate < out[j].TravelDate
		}
		return out[i].DepartureTime < out[j].DepartureTime
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRouteRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Route, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Route
	for _, r := range f.store.routes {
		route := r
		out = append(out, &route)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TravelDate != out[j].TravelDate {
			return out[i].TravelDate < out[j].TravelDate
		}
		return out[i].DepartureTime < out[j].DepartureTime
	})
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRouteRepo) CountAll(ctx context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.store.routes)), nil
}

func (f *fakeRouteRepo) Update(ctx context.Context, route *entity.Route) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.routes[route.ID] = *route
	return nil
}

func (f *fakeRouteRepo) DecrementAvailableSeats(ctx context.Context, id uuid.UUID, count int) (bool, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	r, ok := f.store.routes[id]
	if !ok || r.AvailableSeats < count {
		return false, nil
	}
	r.AvailableSeats -= count
	f.store.routes[id] = r
	return true, nil
}

func (f *fakeRouteRepo) IncrementAvailableSeats(ctx context.Context, id uuid.UUID, count int) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	r := f.store.routes[id]
	r.AvailableSeats += count
	f.store.routes[id] = r
	return nil
}

func (f *fakeRouteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	delete(f.store.routes, id)
	return nil
}

type fakeSeatRepo struct {
	store *memStore
}

func (f *fakeSeatRepo) Create(ctx context.Context, seat *entity.Seat) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.seats[seat.ID] = *seat
	return nil
}

func (f *fakeSeatRepo) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, seat := range seats {
		f.store.seats[seat.ID] = *seat
	}
	return nil
}

func (f *fakeSeatRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if s, ok := f.store.seats[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (f *fakeSeatRepo) findByIDs(ids []uuid.UUID) []*entity.Seat {
	var out []*entity.Seat
	for _, id := range ids {
		if s, ok := f.store.seats[id]; ok {
			seat := s
			out = append(out, &seat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

func (f *fakeSeatRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return f.findByIDs(ids), nil
}

func (f *fakeSeatRepo) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Seat, error) {
	return f.FindByIDs(ctx, ids)
}

func (f *fakeSeatRepo) FindByTrainID(ctx context.Context, trainID uuid.UUID) ([]*entity.Seat, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Seat
	for _, s := range f.store.seats {
		if s.TrainID == trainID {
			seat := s
			out = append(out, &seat)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CarNumber != out[j].CarNumber {
			return out[i].CarNumber < out[j].CarNumber
		}
		return out[i].SeatNumber < out[j].SeatNumber
	})
	return out, nil
}

func (f *fakeSeatRepo) FindAvailableByTrainID(ctx context.Context, trainID uuid.UUID) ([]*entity.Seat, error) {
	seats, err := f.FindByTrainID(ctx, trainID)
	if err != nil {
		return nil, err
	}
	var out []*entity.Seat
	for _, s := range seats {
		if s.Status == entity.SeatStatusAvailable {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSeatRepo) Update(ctx context.Context, seat *entity.Seat) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.seats[seat.ID] = *seat
	return nil
}

func (f *fakeSeatRepo) UpdateSeatsStatus(ctx context.Context, ids []uuid.UUID, status entity.SeatStatus) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, id := range ids {
		if s, ok := f.store.seats[id]; ok {
			s.Status = status
			f.store.seats[id] = s
		}
	}
	return nil
}

type fakeBookingRepo struct {
	store *memStore
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	f.store.bookings[booking.ID] = *booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if b, ok := f.store.bookings[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, b := range f.store.bookings {
		if b.Reference == reference {
			out := b
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) sortedBookings() []*entity.Booking {
	var out []*entity.Booking
	for _, b := range f.store.bookings {
		booking := b
		out = append(out, &booking)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.sortedBookings() {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := f.sortedBookings()
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) FindRecent(ctx context.Context, limit int) ([]*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	out := f.sortedBookings()
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	return int64(len(f.store.bookings)), nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context, status entity.BookingStatus) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var count int64
	for _, b := range f.store.bookings {
		if b.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var count int64
	for _, b := range f.store.bookings {
		if b.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) SumRevenue(ctx context.Context) (int64, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var total int64
	for _, b := range f.store.bookings {
		if b.Status != entity.BookingStatusCancelled {
			total += int64(b.TotalPrice)
		}
	}
	return total, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus, paymentStatus entity.PaymentStatus) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	b := f.store.bookings[id]
	b.Status = status
	b.PaymentStatus = paymentStatus
	f.store.bookings[id] = b
	return nil
}

type fakePassengerRepo struct {
	store *memStore
}

func (f *fakePassengerRepo) CreateBatch(ctx context.Context, passengers []*entity.Passenger) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, p := range passengers {
		f.store.passengers[p.ID] = *p
	}
	return nil
}

func (f *fakePassengerRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.Passenger, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Passenger
	for _, p := range f.store.passengers {
		if p.BookingID == bookingID {
			passenger := p
			out = append(out, &passenger)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}
