package controllers_test

import (
	"context"
	"sync"
	"time"

	"smart-restaurant/models"
	"smart-restaurant/store"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo stores. They mirror the real
// implementations' behavior: IDs and timestamps are assigned on insert,
// sentinel errors come back for missing ids and duplicate slots.

type stubUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

func newStubUserStore() *stubUserStore { return &stubUserStore{} }

func (s *stubUserStore) Create(ctx context.Context, user *models.User) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return "", store.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	cp := *user
	s.users = append(s.users, &cp)
	return user.ID.Hex(), nil
}

func (s *stubUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *stubUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID.Hex() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

type stubMenuStore struct {
	mu    sync.Mutex
	items []models.MenuItem
}

func newStubMenuStore() *stubMenuStore { return &stubMenuStore{} }

func (s *stubMenuStore) List(ctx context.Context) ([]models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubMenuStore) Insert(ctx context.Context, item *models.MenuItem) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = time.Now().UTC()
	s.items = append(s.items, *item)
	return item.ID.Hex(), nil
}

func (s *stubMenuStore) Update(ctx context.Context, id string, upd store.MenuUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() != id {
			continue
		}
		if upd.Name != nil {
			s.items[i].Name = *upd.Name
		}
		if upd.Category != nil {
			s.items[i].Category = *upd.Category
		}
		if upd.Price != nil {
			s.items[i].Price = *upd.Price
		}
		if upd.Description != nil {
			s.items[i].Description = *upd.Description
		}
		return nil
	}
	return store.ErrNotFound
}

func (s *stubMenuStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID.Hex() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type stubOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func newStubOrderStore() *stubOrderStore { return &stubOrderStore{} }

func (s *stubOrderStore) Insert(ctx context.Context, order *models.Order) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now().UTC()
	s.orders = append(s.orders, *order)
	return order.ID.Hex(), nil
}

func (s *stubOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// newest first, matching the Mongo sort
	out := make([]models.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	return out, nil
}

func (s *stubOrderStore) UpdateStatus(ctx context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID.Hex() == id {
			s.orders[i].Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *stubOrderStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID.Hex() == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type stubReservationStore struct {
	mu           sync.Mutex
	reservations []models.Reservation
}

func newStubReservationStore() *stubReservationStore { return &stubReservationStore{} }

func (s *stubReservationStore) SlotTaken(ctx context.Context, date, timeSlot, table string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reservations {
		if r.Date == date && r.Time == timeSlot && r.Table == table {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubReservationStore) Insert(ctx context.Context, r *models.Reservation) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.reservations {
		if existing.Date == r.Date && existing.Time == r.Time && existing.Table == r.Table {
			return "", store.ErrDuplicate
		}
	}
	r.ID = primitive.NewObjectID()
	r.CreatedAt = time.Now().UTC()
	s.reservations = append(s.reservations, *r)
	return r.ID.Hex(), nil
}

func (s *stubReservationStore) ListAll(ctx context.Context) ([]models.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, 0, len(s.reservations))
	for i := len(s.reservations) - 1; i >= 0; i-- {
		out = append(out, s.reservations[i])
	}
	return out, nil
}

func (s *stubReservationStore) UpdateStatus(ctx context.Context, id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID.Hex() == id {
			s.reservations[i].Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *stubReservationStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID.Hex() == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *stubReservationStore) countSlot(date, timeSlot, table string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.reservations {
		if r.Date == date && r.Time == timeSlot && r.Table == table {
			n++
		}
	}
	return n
}

type stubEventStore struct {
	mu     sync.Mutex
	events []models.Event
}

func newStubEventStore() *stubEventStore { return &stubEventStore{} }

func (s *stubEventStore) List(ctx context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *stubEventStore) Insert(ctx context.Context, event *models.Event) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now().UTC()
	s.events = append(s.events, *event)
	return event.ID.Hex(), nil
}

func (s *stubEventStore) Update(ctx context.Context, id string, upd store.EventUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID.Hex() != id {
			continue
		}
		if upd.Title != nil {
			s.events[i].Title = *upd.Title
		}
		if upd.Description != nil {
			s.events[i].Description = *upd.Description
		}
		if upd.Date != nil {
			s.events[i].Date = *upd.Date
		}
		return nil
	}
	return store.ErrNotFound
}

func (s *stubEventStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID.Hex() == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}
