package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/atelier/internal/domain/errors"
	"github.com/polkiloo/atelier/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// UpsertStaff stores login as staff, overwriting any existing account.
func (s *UserRepositoryStub) UpsertStaff(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		user.PasswordHash = passwordHash
		user.Role = model.RoleStaff
		return user, nil
	}
	return s.Create(ctx, login, passwordHash, model.RoleStaff)
}

func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// OrderRepositoryStub keeps orders in memory. Line items are created with
// awaiting_intake unless LeaveStatusEmpty is set.
type OrderRepositoryStub struct {
	CreateFn         func(context.Context, int64, []model.CheckoutItem) (*model.Order, error)
	GetByIDFn        func(context.Context, int64) (*model.Order, error)
	ListFn           func(context.Context, int64) ([]model.Order, error)
	LeaveStatusEmpty bool

	mu       sync.Mutex
	Orders   map[int64]*model.Order
	nextID   int64
	nextItem int64
}

// NewOrderRepositoryStub constructs an empty order store.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[int64]*model.Order)}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, customerID int64, items []model.CheckoutItem) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerID, items)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Orders == nil {
		s.Orders = make(map[int64]*model.Order)
	}
	s.nextID++
	order := &model.Order{ID: s.nextID, CustomerID: customerID, CreatedAt: time.Unix(0, 0)}
	for _, it := range items {
		s.nextItem++
		li := model.LineItem{ID: s.nextItem, OrderID: order.ID, ProductName: it.ProductName, Quantity: it.Quantity}
		if !s.LeaveStatusEmpty {
			li.Status = model.ItemStatusAwaitingIntake
		}
		order.Items = append(order.Items, li)
	}
	s.Orders[order.ID] = order
	cp := *order
	return &cp, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	cp := *order
	return &cp, nil
}

func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, customerID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.Orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// Attach stores appointment metadata on an order, mirroring the storage layer.
func (s *OrderRepositoryStub) Attach(orderID int64, appt model.OrderAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if order.Appointment != nil {
		return domainErrors.ErrAlreadyExists
	}
	order.Appointment = &appt
	return nil
}

// AppointmentRepositoryStub enforces (date, slot) uniqueness in memory and
// records the events written alongside each appointment.
type AppointmentRepositoryStub struct {
	ListBookedFn func(context.Context, string) ([]model.Slot, error)
	CreateFn     func(context.Context, *model.Appointment, model.OutboxEvent) error
	Orders       *OrderRepositoryStub

	mu           sync.Mutex
	Appointments []model.Appointment
	Events       []model.OutboxEvent
	ListCalls    int
}

func (s *AppointmentRepositoryStub) ListBookedSlots(ctx context.Context, date string) ([]model.Slot, error) {
	s.mu.Lock()
	s.ListCalls++
	s.mu.Unlock()
	if s.ListBookedFn != nil {
		return s.ListBookedFn(ctx, date)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Slot
	for _, a := range s.Appointments {
		if a.Date == date && a.Status == model.AppointmentStatusBooked {
			out = append(out, a.Slot)
		}
	}
	return out, nil
}

func (s *AppointmentRepositoryStub) Create(ctx context.Context, appt *model.Appointment, event model.OutboxEvent) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, appt, event)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.Appointments {
		if a.Date == appt.Date && a.Slot == appt.Slot && a.Status == model.AppointmentStatusBooked {
			return domainErrors.ErrSlotUnavailable
		}
	}
	if s.Orders != nil && appt.OrderID != nil {
		if err := s.Orders.Attach(*appt.OrderID, model.OrderAppointment{ID: appt.ID, Date: appt.Date, Slot: appt.Slot}); err != nil {
			return err
		}
	}
	s.Appointments = append(s.Appointments, *appt)
	s.Events = append(s.Events, event)
	return nil
}

func (s *AppointmentRepositoryStub) ListByDate(ctx context.Context, date string) ([]model.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Appointment
	for _, a := range s.Appointments {
		if a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

// ItemStatusRepositoryStub stores statuses for a fixed set of known items.
type ItemStatusRepositoryStub struct {
	SetErr error

	mu       sync.Mutex
	Statuses map[int64]model.ItemStatus
	Events   []model.OutboxEvent
}

// NewItemStatusRepositoryStub registers ids as existing items without status.
func NewItemStatusRepositoryStub(ids ...int64) *ItemStatusRepositoryStub {
	s := &ItemStatusRepositoryStub{Statuses: make(map[int64]model.ItemStatus)}
	for _, id := range ids {
		s.Statuses[id] = ""
	}
	return s
}

func (s *ItemStatusRepositoryStub) Initialize(ctx context.Context, itemID int64, status model.ItemStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, ok := s.Statuses[itemID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	if current == "" {
		s.Statuses[itemID] = status
	}
	return nil
}

func (s *ItemStatusRepositoryStub) Set(ctx context.Context, itemID int64, status model.ItemStatus, event model.OutboxEvent) (bool, error) {
	if s.SetErr != nil {
		return false, s.SetErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Statuses[itemID]; !ok {
		return false, nil
	}
	s.Statuses[itemID] = status
	s.Events = append(s.Events, event)
	return true, nil
}

func (s *ItemStatusRepositoryStub) Get(ctx context.Context, itemID int64) (model.ItemStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status, ok := s.Statuses[itemID]
	if !ok {
		return "", domainErrors.ErrNotFound
	}
	return status, nil
}

// OutboxRepositoryStub hands out pending events and records publications.
type OutboxRepositoryStub struct {
	Pending  []model.OutboxEvent
	ClaimErr error

	mu        sync.Mutex
	Leases    []time.Duration
	Published []int64
}

func (s *OutboxRepositoryStub) Claim(ctx context.Context, limit int, lease time.Duration) ([]model.OutboxEvent, error) {
	if s.ClaimErr != nil {
		return nil, s.ClaimErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Leases = append(s.Leases, lease)
	if limit > len(s.Pending) {
		limit = len(s.Pending)
	}
	batch := s.Pending[:limit]
	s.Pending = s.Pending[limit:]
	return batch, nil
}

func (s *OutboxRepositoryStub) MarkPublished(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Published = append(s.Published, id)
	return nil
}

// HealthCheckerStub reports a configurable readiness error.
type HealthCheckerStub struct {
	Err error
}

func (h HealthCheckerStub) HealthCheck(context.Context) error {
	return h.Err
}
