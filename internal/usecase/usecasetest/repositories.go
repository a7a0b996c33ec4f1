package usecasetest

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	conciergeRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/concierge"
	reservationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/reservation"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	userRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/user"
)

// Salons in-memory salon repository
type Salons struct {
	mu        sync.Mutex
	m         map[string]*domain.Salon
	ListCalls int
}

func NewSalons(salons ...*domain.Salon) *Salons {
	s := &Salons{m: map[string]*domain.Salon{}}
	for _, salon := range salons {
		s.m[salon.ID] = salon
	}
	return s
}

func (s *Salons) List(context.Context) ([]*domain.Salon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ListCalls++
	out := make([]*domain.Salon, 0, len(s.m))
	for _, salon := range s.m {
		cp := *salon
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Salons) GetByID(_ context.Context, id string) (*domain.Salon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	salon, ok := s.m[id]
	if !ok {
		return nil, salonRepo.ErrSalonNotFound
	}
	cp := *salon
	return &cp, nil
}

func (s *Salons) SetEnabled(_ context.Context, id string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	salon, ok := s.m[id]
	if !ok {
		return salonRepo.ErrSalonNotFound
	}
	salon.Enabled = enabled
	return nil
}

// Reservations in-memory reservation repository with the same guards as the SQL one
type Reservations struct {
	mu    sync.Mutex
	m     map[string]*domain.Reservation
	seq   int64
	Locks []string
	Now   func() time.Time
}

func NewReservations(rows ...*domain.Reservation) *Reservations {
	r := &Reservations{m: map[string]*domain.Reservation{}, Now: time.Now}
	for _, row := range rows {
		r.m[row.ID] = row
	}
	return r
}

// Get stored row (test inspection)
func (r *Reservations) Get(id string) *domain.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.m[id]
	if !ok {
		return nil
	}
	cp := *row
	return &cp
}

// Count stored rows
func (r *Reservations) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.m)
}

func (r *Reservations) NextID(context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return domain.FormatReservationID(100 + r.seq), nil
}

func (r *Reservations) LockSalonDate(_ context.Context, salonID string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Locks = append(r.Locks, reservationRepo.SalonDateLockKey(salonID, date))
	return nil
}

func (r *Reservations) LockConciergeDate(_ context.Context, code string, date time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Locks = append(r.Locks, reservationRepo.ConciergeDateLockKey(code, date))
	return nil
}

func (r *Reservations) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.m[res.ID]; dup {
		return nil, fmt.Errorf("%w: duplicate id %s", reservationRepo.ErrExecQuery, res.ID)
	}
	cp := *res
	cp.CreatedAt = r.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.m[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *Reservations) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	return r.find(func(row *domain.Reservation) bool { return row.ID == id })
}

func (r *Reservations) GetByToken(_ context.Context, token string) (*domain.Reservation, error) {
	return r.find(func(row *domain.Reservation) bool { return row.Token == token })
}

func (r *Reservations) find(match func(*domain.Reservation) bool) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.m {
		if match(row) {
			cp := *row
			return &cp, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (r *Reservations) ListBySalonDate(_ context.Context, salonID string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.filter(func(row *domain.Reservation) bool {
		return row.SalonID == salonID && sameDay(row.Date, date) && statusIn(row.Status, statuses)
	}), nil
}

func (r *Reservations) ListByConciergeDate(_ context.Context, code string, date time.Time, statuses []domain.ReservationStatus) ([]*domain.Reservation, error) {
	return r.filter(func(row *domain.Reservation) bool {
		return row.ConciergeCode == code && sameDay(row.Date, date) && statusIn(row.Status, statuses)
	}), nil
}

func (r *Reservations) List(_ context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error) {
	return r.filter(func(row *domain.Reservation) bool {
		day := row.Date.Format(domain.DateFormat)
		if f.From != nil && day < f.From.Format(domain.DateFormat) {
			return false
		}
		if f.To != nil && day > f.To.Format(domain.DateFormat) {
			return false
		}
		if f.TenantID != nil && !domain.InScope(*f.TenantID, row.TenantID) {
			return false
		}
		if f.RequesterEmail != nil && strings.ToLower(row.RequesterEmail) != *f.RequesterEmail {
			return false
		}
		if f.SalonID != nil && row.SalonID != *f.SalonID {
			return false
		}
		if f.ConciergeCode != nil && row.ConciergeCode != *f.ConciergeCode {
			return false
		}
		return len(f.Statuses) == 0 || statusIn(row.Status, f.Statuses)
	}), nil
}

func (r *Reservations) filter(match func(*domain.Reservation) bool) []*domain.Reservation {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Reservation, 0)
	for _, row := range r.m {
		if match(row) {
			cp := *row
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].StartTime.Minutes() < out[j].StartTime.Minutes()
	})
	return out
}

func (r *Reservations) Cancel(_ context.Context, id, cancelledBy, reason string) error {
	return r.update(id, func(row *domain.Reservation) bool { return !row.IsCancelled() }, func(row *domain.Reservation) {
		row.Status = domain.StatusCancelled
		row.CancelledBy = cancelledBy
		row.CancellationReason = reason
	})
}

func (r *Reservations) Approve(_ context.Context, id string) error {
	return r.update(id, (*domain.Reservation).IsPending, func(row *domain.Reservation) {
		row.Status = domain.StatusApproved
	})
}

func (r *Reservations) AssignConcierge(_ context.Context, id, code string) error {
	return r.update(id, (*domain.Reservation).IsApproved, func(row *domain.Reservation) {
		row.ConciergeCode = code
	})
}

func (r *Reservations) MarkConciergeNotified(_ context.Context, id string) error {
	return r.update(id, nil, func(row *domain.Reservation) {
		row.ConciergeNotified = true
	})
}

func (r *Reservations) update(id string, guard func(*domain.Reservation) bool, apply func(*domain.Reservation)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.m[id]
	if !ok {
		if guard == nil {
			return reservationRepo.ErrReservationNotFound
		}
		return reservationRepo.ErrStaleState
	}
	if guard != nil && !guard(row) {
		return reservationRepo.ErrStaleState
	}
	apply(row)
	row.UpdatedAt = r.Now()
	return nil
}

// Concierges in-memory concierge repository
type Concierges struct {
	mu  sync.Mutex
	m   map[string]*domain.Concierge
	seq int64
}

func NewConcierges(cs ...*domain.Concierge) *Concierges {
	c := &Concierges{m: map[string]*domain.Concierge{}}
	for _, x := range cs {
		c.m[x.Code] = x
	}
	c.seq = int64(len(cs))
	return c
}

func (c *Concierges) List(context.Context) ([]*domain.Concierge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.Concierge, 0, len(c.m))
	for _, x := range c.m {
		cp := *x
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (c *Concierges) GetByCode(_ context.Context, code string) (*domain.Concierge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	x, ok := c.m[code]
	if !ok {
		return nil, conciergeRepo.ErrConciergeNotFound
	}
	cp := *x
	return &cp, nil
}

func (c *Concierges) Create(_ context.Context, x *domain.Concierge) (*domain.Concierge, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	cp := *x
	cp.Code = domain.FormatConciergeCode(c.seq)
	cp.Active = true
	c.m[cp.Code] = &cp
	out := cp
	return &out, nil
}

func (c *Concierges) Update(_ context.Context, x *domain.Concierge) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[x.Code]; !ok {
		return conciergeRepo.ErrConciergeNotFound
	}
	cp := *x
	c.m[x.Code] = &cp
	return nil
}

// Users in-memory user repository
type Users struct {
	mu sync.Mutex
	m  map[string]*domain.User
}

func NewUsers(us ...*domain.User) *Users {
	u := &Users{m: map[string]*domain.User{}}
	for _, x := range us {
		x.Exists = true
		u.m[strings.ToLower(x.Email)] = x
	}
	return u
}

func (u *Users) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	x, ok := u.m[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	cp := *x
	return &cp, nil
}

func (u *Users) List(context.Context) ([]*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]*domain.User, 0, len(u.m))
	for _, x := range u.m {
		cp := *x
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (u *Users) Upsert(_ context.Context, x *domain.User) (*domain.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	cp := *x
	cp.Email = strings.ToLower(strings.TrimSpace(cp.Email))
	cp.Exists = true
	u.m[cp.Email] = &cp
	out := cp
	return &out, nil
}

func sameDay(a, b time.Time) bool {
	return a.Format(domain.DateFormat) == b.Format(domain.DateFormat)
}

func statusIn(s domain.ReservationStatus, set []domain.ReservationStatus) bool {
	if len(set) == 0 {
		return true
	}
	for _, x := range set {
		if s == x {
			return true
		}
	}
	return false
}
