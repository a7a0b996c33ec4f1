package usecasetest

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Notifier records notification calls
type Notifier struct {
	mu               sync.Mutex
	Created          []string
	Cancelled        []string
	Approved         []string
	Assigned         []string
	AccessRequests   []string
	AccessRecipients [][]string
}

func (n *Notifier) ReservationCreated(_ context.Context, r *domain.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Created = append(n.Created, r.ID)
}

func (n *Notifier) ReservationCancelled(_ context.Context, r *domain.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Cancelled = append(n.Cancelled, r.ID)
}

func (n *Notifier) ReservationApproved(_ context.Context, r *domain.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Approved = append(n.Approved, r.ID)
}

func (n *Notifier) ConciergeAssigned(_ context.Context, r *domain.Reservation, c *domain.Concierge) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Assigned = append(n.Assigned, r.ID+"/"+c.Code)
}

func (n *Notifier) AccessRequested(_ context.Context, u *domain.User, recipients []string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.AccessRequests = append(n.AccessRequests, u.Email)
	n.AccessRecipients = append(n.AccessRecipients, recipients)
}
