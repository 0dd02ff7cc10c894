package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]domain.Ticket
}

// NewMemoryTicketRepository guarda os chamados em memória; o conteúdo some ao reiniciar
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{
		tickets: make(map[string]domain.Ticket),
	}
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tickets[ticket.ID] = cloneTicket(*ticket)
	return nil
}

func (r *memoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return nil, nil
	}

	clone := cloneTicket(ticket)
	return &clone, nil
}

func (r *memoryTicketRepository) ListByUser(_ context.Context, userID string) ([]*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := make([]*domain.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.UserID == userID {
			clone := cloneTicket(ticket)
			tickets = append(tickets, &clone)
		}
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})

	return tickets, nil
}

func (r *memoryTicketRepository) UpdateStatus(_ context.Context, id string, from, to domain.TicketStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ticket, ok := r.tickets[id]
	if !ok {
		return ErrNotFound
	}
	if ticket.Status != from || !from.CanTransitionTo(to) {
		return domain.ErrTicketStatusConflict
	}

	ticket.Status = to
	ticket.UpdatedAt = updatedAt
	r.tickets[id] = ticket

	return nil
}

func cloneTicket(t domain.Ticket) domain.Ticket {
	t.Attachments = append([]string{}, t.Attachments...)
	t.Responses = append([]domain.TicketResponse{}, t.Responses...)
	return t
}
