package supporting

import (
	"context"
	"time"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

// DataSource fornece os dados sintéticos de suporte. Os chamados históricos
// chegam sem a conversa, que é montada pelo serviço a partir do status.
type DataSource interface {
	HistoricalTickets(userID string) []domain.Ticket
	TechnicalInfo(userID string, userType string) domain.TechnicalInfo
	ActivityHistory(role domain.Role) []domain.Activity
	BotReply() string
	QueuePosition() int
	TicketNumber() int
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.TicketStatus, updatedAt time.Time) error
}

type SupportService interface {
	ListFAQ(category string) []domain.FAQItem
	GetFAQ(id string) (*domain.FAQItem, error)
	GetErrorCode(code string) (*domain.ErrorCodeInfo, error)
	CreateTicket(ctx context.Context, request domain.TicketRequest) (*domain.Ticket, error)
	GetTicket(ctx context.Context, id string) (*domain.Ticket, error)
	UpdateTicketStatus(ctx context.Context, id string, status string) (*domain.Ticket, error)
	ListTickets(ctx context.Context, userID string) ([]domain.Ticket, error)
	GetUserInfo(ctx context.Context, userID string, userType string) (*domain.UserSupportInfo, error)
	StartChat(request domain.ChatRequest) (*domain.ChatSession, error)
	EscalateToHuman(request domain.EscalationRequest) *domain.Escalation
	UrgentSupport(request domain.UrgentSupportRequest) *domain.UrgentTicket
}
