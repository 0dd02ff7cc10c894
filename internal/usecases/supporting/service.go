package supporting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"github.com/vfg2006/tradelite-api/pkg/utils"
)

const (
	ticketPrefix       = "TL-"
	chatPrefix         = "chat_"
	defaultPriority    = "Medium"
	activityHistoryMax = 10

	acknowledgmentMessage = "Recebemos seu chamado e estamos analisando. Retornaremos em breve."
	resolutionMessage     = "Problema resolvido. Por favor, teste e confirme se está funcionando."
	escalationMessage     = "Conectando você com um atendente humano. Tempo estimado: 3-5 minutos."
	urgentMessage         = "Solicitação de atendimento urgente registrada. Um especialista entrará em contato em até 15 minutos."
)

type Service struct {
	source  DataSource
	tickets TicketRepository
	catalog *referencedata.Catalog
	now     func() time.Time
}

func NewService(source DataSource, tickets TicketRepository, catalog *referencedata.Catalog) SupportService {
	return &Service{
		source:  source,
		tickets: tickets,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *Service) ListFAQ(category string) []domain.FAQItem {
	if category == "" {
		return s.catalog.Support.FAQ
	}

	filtered := make([]domain.FAQItem, 0)
	for _, item := range s.catalog.Support.FAQ {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func (s *Service) GetFAQ(id string) (*domain.FAQItem, error) {
	faqID, err := strconv.Atoi(id)
	if err == nil {
		for _, item := range s.catalog.Support.FAQ {
			if item.ID == faqID {
				found := item
				return &found, nil
			}
		}
	}

	return nil, domain.NewError(ErrFAQNotFound, apiErrors.ErrResourceNotFound, "Item de FAQ não encontrado")
}

func (s *Service) GetErrorCode(code string) (*domain.ErrorCodeInfo, error) {
	info, found := s.catalog.Support.ErrorCodes[code]
	if !found {
		return nil, domain.NewError(ErrErrorCodeNotFound, apiErrors.ErrResourceNotFound, "Código de erro não encontrado")
	}
	return &info, nil
}

func (s *Service) CreateTicket(ctx context.Context, request domain.TicketRequest) (*domain.Ticket, error) {
	id, err := utils.GeneratePrefixedID(ticketPrefix)
	if err != nil {
		return nil, domain.NewError(fmt.Errorf("%w: %v", ErrGenerateID, err), apiErrors.ErrInternalServer, "Erro ao criar chamado")
	}

	priority := request.Priority
	if priority == "" {
		priority = defaultPriority
	}
	attachments := request.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	now := s.now()
	ticket := &domain.Ticket{
		ID:          id,
		UserID:      request.UserID,
		Title:       request.Title,
		Category:    request.Category,
		Description: request.Description,
		Priority:    priority,
		Status:      domain.TicketOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
		Attachments: attachments,
		Responses:   []domain.TicketResponse{},
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, domain.NewError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar chamado")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ticket_id": ticket.ID,
		"user_id":   ticket.UserID,
	}).Info("Chamado de suporte criado")

	return ticket, nil
}

func (s *Service) GetTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.findTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	withThread := WithResponseThread(*ticket)
	return &withThread, nil
}

func (s *Service) findTicket(ctx context.Context, id string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		return nil, domain.NewError(err, apiErrors.ErrDatabaseOperation, "Erro ao buscar chamado")
	}
	if ticket == nil {
		return nil, domain.NewError(ErrTicketNotFound, apiErrors.ErrResourceNotFound, "Chamado não encontrado")
	}
	return ticket, nil
}

// UpdateTicketStatus só avança no ciclo Open → In Progress → Resolved → Closed.
// Repetir o status atual não altera o chamado.
func (s *Service) UpdateTicketStatus(ctx context.Context, id string, status string) (*domain.Ticket, error) {
	next := domain.TicketStatus(status)
	if !next.Valid() {
		return nil, domain.NewError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, "Status de chamado inválido")
	}

	ticket, err := s.findTicket(ctx, id)
	if err != nil {
		return nil, err
	}

	if ticket.Status == next {
		withThread := WithResponseThread(*ticket)
		return &withThread, nil
	}
	if !ticket.Status.CanTransitionTo(next) {
		return nil, domain.NewError(ErrStatusRegression, apiErrors.ErrInvalidTransition,
			fmt.Sprintf("Não é possível mudar o chamado de %s para %s", ticket.Status, next))
	}

	now := s.now()
	if err := s.tickets.UpdateStatus(ctx, id, ticket.Status, next, now); err != nil {
		if errors.Is(err, domain.ErrTicketStatusConflict) {
			return nil, domain.NewError(err, apiErrors.ErrInvalidTransition, "Chamado alterado por outra requisição, tente novamente")
		}
		return nil, domain.NewError(err, apiErrors.ErrDatabaseOperation, "Erro ao atualizar chamado")
	}

	ticket.Status = next
	ticket.UpdatedAt = now

	withThread := WithResponseThread(*ticket)
	return &withThread, nil
}

// ListTickets junta os chamados persistidos do usuário ao histórico sintético,
// do mais recente para o mais antigo.
func (s *Service) ListTickets(ctx context.Context, userID string) ([]domain.Ticket, error) {
	persisted, err := s.tickets.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.NewError(err, apiErrors.ErrDatabaseOperation, "Erro ao listar chamados")
	}

	historical := s.source.HistoricalTickets(userID)

	tickets := make([]domain.Ticket, 0, len(persisted)+len(historical))
	for _, ticket := range persisted {
		tickets = append(tickets, WithResponseThread(*ticket))
	}
	for _, ticket := range historical {
		tickets = append(tickets, WithResponseThread(ticket))
	}

	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].CreatedAt.After(tickets[j].CreatedAt)
	})

	return tickets, nil
}

// WithResponseThread monta a conversa do chamado: nenhuma resposta enquanto
// aberto, a confirmação de recebimento depois disso e a mensagem de solução
// quando resolvido ou fechado.
func WithResponseThread(ticket domain.Ticket) domain.Ticket {
	responses := []domain.TicketResponse{}

	if ticket.Status != domain.TicketOpen {
		responses = append(responses, domain.TicketResponse{
			From:      domain.SupportAgent,
			Message:   acknowledgmentMessage,
			Timestamp: ticket.CreatedAt.Add(time.Hour),
		})
	}
	if ticket.Status == domain.TicketResolved || ticket.Status == domain.TicketClosed {
		responses = append(responses, domain.TicketResponse{
			From:      domain.SupportAgent,
			Message:   resolutionMessage,
			Timestamp: ticket.UpdatedAt,
		})
	}

	if ticket.Attachments == nil {
		ticket.Attachments = []string{}
	}
	ticket.Responses = responses
	return ticket
}

func (s *Service) GetUserInfo(ctx context.Context, userID string, userType string) (*domain.UserSupportInfo, error) {
	role := domain.RolePromoter
	if userType != "" {
		parsed, ok := domain.ParseRole(userType)
		if !ok {
			return nil, domain.NewError(ErrInvalidUserType, apiErrors.ErrInvalidRequest, "Tipo de usuário inválido")
		}
		role = parsed
	}

	tickets, err := s.ListTickets(ctx, userID)
	if err != nil {
		return nil, err
	}

	activities := s.source.ActivityHistory(role)
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Timestamp.After(activities[j].Timestamp)
	})
	if len(activities) > activityHistoryMax {
		activities = activities[:activityHistoryMax]
	}
	if activities == nil {
		activities = []domain.Activity{}
	}

	return &domain.UserSupportInfo{
		UserInfo:        s.source.TechnicalInfo(userID, string(role)),
		ActivityHistory: activities,
		TicketsHistory:  tickets,
	}, nil
}

func (s *Service) StartChat(request domain.ChatRequest) (*domain.ChatSession, error) {
	sessionID, err := utils.GeneratePrefixedID(chatPrefix)
	if err != nil {
		return nil, domain.NewError(fmt.Errorf("%w: %v", ErrGenerateID, err), apiErrors.ErrInternalServer, "Erro ao iniciar o chat")
	}

	now := s.now()
	return &domain.ChatSession{
		SessionID: sessionID,
		UserID:    request.UserID,
		StartedAt: now,
		Status:    "active",
		Messages: []domain.ChatMessage{
			{From: "user", Message: request.Message, Timestamp: now},
			{From: "bot", Message: s.source.BotReply(), Timestamp: now.Add(2 * time.Second)},
		},
	}, nil
}

func (s *Service) EscalateToHuman(request domain.EscalationRequest) *domain.Escalation {
	return &domain.Escalation{
		SessionID:     request.SessionID,
		Message:       escalationMessage,
		QueuePosition: s.source.QueuePosition(),
	}
}

func (s *Service) UrgentSupport(request domain.UrgentSupportRequest) *domain.UrgentTicket {
	ticket := &domain.UrgentTicket{
		TicketID:          fmt.Sprintf("URG%03d", s.source.TicketNumber()),
		Message:           urgentMessage,
		EstimatedResponse: "15 minutos",
	}

	log.L.WithFields(log.Fields{
		"ticket_id": ticket.TicketID,
		"user_id":   request.UserID,
	}).Warn("Atendimento urgente solicitado")

	return ticket
}
