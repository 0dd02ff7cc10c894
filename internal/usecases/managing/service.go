package managing

import (
	"math"
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
	highPriorityWindow  = 24 * time.Hour
	reevaluationLeadDay = 7
	justificationFloor  = 0.5

	defaultReevaluationReason = "Reavaliação solicitada pelo Mentor PDV"
)

var contestMessages = map[string]string{
	domain.ContestApprove:  "Contestação aprovada. Responsabilidade removida.",
	domain.ContestReject:   "Contestação rejeitada. Responsabilidade mantida.",
	domain.ContestReassign: "Responsabilidade transferida para outro promotor.",
}

type Service struct {
	source  DataSource
	catalog *referencedata.Catalog
	now     func() time.Time
}

func NewService(source DataSource, catalog *referencedata.Catalog) ManagerService {
	return &Service{
		source:  source,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *Service) GetPromoterPerformance() []domain.PromoterPerformance {
	performance := make([]domain.PromoterPerformance, 0, len(s.catalog.Promoters))
	for _, promoter := range s.catalog.Promoters {
		performance = append(performance, s.source.PromoterPerformance(promoter))
	}
	return performance
}

// GetPendingStores calcula prazo e prioridade de cada visita pendente e ordena
// pela urgência, preservando a ordem de origem entre empates.
func (s *Service) GetPendingStores() []domain.PendingStore {
	now := s.now()
	visits := s.source.PendingVisits()

	pending := make([]domain.PendingStore, 0, len(visits))
	for _, visit := range visits {
		remaining := visit.Deadline.Sub(now)

		priority := domain.PriorityMedium
		if remaining < highPriorityWindow {
			priority = domain.PriorityHigh
		}

		pending = append(pending, domain.PendingStore{
			Store:          visit.Store,
			Promoter:       visit.Promoter,
			LastVisit:      visit.LastVisit.Format(utils.DateLayout),
			DaysSinceVisit: int(now.Sub(visit.LastVisit).Hours() / 24),
			Deadline:       visit.Deadline.Format(utils.DateTimeLayout),
			HoursRemaining: int(remaining.Hours()),
			Priority:       priority,
			Reason:         visit.Reason,
		})
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].HoursRemaining < pending[j].HoursRemaining
	})

	return pending
}

func (s *Service) GetNotifications(managerID string) []domain.Notification {
	log.L.WithField("manager_id", managerID).Debug("Montando notificações do gestor")

	notifications := s.source.ManagerNotifications()
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications
}

// GetPriceVariations deriva variação absoluta e percentual. A justificativa só
// é mantida quando a variação passa de R$ 0,50.
func (s *Service) GetPriceVariations() []domain.PriceVariation {
	variations := s.source.PriceVariations()

	for i := range variations {
		v := &variations[i]
		diff := v.NewPrice - v.OldPrice

		v.Variation = utils.RoundWithTwoDecimalPlace(diff)
		if v.OldPrice != 0 {
			v.VariationPercentage = utils.RoundWithOneDecimalPlace(diff / v.OldPrice * 100)
		}
		v.DateLabel = v.Date.Format(utils.DateTimeLayout)

		if math.Abs(diff) <= justificationFloor {
			v.Justification = nil
		}
	}

	sort.SliceStable(variations, func(i, j int) bool {
		return variations[i].Date.After(variations[j].Date)
	})

	return variations
}

func (s *Service) AssignResponsibility(request domain.AssignmentRequest) *domain.Assignment {
	now := s.now()

	effective := request.EffectiveDate
	if effective == "" {
		effective = now.Format(utils.DateLayout)
	}

	return &domain.Assignment{
		ID:            s.source.RecordID(),
		PromoterID:    request.PromoterID,
		Store:         request.Store,
		ProductSKU:    request.ProductSKU,
		AssignedBy:    request.ManagerID,
		AssignedAt:    now,
		EffectiveDate: effective,
	}
}

func (s *Service) HandleContest(request domain.ContestDecisionRequest) (*domain.ContestDecision, error) {
	message, ok := contestMessages[request.Action]
	if !ok {
		return nil, domain.NewError(ErrInvalidContestAction, apiErrors.ErrInvalidRequest,
			"Ação inválida. Use approve, reject ou reassign")
	}

	decision := &domain.ContestDecision{
		ContestID:   request.ContestID,
		Action:      request.Action,
		ProcessedBy: request.ManagerID,
		ProcessedAt: s.now(),
		Message:     message,
	}

	switch request.Action {
	case domain.ContestReject:
		if request.RejectionReason == "" {
			return nil, domain.NewError(ErrRejectionReasonRequired, apiErrors.ErrMissingRequiredData,
				"Motivo da rejeição é obrigatório")
		}
		decision.Reason = request.RejectionReason
	case domain.ContestReassign:
		if request.NewPromoterID == nil {
			return nil, domain.NewError(ErrNewPromoterRequired, apiErrors.ErrMissingRequiredData,
				"Novo promotor é obrigatório para a transferência")
		}
		decision.NewPromoterID = request.NewPromoterID
	}

	log.L.WithFields(log.Fields{
		"action":     request.Action,
		"contest_id": request.ContestID,
	}).Info("Contestação processada")

	return decision, nil
}

func (s *Service) GetPromoterProfile(promoterID string) (*domain.PromoterProfile, error) {
	id, err := strconv.Atoi(promoterID)
	if err != nil {
		return nil, domain.NewError(ErrInvalidPromoterID, apiErrors.ErrInvalidFormat, "ID de promotor inválido")
	}

	promoter, found := s.catalog.PromoterByID(id)
	if !found {
		return nil, domain.NewError(ErrPromoterNotFound, apiErrors.ErrResourceNotFound, "Promotor não encontrado")
	}

	now := s.now()
	profile := s.source.PromoterProfile(promoter)
	profile.Promoter = promoter
	profile.ProductsAssigned = s.catalog.Manager.ProfileProducts
	profile.RecentActivity = []domain.ProfileActivity{
		{Date: now.Add(-2 * time.Hour).Format(utils.DateTimeLayout), Action: "Visita concluída - Supermercado Popular"},
		{Date: now.Add(-5 * time.Hour).Format(utils.DateTimeLayout), Action: "Check-in realizado - Mercado Central"},
	}

	return &profile, nil
}

func (s *Service) ScheduleReevaluation(request domain.ReevaluationRequest) *domain.Reevaluation {
	now := s.now()

	reason := request.Reason
	if reason == "" {
		reason = defaultReevaluationReason
	}
	priority := request.Priority
	if priority == "" {
		priority = domain.PriorityNormal
	}

	return &domain.Reevaluation{
		ID:            s.source.RecordID(),
		Store:         request.Store,
		PromoterID:    request.PromoterID,
		ScheduledBy:   request.ManagerID,
		ScheduledDate: now.AddDate(0, 0, reevaluationLeadDay).Format(utils.DateLayout),
		Reason:        reason,
		Priority:      priority,
		CreatedAt:     now,
	}
}

func (s *Service) GetProductHistory() []domain.ProductHistory {
	return s.catalog.Manager.ProductHistory
}

func (s *Service) UpdateProduct(request domain.ProductUpdateRequest) *domain.ProductUpdate {
	return &domain.ProductUpdate{
		ProductSKU:    request.ProductSKU,
		Store:         request.Store,
		UpdatedFields: request.UpdatedFields,
		UpdatedBy:     request.ManagerID,
		UpdatedAt:     s.now(),
	}
}
