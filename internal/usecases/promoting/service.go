package promoting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"github.com/vfg2006/tradelite-api/pkg/utils"
)

const (
	visitHistorySize    = 15
	ruptureHistorySize  = 10
	feedbackHistorySize = 8

	expiryAlertDays = 10
	expiryHighDays  = 3
)

var priceAlertThreshold = decimal.NewFromInt(1)

type Service struct {
	source    DataSource
	prices    PriceRecordRepository
	publisher AlertPublisher
	catalog   *referencedata.Catalog
	now       func() time.Time
}

func NewService(source DataSource, prices PriceRecordRepository, publisher AlertPublisher, catalog *referencedata.Catalog) PromoterService {
	return &Service{
		source:    source,
		prices:    prices,
		publisher: publisher,
		catalog:   catalog,
		now:       time.Now,
	}
}

func (s *Service) GetVisitHistory(promoterID string) []domain.VisitRecord {
	visits := s.source.VisitHistory(visitHistorySize)

	for i := range visits {
		visits[i].Date = visits[i].VisitedAt.Format(utils.DateLayout)
		visits[i].Time = visits[i].VisitedAt.Format(utils.TimeLayout)
	}
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].VisitedAt.After(visits[j].VisitedAt)
	})

	return visits
}

// GetWeeklySchedule calcula horas restantes e prioridade de cada visita agendada
// e devolve a agenda em ordem cronológica.
func (s *Service) GetWeeklySchedule(promoterID string) []domain.ScheduledVisit {
	now := s.now()
	schedule := s.source.WeeklySchedule(now)

	for i := range schedule {
		visit := &schedule[i]
		remaining := visit.DeadlineAt.Sub(now)

		visit.Date = visit.ScheduledAt.Format(utils.DateLayout)
		visit.Time = visit.ScheduledAt.Format(utils.TimeLayout)
		visit.Deadline = visit.DeadlineAt.Format(utils.DateTimeLayout)
		visit.HoursRemaining = max(0, int(remaining.Hours()))
		visit.Priority = SchedulePriority(remaining)
		visit.Status = domain.VisitScheduled
	}

	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].ScheduledAt.Before(schedule[j].ScheduledAt)
	})

	return schedule
}

// SchedulePriority é High abaixo de 24h até o prazo, Medium abaixo de 48h e Normal no restante
func SchedulePriority(remaining time.Duration) string {
	switch {
	case remaining < 24*time.Hour:
		return domain.PriorityHigh
	case remaining < 48*time.Hour:
		return domain.PriorityMedium
	default:
		return domain.PriorityNormal
	}
}

func (s *Service) GetRuptureHistory(promoterID string) []domain.Rupture {
	ruptures := s.source.Ruptures(ruptureHistorySize)

	for i := range ruptures {
		ruptures[i].Date = ruptures[i].ReportedAt.Format(utils.DateLayout)
		ruptures[i].Time = ruptures[i].ReportedAt.Format(utils.TimeLayout)
	}
	sort.SliceStable(ruptures, func(i, j int) bool {
		return ruptures[i].ReportedAt.After(ruptures[j].ReportedAt)
	})

	return ruptures
}

func (s *Service) GetNotifications(promoterID string) []domain.Notification {
	notifications := s.source.PromoterNotifications()
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications
}

func (s *Service) GetFeedbackHistory(promoterID string) []domain.Feedback {
	feedbacks := s.source.Feedbacks(feedbackHistorySize)

	for i := range feedbacks {
		feedbacks[i].Date = feedbacks[i].GivenAt.Format(utils.DateLayout)
	}
	sort.SliceStable(feedbacks, func(i, j int) bool {
		return feedbacks[i].GivenAt.After(feedbacks[j].GivenAt)
	})

	return feedbacks
}

func (s *Service) GetProductHistory(promoterID string) []domain.ProductResponsibility {
	return s.source.ProductResponsibilities()
}

func (s *Service) ContestProduct(ctx context.Context, request domain.ContestRequest) *domain.Contest {
	contest := &domain.Contest{
		ID:         s.source.RecordID(),
		PromoterID: request.PromoterID,
		ProductSKU: request.ProductSKU,
		Store:      request.Store,
		Reason:     request.Reason,
		Message:    request.Message,
		CreatedAt:  s.now(),
		Status:     domain.ContestPending,
	}

	s.publish(ctx, domain.AlertEvent{
		Type:       domain.EventContestSubmitted,
		PromoterID: request.PromoterID,
		Store:      request.Store,
		ProductSKU: request.ProductSKU,
		Message:    fmt.Sprintf("Contestação de responsabilidade: %s", request.Reason),
		OccurredAt: contest.CreatedAt,
	})

	return contest
}

func (s *Service) UpdateProfile(request domain.ProfileUpdateRequest) *domain.ProfileUpdate {
	return &domain.ProfileUpdate{
		PromoterID:   request.PromoterID,
		Name:         request.Name,
		Email:        request.Email,
		Phone:        request.Phone,
		ProfilePhoto: request.ProfilePhoto,
		UpdatedAt:    s.now(),
	}
}

// RegisterPrice compara o preço informado com o último registrado para a loja e o
// SKU. Variação acima de R$ 1,00 em qualquer direção gera alerta para o gestor.
func (s *Service) RegisterPrice(ctx context.Context, request domain.PriceRequest) (*domain.PriceRegistration, error) {
	if request.CurrentPrice == nil {
		return nil, domain.NewError(ErrPriceRequired, apiErrors.ErrMissingRequiredData, "Preço atual é obrigatório")
	}

	now := s.now()
	current := decimal.NewFromFloat(*request.CurrentPrice)

	last, err := s.prices.LastPrice(ctx, request.Store, request.ProductSKU)
	if err != nil {
		return nil, domain.NewError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar histórico de preços")
	}

	previous := decimal.NewFromFloat(s.previousPrice(last)).Round(2)
	variation := current.Sub(previous)

	percentage := decimal.Zero
	if !previous.IsZero() {
		percentage = variation.Div(previous).Mul(decimal.NewFromInt(100)).Round(1)
	}

	entry := domain.PriceEntry{
		ID:               s.source.RecordID(),
		PromoterID:       request.PromoterID,
		Store:            request.Store,
		ProductSKU:       request.ProductSKU,
		CurrentPrice:     *request.CurrentPrice,
		HasPromotion:     request.HasPromotion,
		PromotionDetails: request.PromotionDetails,
		RegisteredAt:     now,
	}

	record := domain.PriceRecord{
		Store:        request.Store,
		ProductSKU:   request.ProductSKU,
		Price:        *request.CurrentPrice,
		PromoterID:   request.PromoterID,
		RegisteredAt: now,
	}
	if err := s.prices.Save(ctx, record); err != nil {
		return nil, domain.NewError(err, apiErrors.ErrDatabaseOperation, "Erro ao salvar registro de preço")
	}

	registration := &domain.PriceRegistration{
		Entry: entry,
		Comparison: domain.PriceComparison{
			PreviousPrice:       previous.InexactFloat64(),
			Variation:           variation.Round(2).InexactFloat64(),
			VariationPercentage: percentage.InexactFloat64(),
		},
	}

	if variation.Abs().GreaterThan(priceAlertThreshold) {
		registration.AlertSentToManager = true
		registration.AlertMessage = fmt.Sprintf("Variação de preço detectada: R$ %s → R$ %s",
			previous.StringFixed(2), current.StringFixed(2))

		s.publish(ctx, domain.AlertEvent{
			Type:       domain.EventPriceVariationAlert,
			PromoterID: request.PromoterID,
			Store:      request.Store,
			ProductSKU: request.ProductSKU,
			Message:    registration.AlertMessage,
			OccurredAt: now,
		})
	}

	return registration, nil
}

func (s *Service) previousPrice(last *domain.PriceRecord) float64 {
	if last != nil {
		return last.Price
	}
	return s.source.ReferencePrice()
}

func (s *Service) RegisterExpiry(ctx context.Context, request domain.ExpiryRequest) (*domain.ExpiryRegistration, error) {
	if request.ExpiryDate == "" {
		return nil, domain.NewError(ErrExpiryDateRequired, apiErrors.ErrMissingRequiredData, "Data de validade é obrigatória")
	}

	expiry, err := utils.ParseDate(request.ExpiryDate)
	if err != nil {
		return nil, domain.NewError(ErrInvalidExpiryDate, apiErrors.ErrInvalidFormat, "Data de validade inválida, use o formato AAAA-MM-DD")
	}

	now := s.now()
	days := utils.DaysBetween(now, *expiry)

	registration := &domain.ExpiryRegistration{
		Entry: domain.ExpiryEntry{
			ID:              s.source.RecordID(),
			PromoterID:      request.PromoterID,
			Store:           request.Store,
			ProductSKU:      request.ProductSKU,
			ExpiryDate:      request.ExpiryDate,
			ExpiryPhoto:     request.ExpiryPhoto,
			DaysUntilExpiry: days,
			RegisteredAt:    now,
		},
	}

	if days <= expiryAlertDays {
		severity := domain.SeverityMedium
		if days <= expiryHighDays {
			severity = domain.SeverityHigh
		}

		registration.Alert = &domain.ExpiryAlert{
			Message: fmt.Sprintf("Produto com validade inferior a 10 dias (%d dias restantes). "+
				"Deseja sinalizar risco de vencimento?", days),
			Severity:       severity,
			ActionRequired: true,
		}

		s.publish(ctx, domain.AlertEvent{
			Type:       domain.EventExpiryAlert,
			PromoterID: request.PromoterID,
			Store:      request.Store,
			ProductSKU: request.ProductSKU,
			Message:    registration.Alert.Message,
			Severity:   severity,
			OccurredAt: now,
		})
	}

	return registration, nil
}

func (s *Service) GetTrainingMaterials() domain.TrainingMaterials {
	return s.catalog.Promoter.TrainingMaterials
}

// publish não propaga falhas: o registro do promotor já foi aceito
func (s *Service) publish(ctx context.Context, event domain.AlertEvent) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.ForContext(ctx).WithError(err).WithFields(log.Fields{
			"event_type":  event.Type,
			"store":       event.Store,
			"product_sku": event.ProductSKU,
		}).Warn("Erro ao publicar alerta para o gestor")
	}
}
