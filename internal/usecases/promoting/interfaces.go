package promoting

import (
	"context"
	"time"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

// DataSource fornece os registros sintéticos do promotor ainda sem formatação
// de datas, prioridades ou ordenação.
type DataSource interface {
	VisitHistory(n int) []domain.VisitRecord
	// WeeklySchedule sorteia as visitas dos próximos 7 dias a partir de start
	WeeklySchedule(start time.Time) []domain.ScheduledVisit
	Ruptures(n int) []domain.Rupture
	PromoterNotifications() []domain.Notification
	Feedbacks(n int) []domain.Feedback
	ProductResponsibilities() []domain.ProductResponsibility
	RecordID() int
	// ReferencePrice é o preço anterior usado quando ainda não há histórico para o produto
	ReferencePrice() float64
}

type PriceRecordRepository interface {
	Save(ctx context.Context, record domain.PriceRecord) error
	LastPrice(ctx context.Context, store, productSKU string) (*domain.PriceRecord, error)
}

// AlertPublisher entrega ao gestor os eventos gerados pelos registros do promotor
type AlertPublisher interface {
	Publish(ctx context.Context, event domain.AlertEvent) error
}

type PromoterService interface {
	GetVisitHistory(promoterID string) []domain.VisitRecord
	GetWeeklySchedule(promoterID string) []domain.ScheduledVisit
	GetRuptureHistory(promoterID string) []domain.Rupture
	GetNotifications(promoterID string) []domain.Notification
	GetFeedbackHistory(promoterID string) []domain.Feedback
	GetProductHistory(promoterID string) []domain.ProductResponsibility
	ContestProduct(ctx context.Context, request domain.ContestRequest) *domain.Contest
	UpdateProfile(request domain.ProfileUpdateRequest) *domain.ProfileUpdate
	RegisterPrice(ctx context.Context, request domain.PriceRequest) (*domain.PriceRegistration, error)
	RegisterExpiry(ctx context.Context, request domain.ExpiryRequest) (*domain.ExpiryRegistration, error)
	GetTrainingMaterials() domain.TrainingMaterials
}
