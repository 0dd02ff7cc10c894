package managing

import "github.com/vfg2006/tradelite-api/internal/domain"

// DataSource fornece os registros sintéticos vistos pelo gestor. Os valores
// derivados (prioridades, variações, ordenação) ficam por conta do serviço.
type DataSource interface {
	PromoterPerformance(promoter domain.Promoter) domain.PromoterPerformance
	PendingVisits() []domain.PendingVisit
	ManagerNotifications() []domain.Notification
	// PriceVariations devolve preços antigo e novo já arredondados e uma justificativa candidata
	PriceVariations() []domain.PriceVariation
	PromoterProfile(promoter domain.Promoter) domain.PromoterProfile
	RecordID() int
}

type ManagerService interface {
	GetPromoterPerformance() []domain.PromoterPerformance
	GetPendingStores() []domain.PendingStore
	GetNotifications(managerID string) []domain.Notification
	GetPriceVariations() []domain.PriceVariation
	AssignResponsibility(request domain.AssignmentRequest) *domain.Assignment
	HandleContest(request domain.ContestDecisionRequest) (*domain.ContestDecision, error)
	GetPromoterProfile(promoterID string) (*domain.PromoterProfile, error)
	ScheduleReevaluation(request domain.ReevaluationRequest) *domain.Reevaluation
	GetProductHistory() []domain.ProductHistory
	UpdateProduct(request domain.ProductUpdateRequest) *domain.ProductUpdate
}
