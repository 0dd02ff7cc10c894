package mentoring

import (
	"context"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

// Randomizer é a fonte de sorteios das análises. *rand.Rand satisfaz a interface.
type Randomizer interface {
	Intn(n int) int
}

// SnapshotCache guarda o último painel de KPIs calculado. A expiração é responsabilidade da implementação.
type SnapshotCache interface {
	Get(ctx context.Context) (*domain.DashboardKPIs, bool, error)
	Set(ctx context.Context, kpis *domain.DashboardKPIs) error
}

type MentorService interface {
	AnalyzeVisit(request domain.AnalyzeVisitRequest) *domain.VisitAnalysisResult
	GetInsights(store string) *domain.StoreInsights
	GetDashboardKPIs(ctx context.Context) *domain.DashboardKPIs
	RefreshDashboardKPIs(ctx context.Context) (*domain.DashboardKPIs, error)
	GenerateReport(request domain.ReportRequest) *domain.Report
}
