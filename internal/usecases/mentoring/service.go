package mentoring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/log"
	"github.com/vfg2006/tradelite-api/pkg/utils"
)

const (
	maxIssuesBase      = 4
	issueScoreStep     = 25
	needsAttentionBar  = 70
	topPerformersCount = 3
	reportStoreLimit   = 5
	trendDays          = 30
	nextVisitDays      = 7

	reportWeekly = "weekly"
)

var locations = []string{"Salvador/BA", "São Paulo/SP", "Rio de Janeiro/RJ", "Brasília/DF"}

type Service struct {
	catalog *referencedata.Catalog
	rnd     Randomizer
	cache   SnapshotCache
	now     func() time.Time
}

// NewService monta o Mentor PDV. cache pode ser nil, e nesse caso o painel é sempre recalculado.
func NewService(catalog *referencedata.Catalog, rnd Randomizer, cache SnapshotCache) MentorService {
	return &Service{
		catalog: catalog,
		rnd:     rnd,
		cache:   cache,
		now:     time.Now,
	}
}

func (s *Service) AnalyzeVisit(request domain.AnalyzeVisitRequest) *domain.VisitAnalysisResult {
	store := request.Store
	if store == "" {
		store = pick(s.rnd, s.catalog.Mentor.Stores)
	}

	analysis := s.analyze(store, request.Checklist)
	if len(request.Photos) > 0 {
		analysis.PhotoAnalysis = &domain.PhotoAnalysis{
			PhotosProcessed: len(request.Photos),
			VisualInsights:  s.catalog.Mentor.PhotoInsights,
		}
	}

	return &domain.VisitAnalysisResult{
		Analysis:      analysis,
		MentorMessage: BuildMentorMessage(analysis),
	}
}

// analyze executa o pipeline score → quantidade de problemas → recomendações
func (s *Service) analyze(store string, checklist map[string]bool) domain.VisitAnalysis {
	now := s.now()
	score := s.score(checklist)
	issues := s.drawIssues(IssueCount(score, len(s.catalog.Mentor.Issues)))

	return domain.VisitAnalysis{
		Store:                store,
		Date:                 now,
		Location:             pick(s.rnd, locations),
		ChecklistScore:       score,
		ExecutionGrade:       GradeFor(score),
		IssuesDetected:       issues,
		Recommendations:      s.recommendationsFor(issues),
		EstimatedTotalImpact: fmt.Sprintf("+%d%% performance geral", between(s.rnd, 15, 35)),
		NextVisitSuggested:   now.AddDate(0, 0, nextVisitDays).Format(utils.DateBRLayout),
	}
}

func (s *Service) score(checklist map[string]bool) int {
	if len(checklist) == 0 {
		return between(s.rnd, 60, 95)
	}
	return ChecklistScore(checklist)
}

// ChecklistScore devolve a porcentagem de itens concluídos, arredondada para longe do zero
func ChecklistScore(checklist map[string]bool) int {
	if len(checklist) == 0 {
		return 0
	}

	completed := 0
	for _, done := range checklist {
		if done {
			completed++
		}
	}

	return int(math.Round(float64(completed) * 100 / float64(len(checklist))))
}

// IssueCount é max(1, 4 - score/25) com divisão inteira, limitado ao tamanho da taxonomia
func IssueCount(score, taxonomySize int) int {
	count := maxIssuesBase - score/issueScoreStep
	if count < 1 {
		count = 1
	}
	if taxonomySize > 0 && count > taxonomySize {
		count = taxonomySize
	}
	return count
}

func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	default:
		return "D"
	}
}

func (s *Service) drawIssues(count int) []domain.Issue {
	issues := make([]domain.Issue, 0, count)
	for i := 0; i < count; i++ {
		category := s.catalog.Mentor.Issues[s.rnd.Intn(len(s.catalog.Mentor.Issues))]
		issues = append(issues, domain.Issue{
			Type:        category.Type,
			Severity:    pick(s.rnd, category.Severities),
			Description: pick(s.rnd, category.Descriptions),
		})
	}
	return issues
}

// recommendationsFor escolhe uma recomendação por problema entre as que têm a
// categoria contida no tipo do problema. Problema crítico torna a cópia crítica.
func (s *Service) recommendationsFor(issues []domain.Issue) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(issues))

	for _, issue := range issues {
		var matching []domain.Recommendation
		for _, rec := range s.catalog.Mentor.Recommendations {
			if strings.Contains(issue.Type, rec.Category) {
				matching = append(matching, rec)
			}
		}
		if len(matching) == 0 {
			continue
		}

		rec := pick(s.rnd, matching)
		if issue.Severity == domain.SeverityCritical {
			rec.Priority = domain.SeverityCritical
		}
		recommendations = append(recommendations, rec)
	}

	return recommendations
}

func (s *Service) GetInsights(store string) *domain.StoreInsights {
	return &domain.StoreInsights{
		Store:           store,
		Insights:        s.analyze(store, nil),
		HistoricalTrend: s.historicalTrend(),
		Benchmark: domain.Benchmark{
			StoreScore:      between(s.rnd, 70, 95),
			CategoryAverage: between(s.rnd, 75, 85),
			MarketLeader:    between(s.rnd, 85, 95),
			PositionRanking: between(s.rnd, 1, 10),
			TotalStores:     between(s.rnd, 50, 100),
		},
	}
}

func (s *Service) historicalTrend() domain.HistoricalTrend {
	now := s.now()
	trend := domain.HistoricalTrend{
		Dates:  make([]string, 0, trendDays),
		Scores: make([]int, 0, trendDays),
	}

	for i := trendDays; i > 0; i-- {
		trend.Dates = append(trend.Dates, now.AddDate(0, 0, -i).Format("02/01"))
		trend.Scores = append(trend.Scores, between(s.rnd, 70, 95))
	}

	trend.Trend = "declining"
	if trend.Scores[len(trend.Scores)-1] > trend.Scores[0] {
		trend.Trend = "improving"
	}

	return trend
}

// GetDashboardKPIs serve o snapshot em cache quando existe e, fora isso, recalcula e grava.
// Falhas do cache nunca derrubam a requisição.
func (s *Service) GetDashboardKPIs(ctx context.Context) *domain.DashboardKPIs {
	if s.cache != nil {
		cached, found, err := s.cache.Get(ctx)
		if err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao ler snapshot de KPIs, recalculando")
		}
		if found {
			return cached
		}
	}

	kpis, err := s.RefreshDashboardKPIs(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Erro ao gravar snapshot de KPIs")
	}
	return kpis
}

// RefreshDashboardKPIs recalcula o painel e grava no cache. O painel calculado é
// devolvido mesmo quando a gravação falha.
func (s *Service) RefreshDashboardKPIs(ctx context.Context) (*domain.DashboardKPIs, error) {
	kpis := s.computeDashboardKPIs()

	if s.cache == nil {
		return kpis, nil
	}
	if err := s.cache.Set(ctx, kpis); err != nil {
		return kpis, err
	}

	return kpis, nil
}

func (s *Service) computeDashboardKPIs() *domain.DashboardKPIs {
	now := s.now()
	stores := s.catalog.Mentor.Stores

	storesData := make([]domain.StoreKPI, 0, len(stores))
	for _, store := range stores {
		analysis := s.analyze(store, nil)
		storesData = append(storesData, domain.StoreKPI{
			Store:       store,
			Score:       analysis.ChecklistScore,
			Grade:       analysis.ExecutionGrade,
			IssuesCount: len(analysis.IssuesDetected),
			LastVisit:   now.AddDate(0, 0, -between(s.rnd, 0, 10)),
			Promoter:    pick(s.rnd, s.catalog.Promoters).Name,
		})
	}

	return SummarizeKPIs(storesData, s.drawAlerts(now), now)
}

// SummarizeKPIs agrega os indicadores por loja no painel consolidado
func SummarizeKPIs(storesData []domain.StoreKPI, alerts []domain.Alert, generatedAt time.Time) *domain.DashboardKPIs {
	kpis := &domain.DashboardKPIs{
		TotalStores:    len(storesData),
		StoresData:     storesData,
		Alerts:         alerts,
		TopPerformers:  []domain.StoreKPI{},
		NeedsAttention: []domain.StoreKPI{},
		GeneratedAt:    generatedAt,
	}
	if kpis.TotalStores == 0 {
		return kpis
	}

	totalScore := 0
	for _, store := range storesData {
		totalScore += store.Score
		if store.IssuesCount > 0 {
			kpis.StoresWithIssues++
		}
		if store.Score < needsAttentionBar {
			kpis.NeedsAttention = append(kpis.NeedsAttention, store)
		}
	}

	kpis.AverageExecutionScore = utils.RoundWithOneDecimalPlace(float64(totalScore) / float64(kpis.TotalStores))
	kpis.ComplianceRate = utils.RoundWithOneDecimalPlace(utils.Percentage(kpis.TotalStores-kpis.StoresWithIssues, kpis.TotalStores))

	ranked := make([]domain.StoreKPI, len(storesData))
	copy(ranked, storesData)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > topPerformersCount {
		ranked = ranked[:topPerformersCount]
	}
	kpis.TopPerformers = ranked

	return kpis
}

func (s *Service) drawAlerts(now time.Time) []domain.Alert {
	templates := sample(s.rnd, s.catalog.Mentor.Alerts, between(s.rnd, 2, 4))

	alerts := make([]domain.Alert, 0, len(templates))
	for _, tpl := range templates {
		alerts = append(alerts, domain.Alert{
			ID:        between(s.rnd, 1000, 9999),
			Type:      tpl.Type,
			Message:   tpl.Message,
			Severity:  tpl.Severity,
			Timestamp: now.Add(-time.Duration(between(s.rnd, 1, 24)) * time.Hour),
			Read:      s.rnd.Intn(2) == 1,
		})
	}
	return alerts
}

func (s *Service) GenerateReport(request domain.ReportRequest) *domain.Report {
	reportType := request.Type
	if reportType == "" {
		reportType = reportWeekly
	}

	period := "Último mês"
	if reportType == reportWeekly {
		period = "Últimos 7 dias"
	}

	stores := request.Stores
	if len(stores) == 0 {
		stores = s.catalog.Mentor.Stores
	}
	if len(stores) > reportStoreLimit {
		stores = stores[:reportStoreLimit]
	}

	details := make([]domain.VisitAnalysis, 0, len(stores))
	for _, store := range stores {
		details = append(details, s.analyze(store, nil))
	}

	return &domain.Report{
		Type:        reportType,
		GeneratedAt: s.now(),
		Period:      period,
		Summary: domain.ReportSummary{
			TotalVisits:     between(s.rnd, 50, 100),
			AverageScore:    between(s.rnd, 75, 90),
			IssuesResolved:  between(s.rnd, 20, 40),
			ImprovementRate: fmt.Sprintf("+%d%%", between(s.rnd, 5, 15)),
		},
		StoreDetails:    details,
		Recommendations: s.catalog.Mentor.ReportRecommendations,
	}
}
