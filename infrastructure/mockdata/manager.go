package mockdata

import (
	"fmt"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

var performanceTrends = []string{"up", "down", "stable"}

func (g *Generator) PromoterPerformance(promoter domain.Promoter) domain.PromoterPerformance {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.PromoterPerformance{
		Promoter: promoter,
		Stats: domain.PerformanceStats{
			VisitsCompleted: g.between(15, 45),
			VisitsPending:   g.between(0, 8),
			AverageScore:    g.between(75, 95),
			PhotosUploaded:  g.between(50, 150),
			IssuesReported:  g.between(5, 20),
			ResponseTime:    g.minutes(15, 60),
		},
		StoresAssigned:   sample(g, g.catalog.FieldStores, g.between(3, 6)),
		ProductsAssigned: g.between(8, 15),
		PerformanceTrend: pick(g, performanceTrends),
		LastActivity:     g.hoursAgo(g.now(), 1, 24),
	}
}

func (g *Generator) minutes(lo, hi int) string {
	return fmt.Sprintf("%d min", g.between(lo, hi))
}

func (g *Generator) PendingVisits() []domain.PendingVisit {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	count := g.between(3, 8)
	visits := make([]domain.PendingVisit, 0, count)
	for i := 0; i < count; i++ {
		visits = append(visits, domain.PendingVisit{
			Store:     pick(g, g.catalog.FieldStores),
			Promoter:  pick(g, g.catalog.Promoters),
			LastVisit: g.daysAgo(now, 3, 15),
			Deadline:  g.hoursAhead(now, 6, 72),
			Reason:    pick(g, g.catalog.Manager.PendingReasons),
		})
	}
	return visits
}

func (g *Generator) ManagerNotifications() []domain.Notification {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.notifications(g.catalog.Manager.NotificationTemplates, 5, 12)
}

// notifications monta de lo a hi notificações a partir dos modelos, com horário
// entre 1 e 48 horas atrás
func (g *Generator) notifications(templates []domain.NotificationTemplate, lo, hi int) []domain.Notification {
	now := g.now()
	count := g.between(lo, hi)
	notifications := make([]domain.Notification, 0, count)
	for i := 0; i < count; i++ {
		notifications = append(notifications, domain.NewNotification(
			pick(g, templates), g.recordID(), g.hoursAgo(now, 1, 48), g.coin(),
		))
	}
	return notifications
}

func (g *Generator) PriceVariations() []domain.PriceVariation {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	count := g.between(3, 8)
	variations := make([]domain.PriceVariation, 0, count)
	for i := 0; i < count; i++ {
		oldPrice := g.price(3.0, 12.0)
		variation := domain.PriceVariation{
			ID:       g.recordID(),
			Product:  pick(g, g.catalog.Manager.PriceProducts),
			Store:    pick(g, g.catalog.FieldStores),
			Promoter: pick(g, g.catalog.Promoters),
			OldPrice: oldPrice,
			NewPrice: roundCents(oldPrice + g.uniform(-2.0, 2.0)),
			Date:     g.hoursAgo(now, 1, 24),
		}
		if len(g.catalog.Manager.PriceJustifications) > 0 {
			justification := pick(g, g.catalog.Manager.PriceJustifications)
			variation.Justification = &justification
		}
		variations = append(variations, variation)
	}
	return variations
}

func (g *Generator) PromoterProfile(promoter domain.Promoter) domain.PromoterProfile {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.PromoterProfile{
		Promoter:       promoter,
		StoresAssigned: sample(g, g.catalog.FieldStores, g.between(3, 6)),
		PerformanceMetrics: domain.PerformanceMetrics{
			TotalVisits:    g.between(50, 200),
			AverageScore:   g.between(75, 95),
			CompletionRate: g.between(85, 98),
			ResponseTime:   g.minutes(15, 60),
		},
	}
}
