package mockdata

import (
	"fmt"
	"time"

	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/utils"
)

var (
	visitStatuses   = []string{domain.VisitCompleted, domain.VisitPending, domain.VisitInProgress}
	ruptureTypes    = []string{"Total", "Partial", "Expired"}
	ruptureStatuses = []string{"Reported", "UnderReview", "Resolved"}
	feedbackSources = []string{"Manager", "Mentor PDV"}
	feedbackTypes   = []string{"Praise", "Suggestion", "Correction", "Guidance"}
	lowToHigh       = []string{"Low", "Medium", "High"}
	productStatuses = []string{"Active", "Rupture", "Discontinued"}
	halfHours       = []int{0, 30}
)

func (g *Generator) VisitHistory(n int) []domain.VisitRecord {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	visits := make([]domain.VisitRecord, 0, n)
	for i := 0; i < n; i++ {
		visits = append(visits, domain.VisitRecord{
			ID:              g.recordID(),
			Store:           pick(g, g.catalog.FieldStores),
			VisitedAt:       g.daysAgo(now, 1, 30),
			Status:          pick(g, visitStatuses),
			Score:           g.between(60, 100),
			PhotosCount:     g.between(1, 5),
			IssuesFound:     g.between(0, 3),
			Duration:        g.minutes(30, 120),
			ProductsChecked: g.between(3, 8),
		})
	}
	return visits
}

// WeeklySchedule cobre os 7 dias a partir de start. Cada dia tem 70% de chance
// de receber de 1 a 3 visitas entre 08:00 e 17:30, com prazo de 1 a 3 dias.
func (g *Generator) WeeklySchedule(start time.Time) []domain.ScheduledVisit {
	g.mu.Lock()
	defer g.mu.Unlock()

	schedule := make([]domain.ScheduledVisit, 0)
	for day := 0; day < 7; day++ {
		date := start.AddDate(0, 0, day)
		if !g.chance(0.7) {
			continue
		}

		for j, visits := 0, g.between(1, 3); j < visits; j++ {
			scheduledAt := time.Date(date.Year(), date.Month(), date.Day(),
				g.between(8, 17), pick(g, halfHours), 0, 0, date.Location())

			schedule = append(schedule, domain.ScheduledVisit{
				ID:                g.recordID(),
				Store:             pick(g, g.catalog.FieldStores),
				ScheduledAt:       scheduledAt,
				DeadlineAt:        scheduledAt.AddDate(0, 0, g.between(1, 3)),
				ProductsToCheck:   sample(g, g.catalog.Promoter.Products, g.between(2, 4)),
				EstimatedDuration: g.minutes(45, 90),
			})
		}
	}
	return schedule
}

func (g *Generator) Ruptures(n int) []domain.Rupture {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	ruptures := make([]domain.Rupture, 0, n)
	for i := 0; i < n; i++ {
		rupture := domain.Rupture{
			ID:             g.recordID(),
			Store:          pick(g, g.catalog.FieldStores),
			Product:        pick(g, g.catalog.Promoter.Products),
			ReportedAt:     g.daysAgo(now, 1, 30),
			Type:           pick(g, ruptureTypes),
			Status:         pick(g, ruptureStatuses),
			EstimatedLoss:  fmt.Sprintf("R$ %d.00", g.between(50, 500)),
			ResolutionTime: "Pendente",
		}
		if g.coin() {
			rupture.ResolutionTime = fmt.Sprintf("%dh", g.between(1, 72))
		}
		ruptures = append(ruptures, rupture)
	}
	return ruptures
}

func (g *Generator) PromoterNotifications() []domain.Notification {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.notifications(g.catalog.Promoter.NotificationTemplates, 3, 8)
}

func (g *Generator) Feedbacks(n int) []domain.Feedback {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	feedbacks := make([]domain.Feedback, 0, n)
	for i := 0; i < n; i++ {
		feedbacks = append(feedbacks, domain.Feedback{
			ID:             g.recordID(),
			Store:          pick(g, g.catalog.FieldStores),
			GivenAt:        g.daysAgo(now, 1, 30),
			From:           pick(g, feedbackSources),
			Type:           pick(g, feedbackTypes),
			Score:          g.between(70, 100),
			Message:        pick(g, g.catalog.Promoter.FeedbackMessages),
			ActionRequired: g.coin(),
			Priority:       pick(g, lowToHigh),
		})
	}
	return feedbacks
}

// ProductResponsibilities atribui cada produto do promotor a 2 a 5 lojas distintas
func (g *Generator) ProductResponsibilities() []domain.ProductResponsibility {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	responsibilities := make([]domain.ProductResponsibility, 0)
	for _, product := range g.catalog.Promoter.Products {
		for _, store := range sample(g, g.catalog.FieldStores, g.between(2, 5)) {
			responsibilities = append(responsibilities, domain.ProductResponsibility{
				Product:          product,
				Store:            store,
				AssignedDate:     g.daysAgo(now, 1, 90).Format(utils.DateLayout),
				LastCheck:        g.daysAgo(now, 1, 7).Format(utils.DateLayout),
				CurrentPrice:     g.price(2.50, 15.90),
				SuggestedPrice:   g.price(2.50, 15.90),
				Status:           pick(g, productStatuses),
				PerformanceScore: g.between(60, 100),
				CanContest:       true,
			})
		}
	}
	return responsibilities
}

func (g *Generator) ReferencePrice() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.price(2.50, 15.90)
}
