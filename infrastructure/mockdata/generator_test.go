package mockdata

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering"
	"github.com/vfg2006/tradelite-api/internal/usecases/managing"
	"github.com/vfg2006/tradelite-api/internal/usecases/mentoring"
	"github.com/vfg2006/tradelite-api/internal/usecases/promoting"
	"github.com/vfg2006/tradelite-api/internal/usecases/supporting"
)

var (
	_ administering.DataSource = (*Generator)(nil)
	_ managing.DataSource      = (*Generator)(nil)
	_ promoting.DataSource     = (*Generator)(nil)
	_ supporting.DataSource    = (*Generator)(nil)
	_ mentoring.Randomizer     = (*Generator)(nil)
)

var fixedNow = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

func newTestGenerator(seed int64) *Generator {
	g := New(referencedata.Default(), seed)
	g.now = func() time.Time { return fixedNow }
	return g
}

func TestGenerator_MesmaSementeMesmaSequencia(t *testing.T) {
	first := newTestGenerator(42)
	second := newTestGenerator(42)

	assert.Equal(t, first.Products(20), second.Products(20))
	assert.Equal(t, first.PendingVisits(), second.PendingVisits())
	assert.Equal(t, first.HistoricalTickets("1"), second.HistoricalTickets("1"))
}

func TestGenerator_Admin(t *testing.T) {
	g := newTestGenerator(7)
	catalog := g.catalog

	products := g.Products(20)
	require.Len(t, products, 20)
	for i, product := range products {
		assert.Equal(t, i+1, product.ID)
		assert.Regexp(t, `^SKU\d{4}$`, product.SKU)
		assert.Contains(t, catalog.Brands, product.Brand)
		assert.Contains(t, catalog.Categories, product.Category)
		assert.True(t, strings.HasSuffix(product.Volume, "ml"))
		assert.GreaterOrEqual(t, product.SuggestedPrice, 2.50)
		assert.LessOrEqual(t, product.SuggestedPrice, 15.90)
		assert.True(t, product.CreatedAt.Before(fixedNow))
	}

	stores := g.Stores()
	require.Len(t, stores, len(catalog.AdminStores))
	for _, store := range stores {
		assert.Regexp(t, `^\d{2}\.\d{3}\.\d{3}/0001-\d{2}$`, store.CNPJ)
		require.NotNil(t, store.Address)
		assert.Regexp(t, `^\d{5}-\d{3}$`, store.Address.ZipCode)
		require.NotNil(t, store.Manager)
		assert.Regexp(t, `^\(11\) 9\d{4}-\d{4}$`, store.Manager.Phone)
		assert.True(t, store.Active)
	}

	draws := g.PaymentDraws(200)
	require.Len(t, draws, 200)
	for _, draw := range draws {
		if draw.Late {
			assert.GreaterOrEqual(t, draw.OffsetDays, 0)
			assert.LessOrEqual(t, draw.OffsetDays, 15)
			continue
		}
		assert.GreaterOrEqual(t, draw.OffsetDays, -5)
		assert.LessOrEqual(t, draw.OffsetDays, 5)
	}

	gauges := g.DashboardGauges()
	assert.GreaterOrEqual(t, gauges.TotalUsers, 50)
	assert.LessOrEqual(t, gauges.MonthlyVisits, 2000)
	assert.Contains(t, catalog.Billing.Plans, g.BillingPlan())
}

func TestGenerator_Manager(t *testing.T) {
	g := newTestGenerator(11)

	for _, promoter := range g.catalog.Promoters {
		performance := g.PromoterPerformance(promoter)
		assert.Equal(t, promoter, performance.Promoter)
		assert.GreaterOrEqual(t, len(performance.StoresAssigned), 3)
		assert.LessOrEqual(t, len(performance.StoresAssigned), 6)
		assertDistinct(t, performance.StoresAssigned)
		assert.Contains(t, []string{"up", "down", "stable"}, performance.PerformanceTrend)
	}

	visits := g.PendingVisits()
	assert.GreaterOrEqual(t, len(visits), 3)
	assert.LessOrEqual(t, len(visits), 8)
	for _, visit := range visits {
		assert.True(t, visit.Deadline.After(fixedNow))
		assert.LessOrEqual(t, visit.Deadline.Sub(fixedNow), 72*time.Hour)
		assert.True(t, visit.LastVisit.Before(fixedNow))
	}

	notifications := g.ManagerNotifications()
	assert.GreaterOrEqual(t, len(notifications), 5)
	assert.LessOrEqual(t, len(notifications), 12)
	for _, notification := range notifications {
		assert.GreaterOrEqual(t, notification.ID, 1000)
		assert.LessOrEqual(t, fixedNow.Sub(notification.Timestamp), 48*time.Hour)
	}

	for _, variation := range g.PriceVariations() {
		assert.GreaterOrEqual(t, variation.OldPrice, 3.0)
		assert.LessOrEqual(t, variation.OldPrice, 12.0)
		assert.InDelta(t, variation.OldPrice, variation.NewPrice, 2.01)
		require.NotNil(t, variation.Justification)
	}
}

func TestGenerator_WeeklySchedule(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGenerator(seed)

		for _, visit := range g.WeeklySchedule(fixedNow) {
			assert.True(t, visit.DeadlineAt.After(visit.ScheduledAt))
			assert.GreaterOrEqual(t, visit.ScheduledAt.Hour(), 8)
			assert.LessOrEqual(t, visit.ScheduledAt.Hour(), 17)
			assert.Contains(t, []int{0, 30}, visit.ScheduledAt.Minute())
			assert.False(t, visit.ScheduledAt.Before(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)))
			assert.True(t, visit.ScheduledAt.Before(time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC)))
			assert.GreaterOrEqual(t, len(visit.ProductsToCheck), 2)
			assert.LessOrEqual(t, len(visit.ProductsToCheck), 4)
		}
	}
}

func TestGenerator_Promoter(t *testing.T) {
	g := newTestGenerator(3)

	visits := g.VisitHistory(15)
	require.Len(t, visits, 15)
	for _, visit := range visits {
		assert.GreaterOrEqual(t, visit.Score, 60)
		assert.LessOrEqual(t, visit.Score, 100)
		assert.Contains(t, []string{domain.VisitCompleted, domain.VisitPending, domain.VisitInProgress}, visit.Status)
	}

	for _, rupture := range g.Ruptures(10) {
		assert.Regexp(t, `^R\$ \d{2,3}\.00$`, rupture.EstimatedLoss)
		assert.Regexp(t, `^(\d{1,2}h|Pendente)$`, rupture.ResolutionTime)
	}

	for _, feedback := range g.Feedbacks(8) {
		assert.Contains(t, g.catalog.Promoter.FeedbackMessages, feedback.Message)
		assert.GreaterOrEqual(t, feedback.Score, 70)
	}

	responsibilities := g.ProductResponsibilities()
	perProduct := map[string][]string{}
	for _, responsibility := range responsibilities {
		assert.True(t, responsibility.CanContest)
		perProduct[responsibility.Product.SKU] = append(perProduct[responsibility.Product.SKU], responsibility.Store)
	}
	assert.Len(t, perProduct, len(g.catalog.Promoter.Products))
	for _, stores := range perProduct {
		assert.GreaterOrEqual(t, len(stores), 2)
		assert.LessOrEqual(t, len(stores), 5)
		assertDistinct(t, stores)
	}

	price := g.ReferencePrice()
	assert.GreaterOrEqual(t, price, 2.50)
	assert.LessOrEqual(t, price, 15.90)
}

func TestGenerator_Support(t *testing.T) {
	g := newTestGenerator(5)

	tickets := g.HistoricalTickets("9")
	assert.GreaterOrEqual(t, len(tickets), 2)
	assert.LessOrEqual(t, len(tickets), 6)
	for _, ticket := range tickets {
		assert.Equal(t, "9", ticket.UserID)
		assert.True(t, ticket.Status.Valid())
		assert.True(t, ticket.UpdatedAt.After(ticket.CreatedAt))
		assert.True(t, strings.HasPrefix(ticket.Title, "Problema com "))
	}

	info := g.TechnicalInfo("9", "promoter")
	assert.Equal(t, strings.Contains(info.DeviceInfo.Model, "iPhone"), info.DeviceInfo.OS == "iOS 17.2")
	assert.InDelta(t, -12.9714, info.LocationInfo.Coordinates.Lat, 0.1)
	assert.InDelta(t, -38.5014, info.LocationInfo.Coordinates.Lng, 0.1)

	tests := []struct {
		role  domain.Role
		count int
	}{
		{role: domain.RolePromoter, count: 15},
		{role: domain.RoleManager, count: 11},
		{role: domain.RoleAdmin, count: 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			activities := g.ActivityHistory(tt.role)
			assert.NotNil(t, activities)
			assert.Len(t, activities, tt.count)
		})
	}

	assert.Contains(t, g.catalog.Support.BotResponses, g.BotReply())
	position := g.QueuePosition()
	assert.GreaterOrEqual(t, position, 1)
	assert.LessOrEqual(t, position, 5)
}

func TestGenerator_AcessoConcorrente(t *testing.T) {
	g := newTestGenerator(99)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				g.Intn(10)
				g.RecordID()
				g.PendingVisits()
			}
		}()
	}
	wg.Wait()
}

func assertDistinct(t *testing.T, items []string) {
	t.Helper()
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		_, dup := seen[item]
		assert.False(t, dup, "item repetido: %s", item)
		seen[item] = struct{}{}
	}
}
