package administering

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/administering/mocks"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockDataSource) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDataSource(ctrl)

	service := NewService(source, referencedata.Default()).(*Service)
	service.now = func() time.Time { return fixedNow }

	return service, source
}

func onTimeDraws(n int) []domain.PaymentDraw {
	draws := make([]domain.PaymentDraw, n)
	for i := range draws {
		draws[i] = domain.PaymentDraw{OffsetDays: -2}
	}
	return draws
}

func TestService_GetBillingInfo(t *testing.T) {
	tests := []struct {
		name     string
		draws    func() []domain.PaymentDraw
		validate func(t *testing.T, info *domain.BillingInfo)
	}{
		{
			name:  "Todos os pagamentos em dia",
			draws: func() []domain.PaymentDraw { return onTimeDraws(12) },
			validate: func(t *testing.T, info *domain.BillingInfo) {
				assert.Equal(t, 12, info.Statistics.TotalPayments)
				assert.Equal(t, 0, info.Statistics.LatePayments)
				assert.Equal(t, 100.0, info.Statistics.OnTimePercentage)
				assert.Equal(t, 0.0, info.Statistics.AverageDelayDays)

				first := info.PaymentHistory[0]
				assert.Equal(t, "2024-06", first.Month)
				assert.Equal(t, "2024-06-10", first.DueDate)
				assert.Equal(t, "2024-06-08", first.PaidDate)
				assert.Equal(t, domain.PaymentOnTime, first.Status)
				assert.Equal(t, 0, first.DaysLate)
			},
		},
		{
			name: "Atrasos usam o deslocamento como dias de atraso",
			draws: func() []domain.PaymentDraw {
				draws := onTimeDraws(12)
				draws[0] = domain.PaymentDraw{Late: true, OffsetDays: 4}
				draws[3] = domain.PaymentDraw{Late: true, OffsetDays: 9}
				return draws
			},
			validate: func(t *testing.T, info *domain.BillingInfo) {
				assert.Equal(t, 2, info.Statistics.LatePayments)
				assert.InDelta(t, 83.33, info.Statistics.OnTimePercentage, 0.01)
				assert.Equal(t, 6.5, info.Statistics.AverageDelayDays)

				first := info.PaymentHistory[0]
				assert.Equal(t, domain.PaymentLate, first.Status)
				assert.Equal(t, 4, first.DaysLate)
				assert.Equal(t, "2024-06-14", first.PaidDate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, source := newTestService(t)
			source.EXPECT().PaymentDraws(12).Return(tt.draws())
			source.EXPECT().BillingPlan().Return(domain.Plan{ID: 2, Name: "TradeLite Pro"})

			info := service.GetBillingInfo()

			require.Len(t, info.PaymentHistory, 12)
			assert.Equal(t, "TradeLite Pro", info.CurrentPlan.Name)
			assert.Equal(t, "2024-07-15", info.NextBillingDate)
			assert.Len(t, info.PaymentMethods, 2)
			assert.Len(t, info.Invoices, 3)

			for i := 1; i < len(info.PaymentHistory); i++ {
				assert.GreaterOrEqual(t, info.PaymentHistory[i-1].Month, info.PaymentHistory[i].Month)
			}
			for _, record := range info.PaymentHistory {
				assert.Equal(t, 599.90, record.Amount)
				assert.Equal(t, "10", record.DueDate[8:])
			}

			tt.validate(t, info)
		})
	}
}

func TestPaymentStatisticsFor(t *testing.T) {
	tests := []struct {
		name     string
		history  []domain.PaymentRecord
		expected domain.PaymentStatistics
	}{
		{
			name:     "Série vazia conta como 100% em dia",
			history:  nil,
			expected: domain.PaymentStatistics{OnTimePercentage: 100},
		},
		{
			name: "Média de atraso arredondada para uma casa",
			history: []domain.PaymentRecord{
				{Status: domain.PaymentLate, DaysLate: 1},
				{Status: domain.PaymentLate, DaysLate: 2},
				{Status: domain.PaymentLate, DaysLate: 2},
				{Status: domain.PaymentOnTime},
			},
			expected: domain.PaymentStatistics{TotalPayments: 4, LatePayments: 3, OnTimePercentage: 25, AverageDelayDays: 1.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PaymentStatisticsFor(tt.history))
		})
	}
}

func TestService_CreateProduct(t *testing.T) {
	service, source := newTestService(t)
	source.EXPECT().RecordID().Return(4321).Times(2)

	price := 6.5
	product := service.CreateProduct(domain.ProductRequest{SKU: "SKU9999", Name: "Produto Suco Uva", SuggestedPrice: &price})
	assert.Equal(t, 4321, product.ID)
	assert.Equal(t, 6.5, product.SuggestedPrice)
	assert.True(t, product.Active)
	assert.Equal(t, fixedNow, product.CreatedAt)

	empty := service.CreateProduct(domain.ProductRequest{})
	assert.Equal(t, 0.0, empty.SuggestedPrice)
	assert.Empty(t, empty.Name)
}

func TestService_CreateStore(t *testing.T) {
	service, source := newTestService(t)
	source.EXPECT().RecordID().Return(1500)

	store := service.CreateStore(domain.StoreRequest{Name: "Loja Nova", Address: &domain.Address{City: "Salvador"}})
	assert.Equal(t, 1500, store.ID)
	assert.Equal(t, "Salvador", store.Address.City)
	assert.Nil(t, store.Manager)
	assert.Equal(t, "", store.Observations)
	assert.True(t, store.Active)
}

func TestService_ContactSupport(t *testing.T) {
	tests := []struct {
		name             string
		request          domain.SupportContactRequest
		expectedPriority string
	}{
		{name: "Prioridade padrão normal", request: domain.SupportContactRequest{Subject: "Fatura"}, expectedPriority: "normal"},
		{name: "Prioridade informada é mantida", request: domain.SupportContactRequest{Subject: "Fatura", Priority: "high"}, expectedPriority: "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, source := newTestService(t)
			source.EXPECT().TicketNumber().Return(42)

			ticket := service.ContactSupport(tt.request)
			assert.Equal(t, "ADM042", ticket.ID)
			assert.Equal(t, "admin_support", ticket.Type)
			assert.Equal(t, "open", ticket.Status)
			assert.Equal(t, tt.expectedPriority, ticket.Priority)
		})
	}
}

func TestService_GetDashboardStats(t *testing.T) {
	service, source := newTestService(t)
	source.EXPECT().DashboardGauges().Return(domain.DashboardStats{TotalUsers: 120, MonthlyVisits: 900})

	stats := service.GetDashboardStats()
	assert.Equal(t, 120, stats.TotalUsers)
	assert.Equal(t, "99.8%", stats.SystemHealth.Uptime)
	require.Len(t, stats.RecentActivities, 3)
	assert.Equal(t, fixedNow.Add(-2*time.Hour), stats.RecentActivities[0].Timestamp)
	assert.Equal(t, fixedNow.Add(-8*time.Hour), stats.RecentActivities[2].Timestamp)
}

func TestService_Vocabularios(t *testing.T) {
	service, _ := newTestService(t)

	assert.Len(t, service.ListCategories(), 10)
	assert.Len(t, service.ListBrands(), 12)
}
