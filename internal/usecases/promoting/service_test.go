package promoting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/infrastructure/repository"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/internal/usecases/promoting/mocks"
	"github.com/vfg2006/tradelite-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

type testDeps struct {
	source    *mocks.MockDataSource
	prices    *mocks.MockPriceRecordRepository
	publisher *mocks.MockAlertPublisher
}

func newTestService(t *testing.T) (*Service, testDeps) {
	ctrl := gomock.NewController(t)
	deps := testDeps{
		source:    mocks.NewMockDataSource(ctrl),
		prices:    mocks.NewMockPriceRecordRepository(ctrl),
		publisher: mocks.NewMockAlertPublisher(ctrl),
	}

	service := NewService(deps.source, deps.prices, deps.publisher, referencedata.Default()).(*Service)
	service.now = func() time.Time { return fixedNow }

	return service, deps
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestService_GetVisitHistory(t *testing.T) {
	service, deps := newTestService(t)

	deps.source.EXPECT().VisitHistory(15).Return([]domain.VisitRecord{
		{ID: 1, VisitedAt: fixedNow.AddDate(0, 0, -10)},
		{ID: 2, VisitedAt: time.Date(2024, 3, 19, 14, 35, 0, 0, time.UTC)},
		{ID: 3, VisitedAt: fixedNow.AddDate(0, 0, -25)},
	})

	visits := service.GetVisitHistory("1")

	require.Len(t, visits, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{visits[0].ID, visits[1].ID, visits[2].ID})
	assert.Equal(t, "2024-03-19", visits[0].Date)
	assert.Equal(t, "14:35", visits[0].Time)
}

func TestSchedulePriority(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{name: "Prazo vencido", remaining: -time.Hour, want: domain.PriorityHigh},
		{name: "Menos de 24 horas", remaining: 23*time.Hour + 59*time.Minute, want: domain.PriorityHigh},
		{name: "Exatamente 24 horas", remaining: 24 * time.Hour, want: domain.PriorityMedium},
		{name: "Menos de 48 horas", remaining: 47 * time.Hour, want: domain.PriorityMedium},
		{name: "48 horas ou mais", remaining: 48 * time.Hour, want: domain.PriorityNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SchedulePriority(tt.remaining))
		})
	}
}

func TestService_GetWeeklySchedule(t *testing.T) {
	service, deps := newTestService(t)

	morning := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)
	later := fixedNow.Add(30 * time.Minute)
	weekend := time.Date(2024, 3, 24, 14, 0, 0, 0, time.UTC)
	overdue := fixedNow.Add(-48 * time.Hour)

	deps.source.EXPECT().WeeklySchedule(fixedNow).Return([]domain.ScheduledVisit{
		{ID: 3, ScheduledAt: weekend, DeadlineAt: weekend.AddDate(0, 0, 3)},
		{ID: 2, ScheduledAt: later, DeadlineAt: later.AddDate(0, 0, 1)},
		{ID: 1, ScheduledAt: morning, DeadlineAt: morning.AddDate(0, 0, 1)},
		{ID: 0, ScheduledAt: overdue, DeadlineAt: fixedNow.Add(-time.Hour)},
	})

	schedule := service.GetWeeklySchedule("1")

	require.Len(t, schedule, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, []int{schedule[0].ID, schedule[1].ID, schedule[2].ID, schedule[3].ID})

	assert.Equal(t, 0, schedule[0].HoursRemaining)
	assert.Equal(t, domain.PriorityHigh, schedule[0].Priority)

	assert.Equal(t, 23, schedule[1].HoursRemaining)
	assert.Equal(t, domain.PriorityHigh, schedule[1].Priority)
	assert.Equal(t, "2024-03-20", schedule[1].Date)
	assert.Equal(t, "08:00", schedule[1].Time)
	assert.Equal(t, "2024-03-21 08:00", schedule[1].Deadline)

	assert.Equal(t, 24, schedule[2].HoursRemaining)
	assert.Equal(t, domain.PriorityMedium, schedule[2].Priority)

	assert.Equal(t, domain.PriorityNormal, schedule[3].Priority)
	assert.Equal(t, "14:00", schedule[3].Time)

	for _, visit := range schedule {
		assert.Equal(t, domain.VisitScheduled, visit.Status)
	}
}

func TestService_HistoriesSortedNewestFirst(t *testing.T) {
	service, deps := newTestService(t)

	deps.source.EXPECT().Ruptures(10).Return([]domain.Rupture{
		{ID: 1, ReportedAt: fixedNow.AddDate(0, 0, -20)},
		{ID: 2, ReportedAt: fixedNow.AddDate(0, 0, -2)},
	})
	deps.source.EXPECT().Feedbacks(8).Return([]domain.Feedback{
		{ID: 1, GivenAt: fixedNow.AddDate(0, 0, -9)},
		{ID: 2, GivenAt: fixedNow.AddDate(0, 0, -1)},
	})
	deps.source.EXPECT().PromoterNotifications().Return([]domain.Notification{
		{ID: 1, Timestamp: fixedNow.Add(-30 * time.Hour)},
		{ID: 2, Timestamp: fixedNow.Add(-2 * time.Hour)},
	})

	ruptures := service.GetRuptureHistory("1")
	assert.Equal(t, 2, ruptures[0].ID)
	assert.Equal(t, "2024-03-18", ruptures[0].Date)

	feedbacks := service.GetFeedbackHistory("1")
	assert.Equal(t, 2, feedbacks[0].ID)
	assert.Equal(t, "2024-03-19", feedbacks[0].Date)

	notifications := service.GetNotifications("1")
	assert.Equal(t, 2, notifications[0].ID)
}

func TestService_ContestProduct(t *testing.T) {
	tests := []struct {
		name       string
		publishErr error
	}{
		{name: "Contestação publicada para o gestor"},
		{name: "Falha na publicação não impede a contestação", publishErr: errors.New("broker indisponível")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)

			deps.source.EXPECT().RecordID().Return(5555)
			deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, event domain.AlertEvent) error {
					assert.Equal(t, domain.EventContestSubmitted, event.Type)
					assert.Equal(t, "SKU003", event.ProductSKU)
					assert.Equal(t, 1, *event.PromoterID)
					return tt.publishErr
				})

			contest := service.ContestProduct(context.Background(), domain.ContestRequest{
				PromoterID: intPtr(1),
				ProductSKU: "SKU003",
				Store:      "Mercado Central",
				Reason:     "Loja fora da minha rota",
			})

			assert.Equal(t, 5555, contest.ID)
			assert.Equal(t, domain.ContestPending, contest.Status)
			assert.Equal(t, fixedNow, contest.CreatedAt)
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	service, _ := newTestService(t)

	profile := service.UpdateProfile(domain.ProfileUpdateRequest{PromoterID: intPtr(1), Name: "João S.", Phone: "(11) 98888-0000"})

	assert.Equal(t, "João S.", profile.Name)
	assert.Equal(t, "(11) 98888-0000", profile.Phone)
	assert.Equal(t, fixedNow, profile.UpdatedAt)
}

func TestService_RegisterPrice(t *testing.T) {
	lastPrice := func(price float64) *domain.PriceRecord {
		return &domain.PriceRecord{Store: "Loja Express", ProductSKU: "SKU002", Price: price}
	}

	tests := []struct {
		name          string
		request       domain.PriceRequest
		setup         func(deps testDeps)
		wantCode      string
		wantPrevious  float64
		wantVariation float64
		wantPercent   float64
		wantAlert     bool
		wantMessage   string
	}{
		{
			name:    "Alta acima de R$ 1,00 alerta o gestor",
			request: domain.PriceRequest{PromoterID: intPtr(1), Store: "Loja Express", ProductSKU: "SKU002", CurrentPrice: floatPtr(11.50)},
			setup: func(deps testDeps) {
				deps.prices.EXPECT().LastPrice(gomock.Any(), "Loja Express", "SKU002").Return(lastPrice(10.00), nil)
				deps.prices.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event domain.AlertEvent) error {
						assert.Equal(t, domain.EventPriceVariationAlert, event.Type)
						assert.Equal(t, "Loja Express|SKU002", event.PartitionKey())
						return nil
					})
			},
			wantPrevious:  10.00,
			wantVariation: 1.50,
			wantPercent:   15.0,
			wantAlert:     true,
			wantMessage:   "Variação de preço detectada: R$ 10.00 → R$ 11.50",
		},
		{
			name:    "Variação de exatamente R$ 1,00 não alerta",
			request: domain.PriceRequest{Store: "Loja Express", ProductSKU: "SKU002", CurrentPrice: floatPtr(11.00)},
			setup: func(deps testDeps) {
				deps.prices.EXPECT().LastPrice(gomock.Any(), "Loja Express", "SKU002").Return(lastPrice(10.00), nil)
				deps.prices.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPrevious:  10.00,
			wantVariation: 1.00,
			wantPercent:   10.0,
		},
		{
			name:    "Queda acima de R$ 1,00 também alerta",
			request: domain.PriceRequest{Store: "Loja Express", ProductSKU: "SKU002", CurrentPrice: floatPtr(8.90)},
			setup: func(deps testDeps) {
				deps.prices.EXPECT().LastPrice(gomock.Any(), "Loja Express", "SKU002").Return(lastPrice(10.00), nil)
				deps.prices.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker indisponível"))
			},
			wantPrevious:  10.00,
			wantVariation: -1.10,
			wantPercent:   -11.0,
			wantAlert:     true,
			wantMessage:   "Variação de preço detectada: R$ 10.00 → R$ 8.90",
		},
		{
			name:    "Sem histórico usa o preço de referência",
			request: domain.PriceRequest{Store: "Mercado Central", ProductSKU: "SKU001", CurrentPrice: floatPtr(5.25)},
			setup: func(deps testDeps) {
				deps.prices.EXPECT().LastPrice(gomock.Any(), "Mercado Central", "SKU001").Return(nil, nil)
				deps.source.EXPECT().ReferencePrice().Return(5.25)
				deps.prices.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPrevious: 5.25,
		},
		{
			name:    "Preço anterior zero não calcula percentual",
			request: domain.PriceRequest{Store: "Mercado Central", ProductSKU: "SKU001", CurrentPrice: floatPtr(0.80)},
			setup: func(deps testDeps) {
				deps.prices.EXPECT().LastPrice(gomock.Any(), "Mercado Central", "SKU001").Return(lastPrice(0), nil)
				deps.prices.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantVariation: 0.80,
		},
		{
			name:     "Preço ausente é inválido",
			request:  domain.PriceRequest{Store: "Loja Express", ProductSKU: "SKU002"},
			setup:    func(deps testDeps) {},
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "Falha ao consultar histórico",
			request: domain.PriceRequest{Store: "Loja Express", ProductSKU: "SKU002", CurrentPrice: floatPtr(3.00)},
			setup: func(deps testDeps) {
				deps.prices.EXPECT().LastPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conexão recusada"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
		{
			name:    "Falha ao salvar o preço",
			request: domain.PriceRequest{Store: "Loja Express", ProductSKU: "SKU002", CurrentPrice: floatPtr(3.00)},
			setup: func(deps testDeps) {
				deps.prices.EXPECT().LastPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(lastPrice(3.00), nil)
				deps.source.EXPECT().RecordID().Return(1)
				deps.prices.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("conexão recusada"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			deps.source.EXPECT().RecordID().Return(2024).AnyTimes()
			tt.setup(deps)

			registration, err := service.RegisterPrice(context.Background(), tt.request)

			if tt.wantCode != "" {
				var domainErr *domain.Error
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.wantCode, domainErr.Code)
				assert.Nil(t, registration)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, *tt.request.CurrentPrice, registration.Entry.CurrentPrice)
			assert.Equal(t, fixedNow, registration.Entry.RegisteredAt)
			assert.Equal(t, tt.wantPrevious, registration.Comparison.PreviousPrice)
			assert.Equal(t, tt.wantVariation, registration.Comparison.Variation)
			assert.Equal(t, tt.wantPercent, registration.Comparison.VariationPercentage)
			assert.Equal(t, tt.wantAlert, registration.AlertSentToManager)
			assert.Equal(t, tt.wantMessage, registration.AlertMessage)
		})
	}
}

func TestService_RegisterPriceComparaComUltimoRegistro(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockDataSource(ctrl)
	source.EXPECT().RecordID().Return(1).AnyTimes()
	source.EXPECT().ReferencePrice().Return(4.00)

	service := NewService(source, repository.NewMemoryPriceRecordRepository(), nil, referencedata.Default()).(*Service)
	clock := fixedNow
	service.now = func() time.Time { return clock }

	request := domain.PriceRequest{Store: "Mercado do Povo", ProductSKU: "SKU004", CurrentPrice: floatPtr(4.50)}
	first, err := service.RegisterPrice(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, 4.00, first.Comparison.PreviousPrice)

	clock = clock.Add(time.Hour)
	request.CurrentPrice = floatPtr(6.00)
	second, err := service.RegisterPrice(context.Background(), request)
	require.NoError(t, err)

	assert.Equal(t, 4.50, second.Comparison.PreviousPrice)
	assert.Equal(t, 1.50, second.Comparison.Variation)
	assert.Equal(t, 33.3, second.Comparison.VariationPercentage)
	assert.True(t, second.AlertSentToManager)
}

func TestService_RegisterExpiry(t *testing.T) {
	tests := []struct {
		name         string
		expiryDate   string
		wantCode     string
		wantDays     int
		wantSeverity string
	}{
		{name: "Cinco dias gera alerta médio", expiryDate: "2024-03-25", wantDays: 5, wantSeverity: domain.SeverityMedium},
		{name: "Dois dias gera alerta alto", expiryDate: "2024-03-22", wantDays: 2, wantSeverity: domain.SeverityHigh},
		{name: "Três dias ainda é alerta alto", expiryDate: "2024-03-23", wantDays: 3, wantSeverity: domain.SeverityHigh},
		{name: "Dez dias ainda gera alerta", expiryDate: "2024-03-30", wantDays: 10, wantSeverity: domain.SeverityMedium},
		{name: "Vinte dias não gera alerta", expiryDate: "2024-04-09", wantDays: 20},
		{name: "Produto já vencido", expiryDate: "2024-03-18", wantDays: -2, wantSeverity: domain.SeverityHigh},
		{name: "Data em formato inválido", expiryDate: "25/03/2024", wantCode: apiErrors.ErrInvalidFormat},
		{name: "Data ausente", expiryDate: "", wantCode: apiErrors.ErrMissingRequiredData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, deps := newTestService(t)
			deps.source.EXPECT().RecordID().Return(77).AnyTimes()
			if tt.wantSeverity != "" {
				deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event domain.AlertEvent) error {
						assert.Equal(t, domain.EventExpiryAlert, event.Type)
						assert.Equal(t, tt.wantSeverity, event.Severity)
						return nil
					})
			}

			registration, err := service.RegisterExpiry(context.Background(), domain.ExpiryRequest{
				PromoterID: intPtr(1),
				Store:      "Loja Express",
				ProductSKU: "SKU005",
				ExpiryDate: tt.expiryDate,
			})

			if tt.wantCode != "" {
				var domainErr *domain.Error
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.wantCode, domainErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDays, registration.Entry.DaysUntilExpiry)

			if tt.wantSeverity == "" {
				assert.Nil(t, registration.Alert)
				return
			}

			require.NotNil(t, registration.Alert)
			assert.Equal(t, tt.wantSeverity, registration.Alert.Severity)
			assert.True(t, registration.Alert.ActionRequired)
			assert.Contains(t, registration.Alert.Message, "dias restantes")
		})
	}
}

func TestService_GetTrainingMaterials(t *testing.T) {
	service, _ := newTestService(t)

	materials := service.GetTrainingMaterials()

	assert.Len(t, materials.Videos, 3)
	assert.Len(t, materials.Guides, 2)
	assert.Len(t, materials.PDVMaps, 2)
}
