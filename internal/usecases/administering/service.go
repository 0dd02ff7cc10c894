package administering

import (
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/tradelite-api/infrastructure/referencedata"
	"github.com/vfg2006/tradelite-api/internal/domain"
	"github.com/vfg2006/tradelite-api/pkg/utils"
)

const (
	paymentHistoryLength = 12
	productListSize      = 20
	billingStepDays      = 30
	dueDay               = 10
)

type Service struct {
	source  DataSource
	catalog *referencedata.Catalog
	now     func() time.Time
}

func NewService(source DataSource, catalog *referencedata.Catalog) AdminService {
	return &Service{
		source:  source,
		catalog: catalog,
		now:     time.Now,
	}
}

func (s *Service) GetBillingInfo() *domain.BillingInfo {
	now := s.now()
	history := s.paymentHistory(now)

	return &domain.BillingInfo{
		CurrentPlan:     s.source.BillingPlan(),
		NextBillingDate: now.AddDate(0, 0, 30).Format(utils.DateLayout),
		PaymentMethods:  s.catalog.Billing.PaymentMethods,
		Invoices:        s.catalog.Billing.Invoices,
		PaymentHistory:  history,
		Statistics:      PaymentStatisticsFor(history),
	}
}

// paymentHistory monta um ponto a cada 30 dias para trás. O vencimento é sempre
// o dia 10 do mês do ponto e o pagamento é o vencimento somado ao deslocamento sorteado.
func (s *Service) paymentHistory(now time.Time) []domain.PaymentRecord {
	draws := s.source.PaymentDraws(paymentHistoryLength)
	history := make([]domain.PaymentRecord, 0, len(draws))

	for i, draw := range draws {
		point := now.AddDate(0, 0, -billingStepDays*i)
		due := time.Date(point.Year(), point.Month(), dueDay, 0, 0, 0, 0, point.Location())

		record := domain.PaymentRecord{
			Month:    point.Format("2006-01"),
			Amount:   s.catalog.Billing.MonthlyAmount,
			DueDate:  due.Format(utils.DateLayout),
			PaidDate: due.AddDate(0, 0, draw.OffsetDays).Format(utils.DateLayout),
			Status:   domain.PaymentOnTime,
		}
		if draw.Late {
			record.Status = domain.PaymentLate
			record.DaysLate = draw.OffsetDays
		}

		history = append(history, record)
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Month > history[j].Month
	})

	return history
}

// PaymentStatisticsFor resume a série de pagamentos. Série vazia conta como 100% em dia.
func PaymentStatisticsFor(history []domain.PaymentRecord) domain.PaymentStatistics {
	stats := domain.PaymentStatistics{
		TotalPayments:    len(history),
		OnTimePercentage: 100,
	}

	totalDelay := 0
	for _, record := range history {
		if record.Status == domain.PaymentLate {
			stats.LatePayments++
			totalDelay += record.DaysLate
		}
	}

	if stats.TotalPayments > 0 {
		stats.OnTimePercentage = utils.Percentage(stats.TotalPayments-stats.LatePayments, stats.TotalPayments)
	}
	if stats.LatePayments > 0 {
		stats.AverageDelayDays = utils.RoundWithOneDecimalPlace(float64(totalDelay) / float64(stats.LatePayments))
	}

	return stats
}

func (s *Service) ListProducts() []domain.Product {
	return s.source.Products(productListSize)
}

func (s *Service) CreateProduct(request domain.ProductRequest) *domain.Product {
	price := 0.0
	if request.SuggestedPrice != nil {
		price = *request.SuggestedPrice
	}

	return &domain.Product{
		ID:             s.source.RecordID(),
		SKU:            request.SKU,
		Name:           request.Name,
		Brand:          request.Brand,
		Category:       request.Category,
		Volume:         request.Volume,
		SuggestedPrice: price,
		CreatedAt:      s.now(),
		Active:         true,
	}
}

func (s *Service) ListStores() []domain.Store {
	return s.source.Stores()
}

func (s *Service) CreateStore(request domain.StoreRequest) *domain.Store {
	return &domain.Store{
		ID:             s.source.RecordID(),
		CNPJ:           request.CNPJ,
		Name:           request.Name,
		Address:        request.Address,
		Manager:        request.Manager,
		OperatingHours: request.OperatingHours,
		FacadePhoto:    request.FacadePhoto,
		Observations:   request.Observations,
		CreatedAt:      s.now(),
		Active:         true,
	}
}

func (s *Service) ListCategories() []string {
	return s.catalog.Categories
}

func (s *Service) ListBrands() []string {
	return s.catalog.Brands
}

func (s *Service) ContactSupport(request domain.SupportContactRequest) *domain.AdminTicket {
	priority := request.Priority
	if priority == "" {
		priority = "normal"
	}

	return &domain.AdminTicket{
		ID:        fmt.Sprintf("ADM%03d", s.source.TicketNumber()),
		Type:      "admin_support",
		Subject:   request.Subject,
		Message:   request.Message,
		Priority:  priority,
		CreatedAt: s.now(),
		Status:    "open",
	}
}

func (s *Service) GetDashboardStats() *domain.DashboardStats {
	now := s.now()
	stats := s.source.DashboardGauges()

	stats.SystemHealth = domain.SystemHealth{
		Uptime:       "99.8%",
		ResponseTime: "120ms",
		ErrorRate:    "0.2%",
	}
	stats.RecentActivities = []domain.Activity{
		{Type: "user_created", Description: "Novo promotor cadastrado: João Silva", Timestamp: now.Add(-2 * time.Hour)},
		{Type: "store_added", Description: "Nova loja adicionada: Mercado Central", Timestamp: now.Add(-5 * time.Hour)},
		{Type: "product_updated", Description: "Produto atualizado: Suco de Laranja 500ml", Timestamp: now.Add(-8 * time.Hour)},
	}

	return &stats
}
