package administering

import "github.com/vfg2006/tradelite-api/internal/domain"

// DataSource fornece os registros sintéticos do painel administrativo
type DataSource interface {
	// BillingPlan sorteia o plano atual entre os planos do catálogo
	BillingPlan() domain.Plan
	// PaymentDraws sorteia n pontos do histórico de pagamentos, do mais recente ao mais antigo
	PaymentDraws(n int) []domain.PaymentDraw
	Products(n int) []domain.Product
	Stores() []domain.Store
	// DashboardGauges preenche apenas os contadores aleatórios do painel
	DashboardGauges() domain.DashboardStats
	RecordID() int
	TicketNumber() int
}

type AdminService interface {
	GetBillingInfo() *domain.BillingInfo
	ListProducts() []domain.Product
	CreateProduct(request domain.ProductRequest) *domain.Product
	ListStores() []domain.Store
	CreateStore(request domain.StoreRequest) *domain.Store
	ListCategories() []string
	ListBrands() []string
	ContactSupport(request domain.SupportContactRequest) *domain.AdminTicket
	GetDashboardStats() *domain.DashboardStats
}
