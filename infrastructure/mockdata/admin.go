package mockdata

import (
	"fmt"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

var (
	productKinds   = []string{"Suco", "Refrigerante", "Água", "Energético"}
	productFlavors = []string{"Laranja", "Uva", "Limão", "Maracujá"}
	productVolumes = []int{350, 500, 1000, 1500, 2000}

	streetNames   = []string{"das Flores", "Principal", "do Comércio", "Central"}
	neighborhoods = []string{"Centro", "Comercial", "Industrial", "Residencial"}
	cities        = []string{"Salvador", "São Paulo", "Rio de Janeiro", "Brasília"}
	states        = []string{"BA", "SP", "RJ", "DF"}
	firstNames    = []string{"João", "Maria", "Pedro", "Ana"}
	lastNames     = []string{"Silva", "Santos", "Oliveira", "Costa"}
)

func (g *Generator) BillingPlan() domain.Plan {
	g.mu.Lock()
	defer g.mu.Unlock()
	return pick(g, g.catalog.Billing.Plans)
}

// PaymentDraws sorteia 10% de atrasos. Pagamentos em dia caem até 5 dias antes
// ou depois do vencimento; atrasados caem de 0 a 15 dias depois.
func (g *Generator) PaymentDraws(n int) []domain.PaymentDraw {
	g.mu.Lock()
	defer g.mu.Unlock()

	draws := make([]domain.PaymentDraw, 0, n)
	for i := 0; i < n; i++ {
		if g.chance(0.1) {
			draws = append(draws, domain.PaymentDraw{Late: true, OffsetDays: g.between(0, 15)})
			continue
		}
		draws = append(draws, domain.PaymentDraw{OffsetDays: g.between(-5, 5)})
	}
	return draws
}

func (g *Generator) Products(n int) []domain.Product {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	products := make([]domain.Product, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.Product{
			ID:             i + 1,
			SKU:            fmt.Sprintf("SKU%d", g.between(1000, 9999)),
			Name:           fmt.Sprintf("Produto %s %s", pick(g, productKinds), pick(g, productFlavors)),
			Brand:          pick(g, g.catalog.Brands),
			Category:       pick(g, g.catalog.Categories),
			Volume:         fmt.Sprintf("%dml", pick(g, productVolumes)),
			SuggestedPrice: g.price(2.50, 15.90),
			CreatedAt:      g.daysAgo(now, 1, 365),
			Active:         g.rand.Intn(4) != 0,
		})
	}
	return products
}

func (g *Generator) Stores() []domain.Store {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	stores := make([]domain.Store, 0, len(g.catalog.AdminStores))
	for i, name := range g.catalog.AdminStores {
		stores = append(stores, domain.Store{
			ID:   i + 1,
			CNPJ: fmt.Sprintf("%d.%d.%d/0001-%d", g.between(10, 99), g.between(100, 999), g.between(100, 999), g.between(10, 99)),
			Name: name,
			Address: &domain.Address{
				Street:       fmt.Sprintf("Rua %s %d", pick(g, streetNames), g.between(100, 999)),
				Neighborhood: "Bairro " + pick(g, neighborhoods),
				City:         pick(g, cities),
				State:        pick(g, states),
				ZipCode:      fmt.Sprintf("%d-%d", g.between(10000, 99999), g.between(100, 999)),
			},
			Manager: &domain.StoreManager{
				Name:     pick(g, firstNames) + " " + pick(g, lastNames),
				Phone:    g.phone(),
				WhatsApp: g.phone(),
			},
			OperatingHours: &domain.OperatingHours{
				MondayFriday: "08:00 - 22:00",
				Saturday:     "08:00 - 20:00",
				Sunday:       "09:00 - 18:00",
			},
			FacadePhoto:  fmt.Sprintf("/photos/store_%d_facade.jpg", i+1),
			Observations: "Loja com bom movimento, localizada em área comercial",
			CreatedAt:    g.daysAgo(now, 1, 365),
			Active:       true,
		})
	}
	return stores
}

func (g *Generator) phone() string {
	return fmt.Sprintf("(11) 9%d-%d", g.between(1000, 9999), g.between(1000, 9999))
}

func (g *Generator) DashboardGauges() domain.DashboardStats {
	g.mu.Lock()
	defer g.mu.Unlock()

	return domain.DashboardStats{
		TotalUsers:      g.between(50, 200),
		ActivePromoters: g.between(20, 80),
		ActiveManagers:  g.between(5, 20),
		TotalStores:     g.between(30, 100),
		TotalProducts:   g.between(100, 500),
		MonthlyVisits:   g.between(500, 2000),
	}
}
