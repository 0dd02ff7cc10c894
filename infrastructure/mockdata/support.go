package mockdata

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/tradelite-api/internal/domain"
)

var (
	devices = []string{
		"iPhone 14 Pro", "Samsung Galaxy S23", "iPhone 13", "Xiaomi Redmi Note 12",
		"Samsung Galaxy A54", "iPhone 12", "Motorola Edge 40", "OnePlus 11",
	}
	locations = []string{
		"Salvador/BA", "São Paulo/SP", "Rio de Janeiro/RJ", "Brasília/DF",
		"Belo Horizonte/MG", "Fortaleza/CE", "Recife/PE", "Porto Alegre/RS",
	}
	ipAddresses     = []string{"192.168.1.100", "10.0.0.50", "172.16.0.25", "192.168.0.200"}
	connectionTypes = []string{"Wi-Fi", "4G", "5G", "3G"}

	accessedPDVs   = []string{"Supermercado Popular", "Mercado Central", "Loja Express", "Atacadão Norte"}
	analyzedStores = []string{"Loja A", "Loja B", "Loja C"}

	ticketStatuses   = []domain.TicketStatus{domain.TicketOpen, domain.TicketInProgress, domain.TicketResolved, domain.TicketClosed}
	ticketCategories = []string{"Técnico", "Funcionalidade", "Bug", "Dúvida", "Sugestão"}
	ticketSubjects   = []string{"check-in", "upload de fotos", "geolocalização", "login", "sincronização"}
	ticketPriorities = []string{"Low", "Medium", "High", "Critical"}
)

const (
	appVersion        = "2.1.4"
	baseLatitude      = -12.9714
	baseLongitude     = -38.5014
	ticketDescription = "Descrição detalhada do problema reportado pelo usuário"
)

func (g *Generator) HistoricalTickets(userID string) []domain.Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	count := g.between(2, 6)
	tickets := make([]domain.Ticket, 0, count)
	for i := 0; i < count; i++ {
		createdAt := g.daysAgo(now, 1, 30)
		tickets = append(tickets, domain.Ticket{
			ID:          fmt.Sprintf("TL%d", g.between(100, 999)),
			UserID:      userID,
			Title:       "Problema com " + pick(g, ticketSubjects),
			Category:    pick(g, ticketCategories),
			Description: ticketDescription,
			Priority:    pick(g, ticketPriorities),
			Status:      pick(g, ticketStatuses),
			CreatedAt:   createdAt,
			UpdatedAt:   g.hoursAhead(createdAt, 1, 48),
			Attachments: []string{},
		})
	}
	return tickets
}

// TechnicalInfo simula o último estado conhecido do aparelho do usuário. O sistema
// operacional acompanha o modelo sorteado.
func (g *Generator) TechnicalInfo(userID string, userType string) domain.TechnicalInfo {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	model := pick(g, devices)
	os := "Android 13"
	if strings.Contains(model, "iPhone") {
		os = "iOS 17.2"
	}

	return domain.TechnicalInfo{
		UserID:   userID,
		UserType: userType,
		DeviceInfo: domain.DeviceInfo{
			Model:      model,
			OS:         os,
			AppVersion: appVersion,
			LastUpdate: g.daysAgo(now, 1, 30),
		},
		ConnectionInfo: domain.ConnectionInfo{
			LastIP:         pick(g, ipAddresses),
			ConnectionType: pick(g, connectionTypes),
			LastSeen:       g.minutesAgo(now, 5, 120),
		},
		LocationInfo: domain.LocationInfo{
			LastLocation: pick(g, locations),
			Coordinates: domain.Coordinates{
				Lat: baseLatitude + g.uniform(-0.1, 0.1),
				Lng: baseLongitude + g.uniform(-0.1, 0.1),
			},
			Accuracy: g.between(5, 50),
		},
		ActivityInfo: domain.ActivityInfo{
			LastActivity:    g.minutesAgo(now, 1, 60),
			SessionDuration: g.between(300, 3600),
			DailyUsage:      g.between(60, 480),
		},
	}
}

func (g *Generator) minutesAgo(now time.Time, lo, hi int) time.Time {
	return now.Add(-time.Duration(g.between(lo, hi)) * time.Minute)
}

// ActivityHistory devolve as atividades brutas do papel, sem ordenação.
// Administradores não têm histórico de campo.
func (g *Generator) ActivityHistory(role domain.Role) []domain.Activity {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	switch role {
	case domain.RolePromoter:
		return g.promoterActivities(now)
	case domain.RoleManager:
		return g.managerActivities(now)
	default:
		return []domain.Activity{}
	}
}

func (g *Generator) promoterActivities(now time.Time) []domain.Activity {
	activities := make([]domain.Activity, 0, 15)

	for i := 0; i < 5; i++ {
		activities = append(activities, domain.Activity{
			Type:        "pdv_access",
			Description: "Acessou " + pick(g, accessedPDVs),
			Timestamp:   g.hoursAgo(now, 1, 72),
			Location:    pick(g, locations),
		})
	}

	for i := 0; i < 3; i++ {
		store := pick(g, accessedPDVs)
		checkin := g.hoursAgo(now, 1, 48)
		checkout := checkin.Add(time.Duration(g.between(30, 120)) * time.Minute)

		activities = append(activities,
			domain.Activity{
				Type:        "checkin",
				Description: "Check-in em " + store,
				Timestamp:   checkin,
				Location:    pick(g, locations),
			},
			domain.Activity{
				Type:        "checkout",
				Description: "Check-out de " + store,
				Timestamp:   checkout,
				Location:    pick(g, locations),
			},
		)
	}

	for i := 0; i < 4; i++ {
		activities = append(activities, domain.Activity{
			Type:        "photo_upload",
			Description: fmt.Sprintf("Enviou %d foto(s) - %s", g.between(1, 3), pick(g, accessedPDVs)),
			Timestamp:   g.hoursAgo(now, 1, 48),
			Files:       []string{fmt.Sprintf("photo_%d.jpg", g.recordID())},
		})
	}

	return activities
}

func (g *Generator) managerActivities(now time.Time) []domain.Activity {
	activities := make([]domain.Activity, 0, 11)

	for i := 0; i < 8; i++ {
		activities = append(activities, domain.Activity{
			Type:        "dashboard_access",
			Description: "Acessou dashboard executivo",
			Timestamp:   g.hoursAgo(now, 1, 72),
			Duration:    g.between(300, 1800),
		})
	}

	for i := 0; i < 3; i++ {
		activities = append(activities, domain.Activity{
			Type:        "mentor_analysis",
			Description: "Analisou visita com Mentor PDV - " + pick(g, analyzedStores),
			Timestamp:   g.hoursAgo(now, 1, 48),
		})
	}

	return activities
}

func (g *Generator) BotReply() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return pick(g, g.catalog.Support.BotResponses)
}

func (g *Generator) QueuePosition() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.between(1, 5)
}
