package domain

import "time"

type Product struct {
	ID             int       `json:"id"`
	SKU            string    `json:"sku"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Category       string    `json:"category"`
	Volume         string    `json:"volume"`
	SuggestedPrice float64   `json:"suggested_price"`
	CreatedAt      time.Time `json:"created_at"`
	Active         bool      `json:"active"`
}

type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

type StoreManager struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
}

type OperatingHours struct {
	MondayFriday string `json:"monday_friday"`
	Saturday     string `json:"saturday"`
	Sunday       string `json:"sunday"`
}

// Store usa ponteiros nos objetos aninhados para ecoar null quando o cadastro não os informa
type Store struct {
	ID             int             `json:"id"`
	CNPJ           string          `json:"cnpj"`
	Name           string          `json:"name"`
	Address        *Address        `json:"address"`
	Manager        *StoreManager   `json:"manager"`
	OperatingHours *OperatingHours `json:"operating_hours"`
	FacadePhoto    string          `json:"facade_photo"`
	Observations   string          `json:"observations"`
	CreatedAt      time.Time       `json:"created_at"`
	Active         bool            `json:"active"`
}

// CatalogProduct é um produto de referência atribuível a promotores
type CatalogProduct struct {
	Name  string `json:"name" yaml:"name"`
	Brand string `json:"brand,omitempty" yaml:"brand"`
	SKU   string `json:"sku" yaml:"sku"`
}

type AdminTicket struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
}

type SystemHealth struct {
	Uptime       string `json:"uptime"`
	ResponseTime string `json:"response_time"`
	ErrorRate    string `json:"error_rate"`
}

type Activity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location,omitempty"`
	Duration    int       `json:"duration,omitempty"`
	Files       []string  `json:"files,omitempty"`
}

type DashboardStats struct {
	TotalUsers       int          `json:"total_users"`
	ActivePromoters  int          `json:"active_promoters"`
	ActiveManagers   int          `json:"active_managers"`
	TotalStores      int          `json:"total_stores"`
	TotalProducts    int          `json:"total_products"`
	MonthlyVisits    int          `json:"monthly_visits"`
	SystemHealth     SystemHealth `json:"system_health"`
	RecentActivities []Activity   `json:"recent_activities"`
}

// ProductRequest usa ponteiro no preço para aceitar o campo ausente como zero
type ProductRequest struct {
	SKU            string   `json:"sku"`
	Name           string   `json:"name"`
	Brand          string   `json:"brand"`
	Category       string   `json:"category"`
	Volume         string   `json:"volume"`
	SuggestedPrice *float64 `json:"suggested_price"`
}

type StoreRequest struct {
	CNPJ           string          `json:"cnpj"`
	Name           string          `json:"name"`
	Address        *Address        `json:"address"`
	Manager        *StoreManager   `json:"manager"`
	OperatingHours *OperatingHours `json:"operating_hours"`
	FacadePhoto    string          `json:"facade_photo"`
	Observations   string          `json:"observations"`
}

type SupportContactRequest struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
}
