package domain

import "time"

const (
	VisitCompleted  = "Completed"
	VisitPending    = "Pending"
	VisitInProgress = "InProgress"
	VisitScheduled  = "Scheduled"
)

const ContestPending = "Pending"

type VisitRecord struct {
	ID              int       `json:"id"`
	Store           string    `json:"store"`
	VisitedAt       time.Time `json:"-"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	Score           int       `json:"score"`
	PhotosCount     int       `json:"photos_count"`
	IssuesFound     int       `json:"issues_found"`
	Duration        string    `json:"duration"`
	ProductsChecked int       `json:"products_checked"`
}

// ScheduledVisit tem Deadline sempre posterior a ScheduledAt
type ScheduledVisit struct {
	ID                int              `json:"id"`
	Store             string           `json:"store"`
	ScheduledAt       time.Time        `json:"-"`
	DeadlineAt        time.Time        `json:"-"`
	Date              string           `json:"date"`
	Time              string           `json:"time"`
	Deadline          string           `json:"deadline"`
	HoursRemaining    int              `json:"hours_remaining"`
	Priority          string           `json:"priority"`
	ProductsToCheck   []CatalogProduct `json:"products_to_check"`
	EstimatedDuration string           `json:"estimated_duration"`
	Status            string           `json:"status"`
}

type Rupture struct {
	ID             int            `json:"id"`
	Store          string         `json:"store"`
	Product        CatalogProduct `json:"product"`
	ReportedAt     time.Time      `json:"-"`
	Date           string         `json:"date"`
	Time           string         `json:"time"`
	Type           string         `json:"type"`
	Status         string         `json:"status"`
	EstimatedLoss  string         `json:"estimated_loss"`
	ResolutionTime string         `json:"resolution_time"`
}

type Feedback struct {
	ID             int       `json:"id"`
	Store          string    `json:"store"`
	GivenAt        time.Time `json:"-"`
	Date           string    `json:"date"`
	From           string    `json:"from"`
	Type           string    `json:"type"`
	Score          int       `json:"score"`
	Message        string    `json:"message"`
	ActionRequired bool      `json:"action_required"`
	Priority       string    `json:"priority"`
}

type ProductResponsibility struct {
	Product          CatalogProduct `json:"product"`
	Store            string         `json:"store"`
	AssignedDate     string         `json:"assigned_date"`
	LastCheck        string         `json:"last_check"`
	CurrentPrice     float64        `json:"current_price"`
	SuggestedPrice   float64        `json:"suggested_price"`
	Status           string         `json:"status"`
	PerformanceScore int            `json:"performance_score"`
	CanContest       bool           `json:"can_contest"`
}

type ContestRequest struct {
	PromoterID *int   `json:"promoter_id"`
	ProductSKU string `json:"product_sku"`
	Store      string `json:"store"`
	Reason     string `json:"reason"`
	Message    string `json:"message"`
}

type Contest struct {
	ID         int       `json:"id"`
	PromoterID *int      `json:"promoter_id"`
	ProductSKU string    `json:"product_sku"`
	Store      string    `json:"store"`
	Reason     string    `json:"reason"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	Status     string    `json:"status"`
}

type ProfileUpdateRequest struct {
	PromoterID   *int   `json:"promoter_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ProfilePhoto string `json:"profile_photo"`
}

type ProfileUpdate struct {
	PromoterID   *int      `json:"promoter_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	ProfilePhoto string    `json:"profile_photo"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PriceRequest traz CurrentPrice como ponteiro para distinguir ausência de zero
type PriceRequest struct {
	PromoterID       *int     `json:"promoter_id"`
	Store            string   `json:"store"`
	ProductSKU       string   `json:"product_sku"`
	CurrentPrice     *float64 `json:"current_price"`
	HasPromotion     bool     `json:"has_promotion"`
	PromotionDetails string   `json:"promotion_details"`
}

type PriceEntry struct {
	ID               int       `json:"id"`
	PromoterID       *int      `json:"promoter_id"`
	Store            string    `json:"store"`
	ProductSKU       string    `json:"product_sku"`
	CurrentPrice     float64   `json:"current_price"`
	HasPromotion     bool      `json:"has_promotion"`
	PromotionDetails string    `json:"promotion_details"`
	RegisteredAt     time.Time `json:"registered_at"`
}

type PriceComparison struct {
	PreviousPrice       float64 `json:"previous_price"`
	Variation           float64 `json:"variation"`
	VariationPercentage float64 `json:"variation_percentage"`
}

type PriceRegistration struct {
	Entry              PriceEntry      `json:"price_entry"`
	Comparison         PriceComparison `json:"comparison"`
	AlertSentToManager bool            `json:"alert_sent_to_manager,omitempty"`
	AlertMessage       string          `json:"alert_message,omitempty"`
}

// PriceRecord é o preço persistido usado como base da próxima comparação
type PriceRecord struct {
	Store        string
	ProductSKU   string
	Price        float64
	PromoterID   *int
	RegisteredAt time.Time
}

type ExpiryRequest struct {
	PromoterID  *int   `json:"promoter_id"`
	Store       string `json:"store"`
	ProductSKU  string `json:"product_sku"`
	ExpiryDate  string `json:"expiry_date"`
	ExpiryPhoto string `json:"expiry_photo"`
}

type ExpiryEntry struct {
	ID              int       `json:"id"`
	PromoterID      *int      `json:"promoter_id"`
	Store           string    `json:"store"`
	ProductSKU      string    `json:"product_sku"`
	ExpiryDate      string    `json:"expiry_date"`
	ExpiryPhoto     string    `json:"expiry_photo"`
	DaysUntilExpiry int       `json:"days_until_expiry"`
	RegisteredAt    time.Time `json:"registered_at"`
}

type ExpiryAlert struct {
	Message        string `json:"message"`
	Severity       string `json:"severity"`
	ActionRequired bool   `json:"action_required"`
}

type ExpiryRegistration struct {
	Entry ExpiryEntry  `json:"expiry_entry"`
	Alert *ExpiryAlert `json:"expiry_alert,omitempty"`
}

type TrainingVideo struct {
	ID        int    `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Duration  string `json:"duration" yaml:"duration"`
	Thumbnail string `json:"thumbnail" yaml:"thumbnail"`
	URL       string `json:"url" yaml:"url"`
	Category  string `json:"category" yaml:"category"`
}

type TrainingGuide struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	PDFURL      string `json:"pdf_url" yaml:"pdf_url"`
	Pages       int    `json:"pages" yaml:"pages"`
}

type PDVMap struct {
	Store       string `json:"store" yaml:"store"`
	LayoutImage string `json:"layout_image" yaml:"layout_image"`
	Editable    bool   `json:"editable" yaml:"editable"`
	LastUpdated string `json:"last_updated" yaml:"last_updated"`
}

type TrainingMaterials struct {
	Videos  []TrainingVideo `json:"videos" yaml:"videos"`
	Guides  []TrainingGuide `json:"guides" yaml:"guides"`
	PDVMaps []PDVMap        `json:"pdv_maps" yaml:"pdv_maps"`
}

const (
	EventPriceVariationAlert = "price_variation_alert"
	EventExpiryAlert         = "expiry_alert"
	EventContestSubmitted    = "contest_submitted"
)

// AlertEvent é o payload publicado para o gestor quando um registro do promotor exige atenção
type AlertEvent struct {
	Type       string    `json:"type"`
	PromoterID *int      `json:"promoter_id"`
	Store      string    `json:"store"`
	ProductSKU string    `json:"product_sku"`
	Message    string    `json:"message"`
	Severity   string    `json:"severity,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PartitionKey mantém na mesma partição os eventos do mesmo produto na mesma loja
func (e AlertEvent) PartitionKey() string {
	return e.Store + "|" + e.ProductSKU
}
