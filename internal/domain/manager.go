package domain

import "time"

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityNormal = "Normal"
)

const (
	ContestApprove  = "approve"
	ContestReject   = "reject"
	ContestReassign = "reassign"
)

type Promoter struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
	Phone string `json:"phone" yaml:"phone"`
}

type PerformanceStats struct {
	VisitsCompleted int    `json:"visits_completed"`
	VisitsPending   int    `json:"visits_pending"`
	AverageScore    int    `json:"average_score"`
	PhotosUploaded  int    `json:"photos_uploaded"`
	IssuesReported  int    `json:"issues_reported"`
	ResponseTime    string `json:"response_time"`
}

type PromoterPerformance struct {
	Promoter         Promoter         `json:"promoter"`
	Stats            PerformanceStats `json:"stats"`
	StoresAssigned   []string         `json:"stores_assigned"`
	ProductsAssigned int              `json:"products_assigned"`
	PerformanceTrend string           `json:"performance_trend"`
	LastActivity     time.Time        `json:"last_activity"`
}

// PendingVisit é uma visita pendente ainda sem prioridade calculada
type PendingVisit struct {
	Store     string
	Promoter  Promoter
	LastVisit time.Time
	Deadline  time.Time
	Reason    string
}

type PendingStore struct {
	Store          string   `json:"store"`
	Promoter       Promoter `json:"promoter"`
	LastVisit      string   `json:"last_visit"`
	DaysSinceVisit int      `json:"days_since_visit"`
	Deadline       string   `json:"deadline"`
	HoursRemaining int      `json:"hours_remaining"`
	Priority       string   `json:"priority"`
	Reason         string   `json:"reason"`
}

type PriceVariation struct {
	ID                  int       `json:"id"`
	Product             string    `json:"product"`
	Store               string    `json:"store"`
	Promoter            Promoter  `json:"promoter"`
	OldPrice            float64   `json:"old_price"`
	NewPrice            float64   `json:"new_price"`
	Variation           float64   `json:"variation"`
	VariationPercentage float64   `json:"variation_percentage"`
	Date                time.Time `json:"-"`
	DateLabel           string    `json:"date"`
	Justification       *string   `json:"justification"`
}

type AssignmentRequest struct {
	PromoterID    *int   `json:"promoter_id"`
	Store         string `json:"store"`
	ProductSKU    string `json:"product_sku"`
	ManagerID     *int   `json:"manager_id"`
	EffectiveDate string `json:"effective_date"`
}

type Assignment struct {
	ID            int       `json:"id"`
	PromoterID    *int      `json:"promoter_id"`
	Store         string    `json:"store"`
	ProductSKU    string    `json:"product_sku"`
	AssignedBy    *int      `json:"assigned_by"`
	AssignedAt    time.Time `json:"assigned_at"`
	EffectiveDate string    `json:"effective_date"`
}

type ContestDecisionRequest struct {
	ContestID       *int   `json:"contest_id"`
	Action          string `json:"action"`
	ManagerID       *int   `json:"manager_id"`
	RejectionReason string `json:"rejection_reason"`
	NewPromoterID   *int   `json:"new_promoter_id"`
}

type ContestDecision struct {
	ContestID     *int      `json:"contest_id"`
	Action        string    `json:"action"`
	ProcessedBy   *int      `json:"processed_by"`
	ProcessedAt   time.Time `json:"processed_at"`
	Message       string    `json:"message"`
	Reason        string    `json:"reason,omitempty"`
	NewPromoterID *int      `json:"new_promoter_id,omitempty"`
}

type PerformanceMetrics struct {
	TotalVisits    int    `json:"total_visits"`
	AverageScore   int    `json:"average_score"`
	CompletionRate int    `json:"completion_rate"`
	ResponseTime   string `json:"response_time"`
}

type ProfileActivity struct {
	Date   string `json:"date"`
	Action string `json:"action"`
}

type PromoterProfile struct {
	Promoter           Promoter           `json:"promoter"`
	StoresAssigned     []string           `json:"stores_assigned"`
	ProductsAssigned   []CatalogProduct   `json:"products_assigned"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	RecentActivity     []ProfileActivity  `json:"recent_activity"`
}

type ReevaluationRequest struct {
	Store      string `json:"store"`
	PromoterID *int   `json:"promoter_id"`
	ManagerID  *int   `json:"manager_id"`
	Reason     string `json:"reason"`
	Priority   string `json:"priority"`
}

type Reevaluation struct {
	ID            int       `json:"id"`
	Store         string    `json:"store"`
	PromoterID    *int      `json:"promoter_id"`
	ScheduledBy   *int      `json:"scheduled_by"`
	ScheduledDate string    `json:"scheduled_date"`
	Reason        string    `json:"reason"`
	Priority      string    `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
}

type StorePriceCheck struct {
	Store          string  `json:"store" yaml:"store"`
	Promoter       string  `json:"promoter" yaml:"promoter"`
	CurrentPrice   float64 `json:"current_price" yaml:"current_price"`
	SuggestedPrice float64 `json:"suggested_price" yaml:"suggested_price"`
	LastCheck      string  `json:"last_check" yaml:"last_check"`
	Status         string  `json:"status" yaml:"status"`
}

type ProductHistory struct {
	SKU    string            `json:"sku" yaml:"sku"`
	Name   string            `json:"name" yaml:"name"`
	Brand  string            `json:"brand" yaml:"brand"`
	Stores []StorePriceCheck `json:"stores" yaml:"stores"`
}

type ProductUpdateRequest struct {
	ProductSKU    string         `json:"product_sku"`
	Store         string         `json:"store"`
	UpdatedFields map[string]any `json:"updated_fields"`
	ManagerID     *int           `json:"manager_id"`
}

type ProductUpdate struct {
	ProductSKU    string         `json:"product_sku"`
	Store         string         `json:"store"`
	UpdatedFields map[string]any `json:"updated_fields"`
	UpdatedBy     *int           `json:"updated_by"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
