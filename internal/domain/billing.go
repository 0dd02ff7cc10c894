package domain

const (
	PaymentOnTime = "on_time"
	PaymentLate   = "late"
)

type Plan struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Price        float64  `json:"price" yaml:"price"`
	BillingCycle string   `json:"billing_cycle" yaml:"billing_cycle"`
	Features     []string `json:"features" yaml:"features"`
}

type PaymentMethod struct {
	ID          int    `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Brand       string `json:"brand,omitempty" yaml:"brand"`
	IsDefault   bool   `json:"is_default" yaml:"is_default"`
	ExpiresAt   string `json:"expires_at,omitempty" yaml:"expires_at"`
}

type Invoice struct {
	ID          string  `json:"id" yaml:"id"`
	Date        string  `json:"date" yaml:"date"`
	Amount      float64 `json:"amount" yaml:"amount"`
	Status      string  `json:"status" yaml:"status"`
	DueDate     string  `json:"due_date" yaml:"due_date"`
	Description string  `json:"description" yaml:"description"`
	PDFURL      string  `json:"pdf_url" yaml:"pdf_url"`
}

// PaymentRecord é um ponto da série histórica de pagamentos
type PaymentRecord struct {
	Month    string  `json:"month"` // yyyy-mm
	Amount   float64 `json:"amount"`
	DueDate  string  `json:"due_date"`
	PaidDate string  `json:"paid_date"`
	Status   string  `json:"status"`
	DaysLate int     `json:"days_late"`
}

type PaymentStatistics struct {
	TotalPayments    int     `json:"total_payments"`
	LatePayments     int     `json:"late_payments"`
	OnTimePercentage float64 `json:"on_time_percentage"`
	AverageDelayDays float64 `json:"average_delay_days"`
}

type BillingInfo struct {
	CurrentPlan     Plan              `json:"current_plan"`
	NextBillingDate string            `json:"next_billing_date"`
	PaymentMethods  []PaymentMethod   `json:"payment_methods"`
	Invoices        []Invoice         `json:"invoices"`
	PaymentHistory  []PaymentRecord   `json:"payment_history"`
	Statistics      PaymentStatistics `json:"statistics"`
}

// PaymentDraw é o sorteio bruto de um ponto do histórico: se atrasou e o deslocamento
// em dias entre o vencimento e o pagamento
type PaymentDraw struct {
	Late       bool
	OffsetDays int
}
