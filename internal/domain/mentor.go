package domain

import "time"

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// IssueCategory é uma entrada da taxonomia fixa de problemas de execução
type IssueCategory struct {
	Type         string   `yaml:"type"`
	Descriptions []string `yaml:"descriptions"`
	Severities   []string `yaml:"severities"`
}

type Issue struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type Recommendation struct {
	Action          string `json:"action" yaml:"action"`
	Priority        string `json:"priority" yaml:"priority"`
	EstimatedImpact string `json:"estimated_impact" yaml:"estimated_impact"`
	Category        string `json:"category" yaml:"category"`
}

type PhotoAnalysis struct {
	PhotosProcessed int      `json:"photos_processed"`
	VisualInsights  []string `json:"visual_insights"`
}

type VisitAnalysis struct {
	Store                string           `json:"store"`
	Date                 time.Time        `json:"date"`
	Location             string           `json:"location"`
	ChecklistScore       int              `json:"checklist_score"`
	ExecutionGrade       string           `json:"execution_grade"`
	IssuesDetected       []Issue          `json:"issues_detected"`
	Recommendations      []Recommendation `json:"recommendations"`
	EstimatedTotalImpact string           `json:"estimated_total_impact"`
	NextVisitSuggested   string           `json:"next_visit_suggested"`
	PhotoAnalysis        *PhotoAnalysis   `json:"photo_analysis,omitempty"`
}

type HistoricalTrend struct {
	Dates  []string `json:"dates"`
	Scores []int    `json:"scores"`
	Trend  string   `json:"trend"`
}

type Benchmark struct {
	StoreScore      int `json:"store_score"`
	CategoryAverage int `json:"category_average"`
	MarketLeader    int `json:"market_leader"`
	PositionRanking int `json:"position_ranking"`
	TotalStores     int `json:"total_stores"`
}

type StoreInsights struct {
	Store           string          `json:"store"`
	Insights        VisitAnalysis   `json:"insights"`
	HistoricalTrend HistoricalTrend `json:"historical_trend"`
	Benchmark       Benchmark       `json:"benchmark"`
}

type AlertTemplate struct {
	Type     string `json:"type" yaml:"type"`
	Message  string `json:"message" yaml:"message"`
	Severity string `json:"severity" yaml:"severity"`
}

type Alert struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

type StoreKPI struct {
	Store       string    `json:"store"`
	Score       int       `json:"score"`
	Grade       string    `json:"grade"`
	IssuesCount int       `json:"issues_count"`
	LastVisit   time.Time `json:"last_visit"`
	Promoter    string    `json:"promoter"`
}

type DashboardKPIs struct {
	TotalStores           int        `json:"total_stores"`
	AverageExecutionScore float64    `json:"average_execution_score"`
	StoresWithIssues      int        `json:"stores_with_issues"`
	ComplianceRate        float64    `json:"compliance_rate"`
	StoresData            []StoreKPI `json:"stores_data"`
	Alerts                []Alert    `json:"alerts"`
	TopPerformers         []StoreKPI `json:"top_performers"`
	NeedsAttention        []StoreKPI `json:"needs_attention"`
	GeneratedAt           time.Time  `json:"generated_at"`
}

type ReportSummary struct {
	TotalVisits     int    `json:"total_visits"`
	AverageScore    int    `json:"average_score"`
	IssuesResolved  int    `json:"issues_resolved"`
	ImprovementRate string `json:"improvement_rate"`
}

type ReportRecommendations struct {
	PriorityActions   []string `json:"priority_actions" yaml:"priority_actions"`
	StrategicInsights []string `json:"strategic_insights" yaml:"strategic_insights"`
}

type Report struct {
	Type            string                `json:"type"`
	GeneratedAt     time.Time             `json:"generated_at"`
	Period          string                `json:"period"`
	Summary         ReportSummary         `json:"summary"`
	StoreDetails    []VisitAnalysis       `json:"store_details"`
	Recommendations ReportRecommendations `json:"recommendations"`
}

// AnalyzeVisitRequest traz o checklist como item → concluído
type AnalyzeVisitRequest struct {
	Store     string          `json:"store"`
	Checklist map[string]bool `json:"checklist"`
	Photos    []string        `json:"photos"`
}

type VisitAnalysisResult struct {
	Analysis      VisitAnalysis `json:"analysis"`
	MentorMessage string        `json:"mentor_message"`
}

type ReportRequest struct {
	Type   string   `json:"type"`
	Stores []string `json:"stores"`
}
