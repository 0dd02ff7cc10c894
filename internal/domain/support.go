package domain

import (
	"errors"
	"time"
)

type TicketStatus string

// ErrTicketStatusConflict indica que o status gravado mudou entre a leitura e a escrita
var ErrTicketStatusConflict = errors.New("ticket status changed concurrently")

const (
	TicketOpen       TicketStatus = "Open"
	TicketInProgress TicketStatus = "In Progress"
	TicketResolved   TicketStatus = "Resolved"
	TicketClosed     TicketStatus = "Closed"
)

var ticketStatusRank = map[TicketStatus]int{
	TicketOpen:       0,
	TicketInProgress: 1,
	TicketResolved:   2,
	TicketClosed:     3,
}

func (s TicketStatus) Valid() bool {
	_, ok := ticketStatusRank[s]
	return ok
}

// CanTransitionTo só permite avançar no ciclo de vida do chamado
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	from, ok := ticketStatusRank[s]
	if !ok {
		return false
	}
	to, ok := ticketStatusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

type FAQItem struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Icon     string   `json:"icon" yaml:"icon"`
	Category string   `json:"category" yaml:"category"`
	Steps    []string `json:"steps" yaml:"steps"`
	VideoURL string   `json:"video_url" yaml:"video_url"`
}

type ErrorCodeInfo struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Solution    string   `json:"solution" yaml:"solution"`
	Steps       []string `json:"steps" yaml:"steps"`
}

type TicketResponse struct {
	From      string    `json:"from"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type Ticket struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Title       string           `json:"title"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Priority    string           `json:"priority"`
	Status      TicketStatus     `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Attachments []string         `json:"attachments"`
	Responses   []TicketResponse `json:"responses"`
}

type TicketRequest struct {
	UserID      string   `json:"user_id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Attachments []string `json:"attachments"`
}

type ChatMessage struct {
	From      string    `json:"from"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatSession struct {
	SessionID string        `json:"session_id"`
	UserID    string        `json:"user_id"`
	StartedAt time.Time     `json:"started_at"`
	Status    string        `json:"status"`
	Messages  []ChatMessage `json:"messages"`
}

type Escalation struct {
	SessionID     string `json:"session_id"`
	Message       string `json:"message"`
	QueuePosition int    `json:"queue_position"`
}

type UrgentTicket struct {
	TicketID          string `json:"ticket_id"`
	Message           string `json:"message"`
	EstimatedResponse string `json:"estimated_response"`
}

type DeviceInfo struct {
	Model      string    `json:"model"`
	OS         string    `json:"os"`
	AppVersion string    `json:"app_version"`
	LastUpdate time.Time `json:"last_update"`
}

type ConnectionInfo struct {
	LastIP         string    `json:"last_ip"`
	ConnectionType string    `json:"connection_type"`
	LastSeen       time.Time `json:"last_seen"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationInfo struct {
	LastLocation string      `json:"last_location"`
	Coordinates  Coordinates `json:"coordinates"`
	Accuracy     int         `json:"accuracy"`
}

type ActivityInfo struct {
	LastActivity    time.Time `json:"last_activity"`
	SessionDuration int       `json:"session_duration"`
	DailyUsage      int       `json:"daily_usage"`
}

type TechnicalInfo struct {
	UserID         string         `json:"user_id"`
	UserType       string         `json:"user_type"`
	DeviceInfo     DeviceInfo     `json:"device_info"`
	ConnectionInfo ConnectionInfo `json:"connection_info"`
	LocationInfo   LocationInfo   `json:"location_info"`
	ActivityInfo   ActivityInfo   `json:"activity_info"`
}

type UserSupportInfo struct {
	UserInfo        TechnicalInfo `json:"user_info"`
	ActivityHistory []Activity    `json:"activity_history"`
	TicketsHistory  []Ticket      `json:"tickets_history"`
}

const SupportAgent = "Suporte TradeLite"

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type EscalationRequest struct {
	SessionID string `json:"session_id"`
}

type UrgentSupportRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}
