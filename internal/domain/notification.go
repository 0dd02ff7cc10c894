package domain

import "time"

// NotificationTemplate é o modelo fixo do catálogo a partir do qual as notificações são montadas
type NotificationTemplate struct {
	Type     string `json:"type" yaml:"type"`
	Title    string `json:"title" yaml:"title"`
	Message  string `json:"message" yaml:"message"`
	Icon     string `json:"icon" yaml:"icon"`
	Priority string `json:"priority" yaml:"priority"`
}

type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Icon      string    `json:"icon"`
	Priority  string    `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// NewNotification monta uma notificação nova a partir do modelo e dos campos variáveis
func NewNotification(tpl NotificationTemplate, id int, timestamp time.Time, read bool) Notification {
	return Notification{
		ID:        id,
		Type:      tpl.Type,
		Title:     tpl.Title,
		Message:   tpl.Message,
		Icon:      tpl.Icon,
		Priority:  tpl.Priority,
		Timestamp: timestamp,
		Read:      read,
	}
}
