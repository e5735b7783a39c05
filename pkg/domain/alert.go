package domain

import "time"

// AlertStatus is the outcome of an alert attempt
type AlertStatus string

// alert statuses
const (
	AlertSent      AlertStatus = "sent"
	AlertFailed    AlertStatus = "failed"
	AlertWouldSend AlertStatus = "would_send"
)

// AlertRecord is an append-only log entry of a notification attempt
type AlertRecord struct {
	ID         int64       `json:"id"`
	Timestamp  time.Time   `json:"timestamp"`
	EntityID   string      `json:"entity_id"`
	Topic      string      `json:"topic"`
	Category   Category    `json:"category"`
	Rank       int         `json:"rank"`
	Status     AlertStatus `json:"status"`
	DeliveryID string      `json:"delivery_id,omitempty"`
	Error      string      `json:"error,omitempty"`
}
