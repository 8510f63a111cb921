package events

import "time"

const TransactionRecordedTopic = "hrms.finance.ledger.v1"

type TransactionRecordedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	TransactionID string    `json:"transaction_id"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
}
