package events

import "time"

// Event types
const (
	AccountCreated    = "account.created"
	BalanceUpdated    = "balance.updated"
	InterestAccrued   = "interest.accrued"
	TransferCompleted = "transfer.completed"
)

// Stream names
const (
	AccountEventsStream  = "account.events"
	TransferEventsStream = "transfer.events"
)

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// Account events
type AccountCreatedEvent struct {
	AccountID   string  `json:"accountId"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	AccountType string  `json:"accountType"`
	Balance     float64 `json:"balance"`
}

type BalanceUpdatedEvent struct {
	AccountID  string  `json:"accountId"`
	Operation  string  `json:"operation"`
	Change     float64 `json:"change"`
	NewBalance float64 `json:"newBalance"`
}

type InterestAccruedEvent struct {
	AccountID  string  `json:"accountId"`
	Interest   float64 `json:"interest"`
	NewBalance float64 `json:"newBalance"`
}

// Transfer events
type TransferCompletedEvent struct {
	SourceAccountID      string  `json:"sourceAccountId"`
	DestinationAccountID string  `json:"destinationAccountId"`
	SourceName           string  `json:"sourceName"`
	DestinationName      string  `json:"destinationName"`
	Amount               float64 `json:"amount"`
}
