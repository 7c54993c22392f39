package model

import "time"

// Priority is the urgency tag attached to a record.
type Priority string

const (
	PriorityLow  Priority = "low"
	PriorityMed  Priority = "med"
	PriorityHigh Priority = "high"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMed, PriorityHigh:
		return true
	}
	return false
}

// Record is a user-owned, append-only text item. The owner comes from the
// authenticated session, never from the client.
type Record struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRecordRequest represents a record creation request body.
type CreateRecordRequest struct {
	Title    string   `json:"title"`
	Priority Priority `json:"priority"`
}
