package model

import (
	"time"

	"github.com/google/uuid"
)

// Charge is the audit record of one successful debit against a session and how it was distributed.
type Charge struct {
	ID                int64     `json:"id"`
	SessionID         uuid.UUID `json:"session_id"`
	FromMinute        int64     `json:"from_minute"`
	Minutes           int64     `json:"minutes"`
	Amount            int64     `json:"amount"`
	PayerAccountID    string    `json:"payer_account_id"`
	PlatformAccountID string    `json:"platform_account_id"`
	PlatformAmount    int64     `json:"platform_amount"`
	EarnerAccountID   *string   `json:"earner_account_id,omitempty"`
	EarnerAmount      int64     `json:"earner_amount"`
	CreatedAt         time.Time `json:"created_at"`
}
