package sessions

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Session struct {
	ID                uuid.UUID
	PayerAccountID    string
	EarnerAccountID   pgtype.Text
	PlatformAccountID string
	Kind              string
	Tier              string
	PricePerMinute    int64
	SplitContext      string
	EarnerShareBps    int32
	RateVersion       string
	State             string
	StartedAt         pgtype.Timestamptz
	EndedAt           pgtype.Timestamptz
	BilledMinutes     int64
	TotalCharged      int64
	EndReason         pgtype.Text
	IdempotencyKey    string
	WorkflowID        pgtype.Text
	CreatedAt         pgtype.Timestamptz
	UpdatedAt         pgtype.Timestamptz
}
