package charges

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SessionCharge struct {
	ID                int64
	SessionID         uuid.UUID
	FromMinute        int64
	Minutes           int64
	Amount            int64
	PayerAccountID    string
	PlatformAccountID string
	PlatformAmount    int64
	EarnerAccountID   pgtype.Text
	EarnerAmount      int64
	CreatedAt         pgtype.Timestamptz
}
