package charges

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const chargeColumns = `id, session_id, from_minute, minutes, amount, payer_account_id, platform_account_id,
    platform_amount, earner_account_id, earner_amount, created_at`

func scanCharge(row pgx.Row) (SessionCharge, error) {
	var i SessionCharge
	err := row.Scan(
		&i.ID,
		&i.SessionID,
		&i.FromMinute,
		&i.Minutes,
		&i.Amount,
		&i.PayerAccountID,
		&i.PlatformAccountID,
		&i.PlatformAmount,
		&i.EarnerAccountID,
		&i.EarnerAmount,
		&i.CreatedAt,
	)
	return i, err
}

const createCharge = `-- name: CreateCharge :one
INSERT INTO session_charges (
    session_id, from_minute, minutes, amount, payer_account_id, platform_account_id,
    platform_amount, earner_account_id, earner_amount
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9
)
RETURNING ` + chargeColumns

type CreateChargeParams struct {
	SessionID         uuid.UUID
	FromMinute        int64
	Minutes           int64
	Amount            int64
	PayerAccountID    string
	PlatformAccountID string
	PlatformAmount    int64
	EarnerAccountID   pgtype.Text
	EarnerAmount      int64
}

func (q *Queries) CreateCharge(ctx context.Context, arg CreateChargeParams) (SessionCharge, error) {
	row := q.db.QueryRow(ctx, createCharge,
		arg.SessionID,
		arg.FromMinute,
		arg.Minutes,
		arg.Amount,
		arg.PayerAccountID,
		arg.PlatformAccountID,
		arg.PlatformAmount,
		arg.EarnerAccountID,
		arg.EarnerAmount,
	)
	return scanCharge(row)
}

const listChargesBySession = `-- name: ListChargesBySession :many
SELECT ` + chargeColumns + `
FROM session_charges
WHERE session_id = $1
ORDER BY from_minute
`

func (q *Queries) ListChargesBySession(ctx context.Context, sessionID uuid.UUID) ([]SessionCharge, error) {
	rows, err := q.db.Query(ctx, listChargesBySession, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SessionCharge
	for rows.Next() {
		i, err := scanCharge(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
