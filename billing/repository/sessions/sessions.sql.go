package sessions

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const sessionColumns = `id, payer_account_id, earner_account_id, platform_account_id, kind, tier, price_per_minute,
    split_context, earner_share_bps, rate_version, state, started_at, ended_at, billed_minutes, total_charged,
    end_reason, idempotency_key, workflow_id, created_at, updated_at`

func scanSession(row pgx.Row) (Session, error) {
	var i Session
	err := row.Scan(
		&i.ID,
		&i.PayerAccountID,
		&i.EarnerAccountID,
		&i.PlatformAccountID,
		&i.Kind,
		&i.Tier,
		&i.PricePerMinute,
		&i.SplitContext,
		&i.EarnerShareBps,
		&i.RateVersion,
		&i.State,
		&i.StartedAt,
		&i.EndedAt,
		&i.BilledMinutes,
		&i.TotalCharged,
		&i.EndReason,
		&i.IdempotencyKey,
		&i.WorkflowID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const advanceBilledMinutes = `-- name: AdvanceBilledMinutes :execrows
UPDATE sessions
SET billed_minutes = $3,
    total_charged = $4,
    updated_at = NOW()
WHERE id = $1
  AND billed_minutes = $2
  AND state = 'ACTIVE'
  AND $3 >= billed_minutes
`

type AdvanceBilledMinutesParams struct {
	ID                    uuid.UUID
	ExpectedBilledMinutes int64
	BilledMinutes         int64
	TotalCharged          int64
}

func (q *Queries) AdvanceBilledMinutes(ctx context.Context, arg AdvanceBilledMinutesParams) (int64, error) {
	result, err := q.db.Exec(ctx, advanceBilledMinutes,
		arg.ID,
		arg.ExpectedBilledMinutes,
		arg.BilledMinutes,
		arg.TotalCharged,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const countSessionsByPayer = `-- name: CountSessionsByPayer :one
SELECT COUNT(*) FROM sessions WHERE payer_account_id = $1
`

func (q *Queries) CountSessionsByPayer(ctx context.Context, payerAccountID string) (int64, error) {
	row := q.db.QueryRow(ctx, countSessionsByPayer, payerAccountID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createSession = `-- name: CreateSession :one
INSERT INTO sessions (
    id, payer_account_id, earner_account_id, platform_account_id, kind, tier, price_per_minute,
    split_context, earner_share_bps, rate_version, state, started_at, ended_at, end_reason,
    idempotency_key, workflow_id
) VALUES (
    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16
)
RETURNING ` + sessionColumns

type CreateSessionParams struct {
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
	EndReason         pgtype.Text
	IdempotencyKey    string
	WorkflowID        pgtype.Text
}

func (q *Queries) CreateSession(ctx context.Context, arg CreateSessionParams) (Session, error) {
	row := q.db.QueryRow(ctx, createSession,
		arg.ID,
		arg.PayerAccountID,
		arg.EarnerAccountID,
		arg.PlatformAccountID,
		arg.Kind,
		arg.Tier,
		arg.PricePerMinute,
		arg.SplitContext,
		arg.EarnerShareBps,
		arg.RateVersion,
		arg.State,
		arg.StartedAt,
		arg.EndedAt,
		arg.EndReason,
		arg.IdempotencyKey,
		arg.WorkflowID,
	)
	return scanSession(row)
}

const endSession = `-- name: EndSession :execrows
UPDATE sessions
SET state = $2,
    end_reason = $3,
    ended_at = $4,
    updated_at = NOW()
WHERE id = $1
  AND state = 'ACTIVE'
`

type EndSessionParams struct {
	ID        uuid.UUID
	State     string
	EndReason pgtype.Text
	EndedAt   pgtype.Timestamptz
}

func (q *Queries) EndSession(ctx context.Context, arg EndSessionParams) (int64, error) {
	result, err := q.db.Exec(ctx, endSession,
		arg.ID,
		arg.State,
		arg.EndReason,
		arg.EndedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getSession = `-- name: GetSession :one
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1
`

func (q *Queries) GetSession(ctx context.Context, id uuid.UUID) (Session, error) {
	return scanSession(q.db.QueryRow(ctx, getSession, id))
}

const getSessionByIdempotencyKey = `-- name: GetSessionByIdempotencyKey :one
SELECT ` + sessionColumns + `
FROM sessions
WHERE idempotency_key = $1
`

func (q *Queries) GetSessionByIdempotencyKey(ctx context.Context, idempotencyKey string) (Session, error) {
	return scanSession(q.db.QueryRow(ctx, getSessionByIdempotencyKey, idempotencyKey))
}

const getSessionForUpdate = `-- name: GetSessionForUpdate :one
SELECT ` + sessionColumns + `
FROM sessions
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetSessionForUpdate(ctx context.Context, id uuid.UUID) (Session, error) {
	return scanSession(q.db.QueryRow(ctx, getSessionForUpdate, id))
}

const listSessionsByPayer = `-- name: ListSessionsByPayer :many
SELECT ` + sessionColumns + `
FROM sessions
WHERE payer_account_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3
`

type ListSessionsByPayerParams struct {
	PayerAccountID string
	Limit          int32
	Offset         int32
}

func (q *Queries) ListSessionsByPayer(ctx context.Context, arg ListSessionsByPayerParams) ([]Session, error) {
	rows, err := q.db.Query(ctx, listSessionsByPayer, arg.PayerAccountID, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Session
	for rows.Next() {
		i, err := scanSession(rows)
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
