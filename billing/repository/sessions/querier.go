package sessions

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Querier interface {
	// AdvanceBilledMinutes is a compare-and-swap on billed_minutes; it affects no rows when the
	// expected value is stale or the session is no longer active.
	AdvanceBilledMinutes(ctx context.Context, arg AdvanceBilledMinutesParams) (int64, error)
	CountSessionsByPayer(ctx context.Context, payerAccountID string) (int64, error)
	CreateSession(ctx context.Context, arg CreateSessionParams) (Session, error)
	EndSession(ctx context.Context, arg EndSessionParams) (int64, error)
	GetSession(ctx context.Context, id uuid.UUID) (Session, error)
	GetSessionByIdempotencyKey(ctx context.Context, idempotencyKey string) (Session, error)
	GetSessionForUpdate(ctx context.Context, id uuid.UUID) (Session, error)
	ListSessionsByPayer(ctx context.Context, arg ListSessionsByPayerParams) ([]Session, error)
	WithTx(tx pgx.Tx) Querier
}

var _ Querier = (*Queries)(nil)
