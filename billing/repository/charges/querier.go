package charges

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Querier interface {
	CreateCharge(ctx context.Context, arg CreateChargeParams) (SessionCharge, error)
	ListChargesBySession(ctx context.Context, sessionID uuid.UUID) ([]SessionCharge, error)
	WithTx(tx pgx.Tx) Querier
}

var _ Querier = (*Queries)(nil)
