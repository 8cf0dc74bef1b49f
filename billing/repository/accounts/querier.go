package accounts

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Querier interface {
	// CreditAccount adds to a balance, creating the account on first credit.
	CreditAccount(ctx context.Context, arg CreditAccountParams) (Account, error)
	// DebitAccountIfSufficient returns pgx.ErrNoRows when the balance cannot cover the amount.
	DebitAccountIfSufficient(ctx context.Context, arg DebitAccountIfSufficientParams) (Account, error)
	GetAccount(ctx context.Context, id string) (Account, error)
	WithTx(tx pgx.Tx) Querier
}

var _ Querier = (*Queries)(nil)
