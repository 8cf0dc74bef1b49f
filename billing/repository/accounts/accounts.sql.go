package accounts

import (
	"context"
)

const creditAccount = `-- name: CreditAccount :one
INSERT INTO accounts (id, balance)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET balance = accounts.balance + EXCLUDED.balance,
    updated_at = NOW()
RETURNING id, balance, created_at, updated_at
`

type CreditAccountParams struct {
	ID     string
	Amount int64
}

func (q *Queries) CreditAccount(ctx context.Context, arg CreditAccountParams) (Account, error) {
	row := q.db.QueryRow(ctx, creditAccount, arg.ID, arg.Amount)
	var i Account
	err := row.Scan(
		&i.ID,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const debitAccountIfSufficient = `-- name: DebitAccountIfSufficient :one
UPDATE accounts
SET balance = balance - $2,
    updated_at = NOW()
WHERE id = $1
  AND balance >= $2
RETURNING id, balance, created_at, updated_at
`

type DebitAccountIfSufficientParams struct {
	ID     string
	Amount int64
}

func (q *Queries) DebitAccountIfSufficient(ctx context.Context, arg DebitAccountIfSufficientParams) (Account, error) {
	row := q.db.QueryRow(ctx, debitAccountIfSufficient, arg.ID, arg.Amount)
	var i Account
	err := row.Scan(
		&i.ID,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getAccount = `-- name: GetAccount :one
SELECT id, balance, created_at, updated_at
FROM accounts
WHERE id = $1
`

func (q *Queries) GetAccount(ctx context.Context, id string) (Account, error) {
	row := q.db.QueryRow(ctx, getAccount, id)
	var i Account
	err := row.Scan(
		&i.ID,
		&i.Balance,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
