package accounts

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID        string
	Balance   int64
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}
