package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dugiahuy/session-billing/billing/repository/accounts"
	"github.com/dugiahuy/session-billing/billing/repository/charges"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// Repository combines all domain-specific repositories
type Repository struct {
	Sessions sessions.Querier
	Accounts accounts.Querier
	Charges  charges.Querier
}

// NewRepository creates a new Repository with all domain queriers
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		Sessions: sessions.New(db),
		Accounts: accounts.New(db),
		Charges:  charges.New(db),
	}
}
