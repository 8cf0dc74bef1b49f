package wallet

import (
	"context"

	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/repository"
	"github.com/dugiahuy/session-billing/billing/repository/accounts"
)

// Business is the balance store. Every mutation is a single atomic statement, so balances are
// linearizable per account and never go negative.
type Business interface {
	GetAccount(ctx context.Context, id string) (*model.Account, error)
	// DebitIfSufficient reports false, without error, when the balance cannot cover amount.
	DebitIfSufficient(ctx context.Context, accountID string, amount int64) (bool, error)
	Credit(ctx context.Context, accountID string, amount int64) error
	TopUp(ctx context.Context, accountID string, amount int64) (*model.Account, error)
}

type business struct {
	accountRepo accounts.Querier
}

func NewWalletBusiness(accountRepo accounts.Querier) Business {
	return &business{
		accountRepo: accountRepo,
	}
}

// querier joins the transaction carried by ctx, if any
func (b *business) querier(ctx context.Context) accounts.Querier {
	if tx, ok := repository.TxFromContext(ctx); ok {
		return b.accountRepo.WithTx(tx)
	}
	return b.accountRepo
}

func convertDBAccountToModel(dbAccount accounts.Account) *model.Account {
	return &model.Account{
		ID:        dbAccount.ID,
		Balance:   dbAccount.Balance,
		CreatedAt: dbAccount.CreatedAt.Time,
		UpdatedAt: dbAccount.UpdatedAt.Time,
	}
}
