package wallet

import (
	"context"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/repository/accounts"
)

// Credit adds amount to an account, opening it on first credit.
func (b *business) Credit(ctx context.Context, accountID string, amount int64) error {
	if amount < 0 {
		return &errs.Error{Code: errs.Internal, Message: "credit amount must not be negative"}
	}
	if amount == 0 {
		return nil
	}

	if _, err := b.credit(ctx, accountID, amount); err != nil {
		return err
	}
	return nil
}

// TopUp is the operator path for funding a payer.
func (b *business) TopUp(ctx context.Context, accountID string, amount int64) (*model.Account, error) {
	if accountID == "" {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "account id is required"}
	}
	if amount <= 0 {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "top-up amount must be positive"}
	}

	dbAccount, err := b.credit(ctx, accountID, amount)
	if err != nil {
		return nil, err
	}
	return convertDBAccountToModel(dbAccount), nil
}

func (b *business) credit(ctx context.Context, accountID string, amount int64) (accounts.Account, error) {
	dbAccount, err := b.querier(ctx).CreditAccount(ctx, accounts.CreditAccountParams{
		ID:     accountID,
		Amount: amount,
	})
	if err != nil {
		return accounts.Account{}, &errs.Error{Code: errs.Unavailable, Message: "failed to credit account"}
	}
	return dbAccount, nil
}
