package wallet

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/repository/accounts"
)

func (b *business) DebitIfSufficient(ctx context.Context, accountID string, amount int64) (bool, error) {
	if amount < 0 {
		return false, &errs.Error{Code: errs.Internal, Message: "debit amount must not be negative"}
	}
	if amount == 0 {
		return true, nil
	}

	_, err := b.querier(ctx).DebitAccountIfSufficient(ctx, accounts.DebitAccountIfSufficientParams{
		ID:     accountID,
		Amount: amount,
	})
	if err != nil {
		// missing account and short balance look the same to the conditional update
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, &errs.Error{Code: errs.Unavailable, Message: "failed to debit account"}
	}
	return true, nil
}
