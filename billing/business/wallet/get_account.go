package wallet

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/model"
)

func (b *business) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	dbAccount, err := b.querier(ctx).GetAccount(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "account not found"}
		}
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to get account"}
	}

	return convertDBAccountToModel(dbAccount), nil
}
