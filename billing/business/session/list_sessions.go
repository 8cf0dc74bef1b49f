package session

import (
	"context"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// ListSessions returns a payer's sessions, newest first, and the payer's total session count.
func (b *business) ListSessions(ctx context.Context, payerAccountID string, limit, offset int32) ([]*model.Session, int64, error) {
	if payerAccountID == "" {
		return nil, 0, &errs.Error{Code: errs.InvalidArgument, Message: "payer account id is required"}
	}

	dbSessions, err := b.sessionRepo.ListSessionsByPayer(ctx, sessions.ListSessionsByPayerParams{
		PayerAccountID: payerAccountID,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Unavailable, Message: "failed to list sessions"}
	}

	total, err := b.sessionRepo.CountSessionsByPayer(ctx, payerAccountID)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Unavailable, Message: "failed to count sessions"}
	}

	result := make([]*model.Session, 0, len(dbSessions))
	for _, s := range dbSessions {
		result = append(result, convertDBSessionToModel(s))
	}
	return result, total, nil
}
