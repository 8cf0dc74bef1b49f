package session

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/model"
)

// ListCharges returns the charge audit trail of a session in minute order.
func (b *business) ListCharges(ctx context.Context, sessionID uuid.UUID) ([]*model.Charge, error) {
	if _, err := b.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	dbCharges, err := b.chargeRepo.ListChargesBySession(ctx, sessionID)
	if err != nil {
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to list charges"}
	}

	result := make([]*model.Charge, 0, len(dbCharges))
	for _, c := range dbCharges {
		result = append(result, convertDBChargeToModel(c))
	}
	return result, nil
}
