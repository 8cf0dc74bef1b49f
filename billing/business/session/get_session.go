package session

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/model"
)

func (b *business) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	dbSession, err := b.sessionRepo.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "session not found"}
		}
		return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to get session"}
	}

	return convertDBSessionToModel(dbSession), nil
}
