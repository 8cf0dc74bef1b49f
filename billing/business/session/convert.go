package session

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/repository/charges"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// convertDBSessionToModel converts a database Session to a domain model Session
func convertDBSessionToModel(dbSession sessions.Session) *model.Session {
	s := &model.Session{
		ID:                dbSession.ID,
		PayerAccountID:    dbSession.PayerAccountID,
		EarnerAccountID:   ptrFromText(dbSession.EarnerAccountID),
		PlatformAccountID: dbSession.PlatformAccountID,
		Kind:              model.SessionKind(dbSession.Kind),
		Tier:              model.Tier(dbSession.Tier),
		PricePerMinute:    dbSession.PricePerMinute,
		SplitContext:      model.SplitContext(dbSession.SplitContext),
		EarnerShareBps:    dbSession.EarnerShareBps,
		RateVersion:       dbSession.RateVersion,
		State:             model.SessionState(dbSession.State),
		BilledMinutes:     dbSession.BilledMinutes,
		TotalCharged:      dbSession.TotalCharged,
		IdempotencyKey:    dbSession.IdempotencyKey,
		WorkflowID:        ptrFromText(dbSession.WorkflowID),
		CreatedAt:         dbSession.CreatedAt.Time,
		UpdatedAt:         dbSession.UpdatedAt.Time,
	}

	if dbSession.StartedAt.Valid {
		s.StartedAt = &dbSession.StartedAt.Time
	}

	if dbSession.EndedAt.Valid {
		s.EndedAt = &dbSession.EndedAt.Time
	}

	if dbSession.EndReason.Valid {
		reason := model.EndReason(dbSession.EndReason.String)
		s.EndReason = &reason
	}

	return s
}

func convertDBChargeToModel(dbCharge charges.SessionCharge) *model.Charge {
	return &model.Charge{
		ID:                dbCharge.ID,
		SessionID:         dbCharge.SessionID,
		FromMinute:        dbCharge.FromMinute,
		Minutes:           dbCharge.Minutes,
		Amount:            dbCharge.Amount,
		PayerAccountID:    dbCharge.PayerAccountID,
		PlatformAccountID: dbCharge.PlatformAccountID,
		PlatformAmount:    dbCharge.PlatformAmount,
		EarnerAccountID:   ptrFromText(dbCharge.EarnerAccountID),
		EarnerAmount:      dbCharge.EarnerAmount,
		CreatedAt:         dbCharge.CreatedAt.Time,
	}
}

func textFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func ptrFromText(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}
