package session

import (
	"context"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/metrics"
	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// EndSession reconciles the session to the current time and then ends it, in one transaction.
// Ending a terminal session returns its recorded totals without touching any balance.
func (b *business) EndSession(ctx context.Context, id uuid.UUID, reason model.EndReason) (*model.SessionTotals, error) {
	if !reason.CallerAllowed() {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid end reason"}
	}

	var (
		totals  *model.SessionTotals
		rec     reconciliation
		kind    model.SessionKind
		endedBy *model.EndReason
	)
	err := b.stateMachine.WithSessionLock(ctx, id, func(ctx context.Context, current sessions.Session) error {
		kind = model.SessionKind(current.Kind)
		state := model.SessionState(current.State)
		if state.IsTerminal() {
			totals = totalsFromSession(current)
			return nil
		}
		if state != model.SessionStateActive {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "session is not active"}
		}

		now := b.now()
		var err error
		rec, err = b.reconcile(ctx, current, now)
		if err != nil {
			return err
		}

		final := reason
		if rec.insufficientFunds {
			// the final tick already ended the session
			final = model.EndReasonInsufficientFunds
		} else if err := b.stateMachine.TransitionToEndedTx(ctx, id, reason, now); err != nil {
			return err
		}
		endedBy = &final

		totals = &model.SessionTotals{
			SessionID:    id,
			State:        model.SessionStateEnded,
			TotalMinutes: rec.billedMinutes,
			TotalCharged: rec.totalCharged,
			EndReason:    &final,
			EndedAt:      &now,
		}
		return nil
	})
	if err != nil {
		rlog.Error("failed to end session", "error", err, "session_id", id, "reason", reason)
		return nil, err
	}

	if endedBy != nil {
		if rec.charge != nil {
			metrics.RecordCharge(kind, rec.charge.Minutes, rec.charge.Amount, rec.charge.PlatformAmount, rec.charge.EarnerAmount)
		}
		metrics.RecordSessionEnded(*endedBy)
		rlog.Info("session ended", "session_id", id, "reason", *endedBy, "total_minutes", totals.TotalMinutes)
	}

	return totals, nil
}

func totalsFromSession(s sessions.Session) *model.SessionTotals {
	totals := &model.SessionTotals{
		SessionID:    s.ID,
		State:        model.SessionState(s.State),
		TotalMinutes: s.BilledMinutes,
		TotalCharged: s.TotalCharged,
	}
	if s.EndReason.Valid {
		reason := model.EndReason(s.EndReason.String)
		totals.EndReason = &reason
	}
	if s.EndedAt.Valid {
		endedAt := s.EndedAt.Time
		totals.EndedAt = &endedAt
	}
	return totals
}
