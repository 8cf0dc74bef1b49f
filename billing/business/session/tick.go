package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/metrics"
	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/pricing"
	"github.com/dugiahuy/session-billing/billing/repository/charges"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// reconciliation is what one pass of reconcile did inside the session transaction.
type reconciliation struct {
	minutes       int64
	billedMinutes int64
	totalCharged  int64
	charge        *charges.CreateChargeParams
	// insufficientFunds means the session was ended instead of charged.
	insufficientFunds bool
}

// Tick bills every whole minute elapsed since the session started that has not been billed yet.
// Duplicate and early ticks bill nothing; a tick on a terminal session reports it as ended.
func (b *business) Tick(ctx context.Context, id uuid.UUID) (*model.TickResult, error) {
	started := time.Now()

	var (
		result *model.TickResult
		rec    reconciliation
		kind   model.SessionKind
	)
	err := b.stateMachine.WithSessionLock(ctx, id, func(ctx context.Context, current sessions.Session) error {
		kind = model.SessionKind(current.Kind)
		state := model.SessionState(current.State)
		if state.IsTerminal() {
			result = endedResult(current)
			return nil
		}
		if state != model.SessionStateActive {
			return &errs.Error{Code: errs.FailedPrecondition, Message: "session is not active"}
		}

		var err error
		rec, err = b.reconcile(ctx, current, b.now())
		if err != nil {
			return err
		}

		result = &model.TickResult{
			SessionID:     id,
			Status:        model.TickStatusOK,
			MinutesBilled: rec.minutes,
			BilledMinutes: rec.billedMinutes,
			TotalCharged:  rec.totalCharged,
		}
		if rec.insufficientFunds {
			reason := model.EndReasonInsufficientFunds
			result.Status = model.TickStatusEnded
			result.EndReason = &reason
		}
		return nil
	})
	if err != nil {
		metrics.RecordTick(metrics.OutcomeError, started)
		rlog.Error("failed to tick session", "error", err, "session_id", id)
		return nil, err
	}

	recordReconciliation(kind, rec)
	switch {
	case rec.insufficientFunds:
		metrics.RecordTick(metrics.OutcomeInsufficient, started)
		rlog.Info("session ended for insufficient funds", "session_id", id, "billed_minutes", rec.billedMinutes)
	case rec.charge != nil:
		metrics.RecordTick(metrics.OutcomeCharged, started)
	case result.Status == model.TickStatusEnded:
		metrics.RecordTick(metrics.OutcomeEnded, started)
	default:
		metrics.RecordTick(metrics.OutcomeNoop, started)
	}

	return result, nil
}

// reconcile charges the unbilled whole minutes up to now. It must run inside the session lock; any
// error rolls back the debit, both credits, the charge row and the counter together.
//
// When the payer cannot cover the delta the session is ended with INSUFFICIENT_FUNDS and the delta
// is not billed.
func (b *business) reconcile(ctx context.Context, current sessions.Session, now time.Time) (reconciliation, error) {
	rec := reconciliation{
		billedMinutes: current.BilledMinutes,
		totalCharged:  current.TotalCharged,
	}

	delta := ElapsedMinutes(current.StartedAt.Time, now) - current.BilledMinutes
	if delta <= 0 {
		return rec, nil
	}
	amount := delta * current.PricePerMinute

	ok, err := b.wallet.DebitIfSufficient(ctx, current.PayerAccountID, amount)
	if err != nil {
		return rec, err
	}
	if !ok {
		if err := b.stateMachine.TransitionToEndedTx(ctx, current.ID, model.EndReasonInsufficientFunds, now); err != nil {
			return rec, err
		}
		rec.insufficientFunds = true
		return rec, nil
	}

	platformAmount, earnerAmount := pricing.Apportion(amount, pricing.Split{
		Context:        model.SplitContext(current.SplitContext),
		EarnerShareBps: current.EarnerShareBps,
	})
	if !current.EarnerAccountID.Valid {
		platformAmount, earnerAmount = amount, 0
	}

	if earnerAmount > 0 {
		if err := b.wallet.Credit(ctx, current.EarnerAccountID.String, earnerAmount); err != nil {
			return rec, err
		}
	}
	if err := b.wallet.Credit(ctx, current.PlatformAccountID, platformAmount); err != nil {
		return rec, err
	}

	charge := charges.CreateChargeParams{
		SessionID:         current.ID,
		FromMinute:        current.BilledMinutes,
		Minutes:           delta,
		Amount:            amount,
		PayerAccountID:    current.PayerAccountID,
		PlatformAccountID: current.PlatformAccountID,
		PlatformAmount:    platformAmount,
		EarnerAccountID:   current.EarnerAccountID,
		EarnerAmount:      earnerAmount,
	}
	if err := b.stateMachine.RecordChargeTx(ctx, charge); err != nil {
		return rec, err
	}

	billed := current.BilledMinutes + delta
	if err := b.stateMachine.AdvanceBillingTx(ctx, current, billed); err != nil {
		return rec, err
	}

	rec.minutes = delta
	rec.billedMinutes = billed
	rec.totalCharged = billed * current.PricePerMinute
	rec.charge = &charge
	return rec, nil
}

// recordReconciliation publishes metrics for a committed reconciliation.
func recordReconciliation(kind model.SessionKind, rec reconciliation) {
	if rec.charge != nil {
		metrics.RecordCharge(kind, rec.charge.Minutes, rec.charge.Amount, rec.charge.PlatformAmount, rec.charge.EarnerAmount)
	}
	if rec.insufficientFunds {
		metrics.RecordSessionEnded(model.EndReasonInsufficientFunds)
	}
}

func endedResult(current sessions.Session) *model.TickResult {
	result := &model.TickResult{
		SessionID:     current.ID,
		Status:        model.TickStatusEnded,
		BilledMinutes: current.BilledMinutes,
		TotalCharged:  current.TotalCharged,
	}
	if current.EndReason.Valid {
		reason := model.EndReason(current.EndReason.String)
		result.EndReason = &reason
	}
	return result
}
