package session

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/metrics"
	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/pricing"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// StartSession prices and opens a session. Nothing is charged here; the first minute is billed by
// the first tick after it has fully elapsed.
func (b *business) StartSession(ctx context.Context, params *model.StartSessionParams) (*model.Session, error) {
	if err := validateStartParams(params); err != nil {
		return nil, err
	}

	if params.IdempotencyKey != "" {
		existing, err := b.sessionRepo.GetSessionByIdempotencyKey(ctx, params.IdempotencyKey)
		switch {
		case err == nil:
			return replayStart(existing, params)
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, &errs.Error{Code: errs.Unavailable, Message: "failed to look up session"}
		}
	}

	if _, err := b.wallet.GetAccount(ctx, params.PayerAccountID); err != nil {
		return nil, err
	}

	// Resolve everything the session freezes before consulting the gate, so a configuration gap
	// never leaves a record behind.
	snapshot := b.catalog.Current()
	price, err := snapshot.ResolveRate(params.Kind, params.Tier)
	if err != nil {
		rlog.Error("rate not configured", "error", err, "kind", params.Kind, "tier", params.Tier)
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}
	split, err := snapshot.ResolveSplit(pricing.ContextFor(params.EarnerAccountID))
	if err != nil {
		rlog.Error("split not configured", "error", err, "kind", params.Kind)
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: err.Error()}
	}

	counterparty := params.CounterpartyID
	if params.EarnerAccountID != nil {
		counterparty = *params.EarnerAccountID
	}
	verdict, err := b.gate.Check(ctx, params.PayerAccountID, counterparty, params.Kind)
	if err != nil {
		rlog.Error("safety check failed", "error", err, "payer_account_id", params.PayerAccountID)
		return nil, &errs.Error{Code: errs.Unavailable, Message: "safety check unavailable"}
	}

	id := uuid.New()
	now := b.now()
	create := sessions.CreateSessionParams{
		ID:                id,
		PayerAccountID:    params.PayerAccountID,
		EarnerAccountID:   textFromPtr(params.EarnerAccountID),
		PlatformAccountID: snapshot.PlatformAccountID(),
		Kind:              string(params.Kind),
		Tier:              string(params.Tier),
		PricePerMinute:    price,
		SplitContext:      string(split.Context),
		EarnerShareBps:    split.EarnerShareBps,
		RateVersion:       snapshot.Version(),
		IdempotencyKey:    params.IdempotencyKey,
	}
	if create.IdempotencyKey == "" {
		create.IdempotencyKey = id.String()
	}

	if !verdict.Allowed {
		// Rejected starts leave a CANCELLED record for audit; it is never billed.
		create.State = string(model.SessionStateCancelled)
		create.EndedAt = pgtype.Timestamptz{Time: now, Valid: true}
		create.EndReason = pgtype.Text{String: string(model.EndReasonSafetyViolation), Valid: true}
		dbSession, err := b.createSession(ctx, create)
		if err != nil {
			return nil, err
		}
		if dbSession.ID != id {
			return replayStart(dbSession, params)
		}
		metrics.RecordSessionRejected(params.Kind)
		rlog.Info("session rejected by safety gate", "session_id", id, "reason", verdict.Reason)
		return nil, rejected(verdict.Reason)
	}

	create.State = string(model.SessionStateActive)
	create.StartedAt = pgtype.Timestamptz{Time: now, Valid: true}
	create.WorkflowID = pgtype.Text{String: WorkflowID(id), Valid: true}

	dbSession, err := b.createSession(ctx, create)
	if err != nil {
		return nil, err
	}
	if dbSession.ID != id {
		// lost a race on the idempotency key
		return replayStart(dbSession, params)
	}

	metrics.RecordSessionStarted(params.Kind, params.Tier)
	return convertDBSessionToModel(dbSession), nil
}

// createSession inserts the row; a concurrent start with the same key returns the winner's row.
func (b *business) createSession(ctx context.Context, params sessions.CreateSessionParams) (sessions.Session, error) {
	dbSession, err := b.sessionRepo.CreateSession(ctx, params)
	if err == nil {
		return dbSession, nil
	}

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		existing, getErr := b.sessionRepo.GetSessionByIdempotencyKey(ctx, params.IdempotencyKey)
		if getErr == nil {
			return existing, nil
		}
		return sessions.Session{}, &errs.Error{Code: errs.AlreadyExists, Message: "session is duplicated"}
	}
	if errors.As(err, &e) && e.Code == pgerrcode.ForeignKeyViolation {
		return sessions.Session{}, &errs.Error{Code: errs.NotFound, Message: "payer account not found"}
	}
	return sessions.Session{}, &errs.Error{Code: errs.Unavailable, Message: "failed to create session"}
}

// replayStart answers a repeated start with the outcome of the first one. A key reused for a
// different payer, earner, kind or tier is refused; the existing session is not revealed.
func replayStart(existing sessions.Session, params *model.StartSessionParams) (*model.Session, error) {
	if !sameStart(existing, params) {
		rlog.Warn("idempotency key reused with different parameters", "session_id", existing.ID, "payer_account_id", params.PayerAccountID)
		return nil, &errs.Error{Code: errs.AlreadyExists, Message: "idempotency key reused with different parameters"}
	}
	if existing.State == string(model.SessionStateCancelled) &&
		existing.EndReason.String == string(model.EndReasonSafetyViolation) {
		return nil, rejected("")
	}
	return convertDBSessionToModel(existing), nil
}

func sameStart(existing sessions.Session, params *model.StartSessionParams) bool {
	if existing.PayerAccountID != params.PayerAccountID ||
		existing.Kind != string(params.Kind) ||
		existing.Tier != string(params.Tier) {
		return false
	}
	if params.EarnerAccountID == nil {
		return !existing.EarnerAccountID.Valid
	}
	return existing.EarnerAccountID.Valid && existing.EarnerAccountID.String == *params.EarnerAccountID
}

func rejected(reason string) error {
	msg := "session rejected by safety check"
	if reason != "" {
		msg += ": " + reason
	}
	return &errs.Error{Code: errs.PermissionDenied, Message: msg}
}

func validateStartParams(params *model.StartSessionParams) error {
	if params == nil || params.PayerAccountID == "" {
		return &errs.Error{Code: errs.InvalidArgument, Message: "payer account id is required"}
	}
	if params.EarnerAccountID != nil {
		if *params.EarnerAccountID == "" {
			return &errs.Error{Code: errs.InvalidArgument, Message: "earner account id must not be empty"}
		}
		if *params.EarnerAccountID == params.PayerAccountID {
			return &errs.Error{Code: errs.InvalidArgument, Message: "payer cannot be the earner"}
		}
	}
	if !slices.Contains(model.SessionKinds, params.Kind) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown session kind"}
	}
	if !slices.Contains(model.Tiers, params.Tier) {
		return &errs.Error{Code: errs.InvalidArgument, Message: "unknown tier"}
	}
	return nil
}
