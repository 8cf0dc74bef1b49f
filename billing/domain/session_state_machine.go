package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/repository"
	"github.com/dugiahuy/session-billing/billing/repository/charges"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
)

// StateMachine defines session state transitions and the per-session transaction boundary
type StateMachine interface {
	// WithSessionLock runs businessLogic inside one transaction holding the session's row lock.
	// The ctx handed to businessLogic carries the transaction; the *Tx methods below and any
	// repository that honours repository.TxFromContext join it. Nothing is committed unless
	// businessLogic returns nil.
	WithSessionLock(ctx context.Context, id uuid.UUID, businessLogic func(ctx context.Context, current sessions.Session) error) error

	// AdvanceBillingTx moves billed_minutes from current.BilledMinutes to billedMinutes
	AdvanceBillingTx(ctx context.Context, current sessions.Session, billedMinutes int64) error

	// RecordChargeTx writes the audit row for one charge
	RecordChargeTx(ctx context.Context, params charges.CreateChargeParams) error

	// TransitionToEndedTx moves an active session to ENDED
	TransitionToEndedTx(ctx context.Context, id uuid.UUID, reason model.EndReason, endedAt time.Time) error
}

// TxBeginner is satisfied by *pgxpool.Pool
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SessionStateMachine owns the transaction boundary for every billing mutation of a session
type SessionStateMachine struct {
	db          TxBeginner
	sessionRepo sessions.Querier
	chargeRepo  charges.Querier
}

// NewSessionStateMachine creates a new session state machine with database and repository access
func NewSessionStateMachine(db TxBeginner, sessionRepo sessions.Querier, chargeRepo charges.Querier) *SessionStateMachine {
	return &SessionStateMachine{
		db:          db,
		sessionRepo: sessionRepo,
		chargeRepo:  chargeRepo,
	}
}

var _ StateMachine = (*SessionStateMachine)(nil)

// WithSessionLock performs businessLogic with row-level locking and transaction management
func (sm *SessionStateMachine) WithSessionLock(ctx context.Context, id uuid.UUID, businessLogic func(ctx context.Context, current sessions.Session) error) error {
	tx, err := sm.db.Begin(ctx)
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "failed to start transaction"}
	}
	defer tx.Rollback(ctx)

	current, err := sm.sessionRepo.WithTx(tx).GetSessionForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &errs.Error{Code: errs.NotFound, Message: "session not found"}
		}
		return &errs.Error{Code: errs.Unavailable, Message: "failed to lock session"}
	}

	if err := businessLogic(repository.ContextWithTx(ctx, tx), current); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "failed to commit session transaction"}
	}

	return nil
}

// AdvanceBillingTx advances billed minutes with a compare-and-swap against the locked row
func (sm *SessionStateMachine) AdvanceBillingTx(ctx context.Context, current sessions.Session, billedMinutes int64) error {
	if billedMinutes < current.BilledMinutes {
		return &errs.Error{Code: errs.Internal, Message: "billed minutes cannot decrease"}
	}

	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	rows, err := sm.sessionRepo.WithTx(tx).AdvanceBilledMinutes(ctx, sessions.AdvanceBilledMinutesParams{
		ID:                    current.ID,
		ExpectedBilledMinutes: current.BilledMinutes,
		BilledMinutes:         billedMinutes,
		TotalCharged:          billedMinutes * current.PricePerMinute,
	})
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "failed to advance billed minutes"}
	}
	if rows == 0 {
		return &errs.Error{Code: errs.Aborted, Message: "session billing changed concurrently"}
	}
	return nil
}

// RecordChargeTx inserts the charge row; a duplicate minute range aborts the transaction
func (sm *SessionStateMachine) RecordChargeTx(ctx context.Context, params charges.CreateChargeParams) error {
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	if _, err := sm.chargeRepo.WithTx(tx).CreateCharge(ctx, params); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return &errs.Error{Code: errs.Aborted, Message: "charge already recorded for minute range"}
		}
		return &errs.Error{Code: errs.Unavailable, Message: "failed to record charge"}
	}
	return nil
}

// TransitionToEndedTx updates an active session to ENDED with the given reason
func (sm *SessionStateMachine) TransitionToEndedTx(ctx context.Context, id uuid.UUID, reason model.EndReason, endedAt time.Time) error {
	tx, err := txFrom(ctx)
	if err != nil {
		return err
	}

	rows, err := sm.sessionRepo.WithTx(tx).EndSession(ctx, sessions.EndSessionParams{
		ID:        id,
		State:     string(model.SessionStateEnded),
		EndReason: pgtype.Text{String: string(reason), Valid: true},
		EndedAt:   pgtype.Timestamptz{Time: endedAt, Valid: true},
	})
	if err != nil {
		return &errs.Error{Code: errs.Unavailable, Message: "failed to end session"}
	}
	if rows == 0 {
		return &errs.Error{Code: errs.FailedPrecondition, Message: "session must be active to end"}
	}
	return nil
}

func txFrom(ctx context.Context) (pgx.Tx, error) {
	tx, ok := repository.TxFromContext(ctx)
	if !ok {
		return nil, &errs.Error{Code: errs.Internal, Message: "session transition requires the session lock"}
	}
	return tx, nil
}
