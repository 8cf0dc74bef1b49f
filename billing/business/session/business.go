package session

import (
	"context"
	"time"

	"github.com/facebookgo/clock"
	"github.com/google/uuid"

	"github.com/dugiahuy/session-billing/billing/business/wallet"
	"github.com/dugiahuy/session-billing/billing/domain"
	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/pricing"
	"github.com/dugiahuy/session-billing/billing/repository/charges"
	"github.com/dugiahuy/session-billing/billing/repository/sessions"
	"github.com/dugiahuy/session-billing/billing/safety"
)

type Business interface {
	StartSession(ctx context.Context, params *model.StartSessionParams) (*model.Session, error)
	Tick(ctx context.Context, id uuid.UUID) (*model.TickResult, error)
	EndSession(ctx context.Context, id uuid.UUID, reason model.EndReason) (*model.SessionTotals, error)

	GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error)
	ListSessions(ctx context.Context, payerAccountID string, limit, offset int32) ([]*model.Session, int64, error)
	ListCharges(ctx context.Context, sessionID uuid.UUID) ([]*model.Charge, error)
}

// business is the billing engine. It is stateless; every charge-affecting step runs inside the
// session lock owned by the state machine and commits or rolls back as one transaction.
type business struct {
	stateMachine domain.StateMachine
	sessionRepo  sessions.Querier
	chargeRepo   charges.Querier
	wallet       wallet.Business
	catalog      *pricing.Catalog
	gate         safety.Gate
	clock        clock.Clock
}

// NewSessionBusiness creates the billing engine
func NewSessionBusiness(
	stateMachine domain.StateMachine,
	sessionRepo sessions.Querier,
	chargeRepo charges.Querier,
	walletBusiness wallet.Business,
	catalog *pricing.Catalog,
	gate safety.Gate,
	clk clock.Clock,
) Business {
	return &business{
		stateMachine: stateMachine,
		sessionRepo:  sessionRepo,
		chargeRepo:   chargeRepo,
		wallet:       walletBusiness,
		catalog:      catalog,
		gate:         gate,
		clock:        clk,
	}
}

// now is truncated to the storage precision so values read back compare equal to those written.
func (b *business) now() time.Time {
	return b.clock.Now().UTC().Truncate(time.Microsecond)
}

// WorkflowID names the watchdog workflow of a session.
func WorkflowID(id uuid.UUID) string {
	return "session-" + id.String()
}
