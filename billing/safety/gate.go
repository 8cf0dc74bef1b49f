// Package safety holds the pre-start safety check the billing engine consumes.
package safety

import (
	"context"
	"sync"

	"github.com/dugiahuy/session-billing/billing/model"
)

// Verdict is the outcome of a safety check. Reason is set when Allowed is false.
type Verdict struct {
	Allowed bool
	Reason  string
}

// Gate decides whether a payer may open a session with a counterparty.
type Gate interface {
	Check(ctx context.Context, payerAccountID, counterpartyID string, kind model.SessionKind) (Verdict, error)
}

// GateFunc adapts a function to Gate.
type GateFunc func(ctx context.Context, payerAccountID, counterpartyID string, kind model.SessionKind) (Verdict, error)

func (f GateFunc) Check(ctx context.Context, payerAccountID, counterpartyID string, kind model.SessionKind) (Verdict, error) {
	return f(ctx, payerAccountID, counterpartyID, kind)
}

// Denylist rejects sessions where either party has been blocked by an operator.
type Denylist struct {
	mu      sync.RWMutex
	blocked map[string]string
}

func NewDenylist() *Denylist {
	return &Denylist{blocked: make(map[string]string)}
}

func (d *Denylist) Block(accountID, reason string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.blocked[accountID] = reason
}

func (d *Denylist) Unblock(accountID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.blocked, accountID)
}

func (d *Denylist) Check(_ context.Context, payerAccountID, counterpartyID string, _ model.SessionKind) (Verdict, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, id := range []string{payerAccountID, counterpartyID} {
		if id == "" {
			continue
		}
		if reason, ok := d.blocked[id]; ok {
			return Verdict{Allowed: false, Reason: reason}, nil
		}
	}
	return Verdict{Allowed: true}, nil
}
