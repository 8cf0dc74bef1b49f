// Package pricing resolves per-minute rates and revenue splits from immutable, versioned table snapshots.
//
// A Snapshot never changes after it is built. Sessions copy the values they resolve, so installing a
// new snapshot into a Catalog only affects sessions started afterwards.
package pricing

import (
	"errors"
	"fmt"

	"github.com/dugiahuy/session-billing/billing/model"
)

// BasisPoints is the denominator for revenue shares.
const BasisPoints = 10000

var (
	ErrRateNotConfigured  = errors.New("rate not configured")
	ErrSplitNotConfigured = errors.New("split not configured")
)

// Split is the earner/platform apportionment for one revenue context.
type Split struct {
	Context        model.SplitContext
	EarnerShareBps int32
}

func (s Split) PlatformShareBps() int32 {
	return BasisPoints - s.EarnerShareBps
}

type Snapshot struct {
	version           string
	platformAccountID string
	rates             map[model.SessionKind]map[model.Tier]int64
	splits            map[model.SplitContext]int32
}

func (s *Snapshot) Version() string {
	return s.version
}

// PlatformAccountID is the account that receives the platform share of every charge.
func (s *Snapshot) PlatformAccountID() string {
	return s.platformAccountID
}

// ResolveRate returns the price per minute in credits for a session kind and payer tier.
func (s *Snapshot) ResolveRate(kind model.SessionKind, tier model.Tier) (int64, error) {
	rate, ok := s.rates[kind][tier]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: kind=%s tier=%s version=%s", ErrRateNotConfigured, kind, tier, s.version)
	}
	return rate, nil
}

// ResolveSplit returns the revenue split for a context.
func (s *Snapshot) ResolveSplit(ctx model.SplitContext) (Split, error) {
	bps, ok := s.splits[ctx]
	if !ok {
		return Split{}, fmt.Errorf("%w: context=%s version=%s", ErrSplitNotConfigured, ctx, s.version)
	}
	return Split{Context: ctx, EarnerShareBps: bps}, nil
}

// ContextFor classifies a session's revenue by whether it has an earner.
func ContextFor(earnerAccountID *string) model.SplitContext {
	if earnerAccountID == nil || *earnerAccountID == "" {
		return model.SplitContextPlatformOnly
	}
	return model.SplitContextEarnerSession
}

// Apportion divides amount between platform and earner. The earner share is rounded down and the
// platform takes the remainder, so platform+earner always equals amount.
func Apportion(amount int64, split Split) (platform, earner int64) {
	if amount <= 0 || split.Context == model.SplitContextPlatformOnly || split.EarnerShareBps <= 0 {
		return amount, 0
	}
	bps := int64(split.EarnerShareBps)
	if bps >= BasisPoints {
		return 0, amount
	}
	// amount*bps can overflow for very large amounts; split the multiplication.
	earner = (amount/BasisPoints)*bps + (amount%BasisPoints)*bps/BasisPoints
	return amount - earner, earner
}
