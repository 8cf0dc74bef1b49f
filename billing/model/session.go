package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	ID                uuid.UUID    `json:"id"`
	PayerAccountID    string       `json:"payer_account_id"`
	EarnerAccountID   *string      `json:"earner_account_id,omitempty"`
	PlatformAccountID string       `json:"platform_account_id"`
	Kind              SessionKind  `json:"kind"`
	Tier              Tier         `json:"tier"`
	PricePerMinute    int64        `json:"price_per_minute"`
	SplitContext      SplitContext `json:"split_context"`
	EarnerShareBps    int32        `json:"earner_share_bps"`
	RateVersion       string       `json:"rate_version"`
	State             SessionState `json:"state"`
	StartedAt         *time.Time   `json:"started_at,omitempty"`
	EndedAt           *time.Time   `json:"ended_at,omitempty"`
	BilledMinutes     int64        `json:"billed_minutes"`
	TotalCharged      int64        `json:"total_charged"`
	EndReason         *EndReason   `json:"end_reason,omitempty"`
	IdempotencyKey    string       `json:"idempotency_key"`
	WorkflowID        *string      `json:"workflow_id,omitempty"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type SessionKind string

const (
	SessionKindVoice SessionKind = "VOICE"
	SessionKindVideo SessionKind = "VIDEO"
)

// SessionKinds lists every kind a rate table has to price.
var SessionKinds = []SessionKind{SessionKindVoice, SessionKindVideo}

type Tier string

const (
	TierStandard Tier = "STANDARD"
	TierPremium  Tier = "PREMIUM"
	TierVIP      Tier = "VIP"
)

// Tiers lists every payer tier a rate table has to price.
var Tiers = []Tier{TierStandard, TierPremium, TierVIP}

type SplitContext string

const (
	// SplitContextEarnerSession is revenue from a session with a human earner.
	SplitContextEarnerSession SplitContext = "EARNER_SESSION"
	// SplitContextPlatformOnly is revenue from an automated counterparty; nothing goes to an earner.
	SplitContextPlatformOnly SplitContext = "PLATFORM_ONLY"
)

var SplitContexts = []SplitContext{SplitContextEarnerSession, SplitContextPlatformOnly}

type SessionState string

const (
	SessionStatePending   SessionState = "PENDING"
	SessionStateActive    SessionState = "ACTIVE"
	SessionStateEnded     SessionState = "ENDED"
	SessionStateCancelled SessionState = "CANCELLED"
)

// IsTerminal reports whether no further mutation of the session is allowed.
func (s SessionState) IsTerminal() bool {
	return s == SessionStateEnded || s == SessionStateCancelled
}

type EndReason string

const (
	EndReasonUserEnded         EndReason = "USER_ENDED"
	EndReasonInsufficientFunds EndReason = "INSUFFICIENT_FUNDS"
	EndReasonSafetyViolation   EndReason = "SAFETY_VIOLATION"
	EndReasonAbandoned         EndReason = "ABANDONED"
)

// CallerEndReasons are the reasons a caller may pass to EndSession.
// INSUFFICIENT_FUNDS is only ever set by the engine itself.
var CallerEndReasons = []EndReason{EndReasonUserEnded, EndReasonSafetyViolation, EndReasonAbandoned}

func (r EndReason) CallerAllowed() bool {
	for _, allowed := range CallerEndReasons {
		if r == allowed {
			return true
		}
	}
	return false
}

type StartSessionParams struct {
	PayerAccountID  string
	EarnerAccountID *string
	// CounterpartyID identifies an automated counterparty for the safety check when there is no earner.
	CounterpartyID string
	Kind           SessionKind
	Tier           Tier
	IdempotencyKey string
}

type TickStatus string

const (
	TickStatusOK    TickStatus = "ok"
	TickStatusEnded TickStatus = "ended"
)

type TickResult struct {
	SessionID     uuid.UUID  `json:"session_id"`
	Status        TickStatus `json:"status"`
	MinutesBilled int64      `json:"minutes_billed"`
	BilledMinutes int64      `json:"billed_minutes"`
	TotalCharged  int64      `json:"total_charged"`
	EndReason     *EndReason `json:"end_reason,omitempty"`
}

type SessionTotals struct {
	SessionID    uuid.UUID    `json:"session_id"`
	State        SessionState `json:"state"`
	TotalMinutes int64        `json:"total_minutes"`
	TotalCharged int64        `json:"total_charged"`
	EndReason    *EndReason   `json:"end_reason,omitempty"`
	EndedAt      *time.Time   `json:"ended_at,omitempty"`
}
