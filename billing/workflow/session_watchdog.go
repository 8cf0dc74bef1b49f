package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/dugiahuy/session-billing/billing/model"
)

const (
	DefaultGrace = 3 * time.Minute

	// defaultMaxTicks bounds the history of one run before it continues as new.
	defaultMaxTicks = 500
)

// SessionWatchdogParams contains parameters for starting the session watchdog
type SessionWatchdogParams struct {
	SessionID string        `json:"session_id"`
	Grace     time.Duration `json:"grace"`
	MaxTicks  int           `json:"max_ticks,omitempty"`
}

// SessionWatchdog waits for tick signals from a running session. If no tick arrives
// within the grace period the session is ended as ABANDONED.
func SessionWatchdog(ctx workflow.Context, params SessionWatchdogParams) error {
	logger := workflow.GetLogger(ctx)

	grace := params.Grace
	if grace <= 0 {
		grace = DefaultGrace
	}
	maxTicks := params.MaxTicks
	if maxTicks <= 0 {
		maxTicks = defaultMaxTicks
	}

	logger.Info("Starting session watchdog", "sessionID", params.SessionID, "grace", grace)

	tickCh := workflow.GetSignalChannel(ctx, TickSignalName)
	endedCh := workflow.GetSignalChannel(ctx, SessionEndedSignalName)

	ticks := 0
	for {
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, grace)

		ended := false
		abandoned := false

		selector := workflow.NewSelector(ctx)

		selector.AddReceive(tickCh, func(c workflow.ReceiveChannel, more bool) {
			var signal TickSignal
			c.Receive(ctx, &signal)
			ticks++
			cancelTimer()
		})

		selector.AddReceive(endedCh, func(c workflow.ReceiveChannel, more bool) {
			var signal SessionEndedSignal
			c.Receive(ctx, &signal)
			logger.Info("Session ended, stopping watchdog", "sessionID", params.SessionID, "reason", signal.Reason)
			ended = true
			cancelTimer()
		})

		selector.AddFuture(timer, func(f workflow.Future) {
			// a cancelled timer means a signal won the race
			if err := f.Get(ctx, nil); err != nil {
				return
			}
			abandoned = true
		})

		selector.Select(ctx)

		if ended {
			return nil
		}

		if abandoned {
			logger.Warn("No tick within grace period, ending session as abandoned", "sessionID", params.SessionID, "grace", grace)
			err := endSession(ctx, params.SessionID, model.EndReasonAbandoned)
			if err != nil {
				logger.Error("Failed to end abandoned session", "sessionID", params.SessionID, "error", err)
				return err
			}
			logger.Info("Session watchdog completed", "sessionID", params.SessionID)
			return nil
		}

		if ticks >= maxTicks {
			// a session ended while we were rolling over must not be resurrected
			var endedSignal SessionEndedSignal
			if endedCh.ReceiveAsync(&endedSignal) {
				return nil
			}
			var pending TickSignal
			for tickCh.ReceiveAsync(&pending) {
			}
			logger.Info("Continuing watchdog as new", "sessionID", params.SessionID, "ticks", ticks)
			return workflow.NewContinueAsNewError(ctx, SessionWatchdog, SessionWatchdogParams{
				SessionID: params.SessionID,
				Grace:     grace,
				MaxTicks:  params.MaxTicks,
			})
		}
	}
}

// endSession executes the EndSession activity
func endSession(ctx workflow.Context, sessionID string, reason model.EndReason) error {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    10,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)
	return workflow.ExecuteActivity(activityCtx, EndSessionActivity, sessionID, reason).Get(ctx, nil)
}
