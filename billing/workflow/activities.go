package workflow

import (
	"context"
	"errors"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/dugiahuy/session-billing/billing/business/session"
	"github.com/dugiahuy/session-billing/billing/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	SessionBusiness session.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(sessionBusiness session.Business) {
	activityDeps = &ActivityDependencies{
		SessionBusiness: sessionBusiness,
	}
}

// EndSessionActivity ends a session through the regular EndSession path, so the final
// elapsed minutes are billed before the session closes.
func EndSessionActivity(ctx context.Context, sessionID string, reason model.EndReason) (*model.SessionTotals, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing end session activity", "sessionID", sessionID, "reason", reason)

	if activityDeps == nil || activityDeps.SessionBusiness == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError("invalid session id", "INVALID_SESSION_ID", err)
	}

	totals, err := activityDeps.SessionBusiness.EndSession(ctx, id, reason)
	if err != nil {
		logger.Error("Failed to end session", "sessionID", sessionID, "error", err)
		if !retryable(err) {
			return nil, temporal.NewNonRetryableApplicationError("failed to end session", "END_SESSION_FAILED", err)
		}
		return nil, err
	}

	logger.Info("Successfully ended session", "sessionID", sessionID, "state", totals.State, "totalMinutes", totals.TotalMinutes)
	return totals, nil
}

// retryable reports whether another attempt could succeed. Store outages and lost races are
// worth retrying; a missing session or a rejected reason is not.
func retryable(err error) bool {
	var e *errs.Error
	if !errors.As(err, &e) {
		return true
	}
	switch e.Code {
	case errs.NotFound, errs.InvalidArgument, errs.FailedPrecondition, errs.PermissionDenied:
		return false
	}
	return true
}
