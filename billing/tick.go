package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"github.com/google/uuid"

	"github.com/dugiahuy/session-billing/billing/business/session"
	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/workflow"
)

type TickResponse struct {
	Result model.TickResult `json:"result"`
}

//encore:api public path=/v1/sessions/:id/tick method=POST
func (s *Service) Tick(ctx context.Context, id string) (*TickResponse, error) {
	sessionID, err := parseSessionID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.business.Tick(ctx, sessionID)
	if err != nil {
		rlog.Error("failed to tick session", "error", err, "session_id", id)
		return nil, err
	}

	if result.Status == model.TickStatusEnded {
		reason := ""
		if result.EndReason != nil {
			reason = string(*result.EndReason)
		}
		s.signalSessionEnded(sessionID, reason)
	} else {
		workflowID := session.WorkflowID(sessionID)
		billed := result.BilledMinutes
		runAsync("signal_tick", func(ctx context.Context) error {
			return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.TickSignalName, workflow.TickSignal{BilledMinutes: billed})
		})
	}

	return &TickResponse{
		Result: *result,
	}, nil
}

// signalSessionEnded stops the watchdog of a session that reached a terminal state
func (s *Service) signalSessionEnded(id uuid.UUID, reason string) {
	workflowID := session.WorkflowID(id)
	runAsync("signal_session_ended", func(ctx context.Context) error {
		return s.temporal.SignalWorkflow(ctx, workflowID, "", workflow.SessionEndedSignalName, workflow.SessionEndedSignal{Reason: reason})
	})
}

func parseSessionID(id string) (uuid.UUID, error) {
	sessionID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid session ID"}
	}
	return sessionID, nil
}
