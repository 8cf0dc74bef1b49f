package billing

import (
	"context"
	"fmt"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/dugiahuy/session-billing/billing/business/session"
	"github.com/dugiahuy/session-billing/billing/model"
	"github.com/dugiahuy/session-billing/billing/workflow"
)

type StartSessionRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-"`

	PayerAccountID  string            `json:"payer_account_id" validate:"required,max=128"`
	EarnerAccountID *string           `json:"earner_account_id,omitempty" validate:"omitempty,min=1,max=128"`
	CounterpartyID  string            `json:"counterparty_id,omitempty" validate:"max=128"`
	Kind            model.SessionKind `json:"kind" validate:"required,oneof=VOICE VIDEO"`
	Tier            model.Tier        `json:"tier" validate:"required,oneof=STANDARD PREMIUM VIP"`
}

type SessionResponse struct {
	Session model.Session `json:"session"`
}

//encore:api public path=/v1/sessions method=POST tag:idempotency
func (s *Service) StartSession(ctx context.Context, req *StartSessionRequest) (*SessionResponse, error) {
	result, err := s.business.StartSession(ctx, &model.StartSessionParams{
		PayerAccountID:  req.PayerAccountID,
		EarnerAccountID: req.EarnerAccountID,
		CounterpartyID:  req.CounterpartyID,
		Kind:            req.Kind,
		Tier:            req.Tier,
		IdempotencyKey:  req.IdempotencyKey,
	})
	if err != nil {
		rlog.Error("failed to start session", "error", err, "payer_account_id", req.PayerAccountID)
		return nil, err
	}

	if result.State == model.SessionStateActive {
		if wfErr := s.startWatchdog(ctx, result); wfErr != nil {
			// the session is billable without its watchdog; only abandonment detection is lost
			rlog.Error("workflow start issue", "session_id", result.ID, "error", wfErr)
		}
	}

	return &SessionResponse{
		Session: *result,
	}, nil
}

// Validate implements validation for StartSessionRequest using go-playground/validator
func (r *StartSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	if r.EarnerAccountID != nil && *r.EarnerAccountID == r.PayerAccountID {
		return &errs.Error{Code: errs.InvalidArgument, Message: "earner_account_id must differ from payer_account_id"}
	}

	return nil
}

// startWatchdog starts the Temporal workflow that ends the session if ticks stop arriving
func (s *Service) startWatchdog(ctx context.Context, sess *model.Session) error {
	workflowID := session.WorkflowID(sess.ID)
	if sess.WorkflowID != nil {
		workflowID = *sess.WorkflowID
	}

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}

	params := workflow.SessionWatchdogParams{
		SessionID: sess.ID.String(),
		Grace:     s.watchdogGrace,
	}

	_, err := s.temporal.ExecuteWorkflow(ctx, options, workflow.SessionWatchdog, params)
	if err != nil {
		if temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			rlog.Info("workflow already started", "session_id", sess.ID, "workflow_id", workflowID)
			return nil
		}
		return fmt.Errorf("execute workflow %s: %w", workflowID, err)
	}
	return nil
}
