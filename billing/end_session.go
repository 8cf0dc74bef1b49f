package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/model"
)

type EndSessionRequest struct {
	Reason model.EndReason `json:"reason" validate:"omitempty,oneof=USER_ENDED SAFETY_VIOLATION ABANDONED"`
}

type EndSessionResponse struct {
	Totals model.SessionTotals `json:"totals"`
}

//encore:api public path=/v1/sessions/:id/end method=POST tag:idempotency
func (s *Service) EndSession(ctx context.Context, id string, req *EndSessionRequest) (*EndSessionResponse, error) {
	sessionID, err := parseSessionID(id)
	if err != nil {
		return nil, err
	}

	reason := req.Reason
	if reason == "" {
		reason = model.EndReasonUserEnded
	}

	totals, err := s.business.EndSession(ctx, sessionID, reason)
	if err != nil {
		rlog.Error("failed to end session", "error", err, "session_id", id)
		return nil, err
	}

	finalReason := string(reason)
	if totals.EndReason != nil {
		finalReason = string(*totals.EndReason)
	}
	s.signalSessionEnded(sessionID, finalReason)

	return &EndSessionResponse{
		Totals: *totals,
	}, nil
}

// Validate implements validation for EndSessionRequest
func (r *EndSessionRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
