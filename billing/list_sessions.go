package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/model"
)

type ListSessionsRequest struct {
	PayerAccountID string `query:"payer_account_id" validate:"required,max=128"`
	Limit          int    `query:"limit"`
	Offset         int    `query:"offset" validate:"gte=0"`
}

type ListSessionsResponse struct {
	Sessions   []model.Session `json:"sessions"`
	TotalCount int64           `json:"total_count"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

//encore:api public path=/v1/sessions method=GET
func (s *Service) ListSessions(ctx context.Context, req *ListSessionsRequest) (*ListSessionsResponse, error) {
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	sessions, totalCount, err := s.business.ListSessions(ctx, req.PayerAccountID, int32(req.Limit), int32(req.Offset))
	if err != nil {
		rlog.Error("failed to list sessions", "error", err, "payer_account_id", req.PayerAccountID)
		return nil, err
	}

	response := &ListSessionsResponse{
		Sessions:   make([]model.Session, len(sessions)),
		TotalCount: totalCount,
		Limit:      req.Limit,
		Offset:     req.Offset,
	}

	for i, sess := range sessions {
		response.Sessions[i] = *sess
	}

	return response, nil
}

// Validate implements validation for ListSessionsRequest
func (r *ListSessionsRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
