package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/model"
)

type AccountResponse struct {
	Account model.Account `json:"account"`
}

type TopUpRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

//encore:api public path=/v1/accounts/:id method=GET
func (s *Service) GetAccount(ctx context.Context, id string) (*AccountResponse, error) {
	account, err := s.wallet.GetAccount(ctx, id)
	if err != nil {
		rlog.Error("failed to get account", "error", err, "account_id", id)
		return nil, err
	}

	return &AccountResponse{
		Account: *account,
	}, nil
}

//encore:api public path=/v1/accounts/:id/credits method=POST tag:idempotency
func (s *Service) TopUp(ctx context.Context, id string, req *TopUpRequest) (*AccountResponse, error) {
	account, err := s.wallet.TopUp(ctx, id, req.Amount)
	if err != nil {
		rlog.Error("failed to top up account", "error", err, "account_id", id, "amount", req.Amount)
		return nil, err
	}

	rlog.Info("account topped up", "account_id", id, "amount", req.Amount, "balance", account.Balance)
	return &AccountResponse{
		Account: *account,
	}, nil
}

// Validate implements validation for TopUpRequest
func (r *TopUpRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
