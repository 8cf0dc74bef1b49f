package billing

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/pricing"
)

type BlockAccountRequest struct {
	Reason string `json:"reason" validate:"required,max=256"`
}

type BlockAccountResponse struct {
	AccountID string `json:"account_id"`
	Blocked   bool   `json:"blocked"`
	Reason    string `json:"reason,omitempty"`
}

type InstallRatesRequest struct {
	// Table is a YAML rate table in the same format as the shipped rates.yaml.
	Table string `json:"table" validate:"required"`
}

type RatesResponse struct {
	Version           string `json:"version"`
	PlatformAccountID string `json:"platform_account_id"`
}

// BlockAccount makes the safety check refuse new sessions where the account is payer or counterparty.
// Sessions already running are not touched.
//
//encore:api private path=/v1/admin/blocked-accounts/:id method=PUT
func (s *Service) BlockAccount(ctx context.Context, id string, req *BlockAccountRequest) (*BlockAccountResponse, error) {
	s.denylist.Block(id, req.Reason)
	rlog.Info("account blocked", "account_id", id, "reason", req.Reason)

	return &BlockAccountResponse{
		AccountID: id,
		Blocked:   true,
		Reason:    req.Reason,
	}, nil
}

//encore:api private path=/v1/admin/blocked-accounts/:id method=DELETE
func (s *Service) UnblockAccount(ctx context.Context, id string) (*BlockAccountResponse, error) {
	s.denylist.Unblock(id)
	rlog.Info("account unblocked", "account_id", id)

	return &BlockAccountResponse{
		AccountID: id,
		Blocked:   false,
	}, nil
}

//encore:api private path=/v1/admin/rates method=GET
func (s *Service) GetRates(ctx context.Context) (*RatesResponse, error) {
	return ratesResponse(s.catalog.Current()), nil
}

// InstallRates validates a rate table and makes it the one new sessions are priced with.
// Sessions already started keep their locked rate and split.
//
//encore:api private path=/v1/admin/rates method=PUT
func (s *Service) InstallRates(ctx context.Context, req *InstallRatesRequest) (*RatesResponse, error) {
	snapshot, err := pricing.Parse([]byte(req.Table))
	if err != nil {
		rlog.Warn("rejected rate table", "error", err)
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	previous := s.catalog.Current()
	s.catalog.Install(snapshot)
	rlog.Info("rate table installed", "version", snapshot.Version(), "previous_version", previous.Version())

	return ratesResponse(snapshot), nil
}

func ratesResponse(snapshot *pricing.Snapshot) *RatesResponse {
	return &RatesResponse{
		Version:           snapshot.Version(),
		PlatformAccountID: snapshot.PlatformAccountID(),
	}
}

// Validate implements validation for BlockAccountRequest
func (r *BlockAccountRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}

// Validate implements validation for InstallRatesRequest
func (r *InstallRatesRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}

	return nil
}
